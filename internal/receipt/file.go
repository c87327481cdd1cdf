package receipt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Domenick1991/planeseats/internal/domain"
)

// FileStore writes <dir>/<label>.txt, replacing any previous file for the seat.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Path(label string) string {
	return filepath.Join(s.dir, label+".txt")
}

func (s *FileStore) Write(ctx context.Context, ticket *domain.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(s.Path(ticket.Seat.Label()), []byte(Format(ticket)), 0o644)
}

func (s *FileStore) Read(_ context.Context, label string) (string, error) {
	data, err := os.ReadFile(s.Path(label))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", label, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
