package receipt

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/dgraph-io/badger/v4"
)

type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) the store at path. An empty path keeps
// everything in memory.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Write(_ context.Context, ticket *domain.Ticket) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key(ticket.Seat.Label())), []byte(Format(ticket)))
	})
}

func (s *BadgerStore) Read(_ context.Context, label string) (string, error) {
	var body string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key(label)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			body = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", fmt.Errorf("%s: %w", label, ErrNotFound)
	}
	return body, err
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

var _ Store = (*BadgerStore)(nil)
