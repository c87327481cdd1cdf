package receipt

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/planeseats/config"
	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (s *RedisStore) Write(ctx context.Context, ticket *domain.Ticket) error {
	return s.client.Set(ctx, key(ticket.Seat.Label()), Format(ticket), 0).Err()
}

func (s *RedisStore) Read(ctx context.Context, label string) (string, error) {
	body, err := s.client.Get(ctx, key(label)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%s: %w", label, ErrNotFound)
	}
	return body, err
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
