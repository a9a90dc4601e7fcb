package kvstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound возвращается при отсутствии ключа независимо от реализации.
var ErrNotFound = errors.New("kvstore: key not found")

// Store — долговременное key-value хранилище непрозрачных строк.
// ttl == 0 означает хранение без срока.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
