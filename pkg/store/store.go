package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-redis/redis/v9"
)

// Store holds encoded snapshots by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

var (
	ErrMissing = errors.New("store: missing")
	ErrKey     = errors.New("store: invalid key")
)

// FSStore keeps one file per key in a directory.
type FSStore string

func (f FSStore) getPath(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: %q", ErrKey, key)
	}
	return filepath.Join(string(f), key), nil
}

func (f FSStore) Get(ctx context.Context, key string) ([]byte, error) {
	target, err := f.getPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, fmt.Errorf("store: could not read %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the file for key atomically, so a reader never sees a
// partially written snapshot.
func (f FSStore) Set(ctx context.Context, key string, data []byte) error {
	target, err := f.getPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(string(f), 0755); err != nil {
		return err
	}
	return writeBytes(data, target)
}

const (
	REDIS_KEY    = "gdlevel-%s"
	REDIS_EXPIRY = time.Duration(24 * time.Hour)
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

func (r *RedisStore) Get(ctx context.Context, id string) ([]byte, error) {
	key := fmt.Sprintf(REDIS_KEY, id)
	data, err := r.client.Get(ctx, key).Bytes()

	if err == redis.Nil {
		return nil, ErrMissing
	}

	if err != nil {
		return nil, err
	}

	return data, nil
}

func (r *RedisStore) Set(ctx context.Context, id string, data []byte) error {
	key := fmt.Sprintf(REDIS_KEY, id)
	return r.client.Set(ctx, key, data, REDIS_EXPIRY).Err()
}

// RedisCache is a RedisStore whose entries expire after ttl instead of the
// default expiry.
type RedisCache struct {
	*RedisStore
	ttl time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		RedisStore: NewRedisStore(client),
		ttl:        ttl,
	}
}

func (r *RedisCache) Set(ctx context.Context, id string, data []byte) error {
	key := fmt.Sprintf(REDIS_KEY, id)
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

var _ Store = (*FSStore)(nil)
var _ Store = (*RedisStore)(nil)
var _ Store = (*RedisCache)(nil)
