package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"cryptoTracker/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis, чтобы несколько реплик делили одно окно кэша.
// Запись хранится одним JSON-значением с TTL, поэтому она либо видна целиком, либо не видна вовсе.
type Cache struct {
	cli    *Client
	prefix string
	log    *slog.Logger
}

// NewCache возвращает кэш, реализующий ports.ICache.
func NewCache(cli *Client, prefix string, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}
	return &Cache{cli: cli, prefix: prefix, log: log}
}

// Get возвращает запись по ключу. Если ключа нет, found == false.
func (c *Cache) Get(ctx context.Context, key string) (ports.CacheEntry, bool, error) {
	raw, err := c.cli.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.CacheEntry{}, false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return ports.CacheEntry{}, false, err
	}
	var entry ports.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.log.Debug("cache decode failed", "key", key, "error", err)
		return ports.CacheEntry{}, false, fmt.Errorf("cache decode entry: %w", err)
	}
	return entry, true, nil
}

// Set сохраняет запись с TTL самой записи. Дубликаты перезаписываются.
// Запись без TTL не принимается: ключ без срока жизни остался бы в Redis навсегда.
func (c *Cache) Set(ctx context.Context, entry ports.CacheEntry) error {
	if entry.TTL <= 0 {
		return fmt.Errorf("cache entry %s: ttl must be positive", entry.Key)
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cache encode entry: %w", err)
	}
	if err := c.cli.Set(ctx, c.prefix+entry.Key, raw, entry.TTL).Err(); err != nil {
		c.log.Debug("cache set failed", "key", entry.Key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет соединение (для readiness).
func (c *Cache) Ping(ctx context.Context) error {
	return c.cli.Ping(ctx).Err()
}
