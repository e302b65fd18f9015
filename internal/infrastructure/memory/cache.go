package memory

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"cryptoTracker/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Config это настройки in-memory кэша. Переменные: TRACKER_CACHE_CLEANUP_INTERVAL.
type Config struct {
	CleanupInterval time.Duration `envconfig:"CLEANUP_INTERVAL" default:"10m"`
}

// Cache реализует ports.ICache в памяти процесса.
// go-cache даёт потокобезопасную карту и фоновую очистку, а свежесть записи
// решает вызывающий по FetchedAt и TTL.
type Cache struct {
	items *gocache.Cache
	log   *slog.Logger
}

// NewCache возвращает пустой кэш. Записи живут в карте не дольше своего TTL (плюс интервал очистки).
func NewCache(cfg *Config, log *slog.Logger) *Cache {
	interval := 10 * time.Minute
	if cfg != nil && cfg.CleanupInterval > 0 {
		interval = cfg.CleanupInterval
	}
	if log == nil {
		log = slog.Default()
	}
	return &Cache{
		items: gocache.New(gocache.NoExpiration, interval),
		log:   log,
	}
}

// Get возвращает запись по ключу. Если ключа нет, found == false.
func (c *Cache) Get(_ context.Context, key string) (ports.CacheEntry, bool, error) {
	v, ok := c.items.Get(key)
	if !ok {
		return ports.CacheEntry{}, false, nil
	}
	entry, ok := v.(ports.CacheEntry)
	if !ok {
		c.log.Warn("memory cache holds foreign value", "key", key)
		c.items.Delete(key)
		return ports.CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// Set сохраняет запись целиком, заменяя предыдущую с тем же ключом.
func (c *Cache) Set(_ context.Context, entry ports.CacheEntry) error {
	ttl := entry.TTL
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	value := make([]byte, len(entry.Value))
	copy(value, entry.Value)
	entry.Value = value
	c.items.Set(entry.Key, entry, ttl)
	return nil
}

// Ping всегда успешен: кэш в памяти процесса.
func (c *Cache) Ping(context.Context) error {
	return nil
}

// Len возвращает число записей, включая ещё не вычищенные просроченные.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}
