package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"
	"time"
)

// CacheEntry это закэшированный результат вызова адаптера.
// Value хранит JSON результата, поэтому попадание в кэш отдаёт байт-в-байт тот же ответ.
type CacheEntry struct {
	Key       string        `json:"key"`
	Value     []byte        `json:"value"`
	FetchedAt time.Time     `json:"fetched_at"`
	TTL       time.Duration `json:"ttl"`
}

// Fresh сообщает, можно ли отдать запись в момент now без похода в сеть.
func (e CacheEntry) Fresh(now time.Time) bool {
	return now.Before(e.FetchedAt.Add(e.TTL))
}

// ICache это хранилище записей кэша. Общее для всех запросов процесса.
// Реализации должны быть безопасны для конкурентного доступа: запись заменяется целиком.
type ICache interface {
	Get(ctx context.Context, key string) (entry CacheEntry, found bool, err error)
	Set(ctx context.Context, entry CacheEntry) error
	Ping(ctx context.Context) error
}
