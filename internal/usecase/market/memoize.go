package market

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cryptoTracker/internal/ports"
)

// cached отдаёт результат fetch через кэш.
// Свежая запись (now < fetchedAt + ttl) возвращается без сети. Иначе вызывается fetch,
// и только успешный результат сохраняется: ошибки не кэшируются, следующий вызов сразу повторит запрос.
// Результат всегда декодируется из тех же байт, что лежат в кэше, поэтому промах и попадание дают одно и то же.
// Сбой самого хранилища считается промахом и не ломает запрос.
func cached[T any](ctx context.Context, u *UseCase, operation string, ttl time.Duration, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if ttl <= 0 {
		cacheRequests.WithLabelValues(operation, "bypass").Inc()
		return fetch(ctx)
	}

	entry, found, err := u.cache.Get(ctx, key)
	if err != nil {
		u.log.Warn("cache get failed, treat as miss", "key", key, "error", err)
	}
	if err == nil && found && entry.Fresh(u.now()) {
		var v T
		if err := json.Unmarshal(entry.Value, &v); err == nil {
			cacheRequests.WithLabelValues(operation, "hit").Inc()
			return v, nil
		}
		u.log.Warn("cache entry decode failed, refetch", "key", key)
	}
	cacheRequests.WithLabelValues(operation, "miss").Inc()

	v, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("cache encode %s: %w", key, err)
	}
	fresh := ports.CacheEntry{Key: key, Value: raw, FetchedAt: u.now(), TTL: ttl}
	if err := u.cache.Set(ctx, fresh); err != nil {
		u.log.Warn("cache set failed", "key", key, "error", err)
	} else {
		u.log.Debug("cache stored", "key", key, "ttl", ttl)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return out, nil
}
