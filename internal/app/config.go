package app

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "cryptoTracker/internal/api/grpc"
	"cryptoTracker/internal/api/http"
	"cryptoTracker/internal/api/http/controllers/stream"
	"cryptoTracker/internal/infrastructure/coingecko"
	"cryptoTracker/internal/infrastructure/kafka"
	"cryptoTracker/internal/infrastructure/memory"
	"cryptoTracker/internal/infrastructure/redis"
	"cryptoTracker/internal/pkg/logger"
	"cryptoTracker/internal/usecase/market"
)

const AppName = "TRACKER"

// Бэкенды кэша.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheConfig это настройки кэша: бэкенд, TTL по операциям и очистка in-memory хранилища.
// Переменные: TRACKER_CACHE_BACKEND, TRACKER_CACHE_TOP_COINS_TTL, TRACKER_CACHE_CLEANUP_INTERVAL и т.д.
type CacheConfig struct {
	Backend string `envconfig:"BACKEND" default:"memory"`
	market.TTLConfig
	memory.Config
}

// Config это конфиг приложения. Заполняется через envconfig с префиксом TRACKER.
type Config struct {
	Server    http.ServerConfig `envconfig:"SERVER"`
	Grpc      apigrpc.Config    `envconfig:"GRPC"`
	Log       logger.Config     `envconfig:"LOG"`
	CoinGecko coingecko.Config  `envconfig:"COINGECKO"`
	Cache     CacheConfig       `envconfig:"CACHE"`
	Stream    stream.Config     `envconfig:"STREAM"`
	Redis     redis.Config      `envconfig:"REDIS"`
	Kafka     kafka.Config      `envconfig:"KAFKA"`
}

// Validate проверяет значения, которые envconfig не умеет проверить сам.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("cache backend %q: want %s or %s", c.Cache.Backend, CacheMemory, CacheRedis)
	}
	ttls := map[string]int64{
		"top coins":    int64(c.Cache.TopCoins),
		"catalog":      int64(c.Cache.Catalog),
		"coin detail":  int64(c.Cache.CoinDetail),
		"market chart": int64(c.Cache.MarketChart),
		"simple price": int64(c.Cache.SimplePrice),
	}
	for name, ttl := range ttls {
		if ttl < 0 {
			return fmt.Errorf("cache %s ttl must not be negative", name)
		}
	}
	if c.Stream.Interval < c.Stream.MinInterval {
		return fmt.Errorf("stream interval %s is below minimum %s", c.Stream.Interval, c.Stream.MinInterval)
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Без аргументов читается .env из рабочего каталога.
func LoadCfg(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
