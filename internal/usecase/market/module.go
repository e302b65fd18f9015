package market

import (
	"log/slog"
	"strings"
	"time"

	"cryptoTracker/internal/ports"
)

// Имена операций кэша. Входят в ключ записи и в метки метрик.
const (
	opTopCoins    = "top_coins"
	opCatalog     = "catalog"
	opCoinDetail  = "coin_detail"
	opMarketChart = "market_chart"
	opSimplePrice = "simple_price"
)

// TTLConfig это время жизни записей кэша по операциям. Переменные: TRACKER_CACHE_TOP_COINS_TTL и т.д.
// Нулевой TTL отключает кэш для операции: каждый вызов идёт в сеть.
type TTLConfig struct {
	TopCoins    time.Duration `envconfig:"TOP_COINS_TTL" default:"300s"`
	Catalog     time.Duration `envconfig:"CATALOG_TTL" default:"600s"`
	CoinDetail  time.Duration `envconfig:"COIN_DETAIL_TTL" default:"60s"`
	MarketChart time.Duration `envconfig:"MARKET_CHART_TTL" default:"60s"`
	SimplePrice time.Duration `envconfig:"SIMPLE_PRICE_TTL" default:"0s"`
}

// DefaultTTL возвращает TTL по умолчанию (те же, что в тегах TTLConfig).
func DefaultTTL() TTLConfig {
	return TTLConfig{
		TopCoins:    300 * time.Second,
		Catalog:     600 * time.Second,
		CoinDetail:  60 * time.Second,
		MarketChart: 60 * time.Second,
	}
}

// cacheKey формирует ключ записи: операция и аргументы через двоеточие, например "top_coins:usd:100".
func cacheKey(operation string, args ...string) string {
	return strings.Join(append([]string{operation}, args...), ":")
}

// UseCase это бизнес-логика трекера: кэш поверх адаптера рыночных данных и конвертер.
type UseCase struct {
	api    ports.IMarketAPI
	cache  ports.ICache
	broker ports.IProducer
	ttl    TTLConfig
	log    *slog.Logger
	now    func() time.Time
}

// New создаёт юзкейс трекера. Кэш создаётся один раз при старте процесса и общий для всех запросов.
func New(api ports.IMarketAPI, cache ports.ICache, broker ports.IProducer, ttl TTLConfig, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{api: api, cache: cache, broker: broker, ttl: ttl, log: log, now: time.Now}
}
