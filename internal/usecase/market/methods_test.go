package market

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cryptoTracker/internal/domain"
	"cryptoTracker/internal/infrastructure/memory"
	"cryptoTracker/internal/mocks"
	"cryptoTracker/internal/ports"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeClock это управляемые часы для проверки TTL.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

// newUseCase собирает юзкейс с настоящим in-memory кэшем и подменёнными часами.
func newUseCase(api ports.IMarketAPI, broker ports.IProducer, clock *fakeClock) (*UseCase, *memory.Cache) {
	cache := memory.NewCache(&memory.Config{CleanupInterval: time.Hour}, newTestLogger())
	uc := New(api, cache, broker, DefaultTTL(), newTestLogger())
	uc.now = clock.Now
	return uc, cache
}

func rank(n int) *int { return &n }

func topCoinsFixture() []domain.RawMarketCoin {
	return []domain.RawMarketCoin{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", MarketCapRank: rank(1),
			CurrentPrice: decimal.NewNullDecimal(decimal.RequireFromString("64000.10"))},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", MarketCapRank: rank(2),
			CurrentPrice: decimal.NewNullDecimal(decimal.RequireFromString("3100.5"))},
	}
}

// Повторный вызов в пределах TTL не ходит в сеть и отдаёт тот же результат байт в байт.
func TestTopCoins_CacheHitWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().
		FetchTopCoins(gomock.Any(), domain.USD, 100).
		Return(topCoinsFixture(), nil).
		Times(1)

	clock := newClock()
	uc, _ := newUseCase(api, mocks.NewMockIProducer(ctrl), clock)
	ctx := context.Background()

	first, err := uc.TopCoins(ctx, domain.USD, 100)
	require.NoError(t, err)

	clock.Advance(299 * time.Second)
	second, err := uc.TopCoins(ctx, domain.USD, 100)
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, string(a), string(b))
	require.Len(t, second, 2)
	assert.Equal(t, "BTC", second[0].Symbol)
}

// После истечения TTL ровно один новый запрос, и запись получает новое время загрузки.
func TestTopCoins_RefetchAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().
		FetchTopCoins(gomock.Any(), domain.USD, 10).
		Return(topCoinsFixture(), nil).
		Times(2)

	clock := newClock()
	uc, cache := newUseCase(api, mocks.NewMockIProducer(ctrl), clock)
	ctx := context.Background()
	key := cacheKey(opTopCoins, "usd", "10")

	_, err := uc.TopCoins(ctx, domain.USD, 10)
	require.NoError(t, err)
	entry, found, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	firstFetched := entry.FetchedAt

	clock.Advance(300 * time.Second)
	_, err = uc.TopCoins(ctx, domain.USD, 10)
	require.NoError(t, err)

	_, err = uc.TopCoins(ctx, domain.USD, 10)
	require.NoError(t, err)

	entry, found, err = cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, entry.FetchedAt.After(firstFetched))
	assert.Equal(t, clock.Now(), entry.FetchedAt)
}

// Разные аргументы дают разные ключи и отдельные запросы.
func TestTopCoins_KeyPerArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().FetchTopCoins(gomock.Any(), domain.USD, 100).Return(topCoinsFixture(), nil).Times(1)
	api.EXPECT().FetchTopCoins(gomock.Any(), domain.EUR, 100).Return(topCoinsFixture(), nil).Times(1)

	uc, _ := newUseCase(api, mocks.NewMockIProducer(ctrl), newClock())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := uc.TopCoins(ctx, domain.USD, 100)
		require.NoError(t, err)
		_, err = uc.TopCoins(ctx, domain.EUR, 100)
		require.NoError(t, err)
	}
}

// Ошибка upstream не кэшируется: следующий вызов снова идёт в сеть.
func TestCatalog_FailureNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := errors.Join(domain.ErrUpstream, errors.New("status 429"))
	api := mocks.NewMockIMarketAPI(ctrl)
	gomock.InOrder(
		api.EXPECT().FetchCoinCatalog(gomock.Any()).Return(nil, upstream),
		api.EXPECT().FetchCoinCatalog(gomock.Any()).Return([]domain.CatalogEntry{{ID: "ethereum"}, {ID: "bitcoin"}}, nil),
	)

	uc, cache := newUseCase(api, mocks.NewMockIProducer(ctrl), newClock())
	ctx := context.Background()

	_, err := uc.Catalog(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Zero(t, cache.Len())

	ids, err := uc.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CoinID{"bitcoin", "ethereum"}, ids)
	assert.Equal(t, 1, cache.Len())
}

// Сбой хранилища считается промахом: данные всё равно отдаются.
func TestCatalog_CacheBackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().FetchCoinCatalog(gomock.Any()).Return([]domain.CatalogEntry{{ID: "bitcoin"}}, nil)

	cache := mocks.NewMockICache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "catalog").Return(ports.CacheEntry{}, false, errors.New("connection refused"))
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	uc := New(api, cache, mocks.NewMockIProducer(ctrl), DefaultTTL(), newTestLogger())

	ids, err := uc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CoinID{"bitcoin"}, ids)
}

// Свежая запись из кэша отдаётся без вызова адаптера.
func TestCoinDetail_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := newClock()
	raw := domain.RawCoinDetail{
		ID: "bitcoin", Symbol: "btc", Name: "Bitcoin",
		MarketData: &domain.RawMarketData{
			CurrentPrice: map[string]decimal.NullDecimal{"eur": decimal.NewNullDecimal(decimal.NewFromInt(59000))},
		},
	}
	value, err := json.Marshal(raw)
	require.NoError(t, err)

	cache := mocks.NewMockICache(ctrl)
	cache.EXPECT().
		Get(gomock.Any(), "coin_detail:bitcoin").
		Return(ports.CacheEntry{Key: "coin_detail:bitcoin", Value: value, FetchedAt: clock.Now(), TTL: time.Minute}, true, nil)

	api := mocks.NewMockIMarketAPI(ctrl)
	uc := New(api, cache, mocks.NewMockIProducer(ctrl), DefaultTTL(), newTestLogger())
	uc.now = clock.Now

	detail, err := uc.CoinDetail(context.Background(), "bitcoin", domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, "BTC", detail.Symbol)
	assert.Equal(t, "59000", detail.CurrentPrice.Value().String())
	assert.False(t, detail.MarketCap.Valid())
}

// Карточка кэшируется по id: смена валюты не вызывает новый запрос.
func TestCoinDetail_SharedAcrossCurrencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	raw := domain.RawCoinDetail{
		ID: "ethereum", Symbol: "eth", Name: "Ethereum",
		MarketData: &domain.RawMarketData{
			CurrentPrice: map[string]decimal.NullDecimal{
				"usd": decimal.NewNullDecimal(decimal.NewFromInt(3000)),
				"try": decimal.NewNullDecimal(decimal.NewFromInt(97000)),
			},
		},
	}
	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().FetchCoinDetail(gomock.Any(), domain.CoinID("ethereum")).Return(raw, nil).Times(1)

	uc, _ := newUseCase(api, mocks.NewMockIProducer(ctrl), newClock())
	ctx := context.Background()

	usd, err := uc.CoinDetail(ctx, "ethereum", domain.USD)
	require.NoError(t, err)
	try, err := uc.CoinDetail(ctx, "ethereum", domain.TRY)
	require.NoError(t, err)

	assert.Equal(t, "3000", usd.CurrentPrice.Value().String())
	assert.Equal(t, "97000", try.CurrentPrice.Value().String())
}

func TestCoinDetail_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().FetchCoinDetail(gomock.Any(), domain.CoinID("nope")).Return(domain.RawCoinDetail{}, domain.ErrNotFound)

	uc, cache := newUseCase(api, mocks.NewMockIProducer(ctrl), newClock())

	_, err := uc.CoinDetail(context.Background(), "nope", domain.USD)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, cache.Len())
}

func TestPriceHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	raw := domain.RawMarketChart{Prices: [][2]decimal.Decimal{
		{decimal.NewFromInt(1700000000000), decimal.RequireFromString("35000.5")},
		{decimal.NewFromInt(1700003600000), decimal.RequireFromString("35100")},
	}}
	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().FetchMarketChart(gomock.Any(), domain.CoinID("bitcoin"), domain.Days(7), domain.USD).Return(raw, nil).Times(1)

	uc, _ := newUseCase(api, mocks.NewMockIProducer(ctrl), newClock())
	ctx := context.Background()

	h, err := uc.PriceHistory(ctx, "bitcoin", 7, domain.USD)
	require.NoError(t, err)
	require.Len(t, h.Points, 2)
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), h.Points[0].Timestamp)
	assert.Equal(t, "35000.5", h.Points[0].Price.String())

	again, err := uc.PriceHistory(ctx, "bitcoin", 7, domain.USD)
	require.NoError(t, err)
	assert.Equal(t, h, again)
}

// Конвертер по умолчанию не кэшируется и публикует событие.
func TestConvert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().
		FetchSimplePrice(gomock.Any(), domain.CoinID("bitcoin"), domain.USD).
		Return(decimal.NewFromInt(20000), nil).
		Times(2)

	clock := newClock()
	broker := mocks.NewMockIProducer(ctrl)
	broker.EXPECT().
		Send(gomock.Any(), []byte("bitcoin"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, value []byte) error {
			var ev domain.ConversionEvent
			require.NoError(t, json.Unmarshal(value, &ev))
			assert.NotEmpty(t, ev.ID)
			assert.Equal(t, domain.CoinID("bitcoin"), ev.Coin)
			assert.Equal(t, domain.USD, ev.Target)
			assert.Equal(t, "50000", ev.Total.String())
			assert.Equal(t, clock.Now(), ev.At)
			return nil
		}).
		Times(2)

	uc, cache := newUseCase(api, broker, clock)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		conv, err := uc.Convert(ctx, "bitcoin", decimal.RequireFromString("2.5"), domain.USD)
		require.NoError(t, err)
		assert.Equal(t, "50000.00", conv.Display)
	}
	assert.Zero(t, cache.Len())
}

// С ненулевым TTL цена кэшируется, а ошибка брокера не ломает ответ.
func TestConvert_CachedPriceAndBrokerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().FetchSimplePrice(gomock.Any(), domain.CoinID("ethereum"), domain.EUR).Return(decimal.NewFromInt(3000), nil).Times(1)

	broker := mocks.NewMockIProducer(ctrl)
	broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("kafka down")).Times(2)

	uc, _ := newUseCase(api, broker, newClock())
	uc.ttl.SimplePrice = 30 * time.Second
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		conv, err := uc.Convert(ctx, "ethereum", decimal.NewFromInt(1), domain.EUR)
		require.NoError(t, err)
		assert.Equal(t, "3000.00", conv.Display)
	}
}

func TestConvert_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockIMarketAPI(ctrl)
	api.EXPECT().FetchSimplePrice(gomock.Any(), domain.CoinID("unknown"), domain.USD).Return(decimal.Zero, domain.ErrNotFound)

	uc, _ := newUseCase(api, mocks.NewMockIProducer(ctrl), newClock())
	ctx := context.Background()

	_, err := uc.Convert(ctx, "bitcoin", decimal.NewFromInt(-1), domain.USD)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = uc.Convert(ctx, "unknown", decimal.NewFromInt(1), domain.USD)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHandleConversionEvent(t *testing.T) {
	uc := New(nil, nil, nil, DefaultTTL(), newTestLogger())
	ctx := context.Background()

	assert.NoError(t, uc.HandleConversionEvent(ctx, domain.ConversionEvent{
		ID: "e1", Coin: "bitcoin", Target: domain.USD,
		Amount: decimal.NewFromInt(1), Total: decimal.NewFromInt(60000),
	}))
	assert.NoError(t, uc.HandleConversionEvent(ctx, domain.ConversionEvent{ID: "e2"}))
}
