package ports

//go:generate mockgen -source=market_api.go -destination=../mocks/market_api_mock.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"cryptoTracker/internal/domain"
)

// IMarketAPI это контракт адаптера внешнего API рыночных данных (CoinGecko).
// Ошибки сети и HTTP оборачивают domain.ErrUpstream, неизвестная монета даёт domain.ErrNotFound.
type IMarketAPI interface {
	FetchTopCoins(ctx context.Context, currency domain.Currency, limit int) ([]domain.RawMarketCoin, error)
	FetchCoinCatalog(ctx context.Context) ([]domain.CatalogEntry, error)
	FetchCoinDetail(ctx context.Context, id domain.CoinID) (domain.RawCoinDetail, error)
	FetchMarketChart(ctx context.Context, id domain.CoinID, days domain.Days, currency domain.Currency) (domain.RawMarketChart, error)
	FetchSimplePrice(ctx context.Context, id domain.CoinID, target domain.Currency) (decimal.Decimal, error)
}
