package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"cryptoTracker/internal/domain"
)

// IMarketUseCase это контракт бизнес-логики трекера: кэшированные данные рынка, конвертер, события из Kafka.
type IMarketUseCase interface {
	TopCoins(ctx context.Context, currency domain.Currency, limit int) ([]domain.MarketRow, error)
	Catalog(ctx context.Context) ([]domain.CoinID, error)
	CoinDetail(ctx context.Context, id domain.CoinID, currency domain.Currency) (domain.CoinDetail, error)
	PriceHistory(ctx context.Context, id domain.CoinID, days domain.Days, currency domain.Currency) (domain.PriceHistory, error)
	Convert(ctx context.Context, id domain.CoinID, amount decimal.Decimal, target domain.Currency) (domain.Conversion, error)
	HandleConversionEvent(ctx context.Context, ev domain.ConversionEvent) error
}
