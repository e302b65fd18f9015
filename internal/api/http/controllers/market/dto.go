package market

import (
	"github.com/shopspring/decimal"

	"cryptoTracker/internal/domain"
)

// MarketsResponse это ответ GET /api/v1/markets.
type MarketsResponse struct {
	Currency domain.Currency    `json:"currency"`
	Rows     []domain.MarketRow `json:"rows"`
}

// CatalogResponse это ответ GET /api/v1/coins. DefaultIndex указывает на bitcoin или 0.
type CatalogResponse struct {
	Items        []domain.CoinID `json:"items"`
	DefaultIndex int             `json:"default_index"`
}

// ConvertRequest это тело POST /api/v1/convert. Пустые поля заменяются значениями по умолчанию.
type ConvertRequest struct {
	Coin   string           `json:"coin"`
	Amount *decimal.Decimal `json:"amount"`
	Target string           `json:"target"`
}

// normalize проверяет запрос и подставляет значения по умолчанию (bitcoin, 1, usd).
func (r ConvertRequest) normalize() (domain.CoinID, decimal.Decimal, domain.Currency, error) {
	coin := domain.DefaultCoin
	if r.Coin != "" {
		id, err := domain.ParseCoinID(r.Coin)
		if err != nil {
			return "", decimal.Zero, "", err
		}
		coin = id
	}
	amount := decimal.NewFromInt(1)
	if r.Amount != nil {
		amount = *r.Amount
	}
	target, err := domain.ParseCurrency(r.Target)
	if err != nil {
		return "", decimal.Zero, "", err
	}
	return coin, amount, target, nil
}
