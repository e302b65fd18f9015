package shaper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoTracker/internal/domain"
)

func rank(n int) *int { return &n }

func TestTopCoins(t *testing.T) {
	raw := []domain.RawMarketCoin{
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", MarketCapRank: rank(2),
			CurrentPrice: decimal.NewNullDecimal(decimal.NewFromInt(3000))},
		{ID: "unranked", Symbol: "unr", Name: "Unranked"},
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", MarketCapRank: rank(1),
			CurrentPrice:             decimal.NewNullDecimal(decimal.NewFromInt(60000)),
			PriceChangePercentage24h: decimal.NewNullDecimal(decimal.RequireFromString("-1.25")),
			MarketCap:                decimal.NewNullDecimal(decimal.NewFromInt(1_200_000_000_000))},
		{ID: "tether", Symbol: "usdt", Name: "Tether", MarketCapRank: rank(3)},
	}

	rows := TopCoins(raw)

	require.Len(t, rows, len(raw))
	assert.Equal(t, []int{1, 2, 3, 0}, []int{rows[0].Rank, rows[1].Rank, rows[2].Rank, rows[3].Rank})
	assert.Equal(t, "BTC", rows[0].Symbol)
	assert.Equal(t, "ETH", rows[1].Symbol)
	assert.Equal(t, "USDT", rows[2].Symbol)
	assert.Equal(t, domain.CoinID("unranked"), rows[3].ID, "строка без ранга уходит в конец")
	assert.True(t, rows[0].Price.Equal(decimal.NewFromInt(60000)))
	assert.Equal(t, "-1.25", rows[0].Change24hPct.String())
	assert.True(t, rows[2].Price.IsZero(), "null цена даёт ноль")
}

func TestTopCoins_Empty(t *testing.T) {
	rows := TopCoins(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCatalog(t *testing.T) {
	raw := []domain.CatalogEntry{
		{ID: "solana"}, {ID: "bitcoin"}, {ID: ""}, {ID: "Bitcoin"}, {ID: "ethereum"}, {ID: "solana"},
	}
	assert.Equal(t, []domain.CoinID{"bitcoin", "ethereum", "solana"}, Catalog(raw))
}

func TestDefaultCoinIndex(t *testing.T) {
	tests := []struct {
		name    string
		catalog []domain.CoinID
		want    int
	}{
		{name: "bitcoin в середине", catalog: []domain.CoinID{"aave", "bitcoin", "ethereum"}, want: 1},
		{name: "bitcoin нет", catalog: []domain.CoinID{"aave", "ethereum"}, want: 0},
		{name: "пустой каталог", catalog: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultCoinIndex(tt.catalog))
		})
	}
}

const bitcoinDetail = `{
  "id": "bitcoin",
  "symbol": "btc",
  "name": "Bitcoin",
  "image": {"large": "https://assets.example/bitcoin.png"},
  "description": {"en": "<p>Bitcoin is the first cryptocurrency.</p>"},
  "links": {"homepage": ["", "http://www.bitcoin.org", ""]},
  "market_data": {
    "current_price": {"usd": 67000.5, "eur": 61000},
    "market_cap": {"usd": 1320000000000},
    "ath": {"usd": 73738},
    "ath_date": {"usd": "2024-03-14T07:10:36.635Z"},
    "high_24h": {"usd": 68000},
    "low_24h": {"usd": null}
  }
}`

func TestDetail(t *testing.T) {
	var raw domain.RawCoinDetail
	require.NoError(t, json.Unmarshal([]byte(bitcoinDetail), &raw))

	d := Detail(raw, domain.USD)

	assert.Equal(t, "BTC", d.Symbol)
	assert.Equal(t, "https://assets.example/bitcoin.png", d.ImageURL.Value())
	assert.Equal(t, "http://www.bitcoin.org", d.HomepageURL.Value(), "берётся первый непустой адрес")
	assert.Equal(t, "67000.5", d.CurrentPrice.Value().String())
	assert.Equal(t, "73738", d.AllTimeHigh.String())
	assert.Equal(t, time.Date(2024, 3, 14, 7, 10, 36, 635_000_000, time.UTC), d.AllTimeHighDate.Value())
	assert.False(t, d.Low24h.Valid(), "null в ответе это недоступное значение")
	assert.Equal(t, domain.Unavailable, d.Low24h.String())
}

func TestDetail_OtherCurrencyMissing(t *testing.T) {
	var raw domain.RawCoinDetail
	require.NoError(t, json.Unmarshal([]byte(bitcoinDetail), &raw))

	d := Detail(raw, domain.TRY)

	assert.False(t, d.CurrentPrice.Valid())
	assert.False(t, d.AllTimeHighDate.Valid())
	assert.Equal(t, domain.TRY, d.Currency)
}

func TestDetail_MissingNestedFields(t *testing.T) {
	raw := domain.RawCoinDetail{ID: "obscure", Symbol: "obs", Name: "Obscure"}

	var d domain.CoinDetail
	require.NotPanics(t, func() { d = Detail(raw, domain.USD) })

	assert.Equal(t, "OBS", d.Symbol)
	assert.Equal(t, domain.Unavailable, d.DescriptionHTML.String())
	assert.Equal(t, "", d.DescriptionHTML.Value(), "описание по умолчанию пустое")
	assert.False(t, d.ImageURL.Valid())
	assert.False(t, d.HomepageURL.Valid())
	assert.False(t, d.CurrentPrice.Valid())
	assert.False(t, d.MarketCap.Valid())
	assert.False(t, d.High24h.Valid())
}

func TestHistory(t *testing.T) {
	var raw domain.RawMarketChart
	require.NoError(t, json.Unmarshal([]byte(`{"prices": [[1700000000000, 100.5], [1700003600000, 101.0]]}`), &raw))

	h := History("bitcoin", domain.USD, 7, raw)

	require.Len(t, h.Points, 2)
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), h.Points[0].Timestamp)
	assert.Equal(t, time.Date(2023, 11, 14, 23, 13, 20, 0, time.UTC), h.Points[1].Timestamp)
	assert.True(t, h.Points[0].Price.Equal(decimal.RequireFromString("100.5")))
	assert.True(t, h.Points[1].Price.Equal(decimal.RequireFromString("101.0")))
	assert.Equal(t, domain.Days(7), h.Days)
	assert.True(t, HistoryIsMonotonic(h))
}

func TestHistory_KeepsUpstreamOrder(t *testing.T) {
	var raw domain.RawMarketChart
	require.NoError(t, json.Unmarshal([]byte(`{"prices": [[1700003600000, 2], [1700000000123, 1]]}`), &raw))

	h := History("bitcoin", domain.USD, 1, raw)

	require.Len(t, h.Points, 2)
	assert.Equal(t, int64(1700003600000), h.Points[0].Timestamp.UnixMilli())
	assert.Equal(t, int64(1700000000123), h.Points[1].Timestamp.UnixMilli(), "миллисекунды не теряются")
	assert.False(t, HistoryIsMonotonic(h))
}

func TestConversion(t *testing.T) {
	c := Conversion("bitcoin", decimal.RequireFromString("2.5"), domain.USD, decimal.NewFromInt(20000))

	assert.Equal(t, "50000.00", c.Display)
	assert.True(t, c.Total.Equal(decimal.NewFromInt(50000)))
}

func TestConversion_DisplayRoundingOnly(t *testing.T) {
	c := Conversion("bitcoin", decimal.RequireFromString("0.3333"), domain.EUR, decimal.RequireFromString("3.14159"))

	assert.Equal(t, "1.05", c.Display)
	assert.Equal(t, "1.047091947", c.Total.String(), "внутреннее значение не округляется")
}
