package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketRow это строка таблицы топ-монет. Ключ строки: Rank.
type MarketRow struct {
	Rank         int             `json:"rank"`
	ID           CoinID          `json:"id"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	Price        decimal.Decimal `json:"price"`
	Change24hPct decimal.Decimal `json:"change_24h_pct"`
	MarketCap    decimal.Decimal `json:"market_cap"`
}

// CoinDetail это карточка монеты. Все поля из вложенных объектов ответа опциональны.
type CoinDetail struct {
	ID              CoinID                    `json:"id"`
	Name            string                    `json:"name"`
	Symbol          string                    `json:"symbol"`
	Currency        Currency                  `json:"currency"`
	ImageURL        Optional[string]          `json:"image_url"`
	DescriptionHTML Optional[string]          `json:"description_html"`
	HomepageURL     Optional[string]          `json:"homepage_url"`
	CurrentPrice    Optional[decimal.Decimal] `json:"current_price"`
	MarketCap       Optional[decimal.Decimal] `json:"market_cap"`
	AllTimeHigh     Optional[decimal.Decimal] `json:"all_time_high"`
	AllTimeHighDate Optional[time.Time]       `json:"all_time_high_date"`
	High24h         Optional[decimal.Decimal] `json:"high_24h"`
	Low24h          Optional[decimal.Decimal] `json:"low_24h"`
}

// PricePoint это одна точка графика цены.
type PricePoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Price     decimal.Decimal `json:"price"`
}

// PriceHistory это ряд цен для (монета, валюта, дни) в порядке, в котором его отдал upstream.
type PriceHistory struct {
	Coin     CoinID       `json:"coin"`
	Currency Currency     `json:"currency"`
	Days     Days         `json:"days"`
	Points   []PricePoint `json:"points"`
}

// Conversion это результат конвертера. Total не округляется, Display округлён до двух знаков.
type Conversion struct {
	Coin      CoinID          `json:"coin"`
	Amount    decimal.Decimal `json:"amount"`
	Target    Currency        `json:"target"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Display   string          `json:"display"`
}

// ConversionEvent публикуется в брокер после каждой успешной конвертации.
type ConversionEvent struct {
	ID        string          `json:"id"`
	Coin      CoinID          `json:"coin"`
	Target    Currency        `json:"target"`
	Amount    decimal.Decimal `json:"amount"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	At        time.Time       `json:"at"`
}
