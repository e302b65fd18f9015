package domain

import "github.com/shopspring/decimal"

// Сырые записи внешнего API. Адаптер декодирует в них JSON как есть,
// кэш хранит их без изменений, а shaper превращает в записи для отображения.

// RawMarketCoin это элемент ответа coins/markets.
type RawMarketCoin struct {
	ID                       string              `json:"id"`
	Symbol                   string              `json:"symbol"`
	Name                     string              `json:"name"`
	Image                    string              `json:"image,omitempty"`
	CurrentPrice             decimal.NullDecimal `json:"current_price"`
	MarketCap                decimal.NullDecimal `json:"market_cap"`
	MarketCapRank            *int                `json:"market_cap_rank"`
	PriceChangePercentage24h decimal.NullDecimal `json:"price_change_percentage_24h"`
}

// CatalogEntry это элемент ответа coins/list.
type CatalogEntry struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// RawCoinDetail это ответ coins/{id}. Вложенные объекты могут отсутствовать.
type RawCoinDetail struct {
	ID          string            `json:"id"`
	Symbol      string            `json:"symbol"`
	Name        string            `json:"name"`
	Image       *RawImage         `json:"image,omitempty"`
	Description map[string]string `json:"description,omitempty"`
	Links       *RawLinks         `json:"links,omitempty"`
	MarketData  *RawMarketData    `json:"market_data,omitempty"`
}

type RawImage struct {
	Thumb string `json:"thumb,omitempty"`
	Small string `json:"small,omitempty"`
	Large string `json:"large,omitempty"`
}

type RawLinks struct {
	Homepage []string `json:"homepage,omitempty"`
}

// RawMarketData содержит цены по валютам: ключ карты это код валюты ("usd").
type RawMarketData struct {
	CurrentPrice map[string]decimal.NullDecimal `json:"current_price,omitempty"`
	MarketCap    map[string]decimal.NullDecimal `json:"market_cap,omitempty"`
	ATH          map[string]decimal.NullDecimal `json:"ath,omitempty"`
	ATHDate      map[string]string              `json:"ath_date,omitempty"`
	High24h      map[string]decimal.NullDecimal `json:"high_24h,omitempty"`
	Low24h       map[string]decimal.NullDecimal `json:"low_24h,omitempty"`
}

// RawMarketChart это ответ coins/{id}/market_chart. Каждая точка: [timestampMs, price].
type RawMarketChart struct {
	Prices [][2]decimal.Decimal `json:"prices"`
}
