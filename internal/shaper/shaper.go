// Package shaper превращает сырые ответы CoinGecko в записи для отображения.
// Все функции чистые: без I/O и без глобального состояния.
package shaper

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cryptoTracker/internal/domain"
)

// TopCoins выбирает поля таблицы, переводит символ в верхний регистр и сортирует по рангу.
// Строки без ранга уходят в конец в исходном порядке.
func TopCoins(raw []domain.RawMarketCoin) []domain.MarketRow {
	rows := make([]domain.MarketRow, 0, len(raw))
	for _, c := range raw {
		row := domain.MarketRow{
			ID:           domain.CoinID(c.ID),
			Name:         c.Name,
			Symbol:       strings.ToUpper(c.Symbol),
			Price:        c.CurrentPrice.Decimal,
			Change24hPct: c.PriceChangePercentage24h.Decimal,
			MarketCap:    c.MarketCap.Decimal,
		}
		if c.MarketCapRank != nil {
			row.Rank = *c.MarketCapRank
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Rank, rows[j].Rank
		if a == 0 || b == 0 {
			return a != 0 && b == 0
		}
		return a < b
	})
	return rows
}

// Catalog возвращает отсортированный список идентификаторов без дублей и пустых значений.
func Catalog(raw []domain.CatalogEntry) []domain.CoinID {
	seen := make(map[domain.CoinID]struct{}, len(raw))
	ids := make([]domain.CoinID, 0, len(raw))
	for _, e := range raw {
		id := domain.CoinID(strings.ToLower(strings.TrimSpace(e.ID)))
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DefaultCoinIndex возвращает позицию domain.DefaultCoin в каталоге или 0.
func DefaultCoinIndex(catalog []domain.CoinID) int {
	i := sort.Search(len(catalog), func(i int) bool { return catalog[i] >= domain.DefaultCoin })
	if i < len(catalog) && catalog[i] == domain.DefaultCoin {
		return i
	}
	return 0
}

// Detail собирает карточку монеты для валюты currency.
// Любое отсутствующее вложенное поле становится domain.Missing, а не паникой.
func Detail(raw domain.RawCoinDetail, currency domain.Currency) domain.CoinDetail {
	d := domain.CoinDetail{
		ID:       domain.CoinID(raw.ID),
		Name:     raw.Name,
		Symbol:   strings.ToUpper(raw.Symbol),
		Currency: currency,
	}
	if raw.Image != nil {
		d.ImageURL = nonEmpty(raw.Image.Large)
	}
	if raw.Description != nil {
		d.DescriptionHTML = nonEmpty(raw.Description["en"])
	}
	if raw.Links != nil {
		for _, h := range raw.Links.Homepage {
			if h = strings.TrimSpace(h); h != "" {
				d.HomepageURL = domain.Known(h)
				break
			}
		}
	}
	if md := raw.MarketData; md != nil {
		cur := string(currency)
		d.CurrentPrice = price(md.CurrentPrice, cur)
		d.MarketCap = price(md.MarketCap, cur)
		d.AllTimeHigh = price(md.ATH, cur)
		d.High24h = price(md.High24h, cur)
		d.Low24h = price(md.Low24h, cur)
		if s, ok := md.ATHDate[cur]; ok {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				d.AllTimeHighDate = domain.Known(t.UTC())
			}
		}
	}
	return d
}

func nonEmpty(s string) domain.Optional[string] {
	if s == "" {
		return domain.Missing[string]()
	}
	return domain.Known(s)
}

func price(m map[string]decimal.NullDecimal, currency string) domain.Optional[decimal.Decimal] {
	v, ok := m[currency]
	if !ok || !v.Valid {
		return domain.Missing[decimal.Decimal]()
	}
	return domain.Known(v.Decimal)
}

// History переводит пары [timestampMs, price] в точки графика.
// Порядок upstream сохраняется: непоследовательный ряд должен быть виден, а не спрятан сортировкой.
func History(coin domain.CoinID, currency domain.Currency, days domain.Days, raw domain.RawMarketChart) domain.PriceHistory {
	points := make([]domain.PricePoint, 0, len(raw.Prices))
	for _, p := range raw.Prices {
		points = append(points, domain.PricePoint{
			Timestamp: time.UnixMilli(p[0].IntPart()).UTC(),
			Price:     p[1],
		})
	}
	return domain.PriceHistory{Coin: coin, Currency: currency, Days: days, Points: points}
}

// HistoryIsMonotonic сообщает, идут ли точки строго по возрастанию времени.
func HistoryIsMonotonic(h domain.PriceHistory) bool {
	for i := 1; i < len(h.Points); i++ {
		if !h.Points[i].Timestamp.After(h.Points[i-1].Timestamp) {
			return false
		}
	}
	return true
}

// Conversion считает total = unitPrice * amount. Округление только в Display.
func Conversion(coin domain.CoinID, amount decimal.Decimal, target domain.Currency, unitPrice decimal.Decimal) domain.Conversion {
	total := unitPrice.Mul(amount)
	return domain.Conversion{
		Coin:      coin,
		Amount:    amount,
		Target:    target,
		UnitPrice: unitPrice,
		Total:     total,
		Display:   total.StringFixed(2),
	}
}
