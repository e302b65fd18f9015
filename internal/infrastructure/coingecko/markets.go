package coingecko

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"cryptoTracker/internal/domain"
	"cryptoTracker/internal/ports"
)

var _ ports.IMarketAPI = (*Client)(nil)

// FetchTopCoins возвращает первую страницу coins/markets, отсортированную по капитализации.
func (c *Client) FetchTopCoins(ctx context.Context, currency domain.Currency, limit int) ([]domain.RawMarketCoin, error) {
	q := url.Values{}
	q.Set("vs_currency", string(currency))
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(limit))
	q.Set("page", "1")
	q.Set("sparkline", "false")

	var coins []domain.RawMarketCoin
	if err := c.getJSON(ctx, "coins/markets", "/coins/markets", q, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// FetchCoinCatalog возвращает полный список монет (тысячи записей, без пагинации).
func (c *Client) FetchCoinCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	var list []domain.CatalogEntry
	if err := c.getJSON(ctx, "coins/list", "/coins/list", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// FetchCoinDetail возвращает карточку монеты без тикеров, локализаций и данных сообщества.
func (c *Client) FetchCoinDetail(ctx context.Context, id domain.CoinID) (domain.RawCoinDetail, error) {
	q := url.Values{}
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("market_data", "true")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")
	q.Set("sparkline", "false")

	var detail domain.RawCoinDetail
	if err := c.getJSON(ctx, "coins/{id}", "/coins/"+url.PathEscape(string(id)), q, &detail); err != nil {
		return domain.RawCoinDetail{}, err
	}
	return detail, nil
}

// FetchMarketChart возвращает ряд цен за days дней.
func (c *Client) FetchMarketChart(ctx context.Context, id domain.CoinID, days domain.Days, currency domain.Currency) (domain.RawMarketChart, error) {
	q := url.Values{}
	q.Set("vs_currency", string(currency))
	q.Set("days", days.String())

	var chart domain.RawMarketChart
	path := "/coins/" + url.PathEscape(string(id)) + "/market_chart"
	if err := c.getJSON(ctx, "coins/{id}/market_chart", path, q, &chart); err != nil {
		return domain.RawMarketChart{}, err
	}
	return chart, nil
}

// FetchSimplePrice возвращает текущую цену монеты в target.
// CoinGecko отвечает {} на неизвестную монету, это ErrNotFound.
func (c *Client) FetchSimplePrice(ctx context.Context, id domain.CoinID, target domain.Currency) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("ids", string(id))
	q.Set("vs_currencies", string(target))

	var prices map[string]map[string]decimal.NullDecimal
	if err := c.getJSON(ctx, "simple/price", "/simple/price", q, &prices); err != nil {
		return decimal.Zero, err
	}
	p, ok := prices[string(id)][string(target)]
	if !ok || !p.Valid {
		return decimal.Zero, fmt.Errorf("%w: price %s/%s", domain.ErrNotFound, id, target)
	}
	return p.Decimal, nil
}
