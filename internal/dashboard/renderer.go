// Package dashboard собирает модели страниц дашборда поверх юзкейса.
// Ошибки внешнего API не выходят за пределы страницы: она получает состояние error и уведомление.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"cryptoTracker/internal/domain"
	"cryptoTracker/internal/ports"
	"cryptoTracker/internal/shaper"
)

// Тексты уведомлений.
const (
	NoticeUnavailable  = "Market data is temporarily unavailable. Please try again later."
	NoticeNotFound     = "Coin %q was not found."
	NoticeNonMonotonic = "Price history arrived out of order; the chart may look jagged."
)

// Renderer это единая точка отрисовки страниц.
type Renderer struct {
	uc  ports.IMarketUseCase
	log *slog.Logger
}

// NewRenderer создаёт отрисовщик страниц.
func NewRenderer(uc ports.IMarketUseCase, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{uc: uc, log: log}
}

// Render строит страницу для req.View. Неизвестная страница даёт ErrInvalidArgument,
// остальные ошибки превращаются в состояние страницы.
func (r *Renderer) Render(ctx context.Context, req Request) (Page, error) {
	req = withDefaults(req)

	switch req.View {
	case domain.MarketOverview:
		return r.overview(ctx, req), nil
	case domain.DetailAnalysis:
		return r.detail(ctx, req), nil
	case domain.Converter:
		return r.converter(ctx, req), nil
	default:
		return Page{}, fmt.Errorf("%w: view %s", domain.ErrInvalidArgument, req.View)
	}
}

func withDefaults(req Request) Request {
	if req.Currency == "" {
		req.Currency = domain.DefaultCurrency
	}
	if req.Target == "" {
		req.Target = domain.DefaultCurrency
	}
	if req.Days == 0 {
		req.Days = domain.DefaultDays
	}
	if !req.Amount.Valid {
		req.Amount = decimal.NewNullDecimal(decimal.NewFromInt(1))
	}
	return req
}

func (r *Renderer) overview(ctx context.Context, req Request) Page {
	page := Page{View: req.View.String(), State: domain.StateSuccess}
	ov := &Overview{Currency: req.Currency, Rows: []domain.MarketRow{}}
	page.Overview = ov

	rows, err := r.uc.TopCoins(ctx, req.Currency, domain.DefaultLimit)
	if err != nil {
		r.fail(&page, "", err)
		return page
	}
	ov.Rows = rows
	return page
}

func (r *Renderer) detail(ctx context.Context, req Request) Page {
	page := Page{View: req.View.String(), State: domain.StateSuccess}
	d := &Detail{Currency: req.Currency, Days: req.Days, Ranges: domain.Ranges, Selector: Selector{Options: []domain.CoinID{}}}
	page.Detail = d

	coin, sel, err := r.selectCoin(ctx, req.Coin)
	d.Selector = sel
	d.Coin = coin
	if err != nil {
		r.fail(&page, coin, err)
		return page
	}

	card, err := r.uc.CoinDetail(ctx, coin, req.Currency)
	if err != nil {
		r.fail(&page, coin, err)
		return page
	}
	d.Card = &card

	h, err := r.uc.PriceHistory(ctx, coin, req.Days, req.Currency)
	if err != nil {
		r.fail(&page, coin, err)
		return page
	}
	d.History = &h
	if !shaper.HistoryIsMonotonic(h) {
		page.Notice = NoticeNonMonotonic
	}
	return page
}

func (r *Renderer) converter(ctx context.Context, req Request) Page {
	page := Page{View: req.View.String(), State: domain.StateSuccess}
	cv := &Converter{
		Amount:     req.Amount.Decimal,
		Target:     req.Target,
		Currencies: domain.Currencies,
		Selector:   Selector{Options: []domain.CoinID{}},
	}
	page.Converter = cv

	coin, sel, err := r.selectCoin(ctx, req.Coin)
	cv.Selector = sel
	cv.Coin = coin
	if err != nil {
		r.fail(&page, coin, err)
		return page
	}

	conv, err := r.uc.Convert(ctx, coin, req.Amount.Decimal, req.Target)
	if err != nil {
		r.fail(&page, coin, err)
		return page
	}
	cv.Result = &conv
	return page
}

// selectCoin загружает каталог и выбирает монету: переданную или bitcoin (иначе первую).
func (r *Renderer) selectCoin(ctx context.Context, coin domain.CoinID) (domain.CoinID, Selector, error) {
	sel := Selector{Options: []domain.CoinID{}, Selected: -1}

	catalog, err := r.uc.Catalog(ctx)
	if err != nil {
		if coin == "" {
			coin = domain.DefaultCoin
		}
		return coin, sel, err
	}
	sel.Options = catalog

	if coin == "" {
		if len(catalog) == 0 {
			return domain.DefaultCoin, sel, nil
		}
		sel.Selected = shaper.DefaultCoinIndex(catalog)
		return catalog[sel.Selected], sel, nil
	}
	sel.Selected = slices.Index(catalog, coin)
	return coin, sel, nil
}

func (r *Renderer) fail(page *Page, coin domain.CoinID, err error) {
	page.State = domain.StateError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		page.Notice = fmt.Sprintf(NoticeNotFound, coin)
	case errors.Is(err, domain.ErrInvalidArgument):
		page.Notice = err.Error()
	default:
		page.Notice = NoticeUnavailable
	}
	r.log.Warn("view render failed", "view", page.View, "coin", coin, "error", err)
}
