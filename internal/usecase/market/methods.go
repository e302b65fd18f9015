package market

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cryptoTracker/internal/domain"
	"cryptoTracker/internal/ports"
	"cryptoTracker/internal/shaper"
)

var _ ports.IMarketUseCase = (*UseCase)(nil)

// TopCoins отдаёт топ монет по капитализации. Кэшируется сырой ответ адаптера по (валюта, лимит).
func (u *UseCase) TopCoins(ctx context.Context, currency domain.Currency, limit int) ([]domain.MarketRow, error) {
	key := cacheKey(opTopCoins, string(currency), strconv.Itoa(limit))
	raw, err := cached(ctx, u, opTopCoins, u.ttl.TopCoins, key, func(ctx context.Context) ([]domain.RawMarketCoin, error) {
		return u.api.FetchTopCoins(ctx, currency, limit)
	})
	if err != nil {
		return nil, err
	}
	return shaper.TopCoins(raw), nil
}

// Catalog отдаёт отсортированный список id монет для селектов.
func (u *UseCase) Catalog(ctx context.Context) ([]domain.CoinID, error) {
	raw, err := cached(ctx, u, opCatalog, u.ttl.Catalog, cacheKey(opCatalog), u.api.FetchCoinCatalog)
	if err != nil {
		return nil, err
	}
	return shaper.Catalog(raw), nil
}

// CoinDetail отдаёт карточку монеты. Сырой ответ кэшируется по id, цены выбираются по валюте уже после кэша.
func (u *UseCase) CoinDetail(ctx context.Context, id domain.CoinID, currency domain.Currency) (domain.CoinDetail, error) {
	key := cacheKey(opCoinDetail, string(id))
	raw, err := cached(ctx, u, opCoinDetail, u.ttl.CoinDetail, key, func(ctx context.Context) (domain.RawCoinDetail, error) {
		return u.api.FetchCoinDetail(ctx, id)
	})
	if err != nil {
		return domain.CoinDetail{}, err
	}
	return shaper.Detail(raw, currency), nil
}

// PriceHistory отдаёт ряд цен за days дней.
func (u *UseCase) PriceHistory(ctx context.Context, id domain.CoinID, days domain.Days, currency domain.Currency) (domain.PriceHistory, error) {
	key := cacheKey(opMarketChart, string(id), days.String(), string(currency))
	raw, err := cached(ctx, u, opMarketChart, u.ttl.MarketChart, key, func(ctx context.Context) (domain.RawMarketChart, error) {
		return u.api.FetchMarketChart(ctx, id, days, currency)
	})
	if err != nil {
		return domain.PriceHistory{}, err
	}
	return shaper.History(id, currency, days, raw), nil
}

// Convert считает стоимость amount монет в валюте target и публикует событие конвертации.
// Ошибка брокера не ломает конвертацию, только пишется в лог.
func (u *UseCase) Convert(ctx context.Context, id domain.CoinID, amount decimal.Decimal, target domain.Currency) (domain.Conversion, error) {
	if amount.IsNegative() {
		return domain.Conversion{}, fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidArgument)
	}

	key := cacheKey(opSimplePrice, string(id), string(target))
	unit, err := cached(ctx, u, opSimplePrice, u.ttl.SimplePrice, key, func(ctx context.Context) (decimal.Decimal, error) {
		return u.api.FetchSimplePrice(ctx, id, target)
	})
	if err != nil {
		return domain.Conversion{}, err
	}

	conv := shaper.Conversion(id, amount, target, unit)
	u.publish(ctx, conv)

	return conv, nil
}

func (u *UseCase) publish(ctx context.Context, conv domain.Conversion) {
	ev := domain.ConversionEvent{
		ID:        uuid.NewString(),
		Coin:      conv.Coin,
		Target:    conv.Target,
		Amount:    conv.Amount,
		UnitPrice: conv.UnitPrice,
		Total:     conv.Total,
		At:        u.now().UTC(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("conversion event encode", "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(ev.Coin), value); err != nil {
		u.log.Warn("broker send", "coin", ev.Coin, "error", err)
		return
	}
	u.log.Debug("conversion published", "id", ev.ID, "coin", ev.Coin, "target", ev.Target)
}

// HandleConversionEvent вызывается консьюмером на каждое сообщение из топика конвертаций.
func (u *UseCase) HandleConversionEvent(ctx context.Context, ev domain.ConversionEvent) error {
	if ev.Coin == "" || ev.Target == "" {
		u.log.Warn("conversion event skipped", "id", ev.ID, "reason", "empty coin or target")
		return nil
	}
	conversionsTotal.WithLabelValues(string(ev.Coin), string(ev.Target)).Inc()
	u.log.Info("conversion received", "id", ev.ID, "coin", ev.Coin, "target", ev.Target, "amount", ev.Amount.String(), "total", ev.Total.String())
	return nil
}
