// Команда snapshot отрисовывает одну страницу дашборда и печатает её модель в stdout (JSON или YAML).
//
//	snapshot -view overview -currency eur
//	snapshot -view detail -coin ethereum -days 7 -format yaml
//	snapshot -view converter -coin bitcoin -amount 2.5 -target try
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"cryptoTracker/internal/app"
	"cryptoTracker/internal/dashboard"
	"cryptoTracker/internal/domain"
	"cryptoTracker/internal/infrastructure/coingecko"
	"cryptoTracker/internal/infrastructure/kafka"
	"cryptoTracker/internal/infrastructure/memory"
	"cryptoTracker/internal/pkg/logger"
	"cryptoTracker/internal/usecase/market"
)

// exitPageError возвращается, когда страница отрисована в состоянии error.
const exitPageError = 2

type options struct {
	view     string
	currency string
	coin     string
	days     string
	amount   string
	target   string
	format   string
	timeout  time.Duration
}

func main() {
	var o options
	flag.StringVar(&o.view, "view", "overview", "page: overview, detail, converter")
	flag.StringVar(&o.currency, "currency", "usd", "quote currency: usd, try, eur")
	flag.StringVar(&o.coin, "coin", "", "coin id (default bitcoin)")
	flag.StringVar(&o.days, "days", "30", "history range: 1, 7, 30, 90, 365")
	flag.StringVar(&o.amount, "amount", "1", "converter amount")
	flag.StringVar(&o.target, "target", "usd", "converter target currency")
	flag.StringVar(&o.format, "format", "json", "output format: json, yaml")
	flag.DurationVar(&o.timeout, "timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	os.Exit(run(o, os.Stdout))
}

func run(o options, out io.Writer) int {
	cfg, err := app.LoadCfg()
	if err != nil {
		slog.Error("config load failed", "error", err)
		return 1
	}
	log := logger.NewWithLevel(cfg.Log.Level)

	req, err := o.request()
	if err != nil {
		log.Error("bad flags", "error", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	api := coingecko.New(&cfg.CoinGecko, log)
	cache := memory.NewCache(&cfg.Cache.Config, log)
	uc := market.New(api, cache, kafka.NopProducer{}, cfg.Cache.TTLConfig, log)

	page, err := dashboard.NewRenderer(uc, log).Render(ctx, req)
	if err != nil {
		log.Error("render failed", "error", err)
		return 1
	}
	if err := encode(out, page, o.format); err != nil {
		log.Error("encode failed", "error", err)
		return 1
	}
	if page.State == domain.StateError {
		return exitPageError
	}
	return 0
}

func (o options) request() (dashboard.Request, error) {
	var req dashboard.Request
	var err error

	if req.View, err = domain.ParseView(o.view); err != nil {
		return req, err
	}
	if req.Currency, err = domain.ParseCurrency(o.currency); err != nil {
		return req, err
	}
	if req.Target, err = domain.ParseCurrency(o.target); err != nil {
		return req, err
	}
	if req.Days, err = domain.ParseDays(o.days); err != nil {
		return req, err
	}
	if o.coin != "" {
		if req.Coin, err = domain.ParseCoinID(o.coin); err != nil {
			return req, err
		}
	}
	amount, err := decimal.NewFromString(o.amount)
	if err != nil || amount.IsNegative() {
		return req, fmt.Errorf("%w: amount %q", domain.ErrInvalidArgument, o.amount)
	}
	req.Amount = decimal.NewNullDecimal(amount)
	return req, nil
}

// encode печатает страницу. YAML строится из JSON-представления, поэтому поля
// и неизвестные значения (null) совпадают с HTTP-ответом.
func encode(w io.Writer, page dashboard.Page, format string) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := buf.WriteTo(w)
		return err
	case "yaml":
		var node yaml.Node
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: format %q", domain.ErrInvalidArgument, format)
	}
}
