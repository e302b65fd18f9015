package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cryptoTracker/internal/domain"
)

// Config это настройки клиента CoinGecko. Переменные: TRACKER_COINGECKO_BASE_URL, _TIMEOUT, _USER_AGENT.
type Config struct {
	BaseURL   string        `envconfig:"BASE_URL" default:"https://api.coingecko.com/api/v3"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"10s"`
	UserAgent string        `envconfig:"USER_AGENT" default:"cryptoTracker/1.0"`
}

// maxErrorBody ограничивает кусок тела ответа, который попадает в текст ошибки.
const maxErrorBody = 256

// Client это HTTP-клиент CoinGecko v3 без ключа. Ретраев нет, кроме того, что делает транспорт.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// New создаёт клиент по конфигу.
func New(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	if log == nil {
		log = slog.Default()
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.coingecko.com/api/v3"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    base,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// getJSON выполняет GET по endpoint и декодирует тело в out.
// endpoint идёт в метки метрик, поэтому это шаблон пути ("coins/{id}"), а не сам путь.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		c.log.Debug("upstream request failed", "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %s: %v", domain.ErrUpstream, endpoint, err)
	}
	defer resp.Body.Close()
	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Debug("upstream bad status", "endpoint", endpoint, "status", resp.StatusCode, "body", string(body))
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, endpoint)
		}
		return fmt.Errorf("%w: %s: status %d: %s", domain.ErrUpstream, endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode: %v", domain.ErrUpstream, endpoint, err)
	}
	return nil
}
