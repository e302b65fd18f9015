package stream

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"cryptoTracker/internal/api/http/httperr"
	"cryptoTracker/internal/dashboard"
	"cryptoTracker/internal/domain"
)

// Config это настройки живой ленты. Переменные: TRACKER_STREAM_INTERVAL, TRACKER_STREAM_MIN_INTERVAL.
type Config struct {
	Interval    time.Duration `envconfig:"INTERVAL" default:"30s"`
	MinInterval time.Duration `envconfig:"MIN_INTERVAL" default:"5s"`
}

const (
	writeTimeout = 10 * time.Second
	readTimeout  = 60 * time.Second
	pingInterval = 25 * time.Second
)

// Controller раздаёт таблицу топ-монет по WebSocket. Данные идут через общий кэш,
// поэтому частые клиенты не увеличивают число запросов к внешнему API.
type Controller struct {
	renderer *dashboard.Renderer
	cfg      Config
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// New создаёт контроллер ленты.
func New(renderer *dashboard.Renderer, cfg Config, log *slog.Logger) *Controller {
	return &Controller{
		renderer: renderer,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 5 * time.Second,
			CheckOrigin:      func(*http.Request) bool { return true },
		},
		log: log,
	}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/v1/stream/markets", c.markets)
}

// Frame это одно сообщение ленты.
type Frame struct {
	Seq  int            `json:"seq"`
	At   time.Time      `json:"at"`
	Page dashboard.Page `json:"page"`
}

func (c *Controller) markets(ctx *gin.Context) {
	currency, err := domain.ParseCurrency(ctx.Query("currency"))
	if err != nil {
		httperr.Write(ctx, c.log, "stream", err)
		return
	}
	interval, err := c.interval(ctx.Query("interval"))
	if err != nil {
		httperr.Write(ctx, c.log, "stream", err)
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.log.Warn("stream upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	c.log.Info("stream opened", "currency", currency, "interval", interval, "ip", ctx.ClientIP())
	c.serve(ctx.Request.Context(), conn, currency, interval)
	c.log.Info("stream closed", "currency", currency)
}

func (c *Controller) interval(s string) (time.Duration, error) {
	if s == "" {
		return c.cfg.Interval, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < c.cfg.MinInterval {
		return 0, fmt.Errorf("%w: interval %q (min %s)", domain.ErrInvalidArgument, s, c.cfg.MinInterval)
	}
	return d, nil
}

// serve шлёт кадр сразу и затем каждые interval, пока клиент не отключится.
func (c *Controller) serve(ctx context.Context, conn *websocket.Conn, currency domain.Currency, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Читатель нужен, чтобы обработать close и pong от клиента.
	go func() {
		defer cancel()
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(readTimeout))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	seq := 0
	push := func() bool {
		page, err := c.renderer.Render(ctx, dashboard.Request{View: domain.MarketOverview, Currency: currency})
		if err != nil {
			c.log.Error("stream render failed", "error", err)
			return false
		}
		seq++
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(Frame{Seq: seq, At: time.Now().UTC(), Page: page}); err != nil {
			c.log.Debug("stream write failed", "error", err)
			return false
		}
		return true
	}

	if !push() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !push() {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
