package market

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptoTracker/internal/api/http/httperr"
	"cryptoTracker/internal/domain"
	"cryptoTracker/internal/ports"
	"cryptoTracker/internal/shaper"
)

// Controller это маршруты данных рынка: топ монет, каталог, карточка, история, конвертер.
type Controller struct {
	uc  ports.IMarketUseCase
	log *slog.Logger
}

// New создаёт контроллер рынка.
func New(uc ports.IMarketUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/markets", c.markets)
	api.GET("/coins", c.catalog)
	api.GET("/coins/:id", c.detail)
	api.GET("/coins/:id/history", c.history)
	api.POST("/convert", c.convert)
}

// @Summary Топ монет по капитализации
// @Tags market
// @Produce json
// @Param currency query string false "usd, try, eur"
// @Param limit query int false "1..250, по умолчанию 100"
// @Success 200 {object} MarketsResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/v1/markets [get]
func (c *Controller) markets(ctx *gin.Context) {
	currency, err := domain.ParseCurrency(ctx.Query("currency"))
	if err != nil {
		httperr.Write(ctx, c.log, "markets", err)
		return
	}
	limit, err := domain.ParseLimit(ctx.Query("limit"))
	if err != nil {
		httperr.Write(ctx, c.log, "markets", err)
		return
	}

	rows, err := c.uc.TopCoins(ctx.Request.Context(), currency, limit)
	if err != nil {
		httperr.Write(ctx, c.log, "markets", err)
		return
	}
	ctx.JSON(http.StatusOK, MarketsResponse{Currency: currency, Rows: rows})
}

// @Summary Каталог идентификаторов монет
// @Tags market
// @Produce json
// @Success 200 {object} CatalogResponse
// @Failure 502 {object} httperr.Response
// @Router /api/v1/coins [get]
func (c *Controller) catalog(ctx *gin.Context) {
	ids, err := c.uc.Catalog(ctx.Request.Context())
	if err != nil {
		httperr.Write(ctx, c.log, "catalog", err)
		return
	}
	ctx.JSON(http.StatusOK, CatalogResponse{Items: ids, DefaultIndex: shaper.DefaultCoinIndex(ids)})
}

// @Summary Карточка монеты
// @Tags market
// @Produce json
// @Param id path string true "идентификатор CoinGecko"
// @Param currency query string false "usd, try, eur"
// @Success 200 {object} domain.CoinDetail
// @Failure 404 {object} httperr.Response
// @Router /api/v1/coins/{id} [get]
func (c *Controller) detail(ctx *gin.Context) {
	id, err := domain.ParseCoinID(ctx.Param("id"))
	if err != nil {
		httperr.Write(ctx, c.log, "detail", err)
		return
	}
	currency, err := domain.ParseCurrency(ctx.Query("currency"))
	if err != nil {
		httperr.Write(ctx, c.log, "detail", err)
		return
	}

	detail, err := c.uc.CoinDetail(ctx.Request.Context(), id, currency)
	if err != nil {
		httperr.Write(ctx, c.log, "detail", err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// @Summary История цены
// @Tags market
// @Produce json
// @Param id path string true "идентификатор CoinGecko"
// @Param currency query string false "usd, try, eur"
// @Param days query int false "1, 7, 30, 90, 365"
// @Success 200 {object} domain.PriceHistory
// @Router /api/v1/coins/{id}/history [get]
func (c *Controller) history(ctx *gin.Context) {
	id, err := domain.ParseCoinID(ctx.Param("id"))
	if err != nil {
		httperr.Write(ctx, c.log, "history", err)
		return
	}
	currency, err := domain.ParseCurrency(ctx.Query("currency"))
	if err != nil {
		httperr.Write(ctx, c.log, "history", err)
		return
	}
	days, err := domain.ParseDays(ctx.Query("days"))
	if err != nil {
		httperr.Write(ctx, c.log, "history", err)
		return
	}

	h, err := c.uc.PriceHistory(ctx.Request.Context(), id, days, currency)
	if err != nil {
		httperr.Write(ctx, c.log, "history", err)
		return
	}
	ctx.JSON(http.StatusOK, h)
}

// @Summary Конвертер
// @Tags market
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "монета, количество, валюта"
// @Success 200 {object} domain.Conversion
// @Failure 400 {object} httperr.Response
// @Router /api/v1/convert [post]
func (c *Controller) convert(ctx *gin.Context) {
	var req ConvertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("convert bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, httperr.Response{Error: "invalid request: " + err.Error()})
		return
	}
	coin, amount, target, err := req.normalize()
	if err != nil {
		httperr.Write(ctx, c.log, "convert", err)
		return
	}

	conv, err := c.uc.Convert(ctx.Request.Context(), coin, amount, target)
	if err != nil {
		httperr.Write(ctx, c.log, "convert", err)
		return
	}
	ctx.JSON(http.StatusOK, conv)
}
