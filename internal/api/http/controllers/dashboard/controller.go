package dashboard

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"cryptoTracker/internal/api/http/httperr"
	"cryptoTracker/internal/dashboard"
	"cryptoTracker/internal/domain"
)

// Controller отдаёт модели страниц дашборда: overview, detail, converter.
type Controller struct {
	renderer *dashboard.Renderer
	log      *slog.Logger
}

// New создаёт контроллер страниц.
func New(renderer *dashboard.Renderer, log *slog.Logger) *Controller {
	return &Controller{renderer: renderer, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/v1/views/:view", c.view)
}

// @Summary Модель страницы дашборда
// @Description Ошибки внешнего API отдаются как 200 со state=error и notice.
// @Tags dashboard
// @Produce json
// @Param view path string true "overview, detail, converter"
// @Success 200 {object} dashboard.Page
// @Failure 400 {object} httperr.Response
// @Router /api/v1/views/{view} [get]
func (c *Controller) view(ctx *gin.Context) {
	req, err := parseRequest(ctx)
	if err != nil {
		httperr.Write(ctx, c.log, "view", err)
		return
	}
	page, err := c.renderer.Render(ctx.Request.Context(), req)
	if err != nil {
		httperr.Write(ctx, c.log, "view", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

func parseRequest(ctx *gin.Context) (dashboard.Request, error) {
	var req dashboard.Request
	var err error

	if req.View, err = domain.ParseView(ctx.Param("view")); err != nil {
		return req, err
	}
	if req.Currency, err = domain.ParseCurrency(ctx.Query("currency")); err != nil {
		return req, err
	}
	if req.Target, err = domain.ParseCurrency(ctx.Query("target")); err != nil {
		return req, err
	}
	if req.Days, err = domain.ParseDays(ctx.Query("days")); err != nil {
		return req, err
	}
	if s := ctx.Query("coin"); s != "" {
		if req.Coin, err = domain.ParseCoinID(s); err != nil {
			return req, err
		}
	}
	if s := ctx.Query("amount"); s != "" {
		amount, err := decimal.NewFromString(s)
		if err != nil || amount.IsNegative() {
			return req, fmt.Errorf("%w: amount %q", domain.ErrInvalidArgument, s)
		}
		req.Amount = decimal.NewNullDecimal(amount)
	}
	return req, nil
}
