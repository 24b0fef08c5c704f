package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/globook/globook-backend/docs"
	"github.com/globook/globook-backend/globook/model"
	"github.com/globook/globook-backend/globook/web"
	md "github.com/globook/globook-backend/pkg/middleware"
)

type Handler struct {
	catchSvc CatchService
	log      *zap.Logger
	debug    bool
}

func New(catchSvc CatchService, log *zap.Logger, debug bool) *Handler {
	h := &Handler{
		catchSvc: catchSvc,
		log:      log.Named("handler"),
		debug:    debug,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = h.debug
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(md.NewRequestID())
	e.Use(middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)))

	e.Renderer = newTemplateRenderer(web.Templates, "templates/*.html")

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/manage/ready", h.Ready)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/", h.Index)
	e.GET("/catches", h.ListCatches, md.NewRateLimiter(apiRPS))

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Ready(c echo.Context) error {
	if err := h.catchSvc.Ping(c.Request().Context()); err != nil {
		h.log.Warn("store not ready", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "store not ready")
	}
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", map[string]string{
		"Title":      "Globook",
		"CatchesURL": "/catches",
	})
}

// ListCatches godoc
//
//	@Summary	List catches
//	@Tags		catches
//	@Produce	json
//	@Success	200	{array}		model.CatchRecord
//	@Failure	500	{object}	echo.HTTPError
//	@Router		/catches [get]
func (h *Handler) ListCatches(c echo.Context) error {
	records, err := h.catchSvc.ListCatches(c.Request().Context())
	if err != nil {
		h.log.Error("ListCatches", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if records == nil {
		records = []model.CatchRecord{}
	}
	return c.JSON(http.StatusOK, records)
}
