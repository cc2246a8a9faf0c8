package api

import (
	"context"
	"encoding/json"

	xhttp "SADE/pkg/http"
	xlogger "SADE/pkg/logger"

	"github.com/labstack/echo/v4"
)

// UpstreamErrorMessage is the only error text clients ever see.
const UpstreamErrorMessage = "Error consultando Banxico"

// SnapshotProvider is implemented by usecase.IndicatorService. The returned
// document is written to the client unchanged.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (json.RawMessage, error)
}

// IndicatorsEchoHandler serves the consolidated indicators.
type IndicatorsEchoHandler struct {
	logger *xlogger.Logger
	svc    SnapshotProvider
}

func NewIndicatorsEchoHandler(logger *xlogger.Logger, svc SnapshotProvider) *IndicatorsEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &IndicatorsEchoHandler{logger: logger, svc: svc}
}

func (h *IndicatorsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/indicadores", h.Indicadores)
}

func (h *IndicatorsEchoHandler) Indicadores(c echo.Context) error {
	doc, err := h.svc.Snapshot(c.Request().Context())
	if err != nil {
		h.logger.Error("indicadores usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError(UpstreamErrorMessage).WithError(err))
	}
	return xhttp.SuccessResponse(c, doc)
}
