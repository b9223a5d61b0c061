package handler

import (
	"errors"
	"net/http"

	"simples/internal/simples/model"
	"simples/internal/simples/service"
	"simples/internal/simples/util"

	"github.com/labstack/echo/v4"
)

type SystemHandler struct {
	Service service.SystemService
}

func NewSystemHandler(s service.SystemService) *SystemHandler {
	return &SystemHandler{Service: s}
}

// GetSystem handles GET /simples/system/:mapId/:systemId
func (h *SystemHandler) GetSystem(c echo.Context) error {
	var req model.GetSystemReq
	// Path only; a request body must not be able to supply the ids.
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		code, body := httpError(service.ErrBadRequest)
		return c.JSON(code, body)
	}

	rec, err := h.Service.GetSystem(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, notFoundError(req))
		}
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SystemResponse{
		Success:   true,
		Data:      rec,
		Timestamp: util.NowTimestamp(),
	})
}

// HealthCheck handles GET /health. It never touches the database.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, model.HealthResponse{
		Status:    model.HealthStatusOK,
		Timestamp: util.NowTimestamp(),
	})
}
