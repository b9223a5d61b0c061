package handler

import (
	"errors"
	"fmt"
	"net/http"

	"simples/internal/simples/model"
	"simples/internal/simples/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	errNotFound       = "Not found"
	errInternalServer = "Internal server error"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, model.ErrorResponse) {
	switch {
	case errors.Is(err, service.ErrMissingParams):
		return http.StatusBadRequest, model.ErrorResponse{
			Error:   "Both mapId and systemId are required",
			Message: "Please provide valid mapId and systemId parameters",
		}
	case errors.Is(err, service.ErrBadRequest):
		return http.StatusBadRequest, model.ErrorResponse{
			Error:   "Invalid mapId or systemId format",
			Message: "mapId and systemId must be base-10 integers",
		}
	case errors.Is(err, service.ErrDatabase):
		return http.StatusInternalServerError, model.ErrorResponse{
			Error:   errInternalServer,
			Message: "Failed to retrieve system data",
		}
	default:
		return http.StatusInternalServerError, model.ErrorResponse{
			Error:   errInternalServer,
			Message: "Something went wrong",
		}
	}
}

func notFoundError(req model.GetSystemReq) model.ErrorResponse {
	return model.ErrorResponse{
		Error:   errNotFound,
		Message: fmt.Sprintf("No system found with mapId: %s and systemId: %s", req.MapID, req.SystemID),
	}
}

// isRoutingMiss reports whether err is echo's answer for a path or method
// with no registered route.
func isRoutingMiss(err error) bool {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return false
	}
	return he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed
}

// NewHTTPErrorHandler answers routing misses with the generic 404 body and
// every other error that escaped a handler with a logged, generic 500.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if isRoutingMiss(err) {
			if werr := c.JSON(http.StatusNotFound, model.ErrorResponse{
				Error:   errNotFound,
				Message: "Endpoint not found",
			}); werr != nil {
				logger.Error("failed to write response", zap.Error(werr))
			}
			return
		}

		logger.Error("Unhandled error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
		status, body := httpError(err)
		if werr := c.JSON(status, body); werr != nil {
			logger.Error("failed to write response", zap.Error(werr))
		}
	}
}
