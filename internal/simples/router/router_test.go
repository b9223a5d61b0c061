package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"simples/internal/simples/handler"
	"simples/internal/simples/metrics"
	"simples/internal/simples/model"
	"simples/internal/simples/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSystemRepository struct {
	mock.Mock
}

func (m *MockSystemRepository) FindSystem(ctx context.Context, mapID, systemID string) (*model.SystemRecord, error) {
	args := m.Called(ctx, mapID, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SystemRecord), args.Error(1)
}

func (m *MockSystemRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSystemRepository) Close() error {
	return m.Called().Error(0)
}

func setupServer(repo *MockSystemRepository) (*echo.Echo, *metrics.Collector) {
	collector := metrics.NewCollector()
	svc := service.NewService(repo, nil, collector)
	e := New(handler.NewSystemHandler(svc), Options{
		Metrics:        collector,
		MetricsHandler: promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}),
	})
	return e, collector
}

func performRequest(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	t.Run("health works without a database", func(t *testing.T) {
		repo := new(MockSystemRepository)
		e, _ := setupServer(repo)

		rec := performRequest(e, http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"OK"`)

		rec = performRequest(e, http.MethodGet, "/health/")
		assert.Equal(t, http.StatusOK, rec.Code)

		repo.AssertNotCalled(t, "FindSystem", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Ping", mock.Anything)
	})

	t.Run("fixture lookup returns the row", func(t *testing.T) {
		repo := new(MockSystemRepository)
		e, _ := setupServer(repo)

		row, err := model.NewSystemRecord([]string{"id", "mapId", "systemId"}, []any{int64(77), int64(1), int64(30000142)})
		require.NoError(t, err)
		repo.On("FindSystem", mock.Anything, "1", "30000142").Return(row, nil)

		rec := performRequest(e, http.MethodGet, "/simples/system/1/30000142")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), `"data":{"id":77,"mapId":1,"systemId":30000142}`)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		repo.AssertExpectations(t)
	})

	t.Run("non integer segments are rejected before the database", func(t *testing.T) {
		repo := new(MockSystemRepository)
		e, _ := setupServer(repo)

		for _, path := range []string{
			"/simples/system/abc/1",
			"/simples/system/1/abc",
			"/simples/system/12.5/1",
			"/simples/system/1/12.5",
		} {
			rec := performRequest(e, http.MethodGet, path)
			assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		}
		repo.AssertNotCalled(t, "FindSystem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unreachable database is a generic 500", func(t *testing.T) {
		repo := new(MockSystemRepository)
		e, _ := setupServer(repo)
		repo.On("FindSystem", mock.Anything, "1", "1").
			Return(nil, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))

		rec := performRequest(e, http.MethodGet, "/simples/system/1/1")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error","message":"Failed to retrieve system data"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "3306")
	})

	t.Run("undefined route is endpoint not found", func(t *testing.T) {
		e, _ := setupServer(new(MockSystemRepository))

		rec := performRequest(e, http.MethodGet, "/foo")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not found","message":"Endpoint not found"}`, rec.Body.String())
	})

	t.Run("panic becomes generic 500", func(t *testing.T) {
		e, _ := setupServer(new(MockSystemRepository))
		e.GET("/explode", func(c echo.Context) error { panic("kaboom") })

		rec := performRequest(e, http.MethodGet, "/explode")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error","message":"Something went wrong"}`, rec.Body.String())
	})

	t.Run("metrics endpoint exposes lookup outcomes", func(t *testing.T) {
		repo := new(MockSystemRepository)
		e, _ := setupServer(repo)
		repo.On("FindSystem", mock.Anything, "1", "2").Return(nil, errors.New("boom"))

		performRequest(e, http.MethodGet, "/simples/system/1/2")
		rec := performRequest(e, http.MethodGet, "/metrics")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.Contains(body, `simples_system_lookups_total{outcome="error"} 1`), body)
		assert.Contains(t, body, `simples_http_requests_total{method="GET",route="/simples/system/:mapId/:systemId",status="500"} 1`)
	})
}

func TestMetricsRouteDisabled(t *testing.T) {
	svc := service.NewService(new(MockSystemRepository), nil, nil)
	e := New(handler.NewSystemHandler(svc), Options{})

	rec := performRequest(e, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
