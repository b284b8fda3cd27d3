package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/periodicapp/periodic/internal/store"
	"github.com/periodicapp/periodic/models"
)

func TestQuerySymbolsEndpoint(t *testing.T) {
	h := newTestHarness()
	h.elements.symbolsFn = func(_ context.Context) ([]models.ElementSymbol, error) {
		return []models.ElementSymbol{{Symbol: "H", Number: 1}, {Symbol: "He", Number: 2}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/queries/elements", nil)
	w := h.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"symbol":"H","number":1},{"symbol":"He","number":2}]`, w.Body.String())
}

func TestQueryLiquidEndpoint_ExplicitTemperature(t *testing.T) {
	h := newTestHarness()
	var seen float64
	h.elements.liquidAtFn = func(_ context.Context, celsius float64) ([]models.LiquidElement, error) {
		seen = celsius
		return []models.LiquidElement{}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/queries/liquid?celsius=25", nil)
	w := h.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 25, seen, 1e-9)
}

func TestQueryLiquidEndpoint_DefaultTemperature(t *testing.T) {
	h := newTestHarness()
	var seen float64
	h.elements.liquidAtFn = func(_ context.Context, celsius float64) ([]models.LiquidElement, error) {
		seen = celsius
		return []models.LiquidElement{}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/queries/liquid", nil)
	w := h.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 500, seen, 1e-9)
}

func TestQueryLiquidEndpoint_NonNumericTemperature(t *testing.T) {
	h := newTestHarness()

	req := httptest.NewRequest(http.MethodGet, "/api/queries/liquid?celsius=warm", nil)
	w := h.do(req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"validation":"celsius.number"}`, w.Body.String())
}

func TestQueryRecordEndpoint(t *testing.T) {
	h := newTestHarness()
	h.elements.widestLiquidRangeFn = func(_ context.Context) (models.ElementRecord, error) {
		return models.ElementRecord{Name: "Thorium", Symbol: "Th"}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/queries/record", nil)
	w := h.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Thorium","symbol":"Th"}`, w.Body.String())
}

func TestQueryRecordEndpoint_EmptyTable(t *testing.T) {
	h := newTestHarness()
	h.elements.widestLiquidRangeFn = func(_ context.Context) (models.ElementRecord, error) {
		return models.ElementRecord{}, store.ErrElementNotFound
	}

	req := httptest.NewRequest(http.MethodGet, "/api/queries/record", nil)
	w := h.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
