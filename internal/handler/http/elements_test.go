package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periodicapp/periodic/internal/store"
	"github.com/periodicapp/periodic/internal/validators"
	"github.com/periodicapp/periodic/models"
)

func TestListElementsEndpoint_Public(t *testing.T) {
	h := newTestHarness()
	h.elements.listFn = func(_ context.Context) ([]models.Element, error) {
		return []models.Element{{Number: 1, Name: "Hydrogen", Symbol: "H", Mass: 1.008}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/elements", nil)
	w := h.do(req)

	assert.Equal(t, http.StatusOK, w.Code, "listing must not require a session")
	assert.Contains(t, w.Body.String(), `"Hydrogen"`)
}

func TestCreateElementEndpoint_Created(t *testing.T) {
	h := newTestHarness()
	var seen map[string]any
	h.elements.createFn = func(_ context.Context, payload map[string]any) (models.Element, error) {
		seen = payload
		return models.Element{Number: 1, Name: "Hydrogen", Symbol: "H", Mass: 1.008}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/api/elements",
		strings.NewReader(`{"number":1,"name":"Hydrogen","symbol":"H","mass":1.008,"synthetic":false,"melting":-259.14,"boiling":-252.87}`))
	req.AddCookie(h.authenticate(models.SessionUser{ID: 7, Username: "alice"}))
	w := h.do(req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "Hydrogen", seen["name"])
}

func TestCreateElementEndpoint_RequiresSession(t *testing.T) {
	h := newTestHarness()

	req := httptest.NewRequest(http.MethodPost, "/api/elements",
		strings.NewReader(`{"number":1}`))
	w := h.do(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateElementEndpoint_Violation(t *testing.T) {
	h := newTestHarness()
	h.elements.createFn = func(_ context.Context, _ map[string]any) (models.Element, error) {
		return models.Element{}, validators.Duplicate("number")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/elements",
		strings.NewReader(`{"number":1}`))
	req.AddCookie(h.authenticate(models.SessionUser{ID: 7, Username: "alice"}))
	w := h.do(req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"validation":"number.duplicate"}`, w.Body.String())
}

func TestUpdateElementEndpoint_Updated(t *testing.T) {
	h := newTestHarness()
	h.elements.updateFn = func(_ context.Context, number int, _ map[string]any) (models.Element, error) {
		return models.Element{Number: number, Name: "Stannum", Symbol: "Sn", Mass: 118.71}, nil
	}

	req := httptest.NewRequest(http.MethodPut, "/api/elements/50",
		strings.NewReader(`{"name":"Stannum"}`))
	req.AddCookie(h.authenticate(models.SessionUser{ID: 7, Username: "alice"}))
	w := h.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Stannum"`)
}

func TestUpdateElementEndpoint_NotFound(t *testing.T) {
	h := newTestHarness()
	h.elements.updateFn = func(_ context.Context, _ int, _ map[string]any) (models.Element, error) {
		return models.Element{}, store.ErrElementNotFound
	}

	req := httptest.NewRequest(http.MethodPut, "/api/elements/200",
		strings.NewReader(`{"name":"Unobtainium"}`))
	req.AddCookie(h.authenticate(models.SessionUser{ID: 7, Username: "alice"}))
	w := h.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateElementEndpoint_NonNumericNumber(t *testing.T) {
	h := newTestHarness()

	req := httptest.NewRequest(http.MethodPut, "/api/elements/gold",
		strings.NewReader(`{"name":"Gold"}`))
	req.AddCookie(h.authenticate(models.SessionUser{ID: 7, Username: "alice"}))
	w := h.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code, "a non-numeric number addresses no element")
}

func TestDeleteElementEndpoint(t *testing.T) {
	h := newTestHarness()
	h.elements.deleteFn = func(_ context.Context, number int) error {
		if number != 1 {
			return store.ErrElementNotFound
		}
		return nil
	}
	cookie := h.authenticate(models.SessionUser{ID: 7, Username: "alice"})

	req := httptest.NewRequest(http.MethodDelete, "/api/elements/1", nil)
	req.AddCookie(cookie)
	w := h.do(req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/elements/119", nil)
	req.AddCookie(cookie)
	w = h.do(req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteElementEndpoint_RequiresSession(t *testing.T) {
	h := newTestHarness()

	req := httptest.NewRequest(http.MethodDelete, "/api/elements/1", nil)
	w := h.do(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMutation_StaleCookieIsAnonymous(t *testing.T) {
	h := newTestHarness()

	req := httptest.NewRequest(http.MethodPost, "/api/elements",
		strings.NewReader(`{"number":1}`))
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "long-gone"})
	w := h.do(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "a cookie for a dead session carries no authority")
}
