package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/periodicapp/periodic/internal/config"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/service"
	"github.com/periodicapp/periodic/internal/session"
	"github.com/periodicapp/periodic/models"
)

const testCookieName = "sid"

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn          func(ctx context.Context, payload map[string]any) (models.User, error)
	verifyCredentialsFn func(ctx context.Context, username, password string) (models.SessionUser, error)
}

func (m *mockAuthService) Register(ctx context.Context, payload map[string]any) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, payload)
	}
	return models.User{}, nil
}

func (m *mockAuthService) VerifyCredentials(ctx context.Context, username, password string) (models.SessionUser, error) {
	if m.verifyCredentialsFn != nil {
		return m.verifyCredentialsFn(ctx, username, password)
	}
	return models.SessionUser{}, service.ErrInvalidCredentials
}

// ─────────────────────────────────────────────
// Mock: service.ElementService
// ─────────────────────────────────────────────

type mockElementService struct {
	listFn              func(ctx context.Context) ([]models.Element, error)
	createFn            func(ctx context.Context, payload map[string]any) (models.Element, error)
	updateFn            func(ctx context.Context, number int, payload map[string]any) (models.Element, error)
	deleteFn            func(ctx context.Context, number int) error
	symbolsFn           func(ctx context.Context) ([]models.ElementSymbol, error)
	liquidAtFn          func(ctx context.Context, celsius float64) ([]models.LiquidElement, error)
	widestLiquidRangeFn func(ctx context.Context) (models.ElementRecord, error)
}

func (m *mockElementService) List(ctx context.Context) ([]models.Element, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Element{}, nil
}

func (m *mockElementService) Create(ctx context.Context, payload map[string]any) (models.Element, error) {
	if m.createFn != nil {
		return m.createFn(ctx, payload)
	}
	return models.Element{}, nil
}

func (m *mockElementService) Update(ctx context.Context, number int, payload map[string]any) (models.Element, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, number, payload)
	}
	return models.Element{}, nil
}

func (m *mockElementService) Delete(ctx context.Context, number int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, number)
	}
	return nil
}

func (m *mockElementService) Symbols(ctx context.Context) ([]models.ElementSymbol, error) {
	if m.symbolsFn != nil {
		return m.symbolsFn(ctx)
	}
	return []models.ElementSymbol{}, nil
}

func (m *mockElementService) LiquidAt(ctx context.Context, celsius float64) ([]models.LiquidElement, error) {
	if m.liquidAtFn != nil {
		return m.liquidAtFn(ctx, celsius)
	}
	return []models.LiquidElement{}, nil
}

func (m *mockElementService) WidestLiquidRange(ctx context.Context) (models.ElementRecord, error) {
	if m.widestLiquidRangeFn != nil {
		return m.widestLiquidRangeFn(ctx)
	}
	return models.ElementRecord{}, nil
}

// ─────────────────────────────────────────────
// In-memory session store
// ─────────────────────────────────────────────

type memSessionStore struct {
	mu       sync.Mutex
	records  map[string]session.Record
	failWith error
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{records: make(map[string]session.Record)}
}

func (s *memSessionStore) Load(_ context.Context, id string) (session.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return session.Record{}, s.failWith
	}
	rec, ok := s.records[id]
	if !ok {
		return session.Record{}, session.ErrNoSession
	}
	return rec, nil
}

func (s *memSessionStore) Save(_ context.Context, rec session.Record, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.records[rec.ID] = rec
	return nil
}

func (s *memSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	delete(s.records, id)
	return nil
}

// ─────────────────────────────────────────────
// Test harness
// ─────────────────────────────────────────────

type testHarness struct {
	handler  *Handler
	router   http.Handler
	store    *memSessionStore
	auth     *mockAuthService
	elements *mockElementService
}

func newTestHarness() *testHarness {
	store := newMemSessionStore()
	auth := &mockAuthService{}
	elements := &mockElementService{}

	sessions := session.NewManager(store, config.Session{CookieName: testCookieName, TTL: time.Hour}, logger.Nop())
	handler := NewHandler(&service.Services{
		AuthService:    auth,
		ElementService: elements,
	}, sessions, logger.Nop())

	return &testHarness{
		handler:  handler,
		router:   handler.Init(),
		store:    store,
		auth:     auth,
		elements: elements,
	}
}

// authenticate seeds an authenticated session and returns its cookie.
func (h *testHarness) authenticate(user models.SessionUser) *http.Cookie {
	rec := session.Record{ID: "test-session", User: &user}
	h.store.records[rec.ID] = rec
	return &http.Cookie{Name: testCookieName, Value: rec.ID}
}

func (h *testHarness) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}
