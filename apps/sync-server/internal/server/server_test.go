package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/handler"
	"github.com/oyaguma3/radsync/pkg/httputil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler(t *testing.T) (*handler.Handler, *handler.MockPresenceReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	presence := handler.NewMockPresenceReader(ctrl)
	h := handler.NewHandler(
		handler.NewMockEventPublisher(ctrl),
		handler.NewMockPasswordUpdater(ctrl),
		handler.NewMockResyncer(ctrl),
		presence,
		handler.NewMockFailureLister(ctrl),
		handler.NewMockNasLister(ctrl),
	)
	return h, presence
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(handler.TraceIDKey))
	})

	t.Run("ヘッダ指定あり", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Trace-ID", "trace-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() != "trace-123" {
			t.Errorf("trace id = %q, want trace-123", w.Body.String())
		}
		if got := w.Header().Get("X-Trace-ID"); got != "trace-123" {
			t.Errorf("response header = %q, want trace-123", got)
		}
	})

	t.Run("ヘッダ指定なしは生成", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if len(w.Body.String()) != 36 {
			t.Errorf("generated trace id = %q, want UUID", w.Body.String())
		}
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if ct := w.Header().Get("Content-Type"); ct != httputil.ContentType {
		t.Errorf("Content-Type = %q, want %q", ct, httputil.ContentType)
	}
}

func TestSetupRouter(t *testing.T) {
	h, presence := newTestHandler(t)
	presence.EXPECT().IsOnline(gomock.Any(), "alice").Return(false)

	engine := gin.New()
	SetupRouter(engine, h)

	routes := map[string]bool{}
	for _, ri := range engine.Routes() {
		routes[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"POST /api/v1/events/customers",
		"POST /api/v1/events/routers",
		"POST /api/v1/customers/password",
		"POST /api/v1/customers/sync",
		"POST /api/v1/presence/classify",
		"GET /api/v1/presence/:username",
		"GET /api/v1/presence/:username/history",
		"GET /api/v1/presence/:username/usage",
		"GET /api/v1/audit/failures",
		"GET /api/v1/nas",
	} {
		if !routes[want] {
			t.Errorf("route %q not registered", want)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presence/alice", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestNew(t *testing.T) {
	h, _ := newTestHandler(t)
	srv := New(&config.Config{ListenAddr: ":0", GinMode: gin.TestMode}, h)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "trace-health")
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("X-Trace-ID"); got != "trace-health" {
		t.Errorf("X-Trace-ID = %q, want trace-health", got)
	}
	var resp handler.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
}
