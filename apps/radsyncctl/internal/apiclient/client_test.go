package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, fn http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(fn)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestPresence(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/presence/alice" {
			t.Errorf("path = %q", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"username":         "alice",
			"online":           true,
			"duration_seconds": 120,
			"session":          map[string]any{"acct_session_id": "S1", "username": "alice"},
		})
	})

	resp, err := c.Presence(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Presence() error = %v", err)
	}
	if !resp.Online || resp.DurationSeconds != 120 {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Session == nil || resp.Session.AcctSessionID != "S1" {
		t.Errorf("session = %+v", resp.Session)
	}
}

func TestHistory(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit = %q, want 5", got)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"username": "alice",
			"sessions": []map[string]any{{"acct_session_id": "S2"}, {"acct_session_id": "S1"}},
		})
	})

	resp, err := c.History(context.Background(), "alice", 5)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(resp.Sessions) != 2 {
		t.Errorf("sessions = %d, want 2", len(resp.Sessions))
	}
}

func TestClassify(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		var req classifyRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		if len(req.Usernames) != 2 {
			t.Errorf("usernames = %v", req.Usernames)
		}
		writeJSON(w, http.StatusOK, ClassifyResponse{Online: []string{"a"}, Offline: []string{"b"}})
	})

	resp, err := c.Classify(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if len(resp.Online) != 1 || resp.Online[0] != "a" {
		t.Errorf("online = %v", resp.Online)
	}
}

func TestFailures(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Errorf("limit = %q, want 20", got)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"failures": []map[string]any{{"id": "e1", "operation": "upsert", "error": "store unavailable"}},
		})
	})

	resp, err := c.Failures(context.Background(), 20)
	if err != nil {
		t.Fatalf("Failures() error = %v", err)
	}
	if len(resp.Failures) != 1 || resp.Failures[0].Operation != "upsert" {
		t.Errorf("failures = %+v", resp.Failures)
	}
}

func TestAPIError(t *testing.T) {
	t.Run("問題詳細を解析", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"type":"about:blank","title":"Service Unavailable","status":503,"detail":"authentication store unavailable","reason":"store_unavailable"}`))
		})

		_, err := c.ListNas(context.Background())
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %v, want *APIError", err)
		}
		if apiErr.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("status = %d", apiErr.StatusCode)
		}
		if apiErr.Problem == nil || apiErr.Problem.Reason != "store_unavailable" {
			t.Errorf("problem = %+v", apiErr.Problem)
		}
	})

	t.Run("本文が問題詳細でない", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		})

		_, err := c.Health(context.Background())
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %v, want *APIError", err)
		}
		if apiErr.Problem != nil || apiErr.Body != "upstream down" {
			t.Errorf("apiErr = %+v", apiErr)
		}
	})

	t.Run("不正なJSON", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{"))
		})

		_, err := c.Health(context.Background())
		if !errors.Is(err, ErrInvalidResponse) {
			t.Errorf("error = %v, want ErrInvalidResponse", err)
		}
	})
}
