package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/oyaguma3/radsync/pkg/apperr"
)

func TestNewProblemDetail(t *testing.T) {
	p := NewProblemDetail(400, "Bad Request", "username is required")

	if p.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", p.Type, "about:blank")
	}
	if p.Title != "Bad Request" {
		t.Errorf("Title = %q, want %q", p.Title, "Bad Request")
	}
	if p.Status != 400 {
		t.Errorf("Status = %d, want %d", p.Status, 400)
	}
	if p.Detail != "username is required" {
		t.Errorf("Detail = %q, want %q", p.Detail, "username is required")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		p      *ProblemDetail
		status int
		title  string
	}{
		{"BadRequest", BadRequest("x"), http.StatusBadRequest, "Bad Request"},
		{"NotFound", NotFound("x"), http.StatusNotFound, "Not Found"},
		{"Conflict", Conflict("x"), http.StatusConflict, "Conflict"},
		{"InternalServerError", InternalServerError("x"), http.StatusInternalServerError, "Internal Server Error"},
		{"BadGateway", BadGateway("x"), http.StatusBadGateway, "Bad Gateway"},
		{"ServiceUnavailable", ServiceUnavailable("x"), http.StatusServiceUnavailable, "Service Unavailable"},
		{"GatewayTimeout", GatewayTimeout("x"), http.StatusGatewayTimeout, "Gateway Timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Status != tt.status {
				t.Errorf("Status = %d, want %d", tt.p.Status, tt.status)
			}
			if tt.p.Title != tt.title {
				t.Errorf("Title = %q, want %q", tt.p.Title, tt.title)
			}
		})
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{"validation", apperr.NewValidationError("username", "required"), http.StatusBadRequest, "validation"},
		{"invalid request", fmt.Errorf("%w: bad body", apperr.ErrInvalidRequest), http.StatusBadRequest, "invalid_request"},
		{"not found", fmt.Errorf("%w: customer 9", apperr.ErrEntityNotFound), http.StatusNotFound, "not_found"},
		{"subscriber", apperr.NewDeviceError(1, "set-secret", 404, apperr.ErrSubscriberNotFound, nil), http.StatusNotFound, "subscriber_not_found"},
		{"no router", apperr.ErrNoRouterAssigned, http.StatusConflict, "no_router_assigned"},
		{"mismatch", apperr.ErrRouterMismatch, http.StatusConflict, "router_mismatch"},
		{"timeout", apperr.NewDeviceError(1, "set-secret", 0, apperr.ErrDeviceTimeout, errors.New("deadline")), http.StatusGatewayTimeout, "device_timeout"},
		{"auth", apperr.NewDeviceError(1, "set-secret", 401, apperr.ErrDeviceAuthFailed, nil), http.StatusBadGateway, "device_auth_failed"},
		{"unreachable", apperr.NewDeviceError(1, "set-secret", 0, apperr.ErrDeviceUnreachable, nil), http.StatusBadGateway, "device_unreachable"},
		{"rejected", apperr.NewDeviceError(1, "set-secret", 400, apperr.ErrDeviceRejected, nil), http.StatusBadGateway, "device_rejected"},
		{"store", apperr.ErrStoreUnavailable, http.StatusServiceUnavailable, "store_unavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromError(tt.err)
			if p.Status != tt.status {
				t.Errorf("Status = %d, want %d", p.Status, tt.status)
			}
			if p.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", p.Reason, tt.reason)
			}
		})
	}
}

func TestFromErrorHidesInternalDetail(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		detail string
	}{
		{"invalid request", fmt.Errorf("%w: json: cannot unmarshal number", apperr.ErrInvalidRequest), "request is invalid"},
		{"not found", fmt.Errorf("%w: nas 42", apperr.ErrEntityNotFound), "resource not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := FromError(tt.err); p.Detail != tt.detail {
				t.Errorf("Detail = %q, want %q", p.Detail, tt.detail)
			}
		})
	}
}

func TestProblemDetailJSONOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(NewProblemDetail(500, "Internal Server Error", ""))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if _, exists := raw["detail"]; exists {
		t.Error("JSON should omit empty detail field")
	}
	if _, exists := raw["reason"]; exists {
		t.Error("JSON should omit empty reason field")
	}
}
