package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestWithTraceID(t *testing.T) {
	attr := WithTraceID("trace-12345")
	if attr.Key != FieldTraceID {
		t.Errorf("Key = %q, want %q", attr.Key, FieldTraceID)
	}
	if attr.Value.String() != "trace-12345" {
		t.Errorf("Value = %q, want %q", attr.Value.String(), "trace-12345")
	}
}

func TestWithEventID(t *testing.T) {
	attr := WithEventID("RADIUS_UPSERT_ERR")
	if attr.Key != FieldEventID {
		t.Errorf("Key = %q, want %q", attr.Key, FieldEventID)
	}
	if attr.Value.String() != "RADIUS_UPSERT_ERR" {
		t.Errorf("Value = %q, want %q", attr.Value.String(), "RADIUS_UPSERT_ERR")
	}
}

func TestWithError(t *testing.T) {
	t.Run("With error", func(t *testing.T) {
		attr := WithError(errors.New("connection failed"))
		if attr.Key != FieldError {
			t.Errorf("Key = %q, want %q", attr.Key, FieldError)
		}
		if attr.Value.String() != "connection failed" {
			t.Errorf("Value = %q, want %q", attr.Value.String(), "connection failed")
		}
	})

	t.Run("With nil error", func(t *testing.T) {
		attr := WithError(nil)
		if attr.Value.String() != "" {
			t.Errorf("Value = %q, want empty string", attr.Value.String())
		}
	})
}

func TestEntityFields(t *testing.T) {
	tests := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantInt int64
	}{
		{"customer", WithCustomerID(42), FieldCustomerID, 42},
		{"router", WithRouterID(7), FieldRouterID, 7},
		{"nas", WithNasID(3), FieldNasID, 3},
		{"latency", WithLatency(150), FieldLatencyMs, 150},
		{"http status", WithHTTPStatus(202), FieldHTTPStatus, 202},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value.Int64() != tt.wantInt {
				t.Errorf("Value = %d, want %d", tt.attr.Value.Int64(), tt.wantInt)
			}
		})
	}
}

func TestWithUsernameAndOperation(t *testing.T) {
	if attr := WithUsername("alice"); attr.Key != FieldUsername || attr.Value.String() != "alice" {
		t.Errorf("WithUsername = %v", attr)
	}
	if attr := WithOperation("upsert"); attr.Key != FieldOperation || attr.Value.String() != "upsert" {
		t.Errorf("WithOperation = %v", attr)
	}
}

func TestCommonFields(t *testing.T) {
	t.Run("WithMobile with masking", func(t *testing.T) {
		cf := NewCommonFields(NewMasker(true))
		attr := cf.WithMobile("01712345678")
		if attr.Key != FieldMobile {
			t.Errorf("Key = %q, want %q", attr.Key, FieldMobile)
		}
		want := "017******78"
		if attr.Value.String() != want {
			t.Errorf("Value = %q, want %q", attr.Value.String(), want)
		}
	})

	t.Run("NewCommonFields with nil masker", func(t *testing.T) {
		cf := NewCommonFields(nil)
		attr := cf.WithMobile("01712345678")
		// nilの場合はマスキング無効で初期化される
		if attr.Value.String() != "01712345678" {
			t.Errorf("Value = %q, want %q", attr.Value.String(), "01712345678")
		}
	})

	t.Run("CustomerLogFields", func(t *testing.T) {
		cf := NewCommonFields(nil)
		fields := cf.CustomerLogFields("RADIUS_UPSERT_OK", 10, "alice")
		if len(fields) != 3 {
			t.Fatalf("fields length = %d, want %d", len(fields), 3)
		}
		attr, ok := fields[1].(slog.Attr)
		if !ok {
			t.Fatalf("fields[1] type = %T, want slog.Attr", fields[1])
		}
		if attr.Key != FieldCustomerID || attr.Value.Int64() != 10 {
			t.Errorf("fields[1] = %v, want customer_id=10", attr)
		}
	})

	t.Run("CustomerLogFields masks username", func(t *testing.T) {
		fields := NewCommonFields(NewMasker(true)).CustomerLogFields("RADIUS_REMOVE_OK", 10, "alice01")
		attr, ok := fields[2].(slog.Attr)
		if !ok {
			t.Fatalf("fields[2] type = %T, want slog.Attr", fields[2])
		}
		if attr.Key != FieldUsername || attr.Value.String() != "al****1" {
			t.Errorf("fields[2] = %v, want username=al****1", attr)
		}
	})

	t.Run("CustomerLogFields without masking", func(t *testing.T) {
		fields := NewCommonFields(NewMasker(false)).CustomerLogFields("RADIUS_REMOVE_OK", 10, "alice01")
		if attr := fields[2].(slog.Attr); attr.Value.String() != "alice01" {
			t.Errorf("username = %q, want %q", attr.Value.String(), "alice01")
		}
	})

	t.Run("RouterLogFields", func(t *testing.T) {
		cf := NewCommonFields(nil)
		fields := cf.RouterLogFields("NAS_CREATE_OK", 5, "core-1")
		if len(fields) != 3 {
			t.Fatalf("fields length = %d, want %d", len(fields), 3)
		}
		attr, ok := fields[2].(slog.Attr)
		if !ok {
			t.Fatalf("fields[2] type = %T, want slog.Attr", fields[2])
		}
		if attr.Key != FieldRouterName || attr.Value.String() != "core-1" {
			t.Errorf("fields[2] = %v, want router_name=core-1", attr)
		}
	})
}
