package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLogger_RecordFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "sync-server")
	logger.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }

	logger.RecordFailure(Record{
		Operation:  OpUpsert,
		TargetType: TargetCustomer,
		TargetKey:  "alice",
		CustomerID: 12,
		Username:   "alice",
		Err:        errors.New("store unavailable"),
	})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if _, err := uuid.Parse(entry.ID); err != nil {
		t.Errorf("expected uuid id, got %q", entry.ID)
	}
	if entry.Time != "2026-03-01T09:00:00Z" {
		t.Errorf("expected time 2026-03-01T09:00:00Z, got %s", entry.Time)
	}
	if entry.Level != "WARN" {
		t.Errorf("expected level WARN, got %s", entry.Level)
	}
	if entry.App != "sync-server" {
		t.Errorf("expected app sync-server, got %s", entry.App)
	}
	if entry.EventID != "SYNC_AUDIT" {
		t.Errorf("expected event_id SYNC_AUDIT, got %s", entry.EventID)
	}
	if entry.Operation != OpUpsert {
		t.Errorf("expected operation upsert, got %s", entry.Operation)
	}
	if entry.Outcome != OutcomeFailure {
		t.Errorf("expected outcome failure, got %s", entry.Outcome)
	}
	if entry.Error != "store unavailable" {
		t.Errorf("expected error 'store unavailable', got %q", entry.Error)
	}
	if entry.CustomerID != 12 {
		t.Errorf("expected customer_id 12, got %d", entry.CustomerID)
	}
	if entry.Msg != "customer upsert failure" {
		t.Errorf("unexpected msg: %s", entry.Msg)
	}
}

func TestLogger_RecordSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "sync-server")

	logger.RecordSuccess(Record{
		Operation:  OpNasCreate,
		TargetType: TargetRouter,
		TargetKey:  "10.0.0.1",
		RouterID:   7,
	})

	output := buf.String()
	if !strings.Contains(output, `"outcome":"success"`) {
		t.Error("expected outcome to be success")
	}
	if !strings.Contains(output, `"level":"INFO"`) {
		t.Error("expected level to be INFO")
	}
	if strings.Contains(output, `"error"`) {
		t.Error("expected no error field")
	}
	if len(logger.RecentFailures(0)) != 0 {
		t.Error("expected success not to be kept in recent failures")
	}
}

func TestLogger_RecentFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "sync-server")
	logger.capacity = 3

	for i := 1; i <= 5; i++ {
		logger.RecordFailure(Record{
			Operation:  OpRemove,
			TargetType: TargetCustomer,
			TargetKey:  "user" + strconv.Itoa(i),
		})
	}

	all := logger.RecentFailures(0)
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	want := []string{"user5", "user4", "user3"}
	for i, e := range all {
		if e.TargetKey != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], e.TargetKey)
		}
	}

	two := logger.RecentFailures(2)
	if len(two) != 2 || two[0].TargetKey != "user5" {
		t.Errorf("unexpected RecentFailures(2): %+v", two)
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger("sync-server")
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
	if logger.app != "sync-server" {
		t.Errorf("expected app sync-server, got %s", logger.app)
	}
}
