package apperr

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Run("Error message format", func(t *testing.T) {
		err := NewValidationError("username", "must not be empty")
		got := err.Error()
		if !strings.Contains(got, "validation error") {
			t.Errorf("error message should contain 'validation error': %s", got)
		}
		if !strings.Contains(got, "field=username") {
			t.Errorf("error message should contain 'field=username': %s", got)
		}
		if !strings.Contains(got, "message=must not be empty") {
			t.Errorf("error message should contain 'message=must not be empty': %s", got)
		}
	})

	t.Run("Fields are accessible", func(t *testing.T) {
		err := NewValidationError("password", "too short")
		if err.Field != "password" {
			t.Errorf("Field = %q, want %q", err.Field, "password")
		}
		if err.Message != "too short" {
			t.Errorf("Message = %q, want %q", err.Message, "too short")
		}
	})
}

func TestDeviceError(t *testing.T) {
	t.Run("Error message without cause", func(t *testing.T) {
		err := NewDeviceError(7, "set-secret", 404, ErrSubscriberNotFound, nil)
		got := err.Error()
		if !strings.Contains(got, "routerID=7") {
			t.Errorf("error message should contain 'routerID=7': %s", got)
		}
		if !strings.Contains(got, "statusCode=404") {
			t.Errorf("error message should contain 'statusCode=404': %s", got)
		}
		if strings.Contains(got, "cause=") {
			t.Errorf("error message should not contain 'cause=': %s", got)
		}
	})

	t.Run("Is matches kind and cause", func(t *testing.T) {
		err := NewDeviceError(7, "set-secret", 0, ErrDeviceTimeout, context.DeadlineExceeded)
		if !errors.Is(err, ErrDeviceTimeout) {
			t.Error("errors.Is(err, ErrDeviceTimeout) should be true")
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Error("errors.Is(err, context.DeadlineExceeded) should be true")
		}
		if errors.Is(err, ErrDeviceUnreachable) {
			t.Error("errors.Is(err, ErrDeviceUnreachable) should be false")
		}
	})

	t.Run("As through wrapping", func(t *testing.T) {
		var wrapped error = NewDeviceError(3, "set-secret", 401, ErrDeviceAuthFailed, nil)
		var devErr *DeviceError
		if !errors.As(wrapped, &devErr) {
			t.Fatal("errors.As should find DeviceError")
		}
		if devErr.RouterID != 3 {
			t.Errorf("RouterID = %d, want %d", devErr.RouterID, 3)
		}
	})
}

func TestStoreError(t *testing.T) {
	t.Run("Error message with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewStoreError("upsert", "alice", cause)
		got := err.Error()
		if !strings.Contains(got, "operation=upsert") {
			t.Errorf("error message should contain 'operation=upsert': %s", got)
		}
		if !strings.Contains(got, "target=alice") {
			t.Errorf("error message should contain 'target=alice': %s", got)
		}
		if !strings.Contains(got, "cause=connection refused") {
			t.Errorf("error message should contain cause: %s", got)
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		err := NewStoreError("remove", "bob", ErrStoreUnavailable)
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Error("errors.Is(err, ErrStoreUnavailable) should be true")
		}
	})

	t.Run("Error message without cause", func(t *testing.T) {
		err := NewStoreError("remove", "bob", nil)
		if strings.Contains(err.Error(), "cause=") {
			t.Errorf("error message should not contain 'cause=': %s", err.Error())
		}
	})
}
