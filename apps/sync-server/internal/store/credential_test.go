package store

import (
	"context"
	"errors"
	"testing"

	"github.com/oyaguma3/radsync/pkg/apperr"
	"github.com/oyaguma3/radsync/pkg/model"
)

func TestCredentialStoreUpsert(t *testing.T) {
	db := newTestDB(t)
	cs := NewCredentialStore(db)
	ctx := context.Background()

	err := cs.Upsert(ctx, "rahim01", model.CredentialAttributes{
		Password:         "pw1",
		CallingStationID: "AA:BB:CC:DD:EE:FF",
		FramedIPAddress:  "10.0.0.5",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	attrs, ok, err := cs.Attributes(ctx, "rahim01")
	if err != nil || !ok {
		t.Fatalf("Attributes() = %v, %v", ok, err)
	}
	if attrs.Password != "pw1" || attrs.FramedIPAddress != "10.0.0.5" || attrs.CallingStationID != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("Attributes() = %+v", attrs)
	}

	var op string
	if err := db.Get(&op, `SELECT op FROM radcheck WHERE username = ? AND attribute = ?`, "rahim01", model.AttrCleartextPassword); err != nil {
		t.Fatalf("select op: %v", err)
	}
	if op != ":=" {
		t.Errorf("op = %q, want %q", op, ":=")
	}
}

func TestCredentialStoreUpsertReplacesAndClears(t *testing.T) {
	db := newTestDB(t)
	cs := NewCredentialStore(db)
	ctx := context.Background()

	if err := cs.Upsert(ctx, "bob", model.CredentialAttributes{Password: "old", FramedIPAddress: "10.0.0.1"}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	// パスワード空は維持、IP空は削除
	if err := cs.Upsert(ctx, "bob", model.CredentialAttributes{}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	attrs, _, err := cs.Attributes(ctx, "bob")
	if err != nil {
		t.Fatalf("Attributes failed: %v", err)
	}
	if attrs.Password != "old" {
		t.Errorf("Password = %q, want kept %q", attrs.Password, "old")
	}
	if attrs.FramedIPAddress != "" {
		t.Errorf("FramedIPAddress = %q, want cleared", attrs.FramedIPAddress)
	}

	if err := cs.Upsert(ctx, "bob", model.CredentialAttributes{Password: "new"}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM radcheck WHERE username = 'bob'`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("radcheck rows = %d, want 1", count)
	}
}

func TestCredentialStoreRemove(t *testing.T) {
	db := newTestDB(t)
	cs := NewCredentialStore(db)
	ctx := context.Background()

	if err := cs.Upsert(ctx, "carol", model.CredentialAttributes{Password: "pw", FramedIPAddress: "10.0.0.2"}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := cs.Remove(ctx, "carol"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok, _ := cs.Attributes(ctx, "carol"); ok {
		t.Error("Attributes() ok = true after Remove")
	}

	// 存在しないユーザーの削除はエラーにしない
	if err := cs.Remove(ctx, "nobody"); err != nil {
		t.Errorf("Remove(nobody) error = %v", err)
	}
}

func TestCredentialStoreUnavailable(t *testing.T) {
	db := newTestDB(t)
	cs := NewCredentialStore(db)
	_ = db.Close()

	err := cs.Upsert(context.Background(), "dan", model.CredentialAttributes{Password: "pw"})
	if !errors.Is(err, apperr.ErrStoreUnavailable) {
		t.Errorf("Upsert() error = %v, want ErrStoreUnavailable", err)
	}
	var se *apperr.StoreError
	if !errors.As(err, &se) || se.Target != "dan" {
		t.Errorf("Upsert() error = %v, want StoreError for dan", err)
	}
}
