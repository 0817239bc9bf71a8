package store

import (
	"context"
	"errors"
	"testing"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/events"
	"github.com/oyaguma3/radsync/pkg/apperr"
	"github.com/oyaguma3/radsync/pkg/model"
)

type routerRecorder struct {
	events []events.RouterEvent
}

func (r *routerRecorder) HandleRouterEvent(_ context.Context, ev events.RouterEvent) {
	r.events = append(r.events, ev)
}

func TestRouterRepositorySaveGet(t *testing.T) {
	repo := NewRouterRepository(newTestDB(t), nil)
	ctx := context.Background()

	in := &model.Router{ID: 4, Name: "Core", IPAddress: "10.0.0.4", Status: model.RouterStatusActive, APIPort: 443}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Get(ctx, 4)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Core" || got.IPAddress != "10.0.0.4" || got.NasID != nil || got.APIPort != 443 {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := repo.Get(ctx, 99); !errors.Is(err, apperr.ErrEntityNotFound) {
		t.Errorf("Get(99) error = %v, want ErrEntityNotFound", err)
	}
}

func TestRouterRepositoryLinkNasPublishes(t *testing.T) {
	d := events.NewDispatcher()
	rec := &routerRecorder{}
	d.SubscribeRouter(rec)

	repo := NewRouterRepository(newTestDB(t), d)
	ctx := context.Background()
	if err := repo.Save(ctx, &model.Router{ID: 1, Name: "Edge", IPAddress: "10.0.0.1", Status: model.RouterStatusActive}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 通常のコンテキストでは更新イベントが配信される
	if err := repo.LinkNas(ctx, 1, 11, "generated"); err != nil {
		t.Fatalf("LinkNas failed: %v", err)
	}
	if len(rec.events) != 1 {
		t.Fatalf("events = %d, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Type != events.RouterUpdated || ev.Router.NasID == nil || *ev.Router.NasID != 11 {
		t.Errorf("event = %+v", ev)
	}
	if ev.Previous == nil || ev.Previous.NasID != nil {
		t.Errorf("Previous = %+v, want snapshot before link", ev.Previous)
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.NasID == nil || *got.NasID != 11 || got.Secret != "generated" {
		t.Errorf("Get() after link = %+v", got)
	}

	// Quietコンテキストでは再入しない
	if err := repo.LinkNas(events.Quiet(ctx, 1), 1, 12, "generated"); err != nil {
		t.Fatalf("LinkNas failed: %v", err)
	}
	if len(rec.events) != 1 {
		t.Errorf("events = %d after quiet link, want 1", len(rec.events))
	}
}

func TestRouterRepositoryLinkNasMissing(t *testing.T) {
	repo := NewRouterRepository(newTestDB(t), nil)
	err := repo.LinkNas(context.Background(), 5, 1, "s")
	if !errors.Is(err, apperr.ErrEntityNotFound) {
		t.Errorf("LinkNas() error = %v, want ErrEntityNotFound", err)
	}
}
