package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Dispatcher はイベントを登録済みオブザーバーへ同期配信する。
// オブザーバーのpanicは回復してログに記録し、発行元へ伝播させない。
type Dispatcher struct {
	mu                sync.RWMutex
	customerObservers []CustomerObserver
	routerObservers   []RouterObserver
}

// NewDispatcher は新しいDispatcherを生成する。
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SubscribeCustomer は顧客イベントのオブザーバーを登録する。
func (d *Dispatcher) SubscribeCustomer(o CustomerObserver) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customerObservers = append(d.customerObservers, o)
}

// SubscribeRouter はルーターイベントのオブザーバーを登録する。
func (d *Dispatcher) SubscribeRouter(o RouterObserver) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.routerObservers = append(d.routerObservers, o)
}

// PublishCustomer は顧客イベントを配信する。全オブザーバーの完了後に戻る。
func (d *Dispatcher) PublishCustomer(ctx context.Context, ev CustomerEvent) {
	if ev.Customer == nil {
		return
	}

	d.mu.RLock()
	observers := append([]CustomerObserver(nil), d.customerObservers...)
	d.mu.RUnlock()

	for _, o := range observers {
		d.safeCall(ctx, "customer", func() { o.HandleCustomerEvent(ctx, ev) },
			"customer_id", ev.Customer.ID, "type", string(ev.Type))
	}
}

// PublishRouter はルーターイベントを配信する。
// Quiet で抑止されたルーターの更新イベントは配信しない。
func (d *Dispatcher) PublishRouter(ctx context.Context, ev RouterEvent) {
	if ev.Router == nil {
		return
	}
	if ev.Type == RouterUpdated && IsQuiet(ctx, ev.Router.ID) {
		slog.Debug("router update event suppressed",
			"event_id", "EVENT_SUPPRESSED",
			"router_id", ev.Router.ID,
		)
		return
	}

	d.mu.RLock()
	observers := append([]RouterObserver(nil), d.routerObservers...)
	d.mu.RUnlock()

	for _, o := range observers {
		d.safeCall(ctx, "router", func() { o.HandleRouterEvent(ctx, ev) },
			"router_id", ev.Router.ID, "type", string(ev.Type))
	}
}

func (d *Dispatcher) safeCall(ctx context.Context, kind string, fn func(), attrs ...any) {
	defer func() {
		if r := recover(); r != nil {
			args := append([]any{
				"event_id", "OBSERVER_PANIC",
				"kind", kind,
				"error", fmt.Sprint(r),
			}, attrs...)
			slog.ErrorContext(ctx, "observer panic recovered", args...)
		}
	}()
	fn()
}
