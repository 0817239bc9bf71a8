// Package events は顧客・ルーターのライフサイクルイベントをプロセス内で配信する。
//
// 課金システムのCRUD層はコミット後に変更前後のスナップショットを添えてイベントを発行する。
// オブザーバーは同期的に呼び出され、エラーを発行元へ返さない。
package events

import (
	"context"

	"github.com/oyaguma3/radsync/pkg/model"
)

// CustomerEventType は顧客イベント種別。
type CustomerEventType string

// 顧客イベント種別
const (
	CustomerCreated  CustomerEventType = "created"
	CustomerUpdated  CustomerEventType = "updated"
	CustomerDeleted  CustomerEventType = "deleted"
	CustomerRestored CustomerEventType = "restored"
)

// Valid は既知のイベント種別かを返す。
func (t CustomerEventType) Valid() bool {
	switch t {
	case CustomerCreated, CustomerUpdated, CustomerDeleted, CustomerRestored:
		return true
	}
	return false
}

// RouterEventType はルーターイベント種別。
type RouterEventType string

// ルーターイベント種別
const (
	RouterCreated RouterEventType = "created"
	RouterUpdated RouterEventType = "updated"
)

// Valid は既知のイベント種別かを返す。
func (t RouterEventType) Valid() bool {
	return t == RouterCreated || t == RouterUpdated
}

// CustomerEvent は顧客ライフサイクルイベント。
// Updated の場合、差分はイベント発行時点の Previous との比較で決まる。
type CustomerEvent struct {
	Type     CustomerEventType
	Customer *model.Customer
	Previous *model.Customer // Updated時の変更前スナップショット
	Changed  []string        // 発行元が差分を計算済みの場合に指定
}

// ChangedFields は変更されたフィールド名を返す。
func (e CustomerEvent) ChangedFields() []string {
	if e.Changed != nil {
		return e.Changed
	}
	if e.Customer == nil {
		return nil
	}
	return e.Customer.ChangedFields(e.Previous)
}

// RouterEvent はルーターライフサイクルイベント。
type RouterEvent struct {
	Type     RouterEventType
	Router   *model.Router
	Previous *model.Router
	Changed  []string
}

// ChangedFields は変更されたフィールド名を返す。
func (e RouterEvent) ChangedFields() []string {
	if e.Changed != nil {
		return e.Changed
	}
	if e.Router == nil {
		return nil
	}
	return e.Router.ChangedFields(e.Previous)
}

// CustomerObserver は顧客イベントを処理する。
type CustomerObserver interface {
	HandleCustomerEvent(ctx context.Context, ev CustomerEvent)
}

// RouterObserver はルーターイベントを処理する。
type RouterObserver interface {
	HandleRouterEvent(ctx context.Context, ev RouterEvent)
}
