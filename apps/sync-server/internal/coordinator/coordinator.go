// Package coordinator は顧客ライフサイクルイベントを受けて認証ストアを同期する。
//
// 同期失敗は記録してログに残すのみで、イベント発行元（課金システムの書き込み）へは返さない。
package coordinator

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/audit"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/events"
	"github.com/oyaguma3/radsync/pkg/logging"
	"github.com/oyaguma3/radsync/pkg/model"
)

// trackedFields は更新時に同期を発火させるフィールド
var trackedFields = []string{
	model.FieldStatus,
	model.FieldIsActive,
	model.FieldIPAddress,
	model.FieldMACAddress,
	model.FieldServiceType,
	model.FieldNetworkPassword,
}

// Coordinator は顧客イベントのオブザーバー
type Coordinator struct {
	store        CredentialStore
	presence     PresenceChecker
	disconnector Disconnector
	recorder     AuditRecorder
	fields       *logging.CommonFields
	timeout      time.Duration
}

// NewCoordinator は新しいCoordinatorを生成する。
// presence と disconnector が nil の場合、削除時のセッション切断は行わない。
func NewCoordinator(store CredentialStore, presence PresenceChecker, disconnector Disconnector, recorder AuditRecorder, masker *logging.Masker) *Coordinator {
	return &Coordinator{
		store:        store,
		presence:     presence,
		disconnector: disconnector,
		recorder:     recorder,
		fields:       logging.NewCommonFields(masker),
		timeout:      config.StoreCallTimeout,
	}
}

// HandleCustomerEvent はイベント種別に応じた同期を行う。
func (c *Coordinator) HandleCustomerEvent(ctx context.Context, ev events.CustomerEvent) {
	cust := ev.Customer
	if !cust.IsNetworkCustomer() {
		slog.Debug("skip non-network customer",
			c.fields.CustomerLogFields("SYNC_SKIP", customerID(cust), customerUsername(cust))...)
		return
	}

	switch ev.Type {
	case events.CustomerCreated:
		c.onCreated(ctx, cust)
	case events.CustomerUpdated:
		c.onUpdated(ctx, cust, ev.Previous, ev.ChangedFields())
	case events.CustomerDeleted:
		c.onDeleted(ctx, cust)
	case events.CustomerRestored:
		c.onRestored(ctx, cust)
	default:
		slog.Warn("unknown customer event type",
			"event_id", "EVENT_UNKNOWN",
			"type", string(ev.Type),
		)
	}
}

func (c *Coordinator) onCreated(ctx context.Context, cust *model.Customer) {
	if cust.Username == "" || !cust.HasNetworkSecret() {
		return
	}
	c.upsert(ctx, cust, model.CredentialAttributes{Password: cust.NetworkPassword})
}

func (c *Coordinator) onUpdated(ctx context.Context, cust, prev *model.Customer, changed []string) {
	// ユーザー名変更・削除時は旧エントリを残さない
	renamed := prev != nil && prev.Username != "" && prev.Username != cust.Username
	if renamed {
		old := *cust
		old.Username = prev.Username
		if c.remove(ctx, &old) && (cust.Username == "" || !cust.IsActiveForRadius()) {
			c.disconnectIfOnline(ctx, &old)
		}
	}

	if cust.Username == "" {
		return
	}
	if !renamed && !slices.ContainsFunc(changed, func(f string) bool { return slices.Contains(trackedFields, f) }) {
		return
	}

	if !cust.IsActiveForRadius() {
		if c.remove(ctx, cust) {
			c.disconnectIfOnline(ctx, cust)
		}
		return
	}
	c.upsert(ctx, cust, model.CredentialAttributesFromCustomer(cust))
}

func (c *Coordinator) onDeleted(ctx context.Context, cust *model.Customer) {
	if cust.Username == "" {
		return
	}
	if c.remove(ctx, cust) {
		c.disconnectIfOnline(ctx, cust)
	}
}

func (c *Coordinator) onRestored(ctx context.Context, cust *model.Customer) {
	if cust.Username == "" || !cust.HasNetworkSecret() || !cust.IsActiveForRadius() {
		return
	}
	c.upsert(ctx, cust, model.CredentialAttributesFromCustomer(cust))
}

// ResyncResult は一括再同期の集計
type ResyncResult struct {
	Upserted int `json:"upserted"`
	Removed  int `json:"removed"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// Resync は顧客スナップショットを現在の状態で認証ストアへ再同期する。
// RADIUS上で有効な顧客は登録、それ以外は削除する。個々の失敗は記録して続行する。
func (c *Coordinator) Resync(ctx context.Context, customers []*model.Customer) ResyncResult {
	var res ResyncResult
	for _, cust := range customers {
		if !cust.IsNetworkCustomer() || cust.Username == "" {
			res.Skipped++
			continue
		}
		if cust.IsActiveForRadius() {
			if !cust.HasNetworkSecret() {
				res.Skipped++
				continue
			}
			if c.upsert(ctx, cust, model.CredentialAttributesFromCustomer(cust)) {
				res.Upserted++
			} else {
				res.Failed++
			}
			continue
		}
		if c.remove(ctx, cust) {
			res.Removed++
		} else {
			res.Failed++
		}
	}

	slog.Info("customer resync completed",
		"event_id", "RESYNC_DONE",
		"upserted", res.Upserted,
		"removed", res.Removed,
		"skipped", res.Skipped,
		"failed", res.Failed,
	)
	return res
}

// upsert は認証ストアへ登録する。成功時にtrueを返す。
func (c *Coordinator) upsert(ctx context.Context, cust *model.Customer, attrs model.CredentialAttributes) bool {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	rec := audit.Record{
		Operation:  audit.OpUpsert,
		TargetType: audit.TargetCustomer,
		TargetKey:  cust.Username,
		CustomerID: cust.ID,
		Username:   cust.Username,
	}

	if err := c.store.Upsert(callCtx, cust.Username, attrs); err != nil {
		rec.Err = err
		c.recorder.RecordFailure(rec)
		slog.Error("radius upsert failed",
			append(c.fields.CustomerLogFields("RADIUS_UPSERT_ERR", cust.ID, cust.Username),
				logging.WithError(err))...)
		return false
	}

	c.recorder.RecordSuccess(rec)
	slog.Info("radius user synced",
		append(c.fields.CustomerLogFields("RADIUS_UPSERT_OK", cust.ID, cust.Username),
			"framed_ip", attrs.FramedIPAddress != "",
			"mac_bound", attrs.CallingStationID != "")...)
	return true
}

// remove は認証ストアから削除する。成功時にtrueを返す。
func (c *Coordinator) remove(ctx context.Context, cust *model.Customer) bool {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	rec := audit.Record{
		Operation:  audit.OpRemove,
		TargetType: audit.TargetCustomer,
		TargetKey:  cust.Username,
		CustomerID: cust.ID,
		Username:   cust.Username,
	}

	if err := c.store.Remove(callCtx, cust.Username); err != nil {
		rec.Err = err
		c.recorder.RecordFailure(rec)
		slog.Error("radius remove failed",
			append(c.fields.CustomerLogFields("RADIUS_REMOVE_ERR", cust.ID, cust.Username),
				logging.WithError(err))...)
		return false
	}

	c.recorder.RecordSuccess(rec)
	slog.Info("radius user removed",
		c.fields.CustomerLogFields("RADIUS_REMOVE_OK", cust.ID, cust.Username)...)
	return true
}

// disconnectIfOnline は接続中の加入者のセッションを切断する。
func (c *Coordinator) disconnectIfOnline(ctx context.Context, cust *model.Customer) {
	if c.presence == nil || c.disconnector == nil {
		return
	}
	session := c.presence.CurrentSession(ctx, cust.Username)
	if session == nil {
		return
	}

	if err := c.disconnector.Disconnect(ctx, session); err != nil {
		c.recorder.RecordFailure(audit.Record{
			Operation:  audit.OpDisconnect,
			TargetType: audit.TargetCustomer,
			TargetKey:  session.NasIPAddress,
			CustomerID: cust.ID,
			Username:   cust.Username,
			Err:        err,
		})
		slog.Warn("session disconnect failed",
			append(c.fields.CustomerLogFields("DISCONNECT_ERR", cust.ID, cust.Username),
				c.fields.WithMobile(cust.Mobile),
				"nas_ip", session.NasIPAddress,
				logging.WithError(err))...)
		return
	}

	c.recorder.RecordSuccess(audit.Record{
		Operation:  audit.OpDisconnect,
		TargetType: audit.TargetCustomer,
		TargetKey:  session.NasIPAddress,
		CustomerID: cust.ID,
		Username:   cust.Username,
	})
}

func customerID(c *model.Customer) int64 {
	if c == nil {
		return 0
	}
	return c.ID
}

func customerUsername(c *model.Customer) string {
	if c == nil {
		return ""
	}
	return c.Username
}
