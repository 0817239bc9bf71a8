// Package nasreg はルーターごとに1件のNASエントリを維持する。
//
// ルーターイベントの処理中に発生したエラーはログと監査記録に残し、発行元へは返さない。
package nasreg

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/audit"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/events"
	"github.com/oyaguma3/radsync/pkg/logging"
	"github.com/oyaguma3/radsync/pkg/model"
)

// Registrar はルーターイベントのオブザーバー
type Registrar struct {
	registry Registry
	routers  RouterLinker
	mirror   ClientMirror
	recorder AuditRecorder
	fields   *logging.CommonFields
	timeout  time.Duration
	random   io.Reader
}

// NewRegistrar は新しいRegistrarを生成する。mirror が nil の場合はミラーを更新しない。
func NewRegistrar(registry Registry, routers RouterLinker, mirror ClientMirror, recorder AuditRecorder) *Registrar {
	return &Registrar{
		registry: registry,
		routers:  routers,
		mirror:   mirror,
		recorder: recorder,
		fields:   logging.NewCommonFields(nil),
		timeout:  config.StoreCallTimeout,
		random:   rand.Reader,
	}
}

// HandleRouterEvent はイベント種別に応じてNASエントリを作成・更新する。
func (r *Registrar) HandleRouterEvent(ctx context.Context, ev events.RouterEvent) {
	if ev.Router == nil {
		return
	}
	switch ev.Type {
	case events.RouterCreated:
		r.onCreated(ctx, ev.Router)
	case events.RouterUpdated:
		r.onUpdated(ctx, ev.Router, ev.ChangedFields())
	default:
		slog.Warn("unknown router event type",
			"event_id", "EVENT_UNKNOWN",
			"type", string(ev.Type),
		)
	}
}

// NewEntry はルーターから新規NASエントリを組み立てる。
// ルーターにシークレットがなければランダムに生成する。
func NewEntry(router *model.Router, random io.Reader) (model.NasEntry, error) {
	secret := router.Secret
	if secret == "" {
		generated, err := GenerateSecret(random)
		if err != nil {
			return model.NasEntry{}, err
		}
		secret = generated
	}

	return model.NasEntry{
		RouterID:    router.ID,
		Name:        router.Name + " NAS",
		NasName:     router.IPAddress,
		ShortName:   ShortCode(router.Name, random),
		Type:        model.NasTypeMikrotik,
		Ports:       model.NasDefaultPort,
		Secret:      secret,
		Status:      nasStatus(router),
		Description: "Auto-created NAS entry for " + router.Name,
	}, nil
}

func (r *Registrar) onCreated(ctx context.Context, router *model.Router) {
	if router.NasID != nil {
		slog.Debug("router already linked to nas",
			append(r.fields.RouterLogFields("NAS_SKIP", router.ID, router.Name),
				logging.WithNasID(*router.NasID))...)
		return
	}

	existing, err := r.findByRouter(ctx, router.ID)
	if err != nil {
		r.fail(audit.OpNasCreate, router, "NAS_CREATE_ERR", err)
		return
	}
	if existing != nil {
		// 逆参照の書き込みだけが失敗していた場合の再実行
		slog.Info("nas entry already exists",
			append(r.fields.RouterLogFields("NAS_EXISTS", router.ID, router.Name),
				logging.WithNasID(existing.ID))...)
		if r.link(ctx, router, existing.ID, existing.Secret) {
			r.refreshMirror(ctx, router, "", *existing)
		}
		return
	}

	entry, err := NewEntry(router, r.random)
	if err != nil {
		r.fail(audit.OpNasCreate, router, "NAS_CREATE_ERR", err)
		return
	}

	id, err := r.create(ctx, entry)
	if err != nil {
		r.fail(audit.OpNasCreate, router, "NAS_CREATE_ERR", err)
		return
	}
	entry.ID = id

	r.recorder.RecordSuccess(r.record(audit.OpNasCreate, router, nil))
	slog.Info("nas entry created",
		append(r.fields.RouterLogFields("NAS_CREATE_OK", router.ID, router.Name),
			logging.WithNasID(id),
			"nasname", entry.NasName,
			"shortname", entry.ShortName,
			"secret_generated", router.Secret == "")...)

	if r.link(ctx, router, id, entry.Secret) {
		r.refreshMirror(ctx, router, "", entry)
	}
}

func (r *Registrar) onUpdated(ctx context.Context, router *model.Router, changed []string) {
	if router.NasID == nil {
		return
	}
	nasID := *router.NasID

	patch := buildPatch(router, changed)
	if patch.IsEmpty() {
		return
	}

	current, err := r.get(ctx, nasID)
	if err != nil {
		r.fail(audit.OpNasUpdate, router, "NAS_SYNC_ERR", err)
		return
	}

	if err := r.update(ctx, nasID, patch); err != nil {
		r.fail(audit.OpNasUpdate, router, "NAS_SYNC_ERR", err)
		return
	}

	r.recorder.RecordSuccess(r.record(audit.OpNasUpdate, router, nil))
	slog.Info("nas entry synced",
		append(r.fields.RouterLogFields("NAS_SYNC_OK", router.ID, router.Name),
			logging.WithNasID(nasID),
			"fields", patch.Fields())...)

	oldAddr := ""
	if patch.NasName != nil && current.NasName != *patch.NasName {
		oldAddr = current.NasName
	}
	r.refreshMirror(ctx, router, oldAddr, patch.Apply(*current))
}

// buildPatch は変更フィールドのうち管理アドレス・シークレット・ステータスのみをパッチにする。
func buildPatch(router *model.Router, changed []string) model.NasPatch {
	var patch model.NasPatch
	if slices.Contains(changed, model.RouterFieldIPAddress) && router.IPAddress != "" {
		addr := router.IPAddress
		patch.NasName = &addr
	}
	if slices.Contains(changed, model.RouterFieldSecret) && router.Secret != "" {
		secret := router.Secret
		patch.Secret = &secret
	}
	if slices.Contains(changed, model.RouterFieldStatus) {
		status := nasStatus(router)
		patch.Status = &status
	}
	return patch
}

func nasStatus(router *model.Router) string {
	if router.IsActive() {
		return model.NasStatusActive
	}
	return model.NasStatusInactive
}

// link はルーターへ逆参照を書き込む。自身の更新イベントを発火させないよう抑止する。
func (r *Registrar) link(ctx context.Context, router *model.Router, nasID int64, secret string) bool {
	ctx, cancel := context.WithTimeout(events.Quiet(ctx, router.ID), r.timeout)
	defer cancel()

	if err := r.routers.LinkNas(ctx, router.ID, nasID, secret); err != nil {
		r.fail(audit.OpNasLink, router, "NAS_LINK_ERR", err)
		return false
	}
	return true
}

// refreshMirror はNASクライアントミラーを更新する。oldAddr があれば旧キーを削除する。
func (r *Registrar) refreshMirror(ctx context.Context, router *model.Router, oldAddr string, entry model.NasEntry) {
	if r.mirror == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if oldAddr != "" {
		if err := r.mirror.Delete(ctx, oldAddr); err != nil {
			r.fail(audit.OpMirror, router, "MIRROR_SYNC_ERR", err)
			return
		}
	}
	if err := r.mirror.Put(ctx, entry); err != nil {
		r.fail(audit.OpMirror, router, "MIRROR_SYNC_ERR", err)
	}
}

func (r *Registrar) findByRouter(ctx context.Context, routerID int64) (*model.NasEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.registry.FindByRouterID(ctx, routerID)
}

func (r *Registrar) create(ctx context.Context, e model.NasEntry) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.registry.Create(ctx, e)
}

func (r *Registrar) get(ctx context.Context, id int64) (*model.NasEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.registry.Get(ctx, id)
}

func (r *Registrar) update(ctx context.Context, id int64, patch model.NasPatch) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.registry.Update(ctx, id, patch)
}

func (r *Registrar) record(op audit.Operation, router *model.Router, err error) audit.Record {
	return audit.Record{
		Operation:  op,
		TargetType: audit.TargetRouter,
		TargetKey:  router.IPAddress,
		RouterID:   router.ID,
		Err:        err,
	}
}

// fail はエラーを記録してログに出力する。
func (r *Registrar) fail(op audit.Operation, router *model.Router, eventID string, err error) {
	r.recorder.RecordFailure(r.record(op, router, err))
	slog.Error("nas sync failed",
		append(r.fields.RouterLogFields(eventID, router.ID, router.Name),
			logging.WithOperation(string(op)),
			"router_ip", router.IPAddress,
			logging.WithError(err))...)
}
