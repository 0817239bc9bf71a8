package propagation

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=propagation

import (
	"context"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/audit"
	"github.com/oyaguma3/radsync/pkg/model"
)

// DeviceClient はルーター管理APIのインターフェース
type DeviceClient interface {
	SetSubscriberSecret(ctx context.Context, router *model.Router, name, secret, annotation string) error
}

// AuditRecorder は同期結果の記録インターフェース
type AuditRecorder interface {
	RecordFailure(rec audit.Record)
	RecordSuccess(rec audit.Record)
}
