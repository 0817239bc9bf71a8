package coordinator

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=coordinator

import (
	"context"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/audit"
	"github.com/oyaguma3/radsync/pkg/model"
)

// CredentialStore は認証ストア（radcheck/radreply）操作インターフェース
type CredentialStore interface {
	Upsert(ctx context.Context, username string, attrs model.CredentialAttributes) error
	Remove(ctx context.Context, username string) error
}

// PresenceChecker は加入者の現在のセッションを返すインターフェース
type PresenceChecker interface {
	CurrentSession(ctx context.Context, username string) *model.AccountingSession
}

// Disconnector はセッション切断インターフェース
type Disconnector interface {
	Disconnect(ctx context.Context, session *model.AccountingSession) error
}

// AuditRecorder は同期結果の記録インターフェース
type AuditRecorder interface {
	RecordFailure(rec audit.Record)
	RecordSuccess(rec audit.Record)
}
