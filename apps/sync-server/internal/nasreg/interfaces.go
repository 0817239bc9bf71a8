package nasreg

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=nasreg

import (
	"context"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/audit"
	"github.com/oyaguma3/radsync/pkg/model"
)

// Registry はNASレジストリ（nasテーブル）操作インターフェース
type Registry interface {
	Create(ctx context.Context, e model.NasEntry) (int64, error)
	Update(ctx context.Context, id int64, patch model.NasPatch) error
	Get(ctx context.Context, id int64) (*model.NasEntry, error)
	FindByRouterID(ctx context.Context, routerID int64) (*model.NasEntry, error)
}

// RouterLinker はルーターへNAS逆参照を書き込むインターフェース
type RouterLinker interface {
	LinkNas(ctx context.Context, routerID, nasID int64, secret string) error
}

// ClientMirror はNASクライアントミラー操作インターフェース
type ClientMirror interface {
	Put(ctx context.Context, e model.NasEntry) error
	Delete(ctx context.Context, ip string) error
}

// AuditRecorder は同期結果の記録インターフェース
type AuditRecorder interface {
	RecordFailure(rec audit.Record)
	RecordSuccess(rec audit.Record)
}
