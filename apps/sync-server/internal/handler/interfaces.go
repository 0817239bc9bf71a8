package handler

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=handler

import (
	"context"
	"time"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/audit"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/coordinator"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/events"
	"github.com/oyaguma3/radsync/pkg/model"
)

// EventPublisher はライフサイクルイベントの発行インターフェース
type EventPublisher interface {
	PublishCustomer(ctx context.Context, ev events.CustomerEvent)
	PublishRouter(ctx context.Context, ev events.RouterEvent)
}

// PasswordUpdater はパスワード反映インターフェース
type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, customer *model.Customer, router *model.Router, newPassword string) error
}

// Resyncer は一括再同期インターフェース
type Resyncer interface {
	Resync(ctx context.Context, customers []*model.Customer) coordinator.ResyncResult
}

// PresenceReader はプレゼンス照会インターフェース
type PresenceReader interface {
	IsOnline(ctx context.Context, username string) bool
	CurrentSession(ctx context.Context, username string) *model.AccountingSession
	SessionDuration(ctx context.Context, username string) time.Duration
	Classify(ctx context.Context, usernames []string) (online, offline []string)
	History(ctx context.Context, username string, limit int) []model.AccountingSession
	Usage(ctx context.Context, username string, from, to time.Time) model.Usage
}

// FailureLister は直近の同期失敗を返すインターフェース
type FailureLister interface {
	RecentFailures(n int) []audit.Entry
}

// NasLister はNASエントリ一覧を返すインターフェース
type NasLister interface {
	List(ctx context.Context) ([]model.NasEntry, error)
}
