package presence

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=presence

import (
	"context"
	"time"

	"github.com/oyaguma3/radsync/pkg/model"
)

// AccountingLog はアカウンティングログの読み取り操作を定義する
type AccountingLog interface {
	// HasOpenSession は未終了セッションの有無を返す
	HasOpenSession(ctx context.Context, username string) (bool, error)
	// LatestOpenSession は最新の未終了セッションを返す（なければnil）
	LatestOpenSession(ctx context.Context, username string) (*model.AccountingSession, error)
	// OnlineAmong は未終了セッションを持つユーザー名を1クエリで返す
	OnlineAmong(ctx context.Context, usernames []string) ([]string, error)
	// History はセッション履歴を開始時刻の降順で返す
	History(ctx context.Context, username string, limit int) ([]model.AccountingSession, error)
	// Usage は期間内の通信量を集計する
	Usage(ctx context.Context, username string, from, to time.Time) (model.Usage, error)
}
