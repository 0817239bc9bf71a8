// Package presence はアカウンティングログから加入者の接続状態を導出する。
// 照会失敗時は例外を返さず「オフライン」として扱う。
package presence

import (
	"context"
	"log/slog"
	"time"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
	"github.com/oyaguma3/radsync/pkg/model"
)

// Resolver はプレゼンス照会を行う。
type Resolver struct {
	log     AccountingLog
	timeout time.Duration
	now     func() time.Time
}

// NewResolver は新しいResolverを生成する。
func NewResolver(log AccountingLog) *Resolver {
	return &Resolver{
		log:     log,
		timeout: config.StoreCallTimeout,
		now:     time.Now,
	}
}

// IsOnline は未終了セッションが存在する場合にtrueを返す。照会失敗時はfalse。
func (r *Resolver) IsOnline(ctx context.Context, username string) bool {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	online, err := r.log.HasOpenSession(ctx, username)
	if err != nil {
		r.logFailure(ctx, "is-online", username, err)
		return false
	}
	return online
}

// CurrentSession は最新の未終了セッションを返す。存在しない・照会失敗時はnil。
func (r *Resolver) CurrentSession(ctx context.Context, username string) *model.AccountingSession {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	s, err := r.log.LatestOpenSession(ctx, username)
	if err != nil {
		r.logFailure(ctx, "current-session", username, err)
		return nil
	}
	return s
}

// SessionDuration は現在のセッションの経過時間を返す。セッションがなければ0。
func (r *Resolver) SessionDuration(ctx context.Context, username string) time.Duration {
	s := r.CurrentSession(ctx, username)
	if s == nil {
		return 0
	}
	return s.Duration(r.now())
}

// Classify はユーザー名をオンライン・オフラインに分類する。
// 1回の集合照会で判定し、照会失敗時は全員をオフラインとする。
// 入力順を保持し、重複は除去する。
func (r *Resolver) Classify(ctx context.Context, usernames []string) (online, offline []string) {
	unique := dedupe(usernames)
	if len(unique) == 0 {
		return []string{}, []string{}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	found, err := r.log.OnlineAmong(ctx, unique)
	if err != nil {
		r.logFailure(ctx, "classify", "", err)
		return []string{}, unique
	}

	set := make(map[string]struct{}, len(found))
	for _, u := range found {
		set[u] = struct{}{}
	}

	online = make([]string, 0, len(found))
	offline = make([]string, 0, len(unique)-len(found))
	for _, u := range unique {
		if _, ok := set[u]; ok {
			online = append(online, u)
		} else {
			offline = append(offline, u)
		}
	}
	return online, offline
}

// History はセッション履歴を返す。limitは1〜MaxHistoryLimitに丸める。照会失敗時は空。
func (r *Resolver) History(ctx context.Context, username string, limit int) []model.AccountingSession {
	switch {
	case limit <= 0:
		limit = config.DefaultHistoryLimit
	case limit > config.MaxHistoryLimit:
		limit = config.MaxHistoryLimit
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	sessions, err := r.log.History(ctx, username, limit)
	if err != nil {
		r.logFailure(ctx, "history", username, err)
		return []model.AccountingSession{}
	}
	if sessions == nil {
		sessions = []model.AccountingSession{}
	}
	return sessions
}

// Usage は期間内の通信量を返す。照会失敗時はゼロ値。
func (r *Resolver) Usage(ctx context.Context, username string, from, to time.Time) model.Usage {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	u, err := r.log.Usage(ctx, username, from, to)
	if err != nil {
		r.logFailure(ctx, "usage", username, err)
		return model.Usage{}
	}
	return u
}

func (r *Resolver) logFailure(ctx context.Context, op, username string, err error) {
	slog.WarnContext(ctx, "presence query failed",
		"event_id", "PRESENCE_QUERY_ERR",
		"operation", op,
		"username", username,
		"error", err,
	)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
