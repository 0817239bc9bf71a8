package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/oyaguma3/radsync/pkg/model"
)

// accountingTimeLayout はradacctの日時カラムの書式（FreeRADIUS の書き込み形式）
const accountingTimeLayout = "2006-01-02 15:04:05"

const sessionColumns = `acctsessionid, username, nasipaddress, framedipaddress,
	acctstarttime, acctstoptime, acctinputoctets, acctoutputoctets`

// AccountingLog はアカウンティングログ（radacct）を参照する。書き込みは行わない。
type AccountingLog struct {
	db *sqlx.DB
}

// NewAccountingLog は新しいAccountingLogを生成する。
func NewAccountingLog(db *sqlx.DB) *AccountingLog {
	return &AccountingLog{db: db}
}

// HasOpenSession は未終了セッションが存在するかを返す。
func (l *AccountingLog) HasOpenSession(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := l.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM radacct WHERE username = ? AND acctstoptime IS NULL)`, username)
	if err != nil {
		return false, storeErr("acct-open", username, err)
	}
	return exists, nil
}

// LatestOpenSession は開始時刻が最も新しい未終了セッションを返す。存在しない場合は nil, nil を返す。
func (l *AccountingLog) LatestOpenSession(ctx context.Context, username string) (*model.AccountingSession, error) {
	var s model.AccountingSession
	err := l.db.QueryRowxContext(ctx,
		`SELECT `+sessionColumns+` FROM radacct
		 WHERE username = ? AND acctstoptime IS NULL
		 ORDER BY acctstarttime DESC LIMIT 1`, username).StructScan(&s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("acct-latest", username, err)
	}
	return &s, nil
}

// OnlineAmong は指定ユーザー名のうち未終了セッションを持つものを1クエリで返す。
func (l *AccountingLog) OnlineAmong(ctx context.Context, usernames []string) ([]string, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT DISTINCT username FROM radacct WHERE acctstoptime IS NULL AND username IN (?)`, usernames)
	if err != nil {
		return nil, storeErr("acct-classify", "", err)
	}

	var online []string
	if err := l.db.SelectContext(ctx, &online, l.db.Rebind(query), args...); err != nil {
		return nil, storeErr("acct-classify", "", err)
	}
	return online, nil
}

// History は開始時刻の降順でセッション履歴を返す。
func (l *AccountingLog) History(ctx context.Context, username string, limit int) ([]model.AccountingSession, error) {
	var sessions []model.AccountingSession
	err := l.db.SelectContext(ctx, &sessions,
		`SELECT `+sessionColumns+` FROM radacct
		 WHERE username = ?
		 ORDER BY acctstarttime DESC LIMIT ?`, username, limit)
	if err != nil {
		return nil, storeErr("acct-history", username, err)
	}
	return sessions, nil
}

// Usage は期間内に開始したセッションの通信量を集計する。境界は両端を含む。
func (l *AccountingLog) Usage(ctx context.Context, username string, from, to time.Time) (model.Usage, error) {
	var u model.Usage
	err := l.db.GetContext(ctx, &u,
		`SELECT
			COALESCE(SUM(acctinputoctets), 0) AS total_input,
			COALESCE(SUM(acctoutputoctets), 0) AS total_output,
			COALESCE(SUM(acctinputoctets + acctoutputoctets), 0) AS total_usage
		 FROM radacct
		 WHERE username = ? AND acctstarttime BETWEEN ? AND ?`, username,
		from.UTC().Format(accountingTimeLayout), to.UTC().Format(accountingTimeLayout))
	if err != nil {
		return model.Usage{}, storeErr("acct-usage", username, err)
	}
	return u, nil
}
