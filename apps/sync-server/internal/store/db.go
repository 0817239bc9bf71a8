// Package store はRADIUS DB・課金DB・Valkeyへのデータアクセスを提供する。
package store

import (
	"bufio"
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/oyaguma3/radsync/pkg/apperr"
)

const driverName = "sqlite"

var (
	//go:embed schema.sql
	schema string

	commentsAndEmptyLinesRegex = regexp.MustCompile(`--.*?\n$|^\s+$`)
)

// OpenDB はDBを開き、スキーマを適用する。
// インメモリDBの場合は接続を1本に制限する（接続ごとに別DBになるため）。
func OpenDB(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if err := createSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unable to create schema: %w", err)
	}
	return db, nil
}

// createSchema は埋め込みスキーマを1文ずつ適用する。
func createSchema(ctx context.Context, db *sqlx.DB) error {
	for n, statement := range strings.Split(schema, ";") {
		statement = trimCommentsAndWhitespace(statement)
		if statement == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("statement %d failed: %q: %w", n+1, statement, err)
		}
	}
	return nil
}

func trimCommentsAndWhitespace(s string) string {
	var sb strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := scanner.Text() + "\n"
		sb.WriteString(commentsAndEmptyLinesRegex.ReplaceAllString(line, ""))
	}
	return strings.TrimSpace(sb.String())
}

// checkRowsAffected は更新対象が0行の場合に ErrNoRowsAffected を返す。
func checkRowsAffected(r sql.Result, err error) error {
	if err != nil {
		return err
	}
	affected, err := r.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// storeErr はDBエラーを StoreError に変換する。
func storeErr(op, target string, err error) error {
	return apperr.NewStoreError(op, target, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err))
}
