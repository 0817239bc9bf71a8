package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/oyaguma3/radsync/pkg/apperr"
	"github.com/oyaguma3/radsync/pkg/model"
)

const nasColumns = `id, router_id, name, nasname, shortname, type, ports, secret, status, description`

// NasRegistry はNASエントリ（nasテーブル）を管理する。
type NasRegistry struct {
	db *sqlx.DB
}

// NewNasRegistry は新しいNasRegistryを生成する。
func NewNasRegistry(db *sqlx.DB) *NasRegistry {
	return &NasRegistry{db: db}
}

// Create はNASエントリを作成し、採番されたIDを返す。
func (r *NasRegistry) Create(ctx context.Context, e model.NasEntry) (int64, error) {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO nas (
			router_id,
			name,
			nasname,
			shortname,
			type,
			ports,
			secret,
			status,
			description)
		 VALUES(
			:router_id,
			:name,
			:nasname,
			:shortname,
			:type,
			:ports,
			:secret,
			:status,
			:description)`, e)
	if err != nil {
		return 0, storeErr("nas-create", strconv.FormatInt(e.RouterID, 10), err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("nas-create", strconv.FormatInt(e.RouterID, 10), err)
	}
	return id, nil
}

// Update は指定フィールドのみを部分更新する。
func (r *NasRegistry) Update(ctx context.Context, id int64, patch model.NasPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	var sets []string
	var args []any
	if patch.NasName != nil {
		sets = append(sets, "nasname = ?")
		args = append(args, *patch.NasName)
	}
	if patch.Secret != nil {
		sets = append(sets, "secret = ?")
		args = append(args, *patch.Secret)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	args = append(args, id)

	target := strconv.FormatInt(id, 10)
	err := checkRowsAffected(r.db.ExecContext(ctx,
		`UPDATE nas SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...))
	if errors.Is(err, ErrNoRowsAffected) {
		return fmt.Errorf("%w: nas %d", apperr.ErrEntityNotFound, id)
	}
	if err != nil {
		return storeErr("nas-update", target, err)
	}
	return nil
}

// Get はIDでNASエントリを取得する。
func (r *NasRegistry) Get(ctx context.Context, id int64) (*model.NasEntry, error) {
	var e model.NasEntry
	err := r.db.QueryRowxContext(ctx, `SELECT `+nasColumns+` FROM nas WHERE id = ?`, id).StructScan(&e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: nas %d", apperr.ErrEntityNotFound, id)
	}
	if err != nil {
		return nil, storeErr("nas-get", strconv.FormatInt(id, 10), err)
	}
	return &e, nil
}

// FindByRouterID はルーターに紐付くNASエントリを返す。存在しない場合は nil, nil を返す。
func (r *NasRegistry) FindByRouterID(ctx context.Context, routerID int64) (*model.NasEntry, error) {
	var e model.NasEntry
	err := r.db.QueryRowxContext(ctx, `SELECT `+nasColumns+` FROM nas WHERE router_id = ?`, routerID).StructScan(&e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("nas-find", strconv.FormatInt(routerID, 10), err)
	}
	return &e, nil
}

// FindByNasName はデバイス識別子（管理アドレス）でNASエントリを返す。存在しない場合は nil, nil を返す。
func (r *NasRegistry) FindByNasName(ctx context.Context, nasName string) (*model.NasEntry, error) {
	var e model.NasEntry
	err := r.db.QueryRowxContext(ctx, `SELECT `+nasColumns+` FROM nas WHERE nasname = ? LIMIT 1`, nasName).StructScan(&e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("nas-find", nasName, err)
	}
	return &e, nil
}

// List は全NASエントリをID順に返す。
func (r *NasRegistry) List(ctx context.Context) ([]model.NasEntry, error) {
	entries := []model.NasEntry{}
	if err := r.db.SelectContext(ctx, &entries, `SELECT `+nasColumns+` FROM nas ORDER BY id`); err != nil {
		return nil, storeErr("nas-list", "*", err)
	}
	return entries, nil
}
