package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/events"
	"github.com/oyaguma3/radsync/pkg/apperr"
	"github.com/oyaguma3/radsync/pkg/model"
)

const routerColumns = `id, name, ip_address, radius_secret, nas_id, status,
	api_host, api_port, api_username, api_password`

// RouterPublisher はルーター更新イベントの発行先。
type RouterPublisher interface {
	PublishRouter(ctx context.Context, ev events.RouterEvent)
}

// RouterRepository は課金DBのルーター台帳（routersテーブル）を操作する。
// 書き込み後は課金システムの保存フックと同様にルーター更新イベントを発行する。
type RouterRepository struct {
	db        *sqlx.DB
	publisher RouterPublisher
}

// NewRouterRepository は新しいRouterRepositoryを生成する。publisher は nil でもよい。
func NewRouterRepository(db *sqlx.DB, publisher RouterPublisher) *RouterRepository {
	return &RouterRepository{db: db, publisher: publisher}
}

// Get はIDでルーターを取得する。
func (r *RouterRepository) Get(ctx context.Context, id int64) (*model.Router, error) {
	var router model.Router
	err := r.db.QueryRowxContext(ctx, `SELECT `+routerColumns+` FROM routers WHERE id = ?`, id).StructScan(&router)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: router %d", apperr.ErrEntityNotFound, id)
	}
	if err != nil {
		return nil, storeErr("router-get", strconv.FormatInt(id, 10), err)
	}
	return &router, nil
}

// Save はルーターを作成または置き換える。
func (r *RouterRepository) Save(ctx context.Context, router *model.Router) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT OR REPLACE INTO routers (`+routerColumns+`)
		 VALUES (:id, :name, :ip_address, :radius_secret, :nas_id, :status,
			:api_host, :api_port, :api_username, :api_password)`, router)
	if err != nil {
		return storeErr("router-save", strconv.FormatInt(router.ID, 10), err)
	}
	return nil
}

// LinkNas はルーターにNAS逆参照と共有シークレットを書き込み、更新イベントを発行する。
// 同期処理から呼ぶ場合は events.Quiet で抑止したコンテキストを渡すこと。
func (r *RouterRepository) LinkNas(ctx context.Context, routerID, nasID int64, secret string) error {
	prev, err := r.Get(ctx, routerID)
	if err != nil {
		return err
	}

	err = checkRowsAffected(r.db.ExecContext(ctx,
		`UPDATE routers SET nas_id = ?, radius_secret = ? WHERE id = ?`, nasID, secret, routerID))
	if errors.Is(err, ErrNoRowsAffected) {
		return fmt.Errorf("%w: router %d", apperr.ErrEntityNotFound, routerID)
	}
	if err != nil {
		return storeErr("router-link", strconv.FormatInt(routerID, 10), err)
	}

	if r.publisher != nil {
		cur := *prev
		cur.NasID = &nasID
		cur.Secret = secret
		r.publisher.PublishRouter(ctx, events.RouterEvent{
			Type:     events.RouterUpdated,
			Router:   &cur,
			Previous: prev,
		})
	}
	return nil
}
