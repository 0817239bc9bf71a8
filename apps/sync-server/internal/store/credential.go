package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/oyaguma3/radsync/pkg/model"
)

// CredentialStore は加入者の認証レコード（radcheck/radreply）を管理する。
type CredentialStore struct {
	db *sqlx.DB
}

// NewCredentialStore は新しいCredentialStoreを生成する。
func NewCredentialStore(db *sqlx.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Upsert は加入者の認証属性を作成または更新する。
// 属性ごとに既存行を置き換え、空の属性は削除する（Passwordが空の場合は維持）。
func (s *CredentialStore) Upsert(ctx context.Context, username string, attrs model.CredentialAttributes) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("upsert", username, err)
	}
	defer func() { _ = tx.Rollback() }()

	if attrs.Password != "" {
		if err := replaceAttr(ctx, tx, "radcheck", username, model.AttrCleartextPassword, ":=", attrs.Password); err != nil {
			return storeErr("upsert", username, err)
		}
	}
	if err := replaceAttr(ctx, tx, "radcheck", username, model.AttrCallingStationID, "==", attrs.CallingStationID); err != nil {
		return storeErr("upsert", username, err)
	}
	if err := replaceAttr(ctx, tx, "radreply", username, model.AttrFramedIPAddress, "=", attrs.FramedIPAddress); err != nil {
		return storeErr("upsert", username, err)
	}

	if err := tx.Commit(); err != nil {
		return storeErr("upsert", username, err)
	}
	return nil
}

// Remove は加入者の認証レコードをすべて削除する。存在しない場合もエラーにしない。
func (s *CredentialStore) Remove(ctx context.Context, username string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("remove", username, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM radcheck WHERE username = ?`, username); err != nil {
		return storeErr("remove", username, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM radreply WHERE username = ?`, username); err != nil {
		return storeErr("remove", username, err)
	}

	if err := tx.Commit(); err != nil {
		return storeErr("remove", username, err)
	}
	return nil
}

// Attributes は登録済みの認証属性を取得する。未登録の場合は ok=false を返す。
func (s *CredentialStore) Attributes(ctx context.Context, username string) (model.CredentialAttributes, bool, error) {
	type row struct {
		Attribute string `db:"attribute"`
		Value     string `db:"value"`
	}
	var rows []row
	err := s.db.SelectContext(ctx, &rows,
		`SELECT attribute, value FROM radcheck WHERE username = ?
		 UNION ALL
		 SELECT attribute, value FROM radreply WHERE username = ?`, username, username)
	if err != nil {
		return model.CredentialAttributes{}, false, storeErr("get", username, err)
	}

	var attrs model.CredentialAttributes
	for _, r := range rows {
		switch r.Attribute {
		case model.AttrCleartextPassword:
			attrs.Password = r.Value
		case model.AttrCallingStationID:
			attrs.CallingStationID = r.Value
		case model.AttrFramedIPAddress:
			attrs.FramedIPAddress = r.Value
		}
	}
	return attrs, len(rows) > 0, nil
}

// replaceAttr は1属性を置き換える。value が空の場合は削除のみ行う。
func replaceAttr(ctx context.Context, tx *sqlx.Tx, table, username, attribute, op, value string) error {
	// テーブル名は呼び出し元の定数のみ
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM `+table+` WHERE username = ? AND attribute = ?`, username, attribute); err != nil {
		return err
	}
	if value == "" {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO `+table+` (username, attribute, op, value) VALUES (?, ?, ?, ?)`,
		username, attribute, op, value)
	return err
}
