package store

import "errors"

var (
	// ErrNoRowsAffected は更新系操作で対象行がなかった場合のエラー
	ErrNoRowsAffected = errors.New("no rows affected by operation")

	// ErrValkeyUnavailable はValkeyへの接続が利用不可能な場合のエラー
	ErrValkeyUnavailable = errors.New("valkey unavailable")
)
