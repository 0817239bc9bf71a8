// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// ストア関連エラー
var (
	// ErrStoreUnavailable は認証ストア（RADIUS DB / Valkey）が利用できない場合のエラー
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrEntityNotFound は対象エンティティが見つからない場合のエラー
	ErrEntityNotFound = errors.New("entity not found")
)

// ルーター（デバイス）関連エラー
var (
	// ErrDeviceUnreachable はルーターに到達できない場合のエラー
	ErrDeviceUnreachable = errors.New("device unreachable")
	// ErrDeviceAuthFailed はルーターAPIの認証失敗エラー
	ErrDeviceAuthFailed = errors.New("device authentication failed")
	// ErrDeviceTimeout はルーターAPIのタイムアウトエラー
	ErrDeviceTimeout = errors.New("device timeout")
	// ErrDeviceRejected はルーターがリクエストを拒否した場合のエラー
	ErrDeviceRejected = errors.New("device rejected request")
	// ErrSubscriberNotFound はルーター上に加入者（PPP secret）が存在しない場合のエラー
	ErrSubscriberNotFound = errors.New("subscriber not found on device")
)

// メタデータ関連エラー
var (
	// ErrMalformedMetadata はコメント文字列が解析できない場合のエラー
	// デコード処理では致命的エラーとして扱わない
	ErrMalformedMetadata = errors.New("malformed metadata")
)

// 前提条件エラー
var (
	// ErrNoRouterAssigned は顧客にルーターが割り当てられていない場合のエラー
	ErrNoRouterAssigned = errors.New("customer has no assigned router")
	// ErrRouterMismatch は指定ルーターが顧客の割当ルーターと異なる場合のエラー
	ErrRouterMismatch = errors.New("router is not assigned to customer")
	// ErrInvalidRequest は不正なリクエストエラー
	ErrInvalidRequest = errors.New("invalid request")
)
