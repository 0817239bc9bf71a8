package disconnect

import "errors"

// センチネルエラー
var (
	// ErrNasSecretNotFound はセッションのNASに共有シークレットが見つからない場合のエラー
	ErrNasSecretNotFound = errors.New("nas secret not found")

	// ErrDisconnectNAK はNASがDisconnect-NAKを返した場合のエラー
	ErrDisconnectNAK = errors.New("disconnect request rejected by nas")

	// ErrInvalidSession は切断対象のセッション情報が不足している場合のエラー
	ErrInvalidSession = errors.New("invalid session for disconnect")
)
