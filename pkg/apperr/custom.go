package apperr

import "fmt"

// ValidationError はバリデーションエラーを表す。
type ValidationError struct {
	Field   string // エラーが発生したフィールド名
	Message string // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field=%s, message=%s", e.Field, e.Message)
}

// NewValidationError はValidationErrorを生成する。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// DeviceError はルーターへのリモート呼び出しエラーを表す。
// Kind には ErrDeviceUnreachable 等のセンチネルエラーが入る。
type DeviceError struct {
	RouterID   int64  // ルーターID
	Operation  string // 操作名（set-secret等）
	StatusCode int    // HTTPステータスコード（応答がない場合は0）
	Kind       error  // エラー種別
	Cause      error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *DeviceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("device error: routerID=%d, operation=%s, statusCode=%d, kind=%v, cause=%v",
			e.RouterID, e.Operation, e.StatusCode, e.Kind, e.Cause)
	}
	return fmt.Sprintf("device error: routerID=%d, operation=%s, statusCode=%d, kind=%v",
		e.RouterID, e.Operation, e.StatusCode, e.Kind)
}

// Unwrap はエラー種別と根本原因を返す。
// errors.Is(err, ErrDeviceTimeout) のような判定を可能にする。
func (e *DeviceError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewDeviceError はDeviceErrorを生成する。
func NewDeviceError(routerID int64, operation string, statusCode int, kind, cause error) *DeviceError {
	return &DeviceError{
		RouterID:   routerID,
		Operation:  operation,
		StatusCode: statusCode,
		Kind:       kind,
		Cause:      cause,
	}
}

// StoreError は認証ストアとの操作エラーを表す。
type StoreError struct {
	Operation string // 操作名（upsert, remove等）
	Target    string // 操作対象（ユーザー名、NAS ID等）
	Cause     error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: operation=%s, target=%s, cause=%v",
			e.Operation, e.Target, e.Cause)
	}
	return fmt.Sprintf("store error: operation=%s, target=%s", e.Operation, e.Target)
}

// Unwrap は根本原因を返す。
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// NewStoreError はStoreErrorを生成する。
func NewStoreError(operation, target string, cause error) *StoreError {
	return &StoreError{
		Operation: operation,
		Target:    target,
		Cause:     cause,
	}
}
