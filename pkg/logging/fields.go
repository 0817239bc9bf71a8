package logging

import "log/slog"

// ログフィールド名の定数
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
	FieldCustomerID = "customer_id"
	FieldUsername   = "username"
	FieldRouterID   = "router_id"
	FieldRouterName = "router_name"
	FieldNasID      = "nas_id"
	FieldOperation  = "operation"
	FieldMobile     = "mobile"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithHTTPStatus はHTTPステータスコードのslog.Attrを返す。
func WithHTTPStatus(status int) slog.Attr {
	return slog.Int(FieldHTTPStatus, status)
}

// WithCustomerID は顧客IDのslog.Attrを返す。
func WithCustomerID(id int64) slog.Attr {
	return slog.Int64(FieldCustomerID, id)
}

// WithUsername はネットワークユーザー名のslog.Attrを返す。
func WithUsername(username string) slog.Attr {
	return slog.String(FieldUsername, username)
}

// WithRouterID はルーターIDのslog.Attrを返す。
func WithRouterID(id int64) slog.Attr {
	return slog.Int64(FieldRouterID, id)
}

// WithNasID はNASエントリIDのslog.Attrを返す。
func WithNasID(id int64) slog.Attr {
	return slog.Int64(FieldNasID, id)
}

// WithOperation は操作名のslog.Attrを返す。
func WithOperation(op string) slog.Attr {
	return slog.String(FieldOperation, op)
}

// CommonFields はマスキング設定を保持するログフィールド生成器。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(false)
	}
	return &CommonFields{masker: masker}
}

// WithMobile はマスキングされた携帯番号のslog.Attrを返す。
func (cf *CommonFields) WithMobile(mobile string) slog.Attr {
	return slog.String(FieldMobile, cf.masker.Mobile(mobile))
}

// CustomerLogFields は顧客同期ログ用の共通フィールドを返す。
// ユーザー名はマスキング設定に従って出力する。
func (cf *CommonFields) CustomerLogFields(eventID string, customerID int64, username string) []any {
	return []any{
		WithEventID(eventID),
		WithCustomerID(customerID),
		WithUsername(cf.masker.Username(username)),
	}
}

// RouterLogFields はルーター同期ログ用の共通フィールドを返す。
func (cf *CommonFields) RouterLogFields(eventID string, routerID int64, routerName string) []any {
	return []any{
		WithEventID(eventID),
		WithRouterID(routerID),
		slog.String(FieldRouterName, routerName),
	}
}
