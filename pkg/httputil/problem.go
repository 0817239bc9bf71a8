// Package httputil はHTTP関連のユーティリティを提供する。
package httputil

import (
	"errors"
	"net/http"

	"github.com/oyaguma3/radsync/pkg/apperr"
)

// ContentType はRFC 7807で定義されたContent-Typeヘッダー値。
const ContentType = "application/problem+json"

// ProblemDetail はRFC 7807準拠のエラーレスポンス構造体。
type ProblemDetail struct {
	Type   string `json:"type"`             // エラータイプのURI
	Title  string `json:"title"`            // エラータイトル
	Status int    `json:"status"`           // HTTPステータスコード
	Detail string `json:"detail,omitempty"` // 詳細説明
	Reason string `json:"reason,omitempty"` // 機械判定用のエラー種別
}

// NewProblemDetail は新しいProblemDetailを生成する。
func NewProblemDetail(status int, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// WithReason はエラー種別を設定する。
func (p *ProblemDetail) WithReason(reason string) *ProblemDetail {
	p.Reason = reason
	return p
}

// BadRequest は400 Bad Requestのエラーレスポンスを生成する。
func BadRequest(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusBadRequest, "Bad Request", detail)
}

// NotFound は404 Not Foundのエラーレスポンスを生成する。
func NotFound(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusNotFound, "Not Found", detail)
}

// Conflict は409 Conflictのエラーレスポンスを生成する。
func Conflict(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusConflict, "Conflict", detail)
}

// InternalServerError は500 Internal Server Errorのエラーレスポンスを生成する。
func InternalServerError(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusInternalServerError, "Internal Server Error", detail)
}

// BadGateway は502 Bad Gatewayのエラーレスポンスを生成する。
func BadGateway(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusBadGateway, "Bad Gateway", detail)
}

// ServiceUnavailable は503 Service Unavailableのエラーレスポンスを生成する。
func ServiceUnavailable(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusServiceUnavailable, "Service Unavailable", detail)
}

// GatewayTimeout は504 Gateway Timeoutのエラーレスポンスを生成する。
func GatewayTimeout(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusGatewayTimeout, "Gateway Timeout", detail)
}

// FromError はアプリケーションエラーを対応するProblemDetailに変換する。
// 未知のエラーは500として扱い、内部情報は詳細に含めない。
func FromError(err error) *ProblemDetail {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return BadRequest(ve.Message).WithReason("validation")
	case errors.Is(err, apperr.ErrInvalidRequest):
		return BadRequest("request is invalid").WithReason("invalid_request")
	case errors.Is(err, apperr.ErrEntityNotFound):
		return NotFound("resource not found").WithReason("not_found")
	case errors.Is(err, apperr.ErrSubscriberNotFound):
		return NotFound("subscriber not found on router").WithReason("subscriber_not_found")
	case errors.Is(err, apperr.ErrNoRouterAssigned):
		return Conflict("customer has no assigned router").WithReason("no_router_assigned")
	case errors.Is(err, apperr.ErrRouterMismatch):
		return Conflict("router is not assigned to customer").WithReason("router_mismatch")
	case errors.Is(err, apperr.ErrDeviceTimeout):
		return GatewayTimeout("router did not respond in time").WithReason("device_timeout")
	case errors.Is(err, apperr.ErrDeviceAuthFailed):
		return BadGateway("router rejected API credentials").WithReason("device_auth_failed")
	case errors.Is(err, apperr.ErrDeviceUnreachable):
		return BadGateway("router unreachable").WithReason("device_unreachable")
	case errors.Is(err, apperr.ErrDeviceRejected):
		return BadGateway("router rejected request").WithReason("device_rejected")
	case errors.Is(err, apperr.ErrStoreUnavailable):
		return ServiceUnavailable("authentication store unavailable").WithReason("store_unavailable")
	default:
		return InternalServerError("internal error")
	}
}
