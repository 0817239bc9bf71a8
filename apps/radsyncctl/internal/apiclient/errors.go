package apiclient

import (
	"errors"
	"fmt"

	"github.com/oyaguma3/radsync/pkg/httputil"
)

// ErrInvalidResponse はレスポンスが解析できない場合のエラー
var ErrInvalidResponse = errors.New("invalid response")

// APIError はSync Serverが返したエラーレスポンス
type APIError struct {
	StatusCode int
	Problem    *httputil.ProblemDetail
	Body       string
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	if e.Problem != nil {
		if e.Problem.Reason != "" {
			return fmt.Sprintf("api error: status=%d, reason=%s, detail=%s", e.StatusCode, e.Problem.Reason, e.Problem.Detail)
		}
		return fmt.Sprintf("api error: status=%d, detail=%s", e.StatusCode, e.Problem.Detail)
	}
	return fmt.Sprintf("api error: status=%d, body=%s", e.StatusCode, e.Body)
}
