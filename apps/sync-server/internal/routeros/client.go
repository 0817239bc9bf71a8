// Package routeros はMikroTik RouterOS REST APIクライアントを提供する。
package routeros

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
	"github.com/oyaguma3/radsync/pkg/apperr"
	"github.com/oyaguma3/radsync/pkg/model"
	"github.com/sony/gobreaker"
)

// Client はRouterOS REST APIクライアントの実装
type Client struct {
	httpClient *resty.Client
	scheme     string

	mu       sync.Mutex
	breakers map[int64]*gobreaker.CircuitBreaker
}

// NewClient は新しいRouterOSクライアントを生成する。
func NewClient(cfg *config.Config) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: config.DeviceConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: config.DeviceConnectTimeout,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}
	if cfg.RouterAPIInsecureTLS {
		// 自己署名証明書のルーターが多いため設定で検証を無効化できる
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	httpClient := resty.New().
		SetTransport(transport).
		SetTimeout(config.DeviceCallTimeout)

	scheme := cfg.RouterAPIScheme
	if scheme == "" {
		scheme = "https"
	}

	return &Client{
		httpClient: httpClient,
		scheme:     scheme,
		breakers:   make(map[int64]*gobreaker.CircuitBreaker),
	}
}

// breaker はルーター単位のCircuit Breakerを返す。
func (c *Client) breaker(routerID int64) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[routerID]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.CBNamePrefix + strconv.FormatInt(routerID, 10),
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
					"router_id", routerID,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	})
	c.breakers[routerID] = cb
	return cb
}

// BreakerState はルーターのCircuit Breaker状態を返す。未使用のルーターはClosed。
func (c *Client) BreakerState(routerID int64) gobreaker.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cb, ok := c.breakers[routerID]; ok {
		return cb.State()
	}
	return gobreaker.StateClosed
}

// SetSubscriberSecret はPPPシークレットのパスワードとコメントを更新する。
// 呼び出しは1回のみで、再試行は行わない。
func (c *Client) SetSubscriberSecret(ctx context.Context, router *model.Router, name, secret, annotation string) error {
	if router == nil {
		return apperr.ErrNoRouterAssigned
	}
	host := router.APIAddress()
	if host == "" {
		return apperr.NewDeviceError(router.ID, OpSetSecret, 0, apperr.ErrDeviceUnreachable,
			errors.New("router has no management address"))
	}

	start := time.Now()
	endpoint := c.baseURL(host, router.APIPort) + PathPPPSecret

	result, err := c.breaker(router.ID).Execute(func() (any, error) {
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetBasicAuth(router.APIUsername, router.APIPassword).
			SetHeader(HeaderContentType, ContentTypeJSON).
			SetPathParam("name", name).
			SetBody(secretPatch{Password: secret, Comment: annotation}).
			Patch(endpoint)
		if err != nil {
			// 接続失敗・タイムアウトのみCB失敗としてカウントする
			return nil, classifyTransportError(router.ID, err)
		}

		status := resp.StatusCode()
		if status >= 200 && status < 300 {
			return nil, nil
		}
		// HTTPエラー応答はルーターが生きているためCB対象外
		return statusError(router.ID, status, resp.Body()), nil
	})

	latencyMs := time.Since(start).Milliseconds()

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = apperr.NewDeviceError(router.ID, OpSetSecret, 0, apperr.ErrDeviceUnreachable, err)
		}
		slog.Error("router api call failed",
			"event_id", "DEVICE_CALL_ERR",
			"router_id", router.ID,
			"error", err.Error(),
			"latency_ms", latencyMs,
		)
		return err
	}

	if devErr, ok := result.(*apperr.DeviceError); ok {
		slog.Error("router api error",
			"event_id", "DEVICE_CALL_ERR",
			"router_id", router.ID,
			"http_status", devErr.StatusCode,
			"error", devErr.Error(),
			"latency_ms", latencyMs,
		)
		return devErr
	}

	slog.Debug("router api success",
		"router_id", router.ID,
		"latency_ms", latencyMs,
	)
	return nil
}

// baseURL は scheme://host[:port] を組み立てる。
func (c *Client) baseURL(host string, port int) string {
	if port > 0 {
		return c.scheme + "://" + net.JoinHostPort(host, strconv.Itoa(port))
	}
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		return c.scheme + "://[" + host + "]"
	}
	return c.scheme + "://" + host
}

// classifyTransportError は応答を得られなかったエラーを分類する。
func classifyTransportError(routerID int64, err error) *apperr.DeviceError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperr.NewDeviceError(routerID, OpSetSecret, 0, apperr.ErrDeviceTimeout, err)
	}
	return apperr.NewDeviceError(routerID, OpSetSecret, 0, apperr.ErrDeviceUnreachable, err)
}

// statusError はHTTPエラーステータスをDeviceErrorに変換する。
func statusError(routerID int64, status int, body []byte) *apperr.DeviceError {
	var kind error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = apperr.ErrDeviceAuthFailed
	case http.StatusNotFound:
		kind = apperr.ErrSubscriberNotFound
	default:
		kind = apperr.ErrDeviceRejected
	}
	return apperr.NewDeviceError(routerID, OpSetSecret, status, kind, parseAPIError(status, body))
}

// parseAPIError はRouterOSのエラーボディを error に変換する。
func parseAPIError(status int, body []byte) error {
	var raw apiErrorBody
	if err := json.Unmarshal(body, &raw); err == nil && raw.Message != "" {
		if raw.Detail != "" {
			return fmt.Errorf("routeros api error: %d %s - %s", status, raw.Message, raw.Detail)
		}
		return fmt.Errorf("routeros api error: %d %s", status, raw.Message)
	}
	return fmt.Errorf("routeros api error: %d", status)
}
