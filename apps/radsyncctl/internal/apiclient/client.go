// Package apiclient はSync Serverの照会APIクライアントを提供する。
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/oyaguma3/radsync/pkg/httputil"
)

// DefaultTimeout はAPI呼び出しのタイムアウト
const DefaultTimeout = 10 * time.Second

// APIパス
const (
	pathHealth   = "/health"
	pathPresence = "/api/v1/presence/{username}"
	pathHistory  = "/api/v1/presence/{username}/history"
	pathUsage    = "/api/v1/presence/{username}/usage"
	pathClassify = "/api/v1/presence/classify"
	pathFailures = "/api/v1/audit/failures"
	pathNas      = "/api/v1/nas"
)

// Client はSync Server APIクライアント
type Client struct {
	httpClient *resty.Client
	baseURL    string
}

// NewClient は新しいClientを生成する。
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: resty.New().SetTimeout(timeout),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Health はヘルスチェックを行う。
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.get(ctx, pathHealth, c.httpClient.R(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Presence は加入者の接続状態を取得する。
func (c *Client) Presence(ctx context.Context, username string) (*PresenceResponse, error) {
	var out PresenceResponse
	req := c.httpClient.R().SetPathParam("username", username)
	if err := c.get(ctx, pathPresence, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History はセッション履歴を取得する。limit が0の場合はサーバー既定値。
func (c *Client) History(ctx context.Context, username string, limit int) (*HistoryResponse, error) {
	req := c.httpClient.R().SetPathParam("username", username)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	var out HistoryResponse
	if err := c.get(ctx, pathHistory, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Usage は期間内の通信量を取得する。from/to が空の場合はサーバー既定値。
func (c *Client) Usage(ctx context.Context, username, from, to string) (*UsageResponse, error) {
	req := c.httpClient.R().SetPathParam("username", username)
	if from != "" {
		req.SetQueryParam("from", from)
	}
	if to != "" {
		req.SetQueryParam("to", to)
	}
	var out UsageResponse
	if err := c.get(ctx, pathUsage, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Classify はユーザー名をオンライン・オフラインに分類する。
func (c *Client) Classify(ctx context.Context, usernames []string) (*ClassifyResponse, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(classifyRequest{Usernames: usernames}).
		Post(c.baseURL + pathClassify)
	if err != nil {
		return nil, fmt.Errorf("classify request failed: %w", err)
	}
	var out ClassifyResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Failures は直近の同期失敗を取得する。
func (c *Client) Failures(ctx context.Context, limit int) (*FailuresResponse, error) {
	var out FailuresResponse
	req := c.httpClient.R().SetQueryParam("limit", strconv.Itoa(limit))
	if err := c.get(ctx, pathFailures, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListNas はNASエントリ一覧を取得する。
func (c *Client) ListNas(ctx context.Context) (*NasListResponse, error) {
	var out NasListResponse
	if err := c.get(ctx, pathNas, c.httpClient.R(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, req *resty.Request, out any) error {
	resp, err := req.SetContext(ctx).Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	return decode(resp, out)
}

// decode は2xxレスポンスを out に展開し、それ以外は APIError を返す。
func decode(resp *resty.Response, out any) error {
	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: status, Body: string(resp.Body())}
		var p httputil.ProblemDetail
		if err := json.Unmarshal(resp.Body(), &p); err == nil && p.Title != "" {
			apiErr.Problem = &p
		}
		return apiErr
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
