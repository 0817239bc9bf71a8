package apiclient

import "github.com/oyaguma3/radsync/pkg/model"

// HealthResponse はヘルスチェックレスポンス
type HealthResponse struct {
	Status string `json:"status"`
}

// PresenceResponse は接続状態レスポンス
type PresenceResponse struct {
	Username        string                   `json:"username"`
	Online          bool                     `json:"online"`
	Session         *model.AccountingSession `json:"session"`
	DurationSeconds int64                    `json:"duration_seconds"`
}

// HistoryResponse はセッション履歴レスポンス
type HistoryResponse struct {
	Username string                    `json:"username"`
	Sessions []model.AccountingSession `json:"sessions"`
}

// UsageResponse は通信量レスポンス
type UsageResponse struct {
	Username string `json:"username"`
	From     string `json:"from"`
	To       string `json:"to"`
	Upload   int64  `json:"upload"`
	Download int64  `json:"download"`
	Total    int64  `json:"total"`
}

type classifyRequest struct {
	Usernames []string `json:"usernames"`
}

// ClassifyResponse は一括判定レスポンス
type ClassifyResponse struct {
	Online  []string `json:"online"`
	Offline []string `json:"offline"`
}

// Failure は同期失敗の監査エントリ
type Failure struct {
	ID         string `json:"id"`
	Time       string `json:"time"`
	Operation  string `json:"operation"`
	TargetType string `json:"target_type"`
	TargetKey  string `json:"target_key,omitempty"`
	CustomerID int64  `json:"customer_id,omitempty"`
	RouterID   int64  `json:"router_id,omitempty"`
	Username   string `json:"username,omitempty"`
	Error      string `json:"error,omitempty"`
}

// FailuresResponse は直近の同期失敗一覧
type FailuresResponse struct {
	Failures []Failure `json:"failures"`
}

// NasListResponse はNASエントリ一覧
type NasListResponse struct {
	Entries []model.NasEntry `json:"entries"`
}
