package handler

import (
	"github.com/oyaguma3/radsync/apps/sync-server/internal/audit"
	"github.com/oyaguma3/radsync/pkg/model"
)

// HealthResponse はヘルスチェックレスポンス
type HealthResponse struct {
	Status string `json:"status"`
}

// AcceptedResponse はイベント受付レスポンス
type AcceptedResponse struct {
	Status string `json:"status"`
}

// CustomerEventRequest は顧客イベントの受付リクエスト
type CustomerEventRequest struct {
	Type     string          `json:"type" binding:"required"`
	Customer *model.Customer `json:"customer" binding:"required"`
	Previous *model.Customer `json:"previous"`
	Changed  []string        `json:"changed"`
}

// RouterEventRequest はルーターイベントの受付リクエスト
type RouterEventRequest struct {
	Type     string        `json:"type" binding:"required"`
	Router   *model.Router `json:"router" binding:"required"`
	Previous *model.Router `json:"previous"`
	Changed  []string      `json:"changed"`
}

// PasswordRequest はパスワード反映リクエスト
type PasswordRequest struct {
	Customer *model.Customer `json:"customer" binding:"required"`
	Router   *model.Router   `json:"router"`
	Password string          `json:"password" binding:"required"`
}

// ResyncRequest は一括再同期リクエスト
type ResyncRequest struct {
	Customers []*model.Customer `json:"customers" binding:"required"`
}

// PresenceResponse は接続状態レスポンス
type PresenceResponse struct {
	Username        string                   `json:"username"`
	Online          bool                     `json:"online"`
	Session         *model.AccountingSession `json:"session"`
	DurationSeconds int64                    `json:"duration_seconds"`
}

// ClassifyRequest は一括判定リクエスト
type ClassifyRequest struct {
	Usernames []string `json:"usernames" binding:"required"`
}

// ClassifyResponse は一括判定レスポンス
type ClassifyResponse struct {
	Online  []string `json:"online"`
	Offline []string `json:"offline"`
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

// FailuresResponse は直近の同期失敗一覧
type FailuresResponse struct {
	Failures []audit.Entry `json:"failures"`
}

// NasListResponse はNASエントリ一覧
type NasListResponse struct {
	Entries []model.NasEntry `json:"entries"`
}
