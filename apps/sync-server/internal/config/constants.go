package config

import "time"

// 外部呼び出しのタイムアウト（超過は失敗として扱う）
const (
	StoreCallTimeout      = 3 * time.Second
	DeviceCallTimeout     = 5 * time.Second
	DeviceConnectTimeout  = 2 * time.Second
	DisconnectCallTimeout = 3 * time.Second
)

// ルーター単位のCircuit Breaker設定
const (
	CBNamePrefix       = "router-"
	CBMaxRequests      = 1
	CBInterval         = 30 * time.Second
	CBTimeout          = 60 * time.Second
	CBFailureThreshold = 3
)

// 切断要求の再送設定
const (
	DisconnectRetry = 1 * time.Second
)

// プレゼンス照会
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
	MaxClassifyBatch    = 1000
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 5 * time.Second
)
