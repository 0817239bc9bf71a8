// Package config は環境変数から設定を読み込む。
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はSync Serverの設定を保持する。
type Config struct {
	// RADIUS DB（radcheck/radreply/nas/radacct）
	RadiusDBDSN string `envconfig:"RADIUS_DB_DSN" required:"true"`

	// 課金DB（routers テーブルへのNAS逆参照書き込み）
	BillingDBDSN string `envconfig:"BILLING_DB_DSN" required:"true"`

	// Valkey設定（NASクライアントミラー）
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS"`

	// ルーター管理API設定
	RouterAPIScheme      string `envconfig:"ROUTER_API_SCHEME" default:"https"`
	RouterAPIInsecureTLS bool   `envconfig:"ROUTER_API_INSECURE_TLS" default:"false"`

	// 切断要求（RFC 5176）の宛先ポート
	DisconnectPort int `envconfig:"DISCONNECT_PORT" default:"3799"`

	// サーバー設定
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskPII bool   `envconfig:"LOG_MASK_PII" default:"true"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// RedisAddr はValkey接続文字列を返す。
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

// validate は設定値のバリデーションを行う。
func (c *Config) validate() error {
	switch c.RouterAPIScheme {
	case "http", "https":
	default:
		return fmt.Errorf("ROUTER_API_SCHEME must be http or https")
	}
	if c.DisconnectPort <= 0 || c.DisconnectPort > 65535 {
		return fmt.Errorf("DISCONNECT_PORT out of range: %d", c.DisconnectPort)
	}
	if strings.TrimSpace(c.RadiusDBDSN) == "" {
		return fmt.Errorf("RADIUS_DB_DSN must not be empty")
	}
	if strings.TrimSpace(c.BillingDBDSN) == "" {
		return fmt.Errorf("BILLING_DB_DSN must not be empty")
	}
	return nil
}
