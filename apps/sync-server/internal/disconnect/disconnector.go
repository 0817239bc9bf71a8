// Package disconnect はRFC 5176 Disconnect-RequestによるPPPセッション切断を行う。
package disconnect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
	"github.com/oyaguma3/radsync/pkg/apperr"
	"github.com/oyaguma3/radsync/pkg/model"
	"layeh.com/radius"
	"layeh.com/radius/rfc2865"
	"layeh.com/radius/rfc2866"
)

// attrErrorCause はError-Cause属性（RFC 5176）のタイプ番号
const attrErrorCause radius.Type = 101

// Disconnector はNASへDisconnect-Requestを送信する。
type Disconnector struct {
	cache   SecretCache
	nas     NasLookup
	port    int
	client  *radius.Client
	timeout time.Duration
}

// NewDisconnector は新しいDisconnectorを生成する。
func NewDisconnector(cache SecretCache, nas NasLookup, port int) *Disconnector {
	return &Disconnector{
		cache: cache,
		nas:   nas,
		port:  port,
		client: &radius.Client{
			Retry: config.DisconnectRetry,
		},
		timeout: config.DisconnectCallTimeout,
	}
}

// Disconnect はセッションを収容しているNASへ切断要求を送る。
// Disconnect-ACKで nil、Disconnect-NAKで ErrDisconnectNAK を返す。
func (d *Disconnector) Disconnect(ctx context.Context, session *model.AccountingSession) error {
	if session == nil || session.Username == "" || session.NasIPAddress == "" {
		return ErrInvalidSession
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	secret, err := d.resolveSecret(ctx, session.NasIPAddress)
	if err != nil {
		return err
	}

	packet := radius.New(radius.CodeDisconnectRequest, []byte(secret))
	if err := rfc2865.UserName_SetString(packet, session.Username); err != nil {
		return fmt.Errorf("set User-Name: %w", err)
	}
	if session.AcctSessionID != "" {
		if err := rfc2866.AcctSessionID_SetString(packet, session.AcctSessionID); err != nil {
			return fmt.Errorf("set Acct-Session-Id: %w", err)
		}
	}
	if ip := net.ParseIP(session.FramedIPAddress); ip != nil && ip.To4() != nil {
		if err := rfc2865.FramedIPAddress_Set(packet, ip); err != nil {
			return fmt.Errorf("set Framed-IP-Address: %w", err)
		}
	}

	addr := net.JoinHostPort(session.NasIPAddress, strconv.Itoa(d.port))
	start := time.Now()

	resp, err := d.client.Exchange(ctx, packet, addr)
	latencyMs := time.Since(start).Milliseconds()
	if err != nil {
		kind := apperr.ErrDeviceUnreachable
		if errors.Is(err, context.DeadlineExceeded) {
			kind = apperr.ErrDeviceTimeout
		}
		slog.Error("disconnect request failed",
			"event_id", "DISCONNECT_ERR",
			"username", session.Username,
			"nas_ip", session.NasIPAddress,
			"error", err.Error(),
			"latency_ms", latencyMs,
		)
		return fmt.Errorf("%w: %v", kind, err)
	}

	if resp.Code != radius.CodeDisconnectACK {
		cause := errorCause(resp)
		slog.Warn("disconnect request rejected",
			"event_id", "DISCONNECT_NAK",
			"username", session.Username,
			"nas_ip", session.NasIPAddress,
			"code", resp.Code.String(),
			"error_cause", cause,
		)
		return fmt.Errorf("%w: code=%s error_cause=%d", ErrDisconnectNAK, resp.Code, cause)
	}

	slog.Info("session disconnected",
		"event_id", "DISCONNECT_OK",
		"username", session.Username,
		"nas_ip", session.NasIPAddress,
		"latency_ms", latencyMs,
	)
	return nil
}

// resolveSecret はミラー、NASレジストリの順に共有シークレットを探す。
func (d *Disconnector) resolveSecret(ctx context.Context, nasIP string) (string, error) {
	if d.cache != nil {
		secret, err := d.cache.Secret(ctx, nasIP)
		if err != nil {
			slog.Warn("client mirror lookup failed",
				"event_id", "MIRROR_LOOKUP_ERR",
				"nas_ip", nasIP,
				"error", err.Error(),
			)
		} else if secret != "" {
			return secret, nil
		}
	}

	if d.nas != nil {
		entry, err := d.nas.FindByNasName(ctx, nasIP)
		if err != nil {
			return "", err
		}
		if entry != nil && entry.Secret != "" {
			return entry.Secret, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNasSecretNotFound, nasIP)
}

// errorCause はError-Cause属性の値を返す。属性がない場合は0。
func errorCause(p *radius.Packet) uint32 {
	attr, ok := p.Lookup(attrErrorCause)
	if !ok {
		return 0
	}
	v, err := radius.Integer(attr)
	if err != nil {
		return 0
	}
	return v
}
