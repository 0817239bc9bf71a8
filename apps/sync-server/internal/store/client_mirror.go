package store

import (
	"context"
	"fmt"

	"github.com/oyaguma3/radsync/pkg/model"
	"github.com/oyaguma3/radsync/pkg/valkey"
)

// ClientMirror はNASエントリをRADIUSサーバー参照用の client:{IP} Hashへ反映する。
type ClientMirror struct {
	vc *ValkeyClient
}

// NewClientMirror は新しいClientMirrorを生成する。
func NewClientMirror(vc *ValkeyClient) *ClientMirror {
	return &ClientMirror{vc: vc}
}

// Put はNASエントリをミラーへ書き込む。無効なエントリはキーを削除する。
func (m *ClientMirror) Put(ctx context.Context, e model.NasEntry) error {
	if e.Status != model.NasStatusActive {
		return m.Delete(ctx, e.NasName)
	}

	h := valkey.ClientHash{Secret: e.Secret, Name: e.ShortName, Vendor: e.Type}
	err := m.vc.Client().HSet(ctx, valkey.ClientKey(e.NasName), h.Values()).Err()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}

// Delete はミラーからキーを削除する。存在しない場合もエラーにしない。
func (m *ClientMirror) Delete(ctx context.Context, ip string) error {
	if ip == "" {
		return nil
	}
	if err := m.vc.Client().Del(ctx, valkey.ClientKey(ip)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}

// Secret はミラー上の共有シークレットを返す。未登録の場合は空文字列とnilを返す。
func (m *ClientMirror) Secret(ctx context.Context, ip string) (string, error) {
	values, err := m.vc.Client().HGetAll(ctx, valkey.ClientKey(ip)).Result()
	if err != nil {
		if valkey.IsKeyNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	h, ok := valkey.ClientHashFromMap(values)
	if !ok {
		return "", nil
	}
	return h.Secret, nil
}
