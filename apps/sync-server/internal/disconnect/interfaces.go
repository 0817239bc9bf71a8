package disconnect

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=disconnect

import (
	"context"

	"github.com/oyaguma3/radsync/pkg/model"
)

// SecretCache はNASクライアントミラーから共有シークレットを引くインターフェース
type SecretCache interface {
	Secret(ctx context.Context, ip string) (string, error)
}

// NasLookup はNASレジストリを検索するインターフェース
type NasLookup interface {
	FindByNasName(ctx context.Context, nasName string) (*model.NasEntry, error)
}
