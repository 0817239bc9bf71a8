package valkey

// KeyPrefixClient はRADIUSサーバーが参照するNASクライアント設定のキープレフィックス。
const KeyPrefixClient = "client:"

// client:{IP} Hashのフィールド名
const (
	FieldSecret = "secret"
	FieldName   = "name"
	FieldVendor = "vendor"
)

// ClientKey はNASクライアントのキー（client:{IP}）を返す。
func ClientKey(ip string) string {
	return KeyPrefixClient + ip
}

// ClientHash はclient:{IP} Hashの内容。
type ClientHash struct {
	Secret string
	Name   string
	Vendor string
}

// Values はHSET用のフィールドと値を返す。
func (h ClientHash) Values() map[string]any {
	return map[string]any{
		FieldSecret: h.Secret,
		FieldName:   h.Name,
		FieldVendor: h.Vendor,
	}
}

// ClientHashFromMap はHGETALLの結果からClientHashを組み立てる。
// secret がない場合は ok=false を返す。
func ClientHashFromMap(m map[string]string) (ClientHash, bool) {
	secret, ok := m[FieldSecret]
	if !ok || secret == "" {
		return ClientHash{}, false
	}
	return ClientHash{
		Secret: secret,
		Name:   m[FieldName],
		Vendor: m[FieldVendor],
	}, true
}
