package model

// ルーターステータス
const (
	RouterStatusActive   = "active"
	RouterStatusInactive = "inactive"
)

// ルーターの追跡対象フィールド名
const (
	RouterFieldName      = "name"
	RouterFieldIPAddress = "ip_address"
	RouterFieldSecret    = "radius_secret"
	RouterFieldStatus    = "status"
	RouterFieldNasID     = "nas_id"
	RouterFieldAPI       = "api"
)

// Router は課金システムが管理するネットワーク機器（MikroTik等）を表す。
type Router struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	IPAddress string `db:"ip_address" json:"ip_address"`                 // 管理アドレス（NASのnasnameに対応）
	Secret    string `db:"radius_secret" json:"radius_secret,omitempty"` // RADIUS共有シークレット
	NasID     *int64 `db:"nas_id" json:"nas_id,omitempty"`               // 紐付くNASエントリ（初回同期まではnil）
	Status    string `db:"status" json:"status"`

	// 管理API接続情報
	APIHost     string `db:"api_host" json:"api_host,omitempty"` // 未設定時はIPAddressを使用
	APIPort     int    `db:"api_port" json:"api_port,omitempty"`
	APIUsername string `db:"api_username" json:"api_username,omitempty"`
	APIPassword string `db:"api_password" json:"api_password,omitempty"`
}

// IsActive は管理上有効なルーターかどうかを返す。
func (r *Router) IsActive() bool {
	return r != nil && r.Status == RouterStatusActive
}

// APIAddress は管理API接続先ホストを返す。
func (r *Router) APIAddress() string {
	if r.APIHost != "" {
		return r.APIHost
	}
	return r.IPAddress
}

// ChangedFields は prev と比較して値が変わったフィールド名を返す。
func (r *Router) ChangedFields(prev *Router) []string {
	if prev == nil {
		return []string{RouterFieldName, RouterFieldIPAddress, RouterFieldSecret, RouterFieldStatus, RouterFieldNasID, RouterFieldAPI}
	}

	var changed []string
	if r.Name != prev.Name {
		changed = append(changed, RouterFieldName)
	}
	if r.IPAddress != prev.IPAddress {
		changed = append(changed, RouterFieldIPAddress)
	}
	if r.Secret != prev.Secret {
		changed = append(changed, RouterFieldSecret)
	}
	if r.Status != prev.Status {
		changed = append(changed, RouterFieldStatus)
	}
	if !equalInt64Ptr(r.NasID, prev.NasID) {
		changed = append(changed, RouterFieldNasID)
	}
	if r.APIHost != prev.APIHost || r.APIPort != prev.APIPort ||
		r.APIUsername != prev.APIUsername || r.APIPassword != prev.APIPassword {
		changed = append(changed, RouterFieldAPI)
	}
	return changed
}
