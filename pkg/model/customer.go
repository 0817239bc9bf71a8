// Package model は共通データ構造体を提供する。
package model

import "time"

// サービス種別
const (
	ServiceTypePPPoE    = "pppoe"
	ServiceTypeHotspot  = "hotspot"
	ServiceTypeStatic   = "static"
	ServiceTypeStaticIP = "static_ip"
	ServiceTypeVPN      = "vpn"
)

// 顧客ステータス
const (
	CustomerStatusActive    = "active"
	CustomerStatusSuspended = "suspended"
	CustomerStatusExpired   = "expired"
)

// 顧客の追跡対象フィールド名（ChangedFieldsの戻り値）
const (
	FieldName            = "name"
	FieldUsername        = "username"
	FieldNetworkPassword = "network_password"
	FieldServiceType     = "service_type"
	FieldStatus          = "status"
	FieldIsActive        = "is_active"
	FieldMobile          = "mobile"
	FieldZoneID          = "zone_id"
	FieldIPAddress       = "ip_address"
	FieldMACAddress      = "mac_address"
	FieldRouterID        = "router_id"
	FieldPackageID       = "package_id"
	FieldExpiryDate      = "expiry_date"
)

// networkServiceTypes はRADIUS認証が必要なサービス種別の集合。
var networkServiceTypes = map[string]struct{}{
	ServiceTypePPPoE:    {},
	ServiceTypeHotspot:  {},
	ServiceTypeStatic:   {},
	ServiceTypeStaticIP: {},
	ServiceTypeVPN:      {},
}

// Customer は課金システム側のネットワーク加入者を表す。
// 課金システムが所有し、本サービスは変更イベントを観測するのみ。
type Customer struct {
	ID              int64      `json:"id"`
	NetworkUserID   int64      `json:"network_user_id,omitempty"` // ネットワークユーザーレコードID
	Name            string     `json:"name"`
	Username        string     `json:"username"`
	NetworkPassword string     `json:"network_password,omitempty"` // RADIUS用パスワード（ログインパスワードとは別）
	ServiceType     string     `json:"service_type"`
	Status          string     `json:"status"`
	IsActive        bool       `json:"is_active"`
	Mobile          string     `json:"mobile,omitempty"`
	ZoneID          *int64     `json:"zone_id,omitempty"`
	IPAddress       string     `json:"ip_address,omitempty"`
	MACAddress      string     `json:"mac_address,omitempty"`
	RouterID        *int64     `json:"router_id,omitempty"`
	PackageID       *int64     `json:"package_id,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
}

// IsNetworkCustomer はRADIUS認証が必要なサービス種別かどうかを返す。
func (c *Customer) IsNetworkCustomer() bool {
	if c == nil {
		return false
	}
	_, ok := networkServiceTypes[c.ServiceType]
	return ok
}

// IsActiveForRadius はRADIUS上で有効にすべき状態かどうかを返す。
// status=active かつ is_active=true の場合のみ有効。
func (c *Customer) IsActiveForRadius() bool {
	return c != nil && c.Status == CustomerStatusActive && c.IsActive
}

// HasNetworkSecret はネットワーク用パスワードが設定されているかを返す。
func (c *Customer) HasNetworkSecret() bool {
	return c != nil && c.NetworkPassword != ""
}

// ChangedFields は prev と比較して値が変わったフィールド名を返す。
// prev が nil の場合は全フィールドを変更ありとみなす。
func (c *Customer) ChangedFields(prev *Customer) []string {
	if prev == nil {
		return []string{
			FieldName, FieldUsername, FieldNetworkPassword, FieldServiceType,
			FieldStatus, FieldIsActive, FieldMobile, FieldZoneID, FieldIPAddress,
			FieldMACAddress, FieldRouterID, FieldPackageID, FieldExpiryDate,
		}
	}

	var changed []string
	add := func(field string, diff bool) {
		if diff {
			changed = append(changed, field)
		}
	}
	add(FieldName, c.Name != prev.Name)
	add(FieldUsername, c.Username != prev.Username)
	add(FieldNetworkPassword, c.NetworkPassword != prev.NetworkPassword)
	add(FieldServiceType, c.ServiceType != prev.ServiceType)
	add(FieldStatus, c.Status != prev.Status)
	add(FieldIsActive, c.IsActive != prev.IsActive)
	add(FieldMobile, c.Mobile != prev.Mobile)
	add(FieldZoneID, !equalInt64Ptr(c.ZoneID, prev.ZoneID))
	add(FieldIPAddress, c.IPAddress != prev.IPAddress)
	add(FieldMACAddress, c.MACAddress != prev.MACAddress)
	add(FieldRouterID, !equalInt64Ptr(c.RouterID, prev.RouterID))
	add(FieldPackageID, !equalInt64Ptr(c.PackageID, prev.PackageID))
	add(FieldExpiryDate, !equalTimePtr(c.ExpiryDate, prev.ExpiryDate))
	return changed
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
