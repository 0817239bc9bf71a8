// Package comment はルーター上の加入者シークレットに付与するメタデータ文字列
// （コメント）のエンコード・デコードを提供する。
//
// 2つのワイヤーフォーマットを恒久的にサポートする。
//   - 現行形式: uid--1,nid--2,name--Rahim,mobile--017...,zone--3,pkg--4,exp--2026-12-31,status--active
//   - レガシー形式: username|user_id|package_id|expiry_date|service_type（5フィールド固定）
//
// デコードは形式を自動判別し、解析できない入力でも失敗せず空の結果を返す。
package comment

// Unknown は値が未設定であることを示すマーカー。
const Unknown = "N/A"

// 区切り文字
const (
	pairSeparator   = ","
	kvSeparator     = "--"
	legacySeparator = "|"
	legacyFieldNum  = 5
	maxValueLen     = 50
	truncatedLen    = 47
	ellipsis        = "..."
)

// 現行形式のキー
const (
	KeyUserID    = "uid"
	KeyNetworkID = "nid"
	KeyCustomer  = "cid" // 旧バージョンの顧客コメントで使用
	KeyName      = "name"
	KeyMobile    = "mobile"
	KeyZone      = "zone"
	KeyPackage   = "pkg"
	KeyExpiry    = "exp"
	KeyStatus    = "status"
)

// レガシー形式の論理キー
const (
	KeyLegacyUsername    = "username"
	KeyLegacyUserID      = "user_id"
	KeyLegacyPackageID   = "package_id"
	KeyLegacyExpiryDate  = "expiry_date"
	KeyLegacyServiceType = "service_type"
)

// legacyKeys はレガシー形式の位置とキーの対応。
var legacyKeys = [legacyFieldNum]string{
	KeyLegacyUsername,
	KeyLegacyUserID,
	KeyLegacyPackageID,
	KeyLegacyExpiryDate,
	KeyLegacyServiceType,
}

// dateLayout は有効期限の日付形式。
const dateLayout = "2006-01-02"

// Format はメタデータ文字列の形式を表す。
type Format int

const (
	// FormatUnknown は解析できない形式
	FormatUnknown Format = iota
	// FormatCurrent は key--value 形式
	FormatCurrent
	// FormatLegacy は5フィールドのパイプ区切り形式
	FormatLegacy
)

// String は形式名を返す。
func (f Format) String() string {
	switch f {
	case FormatCurrent:
		return "current"
	case FormatLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Metadata はデコード済みのメタデータ。
// どちらの形式でも同じ論理キーで参照できる。
type Metadata map[string]string

// Get はキーの値を返す。未設定または空の場合は Unknown を返す。
func (m Metadata) Get(key string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return Unknown
}

// Lookup はキーの値が設定されているかを返す。Unknown マーカーは未設定として扱う。
func (m Metadata) Lookup(key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == "" || v == Unknown {
		return "", false
	}
	return v, true
}
