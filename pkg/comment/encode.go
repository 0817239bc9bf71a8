package comment

import (
	"strconv"
	"strings"
	"time"

	"github.com/oyaguma3/radsync/pkg/model"
)

// Fields は現行形式でエンコードする値。nil/空のフィールドは Unknown として出力する。
type Fields struct {
	CustomerID *int64
	NetworkID  *int64
	Name       string
	Mobile     string
	ZoneID     *int64
	PackageID  *int64
	Expiry     *time.Time
	Status     string
}

// sanitizer は区切り文字と改行を置換する。
var sanitizer = strings.NewReplacer(
	pairSeparator, "_",
	";", "_",
	"\n", " ",
	"\r", " ",
)

// Sanitize は値を現行形式で安全に埋め込める文字列に変換する。
// 空値は Unknown、長すぎる値は省略記号付きで切り詰める。
func Sanitize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return Unknown
	}

	value = sanitizer.Replace(value)
	for strings.Contains(value, kvSeparator) {
		value = strings.ReplaceAll(value, kvSeparator, "-")
	}

	if r := []rune(value); len(r) > maxValueLen {
		value = string(r[:truncatedLen]) + ellipsis
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return Unknown
	}
	return value
}

// Encode は現行形式のメタデータ文字列を生成する。
// キー順は uid, nid, name, mobile, zone, pkg, exp, status で固定。
func Encode(f Fields) string {
	pairs := []struct {
		key   string
		value string
	}{
		{KeyUserID, formatID(f.CustomerID)},
		{KeyNetworkID, formatID(f.NetworkID)},
		{KeyName, Sanitize(f.Name)},
		{KeyMobile, Sanitize(f.Mobile)},
		{KeyZone, formatID(f.ZoneID)},
		{KeyPackage, formatID(f.PackageID)},
		{KeyExpiry, formatDate(f.Expiry)},
		{KeyStatus, Sanitize(f.Status)},
	}

	segments := make([]string, 0, len(pairs))
	for _, p := range pairs {
		segments = append(segments, p.key+kvSeparator+p.value)
	}
	return strings.Join(segments, pairSeparator)
}

// FieldsFromCustomer は顧客の現在値からエンコード用フィールドを生成する。
// 表示名が未設定の場合はユーザー名を使用する。
func FieldsFromCustomer(c *model.Customer) Fields {
	if c == nil {
		return Fields{}
	}

	id := c.ID
	f := Fields{
		CustomerID: &id,
		Name:       c.Name,
		Mobile:     c.Mobile,
		ZoneID:     c.ZoneID,
		PackageID:  c.PackageID,
		Expiry:     c.ExpiryDate,
		Status:     c.Status,
	}
	if f.Name == "" {
		f.Name = c.Username
	}
	if c.NetworkUserID != 0 {
		nid := c.NetworkUserID
		f.NetworkID = &nid
	}
	return f
}

// BuildLegacy はレガシー形式（username|user_id|package_id|expiry_date|service_type）の
// メタデータ文字列を生成する。レガシー形式を前提とする下流処理向け。
func BuildLegacy(c *model.Customer) string {
	if c == nil {
		return strings.Repeat(legacySeparator, legacyFieldNum-1)
	}

	serviceType := sanitizeLegacy(c.ServiceType)
	if serviceType == "" {
		serviceType = model.ServiceTypePPPoE
	}

	var userID string
	if c.ID != 0 {
		userID = strconv.FormatInt(c.ID, 10)
	}
	var packageID string
	if c.PackageID != nil {
		packageID = strconv.FormatInt(*c.PackageID, 10)
	}
	var expiry string
	if c.ExpiryDate != nil {
		expiry = c.ExpiryDate.Format(dateLayout)
	}

	return strings.Join([]string{
		sanitizeLegacy(c.Username),
		userID,
		packageID,
		expiry,
		serviceType,
	}, legacySeparator)
}

// sanitizeLegacy はパイプを除去する。"--" も畳み込み、現行形式と誤判定されないようにする。
func sanitizeLegacy(s string) string {
	s = strings.ReplaceAll(s, legacySeparator, "")
	for strings.Contains(s, kvSeparator) {
		s = strings.ReplaceAll(s, kvSeparator, "-")
	}
	return strings.TrimSpace(s)
}

func formatID(v *int64) string {
	if v == nil {
		return Unknown
	}
	return strconv.FormatInt(*v, 10)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Unknown
	}
	return t.Format(dateLayout)
}
