package comment

import (
	"strconv"
	"time"
)

// ExtractIdentity はメタデータから顧客IDを取り出す。
// 現行形式は uid → nid → cid の順、レガシー形式は user_id を参照する。
func ExtractIdentity(blob string) (int64, bool) {
	md, format, err := Parse(blob)
	if err != nil {
		return 0, false
	}

	var keys []string
	if format == FormatCurrent {
		keys = []string{KeyUserID, KeyNetworkID, KeyCustomer}
	} else {
		keys = []string{KeyLegacyUserID}
	}

	for _, key := range keys {
		v, ok := md.Lookup(key)
		if !ok {
			continue
		}
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return id, true
		}
	}
	return 0, false
}

// ExtractContact はメタデータから携帯番号を取り出す。
// レガシー形式には連絡先フィールドがないため常に false を返す。
func ExtractContact(blob string) (string, bool) {
	if DetectFormat(blob) != FormatCurrent {
		return "", false
	}
	return parseCurrent(blob).Lookup(KeyMobile)
}

// IsExpired はメタデータの有効期限が now より前かを判定する。
// 期限が未設定・解析不能の場合は期限切れとみなさない。
// 日付のみの値は now のロケーションにおける当日0時として比較する。
func IsExpired(blob string, now time.Time) bool {
	md := Decode(blob)

	raw, ok := md.Lookup(KeyExpiry)
	if !ok {
		raw, ok = md.Lookup(KeyLegacyExpiryDate)
	}
	if !ok {
		return false
	}

	expiry, ok := parseExpiry(raw, now.Location())
	if !ok {
		return false
	}
	return expiry.Before(now)
}

func parseExpiry(raw string, loc *time.Location) (time.Time, bool) {
	if t, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(time.DateTime, raw, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}
