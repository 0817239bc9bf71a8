// Package logging はログ関連のユーティリティを提供する。
package logging

import "strings"

// MaskMobile は携帯番号をマスキングする。
// 先頭3桁 + マスク + 末尾2桁
// 例: 01712345678 → 017******78
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskMobile(mobile string, enabled bool) string {
	if !enabled {
		return mobile
	}
	return MaskPartial(mobile, 3, 2, '*')
}

// MaskUsername はネットワークユーザー名をマスキングする。
// 先頭2文字 + マスク + 末尾1文字
// 例: alice01 → al****1
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskUsername(username string, enabled bool) string {
	if !enabled {
		return username
	}
	return MaskPartial(username, 2, 1, '*')
}

// MaskSecret はパスワードや共有シークレットを固定長でマスキングする。
// 長さを推測されないよう常に8文字の"*"を返す。空文字列はそのまま返す。
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	return strings.Repeat("*", 8)
}

// MaskPartial は文字列の一部をマスキングする。
// keepPrefix: 先頭から保持する文字数
// keepSuffix: 末尾から保持する文字数
// maskChar: マスキングに使用する文字
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)

	// 文字列が短すぎる場合はそのまま返す
	if length <= keepPrefix+keepSuffix {
		return s
	}

	result := make([]rune, length)
	copy(result, runes[:keepPrefix])
	for i := keepPrefix; i < length-keepSuffix; i++ {
		result[i] = maskChar
	}
	copy(result[length-keepSuffix:], runes[length-keepSuffix:])

	return string(result)
}

// Masker はマスキング設定を保持する構造体。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// Mobile は携帯番号をマスキングする。
func (m *Masker) Mobile(mobile string) string {
	return MaskMobile(mobile, m.enabled)
}

// Username はネットワークユーザー名をマスキングする。
func (m *Masker) Username(username string) string {
	return MaskUsername(username, m.enabled)
}

// Secret はシークレットをマスキングする。設定に関わらず平文では出力しない。
func (m *Masker) Secret(secret string) string {
	return MaskSecret(secret)
}

// IsEnabled はマスキングが有効かどうかを返す。
func (m *Masker) IsEnabled() bool {
	return m.enabled
}
