package nasreg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
)

const (
	// ShortCodeMaxLen はショートコードの最大文字数
	ShortCodeMaxLen = 20
	// ShortCodeMinLen はショートコードの最小文字数
	ShortCodeMinLen = 3
	// SecretLen は自動生成する共有シークレットの文字数
	SecretLen = 32
)

// vendorWords はショートコードから除去する語
var vendorWords = regexp.MustCompile(`(?i)\b(router|mikrotik|mt)\b`)

// ShortCode はルーター名からNASのショートコードを生成する。
// 機種名等の語を除き空白をハイフンに置き換え、20文字に切り詰める。前後と連続のハイフンは詰める。
// 3文字未満になる場合は元の名前を切り詰めたもの、それも空ならランダムなコードを返す。
func ShortCode(name string, random io.Reader) string {
	stripped := vendorWords.ReplaceAllString(name, " ")
	parts := strings.FieldsFunc(stripped, func(r rune) bool { return r == '-' || unicode.IsSpace(r) })
	code := strings.TrimRight(truncateRunes(strings.Join(parts, "-"), ShortCodeMaxLen), "-")
	if len([]rune(code)) >= ShortCodeMinLen {
		return code
	}

	if fallback := truncateRunes(strings.TrimSpace(name), ShortCodeMaxLen); fallback != "" {
		return fallback
	}

	suffix, err := randomHex(random, 3)
	if err != nil {
		return "nas"
	}
	return "nas-" + suffix
}

// GenerateSecret は32文字のランダムな共有シークレットを生成する。
func GenerateSecret(random io.Reader) (string, error) {
	return randomHex(random, SecretLen/2)
}

func randomHex(random io.Reader, n int) (string, error) {
	if random == nil {
		random = rand.Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
