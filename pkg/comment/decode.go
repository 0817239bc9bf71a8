package comment

import (
	"fmt"
	"strings"

	"github.com/oyaguma3/radsync/pkg/apperr"
)

// DetectFormat はメタデータ文字列の形式を構造から判別する。
// "--" を含む場合は現行形式を優先し、次にパイプ区切り5フィールドを判定する。
func DetectFormat(blob string) Format {
	switch {
	case strings.Contains(blob, kvSeparator):
		return FormatCurrent
	case strings.Count(blob, legacySeparator) == legacyFieldNum-1:
		return FormatLegacy
	default:
		return FormatUnknown
	}
}

// Parse はメタデータ文字列を解析する。
// 形式を判別できない場合は ErrMalformedMetadata を返す。
func Parse(blob string) (Metadata, Format, error) {
	switch format := DetectFormat(blob); format {
	case FormatCurrent:
		return parseCurrent(blob), format, nil
	case FormatLegacy:
		return parseLegacy(blob), format, nil
	default:
		return Metadata{}, format, fmt.Errorf("%w: unrecognized format", apperr.ErrMalformedMetadata)
	}
}

// Decode はメタデータ文字列を形式非依存で解析する。
// 解析できない入力は空の Metadata を返し、失敗しない。
func Decode(blob string) Metadata {
	md, _, err := Parse(blob)
	if err != nil {
		return Metadata{}
	}
	return md
}

func parseCurrent(blob string) Metadata {
	md := Metadata{}
	for _, part := range strings.Split(blob, pairSeparator) {
		key, value, ok := strings.Cut(part, kvSeparator)
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		md[key] = strings.TrimSpace(value)
	}
	return md
}

func parseLegacy(blob string) Metadata {
	parts := strings.Split(blob, legacySeparator)
	md := make(Metadata, legacyFieldNum)
	for i, key := range legacyKeys {
		md[key] = strings.TrimSpace(parts[i])
	}
	if md[KeyLegacyServiceType] == "" {
		md[KeyLegacyServiceType] = "pppoe"
	}
	return md
}
