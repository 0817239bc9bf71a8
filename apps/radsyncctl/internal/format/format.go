// Package format はradsyncctlの表示用フォーマットを提供する。
package format

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Bytes はオクテット数を人間が読みやすい形式にフォーマットする。
// 例: 1024 -> "1.00 KB", 1048576 -> "1.00 MB"
func Bytes(octets int64) string {
	const (
		_          = iota
		kb float64 = 1 << (10 * iota)
		mb
		gb
		tb
	)

	b := float64(octets)

	switch {
	case b >= tb:
		return fmt.Sprintf("%.2f TB", b/tb)
	case b >= gb:
		return fmt.Sprintf("%.2f GB", b/gb)
	case b >= mb:
		return fmt.Sprintf("%.2f MB", b/mb)
	case b >= kb:
		return fmt.Sprintf("%.2f KB", b/kb)
	default:
		return fmt.Sprintf("%d B", octets)
	}
}

// Duration はセッション継続秒数をフォーマットする。
// 例: 3661 -> "1h 1m 1s"、1日以上は "2d 3h 0m"
func Duration(seconds int64) string {
	if seconds < 0 {
		return "-"
	}

	d := time.Duration(seconds) * time.Second
	days := int64(d / (24 * time.Hour))
	hours := int64(d/time.Hour) % 24
	minutes := int64(d/time.Minute) % 60
	secs := seconds % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// Timestamp は時刻をローカルタイムで "2006-01-02 15:04:05" 形式にする。ゼロ値は "-"。
func Timestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

// Truncate は表示幅に合わせて文字列を切り詰め、末尾に "..." を付加する。
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
