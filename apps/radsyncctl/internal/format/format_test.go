package format

import (
	"testing"
	"time"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
		{1099511627776, "1.00 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Bytes(tt.input); got != tt.want {
				t.Errorf("Bytes(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{-1, "-"},
		{0, "0s"},
		{59, "59s"},
		{61, "1m 1s"},
		{3661, "1h 1m 1s"},
		{2*86400 + 3*3600 + 120, "2d 3h 2m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Duration(tt.input); got != tt.want {
				t.Errorf("Duration(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimestamp(t *testing.T) {
	if got := Timestamp(time.Time{}); got != "-" {
		t.Errorf("Timestamp(zero) = %q, want -", got)
	}
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
	if got := Timestamp(ts); got != "2025-01-02 03:04:05" {
		t.Errorf("Timestamp() = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"短い", "abc", 10, "abc"},
		{"ちょうど", "abcdef", 6, "abcdef"},
		{"切り詰め", "abcdefghij", 7, "abcd..."},
		{"マルチバイト", "あいうえおかきくけこ", 6, "あいう..."},
		{"極小", "abcdef", 2, "ab"},
		{"ゼロ", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
