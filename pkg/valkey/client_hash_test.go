package valkey

import "testing"

func TestClientKey(t *testing.T) {
	if got := ClientKey("192.168.1.1"); got != "client:192.168.1.1" {
		t.Errorf("ClientKey() = %q", got)
	}
}

func TestClientHashFromMap(t *testing.T) {
	tests := []struct {
		name   string
		in     map[string]string
		want   ClientHash
		wantOK bool
	}{
		{
			name:   "全フィールド",
			in:     map[string]string{"secret": "s", "name": "n", "vendor": "mikrotik"},
			want:   ClientHash{Secret: "s", Name: "n", Vendor: "mikrotik"},
			wantOK: true,
		},
		{
			name:   "secretのみ",
			in:     map[string]string{"secret": "s"},
			want:   ClientHash{Secret: "s"},
			wantOK: true,
		},
		{
			name:   "secretなし",
			in:     map[string]string{"name": "n"},
			wantOK: false,
		},
		{
			name:   "空",
			in:     map[string]string{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClientHashFromMap(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ClientHashFromMap() = %+v, %v, want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
