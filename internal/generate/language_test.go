package generate

import "testing"

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"es", "Spanish"},
		{"zh", "Chinese"},
		{"ja", "Japanese"},
		{"ES", "Spanish"},
		{" ja ", "Japanese"},
		{"", "English"},
		{"fr", "English"},
	}
	for _, tt := range tests {
		if got := LanguageName(tt.code); got != tt.want {
			t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
