package domain_test

import (
	"strings"
	"testing"

	"go.trai.ch/shed/internal/core/domain"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"x86_64-linux", false},
		{"aarch64-darwin", false},
		{"i686-linux", false},
		{"linux", true},
		{"-linux", true},
		{"x86_64-", true},
		{"", true},
	}

	for _, tt := range tests {
		p, err := domain.ParsePlatform(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePlatform(%q): expected error, got %q", tt.input, p)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePlatform(%q): unexpected error: %v", tt.input, err)
		}
		if p.String() != tt.input {
			t.Errorf("ParsePlatform(%q) = %q", tt.input, p)
		}
	}
}

func TestCurrentPlatform(t *testing.T) {
	p := domain.CurrentPlatform()

	// Whatever the host, the result must be a valid platform key with a
	// Nix-style architecture half.
	if _, err := domain.ParsePlatform(p.String()); err != nil {
		t.Fatalf("CurrentPlatform returned invalid key %q: %v", p, err)
	}
	if strings.HasPrefix(p.String(), "amd64") || strings.HasPrefix(p.String(), "arm64") {
		t.Errorf("CurrentPlatform did not map Go arch names: %q", p)
	}
}
