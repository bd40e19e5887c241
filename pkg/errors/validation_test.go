package errors

import (
	"strings"
	"testing"
)

func TestValidateColumnName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "mass", false},
		{"with suffix", "mass_nonan", false},
		{"with spaces", "# name", false},

		{"empty", "", true},
		{"too long", strings.Repeat("m", 200), true},
		{"null byte", "ma\x00ss", true},
		{"newline", "mass\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumnName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumnName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"catalog", "http://exoplanet.eu/catalog/csv", false},
		{"https", "https://exoplanet.eu/catalog/csv", false},
		{"with port", "http://127.0.0.1:8080/csv", false},

		{"empty", "", true},
		{"ftp", "ftp://exoplanet.eu/catalog/csv", true},
		{"file", "file:///etc/passwd", true},
		{"no host", "http:///catalog", true},
		{"bare host", "exoplanet.eu", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
