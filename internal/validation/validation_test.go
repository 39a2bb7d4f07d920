package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid title", "Pad Thai", false},
		{"single character", "x", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", string(make([]byte, 256)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTimeMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 45, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeMinutes(tt.minutes)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTimeMinutes(%d) error = %v, wantErr %v", tt.minutes, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr bool
	}{
		{"zero", "0", false},
		{"whole amount", "5", false},
		{"two decimal places", "5.25", false},
		{"max digits", "999.99", false},
		{"negative", "-1.00", true},
		{"three decimal places", "5.255", true},
		{"too many digits", "1000.00", true},
		{"whole number over range", "1000", true},
		{"far over range", "99999", true},
		{"just over range", "1000.01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrice(decimal.RequireFromString(tt.price))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrice(%s) error = %v, wantErr %v", tt.price, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCatalogName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid name", "Thai", false},
		{"with spaces inside", "Rice Noodles", false},
		{"empty", "", true},
		{"whitespace only", "  ", true},
		{"too long", string(make([]byte, 256)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalogName(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCatalogName(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "user@example.com", false},
		{"no at sign", "userexample.com", true},
		{"missing local part", "@example.com", true},
		{"missing domain", "user@", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"minimum length", "12345", false},
		{"typical password", "testpass123", false},
		{"too short", "1234", true},
		{"empty", "", true},
		{"too long", string(make([]byte, 1025)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
