// Package validation provides validation functions for recipe entities.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	priceDecimalPlaces = 2
	maxNameLength      = 255
	minPasswordLength  = 5
	maxPasswordLength  = 1024
)

// priceMax mirrors the storage column: NUMERIC(5,2) tops out at 999.99.
var priceMax = decimal.New(99999, -priceDecimalPlaces)

// ValidateTitle validates a recipe title.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if len(title) > maxNameLength {
		return fmt.Errorf("title must be at most %d characters", maxNameLength)
	}
	return nil
}

// ValidateTimeMinutes validates a recipe preparation time.
func ValidateTimeMinutes(minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("time_minutes must not be negative")
	}
	return nil
}

// ValidatePrice validates a recipe price: non-negative, at most 2
// decimal places, within the NUMERIC(5,2) range.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	if price.Exponent() < -priceDecimalPlaces {
		return fmt.Errorf("price allows at most %d decimal places", priceDecimalPlaces)
	}
	if price.GreaterThan(priceMax) {
		return fmt.Errorf("price must be at most %s", priceMax)
	}
	return nil
}

// ValidateCatalogName validates a tag or ingredient name.
// Names are matched case-sensitively and must survive trimming.
func ValidateCatalogName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name must be at most %d characters", maxNameLength)
	}
	return nil
}

// ValidateEmail performs a light-weight shape check on an email address.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return fmt.Errorf("email address is not valid")
	}
	if len(email) > maxNameLength {
		return fmt.Errorf("email must be at most %d characters", maxNameLength)
	}
	return nil
}

// ValidatePassword validates a new account password.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLength)
	}
	return nil
}
