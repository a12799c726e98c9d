package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Common validation errors
var (
	ErrInvalidSymbol = fmt.Errorf("invalid receipt symbol")
)

// receiptPattern matches a B3 code: four alphanumerics and a two-digit suffix.
var receiptPattern = regexp.MustCompile(`^[A-Z0-9]{4}[0-9]{2}$`)

// ValidateSymbol checks that symbol looks like a B3 receipt code (e.g. AAPL34).
func ValidateSymbol(symbol string) error {
	if !receiptPattern.MatchString(strings.ToUpper(symbol)) {
		return fmt.Errorf("%w: %s", ErrInvalidSymbol, symbol)
	}
	return nil
}
