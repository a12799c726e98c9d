package validation

import (
	"errors"
	"testing"
)

func TestValidateSymbol(t *testing.T) {
	valid := []string{"AAPL34", "V2SA34", "XPBR31", "aapl34"}
	for _, s := range valid {
		if err := ValidateSymbol(s); err != nil {
			t.Errorf("ValidateSymbol(%q) returned unexpected error: %v", s, err)
		}
	}

	invalid := []string{"", "AAPL", "AAPL3", "AAPL345", "AA-L34", "AAPL3X"}
	for _, s := range invalid {
		err := ValidateSymbol(s)
		if !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("ValidateSymbol(%q) = %v, want ErrInvalidSymbol", s, err)
		}
	}
}

func TestError(t *testing.T) {
	err := &Error{Fields: map[string]string{
		"top":     "must be positive",
		"min_roe": "must be a number",
	}}

	want := "min_roe: must be a number; top: must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
