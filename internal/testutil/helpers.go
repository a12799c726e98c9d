package testutil

import (
	"math/rand"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// SampleListings returns a small exchange listing mixing receipts with a
// local share. PETR4 is not a receipt; XPBR31 has no table entry and
// resolves by stripping its suffix.
//
// Example usage:
//
//	listings := &testutil.MockListingProvider{Listings: testutil.SampleListings()}
func SampleListings() []model.Listing {
	return []model.Listing{
		{Symbol: "PETR4", DisplayName: "PETROBRAS PN"},
		{Symbol: "AAPL34", DisplayName: "APPLE DRN"},
		{Symbol: "VISA34", DisplayName: "VISA INC DRN"},
		{Symbol: "V2SA34", DisplayName: "VISA INC DRN ED"},
		{Symbol: "XPBR31", DisplayName: ""},
	}
}

// MakeReceiptCode generates a receipt code with four random letters and the
// given two-digit suffix.
//
// Example usage:
//
//	code := testutil.MakeReceiptCode("34")
//	// Returns: "QWER34"
func MakeReceiptCode(suffix string) string {
	if suffix == "" {
		suffix = "34"
	}
	return randomLetters(4) + suffix
}

// randomLetters generates a random upper-case string of specified length.
func randomLetters(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
