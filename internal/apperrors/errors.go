package apperrors

import (
	"errors"
	"fmt"
)

// Per-symbol analysis errors. Each one excludes a single symbol from the
// report without stopping the batch.
var (
	// ErrResolutionMiss indicates that no underlying symbol could be derived from a receipt symbol.
	ErrResolutionMiss = errors.New("underlying symbol could not be resolved")

	// ErrFetchFailed indicates that the fundamentals provider could not deliver data.
	ErrFetchFailed = errors.New("fundamentals fetch failed")

	// ErrMissingStatement indicates that the income statement or balance sheet is absent or empty.
	ErrMissingStatement = errors.New("financial statement missing")

	// ErrSchemaMiss indicates that a required line item matched none of its aliases.
	ErrSchemaMiss = errors.New("required line item not found")

	// ErrInsufficientHistory indicates fewer than two usable periods.
	ErrInsufficientHistory = errors.New("insufficient period history")
)

// Provider errors.
var (
	// ErrSymbolNotFound indicates that a provider returned no result for a symbol.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrFailedToRetrieveListings indicates that the receipt list could not be retrieved.
	ErrFailedToRetrieveListings = errors.New("failed to retrieve receipt listings")
)

// Report errors.
var (
	// ErrNoReport indicates that no analysis run has completed yet.
	ErrNoReport = errors.New("no report available")

	// ErrRunInProgress indicates that an analysis run is already underway.
	ErrRunInProgress = errors.New("analysis run already in progress")

	// ErrInvalidFilter indicates a malformed report filter parameter.
	ErrInvalidFilter = errors.New("invalid report filter")

	ErrFailedToExportReport = errors.New("failed to export report")
)

// FailureKind distinguishes why a symbol was left out of a report.
type FailureKind string

// Failure kinds, in pipeline order.
const (
	KindResolutionMiss      FailureKind = "resolution_miss"
	KindFetchFailed         FailureKind = "fetch_failed"
	KindSchemaMiss          FailureKind = "schema_miss"
	KindInsufficientHistory FailureKind = "insufficient_history"
)

// SymbolError ties a failure kind and symbol to the underlying cause.
type SymbolError struct {
	Kind   FailureKind
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Symbol, e.Kind, e.Err)
}

func (e *SymbolError) Unwrap() error {
	return e.Err
}

// NewSymbolError wraps err for symbol, deriving the kind from the sentinel it wraps.
func NewSymbolError(symbol string, err error) *SymbolError {
	return &SymbolError{Kind: KindOf(err), Symbol: symbol, Err: err}
}

// KindOf maps an error onto the failure taxonomy. Anything unrecognised is
// treated as a fetch failure, since the provider is the only other source of errors.
func KindOf(err error) FailureKind {
	var se *SymbolError
	switch {
	case errors.As(err, &se):
		return se.Kind
	case errors.Is(err, ErrResolutionMiss):
		return KindResolutionMiss
	case errors.Is(err, ErrSchemaMiss), errors.Is(err, ErrMissingStatement):
		return KindSchemaMiss
	case errors.Is(err, ErrInsufficientHistory):
		return KindInsufficientHistory
	default:
		return KindFetchFailed
	}
}
