package testutil

import (
	"context"
	"sync"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// MockFundamentalsProvider returns canned fundamentals per symbol instead of
// calling Yahoo Finance. Symbols without canned data return ErrSymbolNotFound.
type MockFundamentalsProvider struct {
	mu     sync.Mutex
	data   map[string]model.Fundamentals
	errors map[string]error
	// Calls records every requested symbol in order
	Calls []string
}

// NewMockFundamentalsProvider creates an empty mock provider.
func NewMockFundamentalsProvider() *MockFundamentalsProvider {
	return &MockFundamentalsProvider{
		data:   map[string]model.Fundamentals{},
		errors: map[string]error{},
	}
}

// With registers fundamentals for their symbol.
func (m *MockFundamentalsProvider) With(f model.Fundamentals) *MockFundamentalsProvider {
	m.data[f.Symbol] = f
	return m
}

// WithError makes the given symbol fail with err.
func (m *MockFundamentalsProvider) WithError(symbol string, err error) *MockFundamentalsProvider {
	m.errors[symbol] = err
	return m
}

// FetchFundamentals returns the canned data or error for symbol.
func (m *MockFundamentalsProvider) FetchFundamentals(_ context.Context, symbol string) (model.Fundamentals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, symbol)
	if err, ok := m.errors[symbol]; ok {
		return model.Fundamentals{}, err
	}
	f, ok := m.data[symbol]
	if !ok {
		return model.Fundamentals{}, apperrors.ErrSymbolNotFound
	}
	return f, nil
}

// CallCount returns how many fetches were made.
func (m *MockFundamentalsProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockListingProvider returns a fixed listing.
type MockListingProvider struct {
	Listings  []model.Listing
	MockError error
	// QueryCount tracks how many times ListReceipts was called
	QueryCount int
}

// ListReceipts returns the configured listings or error.
func (m *MockListingProvider) ListReceipts(_ context.Context) ([]model.Listing, error) {
	m.QueryCount++
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.Listings, nil
}
