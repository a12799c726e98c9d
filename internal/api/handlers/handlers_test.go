package handlers

import (
	"context"
	"testing"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/classifier"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/logging"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/resolver"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/service"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/statement"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/testutil"
)

// newTestScreener wires a ScreenerService over mock providers.
func newTestScreener(t *testing.T, listings service.ListingProvider, provider service.FundamentalsProvider) *service.ScreenerService {
	t.Helper()

	logger := logging.NewSilent()
	res := resolver.NewDefault()
	pipeline := service.NewPipeline(
		res,
		statement.NewNormalizer(statement.DefaultAliases, statement.DefaultPeriods),
		classifier.NewDefault(),
		logger,
	)
	s := service.NewScreenerService(listings, provider, res, pipeline, 30, logger)
	t.Cleanup(s.Close)
	return s
}

// defaultProvider serves fundamentals for every receipt in testutil.SampleListings.
func defaultProvider() *testutil.MockFundamentalsProvider {
	return testutil.NewMockFundamentalsProvider().
		With(testutil.HealthyFundamentals("AAPL")).
		With(testutil.MediocreFundamentals("V")).
		With(testutil.WeakFundamentals("XPBR"))
}

// newRefreshedScreener returns a screener that already holds a report.
func newRefreshedScreener(t *testing.T) *service.ScreenerService {
	t.Helper()

	s := newTestScreener(t, &testutil.MockListingProvider{Listings: testutil.SampleListings()}, defaultProvider())
	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	return s
}

// blockingListings holds ListReceipts until release is closed.
type blockingListings struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingListings() *blockingListings {
	return &blockingListings{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingListings) ListReceipts(ctx context.Context) ([]model.Listing, error) {
	close(b.started)
	select {
	case <-b.release:
		return testutil.SampleListings(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
