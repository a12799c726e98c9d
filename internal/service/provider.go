package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/cache"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// FundamentalsProvider returns statements and valuation for an underlying symbol.
type FundamentalsProvider interface {
	FetchFundamentals(ctx context.Context, symbol string) (model.Fundamentals, error)
}

// ListingProvider returns the instruments listed on the local exchange.
type ListingProvider interface {
	ListReceipts(ctx context.Context) ([]model.Listing, error)
}

// RateLimitedProvider enforces a minimum pause between consecutive fetches.
// The first fetch is not delayed.
type RateLimitedProvider struct {
	next    FundamentalsProvider
	limiter *rate.Limiter
}

// NewRateLimitedProvider wraps next so that fetches are at least delay apart.
// A non-positive delay disables the limit.
func NewRateLimitedProvider(next FundamentalsProvider, delay time.Duration) *RateLimitedProvider {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &RateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// FetchFundamentals waits for the limiter, then delegates. A cancelled context
// returns the context error without fetching.
func (p *RateLimitedProvider) FetchFundamentals(ctx context.Context, symbol string) (model.Fundamentals, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return model.Fundamentals{}, err
	}
	return p.next.FetchFundamentals(ctx, symbol)
}

// CachingProvider serves repeated symbols from a cache. Only successful
// fetches are stored, so a failed symbol is retried when it comes up again.
type CachingProvider struct {
	next  FundamentalsProvider
	store cache.Cache[model.Fundamentals]
}

// NewCachingProvider wraps next with store.
func NewCachingProvider(next FundamentalsProvider, store cache.Cache[model.Fundamentals]) *CachingProvider {
	return &CachingProvider{next: next, store: store}
}

// FetchFundamentals returns the cached entry for symbol or fetches and stores it.
func (p *CachingProvider) FetchFundamentals(ctx context.Context, symbol string) (model.Fundamentals, error) {
	if f, ok := p.store.Get(symbol); ok {
		return f, nil
	}
	f, err := p.next.FetchFundamentals(ctx, symbol)
	if err != nil {
		return model.Fundamentals{}, err
	}
	p.store.Put(symbol, f)
	return f, nil
}
