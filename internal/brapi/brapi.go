// Package brapi lists the instruments traded on B3 through the brapi.dev quote list.
package brapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// DefaultListURL is the public quote list endpoint.
const DefaultListURL = "https://brapi.dev/api/quote/list"

// Client fetches the B3 instrument list.
type Client struct {
	http    *resty.Client
	listURL string
}

// NewClient creates a list client. An empty listURL uses DefaultListURL.
func NewClient(listURL string, timeout time.Duration, userAgent string) *Client {
	if listURL == "" {
		listURL = DefaultListURL
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &Client{http: client, listURL: listURL}
}

// ListReceipts returns every listed instrument in provider order. Receipt
// filtering happens downstream, so the result may include ordinary shares.
//
// Errors wrap apperrors.ErrFailedToRetrieveListings.
func (c *Client) ListReceipts(ctx context.Context) ([]model.Listing, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.listURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveListings, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrFailedToRetrieveListings, resp.StatusCode())
	}

	listings, err := ParseList(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveListings, err)
	}
	return listings, nil
}

// ParseList decodes stocks[].{stock,name}. Entries without a code are skipped.
func ParseList(body []byte) ([]model.Listing, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid list response")
	}
	stocks := gjson.GetBytes(body, "stocks")
	if !stocks.IsArray() {
		return nil, errors.New("list response has no stocks")
	}

	listings := make([]model.Listing, 0, len(stocks.Array()))
	for _, s := range stocks.Array() {
		code := s.Get("stock").String()
		if code == "" {
			continue
		}
		listings = append(listings, model.Listing{
			Symbol:      code,
			DisplayName: s.Get("name").String(),
		})
	}
	return listings, nil
}
