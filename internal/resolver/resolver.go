// Package resolver maps depositary receipt codes to the symbol of the
// underlying security on its home market.
package resolver

import (
	"strings"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
)

// Resolver looks receipt codes up in a static table and falls back to the
// alphabetic characters of the code.
type Resolver struct {
	table map[string]string
}

// New creates a Resolver over table. A nil table resolves by fallback only.
func New(table map[string]string) *Resolver {
	if table == nil {
		table = map[string]string{}
	}
	return &Resolver{table: table}
}

// NewDefault creates a Resolver over DefaultTable.
func NewDefault() *Resolver {
	return New(DefaultTable)
}

// Resolve returns the underlying symbol for receiptSymbol. The second return
// is false when the fallback leaves nothing, in which case the receipt must be
// excluded.
func (r *Resolver) Resolve(receiptSymbol string) (string, bool) {
	if underlying, ok := r.table[receiptSymbol]; ok {
		return underlying, true
	}

	underlying := alphaOnly(receiptSymbol)
	return underlying, underlying != ""
}

// ResolveAll resolves listings in order, dropping those without a result.
// The display name defaults to the receipt code.
func (r *Resolver) ResolveAll(listings []model.Listing) []model.Receipt {
	receipts := make([]model.Receipt, 0, len(listings))
	for _, l := range listings {
		underlying, ok := r.Resolve(l.Symbol)
		if !ok {
			continue
		}
		receipts = append(receipts, model.Receipt{
			ReceiptSymbol:    l.Symbol,
			UnderlyingSymbol: underlying,
			DisplayName:      displayName(l),
		})
	}
	return receipts
}

// IsReceipt reports whether symbol carries one of the receipt code endings.
func IsReceipt(symbol string) bool {
	for _, suffix := range ReceiptSuffixes {
		if strings.HasSuffix(symbol, suffix) {
			return true
		}
	}
	return false
}

// FilterReceipts keeps the listings whose code is a receipt code, in order.
func FilterReceipts(listings []model.Listing) []model.Listing {
	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if IsReceipt(l.Symbol) {
			out = append(out, l)
		}
	}
	return out
}

func displayName(l model.Listing) string {
	if l.DisplayName == "" {
		return l.Symbol
	}
	return l.DisplayName
}

// alphaOnly keeps ASCII letters only.
func alphaOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') {
			b.WriteByte(c)
		}
	}
	return b.String()
}
