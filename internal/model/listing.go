package model

// Listing is one tradable code as returned by the symbol list provider.
type Listing struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"displayName"`
}

// Receipt is a depositary receipt paired with the security it represents
// on its home market.
type Receipt struct {
	ReceiptSymbol    string `json:"receiptSymbol"`
	UnderlyingSymbol string `json:"underlyingSymbol"`
	DisplayName      string `json:"displayName"`
}
