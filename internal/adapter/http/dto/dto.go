// Package dto defines the request shapes of the tool surface. Validation
// happens once here, at the transport boundary; everything downstream works
// with already-validated values.
package dto

// PayInvoiceRequest is the input of pay_invoice.
type PayInvoiceRequest struct {
	Invoice string `json:"invoice" binding:"required"`
	MintURL string `json:"mintUrl"`
}

// MakeInvoiceRequest is the input of make_invoice.
type MakeInvoiceRequest struct {
	Amount  uint64 `json:"amount" binding:"required,gt=0"`
	MintURL string `json:"mintUrl"`
}

// LookupQuoteRequest is the input of lookup_quote.
type LookupQuoteRequest struct {
	QuoteID string `json:"quoteId" binding:"required"`
	MintURL string `json:"mintUrl"`
}

// ListTransactionsRequest is the input of list_transactions. Limit and offset
// are clamped by the handler, not rejected.
type ListTransactionsRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// AddMintRequest is the input of add_mint. Trusted defaults to false when
// omitted.
type AddMintRequest struct {
	MintURL string `json:"mintUrl" binding:"required"`
	Trusted *bool  `json:"trusted"`
}

// MintURLRequest is the shared input of trust_mint, untrust_mint and
// remove_mint.
type MintURLRequest struct {
	MintURL string `json:"mintUrl" binding:"required"`
}

// ListMintsRequest is the input of list_mints. An empty filter means "all".
type ListMintsRequest struct {
	Filter string `json:"filter"`
}

// ReceiveCashuRequest is the input of receive_cashu.
type ReceiveCashuRequest struct {
	Token string `json:"token" binding:"required"`
}

// SendCashuRequest is the input of send_cashu.
type SendCashuRequest struct {
	Amount  uint64 `json:"amount" binding:"required,gt=0"`
	MintURL string `json:"mintUrl"`
}
