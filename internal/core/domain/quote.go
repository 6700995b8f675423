package domain

// MintQuoteState is the lifecycle of a receive (mint) quote.
type MintQuoteState string

const (
	MintQuoteUnpaid MintQuoteState = "UNPAID"
	MintQuotePaid   MintQuoteState = "PAID"
	MintQuoteIssued MintQuoteState = "ISSUED"
)

// MeltQuoteState is the lifecycle of a pay (melt) quote.
type MeltQuoteState string

const (
	MeltQuoteUnpaid  MeltQuoteState = "UNPAID"
	MeltQuotePending MeltQuoteState = "PENDING"
	MeltQuotePaid    MeltQuoteState = "PAID"
)

// MintQuote is a pending or completed request to receive funds via a
// Lightning invoice. Quote ids are scoped per mint, not globally unique
// across quote kinds. Amount stays nil until known.
type MintQuote struct {
	ID      string         `json:"quoteId"`
	MintURL string         `json:"mintUrl"`
	Amount  *uint64        `json:"amount,omitempty"`
	State   MintQuoteState `json:"state"`
	Expiry  uint64         `json:"expiry"`
	Request string         `json:"request"`
	Unit    string         `json:"unit"`
}

// MeltQuote is a pending or completed request to pay a Lightning invoice by
// spending tokens. Unlike MintQuote, every non-optional field is populated at
// creation time; only the preimage arrives later.
type MeltQuote struct {
	ID         string         `json:"quoteId"`
	MintURL    string         `json:"mintUrl"`
	Amount     uint64         `json:"amount"`
	FeeReserve uint64         `json:"fee_reserve"`
	State      MeltQuoteState `json:"state"`
	Expiry     uint64         `json:"expiry"`
	Preimage   *string        `json:"payment_preimage,omitempty"`
	Unit       string         `json:"unit"`
	// Request is the bolt11 invoice the quote was created for. Kept for
	// executing payment later; not part of the tool response shape.
	Request string `json:"-"`
}

// QuoteStatus is the result of resolving a quote id against both quote
// namespaces. Exactly one of MintQuote/MeltQuote is set; both nil means the
// id is unknown, which is a valid terminal state for polling callers.
type QuoteStatus struct {
	Kind      string     `json:"kind"` // "mint" or "melt"
	MintQuote *MintQuote `json:"mintQuote,omitempty"`
	MeltQuote *MeltQuote `json:"meltQuote,omitempty"`
}
