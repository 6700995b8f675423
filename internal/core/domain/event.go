package domain

import "time"

// EventKind tags an entry on the engine's asynchronous state-change stream.
type EventKind string

const (
	EventMintAdded         EventKind = "mint:added"
	EventMintUpdated       EventKind = "mint:updated"
	EventQuoteCreated      EventKind = "quote:created"
	EventQuoteStateChanged EventKind = "quote:state_changed"
	EventQuoteRedeemed     EventKind = "quote:redeemed"
	EventProofSaved        EventKind = "proof:saved"
	EventProofStateChanged EventKind = "proof:state_changed"
	EventProofDeleted      EventKind = "proof:deleted"
	EventSendCreated       EventKind = "send:created"
	EventReceiveCreated    EventKind = "receive:created"
	EventHistoryUpdated    EventKind = "history:updated"
)

// AllEventKinds enumerates every event kind the engine can emit.
func AllEventKinds() []EventKind {
	return []EventKind{
		EventMintAdded, EventMintUpdated,
		EventQuoteCreated, EventQuoteStateChanged, EventQuoteRedeemed,
		EventProofSaved, EventProofStateChanged, EventProofDeleted,
		EventSendCreated, EventReceiveCreated,
		EventHistoryUpdated,
	}
}

// Event is one entry of the engine's state-change stream. Purely
// observational: consumers must never mutate wallet state in response.
type Event struct {
	Kind    EventKind `json:"kind"`
	At      time.Time `json:"at"`
	MintURL string    `json:"mintUrl,omitempty"`
	QuoteID string    `json:"quoteId,omitempty"`
	Amount  uint64    `json:"amount,omitempty"`
	Detail  string    `json:"detail,omitempty"`
}
