package domain

import "time"

// HistoryKind tags an immutable wallet history entry.
type HistoryKind string

const (
	HistoryMint    HistoryKind = "mint"
	HistoryMelt    HistoryKind = "melt"
	HistorySend    HistoryKind = "send"
	HistoryReceive HistoryKind = "receive"
)

// HistoryEntry is an append-only record of a completed mint/melt/send/receive
// event, ordered by creation time. QuoteID is set for mint and melt entries,
// Token for send entries.
type HistoryEntry struct {
	ID        string      `json:"id"`
	Kind      HistoryKind `json:"kind"`
	CreatedAt time.Time   `json:"createdAt"`
	MintURL   string      `json:"mintUrl"`
	Unit      string      `json:"unit"`
	Amount    uint64      `json:"amount"`
	QuoteID   string      `json:"quoteId,omitempty"`
	Token     string      `json:"token,omitempty"`
}
