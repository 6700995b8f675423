package domain

// BalanceResult aggregates per-mint balances. Total always equals the sum of
// the breakdown values; mints without a defined balance count as zero.
type BalanceResult struct {
	Total     uint64            `json:"total"`
	Breakdown map[string]uint64 `json:"breakdown"`
}

// SendResult is the outcome of constructing a bearer token.
type SendResult struct {
	Token   string `json:"token"`
	Amount  uint64 `json:"amount"`
	MintURL string `json:"mintUrl"`
}

// ReceiveResult reports whether a bearer token was redeemed. The received
// amount is intentionally absent: it must be obtained from history or a
// subsequent engine event.
type ReceiveResult struct {
	Success bool `json:"success"`
}
