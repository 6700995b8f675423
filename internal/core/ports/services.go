package ports

import (
	"context"

	"cashu-wallet-service/internal/core/domain"
)

// WalletService is the top-level wallet orchestration facade.
type WalletService interface {
	// Initialize sequences storage, key provider and engine startup.
	// Re-invoking after success is a no-op.
	Initialize(ctx context.Context) error

	GetBalance(ctx context.Context) (*domain.BalanceResult, error)
	SendTokens(ctx context.Context, amount uint64, mintURL string) (*domain.SendResult, error)
	ReceiveTokens(ctx context.Context, token string) (*domain.ReceiveResult, error)

	CreateMintQuote(ctx context.Context, mintURL string, amount uint64) (*domain.MintQuote, error)
	RedeemMintQuote(ctx context.Context, mintURL, quoteID string) (*domain.MintQuote, error)
	CreateMeltQuote(ctx context.Context, mintURL, invoice string) (*domain.MeltQuote, error)
	PayMeltQuote(ctx context.Context, mintURL, quoteID string) (*domain.MeltQuote, error)

	History(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error)

	// Cleanup releases the storage and engine handles. Idempotent and safe
	// from a partially initialized state.
	Cleanup() error
}

// MintRegistry manages the set of known mints and their trust flags.
type MintRegistry interface {
	AddMint(ctx context.Context, url string, trusted bool) (*domain.Mint, error)
	TrustMint(ctx context.Context, url string) (*domain.Mint, error)
	UntrustMint(ctx context.Context, url string) (*domain.Mint, error)
	// RemoveMint deletes the mint row via storage directly, bypassing the
	// engine. Destructive: default-mint resolution may fail afterwards.
	RemoveMint(ctx context.Context, url string) error
	ListMints(ctx context.Context, filter domain.MintFilter) (*domain.MintList, error)
	// ResolveMintURL returns url verbatim when non-empty (no existence
	// check), otherwise the first trusted mint in stable enumeration order.
	ResolveMintURL(ctx context.Context, url string) (string, error)
}

// QuoteService resolves a quote id across the two quote namespaces.
type QuoteService interface {
	// CheckQuoteStatus returns the mint quote when the id exists in both
	// namespaces, the melt quote otherwise, and nil when neither exists.
	CheckQuoteStatus(ctx context.Context, quoteID, mintURL string) (*domain.QuoteStatus, error)
}

// HealthChecker verifies a backing dependency is reachable.
type HealthChecker interface {
	Name() string
	Healthy(ctx context.Context) error
}
