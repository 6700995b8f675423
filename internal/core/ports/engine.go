package ports

import (
	"context"

	"cashu-wallet-service/internal/core/domain"
)

//go:generate mockgen -source=engine.go -destination=mocks/engine_mocks.go -package=mocks

// WalletEngine is the external Cashu wallet engine. It owns key derivation,
// blind-signature proof construction and NUT-protocol conformance; this layer
// only sequences calls to it. Start enables the engine's background watchers
// and processors (quote-state polling, proof tracking, automatic redemption);
// they run until the passed context is cancelled or Close is called.
type WalletEngine interface {
	Start(ctx context.Context) error

	AddMint(ctx context.Context, url string, trusted bool) (*domain.Mint, error)
	SetMintTrust(ctx context.Context, url string, trusted bool) (*domain.Mint, error)
	ListMints(ctx context.Context) ([]domain.Mint, error)
	TrustedMints(ctx context.Context) ([]domain.Mint, error)

	Balances(ctx context.Context) (map[string]uint64, error)

	CreateMintQuote(ctx context.Context, mintURL string, amount uint64) (*domain.MintQuote, error)
	RedeemMintQuote(ctx context.Context, mintURL, quoteID string) (*domain.MintQuote, error)
	CreateMeltQuote(ctx context.Context, mintURL, invoice string) (*domain.MeltQuote, error)
	PayMeltQuote(ctx context.Context, mintURL, quoteID string) (*domain.MeltQuote, error)

	Send(ctx context.Context, amount uint64, mintURL string) (string, error)
	Receive(ctx context.Context, token string) (bool, error)

	History(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error)

	// Events is the engine's asynchronous state-change stream. The channel is
	// closed when the engine shuts down.
	Events() <-chan domain.Event

	Close() error
}

// WalletStore is the persistent storage engine behind the wallet. Point
// lookups return (nil, nil) when no row matches.
type WalletStore interface {
	GetMint(ctx context.Context, url string) (*domain.Mint, error)
	SaveMint(ctx context.Context, mint *domain.Mint) error
	UpdateMintTrust(ctx context.Context, url string, trusted bool) error
	ListMints(ctx context.Context) ([]domain.Mint, error)
	DeleteMint(ctx context.Context, url string) error

	GetMintQuote(ctx context.Context, mintURL, quoteID string) (*domain.MintQuote, error)
	SaveMintQuote(ctx context.Context, quote *domain.MintQuote) error
	UpdateMintQuoteState(ctx context.Context, mintURL, quoteID string, state domain.MintQuoteState) error
	ListPendingMintQuotes(ctx context.Context) ([]domain.MintQuote, error)

	GetMeltQuote(ctx context.Context, mintURL, quoteID string) (*domain.MeltQuote, error)
	SaveMeltQuote(ctx context.Context, quote *domain.MeltQuote) error
	UpdateMeltQuote(ctx context.Context, mintURL, quoteID string, state domain.MeltQuoteState, preimage string) error

	AddHistory(ctx context.Context, entry *domain.HistoryEntry) error
	ListHistory(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error)

	Close() error
}

// KeyProvider derives the wallet seed from the configured mnemonic on demand.
// Materialize is idempotent (same mnemonic, same bytes) and must not be
// invoked speculatively; Zero clears the cached material. Mnemonic hands the
// backing phrase to engines that seed their own key store from it.
type KeyProvider interface {
	Materialize() ([]byte, error)
	Mnemonic() string
	Zero()
}
