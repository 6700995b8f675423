package service

import (
	"context"

	"cashu-wallet-service/internal/core/domain"
	"cashu-wallet-service/internal/core/ports"
	"cashu-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// QuoteServiceImpl implements ports.QuoteService over the storage engine's
// point lookups.
type QuoteServiceImpl struct {
	store    ports.WalletStore
	registry ports.MintRegistry
	log      zerolog.Logger
}

// NewQuoteService creates a new QuoteServiceImpl.
func NewQuoteService(store ports.WalletStore, registry ports.MintRegistry, log zerolog.Logger) *QuoteServiceImpl {
	return &QuoteServiceImpl{store: store, registry: registry, log: log}
}

// CheckQuoteStatus resolves a quote id against the mint-quote namespace
// first, then the melt-quote namespace. Precedence is fixed: when an id
// collides across both, the mint quote wins. A miss in both namespaces
// returns nil, not an error; "not found" is a valid terminal state for
// polling callers.
func (s *QuoteServiceImpl) CheckQuoteStatus(ctx context.Context, quoteID, mintURL string) (*domain.QuoteStatus, error) {
	resolved, err := s.registry.ResolveMintURL(ctx, mintURL)
	if err != nil {
		return nil, err
	}

	mintQuote, err := s.store.GetMintQuote(ctx, resolved, quoteID)
	if err != nil {
		return nil, apperror.OperationFailed("lookupQuote", err).
			WithContext("quote_id", quoteID).
			WithContext("mint_url", resolved)
	}
	if mintQuote != nil {
		return &domain.QuoteStatus{Kind: "mint", MintQuote: mintQuote}, nil
	}

	meltQuote, err := s.store.GetMeltQuote(ctx, resolved, quoteID)
	if err != nil {
		return nil, apperror.OperationFailed("lookupQuote", err).
			WithContext("quote_id", quoteID).
			WithContext("mint_url", resolved)
	}
	if meltQuote != nil {
		return &domain.QuoteStatus{Kind: "melt", MeltQuote: meltQuote}, nil
	}

	s.log.Debug().Str("quote_id", quoteID).Str("mint_url", resolved).Msg("quote not found in either namespace")
	return nil, nil
}
