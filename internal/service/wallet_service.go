package service

import (
	"context"
	"sync"

	"cashu-wallet-service/internal/core/domain"
	"cashu-wallet-service/internal/core/ports"
	"cashu-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService. It owns the engine and
// storage handles for the process and sequences their lifecycle; exactly one
// instance exists, constructed at startup and passed into every handler.
type WalletServiceImpl struct {
	engine   ports.WalletEngine
	store    ports.WalletStore
	keys     ports.KeyProvider
	registry ports.MintRegistry
	log      zerolog.Logger

	mu          sync.Mutex
	initialized bool
	closed      bool
}

// NewWalletService creates a new WalletServiceImpl. The store must already be
// open and the engine constructed from {store, keys, transport}; Initialize
// completes the sequence by enabling the engine's background processors.
func NewWalletService(
	engine ports.WalletEngine,
	store ports.WalletStore,
	keys ports.KeyProvider,
	registry ports.MintRegistry,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		engine:   engine,
		store:    store,
		keys:     keys,
		registry: registry,
		log:      log,
	}
}

// Initialize enables the engine's background watchers and marks the wallet
// ready. Calling it again after success is a no-op.
func (s *WalletServiceImpl) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		s.log.Debug().Msg("wallet already initialized, skipping")
		return nil
	}

	if err := s.engine.Start(ctx); err != nil {
		return apperror.ErrWalletInitFailed(err)
	}

	s.initialized = true
	s.closed = false
	s.log.Info().Msg("wallet initialized")
	return nil
}

// GetBalance aggregates per-mint balances. Mints without a defined entry
// count as zero; they are never a hard failure.
func (s *WalletServiceImpl) GetBalance(ctx context.Context) (*domain.BalanceResult, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}

	balances, err := s.engine.Balances(ctx)
	if err != nil {
		return nil, apperror.OperationFailed("getBalance", err)
	}

	result := &domain.BalanceResult{Breakdown: make(map[string]uint64, len(balances))}
	for mintURL, amount := range balances {
		result.Breakdown[mintURL] = amount
		result.Total += amount
	}
	return result, nil
}

// SendTokens constructs a bearer token of the given amount from the resolved
// mint's proofs.
func (s *WalletServiceImpl) SendTokens(ctx context.Context, amount uint64, mintURL string) (*domain.SendResult, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}

	resolved, err := s.registry.ResolveMintURL(ctx, mintURL)
	if err != nil {
		return nil, err
	}

	token, err := s.engine.Send(ctx, amount, resolved)
	if err != nil {
		if isStructured(err) {
			return nil, err
		}
		return nil, apperror.ErrSendCashuFailed(err).
			WithContext("amount", amount).
			WithContext("mint_url", resolved)
	}

	s.log.Info().Uint64("amount", amount).Str("mint_url", resolved).Msg("bearer token created")
	return &domain.SendResult{Token: token, Amount: amount, MintURL: resolved}, nil
}

// ReceiveTokens redeems a bearer token. The received amount is not part of
// the result; callers must recover it from history or an engine event.
func (s *WalletServiceImpl) ReceiveTokens(ctx context.Context, token string) (*domain.ReceiveResult, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}

	ok, err := s.engine.Receive(ctx, token)
	if err != nil {
		if isStructured(err) {
			return nil, err
		}
		return nil, apperror.ErrReceiveCashuFailed(err)
	}

	s.log.Info().Bool("success", ok).Msg("bearer token received")
	return &domain.ReceiveResult{Success: ok}, nil
}

// CreateMintQuote requests a Lightning invoice for minting new tokens.
func (s *WalletServiceImpl) CreateMintQuote(ctx context.Context, mintURL string, amount uint64) (*domain.MintQuote, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}

	resolved, err := s.registry.ResolveMintURL(ctx, mintURL)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.CreateMintQuote(ctx, resolved, amount)
	if err != nil {
		if isStructured(err) {
			return nil, err
		}
		return nil, apperror.OperationFailed("createMintQuote", err).
			WithContext("amount", amount).
			WithContext("mint_url", resolved)
	}
	return quote, nil
}

// RedeemMintQuote mints tokens for a paid mint quote.
func (s *WalletServiceImpl) RedeemMintQuote(ctx context.Context, mintURL, quoteID string) (*domain.MintQuote, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}

	quote, err := s.engine.RedeemMintQuote(ctx, mintURL, quoteID)
	if err != nil {
		if isStructured(err) {
			return nil, err
		}
		return nil, apperror.OperationFailed("redeemMintQuote", err).
			WithContext("quote_id", quoteID).
			WithContext("mint_url", mintURL)
	}
	return quote, nil
}

// CreateMeltQuote requests a quote for paying a Lightning invoice. The
// invoice itself is not validated here.
func (s *WalletServiceImpl) CreateMeltQuote(ctx context.Context, mintURL, invoice string) (*domain.MeltQuote, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}

	resolved, err := s.registry.ResolveMintURL(ctx, mintURL)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.CreateMeltQuote(ctx, resolved, invoice)
	if err != nil {
		if isStructured(err) {
			return nil, err
		}
		return nil, apperror.OperationFailed("createMeltQuote", err).
			WithContext("mint_url", resolved)
	}
	return quote, nil
}

// PayMeltQuote executes payment of a previously created melt quote. No
// rollback exists for partial completion; the post-operation state must be
// recovered through a quote status lookup.
func (s *WalletServiceImpl) PayMeltQuote(ctx context.Context, mintURL, quoteID string) (*domain.MeltQuote, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}

	quote, err := s.engine.PayMeltQuote(ctx, mintURL, quoteID)
	if err != nil {
		if isStructured(err) {
			return nil, err
		}
		return nil, apperror.OperationFailed("payMeltQuote", err).
			WithContext("quote_id", quoteID).
			WithContext("mint_url", mintURL)
	}
	return quote, nil
}

// History returns the paginated, append-only transaction history, most
// recent first.
func (s *WalletServiceImpl) History(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}

	entries, err := s.engine.History(ctx, limit, offset)
	if err != nil {
		return nil, apperror.OperationFailed("listTransactions", err).
			WithContext("limit", limit).
			WithContext("offset", offset)
	}
	return entries, nil
}

// Cleanup closes the storage handle best-effort, clears key material and
// releases the engine. Safe to call repeatedly and before Initialize.
func (s *WalletServiceImpl) Cleanup() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.initialized = false

	if s.engine != nil {
		if err := s.engine.Close(); err != nil {
			s.log.Warn().Err(err).Msg("engine close failed")
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Warn().Err(err).Msg("storage close failed")
		}
	}
	if s.keys != nil {
		s.keys.Zero()
	}

	s.log.Info().Msg("wallet cleaned up")
	return nil
}

func (s *WalletServiceImpl) ensureReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized || s.closed {
		return apperror.ErrWalletNotInitialized()
	}
	return nil
}
