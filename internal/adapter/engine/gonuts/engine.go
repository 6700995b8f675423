package gonuts

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"cashu-wallet-service/internal/core/domain"
	"cashu-wallet-service/internal/core/ports"
	"cashu-wallet-service/pkg/apperror"

	"github.com/elnosh/gonuts/cashu"
	"github.com/elnosh/gonuts/cashu/nuts/nut05"
	"github.com/elnosh/gonuts/wallet"
	"github.com/rs/zerolog"
)

// Config holds the engine's tunables.
type Config struct {
	// WalletPath is the directory where the wallet library keeps its own
	// proof and keyset database.
	WalletPath string
	// CurrentMintURL is the primary mint. Mint quotes are always created
	// against it; send/melt/receive work against any mint.
	CurrentMintURL string
	// Unit is the currency unit, "sat" unless configured otherwise.
	Unit string
	// PollInterval controls how often the watcher re-checks pending mint
	// quotes. Zero means the 5s default.
	PollInterval time.Duration
	// MintTimeout bounds direct mint API calls.
	MintTimeout time.Duration
}

// Engine implements ports.WalletEngine on top of the gonuts wallet library.
// The library owns key derivation and proof management; the engine layers the
// mint registry, quote bookkeeping, history and the event stream on top,
// persisted in the wallet store.
type Engine struct {
	cfg   Config
	store ports.WalletStore
	keys  ports.KeyProvider
	mint  *MintClient
	log   zerolog.Logger

	events chan domain.Event

	mu      sync.Mutex
	wallet  *wallet.Wallet
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
	closed  bool
}

// New creates a new Engine. Start must be called before any operation.
func New(cfg Config, store ports.WalletStore, keys ports.KeyProvider, log zerolog.Logger) *Engine {
	if cfg.Unit == "" {
		cfg.Unit = "sat"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	return &Engine{
		cfg:    cfg,
		store:  store,
		keys:   keys,
		mint:   NewMintClient(cfg.MintTimeout),
		log:    log,
		events: make(chan domain.Event, 64),
	}
}

// Start derives the wallet key material, loads the wallet library and starts
// the quote watcher. The primary mint is registered as trusted if unknown.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}
	if e.closed {
		return fmt.Errorf("engine is closed")
	}

	// Fail fast on a bad mnemonic before the wallet library touches disk.
	if _, err := e.keys.Materialize(); err != nil {
		return err
	}

	// A fresh wallet directory is seeded from the configured phrase so the
	// wallet's keys derive from CWS_WALLET_MNEMONIC and a user can restore
	// funds from it. An already-initialized directory keeps the keys it was
	// created with; the configured phrase never overwrites an existing store.
	fresh, err := isFreshWalletDir(e.cfg.WalletPath)
	if err != nil {
		return fmt.Errorf("checking wallet directory: %w", err)
	}
	if fresh {
		if _, err := wallet.Restore(e.cfg.WalletPath, e.keys.Mnemonic(), []string{e.cfg.CurrentMintURL}); err != nil {
			return fmt.Errorf("restoring wallet from seed phrase: %w", err)
		}
		e.log.Info().Str("wallet_path", e.cfg.WalletPath).Msg("wallet key material restored from configured seed phrase")
	}

	w, err := wallet.LoadWallet(wallet.Config{
		WalletPath:     e.cfg.WalletPath,
		CurrentMintURL: e.cfg.CurrentMintURL,
	})
	if err != nil {
		return fmt.Errorf("loading wallet: %w", err)
	}
	e.wallet = w

	if err := e.ensurePrimaryMint(ctx); err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.wg.Add(1)
	go e.watch(watchCtx)

	e.started = true
	e.log.Info().
		Str("mint_url", e.cfg.CurrentMintURL).
		Str("wallet_path", e.cfg.WalletPath).
		Msg("wallet engine started")
	return nil
}

func (e *Engine) ensurePrimaryMint(ctx context.Context) error {
	existing, err := e.store.GetMint(ctx, e.cfg.CurrentMintURL)
	if err != nil {
		return fmt.Errorf("checking primary mint: %w", err)
	}
	if existing != nil {
		return nil
	}

	mint := &domain.Mint{URL: e.cfg.CurrentMintURL, Trusted: true, LastChecked: time.Now().UTC()}
	if err := e.store.SaveMint(ctx, mint); err != nil {
		return fmt.Errorf("registering primary mint: %w", err)
	}
	e.emit(domain.Event{Kind: domain.EventMintAdded, MintURL: mint.URL})
	return nil
}

// AddMint probes the mint for reachability and registers it.
func (e *Engine) AddMint(ctx context.Context, url string, trusted bool) (*domain.Mint, error) {
	existing, err := e.store.GetMint(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("checking mint: %w", err)
	}
	if existing != nil {
		return nil, apperror.ErrMintAlreadyExists(url)
	}

	info, err := e.mint.Info(ctx, url)
	if err != nil {
		return nil, apperror.ErrMintAddFailed(url, err)
	}

	mint := &domain.Mint{URL: url, Trusted: trusted, LastChecked: time.Now().UTC()}
	if err := e.store.SaveMint(ctx, mint); err != nil {
		return nil, fmt.Errorf("saving mint: %w", err)
	}

	e.log.Info().Str("mint_url", url).Str("mint_name", info.Name).Bool("trusted", trusted).Msg("mint added")
	e.emit(domain.Event{Kind: domain.EventMintAdded, MintURL: url})
	return mint, nil
}

// SetMintTrust flips the trust flag of a known mint.
func (e *Engine) SetMintTrust(ctx context.Context, url string, trusted bool) (*domain.Mint, error) {
	existing, err := e.store.GetMint(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("checking mint: %w", err)
	}
	if existing == nil {
		return nil, apperror.ErrMintNotFound(url)
	}

	if err := e.store.UpdateMintTrust(ctx, url, trusted); err != nil {
		return nil, fmt.Errorf("updating mint trust: %w", err)
	}

	existing.Trusted = trusted
	existing.LastChecked = time.Now().UTC()
	e.emit(domain.Event{Kind: domain.EventMintUpdated, MintURL: url})
	return existing, nil
}

// ListMints returns all known mints.
func (e *Engine) ListMints(ctx context.Context) ([]domain.Mint, error) {
	return e.store.ListMints(ctx)
}

// TrustedMints returns the trusted subset in stable order.
func (e *Engine) TrustedMints(ctx context.Context) ([]domain.Mint, error) {
	mints, err := e.store.ListMints(ctx)
	if err != nil {
		return nil, err
	}
	trusted := make([]domain.Mint, 0, len(mints))
	for _, m := range mints {
		if m.Trusted {
			trusted = append(trusted, m)
		}
	}
	return trusted, nil
}

// Balances returns the per-mint balance map from the wallet library.
func (e *Engine) Balances(ctx context.Context) (map[string]uint64, error) {
	w, err := e.ready()
	if err != nil {
		return nil, err
	}
	return w.GetBalanceByMints(), nil
}

// CreateMintQuote requests a Lightning invoice for minting. The wallet
// library only mints against its current mint, so other mint URLs are
// rejected here rather than silently redirected.
func (e *Engine) CreateMintQuote(ctx context.Context, mintURL string, amount uint64) (*domain.MintQuote, error) {
	w, err := e.ready()
	if err != nil {
		return nil, err
	}
	if mintURL != e.cfg.CurrentMintURL {
		return nil, fmt.Errorf("minting is only supported at the primary mint %s", e.cfg.CurrentMintURL)
	}

	resp, err := w.RequestMint(amount)
	if err != nil {
		return nil, fmt.Errorf("requesting mint quote: %w", err)
	}

	quote := &domain.MintQuote{
		ID:      resp.Quote,
		MintURL: mintURL,
		Amount:  &amount,
		State:   domain.MintQuoteUnpaid,
		Expiry:  resp.Expiry,
		Request: resp.Request,
		Unit:    e.cfg.Unit,
	}
	if err := e.store.SaveMintQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("saving mint quote: %w", err)
	}

	e.emit(domain.Event{Kind: domain.EventQuoteCreated, MintURL: mintURL, QuoteID: quote.ID, Amount: amount})
	return quote, nil
}

// RedeemMintQuote mints tokens for a paid quote and marks it issued.
func (e *Engine) RedeemMintQuote(ctx context.Context, mintURL, quoteID string) (*domain.MintQuote, error) {
	w, err := e.ready()
	if err != nil {
		return nil, err
	}

	quote, err := e.store.GetMintQuote(ctx, mintURL, quoteID)
	if err != nil {
		return nil, fmt.Errorf("loading mint quote: %w", err)
	}
	if quote == nil {
		return nil, fmt.Errorf("mint quote not found: %s", quoteID)
	}
	if quote.State == domain.MintQuoteIssued {
		return quote, nil
	}

	minted, err := w.MintTokens(quoteID)
	if err != nil {
		return nil, fmt.Errorf("minting tokens: %w", err)
	}
	if err := e.store.UpdateMintQuoteState(ctx, mintURL, quoteID, domain.MintQuoteIssued); err != nil {
		return nil, fmt.Errorf("updating mint quote state: %w", err)
	}
	quote.State = domain.MintQuoteIssued
	if quote.Amount == nil {
		quote.Amount = &minted
	}

	e.recordHistory(ctx, &domain.HistoryEntry{
		Kind:    domain.HistoryMint,
		MintURL: mintURL,
		Unit:    quote.Unit,
		Amount:  minted,
		QuoteID: quoteID,
	})
	e.emit(domain.Event{Kind: domain.EventQuoteRedeemed, MintURL: mintURL, QuoteID: quoteID, Amount: minted})
	return quote, nil
}

// CreateMeltQuote asks the mint for a fully priced melt quote. The invoice
// stays attached to the stored quote for the eventual payment call.
func (e *Engine) CreateMeltQuote(ctx context.Context, mintURL, invoice string) (*domain.MeltQuote, error) {
	if _, err := e.ready(); err != nil {
		return nil, err
	}

	resp, err := e.mint.CreateMeltQuote(ctx, mintURL, invoice, e.cfg.Unit)
	if err != nil {
		return nil, fmt.Errorf("requesting melt quote: %w", err)
	}

	quote := &domain.MeltQuote{
		ID:         resp.Quote,
		MintURL:    mintURL,
		Amount:     resp.Amount,
		FeeReserve: resp.FeeReserve,
		State:      domain.MeltQuoteUnpaid,
		Expiry:     resp.Expiry,
		Unit:       e.cfg.Unit,
		Request:    invoice,
	}
	if err := e.store.SaveMeltQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("saving melt quote: %w", err)
	}

	e.emit(domain.Event{Kind: domain.EventQuoteCreated, MintURL: mintURL, QuoteID: quote.ID, Amount: quote.Amount})
	return quote, nil
}

// PayMeltQuote executes the Lightning payment for a stored melt quote.
func (e *Engine) PayMeltQuote(ctx context.Context, mintURL, quoteID string) (*domain.MeltQuote, error) {
	w, err := e.ready()
	if err != nil {
		return nil, err
	}

	quote, err := e.store.GetMeltQuote(ctx, mintURL, quoteID)
	if err != nil {
		return nil, fmt.Errorf("loading melt quote: %w", err)
	}
	if quote == nil {
		return nil, fmt.Errorf("melt quote not found: %s", quoteID)
	}
	if quote.State == domain.MeltQuotePaid {
		return quote, nil
	}

	melt, err := w.Melt(quote.Request, mintURL)
	if err != nil {
		if isInsufficientBalance(err) {
			return nil, apperror.ErrInsufficientBalance(quote.Amount+quote.FeeReserve, mintURL)
		}
		return nil, fmt.Errorf("paying melt quote: %w", err)
	}

	state := domain.MeltQuotePending
	preimage := ""
	if melt.State == nut05.Paid {
		state = domain.MeltQuotePaid
		preimage = melt.Preimage
	}
	if err := e.store.UpdateMeltQuote(ctx, mintURL, quoteID, state, preimage); err != nil {
		return nil, fmt.Errorf("updating melt quote: %w", err)
	}
	quote.State = state
	if preimage != "" {
		quote.Preimage = &preimage
	}

	if state == domain.MeltQuotePaid {
		e.recordHistory(ctx, &domain.HistoryEntry{
			Kind:    domain.HistoryMelt,
			MintURL: mintURL,
			Unit:    quote.Unit,
			Amount:  quote.Amount,
			QuoteID: quoteID,
		})
	}
	e.emit(domain.Event{Kind: domain.EventQuoteStateChanged, MintURL: mintURL, QuoteID: quoteID, Amount: quote.Amount, Detail: string(state)})
	return quote, nil
}

// Send constructs a bearer token from the given mint's proofs.
func (e *Engine) Send(ctx context.Context, amount uint64, mintURL string) (string, error) {
	w, err := e.ready()
	if err != nil {
		return "", err
	}

	proofs, err := w.Send(amount, mintURL, true)
	if err != nil {
		if isInsufficientBalance(err) {
			return "", apperror.ErrInsufficientBalance(amount, mintURL)
		}
		return "", fmt.Errorf("creating bearer token: %w", err)
	}

	token, err := cashu.NewTokenV4(proofs, mintURL, cashu.Sat, true)
	if err != nil {
		return "", fmt.Errorf("creating bearer token: %w", err)
	}
	encoded, err := token.Serialize()
	if err != nil {
		return "", fmt.Errorf("creating bearer token: %w", err)
	}
	e.recordHistory(ctx, &domain.HistoryEntry{
		Kind:    domain.HistorySend,
		MintURL: mintURL,
		Unit:    e.cfg.Unit,
		Amount:  amount,
		Token:   encoded,
	})
	e.emit(domain.Event{Kind: domain.EventSendCreated, MintURL: mintURL, Amount: amount})
	return encoded, nil
}

// Receive redeems a bearer token, swapping its proofs to a trusted mint.
func (e *Engine) Receive(ctx context.Context, token string) (bool, error) {
	w, err := e.ready()
	if err != nil {
		return false, err
	}

	decoded, err := cashu.DecodeToken(token)
	if err != nil {
		return false, apperror.ErrInvalidToken()
	}

	amount, err := w.Receive(decoded, true)
	if err != nil {
		return false, fmt.Errorf("redeeming bearer token: %w", err)
	}

	e.recordHistory(ctx, &domain.HistoryEntry{
		Kind:    domain.HistoryReceive,
		MintURL: e.cfg.CurrentMintURL,
		Unit:    e.cfg.Unit,
		Amount:  amount,
	})
	e.emit(domain.Event{Kind: domain.EventReceiveCreated, MintURL: e.cfg.CurrentMintURL, Amount: amount})
	return true, nil
}

// History returns stored history entries, most recent first.
func (e *Engine) History(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error) {
	return e.store.ListHistory(ctx, limit, offset)
}

// Events returns the engine's state-change stream.
func (e *Engine) Events() <-chan domain.Event {
	return e.events
}

// Close stops the watcher and closes the event stream. Idempotent.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.started = false
	cancel := e.cancel
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()
	close(e.events)

	e.log.Info().Msg("wallet engine stopped")
	return nil
}

func (e *Engine) ready() (*wallet.Wallet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started || e.wallet == nil {
		return nil, fmt.Errorf("engine not started")
	}
	return e.wallet, nil
}

func (e *Engine) recordHistory(ctx context.Context, entry *domain.HistoryEntry) {
	if err := e.store.AddHistory(ctx, entry); err != nil {
		e.log.Warn().Err(err).Str("kind", string(entry.Kind)).Msg("recording history failed")
		return
	}
	e.emit(domain.Event{Kind: domain.EventHistoryUpdated, MintURL: entry.MintURL, Amount: entry.Amount})
}

// emit never blocks; a full buffer drops the event. The stream is
// observational, losing an entry under pressure is acceptable.
func (e *Engine) emit(ev domain.Event) {
	ev.At = time.Now().UTC()
	select {
	case e.events <- ev:
	default:
		e.log.Warn().Str("event", string(ev.Kind)).Msg("event buffer full, dropping")
	}
}

// isFreshWalletDir reports whether the wallet library has never initialized
// its store under path.
func isFreshWalletDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

func isInsufficientBalance(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "insufficient")
}
