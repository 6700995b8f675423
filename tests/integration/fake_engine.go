package integration

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cashu-wallet-service/internal/core/domain"
	"cashu-wallet-service/internal/core/ports"
	"cashu-wallet-service/pkg/apperror"
)

// fakeEngine implements ports.WalletEngine without any mint or Lightning
// dependency. Mint registry, quotes and history live in the real store; only
// the money movement is simulated via an in-memory balance map.
type fakeEngine struct {
	store ports.WalletStore

	mu       sync.Mutex
	started  bool
	balances map[string]uint64
	seq      int
	events   chan domain.Event
}

func newFakeEngine(store ports.WalletStore) *fakeEngine {
	return &fakeEngine{
		store:    store,
		balances: make(map[string]uint64),
		events:   make(chan domain.Event, 64),
	}
}

// setBalance seeds a mint balance for a test scenario.
func (e *fakeEngine) setBalance(mintURL string, amount uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.balances[mintURL] = amount
}

func (e *fakeEngine) nextID(prefix string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seq++
	return fmt.Sprintf("%s-%d", prefix, e.seq)
}

func (e *fakeEngine) Start(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.started = true
	return nil
}

func (e *fakeEngine) AddMint(ctx context.Context, url string, trusted bool) (*domain.Mint, error) {
	existing, err := e.store.GetMint(ctx, url)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrMintAlreadyExists(url)
	}

	mint := &domain.Mint{URL: url, Trusted: trusted, LastChecked: time.Now().UTC()}
	if err := e.store.SaveMint(ctx, mint); err != nil {
		return nil, err
	}
	e.emit(domain.Event{Kind: domain.EventMintAdded, MintURL: url})
	return mint, nil
}

func (e *fakeEngine) SetMintTrust(ctx context.Context, url string, trusted bool) (*domain.Mint, error) {
	existing, err := e.store.GetMint(ctx, url)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.ErrMintNotFound(url)
	}
	if err := e.store.UpdateMintTrust(ctx, url, trusted); err != nil {
		return nil, err
	}
	existing.Trusted = trusted
	e.emit(domain.Event{Kind: domain.EventMintUpdated, MintURL: url})
	return existing, nil
}

func (e *fakeEngine) ListMints(ctx context.Context) ([]domain.Mint, error) {
	return e.store.ListMints(ctx)
}

func (e *fakeEngine) TrustedMints(ctx context.Context) ([]domain.Mint, error) {
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

func (e *fakeEngine) Balances(_ context.Context) (map[string]uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]uint64, len(e.balances))
	for k, v := range e.balances {
		out[k] = v
	}
	return out, nil
}

func (e *fakeEngine) CreateMintQuote(ctx context.Context, mintURL string, amount uint64) (*domain.MintQuote, error) {
	quote := &domain.MintQuote{
		ID:      e.nextID("mintq"),
		MintURL: mintURL,
		Amount:  &amount,
		State:   domain.MintQuoteUnpaid,
		Expiry:  uint64(time.Now().Add(time.Hour).Unix()),
		Request: fmt.Sprintf("lnbc%d...", amount),
		Unit:    "sat",
	}
	if err := e.store.SaveMintQuote(ctx, quote); err != nil {
		return nil, err
	}
	e.emit(domain.Event{Kind: domain.EventQuoteCreated, MintURL: mintURL, QuoteID: quote.ID, Amount: amount})
	return quote, nil
}

func (e *fakeEngine) RedeemMintQuote(ctx context.Context, mintURL, quoteID string) (*domain.MintQuote, error) {
	quote, err := e.store.GetMintQuote(ctx, mintURL, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, fmt.Errorf("mint quote not found: %s", quoteID)
	}
	if err := e.store.UpdateMintQuoteState(ctx, mintURL, quoteID, domain.MintQuoteIssued); err != nil {
		return nil, err
	}
	quote.State = domain.MintQuoteIssued

	amount := uint64(0)
	if quote.Amount != nil {
		amount = *quote.Amount
	}
	e.mu.Lock()
	e.balances[mintURL] += amount
	e.mu.Unlock()

	e.store.AddHistory(ctx, &domain.HistoryEntry{
		Kind: domain.HistoryMint, MintURL: mintURL, Unit: quote.Unit, Amount: amount, QuoteID: quoteID,
	})
	e.emit(domain.Event{Kind: domain.EventQuoteRedeemed, MintURL: mintURL, QuoteID: quoteID, Amount: amount})
	return quote, nil
}

func (e *fakeEngine) CreateMeltQuote(ctx context.Context, mintURL, invoice string) (*domain.MeltQuote, error) {
	quote := &domain.MeltQuote{
		ID:         e.nextID("meltq"),
		MintURL:    mintURL,
		Amount:     21,
		FeeReserve: 1,
		State:      domain.MeltQuoteUnpaid,
		Expiry:     uint64(time.Now().Add(time.Hour).Unix()),
		Unit:       "sat",
		Request:    invoice,
	}
	if err := e.store.SaveMeltQuote(ctx, quote); err != nil {
		return nil, err
	}
	e.emit(domain.Event{Kind: domain.EventQuoteCreated, MintURL: mintURL, QuoteID: quote.ID, Amount: quote.Amount})
	return quote, nil
}

func (e *fakeEngine) PayMeltQuote(ctx context.Context, mintURL, quoteID string) (*domain.MeltQuote, error) {
	quote, err := e.store.GetMeltQuote(ctx, mintURL, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, fmt.Errorf("melt quote not found: %s", quoteID)
	}

	cost := quote.Amount + quote.FeeReserve
	e.mu.Lock()
	if e.balances[mintURL] < cost {
		e.mu.Unlock()
		return nil, apperror.ErrInsufficientBalance(cost, mintURL)
	}
	e.balances[mintURL] -= cost
	e.mu.Unlock()

	preimage := "preimage-" + quoteID
	if err := e.store.UpdateMeltQuote(ctx, mintURL, quoteID, domain.MeltQuotePaid, preimage); err != nil {
		return nil, err
	}
	quote.State = domain.MeltQuotePaid
	quote.Preimage = &preimage

	e.store.AddHistory(ctx, &domain.HistoryEntry{
		Kind: domain.HistoryMelt, MintURL: mintURL, Unit: quote.Unit, Amount: quote.Amount, QuoteID: quoteID,
	})
	e.emit(domain.Event{Kind: domain.EventQuoteStateChanged, MintURL: mintURL, QuoteID: quoteID})
	return quote, nil
}

func (e *fakeEngine) Send(ctx context.Context, amount uint64, mintURL string) (string, error) {
	e.mu.Lock()
	if e.balances[mintURL] < amount {
		e.mu.Unlock()
		return "", apperror.ErrInsufficientBalance(amount, mintURL)
	}
	e.balances[mintURL] -= amount
	e.mu.Unlock()

	token := fmt.Sprintf("cashuA-%s-%d", e.nextID("tok"), amount)
	e.store.AddHistory(ctx, &domain.HistoryEntry{
		Kind: domain.HistorySend, MintURL: mintURL, Unit: "sat", Amount: amount, Token: token,
	})
	e.emit(domain.Event{Kind: domain.EventSendCreated, MintURL: mintURL, Amount: amount})
	return token, nil
}

func (e *fakeEngine) Receive(ctx context.Context, token string) (bool, error) {
	if !strings.HasPrefix(token, "cashuA") {
		return false, apperror.ErrInvalidToken()
	}

	trusted, err := e.TrustedMints(ctx)
	if err != nil {
		return false, err
	}
	if len(trusted) == 0 {
		return false, apperror.ErrNoTrustedMints()
	}
	target := trusted[0].URL

	const amount = 64
	e.mu.Lock()
	e.balances[target] += amount
	e.mu.Unlock()

	e.store.AddHistory(ctx, &domain.HistoryEntry{
		Kind: domain.HistoryReceive, MintURL: target, Unit: "sat", Amount: amount,
	})
	e.emit(domain.Event{Kind: domain.EventReceiveCreated, MintURL: target, Amount: amount})
	return true, nil
}

func (e *fakeEngine) History(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error) {
	return e.store.ListHistory(ctx, limit, offset)
}

func (e *fakeEngine) Events() <-chan domain.Event {
	return e.events
}

func (e *fakeEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return nil
	}
	e.started = false
	close(e.events)
	return nil
}

func (e *fakeEngine) emit(ev domain.Event) {
	ev.At = time.Now().UTC()
	select {
	case e.events <- ev:
	default:
	}
}
