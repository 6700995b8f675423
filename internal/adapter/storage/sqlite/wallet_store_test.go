package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cashu-wallet-service/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *WalletStore {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "wallet.db"), zerolog.Nop())
	require.NoError(t, err)
	store := NewWalletStore(db)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWalletStore_MintRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	missing, err := store.GetMint(ctx, "https://mint.example")
	require.NoError(t, err)
	assert.Nil(t, missing)

	mint := &domain.Mint{URL: "https://mint.example", Trusted: true, LastChecked: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, store.SaveMint(ctx, mint))

	got, err := store.GetMint(ctx, "https://mint.example")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Trusted)
	assert.Equal(t, mint.LastChecked.Unix(), got.LastChecked.Unix())
}

func TestWalletStore_SaveMintIsUpsert(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMint(ctx, &domain.Mint{URL: "https://mint.example", Trusted: false, LastChecked: time.Now()}))
	require.NoError(t, store.SaveMint(ctx, &domain.Mint{URL: "https://mint.example", Trusted: true, LastChecked: time.Now()}))

	mints, err := store.ListMints(ctx)
	require.NoError(t, err)
	require.Len(t, mints, 1)
	assert.True(t, mints[0].Trusted)
}

func TestWalletStore_UpdateMintTrust(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMint(ctx, &domain.Mint{URL: "https://mint.example", Trusted: false, LastChecked: time.Now()}))
	require.NoError(t, store.UpdateMintTrust(ctx, "https://mint.example", true))

	got, err := store.GetMint(ctx, "https://mint.example")
	require.NoError(t, err)
	assert.True(t, got.Trusted)

	err = store.UpdateMintTrust(ctx, "https://unknown.example", true)
	assert.Error(t, err)
}

func TestWalletStore_ListMintsInsertionOrder(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	// Insertion order, not URL order: the first-added trusted mint stays the
	// default even when a lexicographically smaller one is added later.
	for _, url := range []string{"https://c.example", "https://a.example", "https://b.example"} {
		require.NoError(t, store.SaveMint(ctx, &domain.Mint{URL: url, LastChecked: time.Now()}))
	}

	mints, err := store.ListMints(ctx)
	require.NoError(t, err)
	require.Len(t, mints, 3)
	assert.Equal(t, "https://c.example", mints[0].URL)
	assert.Equal(t, "https://a.example", mints[1].URL)
	assert.Equal(t, "https://b.example", mints[2].URL)

	// Re-saving an existing mint keeps its slot.
	require.NoError(t, store.SaveMint(ctx, &domain.Mint{URL: "https://c.example", Trusted: true, LastChecked: time.Now()}))
	mints, err = store.ListMints(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://c.example", mints[0].URL)
}

func TestWalletStore_DeleteMint(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMint(ctx, &domain.Mint{URL: "https://mint.example", LastChecked: time.Now()}))
	require.NoError(t, store.DeleteMint(ctx, "https://mint.example"))

	got, err := store.GetMint(ctx, "https://mint.example")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting a missing row is not an error.
	require.NoError(t, store.DeleteMint(ctx, "https://mint.example"))
}

func TestWalletStore_MintQuoteRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	amount := uint64(100)

	quote := &domain.MintQuote{
		ID:      "q1",
		MintURL: "https://mint.example",
		Amount:  &amount,
		State:   domain.MintQuoteUnpaid,
		Expiry:  1735689600,
		Request: "lnbc100n1...",
		Unit:    "sat",
	}
	require.NoError(t, store.SaveMintQuote(ctx, quote))

	got, err := store.GetMintQuote(ctx, "https://mint.example", "q1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Amount)
	assert.Equal(t, uint64(100), *got.Amount)
	assert.Equal(t, domain.MintQuoteUnpaid, got.State)
	assert.Equal(t, "lnbc100n1...", got.Request)

	missing, err := store.GetMintQuote(ctx, "https://mint.example", "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWalletStore_MintQuoteNilAmount(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	quote := &domain.MintQuote{ID: "q1", MintURL: "https://mint.example", State: domain.MintQuoteUnpaid, Unit: "sat"}
	require.NoError(t, store.SaveMintQuote(ctx, quote))

	got, err := store.GetMintQuote(ctx, "https://mint.example", "q1")
	require.NoError(t, err)
	assert.Nil(t, got.Amount)
}

func TestWalletStore_QuoteIDsScopedPerMint(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMintQuote(ctx, &domain.MintQuote{
		ID: "shared", MintURL: "https://a.example", State: domain.MintQuoteUnpaid, Unit: "sat",
	}))
	require.NoError(t, store.SaveMintQuote(ctx, &domain.MintQuote{
		ID: "shared", MintURL: "https://b.example", State: domain.MintQuotePaid, Unit: "sat",
	}))

	a, err := store.GetMintQuote(ctx, "https://a.example", "shared")
	require.NoError(t, err)
	assert.Equal(t, domain.MintQuoteUnpaid, a.State)

	b, err := store.GetMintQuote(ctx, "https://b.example", "shared")
	require.NoError(t, err)
	assert.Equal(t, domain.MintQuotePaid, b.State)
}

func TestWalletStore_UpdateMintQuoteState(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMintQuote(ctx, &domain.MintQuote{
		ID: "q1", MintURL: "https://mint.example", State: domain.MintQuoteUnpaid, Unit: "sat",
	}))
	require.NoError(t, store.UpdateMintQuoteState(ctx, "https://mint.example", "q1", domain.MintQuoteIssued))

	got, err := store.GetMintQuote(ctx, "https://mint.example", "q1")
	require.NoError(t, err)
	assert.Equal(t, domain.MintQuoteIssued, got.State)

	err = store.UpdateMintQuoteState(ctx, "https://mint.example", "nope", domain.MintQuotePaid)
	assert.Error(t, err)
}

func TestWalletStore_ListPendingMintQuotes(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	states := map[string]domain.MintQuoteState{
		"q-unpaid": domain.MintQuoteUnpaid,
		"q-paid":   domain.MintQuotePaid,
		"q-issued": domain.MintQuoteIssued,
	}
	for id, state := range states {
		require.NoError(t, store.SaveMintQuote(ctx, &domain.MintQuote{
			ID: id, MintURL: "https://mint.example", State: state, Unit: "sat",
		}))
	}

	pending, err := store.ListPendingMintQuotes(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, q := range pending {
		assert.NotEqual(t, domain.MintQuoteIssued, q.State)
	}
}

func TestWalletStore_MeltQuoteRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	quote := &domain.MeltQuote{
		ID:         "mq1",
		MintURL:    "https://mint.example",
		Amount:     21,
		FeeReserve: 1,
		State:      domain.MeltQuoteUnpaid,
		Expiry:     1735689600,
		Unit:       "sat",
	}
	require.NoError(t, store.SaveMeltQuote(ctx, quote))

	got, err := store.GetMeltQuote(ctx, "https://mint.example", "mq1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(21), got.Amount)
	assert.Equal(t, uint64(1), got.FeeReserve)
	assert.Nil(t, got.Preimage)
}

func TestWalletStore_UpdateMeltQuotePreservesPreimage(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMeltQuote(ctx, &domain.MeltQuote{
		ID: "mq1", MintURL: "https://mint.example", Amount: 21, State: domain.MeltQuoteUnpaid, Unit: "sat",
	}))

	require.NoError(t, store.UpdateMeltQuote(ctx, "https://mint.example", "mq1", domain.MeltQuotePaid, "abc123"))

	got, err := store.GetMeltQuote(ctx, "https://mint.example", "mq1")
	require.NoError(t, err)
	assert.Equal(t, domain.MeltQuotePaid, got.State)
	require.NotNil(t, got.Preimage)
	assert.Equal(t, "abc123", *got.Preimage)

	// An empty preimage on a later update keeps the stored one.
	require.NoError(t, store.UpdateMeltQuote(ctx, "https://mint.example", "mq1", domain.MeltQuotePaid, ""))
	got, err = store.GetMeltQuote(ctx, "https://mint.example", "mq1")
	require.NoError(t, err)
	require.NotNil(t, got.Preimage)
	assert.Equal(t, "abc123", *got.Preimage)
}

func TestWalletStore_HistoryOrderAndPagination(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.AddHistory(ctx, &domain.HistoryEntry{
			Kind:      domain.HistoryMint,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			MintURL:   "https://mint.example",
			Unit:      "sat",
			Amount:    uint64(i + 1),
		}))
	}

	page, err := store.ListHistory(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	// Most recent first.
	assert.Equal(t, uint64(5), page[0].Amount)
	assert.Equal(t, uint64(4), page[1].Amount)

	page, err = store.ListHistory(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, uint64(1), page[0].Amount)
}

func TestWalletStore_AddHistoryFillsIDAndTimestamp(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	entry := &domain.HistoryEntry{Kind: domain.HistorySend, MintURL: "https://mint.example", Unit: "sat", Amount: 8, Token: "cashuA..."}
	require.NoError(t, store.AddHistory(ctx, entry))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	entries, err := store.ListHistory(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, "cashuA...", entries[0].Token)
}
