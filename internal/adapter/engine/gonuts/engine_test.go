package gonuts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cashu-wallet-service/internal/core/domain"
	"cashu-wallet-service/internal/core/ports/mocks"
	"cashu-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type engineTestDeps struct {
	engine *Engine
	store  *mocks.MockWalletStore
	ctrl   *gomock.Controller
}

func setupEngine(t *testing.T) *engineTestDeps {
	ctrl := gomock.NewController(t)
	d := &engineTestDeps{
		store: mocks.NewMockWalletStore(ctrl),
		ctrl:  ctrl,
	}
	d.engine = New(Config{
		WalletPath:     t.TempDir(),
		CurrentMintURL: "https://primary.example",
	}, d.store, mocks.NewMockKeyProvider(ctrl), zerolog.Nop())
	return d
}

func mintServer(t *testing.T, name string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/info" {
			json.NewEncoder(w).Encode(map[string]string{"name": name})
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestEngine_AddMint(t *testing.T) {
	d := setupEngine(t)
	ctx := context.Background()
	srv := mintServer(t, "testmint")

	d.store.EXPECT().GetMint(ctx, srv.URL).Return(nil, nil)
	d.store.EXPECT().SaveMint(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *domain.Mint) error {
		assert.Equal(t, srv.URL, m.URL)
		assert.True(t, m.Trusted)
		assert.False(t, m.LastChecked.IsZero())
		return nil
	})

	mint, err := d.engine.AddMint(ctx, srv.URL, true)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, mint.URL)

	// Registration emits an event.
	select {
	case ev := <-d.engine.Events():
		assert.Equal(t, domain.EventMintAdded, ev.Kind)
		assert.Equal(t, srv.URL, ev.MintURL)
	case <-time.After(time.Second):
		t.Fatal("no mint:added event emitted")
	}
}

func TestEngine_AddMint_AlreadyExists(t *testing.T) {
	d := setupEngine(t)
	ctx := context.Background()

	d.store.EXPECT().GetMint(ctx, "https://mint.example").Return(&domain.Mint{URL: "https://mint.example"}, nil)

	_, err := d.engine.AddMint(ctx, "https://mint.example", false)
	assert.Equal(t, "MINT_ALREADY_EXISTS", apperror.CodeOf(err))
}

func TestEngine_AddMint_Unreachable(t *testing.T) {
	d := setupEngine(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d.store.EXPECT().GetMint(ctx, srv.URL).Return(nil, nil)

	_, err := d.engine.AddMint(ctx, srv.URL, false)
	assert.Equal(t, "MINT_ADD_FAILED", apperror.CodeOf(err))
}

func TestEngine_SetMintTrust(t *testing.T) {
	d := setupEngine(t)
	ctx := context.Background()

	d.store.EXPECT().GetMint(ctx, "https://mint.example").Return(&domain.Mint{URL: "https://mint.example", Trusted: false}, nil)
	d.store.EXPECT().UpdateMintTrust(ctx, "https://mint.example", true).Return(nil)

	mint, err := d.engine.SetMintTrust(ctx, "https://mint.example", true)
	require.NoError(t, err)
	assert.True(t, mint.Trusted)
}

func TestEngine_SetMintTrust_NotFound(t *testing.T) {
	d := setupEngine(t)
	ctx := context.Background()

	d.store.EXPECT().GetMint(ctx, "https://nope.example").Return(nil, nil)

	_, err := d.engine.SetMintTrust(ctx, "https://nope.example", true)
	assert.Equal(t, "MINT_NOT_FOUND", apperror.CodeOf(err))
}

func TestEngine_TrustedMints_FiltersAndKeepsOrder(t *testing.T) {
	d := setupEngine(t)
	ctx := context.Background()

	d.store.EXPECT().ListMints(ctx).Return([]domain.Mint{
		{URL: "https://a.example", Trusted: true},
		{URL: "https://b.example", Trusted: false},
		{URL: "https://c.example", Trusted: true},
	}, nil)

	trusted, err := d.engine.TrustedMints(ctx)
	require.NoError(t, err)
	require.Len(t, trusted, 2)
	assert.Equal(t, "https://a.example", trusted[0].URL)
	assert.Equal(t, "https://c.example", trusted[1].URL)
}

func TestEngine_OperationsRequireStart(t *testing.T) {
	d := setupEngine(t)
	ctx := context.Background()

	_, err := d.engine.Balances(ctx)
	assert.Error(t, err)

	_, err = d.engine.Send(ctx, 21, "https://mint.example")
	assert.Error(t, err)

	_, err = d.engine.CreateMintQuote(ctx, "https://primary.example", 21)
	assert.Error(t, err)
}

func TestIsFreshWalletDir(t *testing.T) {
	// Nonexistent and empty directories get seeded from the configured
	// phrase; a directory with an existing store keeps its keys.
	fresh, err := isFreshWalletDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.True(t, fresh)

	dir := t.TempDir()
	fresh, err = isFreshWalletDir(dir)
	require.NoError(t, err)
	assert.True(t, fresh)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "wallet.db"), []byte("x"), 0o600))
	fresh, err = isFreshWalletDir(dir)
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestEngine_CloseIsIdempotent(t *testing.T) {
	d := setupEngine(t)

	require.NoError(t, d.engine.Close())
	require.NoError(t, d.engine.Close())

	// The event stream is closed exactly once.
	_, open := <-d.engine.Events()
	assert.False(t, open)
}
