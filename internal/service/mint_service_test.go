package service

import (
	"context"
	"errors"
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

// assertAppError asserts err carries the expected machine code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

type registryTestDeps struct {
	svc    *MintRegistryImpl
	engine *mocks.MockWalletEngine
	store  *mocks.MockWalletStore
	ctrl   *gomock.Controller
}

func setupRegistry(t *testing.T) *registryTestDeps {
	ctrl := gomock.NewController(t)
	d := &registryTestDeps{
		engine: mocks.NewMockWalletEngine(ctrl),
		store:  mocks.NewMockWalletStore(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewMintRegistry(d.engine, d.store, zerolog.Nop())
	return d
}

func TestMintRegistry_AddMint_DefaultsUntrusted(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()

	d.engine.EXPECT().AddMint(ctx, "https://mint.example", false).Return(&domain.Mint{
		URL:         "https://mint.example",
		Trusted:     false,
		LastChecked: time.Now(),
	}, nil)

	mint, err := d.svc.AddMint(ctx, "https://mint.example", false)
	require.NoError(t, err)
	assert.Equal(t, "https://mint.example", mint.URL)
	assert.False(t, mint.Trusted)
}

func TestMintRegistry_AddMint_InvalidURL(t *testing.T) {
	d := setupRegistry(t)

	_, err := d.svc.AddMint(context.Background(), "not a url", true)
	assertAppError(t, err, "MINT_INVALID_URL")

	_, err = d.svc.AddMint(context.Background(), "ftp://mint.example", true)
	assertAppError(t, err, "MINT_INVALID_URL")
}

func TestMintRegistry_AddMint_EngineFailureWrapped(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()

	cause := errors.New("mint unreachable")
	d.engine.EXPECT().AddMint(ctx, "https://mint.example", true).Return(nil, cause)

	_, err := d.svc.AddMint(ctx, "https://mint.example", true)
	assertAppError(t, err, "MINT_ADD_FAILED")
	assert.ErrorIs(t, err, cause)
}

func TestMintRegistry_TrustThenUntrust_TogglesFlagOnly(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()
	checked := time.Now()

	d.engine.EXPECT().SetMintTrust(ctx, "https://mint.example", true).Return(&domain.Mint{
		URL: "https://mint.example", Trusted: true, LastChecked: checked,
	}, nil)
	d.engine.EXPECT().SetMintTrust(ctx, "https://mint.example", false).Return(&domain.Mint{
		URL: "https://mint.example", Trusted: false, LastChecked: checked,
	}, nil)

	trusted, err := d.svc.TrustMint(ctx, "https://mint.example")
	require.NoError(t, err)
	assert.True(t, trusted.Trusted)

	untrusted, err := d.svc.UntrustMint(ctx, "https://mint.example")
	require.NoError(t, err)
	assert.False(t, untrusted.Trusted)
	assert.Equal(t, trusted.URL, untrusted.URL)
	assert.Equal(t, trusted.LastChecked, untrusted.LastChecked)
}

func TestMintRegistry_TrustMint_UnknownMintSurfaces(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()

	d.engine.EXPECT().SetMintTrust(ctx, "https://nope.example", true).
		Return(nil, apperror.ErrMintNotFound("https://nope.example"))

	_, err := d.svc.TrustMint(ctx, "https://nope.example")
	assertAppError(t, err, "MINT_NOT_FOUND")
}

func TestMintRegistry_RemoveMint_DeletesViaStorage(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()

	d.store.EXPECT().GetMint(ctx, "https://mint.example").Return(&domain.Mint{
		URL: "https://mint.example", Trusted: true,
	}, nil)
	d.store.EXPECT().DeleteMint(ctx, "https://mint.example").Return(nil)

	require.NoError(t, d.svc.RemoveMint(ctx, "https://mint.example"))
}

func TestMintRegistry_RemoveMint_NotFound(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()

	d.store.EXPECT().GetMint(ctx, "https://nope.example").Return(nil, nil)

	err := d.svc.RemoveMint(ctx, "https://nope.example")
	assertAppError(t, err, "MINT_NOT_FOUND")
}

func TestMintRegistry_RemoveMint_StorageFailureWrapped(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()

	d.store.EXPECT().GetMint(ctx, "https://mint.example").Return(&domain.Mint{URL: "https://mint.example"}, nil)
	d.store.EXPECT().DeleteMint(ctx, "https://mint.example").Return(errors.New("db locked"))

	err := d.svc.RemoveMint(ctx, "https://mint.example")
	assertAppError(t, err, "MINT_REMOVE_FAILED")
}

func TestMintRegistry_ListMints_CountsOverUnfilteredSet(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()

	all := []domain.Mint{
		{URL: "https://a", Trusted: true},
		{URL: "https://b", Trusted: false},
		{URL: "https://c", Trusted: true},
	}
	d.engine.EXPECT().ListMints(ctx).Return(all, nil).Times(3)

	list, err := d.svc.ListMints(ctx, domain.MintFilterAll)
	require.NoError(t, err)
	assert.Len(t, list.Mints, 3)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 2, list.Trusted)
	assert.Equal(t, 1, list.Untrusted)

	trusted, err := d.svc.ListMints(ctx, domain.MintFilterTrusted)
	require.NoError(t, err)
	assert.Len(t, trusted.Mints, 2)
	// Counts stay computed over the unfiltered set.
	assert.Equal(t, 3, trusted.Total)
	assert.Equal(t, 1, trusted.Untrusted)

	untrusted, err := d.svc.ListMints(ctx, domain.MintFilterUntrusted)
	require.NoError(t, err)
	assert.Len(t, untrusted.Mints, 1)
	assert.Equal(t, "https://b", untrusted.Mints[0].URL)
}

func TestMintRegistry_ResolveMintURL_VerbatimWhenGiven(t *testing.T) {
	d := setupRegistry(t)

	// No existence check: the URL is returned untouched.
	url, err := d.svc.ResolveMintURL(context.Background(), "https://whatever.example")
	require.NoError(t, err)
	assert.Equal(t, "https://whatever.example", url)
}

func TestMintRegistry_ResolveMintURL_NoTrustedMints(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()

	d.engine.EXPECT().TrustedMints(ctx).Return(nil, nil)

	_, err := d.svc.ResolveMintURL(ctx, "")
	assertAppError(t, err, "NO_TRUSTED_MINTS")
}

func TestMintRegistry_ResolveMintURL_FirstTrustedIsStable(t *testing.T) {
	d := setupRegistry(t)
	ctx := context.Background()

	trusted := []domain.Mint{
		{URL: "https://first.example", Trusted: true},
		{URL: "https://second.example", Trusted: true},
	}
	d.engine.EXPECT().TrustedMints(ctx).Return(trusted, nil).Times(2)

	url1, err := d.svc.ResolveMintURL(ctx, "")
	require.NoError(t, err)
	url2, err := d.svc.ResolveMintURL(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, "https://first.example", url1)
	assert.Equal(t, url1, url2)
}
