package service

import (
	"context"
	"errors"
	"testing"

	"cashu-wallet-service/internal/core/domain"
	"cashu-wallet-service/internal/core/ports/mocks"
	"cashu-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type quoteTestDeps struct {
	svc      *QuoteServiceImpl
	store    *mocks.MockWalletStore
	registry *mocks.MockMintRegistry
	ctrl     *gomock.Controller
}

func setupQuotes(t *testing.T) *quoteTestDeps {
	ctrl := gomock.NewController(t)
	d := &quoteTestDeps{
		store:    mocks.NewMockWalletStore(ctrl),
		registry: mocks.NewMockMintRegistry(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewQuoteService(d.store, d.registry, zerolog.Nop())
	return d
}

func TestQuoteService_MintQuoteHit(t *testing.T) {
	d := setupQuotes(t)
	ctx := context.Background()
	amount := uint64(100)

	d.registry.EXPECT().ResolveMintURL(ctx, "https://mint.example").Return("https://mint.example", nil)
	d.store.EXPECT().GetMintQuote(ctx, "https://mint.example", "q1").Return(&domain.MintQuote{
		ID: "q1", MintURL: "https://mint.example", Amount: &amount, State: domain.MintQuotePaid,
	}, nil)

	status, err := d.svc.CheckQuoteStatus(ctx, "q1", "https://mint.example")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "mint", status.Kind)
	require.NotNil(t, status.MintQuote)
	assert.Nil(t, status.MeltQuote)
	assert.Equal(t, domain.MintQuotePaid, status.MintQuote.State)
}

func TestQuoteService_MeltQuoteFallback(t *testing.T) {
	d := setupQuotes(t)
	ctx := context.Background()

	d.registry.EXPECT().ResolveMintURL(ctx, "https://mint.example").Return("https://mint.example", nil)
	d.store.EXPECT().GetMintQuote(ctx, "https://mint.example", "mq1").Return(nil, nil)
	d.store.EXPECT().GetMeltQuote(ctx, "https://mint.example", "mq1").Return(&domain.MeltQuote{
		ID: "mq1", MintURL: "https://mint.example", Amount: 21, State: domain.MeltQuotePaid,
	}, nil)

	status, err := d.svc.CheckQuoteStatus(ctx, "mq1", "https://mint.example")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "melt", status.Kind)
	require.NotNil(t, status.MeltQuote)
	assert.Nil(t, status.MintQuote)
}

func TestQuoteService_MintNamespaceWinsOnCollision(t *testing.T) {
	d := setupQuotes(t)
	ctx := context.Background()

	// Same id exists in both namespaces; the melt lookup must never run.
	d.registry.EXPECT().ResolveMintURL(ctx, "https://mint.example").Return("https://mint.example", nil)
	d.store.EXPECT().GetMintQuote(ctx, "https://mint.example", "shared").Return(&domain.MintQuote{
		ID: "shared", MintURL: "https://mint.example", State: domain.MintQuoteUnpaid,
	}, nil)

	status, err := d.svc.CheckQuoteStatus(ctx, "shared", "https://mint.example")
	require.NoError(t, err)
	assert.Equal(t, "mint", status.Kind)
}

func TestQuoteService_MissReturnsNilNotError(t *testing.T) {
	d := setupQuotes(t)
	ctx := context.Background()

	d.registry.EXPECT().ResolveMintURL(ctx, "https://mint.example").Return("https://mint.example", nil)
	d.store.EXPECT().GetMintQuote(ctx, "https://mint.example", "unknown").Return(nil, nil)
	d.store.EXPECT().GetMeltQuote(ctx, "https://mint.example", "unknown").Return(nil, nil)

	status, err := d.svc.CheckQuoteStatus(ctx, "unknown", "https://mint.example")
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestQuoteService_ResolvesDefaultMint(t *testing.T) {
	d := setupQuotes(t)
	ctx := context.Background()

	d.registry.EXPECT().ResolveMintURL(ctx, "").Return("https://trusted.example", nil)
	d.store.EXPECT().GetMintQuote(ctx, "https://trusted.example", "q1").Return(&domain.MintQuote{
		ID: "q1", MintURL: "https://trusted.example", State: domain.MintQuoteIssued,
	}, nil)

	status, err := d.svc.CheckQuoteStatus(ctx, "q1", "")
	require.NoError(t, err)
	assert.Equal(t, "https://trusted.example", status.MintQuote.MintURL)
}

func TestQuoteService_NoTrustedMintsSurfaces(t *testing.T) {
	d := setupQuotes(t)
	ctx := context.Background()

	d.registry.EXPECT().ResolveMintURL(ctx, "").Return("", apperror.ErrNoTrustedMints())

	_, err := d.svc.CheckQuoteStatus(ctx, "q1", "")
	assertAppError(t, err, "NO_TRUSTED_MINTS")
}

func TestQuoteService_StorageFailureWrapped(t *testing.T) {
	d := setupQuotes(t)
	ctx := context.Background()

	d.registry.EXPECT().ResolveMintURL(ctx, "https://mint.example").Return("https://mint.example", nil)
	d.store.EXPECT().GetMintQuote(ctx, "https://mint.example", "q1").Return(nil, errors.New("db locked"))

	_, err := d.svc.CheckQuoteStatus(ctx, "q1", "https://mint.example")
	assertAppError(t, err, "LOOKUPQUOTE_FAILED")
}
