package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error_CodeAndMessage(t *testing.T) {
	err := New("NO_TRUSTED_MINTS", "no trusted mints configured", 412)
	assert.Equal(t, "[NO_TRUSTED_MINTS] no trusted mints configured", err.Error())
}

func TestAppError_Error_WithOpContextAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap("MINT_ADD_FAILED", "addMint", "failed to add mint", 502, cause).
		WithContext("mint_url", "https://mint.example").
		WithContext("trusted", true)

	msg := err.Error()
	assert.Contains(t, msg, "[MINT_ADD_FAILED]")
	assert.Contains(t, msg, "addMint:")
	assert.Contains(t, msg, "mint_url=https://mint.example")
	assert.Contains(t, msg, "trusted=true")
	assert.Contains(t, msg, "connection refused")
}

func TestAppError_Error_ContextIsSorted(t *testing.T) {
	err := New("SEND_CASHU_FAILED", "failed", 502).
		WithContext("zebra", 1).
		WithContext("alpha", 2)
	assert.Contains(t, err.Error(), "(alpha=2 zebra=1)")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("db locked")
	err := ErrMintRemoveFailed("https://mint.example", cause)
	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "NO_TRUSTED_MINTS", CodeOf(ErrNoTrustedMints()))
	assert.Equal(t, "", CodeOf(errors.New("plain")))

	// Codes survive fmt wrapping.
	wrapped := fmt.Errorf("outer: %w", ErrWalletNotInitialized())
	assert.Equal(t, "WALLET_NOT_INITIALIZED", CodeOf(wrapped))
}

func TestOperationFailed_CodeDerivedFromOp(t *testing.T) {
	err := OperationFailed("payMeltQuote", errors.New("boom"))
	assert.Equal(t, "PAYMELTQUOTE_FAILED", err.Code)
	assert.Equal(t, "payMeltQuote", err.Op)
}

func TestErrInsufficientBalance_Context(t *testing.T) {
	err := ErrInsufficientBalance(5000, "https://mint.example")
	require.NotNil(t, err.Context)
	assert.Equal(t, uint64(5000), err.Context["amount"])
	assert.Equal(t, "https://mint.example", err.Context["mint_url"])
}
