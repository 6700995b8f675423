package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintFilter_Valid(t *testing.T) {
	assert.True(t, MintFilterAll.Valid())
	assert.True(t, MintFilterTrusted.Valid())
	assert.True(t, MintFilterUntrusted.Valid())
	assert.False(t, MintFilter("").Valid())
	assert.False(t, MintFilter("bogus").Valid())
}

func TestMintQuote_AmountOmittedWhenUnknown(t *testing.T) {
	q := MintQuote{
		ID:      "q1",
		MintURL: "https://mint.example",
		State:   MintQuoteUnpaid,
		Request: "lnbc...",
		Unit:    "sat",
	}
	b, err := json.Marshal(q)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"amount"`)

	amount := uint64(1000)
	q.Amount = &amount
	b, err = json.Marshal(q)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"amount":1000`)
}

func TestMeltQuote_PreimageOmittedUntilPaid(t *testing.T) {
	q := MeltQuote{
		ID:         "q2",
		MintURL:    "https://mint.example",
		Amount:     2100,
		FeeReserve: 21,
		State:      MeltQuoteUnpaid,
		Unit:       "sat",
	}
	b, err := json.Marshal(q)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "payment_preimage")
	assert.Contains(t, string(b), `"fee_reserve":21`)
}
