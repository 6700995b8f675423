package domain

import "time"

// Mint is a known Cashu mint, identified by URL. Trust is the sole
// admission-control gate: untrusted mints are excluded from default-mint
// resolution and convenience paths unless addressed explicitly by URL.
type Mint struct {
	URL         string    `json:"mintUrl"`
	Trusted     bool      `json:"trusted"`
	LastChecked time.Time `json:"lastChecked"`
}

// MintFilter selects which mints a listing returns.
type MintFilter string

const (
	MintFilterAll       MintFilter = "all"
	MintFilterTrusted   MintFilter = "trusted"
	MintFilterUntrusted MintFilter = "untrusted"
)

// Valid reports whether the filter is one of the known values.
func (f MintFilter) Valid() bool {
	switch f {
	case MintFilterAll, MintFilterTrusted, MintFilterUntrusted:
		return true
	}
	return false
}

// MintList is a filtered mint projection plus counts computed over the
// unfiltered set.
type MintList struct {
	Mints     []Mint `json:"mints"`
	Total     int    `json:"total"`
	Trusted   int    `json:"trusted"`
	Untrusted int    `json:"untrusted"`
}
