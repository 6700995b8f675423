package service

import (
	"sync"

	"cashu-wallet-service/pkg/apperror"

	"github.com/tyler-smith/go-bip39"
)

// Bip39KeyProvider derives the 64-byte wallet seed from a BIP-39 mnemonic.
// Derivation is lazy: the seed is materialized on first request and cached,
// so repeated calls return the same bytes without re-deriving.
type Bip39KeyProvider struct {
	mu       sync.Mutex
	mnemonic string
	seed     []byte
}

// NewBip39KeyProvider creates a key provider for the given mnemonic. The
// mnemonic is not validated here; Materialize rejects invalid phrases.
func NewBip39KeyProvider(mnemonic string) *Bip39KeyProvider {
	return &Bip39KeyProvider{mnemonic: mnemonic}
}

// Materialize derives the seed bytes, caching them for subsequent calls.
func (p *Bip39KeyProvider) Materialize() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.seed != nil {
		return p.seed, nil
	}
	if !bip39.IsMnemonicValid(p.mnemonic) {
		return nil, apperror.ErrConfiguration("wallet mnemonic is not a valid BIP-39 phrase", nil)
	}
	p.seed = bip39.NewSeed(p.mnemonic, "")
	return p.seed, nil
}

// Mnemonic returns the phrase backing the derived seed. The wallet engine
// uses it to seed its own key store on a fresh wallet directory.
func (p *Bip39KeyProvider) Mnemonic() string {
	return p.mnemonic
}

// Zero clears the cached seed material. A later Materialize re-derives it.
func (p *Bip39KeyProvider) Zero() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.seed {
		p.seed[i] = 0
	}
	p.seed = nil
}
