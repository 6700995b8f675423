package service

import (
	"context"
	"errors"
	"net/url"

	"cashu-wallet-service/internal/core/domain"
	"cashu-wallet-service/internal/core/ports"
	"cashu-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// MintRegistryImpl implements ports.MintRegistry. Trust flags gate which
// mints participate in default resolution; untrusting a mint never deletes
// its cached data, only RemoveMint does.
type MintRegistryImpl struct {
	engine ports.WalletEngine
	store  ports.WalletStore
	log    zerolog.Logger
}

// NewMintRegistry creates a new MintRegistryImpl.
func NewMintRegistry(engine ports.WalletEngine, store ports.WalletStore, log zerolog.Logger) *MintRegistryImpl {
	return &MintRegistryImpl{engine: engine, store: store, log: log}
}

// AddMint registers a mint with the engine. Trusted defaults to false at the
// tool boundary when omitted.
func (s *MintRegistryImpl) AddMint(ctx context.Context, mintURL string, trusted bool) (*domain.Mint, error) {
	if err := validateMintURL(mintURL); err != nil {
		return nil, err
	}

	mint, err := s.engine.AddMint(ctx, mintURL, trusted)
	if err != nil {
		if isStructured(err) {
			return nil, err
		}
		return nil, apperror.ErrMintAddFailed(mintURL, err).WithContext("trusted", trusted)
	}

	s.log.Info().Str("mint_url", mint.URL).Bool("trusted", mint.Trusted).Msg("mint added")
	return mint, nil
}

// TrustMint flips the trust flag on. Unknown mints surface from the engine.
func (s *MintRegistryImpl) TrustMint(ctx context.Context, mintURL string) (*domain.Mint, error) {
	mint, err := s.engine.SetMintTrust(ctx, mintURL, true)
	if err != nil {
		if isStructured(err) {
			return nil, err
		}
		return nil, apperror.ErrMintTrustFailed(mintURL, err)
	}
	s.log.Info().Str("mint_url", mintURL).Msg("mint trusted")
	return mint, nil
}

// UntrustMint flips the trust flag off. Proofs and history stay untouched.
func (s *MintRegistryImpl) UntrustMint(ctx context.Context, mintURL string) (*domain.Mint, error) {
	mint, err := s.engine.SetMintTrust(ctx, mintURL, false)
	if err != nil {
		if isStructured(err) {
			return nil, err
		}
		return nil, apperror.ErrMintUntrustFailed(mintURL, err)
	}
	s.log.Info().Str("mint_url", mintURL).Msg("mint untrusted")
	return mint, nil
}

// RemoveMint deletes the mint row via storage directly, bypassing the engine.
// No cascade beyond what storage enforces; if this was the only trusted mint,
// default-mint resolution will fail afterwards.
func (s *MintRegistryImpl) RemoveMint(ctx context.Context, mintURL string) error {
	mint, err := s.store.GetMint(ctx, mintURL)
	if err != nil {
		return apperror.ErrMintRemoveFailed(mintURL, err)
	}
	if mint == nil {
		return apperror.ErrMintNotFound(mintURL)
	}

	if err := s.store.DeleteMint(ctx, mintURL); err != nil {
		return apperror.ErrMintRemoveFailed(mintURL, err)
	}

	if mint.Trusted {
		s.log.Warn().Str("mint_url", mintURL).
			Msg("removed a trusted mint; default mint resolution may now fail")
	} else {
		s.log.Info().Str("mint_url", mintURL).Msg("mint removed")
	}
	return nil
}

// ListMints returns the filtered projection plus counts computed over the
// unfiltered set. An empty filter means all.
func (s *MintRegistryImpl) ListMints(ctx context.Context, filter domain.MintFilter) (*domain.MintList, error) {
	mints, err := s.engine.ListMints(ctx)
	if err != nil {
		return nil, apperror.ErrMintListFailed(err)
	}

	list := &domain.MintList{Mints: []domain.Mint{}, Total: len(mints)}
	for _, m := range mints {
		if m.Trusted {
			list.Trusted++
		} else {
			list.Untrusted++
		}
		switch filter {
		case domain.MintFilterTrusted:
			if !m.Trusted {
				continue
			}
		case domain.MintFilterUntrusted:
			if m.Trusted {
				continue
			}
		}
		list.Mints = append(list.Mints, m)
	}
	return list, nil
}

// ResolveMintURL returns mintURL verbatim when given; an invalid URL surfaces
// only when used downstream. When omitted, the first trusted mint in the
// store's stable enumeration order wins.
func (s *MintRegistryImpl) ResolveMintURL(ctx context.Context, mintURL string) (string, error) {
	if mintURL != "" {
		return mintURL, nil
	}

	trusted, err := s.engine.TrustedMints(ctx)
	if err != nil {
		return "", apperror.ErrMintListFailed(err)
	}
	if len(trusted) == 0 {
		return "", apperror.ErrNoTrustedMints()
	}
	return trusted[0].URL, nil
}

func validateMintURL(mintURL string) error {
	u, err := url.Parse(mintURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperror.ErrMintInvalidURL(mintURL)
	}
	return nil
}

// isStructured reports whether err already carries a machine code and should
// cross the boundary unwrapped.
func isStructured(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr)
}
