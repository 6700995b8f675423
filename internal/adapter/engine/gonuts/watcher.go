package gonuts

import (
	"context"
	"time"

	"cashu-wallet-service/internal/core/domain"

	"github.com/elnosh/gonuts/cashu/nuts/nut04"
)

// watch polls pending mint quotes and redeems them as their invoices get
// paid, so minting completes without the caller polling lookup_quote.
func (e *Engine) watch(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.checkPendingQuotes(ctx)
		}
	}
}

func (e *Engine) checkPendingQuotes(ctx context.Context) {
	w, err := e.ready()
	if err != nil {
		return
	}

	pending, err := e.store.ListPendingMintQuotes(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("listing pending mint quotes failed")
		return
	}

	now := uint64(time.Now().Unix())
	for _, quote := range pending {
		if ctx.Err() != nil {
			return
		}
		// Expired quotes are left as-is; the mint will reject them anyway.
		if quote.Expiry > 0 && quote.Expiry < now {
			continue
		}
		// The wallet library only tracks quotes at its current mint.
		if quote.MintURL != e.cfg.CurrentMintURL {
			continue
		}

		state, err := w.MintQuoteState(quote.ID)
		if err != nil {
			e.log.Debug().Err(err).Str("quote_id", quote.ID).Msg("mint quote state check failed")
			continue
		}

		if quote.State == domain.MintQuoteUnpaid && state.State != nut04.Unpaid {
			if err := e.store.UpdateMintQuoteState(ctx, quote.MintURL, quote.ID, domain.MintQuotePaid); err != nil {
				e.log.Warn().Err(err).Str("quote_id", quote.ID).Msg("updating mint quote state failed")
				continue
			}
			e.emit(domain.Event{
				Kind:    domain.EventQuoteStateChanged,
				MintURL: quote.MintURL,
				QuoteID: quote.ID,
				Detail:  string(domain.MintQuotePaid),
			})
		}

		if state.State == nut04.Paid {
			if _, err := e.RedeemMintQuote(ctx, quote.MintURL, quote.ID); err != nil {
				e.log.Warn().Err(err).Str("quote_id", quote.ID).Msg("auto-redeeming mint quote failed")
			} else {
				e.log.Info().Str("quote_id", quote.ID).Msg("mint quote auto-redeemed")
			}
		}
	}
}
