package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cashu-wallet-service/internal/core/domain"

	"github.com/google/uuid"
)

// WalletStore implements ports.WalletStore on a local SQLite database.
type WalletStore struct {
	db *sql.DB
}

// NewWalletStore creates a new WalletStore.
func NewWalletStore(db *sql.DB) *WalletStore {
	return &WalletStore{db: db}
}

// GetMint fetches a mint by URL, returning (nil, nil) when unknown.
func (s *WalletStore) GetMint(ctx context.Context, url string) (*domain.Mint, error) {
	query := `SELECT url, trusted, last_checked FROM mints WHERE url = ?`

	m := &domain.Mint{}
	err := s.db.QueryRowContext(ctx, query, url).Scan(&m.URL, &m.Trusted, &m.LastChecked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mint: %w", err)
	}
	return m, nil
}

// SaveMint inserts or replaces a mint row.
func (s *WalletStore) SaveMint(ctx context.Context, mint *domain.Mint) error {
	query := `INSERT INTO mints (url, trusted, last_checked) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET trusted = excluded.trusted, last_checked = excluded.last_checked`

	if _, err := s.db.ExecContext(ctx, query, mint.URL, mint.Trusted, mint.LastChecked); err != nil {
		return fmt.Errorf("save mint: %w", err)
	}
	return nil
}

// UpdateMintTrust flips the trust flag of an existing mint.
func (s *WalletStore) UpdateMintTrust(ctx context.Context, url string, trusted bool) error {
	query := `UPDATE mints SET trusted = ?, last_checked = ? WHERE url = ?`

	res, err := s.db.ExecContext(ctx, query, trusted, time.Now().UTC(), url)
	if err != nil {
		return fmt.Errorf("update mint trust: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("mint not found: %s", url)
	}
	return nil
}

// ListMints returns all known mints in insertion order, so default-mint
// resolution keeps picking the same first-trusted mint across restarts.
func (s *WalletStore) ListMints(ctx context.Context) ([]domain.Mint, error) {
	query := `SELECT url, trusted, last_checked FROM mints ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list mints: %w", err)
	}
	defer rows.Close()

	var mints []domain.Mint
	for rows.Next() {
		var m domain.Mint
		if err := rows.Scan(&m.URL, &m.Trusted, &m.LastChecked); err != nil {
			return nil, fmt.Errorf("scan mint: %w", err)
		}
		mints = append(mints, m)
	}
	return mints, rows.Err()
}

// DeleteMint removes a mint row. Deleting an unknown URL is not an error.
func (s *WalletStore) DeleteMint(ctx context.Context, url string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM mints WHERE url = ?`, url); err != nil {
		return fmt.Errorf("delete mint: %w", err)
	}
	return nil
}

// GetMintQuote fetches a mint quote by (mint, id), returning (nil, nil) on miss.
func (s *WalletStore) GetMintQuote(ctx context.Context, mintURL, quoteID string) (*domain.MintQuote, error) {
	query := `SELECT quote_id, mint_url, amount, state, expiry, request, unit
		FROM mint_quotes WHERE mint_url = ? AND quote_id = ?`

	q := &domain.MintQuote{}
	var amount sql.NullInt64
	err := s.db.QueryRowContext(ctx, query, mintURL, quoteID).Scan(
		&q.ID, &q.MintURL, &amount, &q.State, &q.Expiry, &q.Request, &q.Unit,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mint quote: %w", err)
	}
	if amount.Valid {
		v := uint64(amount.Int64)
		q.Amount = &v
	}
	return q, nil
}

// SaveMintQuote inserts or replaces a mint quote.
func (s *WalletStore) SaveMintQuote(ctx context.Context, quote *domain.MintQuote) error {
	query := `INSERT INTO mint_quotes (quote_id, mint_url, amount, state, expiry, request, unit)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(mint_url, quote_id) DO UPDATE SET
			amount = excluded.amount, state = excluded.state,
			expiry = excluded.expiry, request = excluded.request, unit = excluded.unit`

	var amount sql.NullInt64
	if quote.Amount != nil {
		amount = sql.NullInt64{Int64: int64(*quote.Amount), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, query,
		quote.ID, quote.MintURL, amount, quote.State, quote.Expiry, quote.Request, quote.Unit,
	)
	if err != nil {
		return fmt.Errorf("save mint quote: %w", err)
	}
	return nil
}

// UpdateMintQuoteState advances a mint quote's lifecycle state.
func (s *WalletStore) UpdateMintQuoteState(ctx context.Context, mintURL, quoteID string, state domain.MintQuoteState) error {
	query := `UPDATE mint_quotes SET state = ? WHERE mint_url = ? AND quote_id = ?`

	res, err := s.db.ExecContext(ctx, query, state, mintURL, quoteID)
	if err != nil {
		return fmt.Errorf("update mint quote state: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("mint quote not found: %s", quoteID)
	}
	return nil
}

// ListPendingMintQuotes returns all mint quotes still awaiting redemption
// (UNPAID or PAID), across all mints.
func (s *WalletStore) ListPendingMintQuotes(ctx context.Context) ([]domain.MintQuote, error) {
	query := `SELECT quote_id, mint_url, amount, state, expiry, request, unit
		FROM mint_quotes WHERE state IN (?, ?) ORDER BY mint_url, quote_id`

	rows, err := s.db.QueryContext(ctx, query, domain.MintQuoteUnpaid, domain.MintQuotePaid)
	if err != nil {
		return nil, fmt.Errorf("list pending mint quotes: %w", err)
	}
	defer rows.Close()

	var quotes []domain.MintQuote
	for rows.Next() {
		var q domain.MintQuote
		var amount sql.NullInt64
		if err := rows.Scan(&q.ID, &q.MintURL, &amount, &q.State, &q.Expiry, &q.Request, &q.Unit); err != nil {
			return nil, fmt.Errorf("scan mint quote: %w", err)
		}
		if amount.Valid {
			v := uint64(amount.Int64)
			q.Amount = &v
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// GetMeltQuote fetches a melt quote by (mint, id), returning (nil, nil) on miss.
func (s *WalletStore) GetMeltQuote(ctx context.Context, mintURL, quoteID string) (*domain.MeltQuote, error) {
	query := `SELECT quote_id, mint_url, amount, fee_reserve, state, expiry, preimage, unit, request
		FROM melt_quotes WHERE mint_url = ? AND quote_id = ?`

	q := &domain.MeltQuote{}
	var preimage sql.NullString
	err := s.db.QueryRowContext(ctx, query, mintURL, quoteID).Scan(
		&q.ID, &q.MintURL, &q.Amount, &q.FeeReserve, &q.State, &q.Expiry, &preimage, &q.Unit, &q.Request,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get melt quote: %w", err)
	}
	if preimage.Valid {
		q.Preimage = &preimage.String
	}
	return q, nil
}

// SaveMeltQuote inserts or replaces a melt quote.
func (s *WalletStore) SaveMeltQuote(ctx context.Context, quote *domain.MeltQuote) error {
	query := `INSERT INTO melt_quotes (quote_id, mint_url, amount, fee_reserve, state, expiry, preimage, unit, request)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(mint_url, quote_id) DO UPDATE SET
			amount = excluded.amount, fee_reserve = excluded.fee_reserve,
			state = excluded.state, expiry = excluded.expiry,
			preimage = excluded.preimage, unit = excluded.unit,
			request = excluded.request`

	var preimage sql.NullString
	if quote.Preimage != nil {
		preimage = sql.NullString{String: *quote.Preimage, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, query,
		quote.ID, quote.MintURL, quote.Amount, quote.FeeReserve,
		quote.State, quote.Expiry, preimage, quote.Unit, quote.Request,
	)
	if err != nil {
		return fmt.Errorf("save melt quote: %w", err)
	}
	return nil
}

// UpdateMeltQuote advances a melt quote's state and records the payment
// preimage once known. An empty preimage leaves the stored value untouched.
func (s *WalletStore) UpdateMeltQuote(ctx context.Context, mintURL, quoteID string, state domain.MeltQuoteState, preimage string) error {
	query := `UPDATE melt_quotes SET state = ?, preimage = COALESCE(NULLIF(?, ''), preimage)
		WHERE mint_url = ? AND quote_id = ?`

	res, err := s.db.ExecContext(ctx, query, state, preimage, mintURL, quoteID)
	if err != nil {
		return fmt.Errorf("update melt quote: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("melt quote not found: %s", quoteID)
	}
	return nil
}

// AddHistory appends one immutable history entry. A missing id or timestamp
// is filled in here.
func (s *WalletStore) AddHistory(ctx context.Context, entry *domain.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO history (id, kind, created_at, mint_url, unit, amount, quote_id, token)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID, entry.Kind, entry.CreatedAt, entry.MintURL,
		entry.Unit, entry.Amount, entry.QuoteID, entry.Token,
	)
	if err != nil {
		return fmt.Errorf("add history: %w", err)
	}
	return nil
}

// ListHistory returns history entries most recent first.
func (s *WalletStore) ListHistory(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error) {
	query := `SELECT id, kind, created_at, mint_url, unit, amount, quote_id, token
		FROM history ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.CreatedAt, &e.MintURL, &e.Unit, &e.Amount, &e.QuoteID, &e.Token); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database handle.
func (s *WalletStore) Close() error {
	return s.db.Close()
}
