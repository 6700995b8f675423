package gonuts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MintClient is a minimal REST client for the subset of the mint API the
// engine needs outside the wallet library: reachability checks and melt
// quote creation.
type MintClient struct {
	http *http.Client
}

// NewMintClient creates a new MintClient.
func NewMintClient(timeout time.Duration) *MintClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MintClient{http: &http.Client{Timeout: timeout}}
}

type mintInfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type meltQuoteRequest struct {
	Request string `json:"request"`
	Unit    string `json:"unit"`
}

type meltQuoteResponse struct {
	Quote      string `json:"quote"`
	Amount     uint64 `json:"amount"`
	FeeReserve uint64 `json:"fee_reserve"`
	State      string `json:"state"`
	Expiry     uint64 `json:"expiry"`
}

// Info fetches the mint's self-description, doubling as a reachability probe.
func (c *MintClient) Info(ctx context.Context, mintURL string) (*mintInfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(mintURL, "/")+"/v1/info", nil)
	if err != nil {
		return nil, fmt.Errorf("building mint info request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching mint info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mint info returned status %d", resp.StatusCode)
	}

	var info mintInfoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding mint info: %w", err)
	}
	return &info, nil
}

// CreateMeltQuote requests a bolt11 melt quote so the full quote (amount,
// fee reserve, expiry) is known before any payment is attempted.
func (c *MintClient) CreateMeltQuote(ctx context.Context, mintURL, invoice, unit string) (*meltQuoteResponse, error) {
	body, err := json.Marshal(meltQuoteRequest{Request: invoice, Unit: unit})
	if err != nil {
		return nil, fmt.Errorf("encoding melt quote request: %w", err)
	}

	url := strings.TrimRight(mintURL, "/") + "/v1/melt/quote/bolt11"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building melt quote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting melt quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("melt quote returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var quote meltQuoteResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&quote); err != nil {
		return nil, fmt.Errorf("decoding melt quote: %w", err)
	}
	return &quote, nil
}
