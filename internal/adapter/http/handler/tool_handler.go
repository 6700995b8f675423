package handler

import (
	"net/http"

	"cashu-wallet-service/internal/adapter/http/dto"
	"cashu-wallet-service/internal/core/domain"
	"cashu-wallet-service/internal/core/ports"
	"cashu-wallet-service/internal/platform/metrics"
	"cashu-wallet-service/pkg/apperror"
	"cashu-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

// ToolHandler exposes the wallet tool surface.
type ToolHandler struct {
	walletSvc ports.WalletService
	registry  ports.MintRegistry
	quoteSvc  ports.QuoteService
	metrics   *metrics.Metrics // nil = metrics disabled
}

// NewToolHandler creates a new ToolHandler.
func NewToolHandler(walletSvc ports.WalletService, registry ports.MintRegistry, quoteSvc ports.QuoteService, m *metrics.Metrics) *ToolHandler {
	return &ToolHandler{
		walletSvc: walletSvc,
		registry:  registry,
		quoteSvc:  quoteSvc,
		metrics:   m,
	}
}

// PayInvoice handles POST /api/v1/tools/pay_invoice. It creates the melt
// quote and immediately executes payment, returning the final quote.
func (h *ToolHandler) PayInvoice(c *gin.Context) {
	var req dto.PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	quote, err := h.walletSvc.CreateMeltQuote(c.Request.Context(), req.MintURL, req.Invoice)
	if err != nil {
		response.Error(c, err)
		return
	}

	paid, err := h.walletSvc.PayMeltQuote(c.Request.Context(), quote.MintURL, quote.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Tool(c, paid)
}

// MakeInvoice handles POST /api/v1/tools/make_invoice.
func (h *ToolHandler) MakeInvoice(c *gin.Context) {
	var req dto.MakeInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	quote, err := h.walletSvc.CreateMintQuote(c.Request.Context(), req.MintURL, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Tool(c, quote)
}

// LookupQuote handles POST /api/v1/tools/lookup_quote. An unknown quote id is
// a null result, not an error.
func (h *ToolHandler) LookupQuote(c *gin.Context) {
	var req dto.LookupQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	status, err := h.quoteSvc.CheckQuoteStatus(c.Request.Context(), req.QuoteID, req.MintURL)
	if err != nil {
		response.Error(c, err)
		return
	}
	if status == nil {
		response.Tool(c, nil)
		return
	}

	response.Tool(c, status)
}

// ListTransactions handles POST /api/v1/tools/list_transactions.
func (h *ToolHandler) ListTransactions(c *gin.Context) {
	var req dto.ListTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if req.Limit <= 0 {
		req.Limit = defaultHistoryLimit
	}
	if req.Limit > maxHistoryLimit {
		req.Limit = maxHistoryLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	entries, err := h.walletSvc.History(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}

	response.ToolList(c, "transactions", entries)
}

// GetBalance handles POST /api/v1/tools/get_balance.
func (h *ToolHandler) GetBalance(c *gin.Context) {
	result, err := h.walletSvc.GetBalance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveBalances(result.Breakdown)
	}
	response.Tool(c, result)
}

// AddMint handles POST /api/v1/tools/add_mint.
func (h *ToolHandler) AddMint(c *gin.Context) {
	var req dto.AddMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	trusted := req.Trusted != nil && *req.Trusted
	mint, err := h.registry.AddMint(c.Request.Context(), req.MintURL, trusted)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Tool(c, mint)
}

// ListMints handles POST /api/v1/tools/list_mints.
func (h *ToolHandler) ListMints(c *gin.Context) {
	req := dto.ListMintsRequest{Filter: string(domain.MintFilterAll)}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	if req.Filter == "" {
		req.Filter = string(domain.MintFilterAll)
	}

	filter := domain.MintFilter(req.Filter)
	if !filter.Valid() {
		response.Error(c, apperror.Validation("filter must be one of all, trusted, untrusted"))
		return
	}

	list, err := h.registry.ListMints(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Tool(c, list)
}

// TrustMint handles POST /api/v1/tools/trust_mint.
func (h *ToolHandler) TrustMint(c *gin.Context) {
	var req dto.MintURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	mint, err := h.registry.TrustMint(c.Request.Context(), req.MintURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Tool(c, mint)
}

// UntrustMint handles POST /api/v1/tools/untrust_mint.
func (h *ToolHandler) UntrustMint(c *gin.Context) {
	var req dto.MintURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	mint, err := h.registry.UntrustMint(c.Request.Context(), req.MintURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Tool(c, mint)
}

// RemoveMint handles POST /api/v1/tools/remove_mint.
func (h *ToolHandler) RemoveMint(c *gin.Context) {
	var req dto.MintURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.registry.RemoveMint(c.Request.Context(), req.MintURL); err != nil {
		response.Error(c, err)
		return
	}

	response.ToolOK(c)
}

// ReceiveCashu handles POST /api/v1/tools/receive_cashu.
func (h *ToolHandler) ReceiveCashu(c *gin.Context) {
	var req dto.ReceiveCashuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.ReceiveTokens(c.Request.Context(), req.Token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Tool(c, result)
}

// SendCashu handles POST /api/v1/tools/send_cashu.
func (h *ToolHandler) SendCashu(c *gin.Context) {
	var req dto.SendCashuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.SendTokens(c.Request.Context(), req.Amount, req.MintURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Tool(c, result)
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Healthy(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
