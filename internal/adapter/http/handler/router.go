package handler

import (
	"net/http"
	"time"

	"cashu-wallet-service/internal/adapter/http/middleware"
	redisStore "cashu-wallet-service/internal/adapter/storage/redis"
	"cashu-wallet-service/internal/core/ports"
	"cashu-wallet-service/internal/platform/metrics"
	"cashu-wallet-service/pkg/apperror"
	"cashu-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	MintRegistry   ports.MintRegistry
	QuoteSvc       ports.QuoteService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Metrics // nil = metrics disabled
	AllowedPubkeys []string         // empty = allow all callers
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies SQLite + Redis when configured)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Per-tool outcome metrics; noop when metrics are disabled.
	instrument := func(tool string) gin.HandlerFunc {
		if deps.Metrics == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return func(c *gin.Context) {
			start := time.Now()
			c.Next()
			status := "ok"
			if c.Writer.Status() >= 400 {
				status = "error"
			}
			deps.Metrics.ToolCalls.WithLabelValues(tool, status).Inc()
			deps.Metrics.ToolDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
		}
	}

	h := NewToolHandler(deps.WalletSvc, deps.MintRegistry, deps.QuoteSvc, deps.Metrics)
	auth := middleware.PubkeyAuth(deps.AllowedPubkeys, deps.Logger)

	tools := r.Group("/api/v1/tools", auth)
	{
		tools.POST("/pay_invoice", rl("spend"), instrument("pay_invoice"), h.PayInvoice)
		tools.POST("/make_invoice", rl("wallet"), instrument("make_invoice"), h.MakeInvoice)
		tools.POST("/lookup_quote", rl("query"), instrument("lookup_quote"), h.LookupQuote)
		tools.POST("/list_transactions", rl("query"), instrument("list_transactions"), h.ListTransactions)
		tools.POST("/get_balance", rl("query"), instrument("get_balance"), h.GetBalance)
		tools.POST("/add_mint", rl("mints"), instrument("add_mint"), h.AddMint)
		tools.POST("/list_mints", rl("query"), instrument("list_mints"), h.ListMints)
		tools.POST("/trust_mint", rl("mints"), instrument("trust_mint"), h.TrustMint)
		tools.POST("/untrust_mint", rl("mints"), instrument("untrust_mint"), h.UntrustMint)
		tools.POST("/remove_mint", rl("mints"), instrument("remove_mint"), h.RemoveMint)
		tools.POST("/receive_cashu", rl("wallet"), instrument("receive_cashu"), h.ReceiveCashu)
		tools.POST("/send_cashu", rl("spend"), instrument("send_cashu"), h.SendCashu)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.New("NOT_FOUND", "no such route", http.StatusNotFound))
	})

	return r
}
