package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// AppError is a structured error carrying a machine-readable code, the
// operation that failed, and a context map with the parameters involved.
type AppError struct {
	Code       string         `json:"error_code"`
	Op         string         `json:"op,omitempty"`
	Message    string         `json:"message"`
	Context    map[string]any `json:"context,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", e.Code)
	if e.Op != "" {
		fmt.Fprintf(&b, " %s:", e.Op)
	}
	fmt.Fprintf(&b, " %s", e.Message)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(pairs, " "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext attaches a parameter to the error's context map.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError, preserving it as cause.
func Wrap(code string, op string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Op:         op,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf extracts the machine code from an error chain, or "" if none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Configuration & Lifecycle ----

func ErrConfiguration(message string, err error) *AppError {
	return Wrap("CONFIGURATION_ERROR", "config", message, http.StatusInternalServerError, err)
}

func ErrWalletNotInitialized() *AppError {
	return New("WALLET_NOT_INITIALIZED", "wallet is not initialized", http.StatusServiceUnavailable)
}

func ErrWalletInitFailed(err error) *AppError {
	return Wrap("WALLET_INIT_FAILED", "initialize", "wallet initialization failed", http.StatusInternalServerError, err)
}

// ---- Mint Management ----

func ErrNoTrustedMints() *AppError {
	return New("NO_TRUSTED_MINTS", "no trusted mints configured and no mint URL provided", http.StatusPreconditionFailed)
}

func ErrMintNotFound(url string) *AppError {
	return New("MINT_NOT_FOUND", "mint not found", http.StatusNotFound).WithContext("mint_url", url)
}

func ErrMintInvalidURL(url string) *AppError {
	return New("MINT_INVALID_URL", "mint URL is not valid", http.StatusBadRequest).WithContext("mint_url", url)
}

func ErrMintAlreadyExists(url string) *AppError {
	return New("MINT_ALREADY_EXISTS", "mint already exists", http.StatusConflict).WithContext("mint_url", url)
}

func ErrMintAddFailed(url string, err error) *AppError {
	return Wrap("MINT_ADD_FAILED", "addMint", "failed to add mint", http.StatusBadGateway, err).WithContext("mint_url", url)
}

func ErrMintTrustFailed(url string, err error) *AppError {
	return Wrap("MINT_TRUST_FAILED", "trustMint", "failed to trust mint", http.StatusBadGateway, err).WithContext("mint_url", url)
}

func ErrMintUntrustFailed(url string, err error) *AppError {
	return Wrap("MINT_UNTRUST_FAILED", "untrustMint", "failed to untrust mint", http.StatusBadGateway, err).WithContext("mint_url", url)
}

func ErrMintRemoveFailed(url string, err error) *AppError {
	return Wrap("MINT_REMOVE_FAILED", "removeMint", "failed to remove mint", http.StatusInternalServerError, err).WithContext("mint_url", url)
}

func ErrMintListFailed(err error) *AppError {
	return Wrap("MINT_LIST_FAILED", "listMints", "failed to list mints", http.StatusBadGateway, err)
}

// ---- Token Operations ----

func ErrReceiveCashuFailed(err error) *AppError {
	return Wrap("RECEIVE_CASHU_FAILED", "receiveTokens", "failed to receive cashu token", http.StatusBadGateway, err)
}

func ErrSendCashuFailed(err error) *AppError {
	return Wrap("SEND_CASHU_FAILED", "sendTokens", "failed to send cashu token", http.StatusBadGateway, err)
}

func ErrInvalidToken() *AppError {
	return New("INVALID_TOKEN", "cashu token could not be decoded", http.StatusBadRequest)
}

func ErrInsufficientBalance(amount uint64, mintURL string) *AppError {
	return New("INSUFFICIENT_BALANCE", "insufficient balance for requested amount", http.StatusPaymentRequired).
		WithContext("amount", amount).
		WithContext("mint_url", mintURL)
}

// ---- Transport boundary ----

func ErrUnauthorized() *AppError {
	return New("UNAUTHORIZED", "caller is not on the allow-list", http.StatusUnauthorized)
}

func ErrRateLimitExceeded() *AppError {
	return New("RATE_LIMITED", "too many requests, slow down", http.StatusTooManyRequests)
}

// ---- Generic wrappers ----

// OperationFailed wraps any other failing operation as <OPERATION>_FAILED.
func OperationFailed(op string, err error) *AppError {
	code := strings.ToUpper(op) + "_FAILED"
	return Wrap(code, op, fmt.Sprintf("operation %s failed", op), http.StatusBadGateway, err)
}

// Validation returns a boundary validation error.
func Validation(message string) *AppError {
	return New("TOOL_EXECUTION_ERROR", message, http.StatusBadRequest)
}
