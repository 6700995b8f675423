package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cashu-wallet-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ToolResult is the uniform success envelope for every tool call. Each result
// is returned twice: as a human-readable text rendering and as structured data.
type ToolResult struct {
	Text      string `json:"text"`
	Data      any    `json:"data"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// ErrorResult is the uniform error envelope. Message carries the machine code
// prefixed as "<CODE>: <message>" when the failing error had one.
type ErrorResult struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Tool sends a 200 response with the result in both text and structured form.
func Tool(c *gin.Context, data any) {
	c.JSON(http.StatusOK, ToolResult{
		Text:      renderText(data),
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ToolList sends a 200 response with an array result wrapped under a named key.
func ToolList(c *gin.Context, key string, items any) {
	Tool(c, map[string]any{key: items})
}

// ToolOK sends the void-success envelope.
func ToolOK(c *gin.Context) {
	Tool(c, map[string]any{"success": true})
}

// Error sends an error response. Structured errors keep their code and HTTP
// status; the outward message is prefixed with the code. Anything else is a 500.
func Error(c *gin.Context, err error) {
	now := time.Now().UTC().Format(time.RFC3339)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResult{
			ErrorCode: appErr.Code,
			Message:   appErr.Code + ": " + appErr.Message,
			RequestID: getRequestID(c),
			Timestamp: now,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResult{
		ErrorCode: "TOOL_EXECUTION_ERROR",
		Message:   "TOOL_EXECUTION_ERROR: " + err.Error(),
		RequestID: getRequestID(c),
		Timestamp: now,
	})
}

// renderText produces the human-readable form of a tool result.
func renderText(data any) string {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "unserializable result"
	}
	return string(b)
}

// getRequestID retrieves the request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
