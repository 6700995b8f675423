package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cashu-wallet-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func TestTool_ReturnsTextAndStructuredForms(t *testing.T) {
	c, w := testContext()

	Tool(c, map[string]any{"total": 350})

	require.Equal(t, http.StatusOK, w.Code)
	var res ToolResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.Contains(t, res.Text, `"total"`)
	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 350, data["total"])
	assert.NotEmpty(t, res.RequestID)
	assert.NotEmpty(t, res.Timestamp)
}

func TestToolList_WrapsUnderNamedKey(t *testing.T) {
	c, w := testContext()

	ToolList(c, "transactions", []string{"a", "b"})

	var res ToolResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Len(t, data["transactions"], 2)
}

func TestToolOK_VoidSuccess(t *testing.T) {
	c, w := testContext()

	ToolOK(c)

	var res ToolResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["success"])
}

func TestError_PrefixesMachineCode(t *testing.T) {
	c, w := testContext()

	Error(c, apperror.ErrNoTrustedMints())

	require.Equal(t, http.StatusPreconditionFailed, w.Code)
	var res ErrorResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "NO_TRUSTED_MINTS", res.ErrorCode)
	assert.Equal(t, "NO_TRUSTED_MINTS: no trusted mints configured and no mint URL provided", res.Message)
}

func TestError_UnknownErrorIs500(t *testing.T) {
	c, w := testContext()

	Error(c, errors.New("kaput"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var res ErrorResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "TOOL_EXECUTION_ERROR", res.ErrorCode)
	assert.Contains(t, res.Message, "TOOL_EXECUTION_ERROR: kaput")
}
