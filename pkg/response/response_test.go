package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

func perform(t *testing.T, h gin.HandlerFunc) Response {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	resp := perform(t, func(c *gin.Context) { Success(c, gin.H{"id": 1}) })
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)
	assert.Equal(t, map[string]interface{}{"id": float64(1)}, resp.Data)
}

func TestError(t *testing.T) {
	t.Run("业务错误", func(t *testing.T) {
		resp := perform(t, func(c *gin.Context) {
			Error(c, apperrors.New(apperrors.ErrCodeNotEnoughStock, "库存不足"))
		})
		assert.Equal(t, apperrors.ErrCodeNotEnoughStock, resp.Code)
		assert.Equal(t, "库存不足", resp.Message)
		assert.Nil(t, resp.Data)
	})

	t.Run("内部错误不暴露细节", func(t *testing.T) {
		resp := perform(t, func(c *gin.Context) { Error(c, errors.New("dial tcp: refused")) })
		assert.Equal(t, apperrors.ErrCodeInternal, resp.Code)
		assert.Equal(t, "系统内部错误", resp.Message)
	})
}

func TestSuccessWithPage(t *testing.T) {
	t.Run("分页字段", func(t *testing.T) {
		resp := perform(t, func(c *gin.Context) { SuccessWithPage(c, []int{1, 2}, 10, 100) })
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(10), data["offset"])
		assert.Equal(t, float64(100), data["limit"])
		assert.Equal(t, float64(2), data["count"])
		assert.Equal(t, []interface{}{float64(1), float64(2)}, data["list"])
	})

	t.Run("空列表输出空数组", func(t *testing.T) {
		resp := perform(t, func(c *gin.Context) { SuccessWithPage[string](c, nil, 0, 100) })
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, []interface{}{}, data["list"])
		assert.Equal(t, float64(0), data["count"])
	})
}
