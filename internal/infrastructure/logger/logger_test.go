package logger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/jpashop/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	t.Run("JSON输出到文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		l, err := New(config.LogConfig{Level: "warn", Format: "json", Output: path})
		require.NoError(t, err)

		l.Info("不应输出")
		l.Warn("库存不足", "item_id", 1)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(data, &entry))
		assert.Equal(t, "库存不足", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.EqualValues(t, 1, entry["item_id"])
	})

	t.Run("无法打开文件", func(t *testing.T) {
		_, err := New(config.LogConfig{Output: filepath.Join(t.TempDir(), "missing", "app.log")})
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
