package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	logconfig "github.com/weisyn/zkbridge/internal/config/log"
	"github.com/weisyn/zkbridge/pkg/types"
)

// newFileLogConfig 构建仅输出到文件的日志配置
func newFileLogConfig(t *testing.T, level string) (*logconfig.Config, string) {
	t.Helper()

	logPath := filepath.Join(t.TempDir(), "test.log")
	levelValue := level
	filePath := logPath

	config := logconfig.New(&types.UserLogConfig{
		Level:    &levelValue,
		FilePath: &filePath,
	})
	// 测试只关心文件输出
	config.Options().ToConsole = false
	return config, logPath
}

// TestNew 测试日志记录器创建
func TestNew(t *testing.T) {
	config, _ := newFileLogConfig(t, "info")

	logger, err := New(config)
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.NotNil(t, logger.GetZapLogger())
}

// TestLogger_FileOutput 测试日志写入文件
func TestLogger_FileOutput(t *testing.T) {
	config, logPath := newFileLogConfig(t, "info")

	logger, err := New(config)
	require.NoError(t, err)

	logger.Info("文件输出测试")
	logger.Infof("格式化输出: %d", 42)
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	content := string(data)
	require.Contains(t, content, "文件输出测试")
	require.Contains(t, content, "格式化输出: 42")

	// 文件输出为JSON编码
	firstLine := strings.SplitN(content, "\n", 2)[0]
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(firstLine), &entry))
	require.Equal(t, "info", entry["level"])
}

// TestLogger_LevelFiltering 测试日志级别过滤
func TestLogger_LevelFiltering(t *testing.T) {
	config, logPath := newFileLogConfig(t, "warn")

	logger, err := New(config)
	require.NoError(t, err)

	logger.Debug("调试消息")
	logger.Info("信息消息")
	logger.Warn("警告消息")
	logger.Error("错误消息")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	content := string(data)
	require.NotContains(t, content, "调试消息")
	require.NotContains(t, content, "信息消息")
	require.Contains(t, content, "警告消息")
	require.Contains(t, content, "错误消息")
}

// TestLogger_With 测试附加字段
func TestLogger_With(t *testing.T) {
	config, logPath := newFileLogConfig(t, "info")

	logger, err := New(config)
	require.NoError(t, err)

	childLogger := logger.With("module", "zkproof")
	require.NotNil(t, childLogger)

	childLogger.Info("带字段的日志")
	require.NoError(t, childLogger.Sync())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "zkproof")
}

// TestSetLoggerAndGetLogger 测试全局日志记录器管理
func TestSetLoggerAndGetLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	config, _ := newFileLogConfig(t, "info")
	logger, err := New(config)
	require.NoError(t, err)

	SetLogger(logger)
	require.Same(t, logger, GetLogger())

	// nil设置为空操作
	SetLogger(nil)
	require.Same(t, logger, GetLogger())
}
