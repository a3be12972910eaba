// Package testutil 提供证明工作流模块测试的辅助工具
//
// 🧪 **测试辅助工具包**
//
// 本包提供测试所需的 Mock 对象和辅助函数，用于简化测试代码编写。
// 本包不包含依赖具体组件的辅助函数，避免循环依赖；
// 具体组件的测试辅助（如脚本化证明方案）在各自的测试文件中定义。
package testutil

import (
	"crypto/sha256"
	"sync"

	"go.uber.org/zap"

	logconfig "github.com/weisyn/zkbridge/internal/config/log"
	zkproofconfig "github.com/weisyn/zkbridge/internal/config/zkproof"
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/zkbridge/pkg/types"
)

// ==================== Mock 对象 ====================

// MockLogger 统一的日志Mock实现
//
// ✅ **设计原则**：最小实现，所有方法返回空值，不记录日志
// 📋 **使用场景**：80%的测试用例，不需要验证日志调用
type MockLogger struct{}

func (m *MockLogger) Debug(msg string)                          {}
func (m *MockLogger) Debugf(format string, args ...interface{}) {}
func (m *MockLogger) Info(msg string)                           {}
func (m *MockLogger) Infof(format string, args ...interface{})  {}
func (m *MockLogger) Warn(msg string)                           {}
func (m *MockLogger) Warnf(format string, args ...interface{})  {}
func (m *MockLogger) Error(msg string)                          {}
func (m *MockLogger) Errorf(format string, args ...interface{}) {}
func (m *MockLogger) Fatal(msg string)                          {}
func (m *MockLogger) Fatalf(format string, args ...interface{}) {}
func (m *MockLogger) With(args ...interface{}) log.Logger       { return m }
func (m *MockLogger) Sync() error                               { return nil }
func (m *MockLogger) GetZapLogger() *zap.Logger                 { return zap.NewNop() }

// BehavioralMockLogger 行为Mock日志（记录调用）
//
// ✅ **设计原则**：记录所有日志调用，用于验证日志行为
// 📋 **使用场景**：需要验证日志调用的测试
type BehavioralMockLogger struct {
	logs  []string
	mutex sync.Mutex
}

func (m *BehavioralMockLogger) append(entry string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.logs = append(m.logs, entry)
}

func (m *BehavioralMockLogger) Debug(msg string) { m.append("DEBUG: " + msg) }
func (m *BehavioralMockLogger) Debugf(format string, args ...interface{}) {
	m.append("DEBUG: " + format)
}
func (m *BehavioralMockLogger) Info(msg string) { m.append("INFO: " + msg) }
func (m *BehavioralMockLogger) Infof(format string, args ...interface{}) {
	m.append("INFO: " + format)
}
func (m *BehavioralMockLogger) Warn(msg string) { m.append("WARN: " + msg) }
func (m *BehavioralMockLogger) Warnf(format string, args ...interface{}) {
	m.append("WARN: " + format)
}
func (m *BehavioralMockLogger) Error(msg string) { m.append("ERROR: " + msg) }
func (m *BehavioralMockLogger) Errorf(format string, args ...interface{}) {
	m.append("ERROR: " + format)
}
func (m *BehavioralMockLogger) Fatal(msg string) { m.append("FATAL: " + msg) }
func (m *BehavioralMockLogger) Fatalf(format string, args ...interface{}) {
	m.append("FATAL: " + format)
}
func (m *BehavioralMockLogger) With(args ...interface{}) log.Logger { return m }
func (m *BehavioralMockLogger) Sync() error                         { return nil }
func (m *BehavioralMockLogger) GetZapLogger() *zap.Logger           { return zap.NewNop() }

// Logs 返回记录的日志条目副本
func (m *BehavioralMockLogger) Logs() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	result := make([]string, len(m.logs))
	copy(result, m.logs)
	return result
}

// MockHashManager 统一的哈希管理器Mock实现
//
// ✅ **设计原则**：使用真实的SHA256算法，确保哈希计算正确
// 📋 **使用场景**：所有需要哈希计算的测试
type MockHashManager struct{}

func (m *MockHashManager) SHA256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

func (m *MockHashManager) DoubleSHA256(data []byte) []byte {
	first := m.SHA256(data)
	return m.SHA256(first)
}

func (m *MockHashManager) SHA3_256(data []byte) []byte {
	return m.SHA256(data) // 简化实现，使用SHA256
}

// MockConfigProvider 统一的配置提供者Mock实现
//
// ✅ **设计原则**：返回默认配置，支持按需覆盖ZK证明配置
// 📋 **使用场景**：不需要读取真实配置文件的测试
type MockConfigProvider struct {
	// ZKProofOptions 覆盖的ZK证明配置，为nil时返回默认配置
	ZKProofOptions *zkproofconfig.ZKProofOptions
}

func (m *MockConfigProvider) GetLog() *logconfig.LogOptions {
	return logconfig.New(nil).Options()
}

func (m *MockConfigProvider) GetZKProof() *zkproofconfig.ZKProofOptions {
	if m.ZKProofOptions != nil {
		return m.ZKProofOptions
	}
	return zkproofconfig.New(nil).Options()
}

func (m *MockConfigProvider) GetEnvironment() string {
	return "test"
}

func (m *MockConfigProvider) GetAppConfig() *types.AppConfig {
	return nil
}
