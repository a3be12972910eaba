package testutil

import (
	zkproofconfig "github.com/weisyn/zkbridge/internal/config/zkproof"
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/log"
)

// ==================== 测试辅助函数 ====================

// NewTestLogger 创建测试用日志器
func NewTestLogger() log.Logger {
	return &MockLogger{}
}

// NewTestZKProofOptions 创建指定方案和曲线的测试配置
//
// 其余字段保持默认值，引擎日志在测试中始终屏蔽。
func NewTestZKProofOptions(scheme, curve string) *zkproofconfig.ZKProofOptions {
	options := zkproofconfig.New(nil).Options()
	options.ProvingScheme = scheme
	options.Curve = curve
	options.SilenceEngineLogs = true
	return options
}

// NewTestConfigProvider 创建携带指定ZK证明配置的配置提供者
func NewTestConfigProvider(scheme, curve string) *MockConfigProvider {
	return &MockConfigProvider{
		ZKProofOptions: NewTestZKProofOptions(scheme, curve),
	}
}
