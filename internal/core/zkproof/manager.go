package zkproof

import (
	"context"

	// 公共接口依赖
	"github.com/weisyn/zkbridge/pkg/interfaces/config"
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/zkbridge/pkg/types"

	// 内部配置
	zkproofconfig "github.com/weisyn/zkbridge/internal/config/zkproof"
)

// Manager 零知识证明工作流管理器
//
// 🎯 **设计理念**：薄实现，专注依赖注入和接口协调
// 🏗️ **架构原则**：Manager只做依赖管理，业务逻辑委托给子组件
type Manager struct {
	// ==================== 密码学服务 ====================
	hashManager crypto.HashManager // 哈希计算服务

	// ==================== 基础设施服务 ====================
	logger         log.Logger      // 日志服务
	configProvider config.Provider // 配置提供者

	// ==================== 专门的子组件（真实实现） ====================
	srsProvider    *CachedSRSProvider     // SRS提供者
	schemeRegistry *ProvingSchemeRegistry // 证明方案注册表
	adapter        *Adapter               // 边界适配器

	// ==================== 配置参数 ====================
	options *zkproofconfig.ZKProofOptions
}

// NewManager 创建零知识证明工作流管理器
//
// 🎯 **依赖注入模式**：通过构造函数注入所有依赖
// 🏗️ **初始化顺序**：基础服务 → 配置 → 子组件 → 组装Manager
func NewManager(
	hashManager crypto.HashManager,
	logger log.Logger,
	configProvider config.Provider,
) *Manager {

	// 从配置提供者解析工作流配置
	options := zkproofconfig.NewFromProvider(configProvider).Options()

	// 创建专门的子组件
	srsProvider := NewCachedSRSProvider(logger)
	schemeRegistry := NewProvingSchemeRegistry(logger, srsProvider)
	adapter := NewAdapter(logger, hashManager, schemeRegistry, options)

	return &Manager{
		// 密码学服务
		hashManager: hashManager,

		// 基础设施服务
		logger:         logger,
		configProvider: configProvider,

		// 专门的子组件
		srsProvider:    srsProvider,
		schemeRegistry: schemeRegistry,
		adapter:        adapter,

		// 配置参数
		options: options,
	}
}

// ============================================================================
//                            边界操作委托
// ============================================================================

// CreateAndVerifyProof 执行完整的"构建-证明-验证-释放"工作流
//
// 委托给边界适配器，语义见 Adapter.CreateAndVerifyProof。
func (m *Manager) CreateAndVerifyProof(ctx context.Context, valid *bool) error {
	return m.adapter.CreateAndVerifyProof(ctx, valid)
}

// Outcome 执行完整工作流并返回结构化结果
func (m *Manager) Outcome(ctx context.Context) types.ProofOutcome {
	return m.adapter.Outcome(ctx)
}

// NewDemoWorkflow 按当前配置为示例电路构建工作流句柄
//
// 供需要直接操作句柄的调用方（密钥导出、合约导出）使用，
// 调用方负责调用 Release。
func (m *Manager) NewDemoWorkflow(ctx context.Context) (*Workflow, error) {
	scheme, err := m.schemeRegistry.GetScheme(m.options.ProvingScheme)
	if err != nil {
		return nil, err
	}

	curveID, err := ResolveCurveID(m.options.Curve)
	if err != nil {
		return nil, err
	}

	return NewWorkflow(ctx, WorkflowConfig{
		Logger:            m.logger,
		HashManager:       m.hashManager,
		Scheme:            scheme,
		CurveID:           curveID,
		Circuit:           &SimpleCircuit{},
		SilenceEngineLogs: m.options.SilenceEngineLogs,
	})
}

// ============================================================================
//                            查询接口
// ============================================================================

// Adapter 返回边界适配器
func (m *Manager) Adapter() *Adapter {
	return m.adapter
}

// SchemeRegistry 返回证明方案注册表
func (m *Manager) SchemeRegistry() *ProvingSchemeRegistry {
	return m.schemeRegistry
}

// ListSupportedSchemes 列出所有支持的证明方案
func (m *Manager) ListSupportedSchemes() []string {
	return m.schemeRegistry.ListSchemes()
}

// IsSchemeSupported 检查证明方案是否支持
func (m *Manager) IsSchemeSupported(schemeName string) bool {
	return m.schemeRegistry.IsSchemeSupported(schemeName)
}

// GetDefaultProvingScheme 返回配置的默认证明方案
func (m *Manager) GetDefaultProvingScheme() string {
	return m.options.ProvingScheme
}

// GetDefaultCurve 返回配置的默认椭圆曲线
func (m *Manager) GetDefaultCurve() string {
	return m.options.Curve
}
