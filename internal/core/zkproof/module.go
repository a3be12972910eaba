// Package zkproof 提供零知识证明工作流的fx模块装配
//
// 📋 **证明工作流模块 (Proof Workflow Module)**
//
// 本包通过fx依赖注入框架，将证明方案注册表、SRS提供者、
// 边界适配器和管理器组织为统一的服务层。
//
// 🔗 **依赖关系**：
// - 基础设施：依赖crypto、log等基础组件
// - 配置：依赖config.Provider提供工作流配置
package zkproof

import (
	"go.uber.org/fx"

	// 公共接口
	"github.com/weisyn/zkbridge/pkg/interfaces/config"
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/log"
)

// ==================== 模块输入依赖 ====================

// ModuleParams 定义证明工作流模块的输入依赖
type ModuleParams struct {
	fx.In

	Logger      log.Logger
	HashManager crypto.HashManager
	Provider    config.Provider
}

// ==================== 模块输出服务 ====================

// ModuleOutput 定义证明工作流模块对外提供的服务
type ModuleOutput struct {
	fx.Out

	Manager *Manager
	Adapter *Adapter
}

// ProvideServices 构建证明工作流服务
func ProvideServices(params ModuleParams) ModuleOutput {
	manager := NewManager(params.HashManager, params.Logger, params.Provider)

	return ModuleOutput{
		Manager: manager,
		Adapter: manager.Adapter(),
	}
}

// Module 返回证明工作流fx模块
func Module() fx.Option {
	return fx.Module("zkproof",
		fx.Provide(ProvideServices),
	)
}
