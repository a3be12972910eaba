// Package config provides configuration provider interfaces.
package config

import (
	logconfig "github.com/weisyn/zkbridge/internal/config/log"
	zkproofconfig "github.com/weisyn/zkbridge/internal/config/zkproof"
	"github.com/weisyn/zkbridge/pkg/types"
)

// Provider 配置提供者接口
type Provider interface {
	// === 核心配置 ===

	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetZKProof 获取ZK证明工作流配置
	GetZKProof() *zkproofconfig.ZKProofOptions

	// === 环境配置 ===

	// GetEnvironment 获取运行环境
	// 返回运行环境字符串：dev | test | prod
	// 未配置时默认为 "prod"（安全优先）
	GetEnvironment() string

	// === 原始配置访问 ===

	// GetAppConfig 获取原始应用配置（用于验证等场景）
	GetAppConfig() *types.AppConfig
}
