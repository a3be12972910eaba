// Package config 提供应用配置管理功能
package config

import (
	"encoding/json"
	"fmt"
	"os"

	logconfig "github.com/weisyn/zkbridge/internal/config/log"
	zkproofconfig "github.com/weisyn/zkbridge/internal/config/zkproof"
	configinterface "github.com/weisyn/zkbridge/pkg/interfaces/config"
	"github.com/weisyn/zkbridge/pkg/types"
)

// 确保 Provider 实现了 config.Provider 接口
var _ configinterface.Provider = (*Provider)(nil)

// Provider 配置提供者实现
//
// 🎯 **设计理念**：配置在构造时一次性解析完成，之后只读；
// 各子配置（log、zkproof）由对应的config子包负责默认值和用户覆盖
type Provider struct {
	appConfig *types.AppConfig

	logOptions     *logconfig.LogOptions
	zkproofOptions *zkproofconfig.ZKProofOptions
}

// NewProvider 创建配置提供者
//
// appConfig 为 nil 时全部使用默认配置
func NewProvider(appConfig *types.AppConfig) *Provider {
	var userLog *types.UserLogConfig
	var userZK *types.UserZKProofConfig

	if appConfig != nil {
		userLog = appConfig.Log
		userZK = appConfig.ZKProof
	}

	return &Provider{
		appConfig:      appConfig,
		logOptions:     logconfig.New(userLog).Options(),
		zkproofOptions: zkproofconfig.New(userZK).Options(),
	}
}

// LoadAppConfig 从配置文件加载应用配置
//
// 配置文件不存在时不是错误，返回 nil 配置（使用默认值）
func LoadAppConfig(path string) (*types.AppConfig, error) {
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var appConfig types.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &appConfig, nil
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *logconfig.LogOptions {
	return p.logOptions
}

// GetZKProof 获取ZK证明工作流配置
func (p *Provider) GetZKProof() *zkproofconfig.ZKProofOptions {
	return p.zkproofOptions
}

// GetEnvironment 获取运行环境
//
// 未配置时默认为 "prod"（安全优先）
func (p *Provider) GetEnvironment() string {
	if p.appConfig != nil && p.appConfig.Environment != nil && *p.appConfig.Environment != "" {
		return *p.appConfig.Environment
	}
	return "prod"
}

// GetAppConfig 获取原始应用配置
func (p *Provider) GetAppConfig() *types.AppConfig {
	return p.appConfig
}
