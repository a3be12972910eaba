package config

import (
	"os"

	logconfig "github.com/weisyn/zkbridge/internal/config/log"
	zkproofconfig "github.com/weisyn/zkbridge/internal/config/zkproof"
	configinterface "github.com/weisyn/zkbridge/pkg/interfaces/config"
	"go.uber.org/fx"
)

// 配置文件路径环境变量
const configPathEnv = "ZKBRIDGE_CONFIG"

// ConfigOutput 定义配置模块的输出结构
type ConfigOutput struct {
	fx.Out

	// 配置提供者
	Provider configinterface.Provider
}

// Module 返回配置模块
func Module() fx.Option {
	return fx.Module("config",
		fx.Provide(
			ProvideConfigServices,
			// 提供具体的配置类型用于依赖注入
			func(provider configinterface.Provider) *logconfig.LogOptions {
				return provider.GetLog()
			},
			func(provider configinterface.Provider) *zkproofconfig.ZKProofOptions {
				return provider.GetZKProof()
			},
		),
	)
}

// ProvideConfigServices 提供配置服务
//
// 配置文件路径从 ZKBRIDGE_CONFIG 环境变量读取；
// 未设置或文件不存在时使用默认配置
func ProvideConfigServices() (ConfigOutput, error) {
	appConfig, err := LoadAppConfig(os.Getenv(configPathEnv))
	if err != nil {
		return ConfigOutput{}, err
	}

	return ConfigOutput{
		Provider: NewProvider(appConfig),
	}, nil
}
