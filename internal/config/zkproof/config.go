package zkproof

import (
	configtypes "github.com/weisyn/zkbridge/pkg/types"
)

// ZKProofOptions ZK证明工作流配置选项
type ZKProofOptions struct {
	// === 证明方案配置 ===
	ProvingScheme string `json:"proving_scheme"` // 证明方案 (groth16, plonk)
	Curve         string `json:"curve"`          // 椭圆曲线 (bn254, bls12-381, bls12-377, bw6-761)

	// === 性能配置 ===
	ProofTimeoutSeconds int `json:"proof_timeout_seconds"` // 单次证明超时时间（秒），仅在步骤边界生效

	// === 引擎日志配置 ===
	SilenceEngineLogs bool `json:"silence_engine_logs"` // 屏蔽gnark内部日志输出
}

// Config ZK证明配置实现
type Config struct {
	options *ZKProofOptions
}

// New 创建ZK证明配置实现
func New(userConfig interface{}) *Config {
	// 1. 先创建完整的默认配置
	defaultOptions := createDefaultZKProofOptions()

	// 2. 如果有用户配置，应用用户配置覆盖默认值
	if userConfig != nil {
		applyUserZKProofConfig(defaultOptions, userConfig)
	}

	return &Config{
		options: defaultOptions,
	}
}

// NewFromProvider 从配置提供者创建ZK证明配置
func NewFromProvider(provider interface{}) *Config {
	if p, ok := provider.(interface{ GetZKProof() *ZKProofOptions }); ok {
		return &Config{
			options: p.GetZKProof(),
		}
	}

	// 如果类型断言失败，回退到默认配置
	return New(nil)
}

// Options 返回底层配置选项
func (c *Config) Options() *ZKProofOptions {
	return c.options
}

// createDefaultZKProofOptions 创建默认ZK证明配置
func createDefaultZKProofOptions() *ZKProofOptions {
	return &ZKProofOptions{
		ProvingScheme:       defaultProvingScheme,
		Curve:               defaultCurve,
		ProofTimeoutSeconds: defaultProofTimeoutSeconds,
		SilenceEngineLogs:   defaultSilenceEngineLogs,
	}
}

// applyUserZKProofConfig 应用用户ZK证明配置覆盖默认值
func applyUserZKProofConfig(options *ZKProofOptions, userConfig interface{}) {
	if zkConfig, ok := userConfig.(*configtypes.UserZKProofConfig); ok && zkConfig != nil {
		// 只处理JSON配置文件中实际出现的字段
		if zkConfig.ProvingScheme != nil {
			options.ProvingScheme = *zkConfig.ProvingScheme
		}
		if zkConfig.Curve != nil {
			options.Curve = *zkConfig.Curve
		}
		if zkConfig.ProofTimeoutSeconds != nil {
			options.ProofTimeoutSeconds = *zkConfig.ProofTimeoutSeconds
		}
		if zkConfig.SilenceEngineLogs != nil {
			options.SilenceEngineLogs = *zkConfig.SilenceEngineLogs
		}
	}
}
