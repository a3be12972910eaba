// Package types 提供zkbridge系统的公共类型定义
package types

// AppConfig 应用配置根结构
//
// 🔧 零值陷阱处理说明：
// 为了区分"用户未设置"和"用户设置为零值"，用户配置统一使用指针类型：
// - nil: 表示用户未在配置文件中设置该字段，将使用系统默认值
// - &value: 表示用户明确设置了该值，即使是零值（如0、false、""）也会被采用
type AppConfig struct {
	// Environment 运行环境：dev | test | prod
	Environment *string `json:"environment,omitempty"`

	// Log 日志配置
	Log *UserLogConfig `json:"log,omitempty"`

	// ZKProof 零知识证明工作流配置
	ZKProof *UserZKProofConfig `json:"zkproof,omitempty"`
}

// UserLogConfig 用户日志配置
// 只包含JSON配置文件中实际出现的字段
type UserLogConfig struct {
	Level    *string `json:"level,omitempty"`     // 日志级别：debug, info, warn, error, fatal
	FilePath *string `json:"file_path,omitempty"` // 日志文件路径
}

// UserZKProofConfig 用户ZK证明工作流配置
// 只包含JSON配置文件中实际出现的字段
type UserZKProofConfig struct {
	// ProvingScheme 证明方案：groth16 | plonk
	ProvingScheme *string `json:"proving_scheme,omitempty"`

	// Curve 椭圆曲线：bn254 | bls12-381 | bls12-377 | bw6-761
	Curve *string `json:"curve,omitempty"`

	// ProofTimeoutSeconds 单次证明超时时间（秒）
	ProofTimeoutSeconds *int `json:"proof_timeout_seconds,omitempty"`

	// SilenceEngineLogs 是否屏蔽证明引擎的内部日志输出
	SilenceEngineLogs *bool `json:"silence_engine_logs,omitempty"`
}
