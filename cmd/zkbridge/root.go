package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configimpl "github.com/weisyn/zkbridge/internal/config"
	logconfig "github.com/weisyn/zkbridge/internal/config/log"
	"github.com/weisyn/zkbridge/internal/core/infrastructure/crypto/hash"
	logimpl "github.com/weisyn/zkbridge/internal/core/infrastructure/log"
	"github.com/weisyn/zkbridge/internal/core/zkproof"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigPath string // 配置文件路径
	Verbose    bool   // 详细模式
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "zkbridge",
	Short: "zkbridge 零知识证明工作流命令行工具",
	Long: `zkbridge CLI - 零知识证明工作流工具

zkbridge 提供完整的"构建-证明-验证-释放"证明工作流能力:
- 对示例电路执行完整的证明生成和验证
- 支持 Groth16 和 PlonK 两种证明方案
- 支持 bn254、bls12-381、bls12-377、bw6-761 曲线
- 导出验证密钥和 Solidity 验证合约

配置文件通过 --config 指定，省略时使用内置默认配置。`,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// CLI模式下抑制控制台日志，保持命令输出干净
	if os.Getenv("ZKBRIDGE_CLI_MODE") == "" {
		os.Setenv("ZKBRIDGE_CLI_MODE", "true")
	}

	// 全局标志
	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigPath, "config", "", "配置文件路径 (默认使用内置配置)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "详细输出")

	// 添加子命令
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(exportCmd)
}

// getManager 按全局标志和子命令覆盖构建证明工作流管理器
func getManager(schemeOverride, curveOverride string) (*zkproof.Manager, error) {
	appConfig, err := configimpl.LoadAppConfig(globalFlags.ConfigPath)
	if err != nil {
		return nil, err
	}
	provider := configimpl.NewProvider(appConfig)

	// 命令行标志优先于配置文件
	options := provider.GetZKProof()
	if schemeOverride != "" {
		options.ProvingScheme = schemeOverride
	}
	if curveOverride != "" {
		options.Curve = curveOverride
	}
	if globalFlags.Verbose {
		options.SilenceEngineLogs = false
	}

	logger, err := logimpl.New(logconfig.NewFromProvider(provider))
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	return zkproof.NewManager(hash.NewHashService(), logger, provider), nil
}
