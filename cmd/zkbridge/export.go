package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportScheme string
	exportOutput string
)

// exportCmd 导出Solidity验证合约
var exportCmd = &cobra.Command{
	Use:   "export-verifier",
	Short: "导出Solidity验证合约",
	Long: `为示例电路的验证密钥生成Solidity验证合约

仅 bn254 曲线支持导出。

示例:
  zkbridge export-verifier --out Verifier.sol
  zkbridge export-verifier --scheme plonk --out PlonkVerifier.sol`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 先打开输出文件，避免无法写入时白跑一次可信设置
		var file *os.File
		if exportOutput != "" {
			created, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("创建输出文件失败: %w", err)
			}
			file = created
		}

		// Solidity导出仅支持bn254
		manager, err := getManager(exportScheme, "bn254")
		if err != nil {
			if file != nil {
				file.Close()
			}
			return err
		}

		workflow, err := manager.NewDemoWorkflow(context.Background())
		if err != nil {
			if file != nil {
				file.Close()
			}
			return fmt.Errorf("构建示例工作流失败: %w", err)
		}
		defer workflow.Release()

		if file == nil {
			if err := workflow.ExportSolidityVerifier(os.Stdout); err != nil {
				return fmt.Errorf("导出验证合约失败: %w", err)
			}
			return nil
		}

		if err := workflow.ExportSolidityVerifier(file); err != nil {
			file.Close()
			return fmt.Errorf("导出验证合约失败: %w", err)
		}

		// Close错误意味着合约可能没有完整落盘，不能报告成功
		if err := file.Close(); err != nil {
			return fmt.Errorf("写入输出文件失败: %w", err)
		}

		fmt.Printf("已导出验证合约: %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportScheme, "scheme", "", "证明方案: groth16|plonk (默认取配置)")
	exportCmd.Flags().StringVar(&exportOutput, "out", "", "输出文件路径 (默认输出到标准输出)")
}
