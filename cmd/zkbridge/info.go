package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/weisyn/zkbridge/internal/core/zkproof"
)

// infoCmd 查看工作流配置和电路信息
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "查看证明工作流信息",
	Long: `查看当前配置下的证明方案、支持的曲线和示例电路规模

示例:
  zkbridge info
  zkbridge info --scheme plonk`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := getManager(infoScheme, infoCurve)
		if err != nil {
			return err
		}

		schemes := manager.ListSupportedSchemes()
		sort.Strings(schemes)
		curves := zkproof.SupportedCurves()
		sort.Strings(curves)

		fmt.Printf("默认证明方案: %s\n", manager.GetDefaultProvingScheme())
		fmt.Printf("默认椭圆曲线: %s\n", manager.GetDefaultCurve())
		fmt.Printf("支持的方案: %v\n", schemes)
		fmt.Printf("支持的曲线: %v\n", curves)

		// 构建一次示例工作流，展示电路规模和密钥指纹
		workflow, err := manager.NewDemoWorkflow(context.Background())
		if err != nil {
			return fmt.Errorf("构建示例工作流失败: %w", err)
		}
		defer workflow.Release()

		fmt.Printf("示例电路约束数: %d\n", workflow.ConstraintCount())

		vkHash, err := workflow.VerifyingKeyHash()
		if err != nil {
			return fmt.Errorf("计算验证密钥哈希失败: %w", err)
		}
		fmt.Printf("验证密钥哈希: %s\n", hex.EncodeToString(vkHash))

		commitment, err := workflow.CircuitCommitment()
		if err != nil {
			return fmt.Errorf("计算电路承诺失败: %w", err)
		}
		fmt.Printf("电路承诺: %s\n", hex.EncodeToString(commitment))

		return nil
	},
}

var (
	infoScheme string
	infoCurve  string
)

func init() {
	infoCmd.Flags().StringVar(&infoScheme, "scheme", "", "证明方案: groth16|plonk (默认取配置)")
	infoCmd.Flags().StringVar(&infoCurve, "curve", "", "椭圆曲线 (默认取配置)")
}
