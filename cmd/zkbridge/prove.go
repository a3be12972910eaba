package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	proveScheme string
	proveCurve  string
)

// proveCmd 执行完整证明工作流
var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "执行完整的证明工作流",
	Long: `对示例电路执行完整的"构建-证明-验证-释放"工作流

示例:
  zkbridge prove
  zkbridge prove --scheme plonk
  zkbridge prove --scheme groth16 --curve bls12-381`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := getManager(proveScheme, proveCurve)
		if err != nil {
			return err
		}

		fmt.Printf("证明方案: %s\n", manager.GetDefaultProvingScheme())
		fmt.Printf("椭圆曲线: %s\n", manager.GetDefaultCurve())

		startTime := time.Now()

		var valid bool
		if err := manager.CreateAndVerifyProof(context.Background(), &valid); err != nil {
			return fmt.Errorf("证明工作流失败: %w", err)
		}

		fmt.Printf("总耗时: %v\n", time.Since(startTime).Round(time.Millisecond))
		if valid {
			fmt.Println("验证结果: ✅ 证明有效")
		} else {
			fmt.Println("验证结果: ❌ 证明无效")
		}

		return nil
	},
}

func init() {
	proveCmd.Flags().StringVar(&proveScheme, "scheme", "", "证明方案: groth16|plonk (默认取配置)")
	proveCmd.Flags().StringVar(&proveCurve, "curve", "", "椭圆曲线: bn254|bls12-381|bls12-377|bw6-761 (默认取配置)")
}
