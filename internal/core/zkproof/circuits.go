package zkproof

import (
	"github.com/consensys/gnark/frontend"
)

// ============================================================================
//                              示例电路
// ============================================================================
//
// 🎯 **目的**：
//   - 提供完整工作流的演示电路
//   - 证明者证明知道公共乘积的两个私有因子
//
// ============================================================================

// SimpleCircuit 简单因子分解电路
//
// 证明者持有私有因子 X 和 Y，公开乘积 Product，
// 在不暴露因子的前提下证明 X * Y == Product。
type SimpleCircuit struct {
	// Product 公共输入：两因子的乘积
	Product frontend.Variable `gnark:",public"`

	// X 私有输入：第一个因子
	X frontend.Variable

	// Y 私有输入：第二个因子
	Y frontend.Variable
}

// Define 定义电路约束
func (c *SimpleCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.X, c.Y), c.Product)
	return nil
}

// 演示赋值使用的因子常量
const (
	demoFactorX  = 3
	demoFactorY  = 11
	demoProduct  = demoFactorX * demoFactorY
	wrongProduct = demoProduct + 1
)

// NewSimpleAssignment 创建示例电路的合法赋值
func NewSimpleAssignment() frontend.Circuit {
	return &SimpleCircuit{
		Product: demoProduct,
		X:       demoFactorX,
		Y:       demoFactorY,
	}
}

// NewMismatchedAssignment 创建公共输入与因子不符的赋值（测试用）
func NewMismatchedAssignment() frontend.Circuit {
	return &SimpleCircuit{
		Product: wrongProduct,
		X:       demoFactorX,
		Y:       demoFactorY,
	}
}
