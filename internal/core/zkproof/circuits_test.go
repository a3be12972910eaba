package zkproof

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// circuits.go 测试
// ============================================================================

// TestSimpleCircuit_ValidAssignment 测试合法赋值满足电路约束
func TestSimpleCircuit_ValidAssignment(t *testing.T) {
	err := test.IsSolved(&SimpleCircuit{}, NewSimpleAssignment(), ecc.BN254.ScalarField())
	require.NoError(t, err)
}

// TestSimpleCircuit_MismatchedAssignment 测试不符赋值违反电路约束
func TestSimpleCircuit_MismatchedAssignment(t *testing.T) {
	err := test.IsSolved(&SimpleCircuit{}, NewMismatchedAssignment(), ecc.BN254.ScalarField())
	require.Error(t, err)
}
