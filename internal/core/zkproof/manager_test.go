package zkproof

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weisyn/zkbridge/internal/core/zkproof/testutil"
)

// ============================================================================
// manager.go 测试
// ============================================================================

// TestNewManager 测试管理器装配
func TestNewManager(t *testing.T) {
	manager := NewManager(
		&testutil.MockHashManager{},
		testutil.NewTestLogger(),
		testutil.NewTestConfigProvider("groth16", "bn254"),
	)

	require.NotNil(t, manager)
	require.NotNil(t, manager.Adapter())
	require.NotNil(t, manager.SchemeRegistry())
	require.Equal(t, "groth16", manager.GetDefaultProvingScheme())
	require.Equal(t, "bn254", manager.GetDefaultCurve())
	require.True(t, manager.IsSchemeSupported("groth16"))
	require.True(t, manager.IsSchemeSupported("plonk"))
	require.False(t, manager.IsSchemeSupported("bulletproofs"))
	require.Len(t, manager.ListSupportedSchemes(), 2)
}

// TestManager_CreateAndVerifyProof 测试管理器级完整工作流
func TestManager_CreateAndVerifyProof(t *testing.T) {
	manager := NewManager(
		&testutil.MockHashManager{},
		testutil.NewTestLogger(),
		testutil.NewTestConfigProvider("groth16", "bn254"),
	)

	valid := false
	err := manager.CreateAndVerifyProof(context.Background(), &valid)
	require.NoError(t, err)
	require.True(t, valid)

	outcome := manager.Outcome(context.Background())
	require.True(t, outcome.Valid)
	require.Empty(t, outcome.Diagnostic)
}
