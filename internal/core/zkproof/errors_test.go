package zkproof

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// errors.go 测试
// ============================================================================

// TestErrorWrapping 测试包装后的错误可被errors.Is识别
func TestErrorWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"不支持的方案", WrapUnsupportedSchemeError("bulletproofs"), ErrUnsupportedScheme},
		{"不支持的曲线", WrapUnsupportedCurveError("secp256k1"), ErrUnsupportedCurve},
		{"编译失败", WrapCircuitCompilationFailedError("wf-1", fmt.Errorf("boom")), ErrCircuitCompilationFailed},
		{"设置失败", WrapTrustedSetupFailedError("wf-1", fmt.Errorf("boom")), ErrTrustedSetupFailed},
		{"SRS不可用", WrapSRSUnavailableError("bn254", 64, fmt.Errorf("boom")), ErrSRSUnavailable},
		{"证明失败", WrapProofGenerationFailedError("wf-1", fmt.Errorf("boom")), ErrProofGenerationFailed},
		{"无效见证", WrapInvalidWitnessError("wf-1", fmt.Errorf("boom")), ErrInvalidWitness},
		{"句柄已释放", WrapWorkflowReleasedError("wf-1"), ErrWorkflowReleased},
		{"工作流恐慌", WrapWorkflowPanickedError("boom"), ErrWorkflowPanicked},
		{"密钥序列化失败", WrapKeySerializationFailedError("wf-1", fmt.Errorf("boom")), ErrKeySerializationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

// TestWrapWorkflowPanickedError_ArbitraryValue 测试任意类型恐慌值的格式化
func TestWrapWorkflowPanickedError_ArbitraryValue(t *testing.T) {
	err := WrapWorkflowPanickedError(struct{ code int }{code: 42})
	require.ErrorIs(t, err, ErrWorkflowPanicked)
	require.Contains(t, err.Error(), "42")
}
