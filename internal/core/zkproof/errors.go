// Package zkproof provides error definitions for zero-knowledge proof workflows.
package zkproof

import (
	"errors"
	"fmt"
)

// ============================================================================
//                            零知识证明错误定义
// ============================================================================

var (
	// ErrUnsupportedScheme 不支持的证明方案错误
	ErrUnsupportedScheme = errors.New("unsupported proving scheme")

	// ErrUnsupportedCurve 不支持的椭圆曲线错误
	ErrUnsupportedCurve = errors.New("unsupported elliptic curve")

	// ErrCircuitCompilationFailed 电路编译失败错误
	ErrCircuitCompilationFailed = errors.New("circuit compilation failed")

	// ErrTrustedSetupFailed 可信设置失败错误
	ErrTrustedSetupFailed = errors.New("trusted setup failed")

	// ErrSRSUnavailable 结构化参考串不可用错误
	ErrSRSUnavailable = errors.New("structured reference string unavailable")

	// ErrProofGenerationFailed 证明生成失败错误
	ErrProofGenerationFailed = errors.New("proof generation failed")

	// ErrInvalidWitness 无效见证错误
	ErrInvalidWitness = errors.New("invalid witness")

	// ErrMalformedArtifact 证明产物损坏错误
	//
	// 与"证明无效"区分：产物中的证明或密钥类型与方案不符，
	// 属于验证机制故障而非电路验证不通过。
	ErrMalformedArtifact = errors.New("malformed proof artifact")

	// ErrWorkflowReleased 工作流句柄已释放错误
	ErrWorkflowReleased = errors.New("workflow already released")

	// ErrWorkflowPanicked 工作流内部恐慌错误
	ErrWorkflowPanicked = errors.New("workflow panicked")

	// ErrNilOutputFlag 输出标志指针为空错误
	ErrNilOutputFlag = errors.New("nil output flag pointer")

	// ErrKeySerializationFailed 密钥序列化失败错误
	ErrKeySerializationFailed = errors.New("key serialization failed")
)

// ============================================================================
//                               错误包装函数
// ============================================================================

// WrapUnsupportedSchemeError 包装不支持的证明方案错误
func WrapUnsupportedSchemeError(schemeName string) error {
	return fmt.Errorf("%w: scheme=%s", ErrUnsupportedScheme, schemeName)
}

// WrapUnsupportedCurveError 包装不支持的椭圆曲线错误
func WrapUnsupportedCurveError(curveName string) error {
	return fmt.Errorf("%w: curve=%s", ErrUnsupportedCurve, curveName)
}

// WrapCircuitCompilationFailedError 包装电路编译失败错误
func WrapCircuitCompilationFailedError(workflowID string, err error) error {
	return fmt.Errorf("%w: workflowID=%s, cause=%v", ErrCircuitCompilationFailed, workflowID, err)
}

// WrapTrustedSetupFailedError 包装可信设置失败错误
func WrapTrustedSetupFailedError(workflowID string, err error) error {
	return fmt.Errorf("%w: workflowID=%s, cause=%v", ErrTrustedSetupFailed, workflowID, err)
}

// WrapSRSUnavailableError 包装结构化参考串不可用错误
func WrapSRSUnavailableError(curve string, size uint64, err error) error {
	return fmt.Errorf("%w: curve=%s, size=%d, cause=%v", ErrSRSUnavailable, curve, size, err)
}

// WrapProofGenerationFailedError 包装证明生成失败错误
func WrapProofGenerationFailedError(workflowID string, err error) error {
	return fmt.Errorf("%w: workflowID=%s, cause=%v", ErrProofGenerationFailed, workflowID, err)
}

// WrapInvalidWitnessError 包装无效见证错误
func WrapInvalidWitnessError(workflowID string, err error) error {
	return fmt.Errorf("%w: workflowID=%s, cause=%v", ErrInvalidWitness, workflowID, err)
}

// WrapWorkflowReleasedError 包装工作流句柄已释放错误
func WrapWorkflowReleasedError(workflowID string) error {
	return fmt.Errorf("%w: workflowID=%s", ErrWorkflowReleased, workflowID)
}

// WrapWorkflowPanickedError 包装工作流内部恐慌错误
//
// 恐慌值可能是任意类型，统一格式化为字符串后附在哨兵错误上，
// 保证边界适配器对外只暴露 error。
func WrapWorkflowPanickedError(recovered interface{}) error {
	return fmt.Errorf("%w: %v", ErrWorkflowPanicked, recovered)
}

// WrapKeySerializationFailedError 包装密钥序列化失败错误
func WrapKeySerializationFailedError(workflowID string, err error) error {
	return fmt.Errorf("%w: workflowID=%s, cause=%v", ErrKeySerializationFailed, workflowID, err)
}
