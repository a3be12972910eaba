package zkproof

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	zktestutil "github.com/weisyn/zkbridge/internal/core/zkproof/testutil"
)

// ============================================================================
// adapter.go 测试
// ============================================================================

// scriptedScheme 脚本化证明方案，按配置在指定步骤失败或恐慌
type scriptedScheme struct {
	failSetup   bool
	failProve   bool
	failVerify  bool
	panicProve  bool
	setupCalls  int
	proveCalls  int
	verifyCalls int
}

func (s *scriptedScheme) SchemeName() string { return "scripted" }

func (s *scriptedScheme) GetBuilder() frontend.NewBuilder { return r1cs.NewBuilder }

func (s *scriptedScheme) Setup(compiledCircuit constraint.ConstraintSystem) (ProvingKey, VerifyingKey, error) {
	s.setupCalls++
	if s.failSetup {
		return nil, nil, fmt.Errorf("scripted setup failure")
	}
	return "pk", "vk", nil
}

func (s *scriptedScheme) Prove(compiledCircuit constraint.ConstraintSystem, provingKey ProvingKey, w witness.Witness) (Proof, error) {
	s.proveCalls++
	if s.panicProve {
		panic("scripted prove panic")
	}
	if s.failProve {
		return nil, fmt.Errorf("scripted prove failure")
	}
	return "proof", nil
}

func (s *scriptedScheme) Verify(proof Proof, verifyingKey VerifyingKey, publicWitness witness.Witness) error {
	s.verifyCalls++
	if s.failVerify {
		return fmt.Errorf("scripted verify failure")
	}
	return nil
}

func (s *scriptedScheme) SerializeProof(proof Proof) ([]byte, error) {
	return []byte("proof"), nil
}

func (s *scriptedScheme) DeserializeProof(data []byte, curveID ecc.ID) (Proof, error) {
	return "proof", nil
}

func (s *scriptedScheme) SerializeVerifyingKey(vk VerifyingKey) ([]byte, error) {
	return []byte("vk"), nil
}

func (s *scriptedScheme) DeserializeVerifyingKey(data []byte, curveID ecc.ID) (VerifyingKey, error) {
	return "vk", nil
}

func (s *scriptedScheme) ExportSolidityVerifier(vk VerifyingKey, w io.Writer) error {
	return nil
}

// newScriptedAdapter 构建注入脚本化方案的适配器
func newScriptedAdapter(t *testing.T, scheme *scriptedScheme) *Adapter {
	t.Helper()

	logger := zktestutil.NewTestLogger()
	registry := NewProvingSchemeRegistry(logger, NewCachedSRSProvider(logger))
	registry.RegisterScheme(scheme)

	options := zktestutil.NewTestZKProofOptions("scripted", "bn254")
	return NewAdapter(logger, &zktestutil.MockHashManager{}, registry, options)
}

// TestAdapter_CreateAndVerifyProof_Success 测试真实groth16完整流程
func TestAdapter_CreateAndVerifyProof_Success(t *testing.T) {
	logger := zktestutil.NewTestLogger()
	registry := NewProvingSchemeRegistry(logger, NewCachedSRSProvider(logger))
	adapter := NewAdapter(logger, &zktestutil.MockHashManager{}, registry,
		zktestutil.NewTestZKProofOptions("groth16", "bn254"))

	buildsBefore := testutil.ToFloat64(workflowBuildTotal)
	releasesBefore := testutil.ToFloat64(workflowReleaseTotal)

	valid := false
	err := adapter.CreateAndVerifyProof(context.Background(), &valid)
	require.NoError(t, err)
	require.True(t, valid)

	// 构建和释放恰好各发生一次
	require.Equal(t, buildsBefore+1, testutil.ToFloat64(workflowBuildTotal))
	require.Equal(t, releasesBefore+1, testutil.ToFloat64(workflowReleaseTotal))
}

// TestAdapter_CreateAndVerifyProof_NilFlag 测试空输出指针
func TestAdapter_CreateAndVerifyProof_NilFlag(t *testing.T) {
	adapter := newScriptedAdapter(t, &scriptedScheme{})

	err := adapter.CreateAndVerifyProof(context.Background(), nil)
	require.ErrorIs(t, err, ErrNilOutputFlag)
}

// TestAdapter_CreateAndVerifyProof_UnknownScheme 测试未注册方案
func TestAdapter_CreateAndVerifyProof_UnknownScheme(t *testing.T) {
	logger := zktestutil.NewTestLogger()
	registry := NewProvingSchemeRegistry(logger, NewCachedSRSProvider(logger))
	adapter := NewAdapter(logger, &zktestutil.MockHashManager{}, registry,
		zktestutil.NewTestZKProofOptions("bulletproofs", "bn254"))

	valid := true
	err := adapter.CreateAndVerifyProof(context.Background(), &valid)
	require.ErrorIs(t, err, ErrUnsupportedScheme)
	// 失败时输出标志保持调用前状态
	require.True(t, valid)
}

// TestAdapter_CreateAndVerifyProof_UnknownCurve 测试未知曲线
func TestAdapter_CreateAndVerifyProof_UnknownCurve(t *testing.T) {
	logger := zktestutil.NewTestLogger()
	registry := NewProvingSchemeRegistry(logger, NewCachedSRSProvider(logger))
	adapter := NewAdapter(logger, &zktestutil.MockHashManager{}, registry,
		zktestutil.NewTestZKProofOptions("groth16", "secp256k1"))

	valid := true
	err := adapter.CreateAndVerifyProof(context.Background(), &valid)
	require.ErrorIs(t, err, ErrUnsupportedCurve)
	require.True(t, valid)
}

// TestAdapter_CreateAndVerifyProof_SetupFailure 测试可信设置失败
func TestAdapter_CreateAndVerifyProof_SetupFailure(t *testing.T) {
	scheme := &scriptedScheme{failSetup: true}
	adapter := newScriptedAdapter(t, scheme)

	valid := true
	err := adapter.CreateAndVerifyProof(context.Background(), &valid)
	require.ErrorIs(t, err, ErrTrustedSetupFailed)
	require.True(t, valid)
	require.Equal(t, 1, scheme.setupCalls)
	require.Equal(t, 0, scheme.proveCalls)
}

// TestAdapter_CreateAndVerifyProof_ProveFailure 测试证明生成失败
func TestAdapter_CreateAndVerifyProof_ProveFailure(t *testing.T) {
	scheme := &scriptedScheme{failProve: true}
	adapter := newScriptedAdapter(t, scheme)

	releasesBefore := testutil.ToFloat64(workflowReleaseTotal)

	valid := true
	err := adapter.CreateAndVerifyProof(context.Background(), &valid)
	require.ErrorIs(t, err, ErrProofGenerationFailed)
	require.True(t, valid)
	require.Equal(t, 0, scheme.verifyCalls)

	// 失败路径上句柄仍被释放
	require.Equal(t, releasesBefore+1, testutil.ToFloat64(workflowReleaseTotal))
}

// TestAdapter_CreateAndVerifyProof_VerifyRejects 测试验证不通过不是错误
func TestAdapter_CreateAndVerifyProof_VerifyRejects(t *testing.T) {
	scheme := &scriptedScheme{failVerify: true}
	adapter := newScriptedAdapter(t, scheme)

	valid := true
	err := adapter.CreateAndVerifyProof(context.Background(), &valid)
	require.NoError(t, err)
	require.False(t, valid)
	require.Equal(t, 1, scheme.verifyCalls)
}

// TestAdapter_CreateAndVerifyProof_PanicInterception 测试恐慌拦截
func TestAdapter_CreateAndVerifyProof_PanicInterception(t *testing.T) {
	scheme := &scriptedScheme{panicProve: true}
	adapter := newScriptedAdapter(t, scheme)

	releasesBefore := testutil.ToFloat64(workflowReleaseTotal)

	valid := true
	err := adapter.CreateAndVerifyProof(context.Background(), &valid)
	require.ErrorIs(t, err, ErrWorkflowPanicked)
	require.Contains(t, err.Error(), "scripted prove panic")
	require.True(t, valid)

	// 恐慌展开路径上句柄仍被释放
	require.Equal(t, releasesBefore+1, testutil.ToFloat64(workflowReleaseTotal))
}

// TestAdapter_CreateAndVerifyProof_RepeatedCalls 测试多次调用的构建释放配对
func TestAdapter_CreateAndVerifyProof_RepeatedCalls(t *testing.T) {
	adapter := newScriptedAdapter(t, &scriptedScheme{})

	buildsBefore := testutil.ToFloat64(workflowBuildTotal)
	releasesBefore := testutil.ToFloat64(workflowReleaseTotal)

	const rounds = 5
	for i := 0; i < rounds; i++ {
		valid := false
		err := adapter.CreateAndVerifyProof(context.Background(), &valid)
		require.NoError(t, err)
		require.True(t, valid)
	}

	require.Equal(t, buildsBefore+rounds, testutil.ToFloat64(workflowBuildTotal))
	require.Equal(t, releasesBefore+rounds, testutil.ToFloat64(workflowReleaseTotal))
}

// TestAdapter_Outcome 测试结构化结果封装
func TestAdapter_Outcome(t *testing.T) {
	adapter := newScriptedAdapter(t, &scriptedScheme{})

	outcome := adapter.Outcome(context.Background())
	require.True(t, outcome.Valid)
	require.Empty(t, outcome.Diagnostic)

	failing := newScriptedAdapter(t, &scriptedScheme{failSetup: true})
	outcome = failing.Outcome(context.Background())
	require.False(t, outcome.Valid)
	require.NotEmpty(t, outcome.Diagnostic)
}

// TestAdapter_Outcome_VerifyRejects 测试验证不通过时结构化结果无诊断
func TestAdapter_Outcome_VerifyRejects(t *testing.T) {
	adapter := newScriptedAdapter(t, &scriptedScheme{failVerify: true})

	outcome := adapter.Outcome(context.Background())
	require.False(t, outcome.Valid)
	require.Empty(t, outcome.Diagnostic)
}
