package zkproof

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/zkbridge/internal/core/zkproof/testutil"
)

// ============================================================================
// proving_scheme.go 测试
// ============================================================================

// TestNewGroth16Scheme 测试创建Groth16方案
func TestNewGroth16Scheme(t *testing.T) {
	scheme := NewGroth16Scheme(testutil.NewTestLogger())
	require.NotNil(t, scheme)
	require.Equal(t, "groth16", scheme.SchemeName())
}

// TestGroth16Scheme_GetBuilder 测试Groth16方案构建器
func TestGroth16Scheme_GetBuilder(t *testing.T) {
	scheme := NewGroth16Scheme(testutil.NewTestLogger())
	builder := scheme.GetBuilder()
	require.NotNil(t, builder)
	// 函数指针不能直接比较，只检查非nil
}

// TestGroth16Scheme_Setup 测试Groth16 Setup
func TestGroth16Scheme_Setup(t *testing.T) {
	scheme := NewGroth16Scheme(testutil.NewTestLogger())

	compiledCircuit, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &SimpleCircuit{})
	require.NoError(t, err)

	pk, vk, err := scheme.Setup(compiledCircuit)
	require.NoError(t, err)
	require.NotNil(t, pk)
	require.NotNil(t, vk)
}

// TestGroth16Scheme_ProveAndVerify 测试Groth16完整证明验证流程
func TestGroth16Scheme_ProveAndVerify(t *testing.T) {
	scheme := NewGroth16Scheme(testutil.NewTestLogger())

	compiledCircuit, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &SimpleCircuit{})
	require.NoError(t, err)

	pk, vk, err := scheme.Setup(compiledCircuit)
	require.NoError(t, err)

	// 创建witness
	fullWitness, err := frontend.NewWitness(NewSimpleAssignment(), ecc.BN254.ScalarField())
	require.NoError(t, err)

	proof, err := scheme.Prove(compiledCircuit, pk, fullWitness)
	require.NoError(t, err)
	require.NotNil(t, proof)

	publicWitness, err := fullWitness.Public()
	require.NoError(t, err)

	err = scheme.Verify(proof, vk, publicWitness)
	require.NoError(t, err)
}

// TestGroth16Scheme_SerializeRoundTrip 测试Groth16证明序列化往返
func TestGroth16Scheme_SerializeRoundTrip(t *testing.T) {
	scheme := NewGroth16Scheme(testutil.NewTestLogger())

	compiledCircuit, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &SimpleCircuit{})
	require.NoError(t, err)

	pk, vk, err := scheme.Setup(compiledCircuit)
	require.NoError(t, err)

	fullWitness, err := frontend.NewWitness(NewSimpleAssignment(), ecc.BN254.ScalarField())
	require.NoError(t, err)

	proof, err := scheme.Prove(compiledCircuit, pk, fullWitness)
	require.NoError(t, err)

	// 序列化后反序列化，证明应仍然可验证
	data, err := scheme.SerializeProof(proof)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	restored, err := scheme.DeserializeProof(data, ecc.BN254)
	require.NoError(t, err)

	publicWitness, err := fullWitness.Public()
	require.NoError(t, err)

	err = scheme.Verify(restored, vk, publicWitness)
	require.NoError(t, err)
}

// TestGroth16Scheme_InvalidKeyTypes 测试Groth16类型断言防御
func TestGroth16Scheme_InvalidKeyTypes(t *testing.T) {
	scheme := NewGroth16Scheme(testutil.NewTestLogger())

	_, err := scheme.Prove(nil, "not a proving key", nil)
	require.Error(t, err)

	err = scheme.Verify("not a proof", nil, nil)
	require.ErrorIs(t, err, ErrMalformedArtifact)

	_, err = scheme.SerializeProof("not a proof")
	require.Error(t, err)

	_, err = scheme.SerializeVerifyingKey("not a vk")
	require.Error(t, err)
}

// TestNewPlonKScheme 测试创建PlonK方案
func TestNewPlonKScheme(t *testing.T) {
	srsProvider := NewCachedSRSProvider(testutil.NewTestLogger())
	scheme := NewPlonKScheme(testutil.NewTestLogger(), srsProvider)
	require.NotNil(t, scheme)
	require.Equal(t, "plonk", scheme.SchemeName())
}

// TestPlonKScheme_SetupWithoutSRSProvider 测试PlonK缺少SRS提供者
func TestPlonKScheme_SetupWithoutSRSProvider(t *testing.T) {
	scheme := NewPlonKScheme(testutil.NewTestLogger(), nil)

	compiledCircuit, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &SimpleCircuit{})
	require.NoError(t, err)

	_, _, err = scheme.Setup(compiledCircuit)
	require.Error(t, err)
}

// TestPlonKScheme_ProveAndVerify 测试PlonK完整证明验证流程
func TestPlonKScheme_ProveAndVerify(t *testing.T) {
	srsProvider := NewCachedSRSProvider(testutil.NewTestLogger())
	scheme := NewPlonKScheme(testutil.NewTestLogger(), srsProvider)

	compiledCircuit, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &SimpleCircuit{})
	require.NoError(t, err)

	pk, vk, err := scheme.Setup(compiledCircuit)
	require.NoError(t, err)

	fullWitness, err := frontend.NewWitness(NewSimpleAssignment(), ecc.BN254.ScalarField())
	require.NoError(t, err)

	proof, err := scheme.Prove(compiledCircuit, pk, fullWitness)
	require.NoError(t, err)

	publicWitness, err := fullWitness.Public()
	require.NoError(t, err)

	err = scheme.Verify(proof, vk, publicWitness)
	require.NoError(t, err)
}

// TestGroth16Scheme_ExportSolidityVerifier 测试导出Solidity验证合约
func TestGroth16Scheme_ExportSolidityVerifier(t *testing.T) {
	scheme := NewGroth16Scheme(testutil.NewTestLogger())

	compiledCircuit, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &SimpleCircuit{})
	require.NoError(t, err)

	_, vk, err := scheme.Setup(compiledCircuit)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = scheme.ExportSolidityVerifier(vk, &buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "pragma solidity")
}

// TestResolveCurveID 测试曲线解析
func TestResolveCurveID(t *testing.T) {
	tests := []struct {
		name     string
		curve    string
		expected ecc.ID
		wantErr  bool
	}{
		{"bn254", "bn254", ecc.BN254, false},
		{"bls12-381", "bls12-381", ecc.BLS12_381, false},
		{"bls12-377", "bls12-377", ecc.BLS12_377, false},
		{"bw6-761", "bw6-761", ecc.BW6_761, false},
		{"未知曲线", "secp256k1", ecc.UNKNOWN, true},
		{"空曲线名", "", ecc.UNKNOWN, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curveID, err := ResolveCurveID(tt.curve)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrUnsupportedCurve)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expected, curveID)
			}
		})
	}
}

// TestProvingSchemeRegistry 测试证明方案注册表
func TestProvingSchemeRegistry(t *testing.T) {
	logger := testutil.NewTestLogger()
	registry := NewProvingSchemeRegistry(logger, NewCachedSRSProvider(logger))

	// 默认注册groth16和plonk
	require.True(t, registry.IsSchemeSupported("groth16"))
	require.True(t, registry.IsSchemeSupported("plonk"))
	require.Len(t, registry.ListSchemes(), 2)

	scheme, err := registry.GetScheme("groth16")
	require.NoError(t, err)
	require.Equal(t, "groth16", scheme.SchemeName())

	// 未注册方案
	_, err = registry.GetScheme("bulletproofs")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedScheme)

	// nil方案注册为空操作
	registry.RegisterScheme(nil)
	require.Len(t, registry.ListSchemes(), 2)
}
