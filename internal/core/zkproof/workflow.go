package zkproof

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	// 基础设施
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/zkbridge/pkg/types"

	// gnark ZK库
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	gnarklogger "github.com/consensys/gnark/logger"

	// zerolog for gnark logger
	"github.com/rs/zerolog"

	// 工具库
	"github.com/google/uuid"
)

// ============================================================================
// 证明工作流句柄
// ============================================================================
//
// 🎯 **目的**：
//   - 将"编译电路 + 可信设置"的产物绑定为单一资源句柄
//   - 在句柄上执行证明生成和证明验证
//   - 保证句柄在所有路径上恰好释放一次
//
// 📋 **生命周期**：
//   1. NewWorkflow：编译电路并执行可信设置
//   2. CreateProof：基于赋值生成证明
//   3. VerifyProof：验证证明（验证不通过不是错误）
//   4. Release：释放句柄，幂等，重复调用为空操作
//
// ⚠️ **并发约束**：
//   - Release 可与任意方法并发调用，读写锁保证它等待进行中的操作完成后再丢弃密钥材料
//   - 已释放的句柄拒绝后续证明和验证操作
//
// ============================================================================

// ProofArtifact 一次证明生成的产物
type ProofArtifact struct {
	// Proof 证明对象（方案相关的具体类型）
	Proof Proof

	// PublicWitness 公开输入见证，验证时使用
	PublicWitness witness.Witness

	// Stats 生成统计信息
	Stats types.ProofStats
}

// Workflow 证明工作流句柄
type Workflow struct {
	id          string
	logger      log.Logger
	hashManager crypto.HashManager
	scheme      ProvingScheme
	curveID     ecc.ID

	compiledCircuit constraint.ConstraintSystem
	provingKey      ProvingKey
	verifyingKey    VerifyingKey

	silenceEngineLogs bool

	// stateMu 保护密钥材料字段：操作持读锁，Release 持写锁，
	// 因此 Release 会等待进行中的证明和验证完成
	stateMu     sync.RWMutex
	releaseOnce sync.Once
	released    atomic.Bool
}

// WorkflowConfig 工作流句柄构建参数
type WorkflowConfig struct {
	Logger      log.Logger
	HashManager crypto.HashManager
	Scheme      ProvingScheme
	CurveID     ecc.ID

	// Circuit 电路定义（仅结构，不含赋值）
	Circuit frontend.Circuit

	// SilenceEngineLogs 是否在证明引擎执行期间屏蔽其日志输出
	SilenceEngineLogs bool
}

// NewWorkflow 构建证明工作流句柄
//
// 编译电路并执行可信设置，两者任一失败则不产生句柄，
// 调用方无需释放。成功后调用方必须调用 Release。
func NewWorkflow(ctx context.Context, config WorkflowConfig) (*Workflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.New().String()

	if config.SilenceEngineLogs {
		restore := silenceEngineLogger()
		defer restore()
	}

	startTime := time.Now()

	// 1. 编译电路
	compiledCircuit, err := frontend.Compile(config.CurveID.ScalarField(), config.Scheme.GetBuilder(), config.Circuit)
	if err != nil {
		return nil, WrapCircuitCompilationFailedError(id, err)
	}

	// 2. 可信设置
	pk, vk, err := config.Scheme.Setup(compiledCircuit)
	if err != nil {
		return nil, WrapTrustedSetupFailedError(id, err)
	}

	w := &Workflow{
		id:                id,
		logger:            config.Logger,
		hashManager:       config.HashManager,
		scheme:            config.Scheme,
		curveID:           config.CurveID,
		compiledCircuit:   compiledCircuit,
		provingKey:        pk,
		verifyingKey:      vk,
		silenceEngineLogs: config.SilenceEngineLogs,
	}

	workflowBuildTotal.Inc()

	if w.logger != nil {
		w.logger.Debugf("构建证明工作流: id=%s, scheme=%s, curve=%s, constraints=%d, 耗时=%v",
			id, config.Scheme.SchemeName(), config.CurveID.String(),
			compiledCircuit.GetNbConstraints(), time.Since(startTime))
	}

	return w, nil
}

// ID 返回句柄标识
func (w *Workflow) ID() string {
	return w.id
}

// SchemeName 返回句柄使用的证明方案名称
func (w *Workflow) SchemeName() string {
	return w.scheme.SchemeName()
}

// ConstraintCount 返回编译后电路的约束数量，句柄已释放时返回0
func (w *Workflow) ConstraintCount() uint64 {
	w.stateMu.RLock()
	defer w.stateMu.RUnlock()

	if w.released.Load() {
		return 0
	}
	return uint64(w.compiledCircuit.GetNbConstraints())
}

// CreateProof 基于赋值生成证明
//
// assignment 是携带完整赋值（公共输入和私有输入）的电路实例。
func (w *Workflow) CreateProof(ctx context.Context, assignment frontend.Circuit) (*ProofArtifact, error) {
	w.stateMu.RLock()
	defer w.stateMu.RUnlock()

	if w.released.Load() {
		return nil, WrapWorkflowReleasedError(w.id)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if w.silenceEngineLogs {
		restore := silenceEngineLogger()
		defer restore()
	}

	startTime := time.Now()

	// 1. 构建完整见证
	fullWitness, err := frontend.NewWitness(assignment, w.curveID.ScalarField())
	if err != nil {
		proofGenerationTotal.WithLabelValues("failed").Inc()
		return nil, WrapInvalidWitnessError(w.id, err)
	}

	// 2. 提取公开见证，供后续验证使用
	publicWitness, err := fullWitness.Public()
	if err != nil {
		proofGenerationTotal.WithLabelValues("failed").Inc()
		return nil, WrapInvalidWitnessError(w.id, err)
	}

	// 3. 生成证明
	proof, err := w.scheme.Prove(w.compiledCircuit, w.provingKey, fullWitness)
	if err != nil {
		proofGenerationTotal.WithLabelValues("failed").Inc()
		return nil, WrapProofGenerationFailedError(w.id, err)
	}

	generationTime := time.Since(startTime)
	constraintCount := uint64(w.compiledCircuit.GetNbConstraints())
	proofGenerationTotal.WithLabelValues("success").Inc()
	proofGenerationDuration.Observe(generationTime.Seconds())

	// 证明大小只用于统计，序列化失败不影响证明本身
	proofSize := uint64(0)
	if serialized, serErr := w.scheme.SerializeProof(proof); serErr == nil {
		proofSize = uint64(len(serialized))
	}

	if w.logger != nil {
		w.logger.Debugf("生成证明: id=%s, 约束数=%d, 大小=%d字节, 耗时=%v",
			w.id, constraintCount, proofSize, generationTime)
	}

	return &ProofArtifact{
		Proof:         proof,
		PublicWitness: publicWitness,
		Stats: types.ProofStats{
			ConstraintCount:  constraintCount,
			GenerationTimeMs: uint64(generationTime.Milliseconds()),
			ProofSizeBytes:   proofSize,
		},
	}, nil
}

// VerifyProof 验证证明
//
// 返回值约定：
// - (true, nil)：证明有效
// - (false, nil)：证明无效，这不是错误
// - (false, err)：验证机制本身失败（句柄已释放、产物损坏等）
func (w *Workflow) VerifyProof(ctx context.Context, artifact *ProofArtifact) (bool, error) {
	w.stateMu.RLock()
	defer w.stateMu.RUnlock()

	if w.released.Load() {
		proofVerificationTotal.WithLabelValues("failed").Inc()
		return false, WrapWorkflowReleasedError(w.id)
	}
	if err := ctx.Err(); err != nil {
		proofVerificationTotal.WithLabelValues("failed").Inc()
		return false, err
	}
	if artifact == nil {
		proofVerificationTotal.WithLabelValues("failed").Inc()
		return false, fmt.Errorf("证明产物为空: workflowID=%s", w.id)
	}

	if w.silenceEngineLogs {
		restore := silenceEngineLogger()
		defer restore()
	}

	startTime := time.Now()

	err := w.scheme.Verify(artifact.Proof, w.verifyingKey, artifact.PublicWitness)
	if err != nil {
		// 产物类型损坏属于验证机制故障，和电路验证不通过区分开
		if errors.Is(err, ErrMalformedArtifact) {
			proofVerificationTotal.WithLabelValues("failed").Inc()
			return false, fmt.Errorf("%w: workflowID=%s", err, w.id)
		}
		proofVerificationTotal.WithLabelValues("invalid").Inc()
		if w.logger != nil {
			w.logger.Debugf("证明验证不通过: id=%s, cause=%v", w.id, err)
		}
		return false, nil // 验证失败但不是系统错误
	}

	proofVerificationTotal.WithLabelValues("valid").Inc()

	if w.logger != nil {
		w.logger.Debugf("证明验证通过: id=%s, 耗时=%v", w.id, time.Since(startTime))
	}

	return true, nil
}

// Release 释放工作流句柄
//
// 幂等操作：首次调用丢弃密钥材料引用，重复调用为空操作。
// 可与其他方法并发调用，会等待进行中的操作完成后再释放。
func (w *Workflow) Release() {
	w.releaseOnce.Do(func() {
		w.stateMu.Lock()
		w.released.Store(true)

		// 丢弃大对象引用，让GC尽早回收密钥材料
		w.compiledCircuit = nil
		w.provingKey = nil
		w.verifyingKey = nil
		w.stateMu.Unlock()

		workflowReleaseTotal.Inc()

		if w.logger != nil {
			w.logger.Debugf("释放证明工作流: id=%s", w.id)
		}
	})
}

// IsReleased 返回句柄是否已释放
func (w *Workflow) IsReleased() bool {
	return w.released.Load()
}

// VerifyingKeyBytes 序列化验证密钥
func (w *Workflow) VerifyingKeyBytes() ([]byte, error) {
	w.stateMu.RLock()
	defer w.stateMu.RUnlock()

	if w.released.Load() {
		return nil, WrapWorkflowReleasedError(w.id)
	}

	data, err := w.scheme.SerializeVerifyingKey(w.verifyingKey)
	if err != nil {
		return nil, WrapKeySerializationFailedError(w.id, err)
	}
	return data, nil
}

// VerifyingKeyHash 计算验证密钥的SHA-256哈希
//
// 用途：链上或对端校验验证密钥未被替换。
func (w *Workflow) VerifyingKeyHash() ([]byte, error) {
	data, err := w.VerifyingKeyBytes()
	if err != nil {
		return nil, err
	}
	return w.hashManager.SHA256(data), nil
}

// CircuitCommitment 计算编译后电路的双重SHA-256承诺
func (w *Workflow) CircuitCommitment() ([]byte, error) {
	w.stateMu.RLock()
	defer w.stateMu.RUnlock()

	if w.released.Load() {
		return nil, WrapWorkflowReleasedError(w.id)
	}

	var buf writeToBuffer
	if _, err := w.compiledCircuit.WriteTo(&buf); err != nil {
		return nil, WrapKeySerializationFailedError(w.id, err)
	}
	return w.hashManager.DoubleSHA256(buf.data), nil
}

// ExportSolidityVerifier 导出当前验证密钥的Solidity验证合约
//
// 仅BN254曲线支持，其他曲线返回底层引擎的错误。
func (w *Workflow) ExportSolidityVerifier(writer io.Writer) error {
	w.stateMu.RLock()
	defer w.stateMu.RUnlock()

	if w.released.Load() {
		return WrapWorkflowReleasedError(w.id)
	}

	return w.scheme.ExportSolidityVerifier(w.verifyingKey, writer)
}

// writeToBuffer 最小化的io.Writer实现，收集序列化输出
type writeToBuffer struct {
	data []byte
}

func (b *writeToBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// silenceEngineLogger 屏蔽gnark库的日志输出
//
// gnark库会输出大量的调试信息，在证明和验证期间禁用。
// 返回恢复函数，调用方通过defer恢复原日志器。
func silenceEngineLogger() func() {
	oldGnarkLogger := gnarklogger.Logger()
	discardLogger := zerolog.New(io.Discard).Level(zerolog.Disabled)
	gnarklogger.Set(discardLogger)
	return func() {
		gnarklogger.Set(oldGnarkLogger)
	}
}
