package zkproof

import (
	"context"
	"time"

	// 基础设施
	zkproofconfig "github.com/weisyn/zkbridge/internal/config/zkproof"
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/zkbridge/pkg/types"
)

// ============================================================================
// 边界适配器
// ============================================================================
//
// 🎯 **目的**：
//   - 为宿主环境（外部函数接口、CLI）提供单一入口
//   - 在一次调用内完成"构建-证明-验证-释放"完整工作流
//   - 拦截内部任何失败（包括恐慌），统一转换为error返回
//
// 📋 **调用约定**：
//   - 返回error为nil：调用成功，valid指向的值已被写入
//   - 返回error非nil：调用失败，valid指向的值保持调用前状态
//   - 验证不通过不是错误：*valid=false 且 error=nil
//
// ⚠️ **恐慌安全**：
//   - 内部恐慌被recover拦截并转换为ErrWorkflowPanicked
//   - 恐慌展开期间句柄的释放defer仍然执行
//
// ============================================================================

// Adapter 证明工作流边界适配器
type Adapter struct {
	logger         log.Logger
	hashManager    crypto.HashManager
	schemeRegistry *ProvingSchemeRegistry
	options        *zkproofconfig.ZKProofOptions
}

// NewAdapter 创建边界适配器
func NewAdapter(logger log.Logger, hashManager crypto.HashManager, schemeRegistry *ProvingSchemeRegistry, options *zkproofconfig.ZKProofOptions) *Adapter {
	if options == nil {
		options = zkproofconfig.New(nil).Options()
	}

	return &Adapter{
		logger:         logger,
		hashManager:    hashManager,
		schemeRegistry: schemeRegistry,
		options:        options,
	}
}

// CreateAndVerifyProof 执行完整的"构建-证明-验证-释放"工作流
//
// 使用配置指定的方案和曲线，对示例电路走一遍完整流程：
// 构建工作流句柄、生成证明、验证证明、释放句柄。
//
// 参数：
//   - ctx: 调用上下文，叠加配置的证明超时
//   - valid: 验证结果输出指针，仅在返回nil时被写入
//
// 返回：
//   - nil: 工作流完整执行，*valid 为验证结果
//   - error: 工作流某一步失败，*valid 未被写入
func (a *Adapter) CreateAndVerifyProof(ctx context.Context, valid *bool) (err error) {
	// 恐慌拦截：内部任何恐慌都不允许越过该边界
	defer func() {
		if r := recover(); r != nil {
			if a.logger != nil {
				a.logger.Errorf("证明工作流恐慌: %v", r)
			}
			err = WrapWorkflowPanickedError(r)
		}
	}()

	if valid == nil {
		return ErrNilOutputFlag
	}

	// 1. 解析方案和曲线
	scheme, err := a.schemeRegistry.GetScheme(a.options.ProvingScheme)
	if err != nil {
		return err
	}

	curveID, err := ResolveCurveID(a.options.Curve)
	if err != nil {
		return err
	}

	// 2. 叠加证明超时
	if a.options.ProofTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(a.options.ProofTimeoutSeconds)*time.Second)
		defer cancel()
	}

	// 3. 构建工作流句柄
	workflow, err := NewWorkflow(ctx, WorkflowConfig{
		Logger:            a.logger,
		HashManager:       a.hashManager,
		Scheme:            scheme,
		CurveID:           curveID,
		Circuit:           &SimpleCircuit{},
		SilenceEngineLogs: a.options.SilenceEngineLogs,
	})
	if err != nil {
		return err
	}

	// 句柄在所有路径上恰好释放一次，包括恐慌展开路径
	defer workflow.Release()

	// 4. 生成证明
	artifact, err := workflow.CreateProof(ctx, NewSimpleAssignment())
	if err != nil {
		return err
	}

	// 5. 验证证明
	// 验证不通过时 ok=false 且 verifyErr=nil，属于成功调用
	ok, verifyErr := workflow.VerifyProof(ctx, artifact)
	if verifyErr != nil {
		return verifyErr
	}

	*valid = ok
	return nil
}

// Outcome 执行完整工作流并返回结构化结果
//
// 对 CreateAndVerifyProof 的便捷封装，将错误扁平化为诊断字符串，
// 供不方便传递输出指针的调用方使用。
func (a *Adapter) Outcome(ctx context.Context) types.ProofOutcome {
	var valid bool
	if err := a.CreateAndVerifyProof(ctx, &valid); err != nil {
		return types.ProofOutcome{Valid: false, Diagnostic: err.Error()}
	}
	return types.ProofOutcome{Valid: valid}
}
