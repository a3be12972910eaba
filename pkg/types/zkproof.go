// Package types provides zero-knowledge proof type definitions.
package types

// ProofOutcome 边界调用的完整结果
//
// 该结构体描述一次"构建-证明-验证-释放"工作流的对外结果。
// 调用方必须先检查 Diagnostic（错误信息）：
// - Diagnostic 为空：调用成功，Valid 字段有效
// - Diagnostic 非空：调用失败，Valid 字段处于未定义状态，不应读取
//
// 📋 **字段说明**：
// - Valid：证明验证结果（仅在调用成功时有意义）
// - Diagnostic：人类可读的失败原因（成功时为空字符串）
type ProofOutcome struct {
	// 证明验证结果
	// 注意：验证不通过不是错误，Valid=false + Diagnostic="" 是一次成功的调用
	Valid bool

	// 失败诊断信息
	// 内容：工作流任一步骤（设置、构建、证明、验证机制）的失败描述
	Diagnostic string
}

// ProofStats ZK证明生成统计信息
//
// 🎯 **使用场景**：
// - 性能监控和优化分析
// - 上层业务展示证明成本
//
// 📋 **字段说明**：
// - ConstraintCount：电路约束数量，反映证明复杂度
// - GenerationTimeMs：证明生成耗时（毫秒）
// - ProofSizeBytes：证明数据大小（字节）
type ProofStats struct {
	// 约束数量
	// 含义：电路中的R1CS或算术约束数量
	// 用途：评估证明复杂度，优化电路设计
	ConstraintCount uint64

	// 生成时间（毫秒）
	// 用途：性能监控、瓶颈分析
	GenerationTimeMs uint64

	// 证明大小（字节）
	// 大小：Groth16约256字节，PlonK约512字节
	ProofSizeBytes uint64
}
