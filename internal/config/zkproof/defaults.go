package zkproof

// ZK证明工作流配置默认值
const (
	// defaultProvingScheme 默认证明方案设为"groth16"
	// 原因：Groth16证明最小（约256字节）、验证最快，且Setup不依赖外部SRS
	defaultProvingScheme = "groth16"

	// defaultCurve 默认椭圆曲线设为"bn254"
	// 原因：BN254是以太坊预编译合约支持的曲线，生态兼容性最好，
	// 且在gnark中综合性能最优
	defaultCurve = "bn254"

	// defaultProofTimeoutSeconds 单次证明超时设为300秒
	// 原因：证明生成是计算密集型操作，大电路可能需要数分钟；
	// 5分钟上限可以兜住演示电路的最坏情况，同时避免调用方无限等待。
	// 注意：超时只在工作流各步骤入口处检查，gnark的证明和验证调用
	// 本身不可中断，已经开始的步骤会运行到结束
	defaultProofTimeoutSeconds = 300

	// defaultSilenceEngineLogs 默认屏蔽gnark内部日志
	// 原因：gnark在证明/验证期间会输出大量调试信息，污染宿主进程日志；
	// 引擎日志与zkbridge自身的结构化日志互相独立，默认只保留后者
	defaultSilenceEngineLogs = true
)
