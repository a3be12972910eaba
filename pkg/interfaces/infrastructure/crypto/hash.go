// Package crypto 提供zkbridge系统的密码学服务接口定义
//
// 🎯 **核心功能**
// - HashManager：哈希管理器接口，提供完整的哈希计算服务
// - 算法多样：支持SHA256、双重SHA256、SHA3-256等算法
//
// 🏧 **设计原则**
// - 性能优先：高效的计算实现和内存管理
// - 安全可靠：使用成熟的加密库和算法实现
// - 易用性：统一的接口设计和错误处理
//
// 🔗 **组件关系**
// - HashManager：被证明工作流模块使用（验证密钥哈希、电路承诺）
package crypto

// HashManager 定义哈希计算相关接口
//
// 提供zkbridge系统的哈希计算服务：
// - 验证密钥完整性哈希
// - 电路承诺计算
// - 数据完整性校验
type HashManager interface {
	// SHA256 计算SHA-256哈希
	// 参数：
	//   - data: 输入数据
	// 返回：哈希值（32字节）
	SHA256(data []byte) []byte

	// DoubleSHA256 计算双重SHA-256哈希
	// 参数：
	//   - data: 输入数据
	// 返回：哈希值（32字节）
	DoubleSHA256(data []byte) []byte

	// SHA3_256 计算SHA3-256哈希
	// 参数：
	//   - data: 输入数据
	// 返回：哈希值（32字节）
	SHA3_256(data []byte) []byte
}
