package hash

import (
	"crypto/sha256"
	"sync"

	cryptointf "github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/crypto"
	"golang.org/x/crypto/sha3"
)

// 确保HashService实现了cryptointf.HashManager接口
var _ cryptointf.HashManager = (*HashService)(nil)

// HashCache 简单的哈希缓存结构
type HashCache struct {
	cache map[string][]byte
	mu    sync.RWMutex
}

// NewHashCache 创建新的哈希缓存
func NewHashCache() *HashCache {
	return &HashCache{
		cache: make(map[string][]byte),
	}
}

// Get 从缓存获取哈希值
func (c *HashCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.cache[key]
	if ok {
		result := make([]byte, len(value))
		copy(result, value) // 返回副本而非引用
		return result, true
	}
	return nil, false
}

// Set 设置缓存中的哈希值
func (c *HashCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value) // 存储副本而非引用
	c.cache[key] = valueCopy
}

// HashService 提供哈希计算功能
//
// 🎯 **使用场景**：验证密钥哈希、电路承诺、数据完整性校验。
// 验证密钥和编译电路的序列化结果较大且在工作流生命周期内不变，
// 缓存可避免重复计算
type HashService struct {
	sha256Cache       *HashCache
	doubleSHA256Cache *HashCache
	sha3Cache         *HashCache
}

// NewHashService 创建新的哈希服务
func NewHashService() *HashService {
	return &HashService{
		sha256Cache:       NewHashCache(),
		doubleSHA256Cache: NewHashCache(),
		sha3Cache:         NewHashCache(),
	}
}

// cacheKey 根据数据生成缓存键
// 使用SHA256哈希作为缓存键，确保唯一性
func cacheKey(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return string(hasher.Sum(nil))
}

// SHA256 计算SHA-256哈希
func (s *HashService) SHA256(data []byte) []byte {
	key := cacheKey(data)
	if cached, ok := s.sha256Cache.Get(key); ok {
		return cached
	}

	hash := sha256.Sum256(data)
	result := hash[:]
	s.sha256Cache.Set(key, result)
	return result
}

// DoubleSHA256 计算双重SHA-256哈希
func (s *HashService) DoubleSHA256(data []byte) []byte {
	key := cacheKey(data)
	if cached, ok := s.doubleSHA256Cache.Get(key); ok {
		return cached
	}

	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	result := second[:]
	s.doubleSHA256Cache.Set(key, result)
	return result
}

// SHA3_256 计算SHA3-256哈希
func (s *HashService) SHA3_256(data []byte) []byte {
	key := cacheKey(data)
	if cached, ok := s.sha3Cache.Get(key); ok {
		return cached
	}

	hasher := sha3.New256()
	hasher.Write(data)
	result := hasher.Sum(nil)
	s.sha3Cache.Set(key, result)
	return result
}
