package zkproof

import (
	"fmt"
	"sync"
	"time"

	// 基础设施
	"github.com/weisyn/zkbridge/pkg/interfaces/infrastructure/log"

	// gnark ZK库
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/kzg"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/test/unsafekzg"
)

// ============================================================================
// 结构化参考串（SRS）管理
// ============================================================================
//
// 🎯 **目的**：
//   - 为 PlonK 方案提供结构化参考串（Structured Reference String）
//   - 缓存已生成的 SRS，同一曲线和规模只生成一次
//   - 保证并发请求下的幂等性
//
// ⚠️ **重要说明**：
//   - unsafekzg 生成的 SRS 仅适用于演示和测试场景
//   - 生产环境应接入多方可信设置仪式产出的 SRS 文件
//
// ============================================================================

// SRSProvider 结构化参考串提供者接口
type SRSProvider interface {
	// SRS 返回电路所需的正则形式与拉格朗日形式参考串
	//
	// 同一约束系统（曲线和规模相同）的重复请求必须返回同一份参考串。
	SRS(compiledCircuit constraint.ConstraintSystem) (kzg.SRS, kzg.SRS, error)
}

// srsEntry SRS 缓存条目
type srsEntry struct {
	canonical kzg.SRS   // 正则形式 SRS
	lagrange  kzg.SRS   // 拉格朗日形式 SRS
	createdAt time.Time // 生成时间
}

// CachedSRSProvider 带缓存的 SRS 提供者
//
// 以（标量域，规模）为键缓存生成结果。互斥锁覆盖整个生成过程，
// 并发请求同一键时只有一个请求真正执行生成，其余请求复用结果。
type CachedSRSProvider struct {
	logger log.Logger
	mutex  sync.Mutex
	cache  map[string]*srsEntry
}

// NewCachedSRSProvider 创建带缓存的 SRS 提供者
func NewCachedSRSProvider(logger log.Logger) *CachedSRSProvider {
	return &CachedSRSProvider{
		logger: logger,
		cache:  make(map[string]*srsEntry),
	}
}

// SRS 返回电路所需的参考串，优先命中缓存
func (p *CachedSRSProvider) SRS(compiledCircuit constraint.ConstraintSystem) (kzg.SRS, kzg.SRS, error) {
	if compiledCircuit == nil {
		return nil, nil, WrapSRSUnavailableError("unknown", 0, fmt.Errorf("nil constraint system"))
	}

	size := srsSize(compiledCircuit)
	key := fmt.Sprintf("%s:%d", compiledCircuit.Field().String(), size)

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if entry, exists := p.cache[key]; exists {
		srsRequestTotal.WithLabelValues("hit").Inc()
		return entry.canonical, entry.lagrange, nil
	}

	start := time.Now()
	canonical, lagrange, err := unsafekzg.NewSRS(compiledCircuit)
	if err != nil {
		srsRequestTotal.WithLabelValues("failed").Inc()
		return nil, nil, WrapSRSUnavailableError(compiledCircuit.Field().String(), size, err)
	}

	p.cache[key] = &srsEntry{
		canonical: canonical,
		lagrange:  lagrange,
		createdAt: time.Now(),
	}
	srsRequestTotal.WithLabelValues("miss").Inc()

	if p.logger != nil {
		p.logger.Debugf("生成SRS: key=%s, 耗时=%v", key, time.Since(start))
	}

	return canonical, lagrange, nil
}

// CacheSize 返回当前缓存条目数（测试用）
func (p *CachedSRSProvider) CacheSize() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.cache)
}

// srsSize 计算电路所需的 SRS 规模
//
// 取约束数加公共输入数后向上取整到 2 的幂，与 KZG 多项式承诺的
// 实际需求对齐。
func srsSize(compiledCircuit constraint.ConstraintSystem) uint64 {
	base := uint64(compiledCircuit.GetNbConstraints() + compiledCircuit.GetNbPublicVariables())
	return ecc.NextPowerOfTwo(base)
}
