// Package zkproof 提供证明工作流相关的监控指标
package zkproof

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ============================================================================
//                          Prometheus 监控指标
// ============================================================================

var (
	// workflowBuildTotal 工作流句柄构建总数（累计值）
	workflowBuildTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zkbridge",
		Subsystem: "workflow",
		Name:      "build_total",
		Help:      "Total number of proof workflow handles built",
	})

	// workflowReleaseTotal 工作流句柄释放总数（累计值）
	workflowReleaseTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zkbridge",
		Subsystem: "workflow",
		Name:      "release_total",
		Help:      "Total number of proof workflow handles released",
	})

	// proofGenerationTotal 证明生成总次数（按结果分类）
	proofGenerationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zkbridge",
			Subsystem: "workflow",
			Name:      "proof_generation_total",
			Help:      "Total number of proof generations by result",
		},
		[]string{"result"}, // success, failed
	)

	// proofVerificationTotal 证明验证总次数（按结论分类）
	proofVerificationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zkbridge",
			Subsystem: "workflow",
			Name:      "proof_verification_total",
			Help:      "Total number of proof verifications by verdict",
		},
		[]string{"verdict"}, // valid, invalid, failed
	)

	// proofGenerationDuration 证明生成耗时（直方图）
	proofGenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "zkbridge",
		Subsystem: "workflow",
		Name:      "proof_generation_duration_seconds",
		Help:      "Duration of proof generations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms ~ 20s
	})

	// srsRequestTotal SRS 请求总次数（按缓存命中情况分类）
	srsRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zkbridge",
			Subsystem: "srs",
			Name:      "request_total",
			Help:      "Total number of SRS requests by cache outcome",
		},
		[]string{"outcome"}, // hit, miss, failed
	)
)

// ============================================================================
//                          指标注册
// ============================================================================

func init() {
	// 注册所有证明工作流相关指标
	prometheus.MustRegister(
		workflowBuildTotal,
		workflowReleaseTotal,
		proofGenerationTotal,
		proofVerificationTotal,
		proofGenerationDuration,
		srsRequestTotal,
	)
}
