package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计每个接口的耗时和调用次数，path 用的是路由模板
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder reg 为 nil 的时候注册到默认的 registry
func NewMetricsBuilder(namespace string, reg prometheus.Registerer) *MetricsBuilder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		summaryVec: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "推荐接口的响应时间",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "推荐接口的调用次数",
		}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			// 没有命中路由的统一归到一起，防止 label 爆炸
			path = "unknown"
		}
		lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		b.summaryVec.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(lvs...).Inc()
	}
}
