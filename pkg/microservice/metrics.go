package microservice

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 消息处理指标
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
}

// NewMetrics 在 reg 上注册指标，reg 为 nil 时使用默认注册表
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "master_ms",
				Subsystem: "rpc",
				Name:      "requests_total",
				Help:      "Total message pattern requests handled",
			},
			[]string{"transport", "pattern", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "master_ms",
				Subsystem: "rpc",
				Name:      "request_duration_seconds",
				Help:      "Duration of message pattern handlers",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"transport", "pattern"},
		),
		inflight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "master_ms",
				Subsystem: "rpc",
				Name:      "inflight_requests",
				Help:      "Message pattern requests currently being handled",
			},
		),
	}
}

func (m *Metrics) begin() {
	if m != nil {
		m.inflight.Inc()
	}
}

func (m *Metrics) observe(transport, pattern string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.inflight.Dec()
	m.requests.WithLabelValues(transport, pattern, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(transport, pattern).Observe(elapsed.Seconds())
}
