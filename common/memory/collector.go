package memory

import "github.com/prometheus/client_golang/prometheus"

var (
	// 断言 检查实现 prometheus.Collector
	_ prometheus.Collector = (*Collector)(nil)
)

// Collector 将分配统计导出为 prometheus 指标
type Collector struct {
	stats        *Statistics
	allocCount   *prometheus.Desc
	releaseCount *prometheus.Desc
	failedCount  *prometheus.Desc
	allocBytes   *prometheus.Desc
	releaseBytes *prometheus.Desc
}

// NewCollector 创建全局统计的采集器
func NewCollector() *Collector {
	return NewStatisticsCollector(AS)
}

// NewStatisticsCollector 创建指定统计对象的采集器
func NewStatisticsCollector(stats *Statistics) *Collector {
	return &Collector{
		stats: stats,
		allocCount: prometheus.NewDesc("vector_storage_allocations_total",
			"Number of storage blocks allocated.", nil, nil),
		releaseCount: prometheus.NewDesc("vector_storage_releases_total",
			"Number of storage blocks released.", nil, nil),
		failedCount: prometheus.NewDesc("vector_storage_allocation_failures_total",
			"Number of rejected allocation requests.", nil, nil),
		allocBytes: prometheus.NewDesc("vector_storage_allocated_bytes_total",
			"Bytes of storage allocated.", nil, nil),
		releaseBytes: prometheus.NewDesc("vector_storage_released_bytes_total",
			"Bytes of storage released.", nil, nil),
	}
}

// Describe 实现 prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocCount
	ch <- c.releaseCount
	ch <- c.failedCount
	ch <- c.allocBytes
	ch <- c.releaseBytes
}

// Collect 实现 prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.stats.Get()
	ch <- prometheus.MustNewConstMetric(c.allocCount, prometheus.CounterValue, float64(snap.AllocCount))
	ch <- prometheus.MustNewConstMetric(c.releaseCount, prometheus.CounterValue, float64(snap.ReleaseCount))
	ch <- prometheus.MustNewConstMetric(c.failedCount, prometheus.CounterValue, float64(snap.FailedCount))
	ch <- prometheus.MustNewConstMetric(c.allocBytes, prometheus.CounterValue, float64(snap.AllocBytes))
	ch <- prometheus.MustNewConstMetric(c.releaseBytes, prometheus.CounterValue, float64(snap.ReleaseBytes))
}
