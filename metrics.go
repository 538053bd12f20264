package colmem

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGrowth is called after a column's storage grew.
	// kind names the element type; bytes is the retained-size increase.
	RecordGrowth(kind string, oldCapacity, newCapacity int, bytes int64)

	// RecordRejectedGrowth is called when the memory budget refused growth.
	RecordRejectedGrowth(kind string, requestedCapacity int)

	// RecordCompression is called after each compression of column data.
	// in and out are the uncompressed and framed sizes; err is nil on success.
	RecordCompression(codec string, in, out int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrowth(string, int, int, int64)                     {}
func (NoopMetricsCollector) RecordRejectedGrowth(string, int)                         {}
func (NoopMetricsCollector) RecordCompression(string, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowthCount           atomic.Int64
	GrowthBytes           atomic.Int64
	RejectedGrowthCount   atomic.Int64
	CompressionCount      atomic.Int64
	CompressionErrors     atomic.Int64
	CompressionBytesIn    atomic.Int64
	CompressionBytesOut   atomic.Int64
	CompressionTotalNanos atomic.Int64
}

// RecordGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrowth(_ string, _, _ int, bytes int64) {
	b.GrowthCount.Add(1)
	b.GrowthBytes.Add(bytes)
}

// RecordRejectedGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRejectedGrowth(string, int) {
	b.RejectedGrowthCount.Add(1)
}

// RecordCompression implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompression(_ string, in, out int, duration time.Duration, err error) {
	b.CompressionCount.Add(1)
	b.CompressionTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CompressionErrors.Add(1)
		return
	}
	b.CompressionBytesIn.Add(int64(in))
	b.CompressionBytesOut.Add(int64(out))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowthCount:         b.GrowthCount.Load(),
		GrowthBytes:         b.GrowthBytes.Load(),
		RejectedGrowthCount: b.RejectedGrowthCount.Load(),
		CompressionCount:    b.CompressionCount.Load(),
		CompressionErrors:   b.CompressionErrors.Load(),
		CompressionRatio:    b.compressionRatio(),
		CompressionAvgNanos: b.getAvgCompressionNanos(),
	}
}

func (b *BasicMetricsCollector) compressionRatio() float64 {
	in := b.CompressionBytesIn.Load()
	if in == 0 {
		return 0
	}
	return float64(b.CompressionBytesOut.Load()) / float64(in)
}

func (b *BasicMetricsCollector) getAvgCompressionNanos() int64 {
	count := b.CompressionCount.Load()
	if count == 0 {
		return 0
	}
	return b.CompressionTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowthCount         int64
	GrowthBytes         int64
	RejectedGrowthCount int64
	CompressionCount    int64
	CompressionErrors   int64
	CompressionRatio    float64
	CompressionAvgNanos int64
}

var _ MetricsCollector = (*BasicMetricsCollector)(nil)
