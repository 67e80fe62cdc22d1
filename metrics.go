package rtc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting simulation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRun is called after each simulation.
	// ticks is the number of steps taken, duration the wall time,
	// err is nil if the projectile landed.
	RecordRun(ticks int, duration time.Duration, err error)

	// RecordExport is called after each trajectory export.
	RecordExport(size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordExport(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Safe for concurrent use.
type BasicMetricsCollector struct {
	RunCount         atomic.Int64
	RunErrors        atomic.Int64
	RunTicks         atomic.Int64
	RunTotalNanos    atomic.Int64
	ExportCount      atomic.Int64
	ExportErrors     atomic.Int64
	ExportBytes      atomic.Int64
	ExportTotalNanos atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(ticks int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTicks.Add(int64(ticks))
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(size int, duration time.Duration, err error) {
	b.ExportCount.Add(1)
	b.ExportTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExportErrors.Add(1)
		return
	}
	b.ExportBytes.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:       b.RunCount.Load(),
		RunErrors:      b.RunErrors.Load(),
		RunTicks:       b.RunTicks.Load(),
		RunAvgNanos:    avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
		ExportCount:    b.ExportCount.Load(),
		ExportErrors:   b.ExportErrors.Load(),
		ExportBytes:    b.ExportBytes.Load(),
		ExportAvgNanos: avg(b.ExportTotalNanos.Load(), b.ExportCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount       int64
	RunErrors      int64
	RunTicks       int64
	RunAvgNanos    int64
	ExportCount    int64
	ExportErrors   int64
	ExportBytes    int64
	ExportAvgNanos int64
}
