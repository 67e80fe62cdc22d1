package rtc

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordRun(100, 2*time.Millisecond, nil)
		}()
	}
	wg.Wait()

	m.RecordRun(5, 2*time.Millisecond, errors.New("max ticks"))
	m.RecordExport(1024, time.Millisecond, nil)
	m.RecordExport(0, time.Millisecond, errors.New("denied"))

	stats := m.GetStats()
	assert.Equal(t, int64(11), stats.RunCount)
	assert.Equal(t, int64(1), stats.RunErrors)
	assert.Equal(t, int64(1005), stats.RunTicks)
	assert.Equal(t, (2 * time.Millisecond).Nanoseconds(), stats.RunAvgNanos)
	assert.Equal(t, int64(2), stats.ExportCount)
	assert.Equal(t, int64(1), stats.ExportErrors)
	assert.Equal(t, int64(1024), stats.ExportBytes)
}

func TestEmptyStats(t *testing.T) {
	var m BasicMetricsCollector
	assert.Equal(t, BasicMetricsStats{}, m.GetStats())

	var noop MetricsCollector = NoopMetricsCollector{}
	noop.RecordRun(1, time.Second, nil)
	noop.RecordExport(1, time.Second, nil)
}
