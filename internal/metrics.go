package internal

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector counts path operations and their failures
type MetricsCollector struct {
	getCount     int64
	setCount     int64
	modelCount   int64
	errorCount   int64
	errorsByType sync.Map
	startTime    time.Time
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{startTime: time.Now()}
}

// RecordGet records a read
func (mc *MetricsCollector) RecordGet() {
	atomic.AddInt64(&mc.getCount, 1)
}

// RecordSet records a write attempt
func (mc *MetricsCollector) RecordSet() {
	atomic.AddInt64(&mc.setCount, 1)
}

// RecordModel records a binding creation
func (mc *MetricsCollector) RecordModel() {
	atomic.AddInt64(&mc.modelCount, 1)
}

// RecordError records a failure under errorType and returns the new error total
func (mc *MetricsCollector) RecordError(errorType string) int64 {
	actual, _ := mc.errorsByType.LoadOrStore(errorType, new(int64))
	atomic.AddInt64(actual.(*int64), 1)
	return atomic.AddInt64(&mc.errorCount, 1)
}

// ErrorCount returns the number of recorded failures
func (mc *MetricsCollector) ErrorCount() int64 {
	return atomic.LoadInt64(&mc.errorCount)
}

// GetMetrics returns a snapshot of the counters
func (mc *MetricsCollector) GetMetrics() Metrics {
	errorsByType := make(map[string]int64)
	mc.errorsByType.Range(func(key, value any) bool {
		if k, ok := key.(string); ok {
			if v, ok := value.(*int64); ok {
				errorsByType[k] = atomic.LoadInt64(v)
			}
		}
		return true
	})

	return Metrics{
		GetCount:     atomic.LoadInt64(&mc.getCount),
		SetCount:     atomic.LoadInt64(&mc.setCount),
		ModelCount:   atomic.LoadInt64(&mc.modelCount),
		ErrorCount:   atomic.LoadInt64(&mc.errorCount),
		ErrorsByType: errorsByType,
		Uptime:       time.Since(mc.startTime),
	}
}

// Reset zeroes all counters
func (mc *MetricsCollector) Reset() {
	atomic.StoreInt64(&mc.getCount, 0)
	atomic.StoreInt64(&mc.setCount, 0)
	atomic.StoreInt64(&mc.modelCount, 0)
	atomic.StoreInt64(&mc.errorCount, 0)
	mc.errorsByType.Range(func(key, _ any) bool {
		mc.errorsByType.Delete(key)
		return true
	})
	mc.startTime = time.Now()
}

// Metrics is a snapshot of MetricsCollector
type Metrics struct {
	GetCount     int64            `json:"get_count"`
	SetCount     int64            `json:"set_count"`
	ModelCount   int64            `json:"model_count"`
	ErrorCount   int64            `json:"error_count"`
	ErrorsByType map[string]int64 `json:"errors_by_type"`
	Uptime       time.Duration    `json:"uptime"`
}
