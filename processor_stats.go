package vselect

import "time"

// Stats is a snapshot of accessor counters
type Stats struct {
	GetCount     int64
	SetCount     int64
	ModelCount   int64
	ErrorCount   int64
	ErrorsByType map[string]int64 // keyed by the underlying sentinel message
	CacheEnabled bool
	CacheEntries int64
	CacheHits    int64
	CacheMisses  int64
	HitRatio     float64 // percentage
	Uptime       time.Duration
	IsClosed     bool
}

// GetStats returns accessor statistics
func (a *Accessor) GetStats() Stats {
	m := a.metrics.GetMetrics()
	stats := Stats{
		GetCount:     m.GetCount,
		SetCount:     m.SetCount,
		ModelCount:   m.ModelCount,
		ErrorCount:   m.ErrorCount,
		ErrorsByType: m.ErrorsByType,
		CacheEnabled: a.cache != nil,
		Uptime:       m.Uptime,
		IsClosed:     a.IsClosed(),
	}

	if a.cache != nil {
		cs := a.cache.Stats()
		stats.CacheEntries = cs.Entries
		stats.CacheHits = cs.HitCount
		stats.CacheMisses = cs.MissCount
		stats.HitRatio = cs.HitRatio
	}
	return stats
}

// ResetStats zeroes the operation counters; the path cache is left alone
func (a *Accessor) ResetStats() {
	a.metrics.Reset()
}
