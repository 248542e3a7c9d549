// Package vmstats provides a read-only snapshot of the Go runtime for
// the process section of the metrics document. The field layout stays
// wire-compatible with the process section emitted by JVM-based
// deployments of the same format, which is why the section key the
// serializer uses is "jvm".
package vmstats

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"
)

type Info struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Memory struct {
	TotalUsed      uint64            `json:"totalUsed"`
	TotalCommitted uint64            `json:"totalCommitted"`
	HeapUsed       uint64            `json:"heapUsed"`
	HeapCommitted  uint64            `json:"heapCommitted"`
	HeapUsage      float64           `json:"heap_usage"`
	Pools          map[string]uint64 `json:"memory_pool_usages"`
}

type GCStats struct {
	Runs int64   `json:"runs"`
	Time float64 `json:"time"` // total pause, milliseconds
}

// Stats is a point-in-time view of the runtime. The serializer treats
// it as opaque data and reproduces it verbatim.
type Stats struct {
	VM          Info               `json:"vm"`
	Memory      Memory             `json:"memory"`
	ThreadCount int                `json:"thread_count"`
	CurrentTime int64              `json:"current_time"`
	Uptime      int64              `json:"uptime"`
	FDUsage     float64            `json:"fd_usage"`
	GC          map[string]GCStats `json:"garbage-collectors"`
}

// Provider collects runtime stats relative to its creation time.
type Provider struct {
	start time.Time
}

func NewProvider() *Provider {
	return &Provider{start: time.Now()}
}

// Collect reads the runtime state once. All numbers are best effort
// and eventually consistent with each other.
func (p *Provider) Collect() *Stats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	var gc debug.GCStats
	debug.ReadGCStats(&gc)

	now := time.Now()
	return &Stats{
		VM: Info{
			Name:    filepath.Base(os.Args[0]),
			Version: runtime.Version(),
		},
		Memory: Memory{
			TotalUsed:      ms.Alloc + ms.StackInuse,
			TotalCommitted: ms.Sys,
			HeapUsed:       ms.HeapAlloc,
			HeapCommitted:  ms.HeapSys,
			HeapUsage:      heapUsage(ms.HeapAlloc, ms.HeapSys),
			Pools: map[string]uint64{
				"heap_idle":     ms.HeapIdle,
				"heap_inuse":    ms.HeapInuse,
				"heap_released": ms.HeapReleased,
				"stack_inuse":   ms.StackInuse,
				"mspan_inuse":   ms.MSpanInuse,
				"mcache_inuse":  ms.MCacheInuse,
			},
		},
		ThreadCount: runtime.NumGoroutine(),
		CurrentTime: now.UnixMilli(),
		Uptime:      int64(now.Sub(p.start).Seconds()),
		FDUsage:     fdUsage(),
		GC: map[string]GCStats{
			"gc": {
				Runs: gc.NumGC,
				Time: float64(gc.PauseTotal) / float64(time.Millisecond),
			},
		},
	}
}

func heapUsage(used, committed uint64) float64 {
	if committed == 0 {
		return 0
	}
	return float64(used) / float64(committed)
}

// fdUsage reports open descriptors as a fraction of the soft limit.
// Returns 0 where /proc is unavailable.
func fdUsage() float64 {
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		return 0
	}
	var limit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &limit); err != nil || limit.Cur == 0 {
		return 0
	}
	return float64(len(entries)) / float64(limit.Cur)
}
