package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, paint throughput and memory statistics.
// Outputs stats to the log at a configurable interval. Not safe for concurrent use; the
// render goroutine owns it.
type Profiler struct {
	frameCount     int
	hitCount       int
	commitCount    int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	logf           func(format string, args ...any)

	totalHits    uint64
	totalCommits uint64
}

// NewProfiler creates a new Profiler logging once per interval.
// Intervals <= 0 default to 1 second.
//
// Parameters:
//   - interval: time between log lines
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: interval,
		logf:           log.Printf,
	}
}

// RecordPaint adds one paint tick's work to the current interval.
//
// Parameters:
//   - hits: ray hits processed
//   - commits: surfaces published
func (p *Profiler) RecordPaint(hits, commits int) {
	p.hitCount += hits
	p.commitCount += commits
	p.totalHits += uint64(hits)
	p.totalCommits += uint64(commits)
}

// Totals returns the hits and commits recorded since the profiler was created.
func (p *Profiler) Totals() (hits, commits uint64) {
	return p.totalHits, p.totalCommits
}

// Tick should be called once per frame to track frame timing.
// Logs FPS, paint hits/s, commits/s, heap usage, allocation rate, GC count/pause times and
// total memory when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	secs := elapsed.Seconds()
	fps := float64(p.frameCount) / secs
	hitRate := float64(p.hitCount) / secs
	commitRate := float64(p.commitCount) / secs

	runtime.ReadMemStats(&p.memStats)
	// Alloc: live heap bytes. Sys: bytes obtained from the OS.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / secs

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logf("[Profiler] FPS: %.2f | Hits: %.0f/s | Commits: %.0f/s | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, hitRate, commitRate, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.frameCount = 0
	p.hitCount = 0
	p.commitCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
