// Package frameclock measures the time between frames for the camera loop and periodically logs
// frame rate and memory statistics.
package frameclock

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/common"
)

// Clock turns wall-clock frame timestamps into clamped frame deltas.
// It is owned by the render loop and is not safe for concurrent use.
type Clock struct {
	lastFrame time.Time
	started   bool

	statsEnabled  bool
	statsInterval time.Duration
	statsStart    time.Time
	frameCount    int
	fps           float64

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

type ClockBuilderOption func(*Clock)

// WithStats enables the periodic statistics log line.
//
// Parameters:
//   - interval: how often to log; values <= 0 use one second
//
// Returns:
//   - ClockBuilderOption: a function that enables stats logging on the clock
func WithStats(interval time.Duration) ClockBuilderOption {
	return func(c *Clock) {
		c.statsEnabled = true
		c.statsInterval = interval
	}
}

// NewClock creates a new Clock. The first Tick only records its timestamp and returns the minimum delta.
//
// Parameters:
//   - options: functional options to configure the clock
//
// Returns:
//   - *Clock: the newly created clock
func NewClock(options ...ClockBuilderOption) *Clock {
	c := &Clock{
		statsInterval: time.Second,
	}
	for _, option := range options {
		option(c)
	}
	if c.statsInterval <= 0 {
		c.statsInterval = time.Second
	}
	return c
}

// Tick should be called once per frame with the frame's timestamp.
//
// Parameters:
//   - now: the timestamp of the frame being started
//
// Returns:
//   - float32: seconds since the previous Tick, clamped to [common.MinDeltaTime, common.MaxDeltaTime]
func (c *Clock) Tick(now time.Time) float32 {
	if !c.started {
		c.started = true
		c.lastFrame = now
		c.statsStart = now
		return common.MinDeltaTime
	}

	dt := common.ClampDeltaTime(float32(now.Sub(c.lastFrame).Seconds()))
	c.lastFrame = now

	c.frameCount++
	if elapsed := now.Sub(c.statsStart); elapsed >= c.statsInterval {
		c.fps = float64(c.frameCount) / elapsed.Seconds()
		if c.statsEnabled {
			c.logStats(elapsed)
		}
		c.frameCount = 0
		c.statsStart = now
	}
	return dt
}

// FPS returns the frame rate measured over the last completed stats interval.
func (c *Clock) FPS() float64 {
	return c.fps
}

func (c *Clock) logStats(elapsed time.Duration) {
	runtime.ReadMemStats(&c.memStats)
	allocMB := float64(c.memStats.Alloc) / 1024 / 1024
	sysMB := float64(c.memStats.Sys) / 1024 / 1024
	allocRateMB := float64(c.memStats.TotalAlloc-c.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses
	gcCount := c.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = c.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := c.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, c.memStats.PauseNs[i%256]/1000)
		}
	}

	slog.Info("frame stats",
		"fps", c.fps,
		"heap_mb", allocMB,
		"alloc_rate_mb_s", allocRateMB,
		"gc", gcCount,
		"gc_last_us", lastPauseUs,
		"gc_max_us", maxPauseUs,
		"sys_mb", sysMB,
	)

	c.lastGCCount = gcCount
	c.lastTotalAlloc = c.memStats.TotalAlloc
}
