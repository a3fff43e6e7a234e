package frameclock

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/stretchr/testify/assert"
)

func TestTickDeltas(t *testing.T) {
	c := NewClock()
	start := time.Unix(1000, 0)

	assert.Equal(t, common.MinDeltaTime, c.Tick(start))
	assert.InDelta(t, 0.016, c.Tick(start.Add(16*time.Millisecond)), 1e-6)

	// repeated timestamps and clock skew never yield a zero or negative delta
	assert.Equal(t, common.MinDeltaTime, c.Tick(start.Add(16*time.Millisecond)))
	assert.Equal(t, common.MinDeltaTime, c.Tick(start))

	// long pauses are capped
	assert.Equal(t, common.MaxDeltaTime, c.Tick(start.Add(time.Minute)))
}

func TestFPS(t *testing.T) {
	c := NewClock()
	now := time.Unix(0, 0)
	c.Tick(now)
	for range 120 {
		now = now.Add(time.Second / 60)
		c.Tick(now)
	}
	assert.InDelta(t, 60, c.FPS(), 1)
}

func TestStatsLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	c := NewClock(WithStats(500 * time.Millisecond))
	now := time.Unix(0, 0)
	c.Tick(now)
	for range 40 {
		now = now.Add(20 * time.Millisecond)
		c.Tick(now)
	}
	assert.Contains(t, buf.String(), "frame stats")
	assert.Contains(t, buf.String(), "fps=")

	buf.Reset()
	quiet := NewClock()
	quiet.Tick(now)
	quiet.Tick(now.Add(2 * time.Second))
	assert.Empty(t, buf.String())
}
