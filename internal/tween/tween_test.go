package tween

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtEndpoints(t *testing.T) {
	tw := Tween{From: 4, To: 1, Duration: 9 * time.Second}

	assert.Equal(t, 4.0, tw.At(0))
	assert.Equal(t, 1.0, tw.At(9*time.Second))
	assert.Equal(t, 1.0, tw.At(time.Minute))
	assert.InDelta(t, 2.5, tw.At(4500*time.Millisecond), 1e-9)
}

func TestAtMonotonic(t *testing.T) {
	tw := Tween{From: 4, To: 1, Duration: time.Second}

	prev := tw.At(0)
	for ms := 10; ms <= 1000; ms += 10 {
		v := tw.At(time.Duration(ms) * time.Millisecond)
		if v > prev {
			t.Fatalf("sweep went backwards at %dms: %v > %v", ms, v, prev)
		}
		prev = v
	}
}

func TestLinearEase(t *testing.T) {
	tw := Tween{From: 0, To: 10, Duration: time.Second, Ease: Linear}

	assert.InDelta(t, 2.5, tw.At(250*time.Millisecond), 1e-9)
}

func TestZeroDurationIsDone(t *testing.T) {
	tw := Tween{From: 4, To: 1}

	assert.True(t, tw.Done(0))
	assert.Equal(t, 1.0, tw.At(0))
}

func TestCubicInOut(t *testing.T) {
	assert.Equal(t, 0.0, CubicInOut(0))
	assert.Equal(t, 0.5, CubicInOut(0.5))
	assert.Equal(t, 1.0, CubicInOut(1))
	assert.Less(t, CubicInOut(0.25), 0.25)
	assert.Greater(t, CubicInOut(0.75), 0.75)
}

func TestRunEndsOnTarget(t *testing.T) {
	tw := Tween{From: 4, To: 1, Duration: 40 * time.Millisecond}

	var frames []float64
	err := Run(context.Background(), tw, 5*time.Millisecond, func(v float64) {
		frames = append(frames, v)
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(frames), 2)
	assert.Equal(t, 4.0, frames[0])
	assert.Equal(t, 1.0, frames[len(frames)-1])
}

func TestRunCancelled(t *testing.T) {
	tw := Tween{From: 4, To: 1, Duration: time.Hour}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Run(ctx, tw, 5*time.Millisecond, func(float64) {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
