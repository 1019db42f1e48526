package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardEndpoints(t *testing.T) {
	s := New(1, 4, 0, 300)

	assert.Equal(t, 0.0, s.Forward(1))
	assert.Equal(t, 300.0, s.Forward(4))
	assert.InDelta(t, 150.0, s.Forward(2.5), 1e-9)
}

func TestForwardClampsToRange(t *testing.T) {
	s := New(1, 4, 0, 300)

	assert.Equal(t, 0.0, s.Forward(-10))
	assert.Equal(t, 300.0, s.Forward(99))
	assert.Equal(t, 0.0, s.Forward(math.NaN()))
}

func TestInverseClampsToDomain(t *testing.T) {
	s := New(1, 4, 0, 300)

	assert.Equal(t, 1.0, s.Inverse(-50))
	assert.Equal(t, 4.0, s.Inverse(1000))
	assert.InDelta(t, 2.0, s.Inverse(100), 1e-9)
}

// Forward(Inverse(p)) lands back on p once p is clamped into the range.
func TestRoundTrip(t *testing.T) {
	s := New(1, 4, 0, 70)

	for p := -20.0; p <= 90; p += 0.5 {
		got := s.Forward(s.Inverse(p))
		want := s.ClampPixel(p)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Forward(Inverse(%.1f)) = %.6f, want %.6f", p, got, want)
		}
	}
}

func TestReversedRange(t *testing.T) {
	s := New(1, 4, 300, 0)

	assert.Equal(t, 300.0, s.Forward(1))
	assert.Equal(t, 0.0, s.Forward(4))
	assert.InDelta(t, 3.0, s.Inverse(100), 1e-9)
}

func TestDegenerateDomain(t *testing.T) {
	s := New(2, 2, 0, 100)

	assert.Equal(t, 50.0, s.Forward(2))
	assert.Equal(t, 2.0, s.Inverse(80))
	assert.Equal(t, []float64{2}, s.Ticks(4))
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name      string
		min, max  float64
		count     int
		wantTicks []float64
	}{
		{"months", 1, 4, 4, []float64{1, 2, 3, 4}},
		{"months, three", 1, 4, 3, []float64{1, 2, 3, 4}},
		{"months, two", 1, 4, 2, []float64{2, 4}},
		{"months, one", 1, 4, 1, []float64{2, 4}},
		{"year by four", 1, 12, 4, []float64{2, 4, 6, 8, 10, 12}},
		{"year by twelve", 1, 12, 12, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"decade", 0, 10, 5, []float64{0, 2, 4, 6, 8, 10}},
		{"halves", 0, 2, 5, []float64{0, 0.5, 1, 1.5, 2}},
		{"tenths", 0, 1, 10, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{"none", 1, 4, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.min, tt.max, 0, 100)
			assert.Equal(t, tt.wantTicks, s.Ticks(tt.count))
		})
	}
}

func TestTicksStayInsideDomain(t *testing.T) {
	s := New(0.3, 3.7, 0, 100)

	ticks := s.Ticks(4)
	if len(ticks) == 0 {
		t.Fatal("expected ticks, got none")
	}
	for i, v := range ticks {
		if v < 0.3 || v > 3.7 {
			t.Errorf("tick %d = %v outside domain", i, v)
		}
		if i > 0 && v <= ticks[i-1] {
			t.Errorf("ticks not ascending at %d: %v", i, ticks)
		}
	}
}

func TestTicksNeverEmpty(t *testing.T) {
	domains := [][2]float64{{1, 4}, {1.1, 1.9}, {0.3, 3.7}, {1, 12}, {-5, -4.2}}

	for _, d := range domains {
		s := New(d[0], d[1], 0, 100)
		for count := 1; count <= 12; count++ {
			ticks := s.Ticks(count)
			if len(ticks) == 0 {
				t.Errorf("Ticks(%d) on [%v, %v] is empty", count, d[0], d[1])
			}
			for _, v := range ticks {
				if v < d[0] || v > d[1] {
					t.Errorf("Ticks(%d) on [%v, %v]: %v outside domain", count, d[0], d[1], v)
				}
			}
		}
	}
}
