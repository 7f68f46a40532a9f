package samplesize

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func TestCalculateScaleValue(t *testing.T) {
	tests := []struct {
		name     string
		target   Size
		actual   Size
		desired  Size
		expected int
	}{
		{"no target", Size{0, 0}, Size{4000, 3000}, Size{4000, 3000}, 1},
		{"square", Size{100, 100}, Size{1000, 1000}, Size{100, 100}, 8},
		{"height only", Size{0, 100}, Size{500, 1000}, Size{50, 100}, 8},
		{"width only", Size{200, 0}, Size{800, 600}, Size{200, 150}, 4},
		{"portrait in square box", Size{100, 100}, Size{1000, 4000}, Size{25, 100}, 32},
		{"landscape in square box", Size{100, 100}, Size{4000, 1000}, Size{100, 25}, 32},
		{"exact power of two", Size{256, 256}, Size{1024, 1024}, Size{256, 256}, 4},
		{"just below next power", Size{100, 100}, Size{1599, 1599}, Size{100, 100}, 8},
		{"just at next power", Size{100, 100}, Size{1600, 1600}, Size{100, 100}, 16},
		{"target larger than image", Size{2000, 2000}, Size{100, 100}, Size{2000, 2000}, 1},
		{"same size", Size{640, 480}, Size{640, 480}, Size{640, 480}, 1},
		{"desired width truncated to zero", Size{1, 1}, Size{1, 1000}, Size{0, 1}, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calculate(tt.target, tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r.Factor)
			assert.Equal(t, tt.desired, r.Desired)
			assert.Equal(t, tt.actual, r.Actual)

			factor, err := CalculateScaleValue(tt.target.Width, tt.target.Height, tt.actual.Width, tt.actual.Height)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, factor)
		})
	}
}

func TestCalculateScaleValue_InvalidArgument(t *testing.T) {
	tests := []struct {
		name   string
		target Size
		actual Size
	}{
		{"zero actual width", Size{100, 100}, Size{0, 100}},
		{"zero actual height", Size{100, 100}, Size{100, 0}},
		{"all zero", Size{0, 0}, Size{0, 0}},
		{"negative actual", Size{100, 100}, Size{-1, 100}},
		{"negative target width", Size{-1, 100}, Size{100, 100}},
		{"negative target height", Size{100, -1}, Size{100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, err := CalculateScaleValue(tt.target.Width, tt.target.Height, tt.actual.Width, tt.actual.Height)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, 0, factor)
		})
	}
}

func TestResizeDimension(t *testing.T) {
	tests := []struct {
		name                                                     string
		maxPrimary, maxSecondary, actualPrimary, actualSecondary int
		expected                                                 int
	}{
		{"no caps", 0, 0, 1234, 99, 1234},
		{"secondary cap only", 0, 100, 500, 1000, 50},
		{"secondary cap only truncates", 0, 100, 333, 1000, 33},
		{"primary cap only", 200, 0, 800, 600, 200},
		{"primary cap binds", 200, 200, 800, 600, 200},
		{"secondary cap binds", 200, 100, 800, 600, 133},
		{"both caps exact", 400, 300, 800, 600, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResizeDimension(tt.maxPrimary, tt.maxSecondary, tt.actualPrimary, tt.actualSecondary))
		})
	}
}

func TestFindBestSampleSize(t *testing.T) {
	tests := []struct {
		name                                                   string
		actualWidth, actualHeight, desiredWidth, desiredHeight int
		expected                                               int
	}{
		{"ratio below two", 150, 150, 100, 100, 1},
		{"ratio two", 200, 200, 100, 100, 2},
		{"smaller ratio wins", 1600, 400, 100, 100, 4},
		{"upscale", 100, 100, 200, 200, 1},
		{"one infinite ratio", 1000, 1000, 0, 100, 8},
		{"both infinite ratios", 1000, 1000, 0, 0, MaxFactor},
		{"nan ratio", 0, 0, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindBestSampleSize(tt.actualWidth, tt.actualHeight, tt.desiredWidth, tt.desiredHeight))
		})
	}
}

func TestCalculate_NoTargetAlwaysOne(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		actual := Size{rnd.Intn(10000) + 1, rnd.Intn(10000) + 1}
		factor, err := CalculateScaleValue(0, 0, actual.Width, actual.Height)
		require.NoError(t, err)
		assert.Equal(t, 1, factor, "actual %s", actual)
	}
}

func TestCalculate_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		actual := Size{rnd.Intn(8000) + 1, rnd.Intn(8000) + 1}
		target := Size{rnd.Intn(actual.Width + 1), rnd.Intn(actual.Height + 1)}

		r, err := Calculate(target, actual)
		require.NoError(t, err)
		assert.True(t, isPowerOfTwo(r.Factor), "factor %d for %s in %s", r.Factor, actual, target)

		scaled := r.Scaled()
		assert.GreaterOrEqual(t, scaled.Width, r.Desired.Width, "width for %s in %s", actual, target)
		assert.GreaterOrEqual(t, scaled.Height, r.Desired.Height, "height for %s in %s", actual, target)
	}
}

func TestCalculate_MonotonicInActual(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		target := Size{rnd.Intn(500), rnd.Intn(500)}
		actual := Size{rnd.Intn(5000) + 1, rnd.Intn(5000) + 1}
		larger := Size{actual.Width + rnd.Intn(3000), actual.Height + rnd.Intn(3000)}

		before, err := Calculate(target, actual)
		require.NoError(t, err)
		after, err := Calculate(target, larger)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, after.Factor, before.Factor, "target %s: %s -> %s", target, actual, larger)
	}
}

func TestCalculate_MonotonicInTarget(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		actual := Size{rnd.Intn(5000) + 1, rnd.Intn(5000) + 1}
		target := Size{rnd.Intn(500) + 1, rnd.Intn(500) + 1}
		larger := Size{target.Width + rnd.Intn(500), target.Height + rnd.Intn(500)}

		before, err := Calculate(target, actual)
		require.NoError(t, err)
		after, err := Calculate(larger, actual)
		require.NoError(t, err)

		assert.LessOrEqual(t, after.Factor, before.Factor, "actual %s: %s -> %s", actual, target, larger)
	}
}

func TestResult_Scaled(t *testing.T) {
	r := Result{Factor: 4, Actual: Size{1001, 750}}
	assert.Equal(t, Size{250, 187}, r.Scaled())
}
