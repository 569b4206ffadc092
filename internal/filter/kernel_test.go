package filter

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussianKernelZeroRadius(t *testing.T) {
	for _, r := range []int{0, -5} {
		k := GaussianKernel(r)
		assert.Equal(t, 0, k.Radius)
		assert.Equal(t, []float32{1}, k.Weights)
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 10} {
		k := GaussianKernel(r)
		require.Len(t, k.Weights, k.Side()*k.Side())
		assert.InDelta(t, 1.0, k.Sum(), 1e-4, "radius %d", r)
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	k := GaussianKernel(3)
	for ky := -3; ky <= 3; ky++ {
		for kx := -3; kx <= 3; kx++ {
			w := k.At(kx, ky)
			assert.Equal(t, w, k.At(-kx, ky))
			assert.Equal(t, w, k.At(kx, -ky))
			assert.Equal(t, w, k.At(ky, kx))
		}
	}
}

func TestGaussianKernelPeakAtCentre(t *testing.T) {
	k := GaussianKernel(2)
	centre := k.At(0, 0)
	for i, w := range k.Weights {
		if i != len(k.Weights)/2 {
			assert.Less(t, w, centre)
		}
	}
}

func TestGaussianKernelRoundsSmallWeightsToZero(t *testing.T) {
	// With sigma = 1/3 the diagonal weight is ~0.00018 before rounding.
	k := GaussianKernel(1)
	assert.Zero(t, k.At(-1, -1))
	assert.Zero(t, k.At(1, 1))
	assert.Greater(t, k.At(0, 1), float32(0))
}

func TestCachedGaussianKernel(t *testing.T) {
	a := CachedGaussianKernel(4)
	b := CachedGaussianKernel(4)
	assert.Equal(t, GaussianKernel(4), a)
	assert.Same(t, &a.Weights[0], &b.Weights[0])
}

func TestKernelCacheEviction(t *testing.T) {
	c := newKernelCache(4)
	for r := 1; r <= 10; r++ {
		c.get(r)
		assert.LessOrEqual(t, len(c.cache), 4)
	}
	assert.Contains(t, c.cache, 10)
}

func TestNewKernel(t *testing.T) {
	_, err := NewKernel(1, make([]float32, 8))
	assert.True(t, errors.Is(err, ErrKernelSize))

	_, err = NewKernel(-1, nil)
	assert.True(t, errors.Is(err, ErrKernelSize))

	k, err := NewKernel(1, make([]float32, 9))
	require.NoError(t, err)
	assert.Equal(t, 3, k.Side())
}

func TestMeanKernel(t *testing.T) {
	k := MeanKernel(2)
	require.Len(t, k.Weights, 25)
	for _, w := range k.Weights {
		assert.Equal(t, float32(1)/25, w)
	}
	assert.Equal(t, IdentityKernel(), MeanKernel(0))
}

func TestFixedKernelSums(t *testing.T) {
	assert.InDelta(t, 1.0, SoftBlurKernel().Sum(), 1e-6)
	assert.InDelta(t, 1.0, SharpenKernel().Sum(), 1e-6)
	for d := range EmbossDirections {
		assert.Zero(t, EmbossKernel(d).Sum(), "emboss direction %d", d)
	}
	for a := range SobelAxes {
		assert.Zero(t, SobelKernel(a).Sum(), "sobel axis %d", a)
	}
}

func TestEmbossKernelClampsDirection(t *testing.T) {
	assert.Equal(t, EmbossKernel(0), EmbossKernel(-3))
	assert.Equal(t, EmbossKernel(7), EmbossKernel(99))
	for d := range 4 {
		a, b := EmbossKernel(d), EmbossKernel(d+4)
		for i := range a.Weights {
			assert.Equal(t, -a.Weights[i], b.Weights[i])
		}
	}
}

func TestSobelKernelClampsAxis(t *testing.T) {
	assert.Equal(t, SobelKernel(0), SobelKernel(-1))
	assert.Equal(t, SobelKernel(1), SobelKernel(5))
	assert.NotEqual(t, SobelKernel(0), SobelKernel(1))
}
