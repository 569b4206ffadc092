package filter

import (
	"math"
	"sync"

	"github.com/pkg/errors"
)

// ErrKernelSize is returned when the weight count does not match the radius.
var ErrKernelSize = errors.New("filter: kernel weights do not form a (2r+1)x(2r+1) square")

// Kernel is an odd-sized square matrix of convolution weights.
// Weights are stored row-major; the side length is 2*Radius+1.
type Kernel struct {
	Radius  int
	Weights []float32
}

// NewKernel creates a kernel from row-major weights.
func NewKernel(radius int, weights []float32) (Kernel, error) {
	side := 2*radius + 1
	if radius < 0 || len(weights) != side*side {
		return Kernel{}, errors.Wrapf(ErrKernelSize, "radius %d with %d weights", radius, len(weights))
	}
	return Kernel{Radius: radius, Weights: weights}, nil
}

// mustKernel builds one of the fixed kernels below.
func mustKernel(radius int, weights []float32) Kernel {
	k, err := NewKernel(radius, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Side returns the kernel side length.
func (k Kernel) Side() int {
	return 2*k.Radius + 1
}

// At returns the weight at offset (kx, ky) from the centre.
func (k Kernel) At(kx, ky int) float32 {
	return k.Weights[(ky+k.Radius)*k.Side()+kx+k.Radius]
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() float32 {
	var sum float32
	for _, w := range k.Weights {
		sum += w
	}
	return sum
}

// IdentityKernel returns the 1x1 kernel that leaves an image unchanged.
func IdentityKernel() Kernel {
	return Kernel{Radius: 0, Weights: []float32{1}}
}

// MeanKernel returns a box kernel whose weights are all 1/(2r+1)².
// For radius <= 0, returns the identity kernel.
func MeanKernel(radius int) Kernel {
	if radius <= 0 {
		return IdentityKernel()
	}
	side := 2*radius + 1
	weights := make([]float32, side*side)
	val := float32(1.0) / float32(side*side)
	for i := range weights {
		weights[i] = val
	}
	return Kernel{Radius: radius, Weights: weights}
}

// GaussianKernel generates a 2D Gaussian kernel for the given radius.
//
// The standard deviation is radius/3, so the kernel edge sits at three
// standard deviations. Each weight is rounded half-even to three decimals
// before the kernel is normalized to sum to 1; weights that round to zero
// are skipped by [Convolve].
//
// For radius <= 0, returns the identity kernel.
func GaussianKernel(radius int) Kernel {
	if radius <= 0 {
		return IdentityKernel()
	}

	side := 2*radius + 1
	sigma := float64(radius) / 3.0
	twoSigmaSq := 2 * sigma * sigma
	norm := 1 / (math.Pi * twoSigmaSq)

	weights := make([]float32, side*side)
	var total float32
	for i := range side {
		for j := range side {
			x := float64(j - radius)
			y := float64(i - radius)
			val := norm * math.Exp(-(x*x+y*y)/twoSigmaSq)
			w := float32(math.RoundToEven(val*1000) / 1000)
			weights[i*side+j] = w
			total += w
		}
	}

	if total > 0 {
		for i := range weights {
			weights[i] /= total
		}
	}
	return Kernel{Radius: radius, Weights: weights}
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int]Kernel
	maxLen int
}

var defaultKernelCache = newKernelCache(32)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int]Kernel),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(radius int) Kernel {
	c.mu.RLock()
	if k, ok := c.cache[radius]; ok {
		c.mu.RUnlock()
		return k
	}
	c.mu.RUnlock()

	k := GaussianKernel(radius)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache
		count := 0
		for r := range c.cache {
			delete(c.cache, r)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[radius] = k
	c.mu.Unlock()

	return k
}

// CachedGaussianKernel returns a cached Gaussian kernel for the radius.
// The returned weights are shared and must not be modified.
func CachedGaussianKernel(radius int) Kernel {
	return defaultKernelCache.get(radius)
}

// SoftBlurKernel returns the 3x3 soft blur: half the weight on the centre,
// one eighth on each edge neighbour.
func SoftBlurKernel() Kernel {
	return mustKernel(1, []float32{
		0, 1.0 / 8, 0,
		1.0 / 8, 1.0 / 2, 1.0 / 8,
		0, 1.0 / 8, 0,
	})
}

// SharpenKernel returns the 3x3 sharpen kernel.
func SharpenKernel() Kernel {
	return mustKernel(1, []float32{
		0, -0.5, 0,
		-0.5, 3, -0.5,
		0, -0.5, 0,
	})
}

// EmbossDirections is the number of emboss kernels.
const EmbossDirections = 8

// embossWeights holds one 3x3 kernel per direction. Directions 4-7 are
// the negations of directions 0-3.
var embossWeights = [EmbossDirections][9]float32{
	{0, -1, 0, 0, 0, 0, 0, 1, 0},
	{0, 0, -1, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 1, 0, -1, 0, 0, 0},
	{1, 0, 0, 0, 0, 0, 0, 0, -1},
	{0, 1, 0, 0, 0, 0, 0, -1, 0},
	{0, 0, 1, 0, 0, 0, -1, 0, 0},
	{0, 0, 0, -1, 0, 1, 0, 0, 0},
	{-1, 0, 0, 0, 0, 0, 0, 0, 1},
}

// EmbossKernel returns the emboss kernel for direction, clamped to
// [0, EmbossDirections-1].
func EmbossKernel(direction int) Kernel {
	d := min(max(direction, 0), EmbossDirections-1)
	w := embossWeights[d]
	return mustKernel(1, w[:])
}

// SobelAxes is the number of Sobel kernels.
const SobelAxes = 2

var sobelWeights = [SobelAxes][9]float32{
	// Horizontal gradient
	{-0.5, 0, 0.5, -1, 0, 1, -0.5, 0, 0.5},
	// Vertical gradient
	{-0.5, -1, -0.5, 0, 0, 0, 0.5, 1, 0.5},
}

// SobelKernel returns the Sobel kernel for axis (0 horizontal, 1 vertical),
// clamped to that range.
func SobelKernel(axis int) Kernel {
	a := min(max(axis, 0), SobelAxes-1)
	w := sobelWeights[a]
	return mustKernel(1, w[:])
}
