package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/andie/raster"
)

func buf(c raster.Colour) *raster.Buffer {
	b := raster.MustNew(1, 1)
	b.Fill(c)
	return b
}

func TestSnapshots_PutGet(t *testing.T) {
	s := NewSnapshots(4)
	red := buf(raster.Red)
	s.Put(2, red)

	got, ok := s.Get(2)
	assert.True(t, ok)
	assert.Same(t, red, got)

	_, ok = s.Get(3)
	assert.False(t, ok)
}

func TestSnapshots_IgnoresDepthZeroAndNil(t *testing.T) {
	s := NewSnapshots(4)
	s.Put(0, buf(raster.Red))
	s.Put(-1, buf(raster.Red))
	s.Put(1, nil)
	assert.Equal(t, 0, s.Len())
}

func TestSnapshots_Disabled(t *testing.T) {
	s := NewSnapshots(0)
	s.Put(1, buf(raster.Red))
	assert.Equal(t, 0, s.Len())
}

func TestSnapshots_Nearest(t *testing.T) {
	s := NewSnapshots(8)
	s.Put(1, buf(raster.Red))
	s.Put(4, buf(raster.Green))
	s.Put(9, buf(raster.Blue))

	tests := []struct {
		depth     int
		wantDepth int
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 4},
		{8, 4},
		{20, 9},
	}
	for _, tt := range tests {
		d, b := s.Nearest(tt.depth)
		assert.Equal(t, tt.wantDepth, d, "depth %d", tt.depth)
		assert.Equal(t, tt.wantDepth == 0, b == nil)
	}
}

func TestSnapshots_Truncate(t *testing.T) {
	s := NewSnapshots(8)
	for d := 1; d <= 5; d++ {
		s.Put(d, buf(raster.White))
	}
	s.Truncate(3)

	assert.Equal(t, 3, s.Len())
	_, ok := s.Get(4)
	assert.False(t, ok)
	_, ok = s.Get(3)
	assert.True(t, ok)
}

func TestSnapshots_EvictsLeastRecentlyUsed(t *testing.T) {
	s := NewSnapshots(4)
	for d := 1; d <= 4; d++ {
		s.Put(d, buf(raster.White))
	}
	// Touch 1 so 2 becomes the oldest.
	s.Get(1)
	s.Put(5, buf(raster.White))

	assert.Equal(t, 3, s.Len())
	_, ok := s.Get(1)
	assert.True(t, ok, "recently used snapshot evicted")
	_, ok = s.Get(2)
	assert.False(t, ok)
	_, ok = s.Get(5)
	assert.True(t, ok)
}

func TestSnapshots_Clear(t *testing.T) {
	s := NewSnapshots(4)
	s.Put(1, buf(raster.White))
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSnapshots_Concurrent(t *testing.T) {
	s := NewSnapshots(16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				s.Put(1+(g*100+i)%32, buf(raster.Black))
				s.Nearest(i % 32)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, s.Len(), 16)
}
