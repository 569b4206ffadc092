package parallel

import "sync"

// MinBandRows is the smallest band handed to a worker. Images shorter than
// two bands are processed on the calling goroutine.
const MinBandRows = 16

var (
	defaultOnce sync.Once
	defaultPool *WorkerPool
)

// Default returns the process-wide pool, starting it on first use.
func Default() *WorkerPool {
	defaultOnce.Do(func() {
		defaultPool = NewWorkerPool(0)
	})
	return defaultPool
}

// Bands splits [0, height) into at most n contiguous half-open bands of at
// least MinBandRows rows each. The bands cover every row exactly once.
func Bands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	n = max(min(n, height/MinBandRows), 1)

	bands := make([][2]int, 0, n)
	step := height / n
	extra := height % n
	y := 0
	for i := range n {
		rows := step
		if i < extra {
			rows++
		}
		bands = append(bands, [2]int{y, y + rows})
		y += rows
	}
	return bands
}

// Rows calls fn once per band of [0, height) and waits for all calls.
// fn must only write rows inside its band.
func (p *WorkerPool) Rows(height int, fn func(y0, y1 int)) {
	bands := Bands(height, p.Workers()*2)
	if len(bands) <= 1 {
		if height > 0 {
			fn(0, height)
		}
		return
	}

	jobs := make([]func(), len(bands))
	for i, b := range bands {
		jobs[i] = func() { fn(b[0], b[1]) }
	}
	p.ExecuteAll(jobs)
}
