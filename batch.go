package preslam

import (
	"fmt"
	"runtime"
	"sync"
)

// PoseAtTimes evaluates PoseAt for every query time and returns the
// results in matching order. With Config.Parallel set, the times are split
// into contiguous blocks evaluated concurrently; results are identical to
// sequential evaluation because each query is independent. Small batches
// run sequentially regardless, where goroutine overhead would dominate.
//
// The first failing query aborts the batch and its error is returned.
func (ip *Interpolator) PoseAtTimes(s Series, times []float64) ([]TimedPose, error) {
	if len(times) == 0 {
		return nil, nil
	}

	out := make([]TimedPose, len(times))

	workers := ip.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(times) {
		workers = len(times)
	}

	if !ip.cfg.Parallel || len(times) < workers*minBatchPerWorker {
		for i, t := range times {
			tp, err := ip.PoseAt(s, t)
			if err != nil {
				return nil, fmt.Errorf("query %d (t=%v): %w", i, t, err)
			}
			out[i] = tp
		}
		return out, nil
	}

	// Block partition: each worker owns a contiguous slice of the query
	// times, the last worker takes the remainder.
	block := len(times) / workers
	var wg sync.WaitGroup
	errChan := make(chan error, workers)

	for w := 0; w < workers; w++ {
		start := w * block
		end := start + block
		if w == workers-1 {
			end = len(times)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				tp, err := ip.PoseAt(s, times[i])
				if err != nil {
					errChan <- fmt.Errorf("query %d (t=%v): %w", i, times[i], err)
					return
				}
				out[i] = tp
			}
		}(start, end)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// PoseAtTimes evaluates PoseAt for every query time with default settings.
func PoseAtTimes(s Series, times []float64) ([]TimedPose, error) {
	return defaultInterpolator.PoseAtTimes(s, times)
}
