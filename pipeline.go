package minigolf

import "sync"

// task runs fn over data split in contiguous chunks, one goroutine per chunk.
func task[T any](workersCount int, data []T, fn func(data T)) {
	dataSize := len(data)
	if dataSize == 0 {
		return
	}
	workersCount = max(1, min(workersCount, dataSize))
	chunkSize := (dataSize + workersCount - 1) / workersCount

	var wg sync.WaitGroup
	for start := 0; start < dataSize; start += chunkSize {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(start, min(start+chunkSize, dataSize))
	}
	wg.Wait()
}
