package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// BandRenderFunc traces every pixel of a band using the worker's own sampler
type BandRenderFunc func(band Band, sampler core.Sampler) RenderStats

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band   Band
	TaskID int
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID   int
	WorkerID int
	Stats    RenderStats
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	render      BandRenderFunc
	sampler     core.Sampler // Never shared with other workers
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers, maxTasks int, render BandRenderFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),   // Buffer for all bands
		resultQueue: make(chan BandResult, maxTasks), // Buffer for all results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			render:      render,
			sampler:     core.NewWorkerSampler(i),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for every worker to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each band has non-overlapping rows, so writes to the shared raster are safe
		stats := w.render(task.Band, w.sampler)

		w.resultQueue <- BandResult{
			TaskID:   task.TaskID,
			WorkerID: w.ID,
			Stats:    stats,
		}
	}
}
