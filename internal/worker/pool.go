package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nephila016/fakefilter/internal/classify"
	"github.com/nephila016/fakefilter/internal/debug"
)

// Job represents a classification job
type Job struct {
	Email string
	Index int
}

// Pool runs classifications across concurrent workers
type Pool struct {
	workers    int
	classifier *classify.Classifier

	// Channels
	jobs    chan Job
	results chan *classify.Result

	// State
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	closeJobs    sync.Once
	closeResults sync.Once
	processed    int64
	flagged      int64

	// Callbacks
	onResult func(*classify.Result)
}

// PoolConfig holds pool configuration
type PoolConfig struct {
	Workers    int
	BufferSize int
}

// DefaultPoolConfig returns default configuration
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		Workers:    4,
		BufferSize: 256,
	}
}

// NewPool creates a new worker pool
func NewPool(c *classify.Classifier, config *PoolConfig) *Pool {
	if config == nil {
		config = DefaultPoolConfig()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    config.Workers,
		classifier: c,
		jobs:       make(chan Job, config.BufferSize),
		results:    make(chan *classify.Result, config.BufferSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetCallback sets the per-result callback
func (p *Pool) SetCallback(onResult func(*classify.Result)) {
	p.onResult = onResult
}

// Start starts the worker pool
func (p *Pool) Start() {
	log := debug.GetLogger()
	log.Info("POOL", "Starting %d workers", p.workers)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit submits a job to the pool
func (p *Pool) Submit(email string, index int) {
	select {
	case p.jobs <- Job{Email: email, Index: index}:
	case <-p.ctx.Done():
	}
}

// Results returns the results channel
func (p *Pool) Results() <-chan *classify.Result {
	return p.results
}

// Close closes the job channel and waits for workers to finish
func (p *Pool) Close() {
	p.closeJobs.Do(func() { close(p.jobs) })
	p.wg.Wait()
	p.closeResults.Do(func() { close(p.results) })
}

// Stop cancels in-flight work and unblocks any consumer of Results.
// Safe to call concurrently with Close.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
	p.closeResults.Do(func() { close(p.results) })
}

// Processed returns the number of processed jobs
func (p *Pool) Processed() int64 {
	return atomic.LoadInt64(&p.processed)
}

// Flagged returns the number of fake or suspect results
func (p *Pool) Flagged() int64 {
	return atomic.LoadInt64(&p.flagged)
}

// worker processes jobs from the queue
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	log := debug.GetLogger()
	log.Detail("WORKER", "Worker %d started", id)

	localProcessed := 0

	for {
		select {
		case job, ok := <-p.jobs:
			if !ok {
				log.Detail("WORKER", "Worker %d shutting down (processed %d)", id, localProcessed)
				return
			}

			result := p.classifier.Classify(job.Email)

			atomic.AddInt64(&p.processed, 1)
			if result.Verdict != classify.VerdictClean {
				atomic.AddInt64(&p.flagged, 1)
			}

			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}

			if p.onResult != nil {
				p.onResult(result)
			}

			localProcessed++

		case <-p.ctx.Done():
			log.Detail("WORKER", "Worker %d cancelled", id)
			return
		}
	}
}

// ProcessEmails classifies a list of addresses and returns the results
// in input order.
func (p *Pool) ProcessEmails(emails []string) []*classify.Result {
	results := make([]*classify.Result, 0, len(emails))
	resultMap := make(map[string]*classify.Result, len(emails))
	var mu sync.Mutex

	done := make(chan struct{})
	go func() {
		for result := range p.results {
			mu.Lock()
			resultMap[result.Email] = result
			mu.Unlock()
		}
		close(done)
	}()

	for i, email := range emails {
		p.Submit(email, i)
	}

	p.Close()
	<-done

	for _, email := range emails {
		if result, ok := resultMap[email]; ok {
			results = append(results, result)
		}
	}

	return results
}

// Stats holds pool statistics
type Stats struct {
	Processed int64
	Flagged   int64
	Duration  time.Duration
	Rate      float64 // emails per second
}

// GetStats returns current statistics
func (p *Pool) GetStats(startTime time.Time) *Stats {
	processed := p.Processed()
	duration := time.Since(startTime)

	rate := float64(0)
	if duration.Seconds() > 0 {
		rate = float64(processed) / duration.Seconds()
	}

	return &Stats{
		Processed: processed,
		Flagged:   p.Flagged(),
		Duration:  duration,
		Rate:      rate,
	}
}
