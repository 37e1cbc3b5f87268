// Package scheduler enqueues jobs on a worker pool at fixed intervals.
package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/DoughGuardian_Go/internal/logger"
	"github.com/osse101/DoughGuardian_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

type entry struct {
	interval time.Duration
	job      worker.Job
}

// Scheduler manages scheduled jobs. Jobs registered with Schedule begin
// ticking once Start is called.
type Scheduler struct {
	pool    Enqueuer
	entries []entry

	mu       sync.Mutex
	started  bool
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run every interval. Non-positive intervals
// are ignored. Jobs added after Start begin immediately.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.Warn("Ignoring job with non-positive interval", "job", job.Name(), "interval", interval)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e := entry{interval: interval, job: job}
	s.entries = append(s.entries, e)
	if s.started {
		s.launch(e)
	}
}

// Start begins ticking every registered job
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	for _, e := range s.entries {
		s.launch(e)
	}
}

// Caller holds s.mu.
func (s *Scheduler) launch(e entry) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		logger.Info("Job scheduled", "job", e.job.Name(), "interval", e.interval)
		for {
			select {
			case <-ticker.C:
				// a full queue drops this tick; the next one retries
				s.pool.Enqueue(e.job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
