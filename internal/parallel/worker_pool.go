// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel annotates batches of independent narratives concurrently.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"blind-redact/internal/identity"
	"blind-redact/internal/locale"
	"blind-redact/internal/masker"
	"blind-redact/internal/nlp"
	"blind-redact/internal/observability"
)

// WorkerPool manages parallel narrative annotation.
type WorkerPool struct {
	workers  int
	jobs     chan *Job
	results  chan *Result
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	loc      *locale.Locale
	engine   nlp.Engine
	observer *observability.StandardObserver
}

// Job represents one narrative to annotate.
type Job struct {
	// ID identifies the narrative in results, typically its file path.
	ID        string
	Narrative string
	Civilians []identity.CivilianRecord
	Officers  []string
	Options   masker.Options
}

// Result represents one annotated narrative. Err is set when annotation
// failed; failures never abort the rest of the batch.
type Result struct {
	Job      *Job
	Output   masker.Result
	Err      error
	Duration time.Duration
}

// NewWorkerPool creates a pool of workers annotating against a single
// locale. A non-positive worker count falls back to GOMAXPROCS.
func NewWorkerPool(workers int, loc *locale.Locale, engine nlp.Engine,
	observer *observability.StandardObserver) *WorkerPool {

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workers:  workers,
		jobs:     make(chan *Job, workers*2),
		results:  make(chan *Result, workers*2),
		ctx:      ctx,
		cancel:   cancel,
		loc:      loc,
		engine:   engine,
		observer: observer,
	}
}

// Start initializes worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// Stop closes the job queue and waits for in-flight jobs, then closes the
// results channel. Call after the last Submit.
func (wp *WorkerPool) Stop() {
	close(wp.jobs)
	wp.wg.Wait()
	close(wp.results)
	wp.cancel()
}

// Submit adds a job to the queue
func (wp *WorkerPool) Submit(job *Job) {
	select {
	case wp.jobs <- job:
	case <-wp.ctx.Done():
	}
}

// Results returns the results channel
func (wp *WorkerPool) Results() <-chan *Result {
	return wp.results
}

// worker processes jobs from the queue
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for job := range wp.jobs {
		result := wp.processJob(job)

		select {
		case wp.results <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}

// processJob annotates a single narrative.
func (wp *WorkerPool) processJob(job *Job) *Result {
	start := time.Now()

	var done func(bool, map[string]interface{})
	if wp.observer != nil {
		done = wp.observer.StartTiming("worker_pool", "annotate", job.ID)
	}

	redactions, err := masker.Annotate(wp.loc, wp.engine, job.Narrative,
		job.Civilians, job.Officers, job.Options)

	result := &Result{
		Job:      job,
		Duration: time.Since(start),
	}
	if err != nil {
		result.Err = fmt.Errorf("annotating %s: %w", job.ID, err)
	} else {
		result.Output = masker.Result{
			ID:         job.ID,
			Narrative:  job.Narrative,
			Redactions: redactions,
		}
	}

	if done != nil {
		done(err == nil, map[string]interface{}{
			"content_length": len(job.Narrative),
			"redactions":     len(result.Output.Redactions),
		})
	}
	return result
}

// Run annotates all jobs and returns results in submission order.
func Run(jobs []*Job, workers int, loc *locale.Locale, engine nlp.Engine,
	observer *observability.StandardObserver) []*Result {

	pool := NewWorkerPool(workers, loc, engine, observer)
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Stop()
	}()

	byID := make(map[*Job]*Result, len(jobs))
	for result := range pool.Results() {
		byID[result.Job] = result
	}

	ordered := make([]*Result, 0, len(jobs))
	for _, job := range jobs {
		if r, ok := byID[job]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
