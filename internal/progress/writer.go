package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/evandrarf/desertfoxes-be/internal/storage"
)

type WriteOp string

const (
	WriteOpSet    WriteOp = "set"
	WriteOpDelete WriteOp = "delete"
)

// WriteError reports a durable write that did not happen. The in-memory
// record is not rolled back.
type WriteError struct {
	Key string
	Op  WriteOp
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("progress %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type writeJob struct {
	op    WriteOp
	key   string
	value []byte
	done  chan struct{} // flush marker when non-nil
}

// writer applies pending writes on its own goroutine. A write replaces any
// pending write for the same key, so the queue holds at most one data job
// per key and enqueue never blocks.
type writer struct {
	kv      storage.KV
	timeout time.Duration
	onError func(error)

	mu      sync.Mutex
	cond    *sync.Cond
	pending []writeJob
	closed  bool
	wg      sync.WaitGroup
}

func newWriter(kv storage.KV, timeout time.Duration, onError func(error)) *writer {
	w := &writer{
		kv:      kv,
		timeout: timeout,
		onError: onError,
	}
	w.cond = sync.NewCond(&w.mu)
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *writer) run() {
	defer w.wg.Done()

	for {
		job, ok := w.next()
		if !ok {
			return
		}
		if job.done != nil {
			close(job.done)
			continue
		}
		w.apply(job)
	}
}

// next pops the oldest pending job. It reports false once the writer is
// closed and drained.
func (w *writer) next() (writeJob, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for len(w.pending) == 0 && !w.closed {
		w.cond.Wait()
	}
	if len(w.pending) == 0 {
		return writeJob{}, false
	}
	job := w.pending[0]
	w.pending[0] = writeJob{}
	w.pending = w.pending[1:]
	return job, true
}

func (w *writer) apply(job writeJob) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	var err error
	switch job.op {
	case WriteOpSet:
		err = w.kv.Set(ctx, job.key, job.value)
	case WriteOpDelete:
		err = w.kv.Delete(ctx, job.key)
	}
	if err != nil && w.onError != nil {
		w.onError(&WriteError{Key: job.key, Op: job.op, Err: err})
	}
}

func (w *writer) enqueue(job writeJob) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if job.done == nil {
		for i := range w.pending {
			if w.pending[i].done == nil && w.pending[i].key == job.key {
				w.pending[i] = job
				return
			}
		}
	}
	w.pending = append(w.pending, job)
	w.cond.Signal()
}

func (w *writer) close() {
	w.mu.Lock()
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()

	w.wg.Wait()
}
