package coco

import "sync"

// An Executor is a [Task] spawner, and a Task runner.
//
// When a Task is started or woken, a reference to it is added into an
// internal FIFO queue. The Run method then pops and resumes each of them
// from the queue until the queue is emptied.
// It is done in a single-threaded manner.
// Exactly one task executes at any instant on a given executor; while a
// task runs, the executor waits for it to suspend or complete.
//
// An Executor never wakes a task by itself. Everything that wants a task
// to run again, a channel, a wait group, a join, or an external event
// source, does so by calling the Enqueue method.
//
// The zero value of Executor is ready to use.
//
// Manually calling the Run method is usually not desired when tasks are
// enqueued from outside a running executor. One would instead use the
// Autorun method to set up an autorun function to calling the Run method
// automatically whenever a task is enqueued. The Executor never calls
// the autorun function twice at the same time.
type Executor struct {
	mu      sync.Mutex
	q       queue[*Task]
	running bool
	current *Task
	autorun func()
}

// Autorun sets up an autorun function to calling the Run method
// automatically whenever a [Task] is enqueued while the executor is not
// running.
//
// One must pass a function that calls the Run method.
//
// If f blocks, the Enqueue method may block too.
// The best practice is not to block.
func (e *Executor) Autorun(f func()) {
	e.autorun = f
}

// Run pops and resumes every [Task] in the queue until the queue is
// emptied. A resumed task may enqueue further tasks; those are drained
// in the same invocation.
//
// Run must not be called twice at the same time.
func (e *Executor) Run() {
	e.mu.Lock()
	e.running = true

	for !e.q.Empty() {
		t := e.q.Pop()
		e.runTask(t)
	}

	e.running = false
	e.mu.Unlock()
}

func (e *Executor) runTask(t *Task) {
	// t could have completed after it was enqueued.
	if t.flag&flagCompleted != 0 {
		return
	}

	e.mu.Unlock()
	e.current = t
	t.resume()
	e.current = nil
	e.mu.Lock()
}

// Enqueue appends t to the ready queue so that a following (or already
// running) Run resumes it. Enqueuing a nil or completed task is a no-op.
// Enqueue never resumes a task itself.
//
// Enqueue is how external event sources hand a suspended task back to
// the runtime (see [Awaiter]). It is safe to call from another
// goroutine, provided the caller arranges a Run afterwards, typically
// with the Autorun method.
func (e *Executor) Enqueue(t *Task) {
	if t == nil || t.flag&flagCompleted != 0 {
		return
	}

	var autorun func()

	e.mu.Lock()

	if !e.running && e.autorun != nil {
		e.running = true
		autorun = e.autorun
	}

	e.q.Push(t)
	e.mu.Unlock()

	if autorun != nil {
		autorun()
	}
}

// Clear discards every queued task reference without resuming any of
// them. Tasks suspended elsewhere are unaffected.
func (e *Executor) Clear() {
	e.mu.Lock()
	e.q.Clear()
	e.mu.Unlock()
}

// New creates a [Task] to work on fn, suspended at its entry.
// User code inside fn does not run until the task is started and
// dispatched by Run.
func (e *Executor) New(fn func(*Task)) *Task {
	if fn == nil {
		panic("coco: nil task function")
	}
	return &Task{
		executor: e,
		fn:       fn,
		resumec:  make(chan struct{}),
		yieldc:   make(chan struct{}),
	}
}

// Spawn creates a [Task] to work on fn and enqueues it for its first
// resumption.
func (e *Executor) Spawn(fn func(*Task)) *Task {
	t := e.New(fn)
	t.Start()
	return t
}
