package coco

const (
	flagStarted = 1 << iota
	flagCompleted
	flagStopping
)

// A Task is an execution of code, similar to a goroutine but cooperative.
//
// A Task is created with an ordinary function taking the task itself as
// the argument. The function body runs on a frame owned by the task and
// makes progress only when an [Executor] dispatches the task; between
// two suspension points no other task of the same executor can run.
//
// A Task suspends exclusively at a reschedule yield (Yield), a bare
// yield (Suspend), a channel Send or Recv, a [WaitGroup] Wait, a
// [Semaphore] Acquire, a Join, or a user [Awaiter] driven by Await.
//
// A Task is created suspended at its entry. Start enqueues it for its
// first resumption; it then alternates between ready, running and
// suspended until the body returns or panics, at which point the task
// is completed, its failure (if any) is captured, and every task
// waiting in Join is enqueued in FIFO order.
type Task struct {
	executor *Executor
	fn       func(*Task)
	flag     uint8
	err      error
	joiners  queue[*Task]

	// The frame runs in lock-step with the executor: resumec passes
	// control to the frame, yieldc passes it back.
	resumec chan struct{}
	yieldc  chan struct{}
}

// stopSignal unwinds a stopped frame so that its deferred calls run.
type stopSignal struct{}

// Executor returns the [Executor] that created t.
func (t *Task) Executor() *Executor {
	return t.executor
}

// Start enqueues t for its first resumption.
func (t *Task) Start() {
	t.executor.Enqueue(t)
}

// Done reports whether t has completed, either by returning, by
// panicking, or by being stopped.
func (t *Task) Done() bool {
	return t.flag&flagCompleted != 0
}

// Err returns the failure captured when the body of t panicked, as a
// [*PanicError]. It returns nil while t has not completed, and nil when
// t completed without failure.
func (t *Task) Err() error {
	return t.err
}

// resume transfers control to the frame of t and returns when t
// suspends or completes. Only the executor calls resume.
func (t *Task) resume() {
	if t.flag&flagStarted == 0 {
		t.flag |= flagStarted
		go t.main()
	} else {
		t.resumec <- struct{}{}
	}
	<-t.yieldc
}

func (t *Task) main() {
	defer t.finish()
	defer func() {
		if v := recover(); v != nil {
			if _, ok := v.(stopSignal); !ok {
				t.err = newPanicError(v)
			}
		}
	}()
	t.fn(t)
}

// finish is the terminal suspension: it marks t completed, releases the
// join waiters onto the ready queue in enrolment order, and hands
// control back to the executor for the last time.
func (t *Task) finish() {
	t.flag |= flagCompleted

	e := t.executor
	for !t.joiners.Empty() {
		e.Enqueue(t.joiners.Pop())
	}

	t.yieldc <- struct{}{}
}

func (t *Task) park() {
	t.yieldc <- struct{}{}
	<-t.resumec

	if t.flag&flagStopping != 0 {
		panic(stopSignal{})
	}
}

// Suspend is the bare yield: it suspends t without enqueuing it.
// Nothing inside the runtime will resume t afterwards; some external
// party must hand t back to [Executor.Enqueue]. See [Awaiter].
//
// Suspend panics when called from outside the running task.
func (t *Task) Suspend() {
	if t.executor.current != t {
		panic("coco: suspend outside the running task")
	}
	t.park()
}

// Yield is the reschedule yield: it suspends t and immediately enqueues
// it again, letting every task already in the ready queue run first.
func (t *Task) Yield() {
	t.executor.Enqueue(t)
	t.Suspend()
}

// Join suspends co, the calling task, until t has completed, and
// returns the failure of t, if any. If t has already completed, Join
// returns immediately. Multiple tasks may join the same t; all are
// woken in FIFO enrolment order upon completion.
func (t *Task) Join(co *Task) error {
	if co == t {
		panic("coco: task cannot join itself")
	}
	if !t.Done() {
		t.joiners.Push(co)
		co.Suspend()
	}
	return t.err
}

// Await drives a user awaitable: if aw is not ready, it stores t with
// aw and suspends until the external event source enqueues t again.
// On return, the result is available from the concrete awaiter.
func (t *Task) Await(aw Awaiter) {
	if aw.Ready() {
		return
	}
	aw.Suspend(t)
	t.Suspend()
}

// Stop destroys the frame of a non-completed task: the frame unwinds so
// that its deferred calls run, the task becomes completed without a
// failure, and its join waiters are released. Stopping a completed task
// is a no-op.
//
// Stop is how an owner drops a task it no longer wants; it is not a
// cancellation mechanism for running code. A task cannot stop itself.
//
// A stopped task may still be referenced by the ready queue or by a
// wait queue it suspended on; those references are skipped on dispatch.
func (t *Task) Stop() {
	if t.flag&flagCompleted != 0 {
		return
	}
	if t.executor.current == t {
		panic("coco: task cannot stop itself")
	}

	if t.flag&flagStarted == 0 {
		// The frame never ran; there is nothing to unwind.
		t.flag |= flagCompleted
		e := t.executor
		for !t.joiners.Empty() {
			e.Enqueue(t.joiners.Pop())
		}
		return
	}

	t.flag |= flagStopping
	t.resumec <- struct{}{}
	<-t.yieldc
}
