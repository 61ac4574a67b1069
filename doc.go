// Package coco is a single-threaded cooperative concurrency runtime:
// tasks, channels and wait groups coordinated through one FIFO ready
// queue.
//
// Go already has goroutines; coco is for the cases where one wants many
// lightweight activities without parallelism: everything belonging to
// one [Executor] runs strictly one at a time, state shared between
// tasks needs no locks, and every interleaving point is visible in the
// source as a call that may suspend.
//
// # Tasks and the Executor
//
// A [Task] is created from an ordinary function and makes progress only
// when its [Executor] dispatches it:
//
//	var e coco.Executor
//
//	t := e.Spawn(func(co *coco.Task) {
//		// runs when e.Run() dispatches it
//	})
//
//	e.Run()
//
// [Executor.Run] drains the ready queue in FIFO order, including tasks
// enqueued while it runs, and returns when the queue is empty. Nothing
// inside the runtime ever resumes a task directly; channels, wait
// groups and joins all wake tasks by enqueuing them, which is what
// makes the global FIFO ordering hold across unrelated subsystems.
//
// # Suspension
//
// A task suspends only at [Task.Yield] (suspend and requeue self),
// [Task.Suspend] (suspend until some external party requeues it),
// channel Send/Recv, [WaitGroup.Wait], [Semaphore.Acquire],
// [Task.Join] and [Task.Await]. No other statement suspends.
//
// # Channels
//
// A [Chan] carries typed values between tasks with Go channel
// semantics: capacity zero gives a rendezvous, a positive capacity
// gives a bounded buffer, blocked senders and receivers are served in
// FIFO order, and Close wakes everyone. Recv reports ok == false once
// the channel is closed and drained; Send reports false once the
// channel is closed.
//
// Closing a shared channel is the runtime's only shutdown mechanism:
// there are no timers and no external cancellation. Participants
// observe the closed channel on their next operation and wind down
// voluntarily.
//
// # Failure Handling
//
// A panic in a task body never crashes the executor and never aborts
// sibling tasks. The failure is captured as a [*PanicError] at the
// task's terminal suspension and surfaces through [Task.Err] and
// through [Task.Join] in every joining task. A failed task with no
// joiner simply holds its failure for inspection.
//
// # External Awaiters
//
// Anything asynchronous outside the runtime, an I/O completion, a
// timer, a message from another goroutine, is bridged in with the
// [Awaiter] interface: a ready check, a place to store the suspended
// task, and an external party that eventually hands the task back to
// [Executor.Enqueue] and arranges a Run. See the Awaiter example.
package coco
