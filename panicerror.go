package coco

import (
	"fmt"
	"runtime/debug"
)

// A PanicError is the failure captured when a task body panics. It
// carries the original panic value together with the stack trace at
// the point of the panic.
//
// A PanicError surfaces through [Task.Err] and [Task.Join]; it never
// escapes [Executor.Run]. Sibling tasks keep running.
type PanicError struct {
	// Value is the original value passed to panic.
	Value any

	// Stack is the frame stack trace at the point of the panic.
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("coco: task panicked: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns Value when the task panicked with an error, so that
// errors.Is and errors.As observe the original failure through Join.
// It returns nil otherwise.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
