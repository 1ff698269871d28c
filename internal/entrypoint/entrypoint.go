// Package entrypoint owns the process lifetime: it runs the program's single
// top-level operation once and turns its outcome into an exit status.
package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// RunFunc is the program's top-level operation.
type RunFunc func(ctx context.Context) error

// Outcome is the settled result of a RunFunc. A nil Err means success.
type Outcome struct {
	Err error
}

// Failed reports whether the operation ended in an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// PanicError carries a value recovered from a panicking RunFunc.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Await starts run on its own goroutine and blocks until it returns or panics.
// There is no timeout: a run that never returns keeps the caller waiting.
func Await(ctx context.Context, run RunFunc) Outcome {
	done := make(chan Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- Outcome{Err: &PanicError{Value: r, Stack: debug.Stack()}}
			}
		}()
		if run == nil {
			panic(errors.New("no run operation configured"))
		}
		done <- Outcome{Err: run(ctx)}
	}()
	return <-done
}

// Exit awaits run and maps its outcome onto the process. Success does nothing
// and leaves the exit status to the runtime. Failure writes a single
// "Error: <err>" line to stderr and then calls exit(1).
func Exit(ctx context.Context, stderr io.Writer, exit func(code int), run RunFunc) {
	outcome := Await(ctx, run)
	if !outcome.Failed() {
		return
	}

	fmt.Fprintf(stderr, "Error: %v\n", outcome.Err)
	exit(1)
}

// Main is the process entry point used by package main.
func Main(run RunFunc) {
	Exit(context.Background(), os.Stderr, os.Exit, run)
}
