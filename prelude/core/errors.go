package core

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrEmptyList is returned by partial functions such as Head or Foldl1
	// when given an empty list.
	ErrEmptyList = errors.New("empty list")

	// ErrNegativeIndex is returned by Index for i < 0.
	ErrNegativeIndex = errors.New("negative index")

	// ErrIndexTooLarge is returned by Index for i >= len(xs).
	ErrIndexTooLarge = errors.New("index too large")

	// ErrDivideByZero is the panic value of integer division by zero.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrCannotShow is wrapped by Show when a value has no textual form.
	ErrCannotShow = errors.New("can not show")
)

// UserError is the panic value raised by Error.
type UserError struct {
	Message string
}

func (e UserError) Error() string {
	return e.Message
}

// Error aborts evaluation with msg, like Haskell's error. It panics with a
// UserError and never returns; the type parameter lets it stand in for a
// value of any type:
//
//	func fromDigit(r rune) int {
//	    if r < '0' || r > '9' {
//	        return core.Error[int]("fromDigit: not a digit")
//	    }
//	    return int(r - '0')
//	}
func Error[T any](msg string) T {
	panic(UserError{Message: msg})
}

// Errorf is Error with formatting.
func Errorf[T any](format string, args ...any) T {
	panic(UserError{Message: fmt.Sprintf(format, args...)})
}

// ErrPanic wraps a recovered panic value as an error.
// This is used when a user-provided function panics inside a lazy stream.
// It includes a cleaned-up stack trace that excludes internal prelude frames.
type ErrPanic struct {
	Value any
	Stack string // Cleaned stack trace
}

func (e ErrPanic) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error, so that
// errors.Is(err, ErrDivideByZero) works through a recovered panic.
func (e ErrPanic) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// NewPanicError creates an ErrPanic from a recovered value with a cleaned stack trace.
func NewPanicError(recovered any) ErrPanic {
	return ErrPanic{
		Value: recovered,
		Stack: cleanStack(captureStack(4)), // skip: runtime.Callers, captureStack, NewPanicError, defer func
	}
}

// captureStack returns the current stack trace as a string.
func captureStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}

// internalPrefix marks frames that belong to this module's library code.
const internalPrefix = "github.com/lguimbarda/min-prelude/prelude/"

// cleanStack drops internal prelude frames, keeping user code and the
// standard library.
func cleanStack(stack string) string {
	lines := strings.Split(stack, "\n")
	var result []string
	var skipNext bool

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Function lines are unindented; the file:line that follows is tabbed.
		if !strings.HasPrefix(line, "\t") {
			if strings.Contains(line, internalPrefix) && !strings.Contains(line, "_test.") {
				skipNext = true
				continue
			}
			skipNext = false
		} else if skipNext {
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
