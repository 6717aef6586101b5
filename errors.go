package nav

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks a contract violation by the caller.
var ErrPrecondition = errors.New("nav precondition violated")

// PreconditionError is the panic value raised when Config.DebugChecks is set
// and a precondition fails.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrPrecondition, e.Op, e.Msg)
}

// Unwrap lets errors.Is match ErrPrecondition.
func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// check reports whether cond holds. A failed check panics in debug mode
// and otherwise logs a warning; callers return early either way.
func (ctx *Context) check(cond bool, op, msg string) bool {
	if cond {
		return true
	}
	err := &PreconditionError{Op: op, Msg: msg}
	if ctx.cfg.DebugChecks {
		panic(err)
	}
	ctx.log.Warn("nav: precondition violated", "op", op, "msg", msg)
	return false
}
