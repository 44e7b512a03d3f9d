// Package acrqerr holds the coded, positioned errors the prover surfaces
// to callers. Internal invariant violations do not live here: those are
// programming errors and panic instead.
package acrqerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/cottand/acrq/formula"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Parse
	UnexpectedToken
	UnexpectedEnd
	BudgetExceeded
)

type Error interface {
	error
	Code() ErrCode
	formula.Positioner

	withStack([]byte) Error
	getStack() []byte
}

// New attaches the current stack to err, for diagnostics when
// enableDebugErrorPrinting is on.
func New[E Error](err E) Error {
	return err.withStack(debug.Stack())
}

func FormatWithCode(e Error) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}
