package acrqerr

import (
	"fmt"

	"github.com/cottand/acrq/formula"
)

type NewParse struct {
	formula.Positioner
	Message string
	stack   []byte
}

func (e NewParse) Error() string {
	return e.Message
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

type NewUnexpectedToken struct {
	formula.Positioner
	Got      string
	Expected string
	stack    []byte
}

func (e NewUnexpectedToken) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("unexpected '%s'", e.Got)
	}
	return fmt.Sprintf("unexpected '%s', expected %s", e.Got, e.Expected)
}
func (e NewUnexpectedToken) Code() ErrCode    { return UnexpectedToken }
func (e NewUnexpectedToken) getStack() []byte { return e.stack }
func (e NewUnexpectedToken) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

type NewUnexpectedEnd struct {
	formula.Positioner
	Expected string
	stack    []byte
}

func (e NewUnexpectedEnd) Error() string {
	return fmt.Sprintf("formula ended unexpectedly, expected %s", e.Expected)
}
func (e NewUnexpectedEnd) Code() ErrCode    { return UnexpectedEnd }
func (e NewUnexpectedEnd) getStack() []byte { return e.stack }
func (e NewUnexpectedEnd) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

type NewBudgetExceeded struct {
	formula.Positioner
	Steps int
	stack []byte
}

func (e NewBudgetExceeded) Error() string {
	return fmt.Sprintf("tableau construction exceeded the %d-step budget", e.Steps)
}
func (e NewBudgetExceeded) Code() ErrCode    { return BudgetExceeded }
func (e NewBudgetExceeded) getStack() []byte { return e.stack }
func (e NewBudgetExceeded) withStack(stack []byte) Error {
	e.stack = stack
	return e
}
