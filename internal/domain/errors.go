package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")

	// Parse-time errors.
	ErrNoSeparator        = errors.New("no blank line between stacks and instructions")
	ErrInvalidStackLine   = errors.New("invalid stack line")
	ErrInvalidInstruction = errors.New("invalid instruction")

	// Crane (application) errors.
	ErrInvalidStack = errors.New("invalid stack")
	ErrInvalidMove  = errors.New("invalid move")
	ErrEmptyStack   = errors.New("empty stack")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindParse         ErrorKind = "parse"
	KindCrane         ErrorKind = "crane"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ParseError reports a malformed line in one of the two text blocks.
// Line is 1-based within its block.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CraneError is returned when an instruction cannot be applied, or when the
// tops summary hits an empty stack.
//
// Step is the 0-based index of the failing instruction within its list, or -1
// when the failure did not come from a list. Stack is the offending stack
// index for ErrEmptyStack. Snapshot is a copy of the state the instruction
// failed against and is only set for ErrInvalidMove.
type CraneError struct {
	Err         error
	Step        int
	Stack       int
	Instruction *Instruction
	Snapshot    *StackSet
}

func (e *CraneError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Step >= 0 {
		fmt.Fprintf(&b, " at step %d", e.Step+1)
	}
	if e.Instruction != nil {
		fmt.Fprintf(&b, " (%s)", e.Instruction)
	}
	if e.Snapshot != nil {
		fmt.Fprintf(&b, " sizes=%v", e.Snapshot.Sizes())
	}
	if errors.Is(e.Err, ErrEmptyStack) {
		fmt.Fprintf(&b, ": stack %d", e.Stack+1)
	}
	return b.String()
}

func (e *CraneError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
