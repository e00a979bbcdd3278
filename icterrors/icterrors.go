// Package icterrors holds the error kinds produced by the table
// construction pipeline. Each error kind carries a message, returned
// by Error(), and an optional wrapped cause, returned by Unwrap(); there
// is no separate human-facing description.
package icterrors

import "fmt"

// GrammarError reports a problem found while validating or resolving a
// grammar description: an undefined symbol, a malformed production, or
// an unknown precedence target. It is fatal — generation aborts with a
// single diagnostic (§7).
type GrammarError struct {
	msg  string
	wrap error
}

func (e *GrammarError) Error() string { return e.msg }
func (e *GrammarError) Unwrap() error { return e.wrap }

// Grammarf returns a new *GrammarError built from a format string.
func Grammarf(format string, a ...interface{}) error {
	return &GrammarError{msg: fmt.Sprintf(format, a...)}
}

// WrapGrammar returns a new *GrammarError that wraps cause.
func WrapGrammar(cause error, format string, a ...interface{}) error {
	return &GrammarError{msg: fmt.Sprintf(format, a...), wrap: cause}
}

// EmitError reports that the finished table cannot be handed to code
// emission: the lexer DFA is empty or accepts the empty string, or the
// grammar is too large for the requested integer emission width.
// Table construction itself has already succeeded; only emission is
// refused (§7).
type EmitError struct {
	msg  string
	wrap error
}

func (e *EmitError) Error() string { return e.msg }
func (e *EmitError) Unwrap() error { return e.wrap }

// Emitf returns a new *EmitError built from a format string.
func Emitf(format string, a ...interface{}) error {
	return &EmitError{msg: fmt.Sprintf(format, a...)}
}

// WrapEmit returns a new *EmitError that wraps cause.
func WrapEmit(cause error, format string, a ...interface{}) error {
	return &EmitError{msg: fmt.Sprintf(format, a...), wrap: cause}
}
