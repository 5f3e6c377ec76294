// Package shelltypes defines the shared data model for the shell kernel.
// This file contains the command and output sink contracts.
package shelltypes

import "io"

// Sink is the abstract write side of the transport. The kernel emits
// response and handler output through it and never assumes delivery
// feedback.
type Sink interface {
	Emit(p []byte)
}

// WriterSink adapts an io.Writer to the Sink contract, discarding write
// errors per the no-feedback transport model.
type WriterSink struct {
	W io.Writer
}

// Emit writes p to the underlying writer.
func (s WriterSink) Emit(p []byte) {
	if s.W != nil {
		_, _ = s.W.Write(p)
	}
}

// Command describes one recognized command: its name, help metadata, the
// argument template validation runs against, and the handler invoked once
// a line matches and validates. Implementations must be safe to share;
// the registry never copies or mutates them.
type Command interface {
	// Name is the exact, case-sensitive command name.
	Name() string
	// Description is the one-line summary shown by the help command.
	Description() string
	// ArgHelp describes the command's arguments for the help listing,
	// e.g. "l - LED (1 or 2) s - State (1 or 0)" or "No Arguments".
	ArgHelp() string
	// Args is the argument template validated before dispatch.
	Args() []ArgSpec
	// Execute runs the command with the validated parse result. Output
	// goes to the sink; a non-nil error is reported to the transport as a
	// function error.
	Execute(req *ParseResult, sink Sink) error
}

// Func adapts a plain function to the Command interface for commands that
// carry no state of their own.
type Func struct {
	CmdName     string
	CmdDesc     string
	CmdArgHelp  string
	CmdArgs     []ArgSpec
	HandlerFunc func(req *ParseResult, sink Sink) error
}

// Name returns the command name.
func (f Func) Name() string { return f.CmdName }

// Description returns the one-line help summary.
func (f Func) Description() string { return f.CmdDesc }

// ArgHelp returns the argument help column.
func (f Func) ArgHelp() string { return f.CmdArgHelp }

// Args returns the argument template.
func (f Func) Args() []ArgSpec { return f.CmdArgs }

// Execute invokes the wrapped handler.
func (f Func) Execute(req *ParseResult, sink Sink) error {
	return f.HandlerFunc(req, sink)
}
