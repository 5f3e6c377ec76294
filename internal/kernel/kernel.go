// Package kernel wires the interpreter pipeline together: line intake
// from the transport, the periodic poll that drives normalization,
// parsing, matching, validation, and dispatch, and the fixed status
// responses written back to the output sink.
package kernel

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"shellkernel/internal/commands"
	"shellkernel/internal/commands/builtin"
	"shellkernel/internal/logger"
	"shellkernel/internal/mailbox"
	"shellkernel/internal/parser"
	"shellkernel/internal/validate"
	"shellkernel/pkg/shelltypes"
)

// Kernel is the command interpreter core. One goroutine (the transport
// receive path) calls SubmitLine; another (the host poll loop) calls
// PollAndDispatch. The mailbox between them is the only shared state.
type Kernel struct {
	mbox     mailbox.Mailbox
	registry *commands.Registry
	sink     shelltypes.Sink
	log      *log.Logger
}

// New builds a kernel over the given output sink. The built-in help, ?,
// and ping commands are registered first, followed by cmds in order.
// Registry construction fails on duplicate or empty command names.
func New(sink shelltypes.Sink, cmds ...shelltypes.Command) (*Kernel, error) {
	k := &Kernel{
		sink: sink,
		log:  logger.NewStyledLogger("Kernel"),
	}

	// The help commands list the registry they live in; the closure
	// resolves it lazily, after construction completes.
	all := append(builtin.Commands(k.Commands), cmds...)
	registry, err := commands.NewRegistry(all...)
	if err != nil {
		return nil, err
	}
	k.registry = registry
	return k, nil
}

// Commands returns the registered commands in registration order.
func (k *Kernel) Commands() []shelltypes.Command {
	return k.registry.Commands()
}

// SubmitLine accepts one complete line from the transport. A line whose
// first byte is a carriage return is an echo and is ignored. Oversize
// input is rejected whole with mailbox.ErrLineTooLong; the transport
// caller must resend, nothing is truncated. A line submitted before the
// previous one was polled overwrites it (dropped-line semantics, logged).
// Safe to call from a different goroutine than PollAndDispatch.
func (k *Kernel) SubmitLine(p []byte) error {
	if len(p) == 0 || p[0] == '\r' {
		return nil
	}
	dropped, err := k.mbox.Put(p)
	if err != nil {
		k.log.Warn("rejecting oversize line", "len", len(p), "error", err)
		return err
	}
	if dropped {
		k.log.Warn("pending line overwritten before poll")
	}
	return nil
}

// PollAndDispatch runs one full processing cycle if a line is pending and
// reports whether it did. The pending flag is cleared whatever the
// outcome; a line, once accepted, is processed exactly once.
func (k *Kernel) PollAndDispatch() bool {
	var buf [shelltypes.MaxLineLen]byte
	n, ok := k.mbox.Take(buf[:])
	if !ok {
		return false
	}
	k.processLine(buf[:n])
	return true
}

// processLine is the dispatch pipeline, short-circuiting on the first
// failure: normalize, parse, match, validate, execute. Exactly one status
// response is emitted per cycle, except for a line that normalizes to
// nothing, which is consumed silently.
func (k *Kernel) processLine(line []byte) {
	cycle := uuid.NewString()[:8]

	n := parser.Normalize(line, len(line))
	if n == 0 {
		k.log.Debug("blank line, nothing to dispatch", "cycle", cycle)
		return
	}

	req, err := parser.Parse(line[:n])
	if err != nil {
		k.log.Debug("parse failed", "cycle", cycle, "error", err)
		k.respond(shelltypes.ResponseArgErr)
		return
	}

	cmd, ok := k.registry.Match(req.CommandName)
	if !ok {
		k.log.Debug("no matching command", "cycle", cycle, "command", req.CommandName)
		k.respond(shelltypes.ResponseCmdErr)
		return
	}

	if err := validate.Validate(cmd.Args(), req); err != nil {
		k.log.Debug("validation failed", "cycle", cycle, "command", req.CommandName, "error", err)
		k.respond(shelltypes.ResponseArgErr)
		return
	}

	if err := cmd.Execute(req, k.sink); err != nil {
		k.log.Debug("handler reported failure", "cycle", cycle, "command", req.CommandName, "error", err)
		k.respond(shelltypes.ResponseFuncErr)
		return
	}

	k.log.Debug("dispatched", "cycle", cycle, "command", req.CommandName, "args", len(req.Arguments))
	k.respond(shelltypes.ResponseOK)
}

// respond renders one fixed status response to the output sink.
func (k *Kernel) respond(code shelltypes.ResponseCode) {
	k.sink.Emit(code.Wire())
}
