package builtin

import "shellkernel/pkg/shelltypes"

// pong is the fixed acknowledgement the ping command emits.
const pong = "Pong!\r\n"

// PingCommand replies with a fixed acknowledgement. It is the minimal
// worked example of the handler contract.
type PingCommand struct{}

// NewPingCommand returns the "ping" command.
func NewPingCommand() *PingCommand {
	return &PingCommand{}
}

// Name returns the command name "ping".
func (c *PingCommand) Name() string { return "ping" }

// Description returns the one-line help summary.
func (c *PingCommand) Description() string { return "Check Kernel Liveness" }

// ArgHelp returns the argument help column.
func (c *PingCommand) ArgHelp() string { return "No Arguments" }

// Args returns an empty template: ping takes no arguments.
func (c *PingCommand) Args() []shelltypes.ArgSpec { return nil }

// Execute emits the acknowledgement.
func (c *PingCommand) Execute(_ *shelltypes.ParseResult, sink shelltypes.Sink) error {
	sink.Emit([]byte(pong))
	return nil
}
