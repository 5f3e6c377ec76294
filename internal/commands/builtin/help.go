// Package builtin provides the built-in shell commands: the help listing
// (bound to both "help" and "?") and the ping liveness check. They are
// reference implementations of the command contract.
package builtin

import (
	"fmt"
	"strings"

	"shellkernel/internal/version"
	"shellkernel/pkg/shelltypes"
)

// banner is the fixed header the help command renders before the
// per-command listing. The Rev line carries the kernel's three-part
// version number.
const banner = "<-- Shell Debug Kernel -->\r\n" +
	"<-- Rev: %02d.%02d.%02d      -->\r\n" +
	"Command\t| Description\t\t| Arguments\r\n\r\n"

// HelpCommand renders the help banner and one line per registered
// command. The command list is resolved through a closure so the same
// implementation can serve both the "help" name and its "?" alias
// without the registry depending on itself at construction time.
type HelpCommand struct {
	name     string
	commands func() []shelltypes.Command
}

// NewHelpCommand returns the "help" command listing commands().
func NewHelpCommand(commands func() []shelltypes.Command) *HelpCommand {
	return &HelpCommand{name: "help", commands: commands}
}

// NewHelpAlias returns the "?" alias of the help command.
func NewHelpAlias(commands func() []shelltypes.Command) *HelpCommand {
	return &HelpCommand{name: "?", commands: commands}
}

// Name returns the command name ("help" or "?").
func (c *HelpCommand) Name() string { return c.name }

// Description returns the one-line help summary.
func (c *HelpCommand) Description() string { return "Display the Help Menu" }

// ArgHelp returns the argument help column.
func (c *HelpCommand) ArgHelp() string { return "No Arguments" }

// Args returns an empty template: help takes no arguments.
func (c *HelpCommand) Args() []shelltypes.ArgSpec { return nil }

// Execute emits the banner followed by one help line per registered
// command, in registration order.
func (c *HelpCommand) Execute(_ *shelltypes.ParseResult, sink shelltypes.Sink) error {
	major, minor, patch := version.Rev()

	var b strings.Builder
	fmt.Fprintf(&b, banner, major, minor, patch)
	for _, cmd := range c.commands() {
		fmt.Fprintf(&b, "%s\t| %s\t| %s\r\n", cmd.Name(), cmd.Description(), cmd.ArgHelp())
	}
	sink.Emit([]byte(b.String()))
	return nil
}
