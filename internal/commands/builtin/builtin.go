package builtin

import "shellkernel/pkg/shelltypes"

// Commands returns the built-in command set in its fixed order: help,
// its ? alias, then ping. commands supplies the full registry listing to
// the help implementations.
func Commands(commands func() []shelltypes.Command) []shelltypes.Command {
	return []shelltypes.Command{
		NewHelpCommand(commands),
		NewHelpAlias(commands),
		NewPingCommand(),
	}
}
