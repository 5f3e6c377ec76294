// Package commands provides the command registry and matcher for the
// shell kernel. The registry is built once from static configuration and
// never mutated afterward; lookup is an exact, case-sensitive scan.
package commands

import (
	"fmt"

	"shellkernel/pkg/shelltypes"
)

// Registry is an immutable, ordered table of command descriptors. Order
// is registration order; the help command renders its listing in that
// order.
type Registry struct {
	commands []shelltypes.Command
}

// NewRegistry builds a registry from the given commands. A command with
// an empty name or a name already taken is a configuration error: the
// registry refuses to build rather than letting a later entry shadow an
// earlier one at match time.
func NewRegistry(cmds ...shelltypes.Command) (*Registry, error) {
	seen := make(map[string]struct{}, len(cmds))
	for _, cmd := range cmds {
		name := cmd.Name()
		if name == "" {
			return nil, fmt.Errorf("command name cannot be empty")
		}
		if _, exists := seen[name]; exists {
			return nil, fmt.Errorf("command %s already registered", name)
		}
		seen[name] = struct{}{}
	}
	registered := make([]shelltypes.Command, len(cmds))
	copy(registered, cmds)
	return &Registry{commands: registered}, nil
}

// Match resolves a command name to its descriptor with an exact,
// case-sensitive linear scan. Returns false if the name is not
// registered. The registry is small (low tens of commands at most), so
// the O(N) scan is not a concern.
func (r *Registry) Match(name string) (shelltypes.Command, bool) {
	for _, cmd := range r.commands {
		if cmd.Name() == name {
			return cmd, true
		}
	}
	return nil, false
}

// Commands returns the registered commands in registration order. The
// returned slice is a copy and can be safely modified.
func (r *Registry) Commands() []shelltypes.Command {
	out := make([]shelltypes.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
