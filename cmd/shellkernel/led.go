package main

import (
	"fmt"

	"shellkernel/pkg/shelltypes"
)

// LedCommand is the classic debug-shell worked example: "setLed l1 s0"
// flips a (simulated) LED. It demonstrates the full argument template
// contract, mandatory uint8 arguments and parse-result coercion.
type LedCommand struct {
	states map[uint8]bool
}

// NewLedCommand returns the "setLed" command with both LEDs off.
func NewLedCommand() *LedCommand {
	return &LedCommand{states: make(map[uint8]bool)}
}

// Name returns the command name "setLed".
func (c *LedCommand) Name() string { return "setLed" }

// Description returns the one-line help summary.
func (c *LedCommand) Description() string { return "Sets LED to state" }

// ArgHelp returns the argument help column.
func (c *LedCommand) ArgHelp() string { return "l - LED (1 or 2) s - State (1 or 0)" }

// Args declares the mandatory LED number and state arguments.
func (c *LedCommand) Args() []shelltypes.ArgSpec {
	return []shelltypes.ArgSpec{
		{Mandatory: true, Type: shelltypes.TypeUint8, Token: 'l'},
		{Mandatory: true, Type: shelltypes.TypeUint8, Token: 's'},
	}
}

// Execute flips the addressed LED. Values outside the documented ranges
// pass type validation (any uint8 does) but are a handler failure, which
// the kernel reports as a function error.
func (c *LedCommand) Execute(req *shelltypes.ParseResult, sink shelltypes.Sink) error {
	led, _ := req.Uint8('l')
	state, _ := req.Uint8('s')

	if led != 1 && led != 2 {
		return fmt.Errorf("no such LED: %d", led)
	}
	if state > 1 {
		return fmt.Errorf("invalid state: %d", state)
	}

	c.states[led] = state == 1
	sink.Emit([]byte(fmt.Sprintf("LED %d -> %d\r\n", led, state)))
	return nil
}
