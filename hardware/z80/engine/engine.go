// This file is part of GopherMSX.
//
// GopherMSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherMSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherMSX.  If not, see <https://www.gnu.org/licenses/>.

// Package engine executes instructions. Execute() interprets one parsed
// assembly line against a snapshot of the machine state and returns the
// next snapshot along with the instruction's clock cost and control-flow
// disposition. The engine never mutates the snapshot it is given.
//
// Execution degrades gracefully: an operand that cannot be resolved leaves
// its destination unmodified and an unrecognised mnemonic is a no-op. The
// engine works on possibly-incomplete, hand-authored source during an
// interactive debugging session and a hard failure would abort a session
// that is otherwise useful.
package engine

import (
	"strings"

	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/hardware/machine"
	"github.com/jetsetilly/gophermsx/hardware/z80/decoder"
	"github.com/jetsetilly/gophermsx/hardware/z80/timing"
	"github.com/jetsetilly/gophermsx/logger"
	"github.com/jetsetilly/gophermsx/symbols"
)

// InterruptPeriod is the number of T-states between two periodic
// interrupts: one frame of the 3.58MHz machine at its 60Hz field rate.
const InterruptPeriod = 59736

// haltIdleCost is the fixed clock cost of one step while halted with
// interrupts disabled.
const haltIdleCost = 4

// maxBlockIterations bounds the internal loop of the repeat-form block
// instructions. A malformed counter can otherwise spin the engine for a
// very long time inside one logical step.
const maxBlockIterations = 65536

// FirmwareTop is the last address of the opaque firmware region. Calls and
// jumps at or below this address leave analysed user code.
const FirmwareTop = 0x3fff

// InFirmware returns true if the address falls inside the firmware region.
func InFirmware(address uint16) bool {
	return address <= FirmwareTop
}

// Flow says where control goes after an instruction.
type Flow int

// the closed set of control-flow dispositions. FlowNext covers failed
// conditions: an untaken branch simply falls through. FlowStay reports a
// step taken while the processor is halted; the current position must not
// move or the instruction there would be skipped.
const (
	FlowNext Flow = iota
	FlowJump
	FlowCall
	FlowReturn
	FlowHalt
	FlowStay
)

// Result describes everything about an instruction execution except the new
// machine state: its clock cost and where control goes next.
type Result struct {
	// exact clock cost in T-states. for the repeat-form block instructions
	// this is the aggregate over the whole internal loop
	Cycles int

	Flow Flow

	// whether a conditional branch's condition held. unconditional
	// control-flow instructions always report true
	Taken bool

	// the target operand as written, for targets the debugger must map to
	// a source position itself
	Target string

	// the resolved numeric target, when resolution succeeded
	TargetAddr     uint16
	TargetResolved bool
}

// Position anchors an instruction in the address space: its own address and
// the address a matching return would resume at. The debugger derives both
// from its line numbering for textual source; the firmware stepper derives
// them from real addresses.
type Position struct {
	Addr uint16
	Next uint16
}

// Engine executes instructions against machine state snapshots. The symbol
// table and static data map come from the external source analyzer and may
// be incomplete at any moment.
type Engine struct {
	Symbols *symbols.Table
	Data    symbols.DataMap
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(sym *symbols.Table, data symbols.DataMap) *Engine {
	if sym == nil {
		sym = symbols.NewTable()
	}
	return &Engine{
		Symbols: sym,
		Data:    data,
	}
}

// Execute interprets one instruction. The input state is snapshotted, never
// mutated; the returned state carries the instruction's complete effect,
// including the accumulated T-state counter.
func (e *Engine) Execute(state machine.State, in assembly.Instruction, pos Position) (machine.State, Result) {
	s := state.Snapshot()

	// the halt sub-model takes priority over the instruction. while halted
	// with interrupts disabled every step costs a fixed amount and changes
	// nothing; with interrupts enabled the next step fast-forwards to the
	// periodic-interrupt boundary and wakes the processor. either way the
	// instruction passed in does not run and the position must hold
	if s.Halted {
		if !s.IFF {
			s.TStates += haltIdleCost
			return s, Result{Cycles: haltIdleCost, Flow: FlowStay}
		}

		boundary := (s.TStates/InterruptPeriod + 1) * InterruptPeriod
		cycles := int(boundary - s.TStates)
		s.TStates = boundary
		s.Halted = false
		return s, Result{Cycles: cycles, Flow: FlowStay}
	}

	if in.IsEmpty() {
		return s, Result{}
	}

	handler, ok := dispatch[in.Mnemonic]
	if !ok {
		// unrecognised instruction text is a no-op
		logger.Logf("engine", "unrecognised instruction (%s)", in.Mnemonic)
		return s, Result{Cycles: timing.DefaultCost}
	}

	res := handler(e, &s, in, pos)
	s.TStates += uint64(res.Cycles)

	return s, res
}

// ExecuteDecoded runs an instruction produced by the decoder, in
// step-through firmware mode. The decoded form is rendered back to its
// textual shape so that firmware bytes and analysed source share one
// execution path.
func (e *Engine) ExecuteDecoded(state machine.State, d decoder.DecodedInstruction) (machine.State, Result) {
	in := assembly.Instruction{Mnemonic: d.Mnemonic}
	if d.Operand != "" {
		in.Operands = strings.Split(d.Operand, ",")
	}

	pos := Position{
		Addr: d.Address,
		Next: d.Address + uint16(d.Size),
	}

	return e.Execute(state, in, pos)
}

// cost is a shorthand for the timing oracle over a parsed instruction.
func cost(in assembly.Instruction, taken bool) int {
	return timing.Cycles(in.Mnemonic, strings.Join(in.Operands, ","), taken)
}
