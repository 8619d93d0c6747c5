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

// Package debugger sequences instruction execution for an interactive
// session. It owns the parsed program, the machine state history and the
// stepping helpers; the engine itself knows nothing about lines, undo or
// breakpoints.
//
// Program lines live at synthetic addresses so that the machine stack can
// hold real return addresses for textual code: line n sits at LineOrigin+n.
// Labels are registered in the symbol table at their line's synthetic
// address, which is how branch targets resolve back to line numbers.
package debugger

import (
	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/curated"
	"github.com/jetsetilly/gophermsx/hardware/firmware"
	"github.com/jetsetilly/gophermsx/hardware/machine"
	"github.com/jetsetilly/gophermsx/hardware/z80/decoder"
	"github.com/jetsetilly/gophermsx/hardware/z80/engine"
	"github.com/jetsetilly/gophermsx/symbols"
)

// LineOrigin is the synthetic address of the first program line. Chosen
// above the firmware region and the traditional cartridge space so that
// synthetic addresses never collide with firmware addresses.
const LineOrigin = 0x8000

// maxRunSteps bounds the run-to-completion helpers. A program that has not
// settled after this many steps is assumed to be spinning.
const maxRunSteps = 100000

// sentinel errors for session misuse. the emulation core itself never
// fails; these cover the sequencing layer only.
const (
	ErrEndOfProgram = "debugger: execution ran off the end of the program"
	ErrNoHistory    = "debugger: nothing to undo"
)

// Session is one debugging session over one program.
type Session struct {
	Symbols *symbols.Table

	lines []assembly.Instruction
	src   []string

	eng      *engine.Engine
	resolver *firmware.Resolver

	state   machine.State
	line    int
	history []snapshot

	breakpoints map[int]bool

	// the line the step-through sub-machine resumes at when the firmware
	// excursion ends
	resumeLine int
}

// snapshot pairs a machine state with the line it was at, for undo.
type snapshot struct {
	state machine.State
	line  int
}

// NewSession parses the program source and prepares a reset machine state.
// Labels are registered in the symbol table as they are found; the data map
// seeds the named memory cells.
func NewSession(src []string, data symbols.DataMap, img *firmware.Image, mode firmware.Mode) *Session {
	s := &Session{
		Symbols:     symbols.NewTable(),
		src:         src,
		breakpoints: make(map[int]bool),
	}

	for i, l := range src {
		in := assembly.Parse(l)
		s.lines = append(s.lines, in)
		if in.Label != "" {
			s.Symbols.Add(in.Label, LineOrigin+uint16(i))
		}
	}

	s.eng = engine.NewEngine(s.Symbols, data)
	s.resolver = firmware.NewResolver(s.eng, img, mode)

	s.state = machine.NewState()
	for k, v := range data {
		s.state.Mem.WriteName(k, v)
	}

	return s
}

// Reset returns the session to its initial state: fresh machine state,
// empty history, execution at the first line. Breakpoints survive a reset.
func (s *Session) Reset() {
	s.state = machine.NewState()
	s.line = 0
	s.history = s.history[:0]

	if s.eng.Data != nil {
		for k, v := range s.eng.Data {
			s.state.Mem.WriteName(k, v)
		}
	}
}

// State returns the current machine state snapshot.
func (s *Session) State() machine.State {
	return s.state
}

// Line returns the current line number.
func (s *Session) Line() int {
	return s.line
}

// Source returns the raw text of a line, or an empty string for a line
// number outside the program.
func (s *Session) Source(line int) string {
	if line < 0 || line >= len(s.src) {
		return ""
	}
	return s.src[line]
}

// NumLines returns the number of lines in the program.
func (s *Session) NumLines() int {
	return len(s.src)
}

// Finished returns true once execution has run off the end of the program.
func (s *Session) Finished() bool {
	return s.line >= len(s.lines)
}

// InFirmware returns true while execution is stepping through a firmware
// routine rather than program lines.
func (s *Session) InFirmware() bool {
	return s.resolver.Active()
}

// FirmwareWindow returns the next n decoded firmware instructions when the
// session is inside a firmware routine.
func (s *Session) FirmwareWindow(n int) []decoder.DecodedInstruction {
	if !s.resolver.Active() {
		return nil
	}
	return s.resolver.Window(s.resolver.Cursor(), n)
}

// lineFor maps a synthetic address back to its line number.
func lineFor(addr uint16) int {
	return int(addr) - LineOrigin
}

// position builds the engine position for a line: its own synthetic address
// and the synthetic address of the following line.
func position(line int) engine.Position {
	return engine.Position{
		Addr: LineOrigin + uint16(line),
		Next: LineOrigin + uint16(line) + 1,
	}
}

// Step executes one instruction and records the previous state in the undo
// history. Inside a firmware excursion the step advances the firmware
// sub-machine instead of a program line.
func (s *Session) Step() error {
	return s.step(true)
}

// step is the common body of Step and the run helpers. the run helpers
// record a single history entry for the whole run rather than one per step.
func (s *Session) step(record bool) error {
	if s.resolver.Active() {
		if record {
			s.pushHistory()
		}
		s.state, _ = s.resolver.Step(s.state)
		if !s.resolver.Active() {
			s.line = s.resumeLine
		}
		return nil
	}

	if s.Finished() {
		return curated.Errorf(ErrEndOfProgram)
	}

	if record {
		s.pushHistory()
	}

	in := s.lines[s.line]
	state, res := s.eng.Execute(s.state, in, position(s.line))
	s.state = state

	s.advance(res)
	return nil
}

// advance moves the current line according to an execution result.
func (s *Session) advance(res engine.Result) {
	switch res.Flow {
	case engine.FlowStay:
		// a step taken while halted. the line holds so the pending
		// instruction still runs once the processor wakes

	case engine.FlowNext, engine.FlowHalt:
		s.line++

	case engine.FlowJump:
		if res.TargetResolved && engine.InFirmware(res.TargetAddr) {
			s.enterFirmwareJump(res.TargetAddr)
			return
		}
		if line, ok := s.targetLine(res); ok {
			s.line = line
		} else {
			s.line++
		}

	case engine.FlowCall:
		if res.TargetResolved && engine.InFirmware(res.TargetAddr) {
			s.enterFirmware(res.TargetAddr)
			return
		}
		if line, ok := s.targetLine(res); ok {
			s.line = line
		} else {
			s.line++
		}

	case engine.FlowReturn:
		if engine.InFirmware(res.TargetAddr) {
			// a return into firmware should not happen from user code;
			// treat it as end of program rather than walking ROM
			s.line = len(s.lines)
			return
		}
		s.line = lineFor(res.TargetAddr)
	}
}

// targetLine resolves a branch result to a line number. A resolved target
// in the synthetic range maps directly; a textual target is looked up as a
// label.
func (s *Session) targetLine(res engine.Result) (int, bool) {
	if res.TargetResolved && res.TargetAddr >= LineOrigin {
		line := lineFor(res.TargetAddr)
		if line <= len(s.lines) {
			return line, true
		}
	}
	if res.Target != "" {
		if addr, ok := s.Symbols.Lookup(res.Target); ok && addr >= LineOrigin {
			return lineFor(addr), true
		}
	}
	return 0, false
}

// enterFirmware hands a resolved firmware call to the resolver. In
// black-box mode the call completes immediately and execution continues at
// the next line; in step-through mode subsequent steps walk the ROM.
func (s *Session) enterFirmware(addr uint16) {
	s.resumeLine = s.line + 1

	s.state = s.resolver.Call(s.state, addr)
	if !s.resolver.Active() {
		s.line = s.resumeLine
	}
}

// enterFirmwareJump is the jump-shaped twin of enterFirmware. a jump leaves
// no return address, so the resolver applies the entry effect without the
// stack unwind a call gets; the session resumes at the following line once
// the excursion ends.
func (s *Session) enterFirmwareJump(addr uint16) {
	s.resumeLine = s.line + 1

	s.state = s.resolver.Jump(s.state, addr)
	if !s.resolver.Active() {
		s.line = s.resumeLine
	}
}

// pushHistory records the current state and line for undo.
func (s *Session) pushHistory() {
	s.history = append(s.history, snapshot{state: s.state, line: s.line})
}

// Undo rewinds one step.
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return curated.Errorf(ErrNoHistory)
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.state = last.state
	s.line = last.line
	return nil
}

// SetBreakpoint toggles a breakpoint on a line, returning its new state.
func (s *Session) SetBreakpoint(line int) bool {
	if s.breakpoints[line] {
		delete(s.breakpoints, line)
		return false
	}
	s.breakpoints[line] = true
	return true
}

// Run steps until a breakpoint, a halt, the end of the program or the step
// cap, whichever comes first. It returns the number of steps taken.
//
// The whole run is one undo record. A per-step record would deep copy the
// memory map up to maxRunSteps times on a spinning program.
func (s *Session) Run() int {
	if s.Finished() {
		return 0
	}
	s.pushHistory()

	n := 0
	for n < maxRunSteps && !s.Finished() {
		if err := s.step(false); err != nil {
			break
		}
		n++

		if s.breakpoints[s.line] {
			break
		}
		if s.state.Halted && !s.state.IFF {
			break
		}
	}
	return n
}

// RunToReturn steps until the call depth drops below its value on entry,
// bounded by the step cap. Used to run a subroutine to completion from its
// first instruction. Like Run, the whole run is one undo record.
func (s *Session) RunToReturn() int {
	if s.Finished() {
		return 0
	}
	s.pushHistory()

	depth := s.state.FrameDepth()

	n := 0
	for n < maxRunSteps && !s.Finished() {
		if err := s.step(false); err != nil {
			break
		}
		n++

		if s.state.FrameDepth() < depth {
			break
		}
		if s.breakpoints[s.line] {
			break
		}
		if s.state.Halted && !s.state.IFF {
			break
		}
	}
	return n
}
