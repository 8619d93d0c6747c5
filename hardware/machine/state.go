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

package machine

import (
	"fmt"

	"github.com/jetsetilly/gophermsx/hardware/vdp"
)

// the stack pointer on session reset. the traditional spot just below the
// system workspace area.
const resetSP = 0xf000

// State is a complete snapshot of the emulated machine. It is a value type:
// Snapshot() produces an independent deep copy and the execution engine
// never mutates a snapshot it did not create.
type State struct {
	// the main 8-bit register set
	A, B, C, D, E, H, L uint8

	// the shadow/alternate register set, swapped in by the exchange
	// instructions
	AltA, AltB, AltC, AltD, AltE, AltH, AltL uint8

	// the modelled flags and their shadow copy
	F    Flags
	AltF Flags

	// the 16-bit index registers
	IX, IY uint16

	// interrupt vector and memory refresh registers
	I, R uint8

	// the stack pointer. always a full 16-bit value; wrapping is implicit
	// in the uint16 arithmetic
	SP uint16

	// whether maskable interrupts are enabled (the IFF flip-flop)
	IFF bool

	// the halt sub-model. true between a HALT instruction and the
	// interrupt that releases it
	Halted bool

	// accumulated clock cost of every instruction executed so far, in
	// T-states. the external frame accounting layer consumes this
	TStates uint64

	// main memory
	Mem Memory

	// the video display processor sub-state
	VDP vdp.State

	// call frames for every call that has not yet returned
	Frames []CallFrame
}

// NewState is the preferred method of initialisation for the State type.
func NewState() State {
	return State{
		SP:  resetSP,
		Mem: NewMemory(),
		VDP: vdp.NewState(),
	}
}

// Snapshot creates a deep copy of the machine state.
func (s State) Snapshot() State {
	n := s
	n.Mem = s.Mem.Snapshot()
	n.Frames = make([]CallFrame, len(s.Frames))
	copy(n.Frames, s.Frames)
	return n
}

func (s State) String() string {
	return fmt.Sprintf("A=%02x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x SP=%04x %s",
		s.A, s.Pair("bc"), s.Pair("de"), s.Pair("hl"), s.IX, s.IY, s.SP, s.F)
}

// Push16 pushes a 16-bit value onto the machine stack: high byte at SP-1,
// low byte at SP-2, as the real processor does.
func (s *State) Push16(value uint16) {
	s.SP -= 1
	s.Mem.Write(s.SP, uint8(value>>8))
	s.SP -= 1
	s.Mem.Write(s.SP, uint8(value))
}

// Pop16 pops a 16-bit value from the machine stack.
func (s *State) Pop16() uint16 {
	lo := uint16(s.Mem.Read(s.SP))
	s.SP += 1
	hi := uint16(s.Mem.Read(s.SP))
	s.SP += 1
	return hi<<8 | lo
}

// PeekStack16 returns the 16-bit value at the top of the stack without
// moving the stack pointer.
func (s State) PeekStack16(offset uint16) uint16 {
	return s.Mem.Read16(s.SP + offset*2)
}

// ExchangeAF swaps the accumulator and flags with their shadow copies
// (EX AF,AF').
func (s *State) ExchangeAF() {
	s.A, s.AltA = s.AltA, s.A
	s.F, s.AltF = s.AltF, s.F
}

// ExchangeAll swaps BC, DE and HL with their shadow copies (EXX).
func (s *State) ExchangeAll() {
	s.B, s.AltB = s.AltB, s.B
	s.C, s.AltC = s.AltC, s.C
	s.D, s.AltD = s.AltD, s.D
	s.E, s.AltE = s.AltE, s.E
	s.H, s.AltH = s.AltH, s.H
	s.L, s.AltL = s.AltL, s.L
}
