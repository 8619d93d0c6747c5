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

package engine

import (
	"strings"

	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/hardware/machine"
	"github.com/jetsetilly/gophermsx/hardware/z80/timing"
	"github.com/jetsetilly/gophermsx/logger"
)

// blockDirection returns the address step for a block instruction. with the
// repeat suffix stripped, the decrementing forms all end in 'd' and the
// incrementing forms in 'i'.
func blockDirection(mnemonic string) uint16 {
	if strings.HasSuffix(strings.TrimSuffix(mnemonic, "r"), "d") {
		return 0xffff // minus one
	}
	return 1
}

// blockRepeats is true for the auto-repeating forms, which all carry a
// trailing 'r'.
func blockRepeats(mnemonic string) bool {
	return strings.HasSuffix(mnemonic, "r")
}

// blockCycles totals the clock cost of a block instruction that ran for n
// iterations. every continuing iteration of a repeat form costs the repeat
// rate; the final iteration, and the whole of a single-shot form, costs the
// terminal rate.
func blockCycles(mnemonic string, n int) int {
	if n == 0 {
		return timing.BlockFinal()
	}
	if !blockRepeats(mnemonic) {
		return timing.BlockFinal()
	}
	return (n-1)*timing.Cycles(mnemonic, "", false) + timing.BlockFinal()
}

// execBlockTransfer handles ldi, ldd, ldir and lddr. the repeat forms loop
// internally as one logical step. iteration is bounded so that a malformed
// counter cannot wedge the session.
func execBlockTransfer(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	dir := blockDirection(in.Mnemonic)
	repeat := blockRepeats(in.Mnemonic)

	n := 0
	for {
		hl := s.Pair("hl")
		de := s.Pair("de")

		s.Mem.Write(de, s.Mem.Read(hl))
		s.SetPair("hl", hl+dir)
		s.SetPair("de", de+dir)

		bc := s.Pair("bc") - 1
		s.SetPair("bc", bc)
		n++

		if !repeat || bc == 0 {
			break
		}
		if n >= maxBlockIterations {
			logger.Logf("engine", "%s: iteration limit reached", in.Mnemonic)
			break
		}
	}

	// zero, sign and carry are untouched by the transfer group. parity says
	// whether the counter still has work left
	s.F.Parity = s.Pair("bc") != 0
	s.F.HalfCarry = false
	s.F.Subtract = false

	return Result{Cycles: blockCycles(in.Mnemonic, n)}
}

// execBlockSearch handles cpi, cpd, cpir and cpdr. the repeating forms stop
// on a match or an exhausted counter, whichever comes first.
func execBlockSearch(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	dir := blockDirection(in.Mnemonic)
	repeat := blockRepeats(in.Mnemonic)

	n := 0
	for {
		hl := s.Pair("hl")
		m := s.Mem.Read(hl)
		r := s.A - m

		s.F.Zero = r == 0
		s.F.Sign = r&0x80 == 0x80
		s.F.HalfCarry = s.A&0x0f < m&0x0f
		s.F.Subtract = true

		s.SetPair("hl", hl+dir)
		bc := s.Pair("bc") - 1
		s.SetPair("bc", bc)
		n++

		if !repeat || bc == 0 || s.F.Zero {
			break
		}
		if n >= maxBlockIterations {
			logger.Logf("engine", "%s: iteration limit reached", in.Mnemonic)
			break
		}
	}

	s.F.Parity = s.Pair("bc") != 0

	return Result{Cycles: blockCycles(in.Mnemonic, n)}
}

// execBlockIn handles ini, ind, inir and indr. port input is not modelled
// so the transferred bytes read as 0xff, but the register bookkeeping is
// real: the debugger relies on B and HL moving correctly.
func execBlockIn(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	dir := blockDirection(in.Mnemonic)
	repeat := blockRepeats(in.Mnemonic)

	n := 0
	for {
		hl := s.Pair("hl")
		s.Mem.Write(hl, 0xff)
		s.SetPair("hl", hl+dir)
		s.B--
		n++

		if !repeat || s.B == 0 {
			break
		}
		if n >= maxBlockIterations {
			logger.Logf("engine", "%s: iteration limit reached", in.Mnemonic)
			break
		}
	}

	s.F.Zero = s.B == 0
	s.F.Subtract = true

	return Result{Cycles: blockCycles(in.Mnemonic, n)}
}

// execBlockOut handles outi, outd, otir and otdr. output to the display
// processor's ports goes through the port model, which is how the classic
// unrolled screen-fill loops reach video memory.
func execBlockOut(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	dir := blockDirection(in.Mnemonic)
	repeat := blockRepeats(in.Mnemonic)

	n := 0
	for {
		hl := s.Pair("hl")
		writePort(s, s.C, s.Mem.Read(hl))
		s.SetPair("hl", hl+dir)
		s.B--
		n++

		if !repeat || s.B == 0 {
			break
		}
		if n >= maxBlockIterations {
			logger.Logf("engine", "%s: iteration limit reached", in.Mnemonic)
			break
		}
	}

	s.F.Zero = s.B == 0
	s.F.Subtract = true

	return Result{Cycles: blockCycles(in.Mnemonic, n)}
}
