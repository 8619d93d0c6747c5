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
	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/hardware/machine"
)

// rotate applies one of the rotate/shift operations to a value, returning
// the result and the bit that fell out into the carry.
func rotate(mnemonic string, v uint8, carry bool) (uint8, bool) {
	c := uint8(0)
	if carry {
		c = 1
	}

	switch mnemonic {
	case "rlc", "rlca":
		return v<<1 | v>>7, v&0x80 == 0x80
	case "rrc", "rrca":
		return v>>1 | v<<7, v&0x01 == 0x01
	case "rl", "rla":
		return v<<1 | c, v&0x80 == 0x80
	case "rr", "rra":
		return v>>1 | c<<7, v&0x01 == 0x01
	case "sla":
		return v << 1, v&0x80 == 0x80
	case "sra":
		return v>>1 | v&0x80, v&0x01 == 0x01
	case "srl":
		return v >> 1, v&0x01 == 0x01
	case "sll":
		// undocumented shift that feeds a one into bit zero
		return v<<1 | 0x01, v&0x80 == 0x80
	}

	return v, carry
}

// execAccumulatorRotate handles the one-byte accumulator rotates. only the
// carry flag changes; zero, sign and parity are untouched, which is what
// distinguishes these from their prefixed forms.
func execAccumulatorRotate(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	r, carry := rotate(in.Mnemonic, s.A, s.F.Carry)
	s.A = r
	s.F.Carry = carry
	s.F.HalfCarry = false
	s.F.Subtract = false
	return Result{Cycles: cost(in, false)}
}

// execRotateShift handles the prefixed rotate and shift group, which sets
// the full flag complement from the result.
func execRotateShift(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	target := in.Operand(0)
	v, ok := e.read8(s, target)
	if !ok {
		return res
	}

	r, carry := rotate(in.Mnemonic, v, s.F.Carry)
	e.write8(s, target, r)

	s.F.Carry = carry
	s.F.Zero = r == 0
	s.F.Sign = r&0x80 == 0x80
	s.F.Parity = evenParity(r)
	s.F.HalfCarry = false
	s.F.Subtract = false

	return res
}
