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

// execLogic handles the and/or/xor group. carry always clears and the
// parity flag holds the even parity of the result, unlike the arithmetic
// group where it holds signed overflow.
func execLogic(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	v, ok := e.read8(s, arithmeticOperands(in))
	if !ok {
		return res
	}

	switch in.Mnemonic {
	case "and":
		s.A &= v
		s.F.HalfCarry = true
	case "or":
		s.A |= v
		s.F.HalfCarry = false
	case "xor":
		s.A ^= v
		s.F.HalfCarry = false
	}

	s.F.Carry = false
	s.F.Zero = s.A == 0
	s.F.Sign = s.A&0x80 == 0x80
	s.F.Parity = evenParity(s.A)
	s.F.Subtract = false

	return res
}

// execBit tests one bit of the operand. only the flags change.
func execBit(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	b, ok := assembly.Number(in.Operand(0))
	if !ok || b < 0 || b > 7 {
		return res
	}

	v, ok := e.read8(s, in.Operand(1))
	if !ok {
		return res
	}

	zero := v&(1<<uint(b)) == 0
	s.F.Zero = zero
	s.F.Parity = zero
	s.F.Sign = b == 7 && !zero
	s.F.HalfCarry = true
	s.F.Subtract = false

	return res
}

// execSetRes sets or clears one bit of the operand in place. no flags.
func execSetRes(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	b, ok := assembly.Number(in.Operand(0))
	if !ok || b < 0 || b > 7 {
		return res
	}

	target := in.Operand(1)
	v, ok := e.read8(s, target)
	if !ok {
		return res
	}

	if in.Mnemonic == "set" {
		v |= 1 << uint(b)
	} else {
		v &^= 1 << uint(b)
	}
	e.write8(s, target, v)

	return res
}
