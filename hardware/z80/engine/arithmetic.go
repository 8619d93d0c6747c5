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
	"math/bits"

	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/hardware/machine"
)

// evenParity is the parity/overflow flag value for the logical group.
func evenParity(v uint8) bool {
	return bits.OnesCount8(v)%2 == 0
}

// add8 performs 8-bit addition with the full flag treatment. the
// parity/overflow flag holds signed overflow, detected when both operands
// agree in sign and the result does not.
func add8(s *machine.State, a, b uint8, carry bool) uint8 {
	c := uint16(0)
	if carry {
		c = 1
	}

	sum := uint16(a) + uint16(b) + c
	r := uint8(sum)

	s.F.Carry = sum > 0xff
	s.F.Zero = r == 0
	s.F.Sign = r&0x80 == 0x80
	s.F.Parity = (a^r)&(b^r)&0x80 == 0x80
	s.F.HalfCarry = (a&0x0f)+(b&0x0f)+uint8(c) > 0x0f
	s.F.Subtract = false

	return r
}

// sub8 performs 8-bit subtraction with the full flag treatment.
func sub8(s *machine.State, a, b uint8, borrow bool) uint8 {
	c := 0
	if borrow {
		c = 1
	}

	diff := int(a) - int(b) - c
	r := uint8(diff)

	s.F.Carry = diff < 0
	s.F.Zero = r == 0
	s.F.Sign = r&0x80 == 0x80
	s.F.Parity = (a^b)&(a^r)&0x80 == 0x80
	s.F.HalfCarry = int(a&0x0f)-int(b&0x0f)-c < 0
	s.F.Subtract = true

	return r
}

// add16 performs 16-bit addition. flag semantics mirror the 8-bit group at
// the wider boundary: carry from bit 16, zero and sign over the whole word
// and signed overflow at bit 15.
func add16(s *machine.State, a, b uint16, carry bool) uint16 {
	c := uint32(0)
	if carry {
		c = 1
	}

	sum := uint32(a) + uint32(b) + c
	r := uint16(sum)

	s.F.Carry = sum > 0xffff
	s.F.Zero = r == 0
	s.F.Sign = r&0x8000 == 0x8000
	s.F.Parity = (a^r)&(b^r)&0x8000 == 0x8000
	s.F.HalfCarry = (a&0x0fff)+(b&0x0fff)+uint16(c) > 0x0fff
	s.F.Subtract = false

	return r
}

// sub16 performs 16-bit subtraction with borrow.
func sub16(s *machine.State, a, b uint16, borrow bool) uint16 {
	c := 0
	if borrow {
		c = 1
	}

	diff := int(a) - int(b) - c
	r := uint16(diff)

	s.F.Carry = diff < 0
	s.F.Zero = r == 0
	s.F.Sign = r&0x8000 == 0x8000
	s.F.Parity = (a^b)&(a^r)&0x8000 == 0x8000
	s.F.HalfCarry = int(a&0x0fff)-int(b&0x0fff)-c < 0
	s.F.Subtract = true

	return r
}

// arithmeticOperands normalises the two accumulator spellings: "add a,b"
// and "add b" name the same operation. the returned operand is the true
// source.
func arithmeticOperands(in assembly.Instruction) string {
	if len(in.Operands) >= 2 {
		return in.Operand(1)
	}
	return in.Operand(0)
}

func execAdd(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	// "add hl,rr" and the index register forms take the 16-bit path
	if dst := in.Operand(0); len(in.Operands) == 2 && assembly.Classify(dst) == assembly.ClassPair {
		if v, ok := e.read16(s, in.Operand(1)); ok {
			s.SetPair(dst, add16(s, s.Pair(dst), v, false))
		}
		return res
	}

	if v, ok := e.read8(s, arithmeticOperands(in)); ok {
		s.A = add8(s, s.A, v, false)
	}
	return res
}

func execAdc(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	if dst := in.Operand(0); len(in.Operands) == 2 && assembly.Classify(dst) == assembly.ClassPair {
		if v, ok := e.read16(s, in.Operand(1)); ok {
			s.SetPair(dst, add16(s, s.Pair(dst), v, s.F.Carry))
		}
		return res
	}

	if v, ok := e.read8(s, arithmeticOperands(in)); ok {
		s.A = add8(s, s.A, v, s.F.Carry)
	}
	return res
}

func execSub(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}
	if v, ok := e.read8(s, arithmeticOperands(in)); ok {
		s.A = sub8(s, s.A, v, false)
	}
	return res
}

func execSbc(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	if dst := in.Operand(0); len(in.Operands) == 2 && assembly.Classify(dst) == assembly.ClassPair {
		if v, ok := e.read16(s, in.Operand(1)); ok {
			s.SetPair(dst, sub16(s, s.Pair(dst), v, s.F.Carry))
		}
		return res
	}

	if v, ok := e.read8(s, arithmeticOperands(in)); ok {
		s.A = sub8(s, s.A, v, s.F.Carry)
	}
	return res
}

// execCompare is subtraction that discards the result, keeping the flags.
func execCompare(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}
	if v, ok := e.read8(s, arithmeticOperands(in)); ok {
		_ = sub8(s, s.A, v, false)
	}
	return res
}

func execInc(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}
	target := in.Operand(0)

	// the 16-bit increment touches no flags at all
	if assembly.Classify(target) == assembly.ClassPair {
		s.SetPair(target, s.Pair(target)+1)
		return res
	}

	if v, ok := e.read8(s, target); ok {
		r := v + 1
		s.F.Zero = r == 0
		s.F.Sign = r&0x80 == 0x80
		s.F.Parity = v == 0x7f
		s.F.HalfCarry = v&0x0f == 0x0f
		s.F.Subtract = false
		e.write8(s, target, r)
	}
	return res
}

func execDec(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}
	target := in.Operand(0)

	if assembly.Classify(target) == assembly.ClassPair {
		s.SetPair(target, s.Pair(target)-1)
		return res
	}

	if v, ok := e.read8(s, target); ok {
		r := v - 1
		s.F.Zero = r == 0
		s.F.Sign = r&0x80 == 0x80
		s.F.Parity = v == 0x80
		s.F.HalfCarry = v&0x0f == 0x00
		s.F.Subtract = true
		e.write8(s, target, r)
	}
	return res
}

func execNeg(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	s.A = sub8(s, 0, s.A, false)
	return Result{Cycles: cost(in, false)}
}

// execDaa applies the standard decimal-adjust correction table to the
// accumulator, driven by the carry, half-carry and subtract flags recorded
// by the preceding arithmetic instruction.
func execDaa(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	correction := uint8(0)
	carry := s.F.Carry

	if s.F.HalfCarry || s.A&0x0f > 0x09 {
		correction |= 0x06
	}
	if s.F.Carry || s.A > 0x99 {
		correction |= 0x60
		carry = true
	}

	if s.F.Subtract {
		s.A -= correction
	} else {
		s.A += correction
	}

	s.F.Carry = carry
	s.F.Zero = s.A == 0
	s.F.Sign = s.A&0x80 == 0x80
	s.F.Parity = evenParity(s.A)

	return Result{Cycles: cost(in, false)}
}
