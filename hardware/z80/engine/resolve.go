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

// address resolves an operand naming a memory cell to a concrete address.
// labels resolve through the symbol table; everything else through the
// numeric parser.
func (e *Engine) address(op string) (uint16, bool) {
	if n, ok := assembly.Number(op); ok {
		return uint16(n), true
	}
	if addr, ok := e.Symbols.Lookup(op); ok {
		return addr, true
	}
	return 0, false
}

// read8 resolves an operand to its 8-bit value. the second return value is
// false when the operand cannot be resolved, in which case the instruction
// handler leaves its destination untouched.
func (e *Engine) read8(s *machine.State, op string) (uint8, bool) {
	switch assembly.Classify(op) {
	case assembly.ClassReg8:
		return s.Reg8(op)

	case assembly.ClassIndirectPair:
		inner, _ := assembly.Inner(op)
		return s.Mem.Read(s.Pair(inner)), true

	case assembly.ClassIndexed:
		base, disp, ok := assembly.Indexed(op)
		if !ok {
			return 0, false
		}
		return s.Mem.Read(s.Pair(base) + uint16(int16(disp))), true

	case assembly.ClassIndirect:
		inner, _ := assembly.Inner(op)
		if addr, ok := e.address(inner); ok {
			return s.Mem.Read(addr), true
		}
		if v, ok := s.Mem.ReadName(inner); ok {
			return v, true
		}
		if v, ok := e.Data[inner]; ok {
			return v, true
		}
		return 0, false

	case assembly.ClassNumber:
		n, _ := assembly.Number(op)
		return uint8(n), true

	case assembly.ClassName:
		if addr, ok := e.Symbols.Lookup(op); ok {
			return uint8(addr), true
		}
		if v, ok := e.Data[op]; ok {
			return v, true
		}
		return 0, false
	}

	return 0, false
}

// write8 resolves an operand as an 8-bit destination and stores the value.
// returns false when the operand does not name a writable destination.
func (e *Engine) write8(s *machine.State, op string, v uint8) bool {
	switch assembly.Classify(op) {
	case assembly.ClassReg8:
		return s.SetReg8(op, v)

	case assembly.ClassIndirectPair:
		inner, _ := assembly.Inner(op)
		s.Mem.Write(s.Pair(inner), v)
		return true

	case assembly.ClassIndexed:
		base, disp, ok := assembly.Indexed(op)
		if !ok {
			return false
		}
		s.Mem.Write(s.Pair(base)+uint16(int16(disp)), v)
		return true

	case assembly.ClassIndirect:
		inner, _ := assembly.Inner(op)
		if addr, ok := e.address(inner); ok {
			s.Mem.Write(addr, v)
			return true
		}
		// a named cell with no address of its own. the cell is created on
		// first write
		s.Mem.WriteName(inner, v)
		return true
	}

	return false
}

// read16 resolves an operand to its 16-bit value.
func (e *Engine) read16(s *machine.State, op string) (uint16, bool) {
	switch assembly.Classify(op) {
	case assembly.ClassPair:
		return s.Pair(op), true

	case assembly.ClassNumber:
		n, _ := assembly.Number(op)
		return uint16(n), true

	case assembly.ClassName:
		if addr, ok := e.Symbols.Lookup(op); ok {
			return addr, true
		}
		return 0, false

	case assembly.ClassIndirect:
		inner, _ := assembly.Inner(op)
		if addr, ok := e.address(inner); ok {
			return s.Mem.Read16(addr), true
		}
		return 0, false
	}

	return 0, false
}

// write16 resolves an operand as a 16-bit destination and stores the value.
func (e *Engine) write16(s *machine.State, op string, v uint16) bool {
	switch assembly.Classify(op) {
	case assembly.ClassPair:
		s.SetPair(op, v)
		return true

	case assembly.ClassIndirect:
		inner, _ := assembly.Inner(op)
		if addr, ok := e.address(inner); ok {
			s.Mem.Write16(addr, v)
			return true
		}
		return false
	}

	return false
}

// condition evaluates a branch condition code against the current flags.
// an unrecognised code evaluates to false, degrading the branch to a
// fall-through.
func condition(s *machine.State, cc string) bool {
	switch cc {
	case "nz":
		return !s.F.Zero
	case "z":
		return s.F.Zero
	case "nc":
		return !s.F.Carry
	case "c":
		return s.F.Carry
	case "po":
		return !s.F.Parity
	case "pe":
		return s.F.Parity
	case "p":
		return !s.F.Sign
	case "m":
		return s.F.Sign
	}
	return false
}
