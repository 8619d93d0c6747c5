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

package decoder

import "fmt"

// decodeBase handles the unprefixed opcode space. Every one of the 256
// bytes has a meaning here so there is no placeholder path.
func decodeBase(r *reader, op uint8) DecodedInstruction {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07
	p := y >> 1
	q := y & 0x01

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return r.instruction("nop", "")
			case 1:
				return r.instruction("ex", "af,af'")
			case 2:
				return r.instruction("djnz", r.relative())
			case 3:
				return r.instruction("jr", r.relative())
			default:
				cc := conditions[y-4]
				return r.instruction("jr", cc+","+r.relative())
			}
		case 1:
			if q == 0 {
				return r.instruction("ld", reg16[p]+","+hex16(r.nn()))
			}
			return r.instruction("add", "hl,"+reg16[p])
		case 2:
			switch y {
			case 0:
				return r.instruction("ld", "(bc),a")
			case 1:
				return r.instruction("ld", "a,(bc)")
			case 2:
				return r.instruction("ld", "(de),a")
			case 3:
				return r.instruction("ld", "a,(de)")
			case 4:
				return r.instruction("ld", "("+hex16(r.nn())+"),hl")
			case 5:
				return r.instruction("ld", "hl,("+hex16(r.nn())+")")
			case 6:
				return r.instruction("ld", "("+hex16(r.nn())+"),a")
			default:
				return r.instruction("ld", "a,("+hex16(r.nn())+")")
			}
		case 3:
			if q == 0 {
				return r.instruction("inc", reg16[p])
			}
			return r.instruction("dec", reg16[p])
		case 4:
			return r.instruction("inc", reg8[y])
		case 5:
			return r.instruction("dec", reg8[y])
		case 6:
			return r.instruction("ld", reg8[y]+","+hex8(r.next()))
		default:
			return r.instruction(accumulatorOps[y], "")
		}

	case 1:
		if op == 0x76 {
			return r.instruction("halt", "")
		}
		return r.instruction("ld", reg8[y]+","+reg8[z])

	case 2:
		return r.instruction(aluMnemonic[y], aluOperand(y, reg8[z]))
	}

	// x == 3
	switch z {
	case 0:
		return r.instruction("ret", conditions[y])
	case 1:
		if q == 0 {
			return r.instruction("pop", reg16Stack[p])
		}
		switch p {
		case 0:
			return r.instruction("ret", "")
		case 1:
			return r.instruction("exx", "")
		case 2:
			return r.instruction("jp", "(hl)")
		default:
			return r.instruction("ld", "sp,hl")
		}
	case 2:
		return r.instruction("jp", conditions[y]+","+hex16(r.nn()))
	case 3:
		switch y {
		case 0:
			return r.instruction("jp", hex16(r.nn()))
		case 2:
			return r.instruction("out", "("+hex8(r.next())+"),a")
		case 3:
			return r.instruction("in", "a,("+hex8(r.next())+")")
		case 4:
			return r.instruction("ex", "(sp),hl")
		case 5:
			return r.instruction("ex", "de,hl")
		case 6:
			return r.instruction("di", "")
		default:
			return r.instruction("ei", "")
		}
	case 4:
		return r.instruction("call", conditions[y]+","+hex16(r.nn()))
	case 5:
		if q == 0 {
			return r.instruction("push", reg16Stack[p])
		}
		// p == 0 is the only non-prefix encoding here; the prefix bytes
		// were dispatched before decodeBase was called
		return r.instruction("call", hex16(r.nn()))
	case 6:
		return r.instruction(aluMnemonic[y], aluOperand(y, hex8(r.next())))
	}

	// z == 7
	return r.instruction("rst", fmt.Sprintf("$%02x", y*8))
}
