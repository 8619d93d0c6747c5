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

// decodeCB handles the bit-operation table. Like the unprefixed table it is
// fully populated: rotates/shifts, BIT, RES and SET over the eight
// register/memory targets.
func decodeCB(r *reader) DecodedInstruction {
	op := r.next()
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07

	switch x {
	case 0:
		return r.instruction(rotShift[y], reg8[z])
	case 1:
		return r.instruction("bit", fmt.Sprintf("%d,%s", y, reg8[z]))
	case 2:
		return r.instruction("res", fmt.Sprintf("%d,%s", y, reg8[z]))
	}
	return r.instruction("set", fmt.Sprintf("%d,%s", y, reg8[z]))
}

// decodeED handles the extended table. Large parts of this space have no
// meaning and fall to the placeholder.
func decodeED(r *reader) DecodedInstruction {
	op := r.next()
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07
	p := y >> 1
	q := y & 0x01

	switch x {
	case 1:
		switch z {
		case 0:
			if y == 6 {
				return r.instruction("in", "(c)")
			}
			return r.instruction("in", reg8[y]+",(c)")
		case 1:
			if y == 6 {
				return r.instruction("out", "(c),0")
			}
			return r.instruction("out", "(c),"+reg8[y])
		case 2:
			if q == 0 {
				return r.instruction("sbc", "hl,"+reg16[p])
			}
			return r.instruction("adc", "hl,"+reg16[p])
		case 3:
			if q == 0 {
				return r.instruction("ld", "("+hex16(r.nn())+"),"+reg16[p])
			}
			return r.instruction("ld", reg16[p]+",("+hex16(r.nn())+")")
		case 4:
			return r.instruction("neg", "")
		case 5:
			if y == 1 {
				return r.instruction("reti", "")
			}
			return r.instruction("retn", "")
		case 6:
			return r.instruction("im", interruptModes[y])
		case 7:
			switch y {
			case 0:
				return r.instruction("ld", "i,a")
			case 1:
				return r.instruction("ld", "r,a")
			case 2:
				return r.instruction("ld", "a,i")
			case 3:
				return r.instruction("ld", "a,r")
			case 4:
				return r.instruction("rrd", "")
			case 5:
				return r.instruction("rld", "")
			}
			return r.instruction("nop", "")
		}

	case 2:
		if z <= 3 && y >= 4 {
			return r.instruction(blockOps[y-4][z], "")
		}
	}

	return r.placeholder()
}

// decodeIndex handles the two index-register tables (0xDD for IX, 0xFD for
// IY). The table is the unprefixed table with HL replaced by the index
// register and (HL) replaced by an indexed displacement; encodings that
// gain nothing from the prefix fall to the placeholder.
func decodeIndex(r *reader, ireg string) DecodedInstruction {
	op := r.next()

	if op == 0xcb {
		return decodeIndexBit(r, ireg)
	}

	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07
	p := y >> 1

	// rp is reg16 with HL replaced by the index register
	rp := func(p uint8) string {
		if reg16[p] == "hl" {
			return ireg
		}
		return reg16[p]
	}

	switch {
	case op == 0x09 || op == 0x19 || op == 0x29 || op == 0x39:
		return r.instruction("add", ireg+","+rp(p))

	case op == 0x21:
		return r.instruction("ld", ireg+","+hex16(r.nn()))
	case op == 0x22:
		return r.instruction("ld", "("+hex16(r.nn())+"),"+ireg)
	case op == 0x2a:
		return r.instruction("ld", ireg+",("+hex16(r.nn())+")")
	case op == 0x23:
		return r.instruction("inc", ireg)
	case op == 0x2b:
		return r.instruction("dec", ireg)

	case op == 0x34:
		return r.instruction("inc", displacement(ireg, int8(r.next())))
	case op == 0x35:
		return r.instruction("dec", displacement(ireg, int8(r.next())))
	case op == 0x36:
		d := int8(r.next())
		return r.instruction("ld", displacement(ireg, d)+","+hex8(r.next()))

	case x == 1 && z == 6 && y != 6:
		return r.instruction("ld", reg8[y]+","+displacement(ireg, int8(r.next())))
	case x == 1 && y == 6 && z != 6:
		return r.instruction("ld", displacement(ireg, int8(r.next()))+","+reg8[z])

	case x == 2 && z == 6:
		return r.instruction(aluMnemonic[y], aluOperand(y, displacement(ireg, int8(r.next()))))

	case op == 0xe1:
		return r.instruction("pop", ireg)
	case op == 0xe3:
		return r.instruction("ex", "(sp),"+ireg)
	case op == 0xe5:
		return r.instruction("push", ireg)
	case op == 0xe9:
		return r.instruction("jp", "("+ireg+")")
	case op == 0xf9:
		return r.instruction("ld", "sp,"+ireg)
	}

	return r.placeholder()
}

// decodeIndexBit handles the compound index+bit tables (0xDDCB, 0xFDCB).
// The displacement byte comes before the final opcode byte; only the
// memory-targeted column is documented.
func decodeIndexBit(r *reader, ireg string) DecodedInstruction {
	d := int8(r.next())
	op := r.next()
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07

	// the undocumented register-copy column
	if z != 6 {
		return r.placeholder()
	}

	target := displacement(ireg, d)

	switch x {
	case 0:
		return r.instruction(rotShift[y], target)
	case 1:
		return r.instruction("bit", fmt.Sprintf("%d,%s", y, target))
	case 2:
		return r.instruction("res", fmt.Sprintf("%d,%s", y, target))
	}
	return r.instruction("set", fmt.Sprintf("%d,%s", y, target))
}
