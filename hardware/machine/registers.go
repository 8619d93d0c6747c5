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

// Reg8 returns the named 8-bit register. Register names are lower-case, as
// produced by the assembly parser and the decoder. The boolean return value
// is false if the name is not an 8-bit register.
func (s State) Reg8(name string) (uint8, bool) {
	switch name {
	case "a":
		return s.A, true
	case "b":
		return s.B, true
	case "c":
		return s.C, true
	case "d":
		return s.D, true
	case "e":
		return s.E, true
	case "h":
		return s.H, true
	case "l":
		return s.L, true
	case "i":
		return s.I, true
	case "r":
		return s.R, true
	case "ixh":
		return uint8(s.IX >> 8), true
	case "ixl":
		return uint8(s.IX), true
	case "iyh":
		return uint8(s.IY >> 8), true
	case "iyl":
		return uint8(s.IY), true
	}
	return 0, false
}

// SetReg8 assigns the named 8-bit register. Returns false if the name is not
// an 8-bit register, in which case nothing is modified.
func (s *State) SetReg8(name string, value uint8) bool {
	switch name {
	case "a":
		s.A = value
	case "b":
		s.B = value
	case "c":
		s.C = value
	case "d":
		s.D = value
	case "e":
		s.E = value
	case "h":
		s.H = value
	case "l":
		s.L = value
	case "i":
		s.I = value
	case "r":
		s.R = value
	case "ixh":
		s.IX = uint16(value)<<8 | s.IX&0x00ff
	case "ixl":
		s.IX = s.IX&0xff00 | uint16(value)
	case "iyh":
		s.IY = uint16(value)<<8 | s.IY&0x00ff
	case "iyl":
		s.IY = s.IY&0xff00 | uint16(value)
	default:
		return false
	}
	return true
}

// Pair returns the named register pair as a 16-bit value, high register in
// the high byte.
func (s State) Pair(name string) uint16 {
	switch name {
	case "af":
		return uint16(s.A)<<8 | uint16(s.F.Byte())
	case "bc":
		return uint16(s.B)<<8 | uint16(s.C)
	case "de":
		return uint16(s.D)<<8 | uint16(s.E)
	case "hl":
		return uint16(s.H)<<8 | uint16(s.L)
	case "sp":
		return s.SP
	case "ix":
		return s.IX
	case "iy":
		return s.IY
	}
	return 0
}

// IsPair returns true if the name is a recognised register pair.
func IsPair(name string) bool {
	switch name {
	case "af", "bc", "de", "hl", "sp", "ix", "iy":
		return true
	}
	return false
}

// SetPair assigns the named register pair. Returns false if the name is not
// a register pair, in which case nothing is modified.
func (s *State) SetPair(name string, value uint16) bool {
	switch name {
	case "af":
		s.A = uint8(value >> 8)
		s.F.SetByte(uint8(value))
	case "bc":
		s.B = uint8(value >> 8)
		s.C = uint8(value)
	case "de":
		s.D = uint8(value >> 8)
		s.E = uint8(value)
	case "hl":
		s.H = uint8(value >> 8)
		s.L = uint8(value)
	case "sp":
		s.SP = value
	case "ix":
		s.IX = value
	case "iy":
		s.IY = value
	default:
		return false
	}
	return true
}
