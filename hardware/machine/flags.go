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

import "strings"

// Flags is the modelled portion of the Z80 flag register. Only Zero, Carry,
// Sign and Parity/Overflow take part in instruction semantics.
//
// HalfCarry and Subtract are not part of the modelled set. They are recorded
// by the arithmetic handlers solely so that the decimal adjust instruction
// can apply the standard correction table. No conditional instruction ever
// tests them.
type Flags struct {
	Zero   bool
	Carry  bool
	Sign   bool
	Parity bool

	HalfCarry bool
	Subtract  bool
}

// bit positions in the packed flag byte, as in the real F register.
const (
	flagCarry     = 0x01
	flagSubtract  = 0x02
	flagParity    = 0x04
	flagHalfCarry = 0x10
	flagZero      = 0x40
	flagSign      = 0x80
)

// Byte packs the flags into the F register layout. The undocumented bits
// (3 and 5) are always zero.
func (f Flags) Byte() uint8 {
	var v uint8
	if f.Carry {
		v |= flagCarry
	}
	if f.Subtract {
		v |= flagSubtract
	}
	if f.Parity {
		v |= flagParity
	}
	if f.HalfCarry {
		v |= flagHalfCarry
	}
	if f.Zero {
		v |= flagZero
	}
	if f.Sign {
		v |= flagSign
	}
	return v
}

// SetByte unpacks a flag byte previously produced by Byte(). Used by POP AF
// so that a push/pop pair is an exact round trip.
func (f *Flags) SetByte(v uint8) {
	f.Carry = v&flagCarry == flagCarry
	f.Subtract = v&flagSubtract == flagSubtract
	f.Parity = v&flagParity == flagParity
	f.HalfCarry = v&flagHalfCarry == flagHalfCarry
	f.Zero = v&flagZero == flagZero
	f.Sign = v&flagSign == flagSign
}

func (f Flags) String() string {
	s := strings.Builder{}
	flag := func(set bool, label string) {
		if set {
			s.WriteString(strings.ToUpper(label))
		} else {
			s.WriteString(label)
		}
	}
	flag(f.Sign, "s")
	flag(f.Zero, "z")
	flag(f.Parity, "p")
	flag(f.Carry, "c")
	return s.String()
}
