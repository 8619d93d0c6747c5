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

// Package decoder turns bytes into instructions. Decode() reads at most
// four bytes through a byte-reader function and produces exactly one
// DecodedInstruction, dispatching across the opcode prefix spaces: the
// unprefixed table, the bit-operation table (0xCB), the extended table
// (0xED), the two index-register tables (0xDD, 0xFD) and the compound
// index+bit tables (0xDDCB, 0xFDCB).
//
// Decoding is total. A byte with no meaning in the active table becomes a
// one-byte "db" placeholder so that a disassembly window can always advance
// through unknown data.
package decoder

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophermsx/hardware/z80/timing"
)

// DecodedInstruction is one instruction lifted from the byte stream. It is
// immutable once produced.
type DecodedInstruction struct {
	// the address the first byte was read from
	Address uint16

	// the raw bytes of the instruction, between one and four of them
	Bytes []uint8

	// lower-case mnemonic and comma-joined operand text. numeric operands
	// are resolved against the instruction's own address (relative branch
	// targets in particular)
	Mnemonic string
	Operand  string

	// instruction length in bytes
	Size int

	// base clock cost from the timing oracle (not-taken cost for the
	// conditional instructions)
	Cycles int
}

func (d DecodedInstruction) String() string {
	b := strings.Builder{}
	for _, v := range d.Bytes {
		b.WriteString(fmt.Sprintf("%02x ", v))
	}
	if d.Operand == "" {
		return fmt.Sprintf("$%04x  %-12s %s", d.Address, b.String(), d.Mnemonic)
	}
	return fmt.Sprintf("$%04x  %-12s %s %s", d.Address, b.String(), d.Mnemonic, d.Operand)
}

// Decode reads one instruction at the address. The read function must
// tolerate any 16-bit address; the decoder never reads more than four bytes
// beyond the given address.
func Decode(read func(uint16) uint8, address uint16) DecodedInstruction {
	r := &reader{read: read, address: address}

	op := r.next()
	switch op {
	case 0xcb:
		return decodeCB(r)
	case 0xed:
		return decodeED(r)
	case 0xdd:
		return decodeIndex(r, "ix")
	case 0xfd:
		return decodeIndex(r, "iy")
	}

	return decodeBase(r, op)
}

// reader accumulates the bytes of one instruction.
type reader struct {
	read    func(uint16) uint8
	address uint16
	bytes   []uint8
}

// next reads and remembers the next byte of the instruction.
func (r *reader) next() uint8 {
	v := r.read(r.address + uint16(len(r.bytes)))
	r.bytes = append(r.bytes, v)
	return v
}

// instruction finalises a decode, filling in size and the base clock cost.
func (r *reader) instruction(mnemonic, operand string) DecodedInstruction {
	return DecodedInstruction{
		Address:  r.address,
		Bytes:    r.bytes,
		Mnemonic: mnemonic,
		Operand:  operand,
		Size:     len(r.bytes),
		Cycles:   timing.Cycles(mnemonic, operand, false),
	}
}

// placeholder truncates the decode to a one-byte raw-value placeholder. the
// caller advances a single byte and resynchronises on the next one.
func (r *reader) placeholder() DecodedInstruction {
	r.bytes = r.bytes[:1]
	return DecodedInstruction{
		Address:  r.address,
		Bytes:    r.bytes,
		Mnemonic: "db",
		Operand:  hex8(r.bytes[0]),
		Size:     1,
		Cycles:   timing.DefaultCost,
	}
}

// nn reads a little-endian 16-bit operand.
func (r *reader) nn() uint16 {
	lo := uint16(r.next())
	hi := uint16(r.next())
	return hi<<8 | lo
}

// relative reads a displacement byte and resolves it against the
// instruction's own address and final size (always two bytes for the
// relative-branch instructions).
func (r *reader) relative() string {
	d := int8(r.next())
	return hex16(r.address + 2 + uint16(int16(d)))
}

func hex8(v uint8) string {
	return fmt.Sprintf("$%02x", v)
}

func hex16(v uint16) string {
	return fmt.Sprintf("$%04x", v)
}

// displacement formats a signed index displacement as it appears in operand
// text: "(ix+5)", "(iy-3)", "(ix+0)".
func displacement(base string, d int8) string {
	if d < 0 {
		return fmt.Sprintf("(%s-%d)", base, -int(d))
	}
	return fmt.Sprintf("(%s+%d)", base, d)
}
