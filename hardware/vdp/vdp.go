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

// Package vdp models the port and latch protocol of the video display
// processor. It is the write side of the chip only; interpretation of the
// video memory into an image happens in an external rendering view.
//
// The chip is driven through two I/O ports. A write to the data port stores
// a byte at the current address register and auto-increments the register,
// wrapping at the top of the 16K video memory. The control port is a
// two-phase latch: the first byte of a pair is remembered, the second byte
// either selects an internal chip register (when its top two bits match the
// register-select pattern) or combines with the latched byte to form a new
// 14-bit address register.
//
// The latch phase is explicit state. It survives across instruction
// executions and so must be carried in the machine state snapshot rather
// than derived.
package vdp

// VRAMSize is the size of the video memory in bytes.
const VRAMSize = 16384

// AddressMask keeps the address register within the 14-bit video memory
// range.
const AddressMask = VRAMSize - 1

// The I/O ports the chip responds to.
const (
	DataPort    = 0x98
	ControlPort = 0x99
)

// the top two bits of the second control byte that mark the pair as an
// internal register selection rather than an address setup.
const registerSelect = 0x80

// State is the complete state of the video display processor.
type State struct {
	// the dedicated video memory, addressed only through the port protocol
	// (or, for the firmware block entry points, directly via Poke)
	VRAM [VRAMSize]uint8

	// the 14-bit address register. always masked with AddressMask
	Address uint16

	// the two-phase control port latch. when AwaitingSecond is false the
	// next control write is remembered in Latch; when true the next control
	// write completes the pair
	Latch          uint8
	AwaitingSecond bool

	// the internal chip registers, written through the register-select form
	// of the control pair
	Registers [8]uint8
}

// NewState is the preferred method of initialisation for the State type.
func NewState() State {
	return State{}
}

// WriteData performs a data port write: the byte is stored at the address
// register and the register advances by one, wrapping modulo the video
// memory size.
func (s *State) WriteData(value uint8) {
	s.VRAM[s.Address&AddressMask] = value
	s.Address = (s.Address + 1) & AddressMask
}

// WriteControl performs a control port write, advancing the two-phase
// latch. The phase always returns to "awaiting first byte" after a
// completed pair.
func (s *State) WriteControl(value uint8) {
	if !s.AwaitingSecond {
		s.Latch = value
		s.AwaitingSecond = true
		return
	}

	s.AwaitingSecond = false

	if value&0xc0 == registerSelect {
		// internal register selection. address register unaffected
		s.Registers[value&0x07] = s.Latch
		return
	}

	s.Address = (uint16(value&0x3f)<<8 | uint16(s.Latch)) & AddressMask
}

// Peek reads a video memory byte directly, bypassing the port protocol. The
// address is masked into range.
func (s State) Peek(address uint16) uint8 {
	return s.VRAM[address&AddressMask]
}

// Poke writes a video memory byte directly, bypassing the port protocol and
// leaving the address register and latch untouched. Used by the firmware
// block entry points. The address is masked into range.
func (s *State) Poke(address uint16, value uint8) {
	s.VRAM[address&AddressMask] = value
}
