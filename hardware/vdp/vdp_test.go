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

package vdp_test

import (
	"testing"

	"github.com/jetsetilly/gophermsx/hardware/vdp"
	"github.com/jetsetilly/gophermsx/test"
)

func TestAddressSetup(t *testing.T) {
	s := vdp.NewState()

	// the pair (0x00, 0x40) is the conventional way of setting the write
	// address to the start of video memory
	s.WriteControl(0x00)
	test.Equate(t, s.AwaitingSecond, true)
	s.WriteControl(0x40)
	test.Equate(t, s.AwaitingSecond, false)
	test.Equate(t, s.Address, 0x0000)

	s.WriteControl(0x34)
	s.WriteControl(0x12)
	test.Equate(t, s.Address, 0x1234)
}

func TestDataAutoIncrement(t *testing.T) {
	s := vdp.NewState()

	s.WriteControl(0x10)
	s.WriteControl(0x00)
	test.Equate(t, s.Address, 0x0010)

	s.WriteData(0xaa)
	s.WriteData(0xbb)
	test.Equate(t, s.Peek(0x0010), 0xaa)
	test.Equate(t, s.Peek(0x0011), 0xbb)
	test.Equate(t, s.Address, 0x0012)
}

func TestAddressWrap(t *testing.T) {
	s := vdp.NewState()

	// highest address in the 14-bit range
	s.WriteControl(0xff)
	s.WriteControl(0x3f)
	test.Equate(t, s.Address, 0x3fff)

	s.WriteData(0x55)
	test.Equate(t, s.Peek(0x3fff), 0x55)
	test.Equate(t, s.Address, 0x0000)
}

func TestRegisterSelect(t *testing.T) {
	s := vdp.NewState()

	s.WriteControl(0x3e)
	s.WriteControl(0x87)
	test.Equate(t, s.Registers[7], 0x3e)

	// a register selection leaves the address register alone
	test.Equate(t, s.Address, 0x0000)
	test.Equate(t, s.AwaitingSecond, false)
}

func TestPokeMasking(t *testing.T) {
	s := vdp.NewState()

	s.Poke(0x4001, 0x77)
	test.Equate(t, s.Peek(0x0001), 0x77)
}
