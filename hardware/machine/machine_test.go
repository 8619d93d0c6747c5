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

package machine_test

import (
	"testing"

	"github.com/jetsetilly/gophermsx/hardware/machine"
	"github.com/jetsetilly/gophermsx/test"
)

func TestStackRoundTrip(t *testing.T) {
	s := machine.NewState()
	sp := s.SP

	s.Push16(0xbeef)
	test.Equate(t, s.SP, int(sp)-2)
	test.Equate(t, s.PeekStack16(0), 0xbeef)

	v := s.Pop16()
	test.Equate(t, v, 0xbeef)
	test.Equate(t, s.SP, int(sp))
}

func TestPairs(t *testing.T) {
	s := machine.NewState()

	s.SetPair("bc", 0x1234)
	test.Equate(t, s.B, 0x12)
	test.Equate(t, s.C, 0x34)
	test.Equate(t, s.Pair("bc"), 0x1234)

	s.SetPair("ix", 0xfedc)
	v, ok := s.Reg8("ixh")
	test.Equate(t, ok, true)
	test.Equate(t, v, 0xfe)
	v, _ = s.Reg8("ixl")
	test.Equate(t, v, 0xdc)

	s.SetReg8("iyl", 0x99)
	test.Equate(t, s.IY, 0x0099)
}

func TestExchange(t *testing.T) {
	s := machine.NewState()

	s.A = 0x11
	s.F.Carry = true
	s.ExchangeAF()
	test.Equate(t, s.A, 0x00)
	test.Equate(t, s.F.Carry, false)
	s.ExchangeAF()
	test.Equate(t, s.A, 0x11)
	test.Equate(t, s.F.Carry, true)

	s.SetPair("hl", 0xabcd)
	s.ExchangeAll()
	test.Equate(t, s.Pair("hl"), 0x0000)
	s.ExchangeAll()
	test.Equate(t, s.Pair("hl"), 0xabcd)
}

func TestSnapshotIsolation(t *testing.T) {
	s := machine.NewState()
	s.Mem.Write(0x9000, 0x42)

	n := s.Snapshot()
	n.Mem.Write(0x9000, 0x99)
	n.A = 0xff

	test.Equate(t, s.Mem.Read(0x9000), 0x42)
	test.Equate(t, s.A, 0x00)
	test.Equate(t, n.Mem.Read(0x9000), 0x99)
}

func TestMemory16(t *testing.T) {
	s := machine.NewState()

	s.Mem.Write16(0x9000, 0x1234)
	test.Equate(t, s.Mem.Read(0x9000), 0x34)
	test.Equate(t, s.Mem.Read(0x9001), 0x12)
	test.Equate(t, s.Mem.Read16(0x9000), 0x1234)
}

func TestFlagsByte(t *testing.T) {
	f := machine.Flags{Zero: true, Carry: true}
	b := f.Byte()

	var g machine.Flags
	g.SetByte(b)
	test.Equate(t, g.Zero, true)
	test.Equate(t, g.Carry, true)
	test.Equate(t, g.Sign, false)
	test.Equate(t, g.Parity, false)
}

func TestCallFrames(t *testing.T) {
	s := machine.NewState()

	s.PushFrame(machine.CallFrame{ReturnAddr: 0x8001, Routine: "draw"})
	test.Equate(t, s.FrameDepth(), 1)

	f, ok := s.PopFrame()
	test.Equate(t, ok, true)
	test.Equate(t, f.ReturnAddr, 0x8001)
	test.Equate(t, f.Routine, "draw")
	test.Equate(t, s.FrameDepth(), 0)

	_, ok = s.PopFrame()
	test.Equate(t, ok, false)
}
