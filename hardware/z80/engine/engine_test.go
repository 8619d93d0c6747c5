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

package engine_test

import (
	"testing"

	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/hardware/machine"
	"github.com/jetsetilly/gophermsx/hardware/z80/engine"
	"github.com/jetsetilly/gophermsx/symbols"
	"github.com/jetsetilly/gophermsx/test"
)

// step executes one line of assembly text at a neutral position.
func step(e *engine.Engine, s machine.State, line string) (machine.State, engine.Result) {
	return e.Execute(s, assembly.Parse(line), engine.Position{Addr: 0x8000, Next: 0x8001})
}

func TestXorClearsAccumulator(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.A = 0x5a

	s, res := step(e, s, "xor a")
	test.Equate(t, s.A, 0)
	test.Equate(t, s.F.Zero, true)
	test.Equate(t, s.F.Carry, false)
	test.Equate(t, s.F.Parity, true)
	test.Equate(t, res.Cycles, 4)
}

func TestAddOverflow(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.A = 0x70

	// two positive operands with a negative result is signed overflow
	s, _ = step(e, s, "add a,$70")
	test.Equate(t, s.A, 0xe0)
	test.Equate(t, s.F.Parity, true)
	test.Equate(t, s.F.Sign, true)
	test.Equate(t, s.F.Carry, false)
	test.Equate(t, s.F.Zero, false)
}

func TestSubBorrow(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.A = 0x10

	s, _ = step(e, s, "sub $20")
	test.Equate(t, s.A, 0xf0)
	test.Equate(t, s.F.Carry, true)
	test.Equate(t, s.F.Sign, true)
	test.Equate(t, s.F.Parity, false)
}

func TestAddSubRoundTrip(t *testing.T) {
	e := engine.NewEngine(nil, nil)

	// adding then subtracting the same value restores the accumulator,
	// modulo 8-bit wraparound
	for _, p := range [][2]uint8{{0x00, 0x00}, {0x12, 0x34}, {0xff, 0x01}, {0x80, 0x80}, {0x7f, 0xff}} {
		s := machine.NewState()
		s.A = p[0]
		s.B = p[1]

		s, _ = step(e, s, "add a,b")
		s, _ = step(e, s, "sub b")
		test.Equate(t, s.A, int(p[0]))
	}
}

func TestCompareLeavesAccumulator(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.A = 0x42

	s, _ = step(e, s, "cp $42")
	test.Equate(t, s.A, 0x42)
	test.Equate(t, s.F.Zero, true)
}

func TestIncDecEdges(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.A = 0x7f
	s.F.Carry = true

	// overflow at the signed boundary; carry is never touched
	s, _ = step(e, s, "inc a")
	test.Equate(t, s.A, 0x80)
	test.Equate(t, s.F.Parity, true)
	test.Equate(t, s.F.Sign, true)
	test.Equate(t, s.F.Carry, true)

	s.B = 0x80
	s, _ = step(e, s, "dec b")
	test.Equate(t, s.B, 0x7f)
	test.Equate(t, s.F.Parity, true)
	test.Equate(t, s.F.Sign, false)
}

func TestDecimalAdjust(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.A = 0x19

	// BCD 19 + 28 = 47
	s, _ = step(e, s, "add a,$28")
	test.Equate(t, s.A, 0x41)
	s, _ = step(e, s, "daa")
	test.Equate(t, s.A, 0x47)
	test.Equate(t, s.F.Carry, false)
}

func TestSixteenBitArithmetic(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.SetPair("hl", 0xf000)
	s.SetPair("de", 0x2000)

	s, res := step(e, s, "add hl,de")
	test.Equate(t, s.Pair("hl"), 0x1000)
	test.Equate(t, s.F.Carry, true)
	test.Equate(t, res.Cycles, 11)

	s.SetPair("hl", 0x1000)
	s.SetPair("de", 0x0001)
	s.F.Carry = false
	s, _ = step(e, s, "sbc hl,de")
	test.Equate(t, s.Pair("hl"), 0x0fff)
	test.Equate(t, s.F.Carry, false)
}

func TestAccumulatorRotate(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.A = 0x81
	s.F.Zero = true

	// only carry changes in the one-byte rotate group
	s, _ = step(e, s, "rlca")
	test.Equate(t, s.A, 0x03)
	test.Equate(t, s.F.Carry, true)
	test.Equate(t, s.F.Zero, true)
}

func TestPrefixedRotate(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.B = 0x80

	s, _ = step(e, s, "sla b")
	test.Equate(t, s.B, 0)
	test.Equate(t, s.F.Carry, true)
	test.Equate(t, s.F.Zero, true)
	test.Equate(t, s.F.Parity, true)
}

func TestBitTest(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.D = 0x40

	s, _ = step(e, s, "bit 6,d")
	test.Equate(t, s.F.Zero, false)

	s, _ = step(e, s, "bit 7,d")
	test.Equate(t, s.F.Zero, true)
}

func TestLoadThroughMemory(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.SetPair("hl", 0xc000)
	s.A = 0x99

	s, _ = step(e, s, "ld (hl),a")
	test.Equate(t, s.Mem.Read(0xc000), 0x99)

	s, _ = step(e, s, "ld b,(hl)")
	test.Equate(t, s.B, 0x99)

	s.IX = 0xc010
	s, _ = step(e, s, "ld (ix+2),$55")
	test.Equate(t, s.Mem.Read(0xc012), 0x55)

	s, _ = step(e, s, "ld ($c020),hl")
	test.Equate(t, s.Mem.Read16(0xc020), 0xc000)
}

func TestBlockTransfer(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	for i := uint16(0); i < 4; i++ {
		s.Mem.Write(0x9000+i, uint8(i)+1)
	}
	s.SetPair("hl", 0x9000)
	s.SetPair("de", 0xa000)
	s.SetPair("bc", 4)

	s, res := step(e, s, "ldir")
	for i := uint16(0); i < 4; i++ {
		test.Equate(t, s.Mem.Read(0xa000+i), int(i)+1)
	}
	test.Equate(t, s.Pair("hl"), 0x9004)
	test.Equate(t, s.Pair("de"), 0xa004)
	test.Equate(t, s.Pair("bc"), 0)
	test.Equate(t, s.F.Parity, false)

	// three continuing iterations and one final one
	test.Equate(t, res.Cycles, 3*21+16)
}

func TestBlockSearch(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.Mem.Write(0x9000, 0x01)
	s.Mem.Write(0x9001, 0x02)
	s.Mem.Write(0x9002, 0x03)
	s.A = 0x02
	s.SetPair("hl", 0x9000)
	s.SetPair("bc", 8)

	// stops on the match, counter not yet exhausted
	s, _ = step(e, s, "cpir")
	test.Equate(t, s.F.Zero, true)
	test.Equate(t, s.Pair("hl"), 0x9002)
	test.Equate(t, s.Pair("bc"), 6)
	test.Equate(t, s.F.Parity, true)
}

func TestConditionalJump(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.F.Zero = false

	_, res := step(e, s, "jp z,$9000")
	test.Equate(t, res.Flow == engine.FlowNext, true)
	test.Equate(t, res.Taken, false)
	test.Equate(t, res.Cycles, 10)

	s.F.Zero = true
	_, res = step(e, s, "jp z,$9000")
	test.Equate(t, res.Flow == engine.FlowJump, true)
	test.Equate(t, res.Taken, true)
	test.Equate(t, res.TargetResolved, true)
	test.Equate(t, res.TargetAddr, 0x9000)
}

func TestDjnz(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.B = 2

	s, res := step(e, s, "djnz $8000")
	test.Equate(t, s.B, 1)
	test.Equate(t, res.Taken, true)
	test.Equate(t, res.Cycles, 13)

	s, res = step(e, s, "djnz $8000")
	test.Equate(t, s.B, 0)
	test.Equate(t, res.Taken, false)
	test.Equate(t, res.Cycles, 8)
}

func TestCallAndReturn(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	sp := s.SP

	s, res := e.Execute(s, assembly.Parse("call $9000"), engine.Position{Addr: 0x8000, Next: 0x8001})
	test.Equate(t, res.Flow == engine.FlowCall, true)
	test.Equate(t, res.TargetAddr, 0x9000)
	test.Equate(t, s.SP, int(sp)-2)
	test.Equate(t, s.PeekStack16(0), 0x8001)
	test.Equate(t, len(s.Frames), 1)
	test.Equate(t, s.Frames[0].Firmware, false)

	s, res = step(e, s, "ret")
	test.Equate(t, res.Flow == engine.FlowReturn, true)
	test.Equate(t, res.TargetAddr, 0x8001)
	test.Equate(t, s.SP, int(sp))
	test.Equate(t, len(s.Frames), 0)
}

func TestFirmwareCall(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()

	// a resolved target inside the firmware region marks the frame
	s, res := step(e, s, "call $004d")
	test.Equate(t, res.TargetResolved, true)
	test.Equate(t, engine.InFirmware(res.TargetAddr), true)
	test.Equate(t, s.Frames[0].Firmware, true)
}

func TestRestart(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()

	s, res := step(e, s, "rst $08")
	test.Equate(t, res.Flow == engine.FlowCall, true)
	test.Equate(t, res.TargetAddr, 0x0008)
	test.Equate(t, s.Frames[0].Firmware, true)
}

func TestHaltWithInterruptsDisabled(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()

	s, res := step(e, s, "halt")
	test.Equate(t, s.Halted, true)
	test.Equate(t, res.Flow == engine.FlowHalt, true)

	// every further step costs a fixed amount and changes nothing. the
	// flow says the position holds so the caller does not walk past the
	// halt line
	ts := s.TStates
	s, res = step(e, s, "nop")
	test.Equate(t, s.Halted, true)
	test.Equate(t, res.Flow == engine.FlowStay, true)
	test.Equate(t, s.TStates, ts+4)
}

func TestHaltWakesOnInterrupt(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()

	s, _ = step(e, s, "ei")
	s, _ = step(e, s, "halt")
	test.Equate(t, s.Halted, true)

	// the next step fast-forwards to the periodic-interrupt boundary. the
	// wake step itself executes nothing: the position holds so the pending
	// instruction runs on the following step
	s, res := step(e, s, "nop")
	test.Equate(t, s.Halted, false)
	test.Equate(t, s.TStates, uint64(engine.InterruptPeriod))
	test.Equate(t, res.Cycles, engine.InterruptPeriod-8)
	test.Equate(t, res.Flow == engine.FlowStay, true)
}

func TestPortWritesReachVideoMemory(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()

	// set the write address then send a byte through the data port
	s.A = 0x00
	s, _ = step(e, s, "out ($99),a")
	s.A = 0x40
	s, _ = step(e, s, "out ($99),a")
	s.A = 0x5a
	s, _ = step(e, s, "out ($98),a")

	test.Equate(t, s.VDP.Peek(0x0000), 0x5a)
	test.Equate(t, s.VDP.Address, 0x0001)
}

func TestBlockOutToVideoMemory(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()

	// address setup through the control port
	s.A = 0x00
	s, _ = step(e, s, "out ($99),a")
	s.A = 0x40
	s, _ = step(e, s, "out ($99),a")

	for i := uint16(0); i < 3; i++ {
		s.Mem.Write(0x9000+i, uint8(i)+0x10)
	}
	s.SetPair("hl", 0x9000)
	s.B = 3
	s.C = 0x98

	s, _ = step(e, s, "otir")
	test.Equate(t, s.VDP.Peek(0x0000), 0x10)
	test.Equate(t, s.VDP.Peek(0x0001), 0x11)
	test.Equate(t, s.VDP.Peek(0x0002), 0x12)
	test.Equate(t, s.B, 0)
	test.Equate(t, s.F.Zero, true)
}

func TestInReadsAllOnes(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()

	s, _ = step(e, s, "in a,($99)")
	test.Equate(t, s.A, 0xff)
}

func TestSnapshotDiscipline(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.A = 1

	// the input state never changes; the effect is only in the result
	after, _ := step(e, s, "inc a")
	test.Equate(t, s.A, 1)
	test.Equate(t, after.A, 2)
}

func TestUnrecognisedMnemonic(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()

	before := s.Snapshot()
	s, res := step(e, s, "frobnicate a,b")
	test.Equate(t, res.Cycles, 4)
	test.Equate(t, s.A, int(before.A))
	test.Equate(t, res.Flow == engine.FlowNext, true)
}

func TestExchangeInstructions(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.SetPair("de", 0x1111)
	s.SetPair("hl", 0x2222)

	s, _ = step(e, s, "ex de,hl")
	test.Equate(t, s.Pair("de"), 0x2222)
	test.Equate(t, s.Pair("hl"), 0x1111)

	s, _ = step(e, s, "exx")
	test.Equate(t, s.Pair("hl"), 0)
	s, _ = step(e, s, "exx")
	test.Equate(t, s.Pair("hl"), 0x1111)
}

func TestPushPopInstructions(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	s := machine.NewState()
	s.SetPair("bc", 0xbeef)
	sp := s.SP

	s, _ = step(e, s, "push bc")
	s, _ = step(e, s, "pop hl")
	test.Equate(t, s.Pair("hl"), 0xbeef)
	test.Equate(t, s.SP, int(sp))
}

func TestNamedCellFallback(t *testing.T) {
	e := engine.NewEngine(nil, symbols.DataMap{})
	s := machine.NewState()
	s.A = 0x77

	// a store through an unresolvable label lands in a named cell rather
	// than being lost
	s, _ = step(e, s, "ld (score),a")
	v, ok := s.Mem.ReadName("score")
	test.Equate(t, ok, true)
	test.Equate(t, v, 0x77)

	s.A = 0
	s, _ = step(e, s, "ld a,(score)")
	test.Equate(t, s.A, 0x77)
}
