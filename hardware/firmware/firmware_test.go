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

package firmware_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/hardware/firmware"
	"github.com/jetsetilly/gophermsx/hardware/machine"
	"github.com/jetsetilly/gophermsx/hardware/z80/engine"
	"github.com/jetsetilly/gophermsx/test"
)

// callInto performs the call instruction that enters the firmware region,
// the way the debugger does before handing over to the resolver.
func callInto(e *engine.Engine, s machine.State, address uint16) machine.State {
	in := assembly.Parse(fmt.Sprintf("call $%04x", address))
	s, _ = e.Execute(s, in, engine.Position{Addr: 0x8000, Next: 0x8001})
	return s
}

func TestBlackBoxWriteByte(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	r := firmware.NewResolver(e, nil, firmware.BlackBox)

	s := machine.NewState()
	sp := s.SP
	s.A = 0x42
	s.SetPair("hl", 0x1800)

	s = callInto(e, s, firmware.AddrWRTVRM)
	s = r.Call(s, firmware.AddrWRTVRM)

	test.Equate(t, s.VDP.Peek(0x1800), 0x42)

	// the call is unwound: stack and frames back at pre-call depth
	test.Equate(t, s.SP, int(sp))
	test.Equate(t, len(s.Frames), 0)
}

func TestBlackBoxFill(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	r := firmware.NewResolver(e, nil, firmware.BlackBox)

	s := machine.NewState()
	s.A = 0x20
	s.SetPair("hl", 0x0000)
	s.SetPair("bc", 16)

	s = callInto(e, s, firmware.AddrFILVRM)
	s = r.Call(s, firmware.AddrFILVRM)

	test.Equate(t, s.VDP.Peek(0x0000), 0x20)
	test.Equate(t, s.VDP.Peek(0x000f), 0x20)
	test.Equate(t, s.VDP.Peek(0x0010), 0)
}

func TestBlackBoxCopy(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	r := firmware.NewResolver(e, nil, firmware.BlackBox)

	s := machine.NewState()
	for i := uint16(0); i < 8; i++ {
		s.Mem.Write(0xc000+i, uint8(i))
	}
	s.SetPair("hl", 0xc000)
	s.SetPair("de", 0x0100)
	s.SetPair("bc", 8)

	s = callInto(e, s, firmware.AddrLDIRVM)
	s = r.Call(s, firmware.AddrLDIRVM)

	for i := uint16(0); i < 8; i++ {
		test.Equate(t, s.VDP.Peek(0x0100+i), int(i))
	}
}

func TestBlackBoxJump(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	r := firmware.NewResolver(e, nil, firmware.BlackBox)

	s := machine.NewState()
	sp := s.SP
	s.A = 0x42
	s.SetPair("hl", 0x1800)

	// a jump carries no return address so there is nothing to unwind
	s = r.Jump(s, firmware.AddrWRTVRM)

	test.Equate(t, s.VDP.Peek(0x1800), 0x42)
	test.Equate(t, s.SP, int(sp))
	test.Equate(t, len(s.Frames), 0)
}

func TestStepThroughJumpActivates(t *testing.T) {
	img := firmware.NewImage([]byte{0x3c, 0xc9})
	e := engine.NewEngine(nil, nil)
	r := firmware.NewResolver(e, img, firmware.StepThrough)

	s := machine.NewState()
	sp := s.SP
	s.A = 1
	s.Push16(0x8004)

	s = r.Jump(s, 0x0000)
	test.Equate(t, r.Active(), true)
	test.Equate(t, r.Cursor(), 0x0000)

	s, _ = r.Step(s)
	test.Equate(t, s.A, 2)

	// the return pops the caller's pushed address and leaves the region
	s, d := r.Step(s)
	test.Equate(t, d.Mnemonic, "ret")
	test.Equate(t, r.Active(), false)
	test.Equate(t, r.Cursor(), 0x8004)
	test.Equate(t, s.SP, int(sp))
}

func TestUnmodelledEntryStillUnwinds(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	r := firmware.NewResolver(e, nil, firmware.BlackBox)

	s := machine.NewState()
	sp := s.SP
	s = callInto(e, s, 0x0123)
	s = r.Call(s, 0x0123)

	test.Equate(t, s.SP, int(sp))
	test.Equate(t, len(s.Frames), 0)
}

func TestStepThrough(t *testing.T) {
	// a small routine at the start of the image:
	//   inc a
	//   inc a
	//   ret
	img := firmware.NewImage([]byte{0x3c, 0x3c, 0xc9})

	e := engine.NewEngine(nil, nil)
	r := firmware.NewResolver(e, img, firmware.StepThrough)

	s := machine.NewState()
	s.A = 1
	s = callInto(e, s, 0x0000)
	s = r.Call(s, 0x0000)

	test.Equate(t, r.Active(), true)
	test.Equate(t, r.Cursor(), 0x0000)

	s, d := r.Step(s)
	test.Equate(t, d.Mnemonic, "inc")
	test.Equate(t, s.A, 2)
	test.Equate(t, r.Cursor(), 0x0001)

	s, _ = r.Step(s)
	test.Equate(t, s.A, 3)

	// the return leaves the firmware region and deactivates the stepper
	s, d = r.Step(s)
	test.Equate(t, d.Mnemonic, "ret")
	test.Equate(t, r.Active(), false)
	test.Equate(t, len(s.Frames), 0)
}

func TestStepThroughDegradesWithoutImage(t *testing.T) {
	e := engine.NewEngine(nil, nil)
	r := firmware.NewResolver(e, nil, firmware.StepThrough)

	s := machine.NewState()
	s.A = 0x11
	s.SetPair("hl", 0x2000)

	s = callInto(e, s, firmware.AddrWRTVRM)
	s = r.Call(s, firmware.AddrWRTVRM)

	// resolved as a black box
	test.Equate(t, r.Active(), false)
	test.Equate(t, s.VDP.Peek(0x2000), 0x11)
}

func TestWindow(t *testing.T) {
	img := firmware.NewImage([]byte{0x00, 0x3e, 0x12, 0xc9})
	e := engine.NewEngine(nil, nil)
	r := firmware.NewResolver(e, img, firmware.StepThrough)

	w := r.Window(0x0000, 3)
	test.Equate(t, len(w), 3)
	test.Equate(t, w[0].Mnemonic, "nop")
	test.Equate(t, w[1].Mnemonic, "ld")
	test.Equate(t, w[1].Operand, "a,$12")
	test.Equate(t, w[2].Mnemonic, "ret")
}

func TestImageBounds(t *testing.T) {
	img := firmware.NewImage([]byte{0xaa})
	test.Equate(t, img.Size(), 1)
	test.Equate(t, img.Read(0), 0xaa)

	// out-of-range and nil images read as zero
	test.Equate(t, img.Read(100), 0)

	var empty *firmware.Image
	test.Equate(t, empty.Read(0), 0)
	test.Equate(t, empty.Size(), 0)
}
