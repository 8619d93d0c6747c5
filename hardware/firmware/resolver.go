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

// Package firmware handles the boundary between analysed user code and the
// opaque system ROM in the low 16K of the address space. A call that lands
// in firmware is resolved in one of two ways: as a black box, applying the
// documented effect of the entry point and returning at once; or by
// stepping through the actual ROM bytes one decoded instruction at a time.
package firmware

import (
	"github.com/jetsetilly/gophermsx/hardware/machine"
	"github.com/jetsetilly/gophermsx/hardware/z80/decoder"
	"github.com/jetsetilly/gophermsx/hardware/z80/engine"
	"github.com/jetsetilly/gophermsx/logger"
)

// Mode selects how firmware calls are resolved.
type Mode int

// BlackBox applies the modelled effect of a firmware entry point and
// returns immediately. StepThrough executes the ROM image instruction by
// instruction, which needs a loaded image.
const (
	BlackBox Mode = iota
	StepThrough
)

// Resolver owns the firmware boundary for one debugging session.
type Resolver struct {
	Mode  Mode
	Image *Image

	eng *engine.Engine

	// the step-through sub-machine. inactive between firmware calls
	active bool
	cursor uint16
}

// NewResolver is the preferred method of initialisation for the Resolver
// type. The image may be nil, in which case step-through mode degrades to
// black-box resolution.
func NewResolver(eng *engine.Engine, img *Image, mode Mode) *Resolver {
	return &Resolver{
		Mode:  mode,
		Image: img,
		eng:   eng,
	}
}

// Active returns true while the step-through sub-machine is inside a
// firmware routine.
func (r *Resolver) Active() bool {
	return r.active
}

// Cursor returns the address of the next firmware instruction while the
// step-through sub-machine is active.
func (r *Resolver) Cursor() uint16 {
	return r.cursor
}

// Call resolves a call into the firmware region. In black-box mode (or
// when no image is loaded) the entry's effect is applied and the state
// returned with the call already unwound: the stack and frame list are at
// their pre-call depth. In step-through mode the sub-machine activates and
// the caller drives it with Step until Active goes false.
func (r *Resolver) Call(s machine.State, address uint16) machine.State {
	if r.Mode == StepThrough && r.Image != nil {
		r.active = true
		r.cursor = address
		return s
	}

	n := s.Snapshot()

	if e, ok := LookupEntry(address); ok {
		e.Apply(&n)
	} else {
		logger.Logf("firmware", "call to unmodelled entry $%04x", address)
	}

	// unwind the call: the stack returns to its pre-call depth
	n.Pop16()
	n.PopFrame()

	return n
}

// Jump resolves a jump into the firmware region. A jump leaves no return
// address, so unlike Call there is no stack unwind: in black-box mode (or
// when no image is loaded) the entry's effect is applied and the stack left
// as the caller arranged it. In step-through mode the sub-machine activates
// as for a call.
func (r *Resolver) Jump(s machine.State, address uint16) machine.State {
	if r.Mode == StepThrough && r.Image != nil {
		r.active = true
		r.cursor = address
		return s
	}

	n := s.Snapshot()

	if e, ok := LookupEntry(address); ok {
		e.Apply(&n)
	} else {
		logger.Logf("firmware", "jump to unmodelled entry $%04x", address)
	}

	return n
}

// Step executes one firmware instruction in step-through mode. It returns
// the new state and the instruction that ran. When a return-class
// instruction sends control out of the firmware region the sub-machine
// deactivates and the caller resumes in user code.
func (r *Resolver) Step(s machine.State) (machine.State, decoder.DecodedInstruction) {
	d := decoder.Decode(r.Image.Read, r.cursor)

	n, res := r.eng.ExecuteDecoded(s, d)

	switch res.Flow {
	case engine.FlowStay:
		// halted inside the routine. the cursor holds until the wake step

	case engine.FlowNext, engine.FlowHalt:
		r.cursor = d.Address + uint16(d.Size)

	case engine.FlowJump, engine.FlowCall:
		if res.TargetResolved {
			r.cursor = res.TargetAddr
		} else {
			r.cursor = d.Address + uint16(d.Size)
		}

	case engine.FlowReturn:
		r.cursor = res.TargetAddr
		if !engine.InFirmware(res.TargetAddr) {
			r.active = false
		}
	}

	// a jump out of the region also ends the excursion. some routines exit
	// through a dispatch jump rather than a plain return
	if r.active && !engine.InFirmware(r.cursor) {
		r.active = false
	}

	return n, d
}

// Window decodes a run of instructions ahead of an address without
// executing them. The debugger uses it to show upcoming firmware code while
// stepping through a routine.
func (r *Resolver) Window(address uint16, n int) []decoder.DecodedInstruction {
	if r.Image == nil {
		return nil
	}

	w := make([]decoder.DecodedInstruction, 0, n)
	for i := 0; i < n; i++ {
		d := decoder.Decode(r.Image.Read, address)
		w = append(w, d)
		address += uint16(d.Size)
		if !engine.InFirmware(address) {
			break
		}
	}
	return w
}
