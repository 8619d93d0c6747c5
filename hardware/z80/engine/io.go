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

package engine

import (
	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/hardware/machine"
	"github.com/jetsetilly/gophermsx/hardware/vdp"
	"github.com/jetsetilly/gophermsx/logger"
)

// writePort routes a port write to the peripheral that owns the port. the
// display processor claims its data and control ports; writes anywhere else
// are logged and discarded.
func writePort(s *machine.State, port uint8, value uint8) {
	switch port {
	case vdp.DataPort:
		s.VDP.WriteData(value)
	case vdp.ControlPort:
		s.VDP.WriteControl(value)
	default:
		logger.Logf("engine", "out to unmapped port $%02x", port)
	}
}

// portOperand resolves an i/o port operand: either an immediate "(n)" form
// or the register form "(c)".
func (e *Engine) portOperand(s *machine.State, op string) (uint8, bool) {
	inner, ok := assembly.Inner(op)
	if !ok {
		return 0, false
	}
	if inner == "c" {
		return s.C, true
	}
	if n, ok := assembly.Number(inner); ok {
		return uint8(n), true
	}
	return 0, false
}

func execOut(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	port, ok := e.portOperand(s, in.Operand(0))
	if !ok {
		return res
	}

	// the undocumented "out (c),0" form and a missing source both emit zero
	v, ok := e.read8(s, in.Operand(1))
	if !ok {
		v = 0
	}

	writePort(s, port, v)
	return res
}

// execIn reads from a port. input peripherals are not modelled so every
// port reads as 0xff, but the register-form read still sets the flags the
// way the hardware does, since polling loops test them.
func execIn(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	// "in a,(n)", "in r,(c)" and the flags-only "in (c)"
	dst := in.Operand(0)
	portOp := in.Operand(1)
	if portOp == "" {
		portOp = dst
		dst = ""
	}

	if _, ok := e.portOperand(s, portOp); !ok {
		return res
	}

	const v = 0xff

	if dst != "" {
		if !e.write8(s, dst, v) {
			return res
		}
	}

	// the immediate form "in a,(n)" leaves the flags alone
	if inner, _ := assembly.Inner(portOp); inner == "c" {
		s.F.Zero = v == 0
		s.F.Sign = v&0x80 == 0x80
		s.F.Parity = evenParity(v)
		s.F.HalfCarry = false
		s.F.Subtract = false
	}

	return res
}
