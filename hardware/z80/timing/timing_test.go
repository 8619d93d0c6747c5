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

package timing_test

import (
	"testing"

	"github.com/jetsetilly/gophermsx/hardware/z80/timing"
	"github.com/jetsetilly/gophermsx/test"
)

func TestLoadShapes(t *testing.T) {
	test.Equate(t, timing.Cycles("ld", "a,b", false), 4)
	test.Equate(t, timing.Cycles("ld", "a,$12", false), 7)
	test.Equate(t, timing.Cycles("ld", "a,(hl)", false), 7)
	test.Equate(t, timing.Cycles("ld", "(hl),$12", false), 10)
	test.Equate(t, timing.Cycles("ld", "a,(ix+4)", false), 19)
	test.Equate(t, timing.Cycles("ld", "hl,$1234", false), 10)
	test.Equate(t, timing.Cycles("ld", "ix,$1234", false), 14)
	test.Equate(t, timing.Cycles("ld", "hl,($1234)", false), 16)
	test.Equate(t, timing.Cycles("ld", "bc,($1234)", false), 20)
	test.Equate(t, timing.Cycles("ld", "($1234),a", false), 13)
	test.Equate(t, timing.Cycles("ld", "sp,hl", false), 6)
	test.Equate(t, timing.Cycles("ld", "a,i", false), 9)
	test.Equate(t, timing.Cycles("ld", "a,(de)", false), 7)
}

func TestOperandSpacing(t *testing.T) {
	// operand text is normalised before the lookup
	test.Equate(t, timing.Cycles("LD", "A, (HL)", false), 7)
}

func TestConditionalFlow(t *testing.T) {
	test.Equate(t, timing.Cycles("djnz", "loop", true), 13)
	test.Equate(t, timing.Cycles("djnz", "loop", false), 8)

	test.Equate(t, timing.Cycles("jr", "loop", false), 12)
	test.Equate(t, timing.Cycles("jr", "nz,loop", true), 12)
	test.Equate(t, timing.Cycles("jr", "nz,loop", false), 7)

	test.Equate(t, timing.Cycles("jp", "loop", false), 10)
	test.Equate(t, timing.Cycles("jp", "nz,loop", false), 10)
	test.Equate(t, timing.Cycles("jp", "(hl)", false), 4)

	test.Equate(t, timing.Cycles("call", "sub", false), 17)
	test.Equate(t, timing.Cycles("call", "z,sub", true), 17)
	test.Equate(t, timing.Cycles("call", "z,sub", false), 10)

	test.Equate(t, timing.Cycles("ret", "", false), 10)
	test.Equate(t, timing.Cycles("ret", "z", true), 11)
	test.Equate(t, timing.Cycles("ret", "z", false), 5)
}

func TestStack(t *testing.T) {
	test.Equate(t, timing.Cycles("push", "bc", false), 11)
	test.Equate(t, timing.Cycles("push", "ix", false), 15)
	test.Equate(t, timing.Cycles("pop", "hl", false), 10)
	test.Equate(t, timing.Cycles("ex", "(sp),hl", false), 19)
	test.Equate(t, timing.Cycles("ex", "(sp),iy", false), 23)
	test.Equate(t, timing.Cycles("ex", "de,hl", false), 4)
}

func TestArithmetic(t *testing.T) {
	test.Equate(t, timing.Cycles("add", "a,b", false), 4)
	test.Equate(t, timing.Cycles("add", "a,$05", false), 7)
	test.Equate(t, timing.Cycles("add", "hl,de", false), 11)
	test.Equate(t, timing.Cycles("add", "ix,bc", false), 15)
	test.Equate(t, timing.Cycles("adc", "hl,de", false), 15)
	test.Equate(t, timing.Cycles("sub", "(hl)", false), 7)
	test.Equate(t, timing.Cycles("cp", "(ix+1)", false), 19)
	test.Equate(t, timing.Cycles("inc", "a", false), 4)
	test.Equate(t, timing.Cycles("inc", "(hl)", false), 11)
	test.Equate(t, timing.Cycles("inc", "bc", false), 6)
	test.Equate(t, timing.Cycles("inc", "ix", false), 10)
	test.Equate(t, timing.Cycles("dec", "(ix+0)", false), 23)
}

func TestBitAndRotate(t *testing.T) {
	test.Equate(t, timing.Cycles("rlca", "", false), 4)
	test.Equate(t, timing.Cycles("rlc", "b", false), 8)
	test.Equate(t, timing.Cycles("rlc", "(hl)", false), 15)
	test.Equate(t, timing.Cycles("bit", "7,(hl)", false), 12)
	test.Equate(t, timing.Cycles("bit", "0,b", false), 8)
	test.Equate(t, timing.Cycles("set", "1,(iy+2)", false), 23)
}

func TestBlock(t *testing.T) {
	test.Equate(t, timing.Cycles("ldi", "", false), 16)
	test.Equate(t, timing.Cycles("ldir", "", false), 21)
	test.Equate(t, timing.Cycles("cpdr", "", false), 21)
	test.Equate(t, timing.Cycles("otir", "", false), 21)
	test.Equate(t, timing.BlockFinal(), 16)
}

func TestPorts(t *testing.T) {
	test.Equate(t, timing.Cycles("out", "($98),a", false), 11)
	test.Equate(t, timing.Cycles("out", "(c),b", false), 12)
	test.Equate(t, timing.Cycles("in", "a,($99)", false), 11)
	test.Equate(t, timing.Cycles("in", "b,(c)", false), 12)
}

func TestUnknownShape(t *testing.T) {
	test.Equate(t, timing.Cycles("frob", "a,b", false), timing.DefaultCost)
}
