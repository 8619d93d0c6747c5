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

package assembly_test

import (
	"testing"

	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/test"
)

func TestParse(t *testing.T) {
	in := assembly.Parse("loop: LD A, (HL) ; grab the next byte")
	test.Equate(t, in.Label, "loop")
	test.Equate(t, in.Mnemonic, "ld")
	test.Equate(t, len(in.Operands), 2)
	test.Equate(t, in.Operand(0), "a")
	test.Equate(t, in.Operand(1), "(hl)")
	test.Equate(t, in.Comment, "grab the next byte")

	in = assembly.Parse("\tret")
	test.Equate(t, in.Mnemonic, "ret")
	test.Equate(t, len(in.Operands), 0)
	test.Equate(t, in.Operand(0), "")
}

func TestParseEmptyShapes(t *testing.T) {
	test.Equate(t, assembly.Parse("").IsEmpty(), true)
	test.Equate(t, assembly.Parse("  ; comment only").IsEmpty(), true)
	test.Equate(t, assembly.Parse("start:").IsEmpty(), true)

	// a label-only line still carries its label
	in := assembly.Parse("start:")
	test.Equate(t, in.Label, "start")
}

func TestParseExchangeOperand(t *testing.T) {
	in := assembly.Parse("ex af, af'")
	test.Equate(t, in.Mnemonic, "ex")
	test.Equate(t, in.Operand(0), "af")
	test.Equate(t, in.Operand(1), "af'")
}

func TestClassify(t *testing.T) {
	test.Equate(t, int(assembly.Classify("a")), int(assembly.ClassReg8))
	test.Equate(t, int(assembly.Classify("ixl")), int(assembly.ClassReg8))
	test.Equate(t, int(assembly.Classify("hl")), int(assembly.ClassPair))
	test.Equate(t, int(assembly.Classify("af'")), int(assembly.ClassPair))
	test.Equate(t, int(assembly.Classify("nz")), int(assembly.ClassCond))
	test.Equate(t, int(assembly.Classify("(hl)")), int(assembly.ClassIndirectPair))
	test.Equate(t, int(assembly.Classify("(ix+5)")), int(assembly.ClassIndexed))
	test.Equate(t, int(assembly.Classify("($c000)")), int(assembly.ClassIndirect))
	test.Equate(t, int(assembly.Classify("(score)")), int(assembly.ClassIndirect))
	test.Equate(t, int(assembly.Classify("$12")), int(assembly.ClassNumber))
	test.Equate(t, int(assembly.Classify("loop")), int(assembly.ClassName))
	test.Equate(t, int(assembly.Classify("")), int(assembly.ClassNone))

	// "c" is ambiguous; the register reading wins at classification
	test.Equate(t, int(assembly.Classify("c")), int(assembly.ClassReg8))
	test.Equate(t, assembly.IsCondition("c"), true)
}

func TestNumberForms(t *testing.T) {
	check := func(s string, expected int) {
		t.Helper()
		n, ok := assembly.Number(s)
		test.Equate(t, ok, true)
		test.Equate(t, n, expected)
	}

	check("42", 42)
	check("$ff", 255)
	check("0xff", 255)
	check("0ffh", 255)
	check("12h", 18)
	check("%1010", 10)
	check("1010b", 10)
	check("-5", -5)
	check("+5", 5)

	_, ok := assembly.Number("loop")
	test.Equate(t, ok, false)
	_, ok = assembly.Number("")
	test.Equate(t, ok, false)

	// a trailing-h literal must start with a digit or it is a name
	_, ok = assembly.Number("fish")
	test.Equate(t, ok, false)
}

func TestIndexed(t *testing.T) {
	base, d, ok := assembly.Indexed("(ix+5)")
	test.Equate(t, ok, true)
	test.Equate(t, base, "ix")
	test.Equate(t, int(d), 5)

	base, d, ok = assembly.Indexed("(iy-3)")
	test.Equate(t, ok, true)
	test.Equate(t, base, "iy")
	test.Equate(t, int(d), -3)

	base, d, ok = assembly.Indexed("(ix)")
	test.Equate(t, ok, true)
	test.Equate(t, int(d), 0)

	_, _, ok = assembly.Indexed("(hl)")
	test.Equate(t, ok, false)
	_, _, ok = assembly.Indexed("(ix+200)")
	test.Equate(t, ok, false)
}

func TestInner(t *testing.T) {
	inner, ok := assembly.Inner("($c000)")
	test.Equate(t, ok, true)
	test.Equate(t, inner, "$c000")

	_, ok = assembly.Inner("hl")
	test.Equate(t, ok, false)
}
