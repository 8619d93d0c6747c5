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

// Package timing is the clock-cost oracle. Cycles() maps an instruction
// shape to its exact cost in T-states, from the published Z80 instruction
// table. It is a pure function: the same shape always costs the same.
//
// Conditional jumps, calls and returns, and DJNZ, have two costs; the
// caller says which applied through the taken flag. The repeat-form block
// instructions (LDIR and family) report the cost of one continuing
// iteration; the final iteration costs the same as the non-repeating form
// and aggregation over a whole loop is the execution engine's business.
package timing

import (
	"strings"

	"github.com/jetsetilly/gophermsx/assembly"
)

// DefaultCost is reported for any instruction shape not in the published
// table, rather than failing. Hand-authored source may contain shapes the
// analyzer has mislabelled.
const DefaultCost = 4

// Cycles returns the T-state cost of one instruction. The operands argument
// is the normalised comma-joined operand text ("a,(hl)"). The taken flag
// matters only for the conditional control-flow instructions.
func Cycles(mnemonic string, operands string, taken bool) int {
	mnemonic = strings.ToLower(mnemonic)
	operands = strings.ToLower(strings.ReplaceAll(operands, " ", ""))

	var ops []string
	if operands != "" {
		ops = strings.Split(operands, ",")
	}

	switch mnemonic {
	case "nop", "halt", "di", "ei", "scf", "ccf", "cpl", "daa",
		"exx", "rlca", "rrca", "rla", "rra":
		return 4
	case "neg":
		return 8
	case "im":
		return 8
	case "rld", "rrd":
		return 18

	case "ld":
		return loadCycles(ops)

	case "push":
		if indexPair(op(ops, 0)) {
			return 15
		}
		return 11
	case "pop":
		if indexPair(op(ops, 0)) {
			return 14
		}
		return 10

	case "ex":
		switch op(ops, 0) {
		case "(sp)":
			if indexPair(op(ops, 1)) {
				return 23
			}
			return 19
		}
		return 4

	case "add":
		if op(ops, 0) == "hl" && assembly.IsPair(op(ops, 1)) {
			return 11
		}
		if indexPair(op(ops, 0)) {
			return 15
		}
		return aluCycles(ops)
	case "adc", "sbc":
		if assembly.IsPair(op(ops, 0)) && op(ops, 0) != "af" {
			return 15
		}
		return aluCycles(ops)
	case "sub", "and", "xor", "or", "cp":
		return aluCycles(ops)

	case "inc", "dec":
		switch assembly.Classify(op(ops, 0)) {
		case assembly.ClassIndexed:
			return 23
		case assembly.ClassIndirectPair:
			return 11
		case assembly.ClassPair:
			if indexPair(op(ops, 0)) {
				return 10
			}
			return 6
		}
		return 4

	case "rlc", "rrc", "rl", "rr", "sla", "sra", "sll", "srl":
		switch assembly.Classify(op(ops, 0)) {
		case assembly.ClassIndexed:
			return 23
		case assembly.ClassIndirectPair:
			return 15
		}
		return 8

	case "bit":
		switch assembly.Classify(op(ops, 1)) {
		case assembly.ClassIndexed:
			return 20
		case assembly.ClassIndirectPair:
			return 12
		}
		return 8
	case "set", "res":
		switch assembly.Classify(op(ops, 1)) {
		case assembly.ClassIndexed:
			return 23
		case assembly.ClassIndirectPair:
			return 15
		}
		return 8

	case "jp":
		switch op(ops, 0) {
		case "(hl)":
			return 4
		case "(ix)", "(iy)":
			return 8
		}
		// conditional and unconditional jumps cost the same either way
		return 10
	case "jr":
		// unconditional JR always takes the jump
		if len(ops) < 2 || taken {
			return 12
		}
		return 7
	case "djnz":
		if taken {
			return 13
		}
		return 8
	case "call":
		if len(ops) < 2 || taken {
			return 17
		}
		return 10
	case "ret":
		if len(ops) == 0 {
			return 10
		}
		if taken {
			return 11
		}
		return 5
	case "reti", "retn":
		return 14
	case "rst":
		return 11

	case "in":
		if op(ops, 1) == "(c)" || op(ops, 0) == "(c)" {
			return 12
		}
		return 11
	case "out":
		if op(ops, 0) == "(c)" {
			return 12
		}
		return 11

	case "ldi", "ldd", "cpi", "cpd", "ini", "ind", "outi", "outd":
		return 16
	case "ldir", "lddr", "cpir", "cpdr", "inir", "indr", "otir", "otdr":
		// the continuing-iteration cost. the final iteration costs 16
		return 21
	}

	return DefaultCost
}

// BlockFinal is the cost of the final iteration of a repeat-form block
// instruction (the iteration that does not loop back).
func BlockFinal() int {
	return 16
}

func op(ops []string, n int) string {
	if n < 0 || n >= len(ops) {
		return ""
	}
	return ops[n]
}

func indexPair(operand string) bool {
	return operand == "ix" || operand == "iy"
}

// loadCycles implements the LD corner of the cost table, much the largest.
func loadCycles(ops []string) int {
	dst := op(ops, 0)
	src := op(ops, 1)

	// any indexed displacement form
	if assembly.Classify(dst) == assembly.ClassIndexed || assembly.Classify(src) == assembly.ClassIndexed {
		return 19
	}

	switch {
	case dst == "sp" && src == "hl":
		return 6
	case dst == "sp" && indexPair(src):
		return 10

	case dst == "a" && (src == "i" || src == "r"),
		(dst == "i" || dst == "r") && src == "a":
		return 9

	case dst == "a" && (src == "(bc)" || src == "(de)"),
		(dst == "(bc)" || dst == "(de)") && src == "a":
		return 7
	}

	srcInd := assembly.Classify(src) == assembly.ClassIndirect
	dstInd := assembly.Classify(dst) == assembly.ClassIndirect

	switch {
	case dst == "hl" && srcInd, dstInd && src == "hl":
		return 16
	case indexPair(dst) && srcInd, dstInd && indexPair(src):
		return 20
	case (dst == "bc" || dst == "de" || dst == "sp") && srcInd,
		dstInd && (src == "bc" || src == "de" || src == "sp"):
		return 20
	case dst == "a" && srcInd, dstInd && src == "a":
		return 13
	}

	if assembly.IsPair(dst) {
		if indexPair(dst) {
			return 14
		}
		return 10
	}

	srcImm := assembly.Classify(src) == assembly.ClassNumber ||
		assembly.Classify(src) == assembly.ClassName

	switch {
	case dst == "(hl)" && srcImm:
		return 10
	case dst == "(hl)" || src == "(hl)":
		return 7
	case srcImm:
		return 7
	}

	return 4
}

// aluCycles is the cost of the 8-bit arithmetic/logic group. The value
// operand is the final one, accounting for both the "add a,b" and the
// accumulator-implied "sub b" spellings.
func aluCycles(ops []string) int {
	v := op(ops, len(ops)-1)
	switch assembly.Classify(v) {
	case assembly.ClassIndexed:
		return 19
	case assembly.ClassIndirectPair:
		return 7
	case assembly.ClassNumber, assembly.ClassName:
		return 7
	}
	return 4
}
