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

package decoder

// the standard decode tables, indexed by the octal fields of the opcode
// byte (x = bits 6-7, y = bits 3-5, z = bits 0-2).

var reg8 = [8]string{"b", "c", "d", "e", "h", "l", "(hl)", "a"}

var reg16 = [4]string{"bc", "de", "hl", "sp"}

// the stack group replaces SP with AF
var reg16Stack = [4]string{"bc", "de", "hl", "af"}

var conditions = [8]string{"nz", "z", "nc", "c", "po", "pe", "p", "m"}

// the arithmetic/logic group. the accumulator spelling is part of the
// mnemonic column in the published table
var aluMnemonic = [8]string{"add", "adc", "sub", "sbc", "and", "xor", "or", "cp"}

// whether the alu operation names the accumulator as its first operand
var aluAccumulator = [8]bool{true, true, false, true, false, false, false, false}

var rotShift = [8]string{"rlc", "rrc", "rl", "rr", "sla", "sra", "sll", "srl"}

// the miscellaneous x=0 z=7 group
var accumulatorOps = [8]string{"rlca", "rrca", "rla", "rra", "daa", "cpl", "scf", "ccf"}

// the block instruction group in the extended table, indexed by [y-4][z]
var blockOps = [4][4]string{
	{"ldi", "cpi", "ini", "outi"},
	{"ldd", "cpd", "ind", "outd"},
	{"ldir", "cpir", "inir", "otir"},
	{"lddr", "cpdr", "indr", "otdr"},
}

// interrupt modes for the extended table's IM instruction
var interruptModes = [8]string{"0", "0", "1", "2", "0", "0", "1", "2"}

// aluOperand joins the alu mnemonic's implicit accumulator with the value
// operand.
func aluOperand(y uint8, value string) string {
	if aluAccumulator[y] {
		return "a," + value
	}
	return value
}
