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

package assembly

import (
	"strconv"
	"strings"
)

// Class describes the shape of one operand.
type Class int

// The closed set of operand shapes.
const (
	ClassNone Class = iota
	ClassReg8
	ClassPair
	ClassCond
	ClassIndirectPair // (hl), (bc), (de), (sp)
	ClassIndexed      // (ix+d), (iy-d)
	ClassIndirect     // (nn) or (label)
	ClassNumber
	ClassName
)

// Classify determines the shape of an operand, which must already be in the
// normalised lower-case form produced by Parse. Note that some names are
// ambiguous: "c" classifies as a register and "p", "m" etc as names; the
// engine decides from instruction context whether a condition is meant.
func Classify(op string) Class {
	switch op {
	case "":
		return ClassNone
	case "a", "b", "c", "d", "e", "h", "l", "i", "r", "ixh", "ixl", "iyh", "iyl":
		return ClassReg8
	case "af", "af'", "bc", "de", "hl", "sp", "ix", "iy":
		return ClassPair
	case "nz", "z", "nc", "po", "pe":
		return ClassCond
	case "(bc)", "(de)", "(hl)", "(sp)":
		return ClassIndirectPair
	}

	if strings.HasPrefix(op, "(ix") || strings.HasPrefix(op, "(iy") {
		return ClassIndexed
	}

	if strings.HasPrefix(op, "(") && strings.HasSuffix(op, ")") {
		return ClassIndirect
	}

	if _, ok := Number(op); ok {
		return ClassNumber
	}

	return ClassName
}

// IsPair returns true if the operand names one of the 16-bit register
// pairs.
func IsPair(op string) bool {
	return Classify(op) == ClassPair
}

// IsCondition returns true if the operand can be read as a branch
// condition. The registers "c" and "a"-adjacent names "p" and "m" are
// conditions only in a condition position; callers apply that context.
func IsCondition(op string) bool {
	switch op {
	case "nz", "z", "nc", "c", "po", "pe", "p", "m":
		return true
	}
	return false
}

// Inner returns the text inside an indirect operand's parentheses.
func Inner(op string) (string, bool) {
	if len(op) >= 2 && op[0] == '(' && op[len(op)-1] == ')' {
		return op[1 : len(op)-1], true
	}
	return "", false
}

// Indexed splits an indexed operand into its index register ("ix" or "iy")
// and signed displacement. "(ix)" is treated as a zero displacement.
func Indexed(op string) (string, int8, bool) {
	inner, ok := Inner(op)
	if !ok {
		return "", 0, false
	}
	if len(inner) < 2 {
		return "", 0, false
	}

	base := inner[:2]
	if base != "ix" && base != "iy" {
		return "", 0, false
	}

	rest := inner[2:]
	if rest == "" {
		return base, 0, true
	}

	neg := false
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		neg = true
		rest = rest[1:]
	default:
		return "", 0, false
	}

	n, ok := Number(rest)
	if !ok {
		return "", 0, false
	}
	if neg {
		n = -n
	}
	if n < -128 || n > 127 {
		return "", 0, false
	}

	return base, int8(n), true
}

// Number parses a numeric literal in any of the forms that appear in
// hand-written source: decimal, hexadecimal ($nn, 0xnn or a trailing 'h'),
// binary (%nn or a trailing 'b') and an optional leading sign.
func Number(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		base = 16
		s = s[1:]
	case strings.HasPrefix(s, "0x"):
		base = 16
		s = s[2:]
	case strings.HasPrefix(s, "%"):
		base = 2
		s = s[1:]
	case strings.HasSuffix(s, "h") && isHex(s[:len(s)-1]):
		base = 16
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "b") && isBinary(s[:len(s)-1]):
		base = 2
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}

	return int(n), true
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	// a trailing-h literal must start with a digit or it would be
	// indistinguishable from a name
	if s[0] < '0' || s[0] > '9' {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return false
		}
	}
	return true
}

func isBinary(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != '0' && c != '1' {
			return false
		}
	}
	return true
}
