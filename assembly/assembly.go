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

// Package assembly parses the textual instruction lines produced by the
// source analyzer. A line has the shape:
//
//	[label:] mnemonic [operand[,operand...]] [; comment]
//
// Parsing is total. A line that cannot be understood produces an
// Instruction with an empty mnemonic, which the execution engine treats as
// a no-op; hand-authored source must never abort a debugging session.
package assembly

import "strings"

// Instruction is one parsed line of assembly source.
type Instruction struct {
	Label    string
	Mnemonic string
	Operands []string
	Comment  string
}

// Parse splits one line of assembly source into its parts. Mnemonic and
// operands are normalised to lower-case with no internal white space, the
// form the engine and the timing oracle expect.
func Parse(line string) Instruction {
	var in Instruction

	// trailing comment
	if idx := strings.Index(line, ";"); idx >= 0 {
		in.Comment = strings.TrimSpace(line[idx+1:])
		line = line[:idx]
	}

	line = strings.TrimSpace(line)

	// optional label
	if idx := strings.Index(line, ":"); idx >= 0 {
		label := strings.TrimSpace(line[:idx])
		if !strings.ContainsAny(label, " \t") {
			in.Label = label
			line = strings.TrimSpace(line[idx+1:])
		}
	}

	if line == "" {
		return in
	}

	// mnemonic is the first field
	fields := strings.Fields(line)
	in.Mnemonic = strings.ToLower(fields[0])

	// everything after the mnemonic is the operand list
	rest := strings.TrimSpace(line[len(fields[0]):])
	if rest == "" {
		return in
	}

	for _, op := range strings.Split(rest, ",") {
		op = strings.ToLower(strings.ReplaceAll(op, " ", ""))
		op = strings.ReplaceAll(op, "\t", "")
		in.Operands = append(in.Operands, op)
	}

	// "af'" is split from a spurious empty operand when written "af'  ,"
	// style; drop empties rather than guessing
	ops := in.Operands[:0]
	for _, op := range in.Operands {
		if op != "" {
			ops = append(ops, op)
		}
	}
	in.Operands = ops

	return in
}

// IsEmpty returns true if the line carried no instruction (blank line,
// comment-only line, label-only line or unparseable text).
func (in Instruction) IsEmpty() bool {
	return in.Mnemonic == ""
}

// Operand returns the nth operand, or the empty string if there is no such
// operand.
func (in Instruction) Operand(n int) string {
	if n < 0 || n >= len(in.Operands) {
		return ""
	}
	return in.Operands[n]
}

func (in Instruction) String() string {
	s := strings.Builder{}
	if in.Label != "" {
		s.WriteString(in.Label)
		s.WriteString(": ")
	}
	s.WriteString(in.Mnemonic)
	if len(in.Operands) > 0 {
		s.WriteString(" ")
		s.WriteString(strings.Join(in.Operands, ","))
	}
	return s.String()
}
