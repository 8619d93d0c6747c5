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

package colorterm

import (
	"github.com/jetsetilly/gophermsx/debugger/terminal"
	"github.com/jetsetilly/gophermsx/debugger/terminal/colorterm/easyterm/ansi"
)

// pen returns the ANSI sequence for a style.
func pen(style terminal.Style) string {
	switch style {
	case terminal.StyleInstruction:
		return ansi.Pens["yellow"]
	case terminal.StyleMachineInfo:
		return ansi.Pens["cyan"]
	case terminal.StyleFirmware:
		return ansi.DimPens["white"]
	case terminal.StyleHelp:
		return ansi.DimPens["cyan"]
	case terminal.StyleInput:
		return ansi.Pens["white"]
	case terminal.StyleError:
		return ansi.Pens["red"]
	}
	return ansi.NormalPen
}

// TermPrintLine writes a styled line to the terminal.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(pen(style))

	if style == terminal.StyleError {
		ct.EasyTerm.TermPrint("* ")
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.TermPrint("\n")
}
