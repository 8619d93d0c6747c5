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

// Package ansi defines the ANSI control sequences used by the colorterm
// package.
package ansi

import "fmt"

// ansi colour numbers.
const (
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// sequence targets: a dim pen uses the plain foreground target, a bright
// pen the high-intensity one.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

// Pens is the table of bright colours to be used for text.
var Pens map[string]string

// DimPens is the table of dim colours to be used for text.
var DimPens map[string]string

func init() {
	colours := map[string]int{
		"red":     colRed,
		"green":   colGreen,
		"yellow":  colYellow,
		"blue":    colBlue,
		"magenta": colMagenta,
		"cyan":    colCyan,
		"white":   colWhite,
	}

	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	for name, col := range colours {
		Pens[name] = fmt.Sprintf("\033[%d%dm", targetBrightPen, col)
		DimPens[name] = fmt.Sprintf("\033[%d%dm", targetPen, col)
	}
}

// ClearLine is the CSI sequence to clear the entirety of the current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorForwardOne is the CSI sequence to move the cursor forward one
// character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne is the CSI sequence to move the cursor backward one
// character.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or backward (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
