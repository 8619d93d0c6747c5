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

package terminal

// Style is used to hint at what kind of information is being output. The
// terminal implementation chooses how, or whether, to differentiate styles.
type Style int

// the closed set of output styles.
const (
	// normal, uncategorised output
	StyleFeedback Style = iota

	// the source line about to be executed
	StyleInstruction

	// machine state summaries (registers, flags, clock)
	StyleMachineInfo

	// firmware instruction-window output
	StyleFirmware

	// help text
	StyleHelp

	// input echo. used internally by terminal implementations
	StyleInput

	// errors from the sequencing layer
	StyleError
)
