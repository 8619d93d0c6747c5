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

// Package terminal defines the operations required by the debugger's
// command line interface. Implementations are in the plainterm and
// colorterm sub-packages.
package terminal

// UserInterrupt is returned by TermRead() when the user has interrupted
// input (ctrl-c).
const UserInterrupt = "user interrupt"

// Prompt is the text presented before reading a command line.
type Prompt struct {
	Content string
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the number of characters inserted into the buffer,
	// or an error, when completed.
	TermRead(buffer []byte, prompt Prompt) (int, error)

	// IsInteractive returns true for implementations that expect user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows
// output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations need to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
