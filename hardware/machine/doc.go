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

// Package machine defines the complete state of the emulated machine: the
// Z80 register file (including the shadow set and the IX/IY index
// registers), the four modelled flags, main memory, the call-frame stack
// and the embedded video chip state.
//
// State is a value type. The engine package receives a State, works on a
// snapshot and returns a new value; nothing in this package is shared
// between snapshots. One State exists per debugging session and external
// packages are free to keep old snapshots for undo purposes.
package machine
