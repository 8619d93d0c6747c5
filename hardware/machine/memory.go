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

package machine

// Memory is the byte-addressable memory of the machine. Cells are sparse:
// only addresses that have been written to exist, everything else reads as
// zero.
//
// In addition to addressed cells, Memory keeps a table of named cells. A
// named cell backs a data label for which the source analyzer has not (or
// not yet) resolved an address. The engine falls back to named cells when an
// indirect operand names a label missing from the symbol table.
type Memory struct {
	cells map[uint16]uint8
	named map[string]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() Memory {
	return Memory{
		cells: make(map[uint16]uint8),
		named: make(map[string]uint8),
	}
}

// Snapshot creates a deep copy of Memory.
func (m Memory) Snapshot() Memory {
	n := NewMemory()
	for k, v := range m.cells {
		n.cells[k] = v
	}
	for k, v := range m.named {
		n.named[k] = v
	}
	return n
}

// Read returns the byte at the address. Unwritten cells read as zero.
func (m Memory) Read(address uint16) uint8 {
	return m.cells[address]
}

// Write stores a byte at the address.
func (m *Memory) Write(address uint16, value uint8) {
	m.cells[address] = value
}

// Read16 reads a 16-bit value, low byte first.
func (m Memory) Read16(address uint16) uint16 {
	lo := uint16(m.cells[address])
	hi := uint16(m.cells[address+1])
	return hi<<8 | lo
}

// Write16 stores a 16-bit value, low byte first.
func (m *Memory) Write16(address uint16, value uint16) {
	m.cells[address] = uint8(value)
	m.cells[address+1] = uint8(value >> 8)
}

// ReadName returns the value of a named cell. The boolean return value
// indicates whether the cell exists.
func (m Memory) ReadName(name string) (uint8, bool) {
	v, ok := m.named[name]
	return v, ok
}

// WriteName stores a byte in a named cell.
func (m *Memory) WriteName(name string, value uint8) {
	m.named[name] = value
}
