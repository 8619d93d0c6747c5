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

// Package symbols holds the label table and static data map supplied by the
// external source analyzer. The emulation core only ever reads the table;
// the analyzer replaces it wholesale when its understanding of the source
// improves.
package symbols

import (
	"sort"
	"strings"
	"sync"
)

// Table maps labels to their resolved 16-bit addresses. Safe for concurrent
// use; the analyzer may update symbols while a debugging session reads
// them.
type Table struct {
	crit   sync.Mutex
	labels map[string]uint16
	byAddr map[uint16]string
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		labels: make(map[string]uint16),
		byAddr: make(map[uint16]string),
	}
}

// Add a label and its resolved address. Labels are case-insensitive; they
// are stored lower-case to match the normalised operand text produced by
// the assembly package.
func (tbl *Table) Add(label string, address uint16) {
	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	label = strings.ToLower(label)
	tbl.labels[label] = address
	tbl.byAddr[address] = label
}

// Lookup returns the resolved address for a label.
func (tbl *Table) Lookup(label string) (uint16, bool) {
	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	address, ok := tbl.labels[strings.ToLower(label)]
	return address, ok
}

// LookupAddr performs the reverse search: the label for a resolved address.
func (tbl *Table) LookupAddr(address uint16) (string, bool) {
	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	label, ok := tbl.byAddr[address]
	return label, ok
}

// Labels returns every known label, sorted by address. Used by the
// instruction-window and watch views.
func (tbl *Table) Labels() []string {
	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	labels := make([]string, 0, len(tbl.labels))
	for label := range tbl.labels {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return tbl.labels[labels[i]] < tbl.labels[labels[j]]
	})
	return labels
}

// DataMap is the static data supplied by the source analyzer: initial byte
// values for data labels. A debugging session seeds the named memory cells
// from the map on reset.
type DataMap map[string]uint8
