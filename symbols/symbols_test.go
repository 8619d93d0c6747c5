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

package symbols_test

import (
	"testing"

	"github.com/jetsetilly/gophermsx/symbols"
	"github.com/jetsetilly/gophermsx/test"
)

func TestTable(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Add("start", 0x8000)
	tbl.Add("Loop", 0x8010)

	a, ok := tbl.Lookup("start")
	test.Equate(t, ok, true)
	test.Equate(t, a, 0x8000)

	// labels are case-insensitive both ways
	a, ok = tbl.Lookup("LOOP")
	test.Equate(t, ok, true)
	test.Equate(t, a, 0x8010)

	_, ok = tbl.Lookup("missing")
	test.Equate(t, ok, false)

	l, ok := tbl.LookupAddr(0x8010)
	test.Equate(t, ok, true)
	test.Equate(t, l, "loop")
}

func TestLabelsSortedByAddress(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Add("third", 0x9000)
	tbl.Add("first", 0x8000)
	tbl.Add("second", 0x8800)

	labels := tbl.Labels()
	test.Equate(t, len(labels), 3)
	test.Equate(t, labels[0], "first")
	test.Equate(t, labels[1], "second")
	test.Equate(t, labels[2], "third")
}

func TestRedefinition(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Add("start", 0x8000)
	tbl.Add("start", 0x9000)

	a, _ := tbl.Lookup("start")
	test.Equate(t, a, 0x9000)
}
