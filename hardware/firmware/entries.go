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

package firmware

import (
	"github.com/jetsetilly/gophermsx/hardware/machine"
)

// the addresses of the modelled firmware entry points.
const (
	AddrWRTVRM = 0x004d
	AddrFILVRM = 0x0056
	AddrLDIRVM = 0x005c
)

// Entry is a firmware routine modelled as an atomic effect on machine
// state. In black-box mode a call to the entry address applies the effect
// and returns immediately.
type Entry struct {
	Name  string
	Apply func(s *machine.State)
}

// entries maps the entry address to its effect. The effects poke video
// memory directly, leaving the port latch and address register exactly as
// the caller set them, which is how the real routines behave from the
// caller's point of view.
var entries = map[uint16]Entry{
	AddrWRTVRM: {
		Name: "wrtvrm",
		Apply: func(s *machine.State) {
			s.VDP.Poke(s.Pair("hl"), s.A)
		},
	},

	AddrFILVRM: {
		Name: "filvrm",
		Apply: func(s *machine.State) {
			addr := s.Pair("hl")
			count := int(s.Pair("bc"))
			for i := 0; i < count; i++ {
				s.VDP.Poke(addr+uint16(i), s.A)
			}
		},
	},

	AddrLDIRVM: {
		Name: "ldirvm",
		Apply: func(s *machine.State) {
			src := s.Pair("hl")
			dst := s.Pair("de")
			count := int(s.Pair("bc"))
			for i := 0; i < count; i++ {
				s.VDP.Poke(dst+uint16(i), s.Mem.Read(src+uint16(i)))
			}
		},
	},
}

// LookupEntry returns the modelled entry at an address, if there is one.
func LookupEntry(address uint16) (Entry, bool) {
	e, ok := entries[address]
	return e, ok
}
