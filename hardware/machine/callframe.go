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

// CallFrame records one call that has not yet returned. The frame stack
// shadows the machine stack: every taken call appends a frame and every
// taken return removes one. It exists so that the debugger can map return
// addresses back to source positions and so that the firmware boundary can
// tell a return to user code from a return within firmware.
type CallFrame struct {
	// the address the matching return will resume at
	ReturnAddr uint16

	// the label or address text the call targeted
	Routine string

	// whether the call crossed into the firmware region
	Firmware bool
}

// PushFrame appends a call frame.
func (s *State) PushFrame(frame CallFrame) {
	s.Frames = append(s.Frames, frame)
}

// PopFrame removes and returns the most recent call frame. The boolean
// return value is false if the frame stack is empty; an unmatched return is
// not an error.
func (s *State) PopFrame() (CallFrame, bool) {
	if len(s.Frames) == 0 {
		return CallFrame{}, false
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f, true
}

// FrameDepth returns the number of calls that have not yet returned.
func (s State) FrameDepth() int {
	return len(s.Frames)
}
