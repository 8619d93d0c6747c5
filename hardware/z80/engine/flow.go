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

package engine

import (
	"github.com/jetsetilly/gophermsx/assembly"
	"github.com/jetsetilly/gophermsx/hardware/machine"
)

// splitBranch separates an optional condition code from the target operand.
// a single operand is always a target, even when its text collides with a
// condition name.
func splitBranch(in assembly.Instruction) (cc string, target string) {
	if len(in.Operands) >= 2 && assembly.IsCondition(in.Operand(0)) {
		return in.Operand(0), in.Operand(1)
	}
	return "", in.Operand(0)
}

// resolveTarget works out where a branch goes. numeric and symbolic targets
// resolve to an address; register-indirect targets read the register. a
// label with no symbol table entry stays textual and it is the debugger's
// job to map it to a source line.
func (e *Engine) resolveTarget(s *machine.State, target string) (uint16, bool) {
	switch assembly.Classify(target) {
	case assembly.ClassNumber:
		n, _ := assembly.Number(target)
		return uint16(n), true

	case assembly.ClassName:
		return e.Symbols.Lookup(target)

	case assembly.ClassIndirectPair, assembly.ClassIndexed:
		// jp (hl) and the index register forms. the parenthesised spelling
		// is traditional; no memory access happens
		inner, _ := assembly.Inner(target)
		if inner == "hl" || inner == "ix" || inner == "iy" {
			return s.Pair(inner), true
		}
	}

	return 0, false
}

func execJump(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	cc, target := splitBranch(in)

	if cc != "" && !condition(s, cc) {
		return Result{Cycles: cost(in, false)}
	}

	res := Result{
		Cycles: cost(in, true),
		Flow:   FlowJump,
		Taken:  true,
		Target: target,
	}
	res.TargetAddr, res.TargetResolved = e.resolveTarget(s, target)

	return res
}

func execDjnz(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	s.B--
	if s.B == 0 {
		return Result{Cycles: cost(in, false)}
	}

	target := in.Operand(0)
	res := Result{
		Cycles: cost(in, true),
		Flow:   FlowJump,
		Taken:  true,
		Target: target,
	}
	res.TargetAddr, res.TargetResolved = e.resolveTarget(s, target)

	return res
}

// execCall pushes the return address on the machine stack and records a
// call frame. the frame mirrors the stack so that the debugger can show a
// backtrace and detect when a return unwinds past its matching call.
func execCall(e *Engine, s *machine.State, in assembly.Instruction, pos Position) Result {
	cc, target := splitBranch(in)

	if cc != "" && !condition(s, cc) {
		return Result{Cycles: cost(in, false)}
	}

	res := Result{
		Cycles: cost(in, true),
		Flow:   FlowCall,
		Taken:  true,
		Target: target,
	}
	res.TargetAddr, res.TargetResolved = e.resolveTarget(s, target)

	s.Push16(pos.Next)
	s.PushFrame(machine.CallFrame{
		ReturnAddr: pos.Next,
		Routine:    target,
		Firmware:   res.TargetResolved && InFirmware(res.TargetAddr),
	})

	return res
}

func execReturn(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	// reti and retn have no conditional forms; a plain ret might
	if in.Mnemonic == "ret" {
		if cc := in.Operand(0); cc != "" {
			if !condition(s, cc) {
				return Result{Cycles: cost(in, false)}
			}
		}
	}

	addr := s.Pop16()
	s.PopFrame()

	return Result{
		Cycles:         cost(in, true),
		Flow:           FlowReturn,
		Taken:          true,
		TargetAddr:     addr,
		TargetResolved: true,
	}
}

// execRst is a one-byte call to one of the fixed restart addresses, all of
// which sit in the firmware region.
func execRst(e *Engine, s *machine.State, in assembly.Instruction, pos Position) Result {
	target := in.Operand(0)
	addr, ok := e.resolveTarget(s, target)
	if !ok {
		return Result{Cycles: cost(in, false)}
	}

	s.Push16(pos.Next)
	s.PushFrame(machine.CallFrame{
		ReturnAddr: pos.Next,
		Routine:    target,
		Firmware:   true,
	})

	return Result{
		Cycles:         cost(in, true),
		Flow:           FlowCall,
		Taken:          true,
		Target:         target,
		TargetAddr:     addr,
		TargetResolved: true,
	}
}
