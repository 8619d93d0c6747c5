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

type handler func(e *Engine, s *machine.State, in assembly.Instruction, pos Position) Result

// dispatch maps every executable mnemonic to its handler. mnemonics absent
// from the table are treated as no-ops by Execute().
var dispatch = map[string]handler{
	// loads and exchanges
	"ld":   execLoad,
	"ex":   execExchange,
	"exx":  execExchangeAll,
	"push": execPush,
	"pop":  execPop,

	// arithmetic
	"add": execAdd,
	"adc": execAdc,
	"sub": execSub,
	"sbc": execSbc,
	"cp":  execCompare,
	"inc": execInc,
	"dec": execDec,
	"neg": execNeg,
	"daa": execDaa,

	// logic
	"and": execLogic,
	"or":  execLogic,
	"xor": execLogic,

	// rotates, shifts and bit manipulation
	"rlca": execAccumulatorRotate,
	"rrca": execAccumulatorRotate,
	"rla":  execAccumulatorRotate,
	"rra":  execAccumulatorRotate,
	"rlc":  execRotateShift,
	"rrc":  execRotateShift,
	"rl":   execRotateShift,
	"rr":   execRotateShift,
	"sla":  execRotateShift,
	"sra":  execRotateShift,
	"srl":  execRotateShift,
	"sll":  execRotateShift,
	"bit":  execBit,
	"set":  execSetRes,
	"res":  execSetRes,

	// block transfer and search
	"ldi":  execBlockTransfer,
	"ldd":  execBlockTransfer,
	"ldir": execBlockTransfer,
	"lddr": execBlockTransfer,
	"cpi":  execBlockSearch,
	"cpd":  execBlockSearch,
	"cpir": execBlockSearch,
	"cpdr": execBlockSearch,
	"ini":  execBlockIn,
	"ind":  execBlockIn,
	"inir": execBlockIn,
	"indr": execBlockIn,
	"outi": execBlockOut,
	"outd": execBlockOut,
	"otir": execBlockOut,
	"otdr": execBlockOut,

	// control flow
	"jp":   execJump,
	"jr":   execJump,
	"djnz": execDjnz,
	"call": execCall,
	"ret":  execReturn,
	"reti": execReturn,
	"retn": execReturn,
	"rst":  execRst,

	// input/output
	"in":  execIn,
	"out": execOut,

	// processor control
	"nop":  execTimedNop,
	"halt": execHalt,
	"di":   execInterruptFlag,
	"ei":   execInterruptFlag,
	"im":   execTimedNop,
	"scf":  execScf,
	"ccf":  execCcf,
	"cpl":  execCpl,

	// digit rotates are decoded and timed but their effect is not modelled
	"rld": execTimedNop,
	"rrd": execTimedNop,

	// raw data bytes from the decoder's fallback form
	"db": execTimedNop,
}

func execLoad(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	dst := in.Operand(0)
	src := in.Operand(1)
	if dst == "" || src == "" {
		return res
	}

	// destination register pair selects the 16-bit load path. everything
	// else moves a single byte
	if assembly.Classify(dst) == assembly.ClassPair {
		if v, ok := e.read16(s, src); ok {
			s.SetPair(dst, v)
		}
		return res
	}

	// a 16-bit source with a memory destination is the (nn),rr store form
	if assembly.Classify(src) == assembly.ClassPair && assembly.Classify(dst) == assembly.ClassIndirect {
		e.write16(s, dst, s.Pair(src))
		return res
	}

	if v, ok := e.read8(s, src); ok {
		e.write8(s, dst, v)
	}
	return res
}

func execExchange(e *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}

	a := in.Operand(0)
	b := in.Operand(1)

	switch {
	case a == "af" && b == "af'":
		s.ExchangeAF()

	case a == "de" && b == "hl":
		de := s.Pair("de")
		s.SetPair("de", s.Pair("hl"))
		s.SetPair("hl", de)

	case a == "(sp)" && assembly.Classify(b) == assembly.ClassPair:
		top := s.Mem.Read16(s.SP)
		s.Mem.Write16(s.SP, s.Pair(b))
		s.SetPair(b, top)
	}

	return res
}

func execExchangeAll(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	s.ExchangeAll()
	return Result{Cycles: cost(in, false)}
}

func execPush(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}
	if p := in.Operand(0); assembly.Classify(p) == assembly.ClassPair {
		s.Push16(s.Pair(p))
	}
	return res
}

func execPop(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	res := Result{Cycles: cost(in, false)}
	if p := in.Operand(0); assembly.Classify(p) == assembly.ClassPair {
		s.SetPair(p, s.Pop16())
	}
	return res
}

func execTimedNop(_ *Engine, _ *machine.State, in assembly.Instruction, _ Position) Result {
	return Result{Cycles: cost(in, false)}
}

func execHalt(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	s.Halted = true
	return Result{Cycles: cost(in, false), Flow: FlowHalt}
}

func execInterruptFlag(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	s.IFF = in.Mnemonic == "ei"
	return Result{Cycles: cost(in, false)}
}

func execScf(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	s.F.Carry = true
	s.F.HalfCarry = false
	s.F.Subtract = false
	return Result{Cycles: cost(in, false)}
}

func execCcf(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	s.F.HalfCarry = s.F.Carry
	s.F.Carry = !s.F.Carry
	s.F.Subtract = false
	return Result{Cycles: cost(in, false)}
}

func execCpl(_ *Engine, s *machine.State, in assembly.Instruction, _ Position) Result {
	s.A = ^s.A
	s.F.HalfCarry = true
	s.F.Subtract = true
	return Result{Cycles: cost(in, false)}
}
