// This file is part of arplay.
//
// arplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// arplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with arplay.  If not, see <https://www.gnu.org/licenses/>.

package arinterp

import (
	"github.com/jetsetilly/arplay/arcode"
	"github.com/jetsetilly/arplay/ardecode"
	"github.com/jetsetilly/arplay/guestmem"
	"github.com/jetsetilly/arplay/report"
)

// skip_count sentinels. Positive values count down remaining skipped
// instructions; these two negative values are distinguished states.
const (
	skipAll        int32 = -3
	skipUntilEndif int32 = -2
)

// endifValue is the value half of the endif marker instruction
// (cmd_addr=0, value=0x40000000).
const endifValue uint32 = 0x40000000

type pending uint8

const (
	pendingNone pending = iota
	pendingFillAndSlide
	pendingMemoryCopy
)

// Interpreter runs ARCodes against a guest memory bus.
type Interpreter struct {
	Bus    guestmem.Bus
	Report report.Reporter
}

// New builds an Interpreter. report may be report.Discard if the caller
// doesn't care about the error channel.
func New(bus guestmem.Bus, rep report.Reporter) *Interpreter {
	if rep == nil {
		rep = report.Discard
	}
	return &Interpreter{Bus: bus, Report: rep}
}

// Run walks code.Ops in order and returns false the moment any instruction
// fails - an invalid field, an unsupported opcode, or a self-modification
// attempt. A false return means the caller should remove code from the
// active set.
func (in *Interpreter) Run(code *arcode.ARCode) bool {
	var (
		skipCount int32
		pend      pending
		valLast   uint32
	)

	for i := 0; i < len(code.Ops); i++ {
		entry := code.Ops[i]
		addr := entry.Addr()
		data := entry.Value

		// Skip handling runs first, strictly before composite consumption:
		// a pending composite's follow-up instruction is still subject to
		// being skipped.
		if skipCount > 0 {
			skipCount--
			continue
		}
		if skipCount == skipAll {
			return true
		}
		if skipCount == skipUntilEndif {
			if entry.Cmd == 0 && data == endifValue {
				skipCount = 0
			}
			continue
		}

		if pend == pendingFillAndSlide {
			pend = pendingNone
			if !in.fillAndSlide(valLast, addr, data) {
				in.Report.Report(report.KindInvalidField, code.Name, "fill and slide")
				return false
			}
			continue
		}
		if pend == pendingMemoryCopy {
			pend = pendingNone
			if !in.memoryCopy(valLast, addr, data) {
				in.Report.Report(report.KindInvalidField, code.Name, "memory copy")
				return false
			}
			continue
		}

		if ardecode.SelfModifyingRegion(addr.EffectiveAddress()) {
			in.Report.Report(report.KindSelfModification, code.Name, "instruction targets the interpreter's own code region")
			return false
		}

		if addr.IsZeroCode() {
			zcode := ardecode.ZeroCodeOp(data)
			switch zcode {
			case 0x0: // END
				return true
			case 0x2: // NORM - documented divergence from hardware: no-op
			case 0x3: // ROW - not supported
				in.Report.Report(report.KindUnsupportedOpcode, code.Name, "zero-code ROW is not supported")
				return false
			case 0x4:
				if ((data >> 25) & 0x3) == 0x3 {
					pend = pendingMemoryCopy
				} else {
					pend = pendingFillAndSlide
				}
				valLast = data
			default:
				in.Report.Report(report.KindUnknownZeroCode, code.Name, "unrecognised zero-code")
				return false
			}
			continue
		}

		if addr.Type == ardecode.TypeNormal {
			if !in.normalCode(addr, data, code.Name) {
				return false
			}
			continue
		}

		if !in.conditional(addr, data, code.Name, &skipCount) {
			return false
		}
	}

	return true
}
