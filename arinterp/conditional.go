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
	"github.com/jetsetilly/arplay/ardecode"
	"github.com/jetsetilly/arplay/report"
)

// conditional implements section 4.7.6: compare the operand at addr's
// effective address, sized per addr.Size, against data masked to that same
// width, using the operator addr.Type selects. On a failed comparison it
// sets *skipCount according to addr.Subtype; on success it leaves
// *skipCount at zero so execution falls through to the next instruction.
func (in *Interpreter) conditional(addr ardecode.Addr, data uint32, codeName string, skipCount *int32) bool {
	e := addr.EffectiveAddress()

	var operand, mask uint32
	switch addr.Size {
	case ardecode.Size8:
		operand = uint32(in.Bus.ReadU8(e))
		mask = 0xFF
	case ardecode.Size16:
		operand = uint32(in.Bus.ReadU16(e))
		mask = 0xFFFF
	case ardecode.Size32, ardecode.Size32FP:
		operand = in.Bus.ReadU32(e)
		mask = 0xFFFFFFFF
	default:
		in.Report.Report(report.KindInvalidField, codeName, "invalid size in conditional")
		return false
	}

	want := data & mask

	var pass bool
	switch addr.Type {
	case ardecode.TypeEqual:
		pass = operand == want
	case ardecode.TypeNotEqual:
		pass = operand != want
	case ardecode.TypeLessThanSigned:
		pass = signExtend(operand, addr.Size) < signExtend(want, addr.Size)
	case ardecode.TypeGreaterThanSigned:
		pass = signExtend(operand, addr.Size) > signExtend(want, addr.Size)
	case ardecode.TypeLessThanUnsigned:
		pass = operand < want
	case ardecode.TypeGreaterThanUnsigned:
		pass = operand > want
	case ardecode.TypeBitwiseAnd:
		pass = operand&want != 0
	default:
		in.Report.Report(report.KindInvalidField, codeName, "invalid conditional type")
		return false
	}

	if pass {
		return true
	}

	switch addr.Subtype {
	case ardecode.SubSkipOneLine:
		*skipCount = 1
	case ardecode.SubSkipTwoLines:
		*skipCount = 2
	case ardecode.SubSkipUntilEndif:
		*skipCount = skipUntilEndif
	case ardecode.SubSkipAll:
		*skipCount = skipAll
	default:
		in.Report.Report(report.KindInvalidField, codeName, "invalid conditional subtype")
		return false
	}
	return true
}

// signExtend widens a masked-width unsigned value to a signed 32-bit value
// for signed comparisons.
func signExtend(v uint32, size ardecode.Size) int32 {
	switch size {
	case ardecode.Size8:
		return int32(int8(v))
	case ardecode.Size16:
		return int32(int16(v))
	default:
		return int32(v)
	}
}
