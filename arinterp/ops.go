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
	"math"

	"github.com/jetsetilly/arplay/ardecode"
	"github.com/jetsetilly/arplay/report"
)

func (in *Interpreter) normalCode(addr ardecode.Addr, data uint32, codeName string) bool {
	switch addr.Subtype {
	case ardecode.SubRAMWrite:
		return in.ramWriteAndFill(addr, data, codeName)
	case ardecode.SubWritePointer:
		return in.writeToPointer(addr, data, codeName)
	case ardecode.SubAdd:
		return in.addInPlace(addr, data, codeName)
	case ardecode.SubMasterCode:
		in.Report.Report(report.KindUnsupportedOpcode, codeName, "master codes are not supported")
		return false
	}
	in.Report.Report(report.KindInvalidField, codeName, "invalid subtype")
	return false
}

// ramWriteAndFill implements section 4.7.1.
func (in *Interpreter) ramWriteAndFill(addr ardecode.Addr, data uint32, codeName string) bool {
	e := addr.EffectiveAddress()
	switch addr.Size {
	case ardecode.Size8:
		repeat := data >> 8
		for i := uint32(0); i <= repeat; i++ {
			in.Bus.WriteU8(e+i, uint8(data))
		}
	case ardecode.Size16:
		repeat := data >> 16
		for i := uint32(0); i <= repeat; i++ {
			in.Bus.WriteU16(e+2*i, uint16(data))
		}
	case ardecode.Size32, ardecode.Size32FP:
		in.Bus.WriteU32(e, data)
	default:
		in.Report.Report(report.KindInvalidField, codeName, "invalid size in ram write and fill")
		return false
	}
	return true
}

// writeToPointer implements section 4.7.2.
func (in *Interpreter) writeToPointer(addr ardecode.Addr, data uint32, codeName string) bool {
	e := addr.EffectiveAddress()
	ptr := in.Bus.ReadU32(e)
	switch addr.Size {
	case ardecode.Size8:
		offset := data >> 8
		in.Bus.WriteU8(ptr+offset, uint8(data))
	case ardecode.Size16:
		offset := (data >> 16) << 1
		in.Bus.WriteU16(ptr+offset, uint16(data))
	case ardecode.Size32, ardecode.Size32FP:
		in.Bus.WriteU32(ptr, data)
	default:
		in.Report.Report(report.KindInvalidField, codeName, "invalid size in write to pointer")
		return false
	}
	return true
}

// addInPlace implements section 4.7.3.
func (in *Interpreter) addInPlace(addr ardecode.Addr, data uint32, codeName string) bool {
	e := addr.EffectiveAddress()
	switch addr.Size {
	case ardecode.Size8:
		in.Bus.WriteU8(e, in.Bus.ReadU8(e)+uint8(data))
	case ardecode.Size16:
		in.Bus.WriteU16(e, in.Bus.ReadU16(e)+uint16(data))
	case ardecode.Size32:
		in.Bus.WriteU32(e, in.Bus.ReadU32(e)+data)
	case ardecode.Size32FP:
		read := in.Bus.ReadU32(e)
		sum := math.Float32frombits(read) + float32(data)
		in.Bus.WriteU32(e, math.Float32bits(sum))
	default:
		in.Report.Report(report.KindInvalidField, codeName, "invalid size in add")
		return false
	}
	return true
}

// fillAndSlide implements section 4.7.4. valLast is the value word of the
// zero-code that deferred to this instruction; addr/data are this
// instruction's own fields, reinterpreted as the slide parameters.
func (in *Interpreter) fillAndSlide(valLast uint32, addr ardecode.Addr, data uint32) bool {
	decodedLast := ardecode.Decode(valLast)
	e := decodedLast.EffectiveAddress()
	size := decodedLast.Size

	addrIncr := int16(uint16(data))
	valIncr := int8(uint8(data >> 24))
	writeNum := uint8((data >> 16) & 0xFF)

	val := addr.Raw
	cursor := e

	for i := uint8(0); i < writeNum; i++ {
		switch size {
		case ardecode.Size8:
			in.Bus.WriteU8(cursor, uint8(val))
			cursor = uint32(int64(cursor) + int64(addrIncr))
		case ardecode.Size16:
			in.Bus.WriteU16(cursor, uint16(val))
			cursor = uint32(int64(cursor) + int64(addrIncr)*2)
		case ardecode.Size32:
			in.Bus.WriteU32(cursor, val)
			cursor = uint32(int64(cursor) + int64(addrIncr)*4)
		default:
			return false
		}
		val = uint32(int64(val) + int64(valIncr))
	}
	return true
}

// memoryCopy implements section 4.7.5.
func (in *Interpreter) memoryCopy(valLast uint32, addr ardecode.Addr, data uint32) bool {
	dest := valLast &^ 0x06000000
	src := addr.EffectiveAddress()
	// the reference implementation declares this count as a u8, so the
	// mask narrows to the bottom byte regardless of the 0x7FFF literal
	// used to compute it.
	numBytes := uint32(uint8(data & 0x7FFF))

	if data&0xFF0000 != 0 {
		return false
	}

	if (data >> 24) != 0 {
		dest = in.Bus.ReadU32(dest)
		src = in.Bus.ReadU32(src)
	}

	for i := uint32(0); i < numBytes; i++ {
		in.Bus.WriteU8(dest+i, in.Bus.ReadU8(src+i))
	}
	return true
}
