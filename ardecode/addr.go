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

package ardecode

// Size is the data-width selector carried in an Addr's size field.
type Size uint8

const (
	Size8    Size = 0
	Size16   Size = 1
	Size32   Size = 2
	Size32FP Size = 3
)

// Type is the opcode family carried in an Addr's type field. Family 0 is
// the unconditional "normal code" family (dispatched further by Subtype);
// families 1 through 7 are all conditional compares, keyed by the
// comparison operator they select.
type Type uint8

const (
	TypeNormal Type = 0

	TypeEqual              Type = 1
	TypeNotEqual           Type = 2
	TypeLessThanSigned     Type = 3
	TypeGreaterThanSigned  Type = 4
	TypeLessThanUnsigned   Type = 5
	TypeGreaterThanUnsigned Type = 6
	TypeBitwiseAnd         Type = 7
)

// Subtype is the family-specific subtype field. Its meaning depends on
// Type: for TypeNormal it selects the write/pointer/add/master operation;
// for a conditional family it selects how many lines to skip on failure.
type Subtype uint8

const (
	// TypeNormal subtypes.
	SubRAMWrite     Subtype = 0
	SubWritePointer Subtype = 1
	SubAdd          Subtype = 2
	SubMasterCode   Subtype = 3

	// Conditional subtypes.
	SubSkipOneLine    Subtype = 0
	SubSkipTwoLines   Subtype = 1
	SubSkipUntilEndif Subtype = 2
	SubSkipAll        Subtype = 3
)

// cachedRAMBase is the base of the console's cached-RAM address window.
// Guest addresses throughout this package are expressed in that window.
const cachedRAMBase = 0x80000000

// EndifMarker is the literal instruction that terminates a
// "skip-until-endif" region: cmd_addr 0, value 0x40000000.
const EndifMarker uint32 = 0x40000000

// Addr is the decoded form of a 32-bit command word, keeping the raw word
// alongside its fields so that callers can compare against sentinel values
// (zero-code, endif marker) on the untouched word.
type Addr struct {
	Raw     uint32
	GCAddr  uint32
	Size    Size
	Type    Type
	Subtype Subtype
}

// Decode splits a raw command word into its bitfields per the layout:
//
//	bits  0..24  gcaddr  (25 bits)
//	bits 25..26  size    (2 bits)
//	bits 27..29  type    (3 bits)
//	bits 30..31  subtype (2 bits)
func Decode(cmdAddr uint32) Addr {
	return Addr{
		Raw:     cmdAddr,
		GCAddr:  cmdAddr & 0x01FFFFFF,
		Size:    Size((cmdAddr >> 25) & 0x3),
		Type:    Type((cmdAddr >> 27) & 0x7),
		Subtype: Subtype((cmdAddr >> 30) & 0x3),
	}
}

// EffectiveAddress returns the guest address this Addr refers to: the
// 25-bit gcaddr field mapped into the cached-RAM window.
func (a Addr) EffectiveAddress() uint32 {
	return a.GCAddr | cachedRAMBase
}

// IsZeroCode reports whether the raw command word carries no address
// field at all, meaning the opcode and operand both live in the value word.
func (a Addr) IsZeroCode() bool {
	return a.Raw == 0
}

// ZeroCodeOp extracts the zero-code opcode (the top 3 bits of value) for
// an instruction where IsZeroCode is true.
func ZeroCodeOp(value uint32) uint8 {
	return uint8(value >> 29)
}

// SelfModifyingRegion reports whether an effective guest address falls
// inside the AR engine's own code region. The interpreter refuses any
// instruction whose effective address falls there, reads (conditionals)
// included; only the follow-up line of a composite opcode is exempt.
func SelfModifyingRegion(effectiveAddr uint32) bool {
	return effectiveAddr >= 0x80002000 && effectiveAddr < 0x80003000
}

// AREntry is one instruction line of a code: a command/address word paired
// with its operand value. It is the unit both the plain-text parser and the
// Decryptor produce; Decode is applied to the Cmd field lazily, by whatever
// consumes the entry, rather than at construction time.
type AREntry struct {
	Cmd   uint32
	Value uint32
}

// Addr decodes the entry's command word.
func (e AREntry) Addr() Addr {
	return Decode(e.Cmd)
}
