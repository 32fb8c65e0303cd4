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

package guestmem

// mainRAMBase and mainRAMTop bound the 24 MiB main-RAM window that Check
// guards. Addresses outside this window are still readable/writable
// through a Bus (the bus never faults) but pointer-chasing callers are
// expected to guard with Check first.
const (
	mainRAMBase uint32 = 0x80000000
	mainRAMTop  uint32 = 0x81800000
)

// Bus is the host-memory interface the interpreter reads and writes
// through. Implementations never fault on an out-of-range address; callers
// that dereference a pointer read from guest memory must guard with Check.
type Bus interface {
	ReadU8(addr uint32) uint8
	ReadU16(addr uint32) uint16
	ReadU32(addr uint32) uint32

	WriteU8(addr uint32, v uint8)
	WriteU16(addr uint32, v uint16)
	WriteU32(addr uint32, v uint32)

	// ReadInstruction reads a raw 32-bit command word, identical to
	// ReadU32 but named separately because callers use it to fetch
	// instruction data rather than program data.
	ReadInstruction(addr uint32) uint32
}

// Check reports whether addr falls inside the 24 MiB main-RAM window
// [0x80000000, 0x81800000).
func Check(addr uint32) bool {
	return addr >= mainRAMBase && addr < mainRAMTop
}
