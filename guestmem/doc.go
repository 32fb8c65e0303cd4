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

// Package guestmem defines the Bus interface through which the interpreter
// reads and writes guest memory, and supplies Flat, a reference
// implementation backed by a plain byte slice. Bus abstracts away the
// big-endian byte order of the guest: callers always think in terms of
// native-endian uint8/16/32 values.
package guestmem
