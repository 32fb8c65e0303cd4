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

// Package report carries the interpreter's user-visible error signals -
// malformed input, unsupported opcodes, self-modification attempts - out to
// whatever is hosting the emulator. The interpreter never prints or panics
// directly; it calls a Reporter, so a GUI can show a dialog and a headless
// runner can just log. The parser does not use a Reporter: it returns its
// errors to the caller.
package report
