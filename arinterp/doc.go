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

// Package arinterp walks one ARCode's instruction list against a guest
// memory bus: skip-counter driven conditionals, the two deferred composite
// opcodes (fill-and-slide, memory-copy), and the three normal-code write
// forms (ram write and fill, write to pointer, add in place).
//
// Run is stateless between calls - all per-code state (skip_count, the
// pending composite discriminant, val_last) lives on the stack of a single
// Run invocation, matching the fact that a code run is a single
// straight-line walk with no suspension.
package arinterp
