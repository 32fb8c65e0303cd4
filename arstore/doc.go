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

// Package arstore holds the active-codes list and drives the per-tick
// Interpreter pass over it. A Store owns a mutex exactly as the original's
// single process-wide lock did, so that a mutating call (ApplyCodes,
// AddCode) can never race RunAllActive.
//
// A Store also owns a small self-log, independent of the general logger,
// gated by EnableSelfLogging and a per-tick latch that suppresses further
// entries once RunAllActive has run until the next ApplyCodes - this
// mirrors the internal log / "use internal log" flag pair the codes engine
// kept to avoid flooding its own trace buffer every frame.
package arstore
