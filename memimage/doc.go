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

// Package memimage loads a guest RAM snapshot that a guestmem.Bus is built
// from. Sources can be a local file or an HTTP(S) URL; a Loader verifies
// the loaded bytes against an expected SHA-1 hash when one is given.
//
// The simplest instance of the Loader type:
//
//	ml := memimage.Loader{
//		Filename: "snapshots/save.ram",
//	}
//
// Calling Load() populates ml.Data and ml.Hash; a second call is a no-op.
package memimage
