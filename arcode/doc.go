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

// Package arcode defines the AR code data model (AREntry, ARCode) and the
// parser that turns a structured text listing into a slice of ARCode,
// including decryption of encrypted listings via package ardecrypt.
//
// Two named sections are recognised: ActionReplay (code bodies) and
// ActionReplay_Enabled (the enabled-name list). Both are read through the
// Listing interface so that any backing store - an ini-style file, a test
// fixture, a network fetch - can supply them.
package arcode
