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

// Package ardecrypt turns the buffered hex blocks of an encrypted code
// listing into decoded AREntry pairs. The buffering and pairing discipline -
// two blocks in, one entry out - is the in-scope part of this package; the
// bit transform applied to each block is held behind the Cipher interface
// so a production-accurate cipher can be substituted without touching the
// parser that feeds this package.
package ardecrypt
