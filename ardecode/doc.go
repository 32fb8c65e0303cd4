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

// Package ardecode decomposes the 32-bit command word found in every AR
// instruction into its constituent bitfields. Decoding is a pure function;
// the raw word is always kept alongside the decoded fields so that callers
// needing to compare against a sentinel value (the endif marker, the
// zero-code test) can do so against the untouched word.
package ardecode
