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

// Package test contains helper functions to remove common boilerplate from
// the rest of the module's test files.
//
// ExpectedFailure and ExpectedSuccess test for failure and success under
// generic conditions - see their documentation for the types they support.
// nil is treated as success, which matches how errors are normally used.
//
// Equate compares like-typed variables for equality, with a little leeway
// for comparing literal int constants against sized integer types.
package test
