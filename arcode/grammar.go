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

package arcode

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// instrLine is a plain instruction line: two whitespace-separated 8-digit
// hex tokens, cmd_addr then value.
type instrLine struct {
	Cmd   string `@Hex8`
	Value string `@Hex8`
}

// encLine is an encrypted instruction line: three dash-separated hex groups
// of width 4, 4 and 5, buffered by the caller and concatenated before being
// handed to the Decryptor.
type encLine struct {
	G1 string `@Hex4 "-"`
	G2 string `@Hex4 "-"`
	G3 string `@Hex5`
}

// bodyLine is either form of a non-name line in the ActionReplay section.
// The two alternatives start with distinct token types (Hex8 vs Hex4) so no
// lookahead is needed to disambiguate.
type bodyLine struct {
	Instr *instrLine `  @@`
	Enc   *encLine   `| @@`
}

// hexLexer tokenises a single instruction line. Hex8 is tried before Hex5
// and Hex4 so that an 8-digit run is never mistaken for a shorter token:
// a fixed-width pattern also matches the first digits of any longer run of
// hex digits, so the longest pattern has to be tried first.
var hexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Hex8", Pattern: `[0-9A-Fa-f]{8}`},
	{Name: "Hex5", Pattern: `[0-9A-Fa-f]{5}`},
	{Name: "Hex4", Pattern: `[0-9A-Fa-f]{4}`},
	{Name: "Dash", Pattern: `-`},
})

var bodyLineParser = participle.MustBuild[bodyLine](
	participle.Lexer(hexLexer),
	participle.Elide("Whitespace"),
)
