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

package report

// Kind classifies the error conditions the interpreter and parser can
// raise, per the error kinds enumerated for this system.
type Kind string

const (
	KindParseError          Kind = "parse-error"
	KindInvalidField        Kind = "invalid-field"
	KindUnsupportedOpcode   Kind = "unsupported-opcode"
	KindUnknownZeroCode     Kind = "unknown-zero-code"
	KindSelfModification    Kind = "self-modification"
)

// Reporter receives a user-visible error signal. code is the name of the
// ARCode being run, or empty for a parse-time error that isn't yet
// attached to any code. detail is a human-readable message.
type Reporter interface {
	Report(kind Kind, code, detail string)
}

// Discard is a Reporter that does nothing, useful in tests that don't care
// about the error channel.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Kind, string, string) {}
