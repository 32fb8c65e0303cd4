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

import "github.com/jetsetilly/arplay/ardecode"

// ARCode is a named, ordered sequence of AREntry instructions, together
// with the flags the Code Store and Executor need: whether it should run
// (Active) and whether it came from the user's local listing rather than a
// bundled/global one (UserDefined - only user-defined codes are persisted
// on Save).
type ARCode struct {
	Name        string
	Active      bool
	UserDefined bool
	Ops         []ardecode.AREntry
}

// Listing is a structured text source addressable by section name. A file
// on disk, an embedded default listing and a test fixture are all Listings.
type Listing interface {
	// Section returns the raw, unprocessed lines of the named section. An
	// absent section returns a nil slice and no error.
	Section(name string) ([]string, error)
}

// Section names recognised by the parser.
const (
	SectionCodes   = "ActionReplay"
	SectionEnabled = "ActionReplay_Enabled"
)

// MapListing is a Listing backed by an in-memory map, the natural fixture
// for tests and for a listing assembled programmatically rather than read
// from an ini-style file.
type MapListing map[string][]string

// Section implements Listing.
func (m MapListing) Section(name string) ([]string, error) {
	return m[name], nil
}
