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

import "fmt"

// Save renders codes back into a local Listing: the enabled-names list
// covers every active code regardless of origin, but the ActionReplay body
// only ever carries user-defined codes, since bundled/global codes are
// expected to come from their own global listing on the next load.
func Save(codes []ARCode) MapListing {
	m := MapListing{}

	var enabled []string
	var body []string

	for _, c := range codes {
		if c.Active {
			enabled = append(enabled, "$"+c.Name)
		}
		if !c.UserDefined {
			continue
		}
		body = append(body, "$"+c.Name)
		for _, op := range c.Ops {
			body = append(body, fmt.Sprintf("%08X %08X", op.Cmd, op.Value))
		}
	}

	m[SectionEnabled] = enabled
	m[SectionCodes] = body
	return m
}
