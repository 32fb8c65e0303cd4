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

package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/jetsetilly/arplay/arcode"
)

// loadListing reads an ini-style file: a "[SectionName]" line opens a
// section, and every following line up to the next header belongs to it.
// It returns an arcode.MapListing, so the two sections the parser
// recognises (ActionReplay, ActionReplay_Enabled) can live in one file.
func loadListing(filename string) (arcode.MapListing, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	listing := make(arcode.MapListing)
	section := ""

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}
		if section == "" {
			continue
		}
		listing[section] = append(listing[section], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return listing, nil
}
