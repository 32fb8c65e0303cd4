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

package memimage

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/jetsetilly/arplay/curated"
)

// Loader specifies a guest RAM image to load, either from a local file or
// from an HTTP(S) URL.
type Loader struct {
	// Filename of the image to load. May be a bare path or a "http://" /
	// "https://" URL.
	Filename string

	// Expected SHA-1 hash of the loaded data, as a lowercase hex string.
	// Empty string means the hash is unknown and is not validated. After a
	// successful Load the field holds the hash of the loaded data.
	Hash string

	// Data holds the loaded bytes once Load has succeeded.
	Data []byte
}

// NewLoader is the preferred way of building a Loader.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// HasLoaded reports whether Load has already populated Data.
func (ml Loader) HasLoaded() bool {
	return len(ml.Data) > 0
}

// Load reads the image data from Filename, supporting the "file" and
// "http"/"https" schemes, and verifies it against Hash if one was given.
func (ml *Loader) Load() error {
	if ml.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ml.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ml.Filename)
		if err != nil {
			return curated.Errorf("memimage: %v", err)
		}
		defer resp.Body.Close()

		ml.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("memimage: %v", err)
		}

	case "file", "":
		f, err := os.Open(ml.Filename)
		if err != nil {
			return curated.Errorf("memimage: %v", err)
		}
		defer f.Close()

		ml.Data, err = io.ReadAll(f)
		if err != nil {
			return curated.Errorf("memimage: %v", err)
		}

	default:
		return curated.Errorf("memimage: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ml.Data))
	if ml.Hash != "" && ml.Hash != hash {
		return curated.Errorf("memimage: %v", "unexpected hash value")
	}
	ml.Hash = hash

	return nil
}
