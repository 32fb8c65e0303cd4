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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jetsetilly/arplay/curated"
)

// DefaultPrefsFile is the conventional name of the prefs file. NewDisk does
// not apply it; callers pass it as part of the path they give NewDisk.
const DefaultPrefsFile = "prefs"

// NoPrefsFile is the curated error pattern returned by Load(true) when the
// backing file does not exist. Callers that are happy to run with default
// values should check for it with curated.Is and ignore it.
const NoPrefsFile = "prefs: no prefs file"

// KeySep separates a key from its value on every line of a prefs file.
const KeySep = " :: "

// WarningBoilerPlate is written as the first line of every saved prefs
// file, and checked for on Load so that a file from somewhere else isn't
// mistaken for one.
const WarningBoilerPlate = "# this file is automatically generated - do not edit by hand"

// Disk associates named pref values with a single file on disk, preserving
// registration order on Save so that the file stays readable across
// sessions.
type Disk struct {
	mu      sync.Mutex
	path    string
	order   []string
	entries map[string]pref
}

// NewDisk builds a Disk bound to path. No file I/O happens until Load or
// Save is called.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add registers p under key. Registering the same key twice is an error.
func (d *Disk) Add(key string, p pref) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.entries[key]; ok {
		return curated.Errorf("prefs: %v", fmt.Sprintf("duplicate preference key %q", key))
	}
	d.entries[key] = p
	d.order = append(d.order, key)
	return nil
}

// Load reads "key :: value" lines from the backing file and applies them
// to the registered entries. Unrecognised and defunct keys are skipped
// silently. If quiet is true a missing file is not an error (other than
// the sentinel NoPrefsFile, for callers that want to distinguish it from a
// freshly initialised set of preferences).
func (d *Disk) Load(quiet bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			if quiet {
				return curated.Errorf(NoPrefsFile)
			}
			return curated.Errorf("prefs: %v", err)
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boiler plate warning or empty
	if scanner.Scan() {
		if txt := scanner.Text(); txt != "" && txt != WarningBoilerPlate {
			return curated.Errorf("prefs: %v", fmt.Errorf("not a valid prefs file (%s)", d.path))
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		kv := strings.SplitN(line, KeySep, 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		if isDefunct(key) {
			continue
		}

		p, ok := d.entries[key]
		if !ok {
			continue
		}
		if err := p.Set(value); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return scanner.Err()
}

// Save writes every registered entry to the backing file, in registration
// order. Keys already present in the file but not registered with this
// Disk instance are preserved, appended after the registered entries in
// their original order - this lets two Disk instances, each registering a
// different subset of keys, share one file without clobbering each other.
func (d *Disk) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var leftoverKeys []string
	leftover := make(map[string]string)

	if f, err := os.Open(d.path); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || line == WarningBoilerPlate {
				continue
			}
			kv := strings.SplitN(line, KeySep, 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			if _, ok := d.entries[key]; ok {
				continue
			}
			if _, ok := leftover[key]; !ok {
				leftoverKeys = append(leftoverKeys, key)
			}
			leftover[key] = strings.TrimSpace(kv[1])
		}
		f.Close()
	}

	f, err := os.Create(d.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "%s\n", WarningBoilerPlate); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	for _, key := range d.order {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", key, KeySep, d.entries[key].String()); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	for _, key := range leftoverKeys {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", key, KeySep, leftover[key]); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return w.Flush()
}

// String returns a human-readable dump of every registered entry.
func (d *Disk) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := strings.Builder{}
	for _, key := range d.order {
		fmt.Fprintf(&s, "%s: %s\n", key, d.entries[key].String())
	}
	return s.String()
}
