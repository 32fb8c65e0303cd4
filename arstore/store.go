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

package arstore

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/arplay/arcode"
	"github.com/jetsetilly/arplay/arinterp"
	"github.com/jetsetilly/arplay/guestmem"
	"github.com/jetsetilly/arplay/prefs"
	"github.com/jetsetilly/arplay/report"
)

// Store holds the active-codes list and the Interpreter that runs against
// it. All mutating operations and RunAllActive are no-ops whenever
// CheatsEnabled reports false, per spec.md §4.5's global feature gate.
type Store struct {
	mu     sync.Mutex
	active []arcode.ARCode

	// CheatsEnabled gates every mutating call and RunAllActive. A nil
	// value means the gate is always open - useful for tests that don't
	// care about the preference.
	CheatsEnabled *prefs.Bool

	// OnTick is called at the top of RunAllActive, before the gate check.
	// It is the extension point for the title-signature hot-reload glue
	// spec.md §4.6 step 2 describes; unset by default.
	OnTick func()

	// Report receives every error the Interpreter raises, regardless of
	// the self-log's gating.
	Report report.Reporter

	interp *arinterp.Interpreter

	selfLogging atomic.Bool
	suppressed  atomic.Bool
	logMu       sync.Mutex
	log         []string
}

// New builds a Store driving an Interpreter over bus. cheatsEnabled may be
// nil, in which case the gate is always open.
func New(bus guestmem.Bus, cheatsEnabled *prefs.Bool) *Store {
	s := &Store{
		CheatsEnabled: cheatsEnabled,
		Report:        report.Discard,
	}
	s.interp = arinterp.New(bus, &storeReporter{store: s})
	return s
}

// storeReporter fans every report out to the self-log (subject to gating)
// and to the Store's external Reporter (unconditionally).
type storeReporter struct {
	store *Store
}

func (r *storeReporter) Report(kind report.Kind, code, detail string) {
	r.store.recordSelfLog(kind, code, detail)
	rep := r.store.Report
	if rep == nil {
		rep = report.Discard
	}
	rep.Report(kind, code, detail)
}

func (s *Store) recordSelfLog(kind report.Kind, code, detail string) {
	if !s.selfLogging.Load() || s.suppressed.Load() {
		return
	}
	s.logMu.Lock()
	defer s.logMu.Unlock()
	if code == "" {
		s.log = append(s.log, string(kind)+": "+detail)
		return
	}
	s.log = append(s.log, code+": "+string(kind)+": "+detail)
}

func (s *Store) gateOpen() bool {
	if s.CheatsEnabled == nil {
		return true
	}
	enabled, _ := s.CheatsEnabled.Get().(bool)
	return enabled
}

// ApplyCodes replaces the active set with the codes from newList whose
// Active flag is set, preserving their relative order. It also clears the
// per-tick self-log suppression latch.
func (s *Store) ApplyCodes(newList []arcode.ARCode) {
	if !s.gateOpen() {
		return
	}

	filtered := make([]arcode.ARCode, 0, len(newList))
	for _, c := range newList {
		if c.Active {
			filtered = append(filtered, c)
		}
	}

	s.mu.Lock()
	s.active = filtered
	s.mu.Unlock()

	s.suppressed.Store(false)
}

// AddCode appends code to the active set if it is Active.
func (s *Store) AddCode(code arcode.ARCode) {
	if !s.gateOpen() || !code.Active {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = append(s.active, code)
}

// RunAllActive is the per-tick entry point: it invokes the Interpreter for
// every active code under the store lock, drops any code the Interpreter
// fails on (preserving the relative order of survivors), and then
// suppresses further self-log entries until the next ApplyCodes.
func (s *Store) RunAllActive() {
	if s.OnTick != nil {
		s.OnTick()
	}
	if !s.gateOpen() {
		return
	}

	s.mu.Lock()
	survivors := make([]arcode.ARCode, 0, len(s.active))
	for i := range s.active {
		if s.interp.Run(&s.active[i]) {
			survivors = append(survivors, s.active[i])
		}
	}
	s.active = survivors
	s.mu.Unlock()

	s.suppressed.Store(true)
}

// Snapshot returns a locked, ordered copy of the active list.
func (s *Store) Snapshot() []arcode.ARCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]arcode.ARCode, len(s.active))
	copy(cp, s.active)
	return cp
}

// Len returns the number of currently active codes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// EnableSelfLogging turns the self-log on or off.
func (s *Store) EnableSelfLogging(enabled bool) {
	s.selfLogging.Store(enabled)
}

// GetSelfLog returns the accumulated self-log as a single newline-joined
// string.
func (s *Store) GetSelfLog() string {
	s.logMu.Lock()
	defer s.logMu.Unlock()
	return strings.Join(s.log, "\n")
}

// ClearSelfLog empties the self-log buffer.
func (s *Store) ClearSelfLog() {
	s.logMu.Lock()
	defer s.logMu.Unlock()
	s.log = nil
}
