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

package arstore_test

import (
	"testing"

	"github.com/jetsetilly/arplay/arcode"
	"github.com/jetsetilly/arplay/ardecode"
	"github.com/jetsetilly/arplay/arstore"
	"github.com/jetsetilly/arplay/guestmem"
	"github.com/jetsetilly/arplay/prefs"
)

func cmd(gcaddr uint32, size ardecode.Size, typ ardecode.Type, subtype ardecode.Subtype) uint32 {
	return (gcaddr & 0x01FFFFFF) | uint32(size)<<25 | uint32(typ)<<27 | uint32(subtype)<<30
}

func goodCode(name string) arcode.ARCode {
	c := cmd(0x00001000, ardecode.Size8, ardecode.TypeNormal, ardecode.SubRAMWrite)
	return arcode.ARCode{Name: name, Active: true, Ops: []ardecode.AREntry{{Cmd: c, Value: 0x000000FF}}}
}

func failingCode(name string) arcode.ARCode {
	// targets the self-modification guard window, always fails
	c := cmd(0x00002500, ardecode.Size8, ardecode.TypeNormal, ardecode.SubRAMWrite)
	return arcode.ARCode{Name: name, Active: true, Ops: []ardecode.AREntry{{Cmd: c, Value: 0xFF}}}
}

func TestApplyCodesFiltersInactive(t *testing.T) {
	bus := guestmem.NewFlat(0x80000000, 0x10000)
	store := arstore.New(bus, nil)

	active := goodCode("A")
	inactive := goodCode("B")
	inactive.Active = false

	store.ApplyCodes([]arcode.ARCode{active, inactive})
	if got := store.Len(); got != 1 {
		t.Fatalf("got %d active codes, want 1", got)
	}
	if store.Snapshot()[0].Name != "A" {
		t.Fatalf("expected the active code to survive filtering")
	}
}

func TestRunAllActiveRemovesFailingCodes(t *testing.T) {
	bus := guestmem.NewFlat(0x80000000, 0x10000)
	store := arstore.New(bus, nil)

	store.ApplyCodes([]arcode.ARCode{goodCode("survivor"), failingCode("doomed")})
	store.RunAllActive()

	snap := store.Snapshot()
	if len(snap) != 1 || snap[0].Name != "survivor" {
		t.Fatalf("expected only the surviving code, got %v", snap)
	}
}

func TestCheatsDisabledGateIsNoOp(t *testing.T) {
	bus := guestmem.NewFlat(0x80000000, 0x10000)
	gate := &prefs.Bool{}
	if err := gate.Set(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store := arstore.New(bus, gate)

	store.ApplyCodes([]arcode.ARCode{goodCode("A")})
	if got := store.Len(); got != 0 {
		t.Fatalf("ApplyCodes should be a no-op while cheats are disabled, got %d codes", got)
	}

	store.AddCode(goodCode("B"))
	if got := store.Len(); got != 0 {
		t.Fatalf("AddCode should be a no-op while cheats are disabled, got %d codes", got)
	}
}

func TestSelfLogSuppressedAfterTick(t *testing.T) {
	bus := guestmem.NewFlat(0x80000000, 0x10000)
	store := arstore.New(bus, nil)
	store.EnableSelfLogging(true)

	store.ApplyCodes([]arcode.ARCode{failingCode("doomed")})
	store.RunAllActive()
	firstLog := store.GetSelfLog()
	if firstLog == "" {
		t.Fatalf("expected the self-log to record the failing code's report")
	}

	// AddCode does not clear the latch, so a failure on the next tick is
	// not recorded.
	store.AddCode(failingCode("doomed-later"))
	store.RunAllActive()
	if log := store.GetSelfLog(); log != firstLog {
		t.Fatalf("expected the self-log to be suppressed after a tick, got %q", log)
	}

	store.ClearSelfLog()
	store.ApplyCodes([]arcode.ARCode{failingCode("doomed-again")})
	store.RunAllActive()
	if log := store.GetSelfLog(); log == "" {
		t.Fatalf("expected a fresh ApplyCodes to clear the suppression latch")
	}
}

func TestAddCodeAppendsOnlyActive(t *testing.T) {
	bus := guestmem.NewFlat(0x80000000, 0x10000)
	store := arstore.New(bus, nil)

	inactive := goodCode("inactive")
	inactive.Active = false
	store.AddCode(inactive)
	if got := store.Len(); got != 0 {
		t.Fatalf("inactive code should not be appended, got %d", got)
	}

	store.AddCode(goodCode("active"))
	if got := store.Len(); got != 1 {
		t.Fatalf("got %d codes, want 1", got)
	}
}
