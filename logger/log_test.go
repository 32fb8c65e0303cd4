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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/arplay/logger"
)

func TestLoggerTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	if w.String() != "" {
		t.Fatalf("expected empty log, got %q", w.String())
	}

	log.Log(logger.Allow, "test", "this is a test")
	w.Reset()
	log.Write(w)
	if w.String() != "test: this is a test\n" {
		t.Fatalf("unexpected log content: %q", w.String())
	}

	log.Log(logger.Allow, "test2", "this is another test")
	w.Reset()
	log.Write(w)
	want := "test: this is a test\ntest2: this is another test\n"
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	w.Reset()
	log.Tail(w, 1)
	if w.String() != "test2: this is another test\n" {
		t.Fatalf("unexpected tail content: %q", w.String())
	}

	w.Reset()
	log.Tail(w, 0)
	if w.String() != "" {
		t.Fatalf("expected empty tail, got %q", w.String())
	}
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestLoggerPermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "tag", "detail")
	log.Write(w)
	if w.String() != "" {
		t.Fatalf("expected logging to be suppressed, got %q", w.String())
	}

	log.Log(prohibitLogging{allow: true}, "tag", "detail")
	log.Write(w)
	if w.String() != "tag: detail\n" {
		t.Fatalf("unexpected log content: %q", w.String())
	}
}

func TestLoggerRepeatCollapsing(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "same")
	log.Log(logger.Allow, "tag", "same")
	log.Log(logger.Allow, "tag", "same")
	log.Write(w)
	if w.String() != "tag: same (repeat x3)\n" {
		t.Fatalf("unexpected repeat collapsing: %q", w.String())
	}
}

func TestLoggerErrorAndStringerDetail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("boom"))
	log.Write(w)
	if w.String() != "tag: boom\n" {
		t.Fatalf("unexpected error log content: %q", w.String())
	}

	w.Reset()
	log.Clear()
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("boom"))
	log.Write(w)
	if w.String() != "tag: wrapped: boom\n" {
		t.Fatalf("unexpected formatted log content: %q", w.String())
	}
}

func TestLoggerWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	if w.String() != "a: 1\n" {
		t.Fatalf("unexpected recent content: %q", w.String())
	}

	w.Reset()
	if log.WriteRecent(w) {
		t.Fatalf("expected no new entries since last WriteRecent")
	}

	log.Log(logger.Allow, "b", "2")
	w.Reset()
	log.WriteRecent(w)
	if w.String() != "b: 2\n" {
		t.Fatalf("unexpected recent content: %q", w.String())
	}
}

func TestLoggerMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")

	log.Write(w)
	want := "b: 2\nc: 3\n"
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}
}
