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

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a bounded, repeat-collapsing log buffer, gated by a Permission
// check on every write. The zero value is not usable; construct with
// NewLogger. Safe for concurrent use: every method takes the Logger's
// mutex, so entries can be written from one thread and read from another.
type Logger struct {
	mu sync.Mutex

	maxEntries int
	entries    []Entry
	recentMark int

	echo       io.Writer
	echoRecent bool
}

// NewLogger builds a Logger holding at most maxEntries, oldest dropped first.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

// Log adds an entry to the logger if perm allows it. detail is formatted
// according to its type: errors and fmt.Stringers use their own string
// form, everything else falls back to the %v verb.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.log(tag, formatDetail(detail))
}

// Logf adds a formatted entry to the logger if perm allows it.
func (l *Logger) Logf(perm Permission, tag, format string, args ...interface{}) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.log(tag, fmt.Sprintf(format, args...))
}

func formatDetail(detail interface{}) string {
	switch v := detail.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Logger) log(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var last *Entry
	if len(l.entries) > 0 {
		last = &l.entries[len(l.entries)-1]
	}

	var e Entry
	if last != nil && last.detail == detail && last.tag == tag {
		last.repeated++
		last.Timestamp = time.Now()
		e = *last
	} else {
		e = Entry{Timestamp: time.Now(), tag: tag, detail: detail}
		l.entries = append(l.entries, e)
	}

	if len(l.entries) > l.maxEntries {
		overflow := len(l.entries) - l.maxEntries
		l.entries = l.entries[overflow:]
		l.recentMark -= overflow
		if l.recentMark < 0 {
			l.recentMark = 0
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Clear removes all entries.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
	l.recentMark = 0
}

// Write writes every entry to output.
func (l *Logger) Write(output io.Writer) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return false
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
	return true
}

// WriteRecent writes only the entries added since the last call to
// WriteRecent, then advances the mark.
func (l *Logger) WriteRecent(output io.Writer) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.recentMark >= len(l.entries) {
		return false
	}
	for _, e := range l.entries[l.recentMark:] {
		io.WriteString(output, e.String())
	}
	l.recentMark = len(l.entries)
	return true
}

// Tail writes the last number entries to output.
func (l *Logger) Tail(output io.Writer, number int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if number > len(l.entries) {
		number = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho causes every future log entry to also be written to output as it
// arrives. writeRecent immediately echoes whatever entries have accumulated
// so far that haven't already been drained by WriteRecent. Passing a nil
// output disables echoing.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.mu.Lock()
	l.echo = output
	l.mu.Unlock()

	if output == nil {
		return
	}
	if writeRecent {
		l.WriteRecent(output)
	}
}

// BorrowLog gives f exclusive access to the entry list for the duration of
// the call. f must not retain the slice past the call.
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(l.entries)
}
