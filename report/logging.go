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

import "github.com/jetsetilly/arplay/logger"

// Logging is a Reporter that writes every report to the central logger
// under the "arcode" tag. It never blocks and never surfaces an error back
// to the caller, matching the "no error is fatal to the emulator"
// propagation policy.
type Logging struct {
	Perm logger.Permission
}

// NewLogging builds a Logging reporter gated by perm. Pass logger.Allow to
// always log.
func NewLogging(perm logger.Permission) *Logging {
	return &Logging{Perm: perm}
}

// Report implements Reporter.
func (l *Logging) Report(kind Kind, code, detail string) {
	perm := l.Perm
	if perm == nil {
		perm = logger.Allow
	}
	if code == "" {
		logger.Logf(perm, "arcode", "%s: %s", kind, detail)
		return
	}
	logger.Logf(perm, "arcode", "%s: %s: %s", code, kind, detail)
}
