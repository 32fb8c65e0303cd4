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

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/arplay/ardecode"
	"github.com/jetsetilly/arplay/ardecrypt"
	"github.com/jetsetilly/arplay/curated"
)

// ErrNoDecoder is reported when an encrypted line is encountered but the
// Parser was built without a Decoder to resolve it.
const ErrNoDecoder = "arcode: encrypted listing but no decoder configured"

// ErrMalformedLine is reported for a body line that is neither a valid
// plain instruction nor a valid encrypted group.
const ErrMalformedLine = "arcode: malformed line"

// ErrLineOutsideCode is reported for a body line encountered before any
// "$name" line has opened a code.
const ErrLineOutsideCode = "arcode: instruction line outside any code"

// Parser turns Listings into ARCode slices. Decoder may be nil if the
// listings being parsed are known to carry no encrypted sections.
type Parser struct {
	Decoder *ardecrypt.Decoder
}

// NewParser builds a Parser around the given Decoder.
func NewParser(decoder *ardecrypt.Decoder) *Parser {
	return &Parser{Decoder: decoder}
}

// Parse reads the ActionReplay body of both global (bundled) and local
// (user) listings, and the local listing's enablement list, and returns the
// combined set of codes. Parse errors are collected and returned alongside
// whatever codes were successfully recovered; they never abort the parse.
func (p *Parser) Parse(global, local Listing) ([]ARCode, []error) {
	var errs []error

	enabledLines, err := local.Section(SectionEnabled)
	if err != nil {
		errs = append(errs, err)
	}
	enabled := make(map[string]bool, len(enabledLines))
	for _, l := range enabledLines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		enabled[strings.TrimPrefix(l, "$")] = true
	}

	var codes []ARCode

	if global != nil {
		lines, err := global.Section(SectionCodes)
		if err != nil {
			errs = append(errs, err)
		}
		c, e := p.parseBody(lines, false, enabled)
		codes = append(codes, c...)
		errs = append(errs, e...)
	}

	if local != nil {
		lines, err := local.Section(SectionCodes)
		if err != nil {
			errs = append(errs, err)
		}
		c, e := p.parseBody(lines, true, enabled)
		codes = append(codes, c...)
		errs = append(errs, e...)
	}

	return codes, errs
}

// parseBody walks one section's lines, implementing the entry/name_line/
// instr_line/enc_line grammar of section 6.
func (p *Parser) parseBody(lines []string, userDefined bool, enabled map[string]bool) ([]ARCode, []error) {
	var codes []ARCode
	var errs []error

	var (
		inProgress bool
		name       string
		ops        []ardecode.AREntry
		encBlocks  []string
	)

	commit := func() {
		if !inProgress {
			return
		}
		if len(encBlocks) > 0 {
			decoded, err := p.decodeBlocks(encBlocks)
			if err != nil {
				errs = append(errs, curated.Errorf("arcode: code %q: %v", name, err))
			} else {
				ops = append(ops, decoded...)
			}
		}
		codes = append(codes, ARCode{
			Name:        name,
			Active:      enabled[name],
			UserDefined: userDefined,
			Ops:         ops,
		})
		inProgress = false
		name = ""
		ops = nil
		encBlocks = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "$") {
			commit()
			inProgress = true
			name = line[1:]
			continue
		}

		if !inProgress {
			errs = append(errs, curated.Errorf("%s: %s", ErrLineOutsideCode, line))
			continue
		}

		body, err := bodyLineParser.ParseString("", line)
		if err != nil {
			errs = append(errs, curated.Errorf("%s: %s", ErrMalformedLine, line))
			continue
		}

		switch {
		case body.Instr != nil:
			entry, err := decodeInstrLine(body.Instr)
			if err != nil {
				errs = append(errs, curated.Errorf("%s: %s", ErrMalformedLine, line))
				continue
			}
			ops = append(ops, entry)
		case body.Enc != nil:
			encBlocks = append(encBlocks, body.Enc.G1+body.Enc.G2+body.Enc.G3)
		}
	}
	commit()

	return codes, errs
}

func decodeInstrLine(l *instrLine) (ardecode.AREntry, error) {
	cmd, err := strconv.ParseUint(l.Cmd, 16, 32)
	if err != nil {
		return ardecode.AREntry{}, err
	}
	val, err := strconv.ParseUint(l.Value, 16, 32)
	if err != nil {
		return ardecode.AREntry{}, err
	}
	return ardecode.AREntry{Cmd: uint32(cmd), Value: uint32(val)}, nil
}

func (p *Parser) decodeBlocks(blocks []string) ([]ardecode.AREntry, error) {
	if p.Decoder == nil {
		return nil, curated.Errorf(ErrNoDecoder)
	}
	return p.Decoder.Decrypt(blocks)
}
