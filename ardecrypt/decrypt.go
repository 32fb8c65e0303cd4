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

package ardecrypt

import (
	"strconv"

	"github.com/jetsetilly/arplay/ardecode"
	"github.com/jetsetilly/arplay/curated"
)

// blockWidth is the number of hex characters in one encrypted block, as
// emitted by the parser's encrypted-line grammar (hex4-hex4-hex5).
const blockWidth = 13

const (
	// ErrOddBlockCount means a listing's encrypted section ended with an
	// unpaired block: every code must decrypt to a whole number of entries.
	ErrOddBlockCount = "ardecrypt: odd number of encrypted blocks"

	// ErrMalformedBlock means a buffered block was not blockWidth hex digits.
	ErrMalformedBlock = "ardecrypt: malformed encrypted block"
)

// Decoder pairs a Cipher with the block-buffering discipline the parser
// needs: feed it whole hex blocks in listing order, get back decoded
// entries two blocks at a time.
type Decoder struct {
	cipher Cipher
}

// NewDecoder builds a Decoder around the given Cipher.
func NewDecoder(cipher Cipher) *Decoder {
	return &Decoder{cipher: cipher}
}

// Decrypt consumes blocks two at a time: the first of a pair decodes to the
// entry's command word, the second to its value. An odd number of blocks is
// a parse error, since a code's instruction stream can never end mid-entry.
func (d *Decoder) Decrypt(blocks []string) ([]ardecode.AREntry, error) {
	if len(blocks)%2 != 0 {
		return nil, curated.Errorf(ErrOddBlockCount)
	}

	entries := make([]ardecode.AREntry, 0, len(blocks)/2)
	for i := 0; i < len(blocks); i += 2 {
		cmd, err := d.decodeBlock(blocks[i])
		if err != nil {
			return nil, err
		}
		val, err := d.decodeBlock(blocks[i+1])
		if err != nil {
			return nil, err
		}
		entries = append(entries, ardecode.AREntry{Cmd: cmd, Value: val})
	}
	return entries, nil
}

func (d *Decoder) decodeBlock(block string) (uint32, error) {
	if len(block) != blockWidth {
		return 0, curated.Errorf("%s: %s", ErrMalformedBlock, block)
	}
	v, err := strconv.ParseUint(block, 16, 64)
	if err != nil {
		return 0, curated.Errorf("%s: %s", ErrMalformedBlock, block)
	}
	return d.cipher.Decode(uint32(v)), nil
}
