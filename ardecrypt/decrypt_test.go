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
	"testing"

	"github.com/jetsetilly/arplay/curated"
)

func TestDecryptPairsBlocks(t *testing.T) {
	d := NewDecoder(NewFeistelCipher(0x1337BEEF, 0xCAFEF00D, 16))

	blocks := []string{
		"1222233334444",
		"5666677778888",
	}
	entries, err := d.Decrypt(blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestDecryptOddBlockCountIsError(t *testing.T) {
	d := NewDecoder(NewFeistelCipher(1, 2, 8))

	_, err := d.Decrypt([]string{"1222233334444"})
	if err == nil {
		t.Fatalf("expected error for odd block count")
	}
	if !curated.Is(err, ErrOddBlockCount) {
		t.Fatalf("expected ErrOddBlockCount, got %v", err)
	}
}

func TestDecryptMalformedBlockIsError(t *testing.T) {
	d := NewDecoder(NewFeistelCipher(1, 2, 8))

	_, err := d.Decrypt([]string{"short", "1222233334444"})
	if err == nil {
		t.Fatalf("expected error for malformed block")
	}
}

func TestFeistelCipherIsDeterministic(t *testing.T) {
	c := NewFeistelCipher(0xDEADBEEF, 0x12345678, 12)
	a := c.Decode(0xAABBCCDD)
	b := c.Decode(0xAABBCCDD)
	if a != b {
		t.Fatalf("expected deterministic output, got %#x and %#x", a, b)
	}
}

func TestNewFeistelCipherPanicsOnZeroRounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero rounds")
		}
	}()
	NewFeistelCipher(1, 2, 0)
}
