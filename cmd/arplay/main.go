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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/arplay/arcode"
	"github.com/jetsetilly/arplay/ardecrypt"
	"github.com/jetsetilly/arplay/arstore"
	"github.com/jetsetilly/arplay/curated"
	"github.com/jetsetilly/arplay/guestmem"
	"github.com/jetsetilly/arplay/memimage"
	"github.com/jetsetilly/arplay/modalflag"
	"github.com/jetsetilly/arplay/paths"
	"github.com/jetsetilly/arplay/prefs"
	"github.com/jetsetilly/arplay/report"
	"github.com/jetsetilly/arplay/version"
)

func main() {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("parse", "run", "decrypt", "version")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Println(err)
		os.Exit(1)
	}

	switch md.Mode() {
	case "PARSE":
		err = parseMode(&md)
	case "RUN":
		err = runMode(&md)
	case "DECRYPT":
		err = decryptMode(&md)
	case "VERSION":
		printVersion()
	default:
		fmt.Printf("unrecognised mode %q\n", md.Mode())
		os.Exit(1)
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func printVersion() {
	v, rev, release := version.Version()
	fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, rev)
	if !release {
		fmt.Println("unreleased build")
	}
}

// parseMode loads a listing file and prints a summary of every code it
// contains, plus any recoverable parse errors.
func parseMode(md *modalflag.Modes) error {
	md.NewMode()
	keyed := md.AddBool("encrypted", false, "the listing may contain an encrypted section")
	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("parse mode requires exactly one listing filename")
	}
	filename := md.GetArg(0)

	listing, err := loadListing(filename)
	if err != nil {
		return err
	}

	var parser *arcode.Parser
	if *keyed {
		parser = arcode.NewParser(ardecrypt.NewDecoder(referenceCipher()))
	} else {
		parser = arcode.NewParser(nil)
	}

	codes, errs := parser.Parse(arcode.MapListing{}, listing)
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	for _, c := range codes {
		fmt.Printf("%-30s active=%-5v user=%-5v ops=%d\n", c.Name, c.Active, c.UserDefined, len(c.Ops))
	}

	return nil
}

// runMode loads a listing and a guest RAM image, applies the active codes
// to a Store, runs it for N ticks, and dumps the resulting self-log.
func runMode(md *modalflag.Modes) error {
	md.NewMode()
	image := md.AddString("image", "", "guest RAM image to load")
	hash := md.AddString("hash", "", "expected SHA-1 hash of the image")
	ticks := md.AddInt("ticks", 1, "number of ticks to run")
	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("run mode requires exactly one listing filename")
	}
	filename := md.GetArg(0)

	if *image == "" {
		return fmt.Errorf("run mode requires -image")
	}

	listing, err := loadListing(filename)
	if err != nil {
		return err
	}

	parser := arcode.NewParser(nil)
	codes, errs := parser.Parse(arcode.MapListing{}, listing)
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}

	ml := memimage.NewLoader(*image)
	ml.Hash = *hash
	if err := ml.Load(); err != nil {
		return err
	}

	bus := guestmem.NewFlatFromImage(0x80000000, ml.Data)

	cheatsEnabled := &prefs.Bool{}
	selfLogging := &prefs.Bool{}
	if err := cheatsEnabled.Set(true); err != nil {
		return err
	}
	if err := selfLogging.Set(true); err != nil {
		return err
	}

	disk, err := prefs.NewDisk(paths.ResourcePath(prefs.DefaultPrefsFile))
	if err != nil {
		return err
	}
	if err := disk.Add("run.cheatsEnabled", cheatsEnabled); err != nil {
		return err
	}
	if err := disk.Add("run.selfLogging", selfLogging); err != nil {
		return err
	}
	if err := disk.Load(true); err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}

	store := arstore.New(bus, cheatsEnabled)
	store.Report = report.NewLogging(nil)
	store.EnableSelfLogging(selfLogging.Get().(bool))
	store.ApplyCodes(codes)

	for i := 0; i < *ticks; i++ {
		store.RunAllActive()
	}

	fmt.Printf("%d codes still active after %d tick(s)\n", store.Len(), *ticks)
	if selfLog := store.GetSelfLog(); selfLog != "" {
		fmt.Println("self-log:")
		fmt.Println(selfLog)
	}

	if err := disk.Save(); err != nil {
		return err
	}

	return nil
}

// decryptMode decrypts a sequence of encrypted listing blocks given on the
// command line, printing each resulting command/value pair.
func decryptMode(md *modalflag.Modes) error {
	md.NewMode()
	key0 := md.AddString("key0", "00000000", "first cipher key, hex")
	key1 := md.AddString("key1", "00000000", "second cipher key, hex")
	rounds := md.AddInt("rounds", 16, "number of Feistel rounds")
	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("decrypt mode requires at least one encrypted block")
	}

	k0, err := strconv.ParseUint(*key0, 16, 32)
	if err != nil {
		return err
	}
	k1, err := strconv.ParseUint(*key1, 16, 32)
	if err != nil {
		return err
	}

	cipher := ardecrypt.NewFeistelCipher(uint32(k0), uint32(k1), *rounds)
	decoder := ardecrypt.NewDecoder(cipher)

	blocks := make([]string, len(md.RemainingArgs()))
	for i, a := range md.RemainingArgs() {
		blocks[i] = strings.ReplaceAll(a, "-", "")
	}

	entries, err := decoder.Decrypt(blocks)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%08X %08X\n", e.Cmd, e.Value)
	}

	return nil
}

// referenceCipher is the default key material for parse mode's -encrypted
// flag. It exists so the CLI can demonstrate the full pipeline without
// requiring the caller to supply key material for every invocation; real
// production keys are out of scope (package ardecrypt's doc comment).
func referenceCipher() ardecrypt.Cipher {
	return ardecrypt.NewFeistelCipher(0, 0, 16)
}
