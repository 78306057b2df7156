// This file is part of Coupe.
//
// Coupe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Coupe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Coupe.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/coupemu/coupe/curated"
	"github.com/coupemu/coupe/digest"
	"github.com/coupemu/coupe/hardware/memory"
	"github.com/coupemu/coupe/hardware/memory/memorymap"
	"github.com/coupemu/coupe/hardware/preferences"
	"github.com/coupemu/coupe/logger"
	"github.com/coupemu/coupe/modalflag"
	"github.com/coupemu/coupe/prefs"
	"github.com/coupemu/coupe/statsview"
	"github.com/coupemu/coupe/terminal/easyterm"
	"github.com/coupemu/coupe/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// number of log entries shown after an error when the log isn't being echoed
const errorLogTail = 5

// flags that override a memory preference
var prefFlags = map[string]string{
	"mainram":  "memory.mainRAM",
	"external": "memory.externalMB",
	"rom0":     "memory.rom0",
	"rom1":     "memory.rom1",
}

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

func launch(output io.Writer, args []string) int {
	logger.Clear()

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("MAP", "MODE1", "DOT", "PEEK", "VERSION")
	md.AdditionalHelp("memory preferences given on the command line are not saved unless -save is given")

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "launch statsview server (if available)")
	prefsFile := md.AddString("prefs", "", "preferences file (default is in the resources directory)")
	save := md.AddBool("save", false, "save memory preferences")
	md.AddInt("mainram", 512, "main RAM in kilobytes: 256, 512")
	md.AddInt("external", 0, "external memory in megabytes: 0 to 4")
	md.AddString("rom0", "", "primary ROM image")
	md.AddString("rom1", "", "fallback ROM image")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *log {
		if f, ok := output.(*os.File); ok && easyterm.IsTerminal(f) {
			logger.SetEcho(logger.NewColorizer(output))
		} else {
			logger.SetEcho(output)
		}
		defer logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "* statsview not available in this build")
		}
	}

	var cl []string
	md.Visit(func(name string, value string) {
		if key, ok := prefFlags[name]; ok {
			cl = append(cl, fmt.Sprintf("%s::%s", key, value))
		}
	})
	prefs.PushCommandLineStack(strings.Join(cl, "; "))
	defer prefs.PopCommandLineStack()

	switch md.Mode() {
	case "VERSION":
		err = showVersion(md)
	default:
		err = withMemory(md, *prefsFile, *save)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)

		if curated.Has(err, preferences.InvalidMainRAM) || curated.Has(err, preferences.InvalidExternalMB) {
			fmt.Fprintln(output, "* check the -mainram and -external flags and the preferences file")
		}

		// curated errors come from the memory packages and the log may say
		// more about how the memory got into that state
		if curated.IsAny(err) && !*log {
			logger.Tail(output, errorLogTail)
		}

		return exitModeError
	}

	return exitOK
}

// withMemory creates and initialises the memory and runs the selected mode
// with it
func withMemory(md *modalflag.Modes, prefsFile string, save bool) error {
	var pm *preferences.Memory
	var err error

	if prefsFile == "" {
		pm, err = preferences.NewMemory()
	} else {
		pm, err = preferences.NewMemoryFromFile(prefsFile)
	}
	if err != nil {
		return err
	}

	if save {
		if err := pm.Save(); err != nil {
			return err
		}
	}

	mem := memory.NewMemory(pm)
	if err := mem.Initialise(true); err != nil {
		return err
	}
	defer mem.Teardown(false)

	switch md.Mode() {
	case "MAP":
		return memoryMap(md, mem)
	case "MODE1":
		return mode1(md, mem)
	case "DOT":
		return dot(md, mem)
	case "PEEK":
		return peek(md, mem)
	}

	return nil
}

func memoryMap(md *modalflag.Modes, mem *memory.Memory) error {
	md.NewMode()
	summary := md.AddBool("summary", false, "show the fixed page layout")
	hash := md.AddBool("digest", false, "show a digest of RAM and ROM as seen through the page table")
	bar := md.AddBool("bar", false, "draw the page table as a bar")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *summary {
		writeSummary(md.Output)
		return nil
	}

	writeRegions(md.Output, mem)

	if *bar {
		width := easyterm.DefaultWidth
		if f, ok := md.Output.(*os.File); ok {
			width = easyterm.Width(f)
		}
		writeBar(md.Output, mem, width)
	}

	if *hash {
		dig := digest.NewMemory()
		if err := dig.Update(mem, 0, memorymap.ROM1); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "digest: %s\n", dig.Hash())
	}

	return nil
}

func mode1(md *modalflag.Modes, mem *memory.Memory) error {
	md.NewMode()
	line := md.AddInt("line", -1, "show a single display line")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	return writeMode1(md.Output, mem.Mode1, *line)
}

func dot(md *modalflag.Modes, mem *memory.Memory) error {
	md.NewMode()
	table := md.AddBool("table", false, "include the full page table")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *table {
		memviz.Map(md.Output, &mem.Pages)
		return nil
	}

	memviz.Map(md.Output, mem.Pages.Regions())
	return nil
}

func peek(md *modalflag.Modes, mem *memory.Memory) error {
	md.NewMode()
	length := md.AddInt("length", 0x100, "number of bytes to dump")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	var page, offset int64

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("page required")
	case 2:
		offset, err = strconv.ParseInt(md.GetArg(1), 0, 32)
		if err != nil {
			return fmt.Errorf("offset: %w", err)
		}
		fallthrough
	case 1:
		page, err = strconv.ParseInt(md.GetArg(0), 0, 32)
		if err != nil {
			return fmt.Errorf("page: %w", err)
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if offset < 0 || offset > 0xffff {
		return fmt.Errorf("offset out of range (%#x)", offset)
	}

	s, err := mem.Dump(int(page), uint16(offset), *length)
	if err != nil {
		return err
	}
	io.WriteString(md.Output, s)

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
