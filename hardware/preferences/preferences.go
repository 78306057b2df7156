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

// Package preferences contains the preference values for the emulated
// hardware.
package preferences

import (
	"github.com/coupemu/coupe/curated"
	"github.com/coupemu/coupe/hardware/memory/memorymap"
	"github.com/coupemu/coupe/logger"
	"github.com/coupemu/coupe/prefs"
	"github.com/coupemu/coupe/resources"
)

// Sentinel error patterns for rejected preference values.
const (
	InvalidMainRAM    = "preferences: main RAM must be %d or %d (%v)"
	InvalidExternalMB = "preferences: external memory must be 0 to %d (%v)"
)

// Memory defines the preferences that shape the memory configuration.
type Memory struct {
	dsk *prefs.Disk

	// size of main RAM in kilobytes. either 256 or 512
	MainRAM prefs.Int

	// number of megabytes of external memory. 0 to 4
	ExternalMB prefs.Int

	// ROM images. ROM1 is only used if ROM0 does not contain both ROM pages
	ROM0 prefs.String
	ROM1 prefs.String
}

func (p *Memory) String() string {
	return p.dsk.String()
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// preferences are loaded from the default preferences file.
func NewMemory() (*Memory, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewMemoryFromFile(pth)
}

// NewMemoryFromFile creates a new Memory instance with preferences loaded from
// the named file. A missing file is not an error.
func NewMemoryFromFile(pth string) (*Memory, error) {
	p := &Memory{}
	p.SetDefaults()

	p.MainRAM.SetHookPre(func(v prefs.Value) error {
		if kb := v.(int); kb != memorymap.MainRAMFull && kb != memorymap.MainRAMReduced {
			return curated.Errorf(InvalidMainRAM, memorymap.MainRAMReduced, memorymap.MainRAMFull, v)
		}
		return nil
	})
	p.ExternalMB.SetHookPre(func(v prefs.Value) error {
		if mb := v.(int); mb < 0 || mb > memorymap.MaxExternalMB {
			return curated.Errorf(InvalidExternalMB, memorymap.MaxExternalMB, v)
		}
		return nil
	})

	p.MainRAM.SetHookPost(logChange("mainRAM"))
	p.ExternalMB.SetHookPost(logChange("externalMB"))
	p.ROM0.SetHookPost(logChange("rom0"))
	p.ROM1.SetHookPost(logChange("rom1"))

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memory.mainRAM", &p.MainRAM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.externalMB", &p.ExternalMB)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.rom0", &p.ROM0)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.rom1", &p.ROM1)
	if err != nil {
		return nil, err
	}

	err = p.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// logChange returns a post hook that logs the new value. new values only take
// effect on the next call to memory.Initialise()
func logChange(key string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		logger.Logf(logger.Allow, "preferences", "memory.%s: %v", key, v)
		return nil
	}
}

// SetDefaults reverts all settings to default values.
func (p *Memory) SetDefaults() {
	p.MainRAM.Set(memorymap.MainRAMFull)
	p.ExternalMB.Set(0)
	p.ROM0.Set("samcoupe.rom")
	p.ROM1.Set("")
}

// Load memory preferences from disk. A missing preferences file is not an
// error.
func (p *Memory) Load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current memory preferences to disk.
func (p *Memory) Save() error {
	return p.dsk.Save()
}

// MainRAMSize implements the memory.Options interface.
func (p *Memory) MainRAMSize() int {
	return p.MainRAM.Get().(int)
}

// ExternalMemory implements the memory.Options interface.
func (p *Memory) ExternalMemory() int {
	return p.ExternalMB.Get().(int)
}

// ROMImages implements the memory.Options interface.
func (p *Memory) ROMImages() (string, string) {
	return p.ROM0.String(), p.ROM1.String()
}
