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

package preferences_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/coupemu/coupe/curated"
	"github.com/coupemu/coupe/hardware/preferences"
	"github.com/coupemu/coupe/logger"
	"github.com/coupemu/coupe/prefs"
	"github.com/coupemu/coupe/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewMemoryFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.MainRAMSize(), 512)
	test.ExpectEquality(t, p.ExternalMemory(), 0)
	rom0, rom1 := p.ROMImages()
	test.ExpectEquality(t, rom0, "samcoupe.rom")
	test.ExpectEquality(t, rom1, "")
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewMemoryFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.MainRAM.Set(256))
	test.ExpectSuccess(t, p.ExternalMB.Set(2))
	test.ExpectSuccess(t, p.ROM1.Set("rom1.bin"))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewMemoryFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.MainRAMSize(), 256)
	test.ExpectEquality(t, q.ExternalMemory(), 2)
	_, rom1 := q.ROMImages()
	test.ExpectEquality(t, rom1, "rom1.bin")
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("memory.externalMB::4")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewMemoryFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ExternalMemory(), 4)
}

func TestInvalidValues(t *testing.T) {
	p, err := preferences.NewMemoryFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	err = p.MainRAM.Set(384)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidMainRAM))
	test.ExpectEquality(t, p.MainRAMSize(), 512)

	err = p.ExternalMB.Set(5)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidExternalMB))
	err = p.ExternalMB.Set(-1)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidExternalMB))
	test.ExpectEquality(t, p.ExternalMemory(), 0)

	test.ExpectSuccess(t, p.MainRAM.Set("256"))
	test.ExpectSuccess(t, p.ExternalMB.Set(4))
}

func TestInvalidCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("memory.mainRAM::1024")
	defer prefs.PopCommandLineStack()

	_, err := preferences.NewMemoryFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, preferences.InvalidMainRAM))
}

func TestChangesLogged(t *testing.T) {
	p, err := preferences.NewMemoryFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.ROM0.Set("other.rom"))

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "preferences: memory.rom0: other.rom\n")
}
