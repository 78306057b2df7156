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

package digest_test

import (
	"testing"

	"github.com/coupemu/coupe/digest"
	"github.com/coupemu/coupe/hardware/memory"
	"github.com/coupemu/coupe/hardware/memory/memorymap"
	"github.com/coupemu/coupe/test"
)

type options struct {
	mainRAM int
}

func (o *options) MainRAMSize() int            { return o.mainRAM }
func (o *options) ExternalMemory() int         { return 4 }
func (o *options) ROMImages() (string, string) { return "", "" }

func TestMemoryDigest(t *testing.T) {
	opts := &options{mainRAM: 512}
	mem := memory.NewMemory(opts)
	test.DemandSuccess(t, mem.Initialise(true))
	defer mem.Teardown(false)

	var _ digest.Digest = digest.NewMemory()

	dig := digest.NewMemory()
	test.DemandSuccess(t, dig.Update(mem, 0, memorymap.ROM1))
	initial := dig.Hash()

	// reinitialising with the same configuration doesn't change anything
	test.DemandSuccess(t, mem.Initialise(false))
	dig.ResetDigest()
	test.DemandSuccess(t, dig.Update(mem, 0, memorymap.ROM1))
	test.ExpectEquality(t, dig.Hash(), initial)

	// the digest depends on the page table
	opts.mainRAM = 256
	test.DemandSuccess(t, mem.Initialise(false))
	dig.ResetDigest()
	test.DemandSuccess(t, dig.Update(mem, 0, memorymap.ROM1))
	test.ExpectInequality(t, dig.Hash(), initial)

	// writes to the sink are not seen
	reduced := dig.Hash()
	test.DemandSuccess(t, mem.Poke(20, 0, 0x00))
	dig.ResetDigest()
	test.DemandSuccess(t, dig.Update(mem, 0, memorymap.ROM1))
	test.ExpectEquality(t, dig.Hash(), reduced)

	// but writes to RAM are
	test.DemandSuccess(t, mem.Poke(0, 0, 0x01))
	dig.ResetDigest()
	test.DemandSuccess(t, dig.Update(mem, 0, memorymap.ROM1))
	test.ExpectInequality(t, dig.Hash(), reduced)
}

func TestChaining(t *testing.T) {
	mem := memory.NewMemory(&options{mainRAM: 512})
	test.DemandSuccess(t, mem.Initialise(true))
	defer mem.Teardown(false)

	a := digest.NewMemory()
	test.DemandSuccess(t, a.Update(mem, 0, 0))
	first := a.Hash()
	test.DemandSuccess(t, a.Update(mem, 0, 0))
	test.ExpectInequality(t, a.Hash(), first)

	a.ResetDigest()
	test.DemandSuccess(t, a.Update(mem, 0, 0))
	test.ExpectEquality(t, a.Hash(), first)

	test.ExpectFailure(t, a.Update(mem, 0, memorymap.TotalPages))
}
