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

package memory_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coupemu/coupe/curated"
	"github.com/coupemu/coupe/hardware/memory"
	"github.com/coupemu/coupe/hardware/memory/memorymap"
	"github.com/coupemu/coupe/logger"
	"github.com/coupemu/coupe/romloader"
	"github.com/coupemu/coupe/test"
)

type options struct {
	mainRAM    int
	externalMB int
	rom0, rom1 string
}

func (o *options) MainRAMSize() int            { return o.mainRAM }
func (o *options) ExternalMemory() int         { return o.externalMB }
func (o *options) ROMImages() (string, string) { return o.rom0, o.rom1 }

func newMemory(t *testing.T, opts *options) *memory.Memory {
	t.Helper()
	mem := memory.NewMemory(opts)
	test.DemandSuccess(t, mem.Initialise(true))
	t.Cleanup(func() { mem.Teardown(false) })
	return mem
}

// romImage creates a file of n pages. every byte of a page is the page number
// plus the seed
func romImage(t *testing.T, n int, seed uint8, container bool) string {
	t.Helper()

	var d []byte
	if container {
		d = make([]byte, romloader.ContainerHeaderLen)
		copy(d, romloader.ContainerSignature)
	}
	for p := range n {
		for range memorymap.PageSize {
			d = append(d, uint8(p)+seed)
		}
	}

	fn := filepath.Join(t.TempDir(), "image.rom")
	test.DemandSuccess(t, os.WriteFile(fn, d, 0600))
	return fn
}

func peek(t *testing.T, mem *memory.Memory, page int, offset uint16) uint8 {
	t.Helper()
	v, err := mem.Peek(page, offset)
	test.DemandSuccess(t, err)
	return v
}

func TestTableValidity(t *testing.T) {
	for _, ram := range []int{256, 512} {
		for ext := -1; ext <= memorymap.MaxExternalMB+1; ext++ {
			mem := newMemory(t, &options{mainRAM: ram, externalMB: ext})
			for p := range memorymap.TotalPages {
				r := mem.Pages.Read(p)
				w := mem.Pages.Write(p)
				test.ExpectSuccess(t, r >= 0 && r < memorymap.TotalPages, ram, ext, p)
				test.ExpectSuccess(t, w >= 0 && w < memorymap.TotalPages, ram, ext, p)
			}
		}
	}
}

func TestFullConfiguration(t *testing.T) {
	mem := newMemory(t, &options{mainRAM: 512, externalMB: 4})
	test.ExpectEquality(t, mem.Configuration(), memory.Configuration{MainRAM: 512, ExternalMB: 4})

	for p := range memorymap.ROM0 {
		test.ExpectEquality(t, mem.Pages.Read(p), p)
		test.ExpectEquality(t, mem.Pages.Write(p), p)
	}

	test.ExpectSuccess(t, mem.Poke(31, 0x10, 0xa5))
	test.ExpectEquality(t, peek(t, mem, 31, 0x10), 0xa5)

	test.ExpectSuccess(t, mem.Poke(memorymap.OriginExternal, 0x3fff, 0x5a))
	test.ExpectEquality(t, peek(t, mem, memorymap.OriginExternal, 0x3fff), 0x5a)
}

func TestReducedMainRAM(t *testing.T) {
	mem := newMemory(t, &options{mainRAM: 256, externalMB: 4})

	for p := range memorymap.NumPagesMain / 2 {
		test.ExpectEquality(t, mem.Pages.Read(p), p)
		test.ExpectEquality(t, mem.Pages.Write(p), p)
	}
	for p := memorymap.NumPagesMain / 2; p < memorymap.NumPagesMain; p++ {
		test.ExpectEquality(t, mem.Pages.Write(p), mem.Pages.Sink())
		test.ExpectEquality(t, mem.Pages.Read(p), memorymap.ScratchRead)
		test.ExpectSuccess(t, mem.Pages.Discarded(p))
		test.ExpectSuccess(t, mem.Pages.Unbacked(p))
	}

	// writes to the missing half are lost
	test.ExpectSuccess(t, mem.Poke(20, 0, 0x12))
	test.ExpectEquality(t, peek(t, mem, 20, 0), 0xff)

	// the scratch read page can't be changed either
	test.ExpectSuccess(t, mem.Poke(memorymap.ScratchRead, 0, 0x12))
	test.ExpectEquality(t, peek(t, mem, memorymap.ScratchRead, 0), 0xff)

	phys, err := mem.Physical(20)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, phys[0], 0x00)

	// any other configuration value is the full amount
	mem = newMemory(t, &options{mainRAM: 384})
	test.ExpectEquality(t, mem.Configuration().MainRAM, 512)
	test.ExpectEquality(t, mem.Pages.Write(20), 20)
}

func TestExternalMemory(t *testing.T) {
	for _, tc := range []struct {
		ext, blocks int
	}{
		{-3, 0}, {0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {9, 4},
	} {
		mem := newMemory(t, &options{mainRAM: 512, externalMB: tc.ext})
		test.ExpectEquality(t, mem.Configuration().ExternalMB, tc.blocks, tc.ext)

		absent := (memorymap.MaxExternalMB - tc.blocks) * memorymap.NumPages1MB
		for p := memorymap.OriginExternal; p < memorymap.ROM0; p++ {
			// reads are never redirected for external memory
			test.ExpectEquality(t, mem.Pages.Read(p), p, tc.ext, p)

			if p < memorymap.OriginExternal+absent {
				test.ExpectEquality(t, mem.Pages.Write(p), mem.Pages.Sink(), tc.ext, p)
			} else {
				test.ExpectEquality(t, mem.Pages.Write(p), p, tc.ext, p)
			}
		}
	}
}

func TestROMProtection(t *testing.T) {
	fn := romImage(t, 2, 0x40, false)
	mem := newMemory(t, &options{mainRAM: 512, rom0: fn})

	test.ExpectEquality(t, mem.Pages.Write(memorymap.ROM0), mem.Pages.Sink())
	test.ExpectEquality(t, mem.Pages.Write(memorymap.ROM1), mem.Pages.Sink())
	test.ExpectEquality(t, mem.Pages.Read(memorymap.ROM0), memorymap.ROM0)
	test.ExpectEquality(t, mem.Pages.Read(memorymap.ROM1), memorymap.ROM1)

	test.ExpectEquality(t, peek(t, mem, memorymap.ROM0, 0), 0x40)
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM1, 0x3fff), 0x41)

	test.ExpectSuccess(t, mem.Poke(memorymap.ROM0, 0, 0x00))
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM0, 0), 0x40)

	// the ROM is reloaded and still protected after reinitialisation
	test.ExpectSuccess(t, mem.Initialise(false))
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM1, 0), 0x41)
	test.ExpectEquality(t, mem.Pages.Write(memorymap.ROM1), mem.Pages.Sink())
}

func TestROMContainer(t *testing.T) {
	fn := romImage(t, 2, 0x80, true)

	logger.Clear()
	mem := newMemory(t, &options{rom0: fn})
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM0, 0), 0x80)
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM1, 0), 0x81)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "memory: 2 ROM page(s) from image\n")
}

func TestROMFallback(t *testing.T) {
	primary := romImage(t, 1, 0x10, false)
	secondary := romImage(t, 1, 0x20, false)

	mem := newMemory(t, &options{rom0: primary, rom1: secondary})
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM0, 0), 0x10)
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM1, 0), 0x20)

	// fallback is used when the primary can't be opened
	mem = newMemory(t, &options{rom0: filepath.Join(t.TempDir(), "missing.rom"), rom1: secondary})
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM0, 0), 0xff)
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM1, 0), 0x20)

	// fallback is not used when the primary has both pages
	both := romImage(t, 2, 0x30, false)
	mem = newMemory(t, &options{rom0: both, rom1: secondary})
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM1, 0), 0x31)
}

func TestShortROM(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "short.rom")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{1, 2, 3}, 0600))

	logger.Clear()
	mem := newMemory(t, &options{rom0: fn})
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM0, 0), 0xff)
	test.ExpectEquality(t, peek(t, mem, memorymap.ROM1, 0), 0xff)

	// the fallback has no filename so there's a second entry after the short
	// image entry
	w := &strings.Builder{}
	logger.Tail(w, 2)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "memory: ROM image is too short: short\n"), w.String())
}

func TestReconfiguration(t *testing.T) {
	opts := &options{mainRAM: 512, externalMB: 1}
	mem := newMemory(t, opts)

	test.ExpectSuccess(t, mem.Poke(5, 0, 0x77))
	tables := *mem.Mode1

	opts.mainRAM = 256
	opts.externalMB = 4
	test.DemandSuccess(t, mem.Initialise(false))

	test.ExpectEquality(t, mem.Configuration(), memory.Configuration{MainRAM: 256, ExternalMB: 4})
	test.ExpectEquality(t, mem.Pages.Write(memorymap.OriginExternal), memorymap.OriginExternal)
	test.ExpectEquality(t, mem.Pages.Write(16), mem.Pages.Sink())

	// RAM is not cleared
	test.ExpectEquality(t, peek(t, mem, 5, 0), 0x77)

	// mode 1 tables are the same every time
	test.ExpectEquality(t, *mem.Mode1, tables)
}

func TestBounds(t *testing.T) {
	mem := newMemory(t, &options{})

	_, err := mem.ReadPage(memorymap.TotalPages)
	test.ExpectSuccess(t, curated.Is(err, memory.PageRange))
	_, err = mem.WritePage(-1)
	test.ExpectSuccess(t, curated.Is(err, memory.PageRange))
	_, err = mem.Peek(0, memorymap.PageSize)
	test.ExpectSuccess(t, curated.Is(err, memory.OffsetRange))
	err = mem.Poke(0, memorymap.PageSize, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.OffsetRange))

	d, err := mem.ReadPage(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(d), memorymap.PageSize)
}

func TestSections(t *testing.T) {
	fn := romImage(t, 2, 0x60, false)
	mem := newMemory(t, &options{rom0: fn})

	test.ExpectEquality(t, mem.SectionPage(memorymap.SectionA), memorymap.ROM0)
	test.ExpectEquality(t, mem.SectionPage(memorymap.SectionD), 3)

	// section A is ROM so the write is lost
	test.ExpectEquality(t, mem.Read(0x0000), 0x60)
	mem.Write(0x0000, 0x01)
	test.ExpectEquality(t, mem.Read(0x0000), 0x60)

	test.ExpectSuccess(t, mem.MapSection(memorymap.SectionB, 10))
	mem.Write(0x4123, 0xbe)
	test.ExpectEquality(t, mem.Read(0x4123), 0xbe)
	test.ExpectEquality(t, peek(t, mem, 10, 0x123), 0xbe)

	test.ExpectSuccess(t, mem.MapSection(memorymap.SectionD, memorymap.ROM1))
	test.ExpectEquality(t, mem.Read(0xffff), 0x61)

	err := mem.MapSection(memorymap.SectionD, memorymap.TotalPages)
	test.ExpectSuccess(t, curated.Is(err, memory.PageRange))
	err = mem.MapSection(memorymap.Section(4), 0)
	test.ExpectSuccess(t, curated.Is(err, memory.SectionInvalid))

	// section mapping survives reinitialisation
	test.ExpectSuccess(t, mem.Initialise(false))
	test.ExpectEquality(t, mem.SectionPage(memorymap.SectionB), 10)
}

func TestRegions(t *testing.T) {
	mem := newMemory(t, &options{mainRAM: 256, externalMB: 3})
	r := mem.Pages.Regions()

	test.DemandEquality(t, len(r), 7)
	test.ExpectEquality(t, r[0], memory.Region{Role: memorymap.RAM, First: 0, Last: 15, Readable: true, Writable: true})
	test.ExpectEquality(t, r[1], memory.Region{Role: memorymap.RAM, First: 16, Last: 31})
	test.ExpectEquality(t, r[2], memory.Region{Role: memorymap.External, First: 32, Last: 95, Readable: true})
	test.ExpectEquality(t, r[3], memory.Region{Role: memorymap.External, First: 96, Last: 287, Readable: true, Writable: true})
	test.ExpectEquality(t, r[4], memory.Region{Role: memorymap.ROM, First: 288, Last: 289, Readable: true})
	test.ExpectEquality(t, r[5], memory.Region{Role: memorymap.Scratch, First: 290, Last: 290, Readable: true})
	test.ExpectEquality(t, r[6], memory.Region{Role: memorymap.Scratch, First: 291, Last: 291, Readable: true, Writable: true})
	test.ExpectEquality(t, r[3].Pages(), 192)
}

func TestDump(t *testing.T) {
	mem := newMemory(t, &options{})
	s, err := mem.Dump(0, 0x7e, 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "007e : 00 00 ff ff\n")

	// dump stops at the end of the page
	s, err = mem.Dump(0, 0x3ffe, 16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "3ffe : ff ff\n")

	s, err = mem.Dump(0, 0, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	_, err = mem.Dump(0, 0, -1)
	test.ExpectSuccess(t, curated.Is(err, memory.LengthRange))
}
