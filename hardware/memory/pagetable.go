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

package memory

import "github.com/coupemu/coupe/hardware/memory/memorymap"

// PageTable maps every page index to the page used for reading and the page
// used for writing. Entries are always valid page indexes.
type PageTable struct {
	read  [memorymap.TotalPages]int
	write [memorymap.TotalPages]int
}

// Rebuild the page table for the configuration. The table is first reset so
// that every page maps to itself and then the configuration is applied.
//
// Rebuild is idempotent for a given configuration.
func (pt *PageTable) Rebuild(cfg Configuration) {
	cfg = cfg.Normalise()

	for p := range memorymap.TotalPages {
		pt.read[p] = p
		pt.write[p] = p
	}

	// the upper half of main RAM is unbacked in 256K mode
	if cfg.MainRAM == memorymap.MainRAMReduced {
		for p := memorymap.OriginMain + memorymap.NumPagesMain/2; p < memorymap.OriginExternal; p++ {
			pt.read[p] = memorymap.ScratchRead
			pt.write[p] = memorymap.ScratchWrite
		}
	}

	// external memory is added top-down so it is the lowest blocks that are
	// absent. absent memory can still be read
	absent := (memorymap.MaxExternalMB - cfg.ExternalMB) * memorymap.NumPages1MB
	for p := memorymap.OriginExternal; p < memorymap.OriginExternal+absent; p++ {
		pt.write[p] = memorymap.ScratchWrite
	}

	pt.protect()
}

// the scratch read page must keep its 0xff fill
func (pt *PageTable) protect() {
	pt.write[memorymap.ROM0] = memorymap.ScratchWrite
	pt.write[memorymap.ROM1] = memorymap.ScratchWrite
	pt.write[memorymap.ScratchRead] = memorymap.ScratchWrite
}

// Read returns the page to use when reading from the page.
func (pt *PageTable) Read(page int) int {
	return pt.read[page]
}

// Write returns the page to use when writing to the page.
func (pt *PageTable) Write(page int) int {
	return pt.write[page]
}

// Sink returns the page that discarded writes are sent to.
func (pt *PageTable) Sink() int {
	return memorymap.ScratchWrite
}

// Discarded returns true if writes to the page are sent to the write sink.
func (pt *PageTable) Discarded(page int) bool {
	return pt.write[page] == memorymap.ScratchWrite && page != memorymap.ScratchWrite
}

// Unbacked returns true if reads from the page do not come from the page
// itself.
func (pt *PageTable) Unbacked(page int) bool {
	return pt.read[page] != page
}

// Region is a contiguous range of pages with the same role and the same
// mapping behaviour.
type Region struct {
	Role  memorymap.Role
	First int
	Last  int

	// reads and writes are from/to the pages themselves
	Readable bool
	Writable bool
}

func (r Region) Pages() int {
	return r.Last - r.First + 1
}

// Regions returns the page table as a list of contiguous regions.
func (pt *PageTable) Regions() []Region {
	var regions []Region

	for p := range memorymap.TotalPages {
		r := Region{
			Role:     memorymap.RoleOf(p),
			First:    p,
			Last:     p,
			Readable: !pt.Unbacked(p),
			Writable: !pt.Discarded(p),
		}

		if len(regions) > 0 {
			l := &regions[len(regions)-1]
			if l.Role == r.Role && l.Readable == r.Readable && l.Writable == r.Writable {
				l.Last = p
				continue
			}
		}

		regions = append(regions, r)
	}

	return regions
}
