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

import (
	"github.com/coupemu/coupe/curated"
	"github.com/coupemu/coupe/hardware/memory/memorymap"
)

// the mapping of sections when the pool is first allocated. ROM0 is in
// section A so that the CPU starts in ROM.
func (mem *Memory) resetSections() {
	mem.sections = [memorymap.NumSections]int{memorymap.ROM0, 1, 2, 3}
}

// MapSection maps the page into the section of the CPU address space.
func (mem *Memory) MapSection(section memorymap.Section, page int) error {
	if section < memorymap.SectionA || section > memorymap.SectionD {
		return curated.Errorf(SectionInvalid, section)
	}
	if page < 0 || page >= memorymap.TotalPages {
		return curated.Errorf(PageRange, page)
	}
	mem.sections[section] = page
	return nil
}

// SectionPage returns the page mapped into the section.
func (mem *Memory) SectionPage(section memorymap.Section) int {
	return mem.sections[section]
}

// Read the value at the CPU address. Read() and Write() must only be called
// between Initialise() and Teardown().
func (mem *Memory) Read(address uint16) uint8 {
	assertAllocated(&mem.pool)
	s, o := memorymap.MapAddress(address)
	p := mem.Pages.Read(mem.sections[s])
	return mem.pool.data[p*memorymap.PageSize+int(o)]
}

// Write the value to the CPU address. Writes to protected and absent memory
// are discarded.
func (mem *Memory) Write(address uint16, data uint8) {
	assertAllocated(&mem.pool)
	s, o := memorymap.MapAddress(address)
	p := mem.Pages.Write(mem.sections[s])
	assertWrite(p)
	mem.pool.data[p*memorymap.PageSize+int(o)] = data
}
