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

// Package memory implements the memory of the emulated machine.
//
// All memory the machine can reference is held in a single pool, allocated
// once on the first call to Initialise() and released by Teardown(). The pool
// is divided into pages of memorymap.PageSize bytes. The memorymap package
// describes which index ranges are main RAM, external RAM, ROM and scratch.
//
// Pages are not accessed directly. Instead, the PageTable maps every page
// index to the page that should be used when reading from it and the page
// that should be used when writing to it. For most pages, both mappings are to
// the page itself. The exceptions are:
//
//	ROM pages and the scratch read page
//		writes are redirected to the write sink
//
//	upper half of main RAM when in 256K mode
//		reads come from the scratch read page and writes go to the write sink
//
//	absent external memory
//		writes are redirected to the write sink. reads still come from the
//		page itself
//
// Writes are never rejected. Writing to protected or absent memory is not an
// error, the data is simply lost in the write sink. No page other than the
// write sink itself reads from it.
//
// The PageTable is rebuilt every time Initialise() is called. The CPU sees
// memory through four sections, each of which is mapped to a page with
// MapSection(). Read() and Write() resolve a CPU address through the section
// and then the PageTable.
//
// Building with the "assertions" tag adds a check to every write that the
// PageTable has not directed the write to a ROM page or to the scratch read
// page.
package memory
