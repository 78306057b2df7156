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

// Package memorymap describes the layout of physical memory as a list of
// fixed size pages.
//
// Every page the machine can reference has a fixed index. The role of a page
// (main RAM, external RAM, ROM or scratch) is not stored anywhere. It is
// implied by the index range the page falls within, which is why the ranges
// here must never change. From low to high:
//
//	0   -> 31     main RAM (512K)
//	32  -> 287    external memory (4 x 1MB)
//	288 -> 289    ROM0 and ROM1
//	290 -> 291    scratch. the last page is the write sink
//
// The CPU sees memory through a 64K window divided into four 16K sections.
// MapAddress() splits a CPU address into the section number and the offset
// into the page mapped into that section.
package memorymap
