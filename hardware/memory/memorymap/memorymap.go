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

package memorymap

// PageSize is the size of every page in bytes.
const PageSize = 0x4000

// OffsetMask keeps only the bits of an address that index into a page.
const OffsetMask = PageSize - 1

// Number of pages in each memory type.
const (
	NumPagesMain = 32
	NumPages1MB  = 64

	// external memory is added in 1MB blocks
	MaxExternalMB    = 4
	NumPagesExternal = NumPages1MB * MaxExternalMB
)

// Page indexes. The index ranges are fixed and imply the Role of each page.
const (
	OriginMain     = 0
	OriginExternal = OriginMain + NumPagesMain
	ROM0           = OriginExternal + NumPagesExternal
	ROM1           = ROM0 + 1

	// ScratchRead is a page that nothing is ever written to
	ScratchRead = ROM1 + 1

	// ScratchWrite is the write sink. writes to protected or absent memory
	// are redirected here and are never read back through a read mapping
	ScratchWrite = ScratchRead + 1

	TotalPages = ScratchWrite + 1
)

// Main RAM size options in kilobytes.
const (
	MainRAMFull    = 512
	MainRAMReduced = 256
)

// Role of a page. Roles are implied by index range.
type Role int

// List of valid Role values.
const (
	Undefined Role = iota
	RAM
	External
	ROM
	Scratch
)

func (r Role) String() string {
	switch r {
	case RAM:
		return "RAM"
	case External:
		return "External"
	case ROM:
		return "ROM"
	case Scratch:
		return "Scratch"
	}
	return "undefined"
}

// RoleOf returns the role of the page index. Indexes outside the page pool
// return Undefined.
func RoleOf(page int) Role {
	switch {
	case page < OriginMain:
		return Undefined
	case page < OriginExternal:
		return RAM
	case page < ROM0:
		return External
	case page <= ROM1:
		return ROM
	case page < TotalPages:
		return Scratch
	}
	return Undefined
}

// ExternalBlock returns the 1MB block number (0 to MaxExternalMB-1) of an
// external memory page. The second return value is false if the page is not
// external memory.
func ExternalBlock(page int) (int, bool) {
	if RoleOf(page) != External {
		return 0, false
	}
	return (page - OriginExternal) / NumPages1MB, true
}

// The CPU address space is divided into four sections.
const (
	NumSections = 4
	SectionSize = PageSize
)

// Section identifies one of the four 16K slices of the CPU address space.
type Section int

// List of valid Section values.
const (
	SectionA Section = iota
	SectionB
	SectionC
	SectionD
)

func (s Section) String() string {
	switch s {
	case SectionA:
		return "A"
	case SectionB:
		return "B"
	case SectionC:
		return "C"
	case SectionD:
		return "D"
	}
	return "?"
}

// MapAddress returns the section and the offset into the section for a CPU
// address.
func MapAddress(address uint16) (Section, uint16) {
	return Section(address >> 14), address & OffsetMask
}
