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

//go:build assertions

package memory

import (
	"fmt"

	"github.com/coupemu/coupe/hardware/memory/memorymap"
)

// assertWrite panics if a write has been directed to a page that should never
// be written to.
func assertWrite(page int) {
	if memorymap.RoleOf(page) == memorymap.ROM || page == memorymap.ScratchRead {
		panic(fmt.Sprintf("memory: write directed to read-only page %d (%s)", page, memorymap.RoleOf(page)))
	}
}

// assertAllocated panics if the pool has not been allocated.
func assertAllocated(p *pool) {
	if !p.allocated() {
		panic(NotAllocated)
	}
}
