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
	"github.com/coupemu/coupe/hardware/memory/memorymap"
	"github.com/coupemu/coupe/logger"
	"github.com/coupemu/coupe/romloader"
)

// loadROMs reads the ROM images into the ROM pages. The primary image can
// contain both ROM pages. If it doesn't then ROM1 is loaded from the second
// image.
func (mem *Memory) loadROMs() {
	rom0, rom1 := mem.opts.ROMImages()
	if mem.loadROM(rom0, memorymap.ROM0, 2) < 2 {
		mem.loadROM(rom1, memorymap.ROM1, 1)
	}
}

// loadROM reads up to count pages from the image into the memory read from at
// the page. returns the number of whole pages read. failures are logged and
// leave the ROM pages as they were.
func (mem *Memory) loadROM(filename string, page int, count int) int {
	ld := romloader.NewLoader(filename)

	n, err := ld.CopyTo(mem.pool.span(mem.Pages.Read(page), count))
	if err != nil {
		logger.Logf(logger.Allow, "memory", "failed to open ROM image: %v", err)
		return 0
	}

	if n == 0 {
		logger.Logf(logger.Allow, "memory", "ROM image is too short: %s", ld.ShortName())
		return 0
	}

	logger.Logf(logger.Allow, "memory", "%d ROM page(s) from %s", n, ld.ShortName())

	return n
}
