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
	"fmt"

	"github.com/coupemu/coupe/hardware/memory/memorymap"
)

// Configuration of memory sizes. The page table is rebuilt from a
// Configuration on every call to Initialise().
type Configuration struct {
	// size of main RAM in kilobytes
	MainRAM int

	// number of megabytes of external memory
	ExternalMB int
}

func (cfg Configuration) String() string {
	return fmt.Sprintf("%dK main RAM, %dMB external", cfg.MainRAM, cfg.ExternalMB)
}

// Normalise returns a Configuration with values that are valid. Any MainRAM
// value other than memorymap.MainRAMReduced is treated as the full amount.
// ExternalMB is clamped to the range 0 to memorymap.MaxExternalMB.
func (cfg Configuration) Normalise() Configuration {
	if cfg.MainRAM != memorymap.MainRAMReduced {
		cfg.MainRAM = memorymap.MainRAMFull
	}
	cfg.ExternalMB = min(max(cfg.ExternalMB, 0), memorymap.MaxExternalMB)
	return cfg
}
