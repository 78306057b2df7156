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

	"github.com/coupemu/coupe/curated"
	"github.com/coupemu/coupe/hardware/memory/memorymap"
	"github.com/coupemu/coupe/hardware/memory/mode1"
	"github.com/coupemu/coupe/logger"
)

// Sentinel error patterns returned by the memory package.
const (
	OutOfMemory    = "memory: out of memory: %v"
	NotAllocated   = "memory: pool has not been allocated"
	PageRange      = "memory: page out of range (%d)"
	OffsetRange    = "memory: offset out of range (%#04x)"
	LengthRange    = "memory: length out of range (%d)"
	SectionInvalid = "memory: invalid section (%d)"
)

// Options provides the values that shape the memory configuration. The
// hardware/preferences package implements this interface.
type Options interface {
	MainRAMSize() int
	ExternalMemory() int
	ROMImages() (string, string)
}

// defaultOptions are used if NewMemory() is called with a nil Options.
type defaultOptions struct{}

func (defaultOptions) MainRAMSize() int            { return memorymap.MainRAMFull }
func (defaultOptions) ExternalMemory() int         { return 0 }
func (defaultOptions) ROMImages() (string, string) { return "samcoupe.rom", "" }

// Memory is the memory subsystem of the emulated machine. The CPU and video
// subsystems should be given a reference to the single Memory instance.
//
// Initialisation is the only time the pool and the page table are changed.
// Nothing else may access memory while Initialise() is running.
type Memory struct {
	opts Options
	pool pool
	cfg  Configuration

	// the page table is built on every call to Initialise(). it should be
	// treated as read-only outside of this package
	Pages PageTable

	// lookup tables for the mode 1 display. nil until Initialise() has been
	// called
	Mode1 *mode1.Tables

	// the page mapped into each section of the CPU address space
	sections [memorymap.NumSections]int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Initialise() must be called with firstInit set to true before the memory can
// be used.
func NewMemory(opts Options) *Memory {
	if opts == nil {
		opts = defaultOptions{}
	}
	return &Memory{opts: opts}
}

func (mem *Memory) String() string {
	return mem.cfg.String()
}

// Initialise the memory. The pool is allocated if firstInit is true and it
// hasn't been allocated already. Subsequent initialisations reuse the pool and
// RAM contents are not changed.
//
// The page table is rebuilt from the current Options and the ROM images are
// reloaded. The only error returned is a failure to allocate the pool, or
// NotAllocated if firstInit is false and the pool has never been allocated.
// ROM loading problems are logged.
func (mem *Memory) Initialise(firstInit bool) error {
	if firstInit {
		newPool, err := mem.pool.allocate()
		if err != nil {
			logger.Log(logger.Allow, "memory", err)
			return err
		}
		if newPool {
			mem.resetSections()
		}
	} else if !mem.pool.allocated() {
		return curated.Errorf(NotAllocated)
	}

	mem.cfg = Configuration{
		MainRAM:    mem.opts.MainRAMSize(),
		ExternalMB: mem.opts.ExternalMemory(),
	}.Normalise()

	mem.Pages.Rebuild(mem.cfg)
	mem.Mode1 = mode1.NewTables()
	mem.loadROMs()

	logger.Logf(logger.Allow, "memory", "initialised: %s", mem.cfg)

	return nil
}

// Teardown releases the pool, unless the memory is being torn down before
// being initialised again.
func (mem *Memory) Teardown(reinit bool) {
	if reinit {
		return
	}
	mem.pool.release()
	mem.Mode1 = nil
}

// Configuration returns the configuration used by the most recent call to
// Initialise().
func (mem *Memory) Configuration() Configuration {
	return mem.cfg
}

func (mem *Memory) checkPage(page int) error {
	if !mem.pool.allocated() {
		return curated.Errorf(NotAllocated)
	}
	if page < 0 || page >= memorymap.TotalPages {
		return curated.Errorf(PageRange, page)
	}
	return nil
}

// ReadPage returns the memory that should be used when reading from the page.
// The returned slice must not be written to.
func (mem *Memory) ReadPage(page int) ([]uint8, error) {
	if err := mem.checkPage(page); err != nil {
		return nil, err
	}
	return mem.pool.page(mem.Pages.Read(page)), nil
}

// WritePage returns the memory that should be used when writing to the page.
func (mem *Memory) WritePage(page int) ([]uint8, error) {
	if err := mem.checkPage(page); err != nil {
		return nil, err
	}
	p := mem.Pages.Write(page)
	assertWrite(p)
	return mem.pool.page(p), nil
}

// Physical returns the memory of the page in the pool, ignoring the page
// table. Intended for debugging and for the video subsystem.
func (mem *Memory) Physical(page int) ([]uint8, error) {
	if err := mem.checkPage(page); err != nil {
		return nil, err
	}
	return mem.pool.page(page), nil
}

// Peek returns the value at the offset in the page, as read through the page
// table.
func (mem *Memory) Peek(page int, offset uint16) (uint8, error) {
	if offset >= memorymap.PageSize {
		return 0, curated.Errorf(OffsetRange, offset)
	}
	d, err := mem.ReadPage(page)
	if err != nil {
		return 0, err
	}
	return d[offset], nil
}

// Poke writes the value to the offset in the page, through the page table.
// Writing to protected or absent memory is not an error.
func (mem *Memory) Poke(page int, offset uint16, data uint8) error {
	if offset >= memorymap.PageSize {
		return curated.Errorf(OffsetRange, offset)
	}
	d, err := mem.WritePage(page)
	if err != nil {
		return err
	}
	d[offset] = data
	return nil
}

// Dump returns a hex dump of length bytes of the page from the offset, as
// read through the page table. The dump stops at the end of the page.
func (mem *Memory) Dump(page int, offset uint16, length int) (string, error) {
	if length < 0 {
		return "", curated.Errorf(LengthRange, length)
	}

	d, err := mem.ReadPage(page)
	if err != nil {
		return "", err
	}
	if int(offset) >= len(d) {
		return "", curated.Errorf(OffsetRange, offset)
	}
	d = d[offset:min(int(offset)+length, len(d))]

	var s string
	for i := 0; i < len(d); i += 16 {
		s += fmt.Sprintf("%04x : % 02x\n", int(offset)+i, d[i:min(i+16, len(d))])
	}
	return s, nil
}
