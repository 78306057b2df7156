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
)

// the size of the pool in bytes
const poolSize = memorymap.TotalPages * memorymap.PageSize

// allocator functions return a slice of size bytes.
type allocator func(size int) ([]uint8, error)

func defaultAllocator(size int) (data []uint8, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return make([]uint8, size), nil
}

// pool is the single allocation that holds every page.
type pool struct {
	data  []uint8
	alloc allocator
}

// allocate the pool if it hasn't been allocated already. returns true if a new
// allocation was made.
func (p *pool) allocate() (bool, error) {
	if p.data != nil {
		return false, nil
	}

	alloc := p.alloc
	if alloc == nil {
		alloc = defaultAllocator
	}

	d, err := alloc(poolSize)
	if err != nil {
		return false, curated.Errorf(OutOfMemory, err)
	}
	if len(d) < poolSize {
		return false, curated.Errorf(OutOfMemory, fmt.Sprintf("%d bytes allocated", len(d)))
	}

	p.data = d[:poolSize]
	p.stripe()

	return true, nil
}

// stripe RAM with alternating runs of 128 bytes of 0x00 and 128 bytes of 0xff,
// which is the power-on pattern of the real machine. ROM and scratch pages are
// filled with 0xff.
func (p *pool) stripe() {
	ram := p.data[:memorymap.ROM0*memorymap.PageSize]
	for i := 0; i < len(ram); i += 256 {
		clear(ram[i : i+128])
		fill(ram[i+128:i+256], 0xff)
	}
	fill(p.data[memorymap.ROM0*memorymap.PageSize:], 0xff)
}

func fill(d []uint8, v uint8) {
	for i := range d {
		d[i] = v
	}
}

func (p *pool) release() {
	p.data = nil
}

func (p *pool) allocated() bool {
	return p.data != nil
}

// span returns n pages starting at idx. the capacity of the slice is limited so
// that an append cannot write into the following page.
func (p *pool) span(idx int, n int) []uint8 {
	s := idx * memorymap.PageSize
	e := s + n*memorymap.PageSize
	return p.data[s:e:e]
}

func (p *pool) page(idx int) []uint8 {
	return p.span(idx, 1)
}
