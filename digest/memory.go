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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/coupemu/coupe/curated"
)

// PageReader is implemented by memory.Memory.
type PageReader interface {
	ReadPage(page int) ([]uint8, error)
}

// Memory is an implementation of the Digest interface for memory pages. Pages
// are hashed as they are seen through the page table, not as they are stored
// in the pool.
type Memory struct {
	digest [sha1.Size]byte
	data   []byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Hash implements digest.Digest interface.
func (dig *Memory) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Memory) ResetDigest() {
	clear(dig.digest[:])
}

// Update the digest with the contents of the pages from first to last
// inclusive. Digests are chained so the result depends on every previous call
// to Update() since the last ResetDigest().
func (dig *Memory) Update(mem PageReader, first int, last int) error {
	dig.data = append(dig.data[:0], dig.digest[:]...)

	for p := first; p <= last; p++ {
		d, err := mem.ReadPage(p)
		if err != nil {
			return curated.Errorf("digest: %v", err)
		}
		dig.data = append(dig.data, d...)
	}

	dig.digest = sha1.Sum(dig.data)
	return nil
}
