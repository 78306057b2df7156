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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing the page ranges of
// each role. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	start := 0
	current := RoleOf(0)

	for p := 1; p <= TotalPages; p++ {
		r := RoleOf(p)
		if r != current {
			s.WriteString(fmt.Sprintf("%03d -> %03d\t%s\n", start, p-1, current))
			current = r
			start = p
		}
	}

	return s.String()
}
