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

package logger

// Permission is consulted by the Log() and Logf() functions before an entry
// is added. Packages that want to silence themselves in some circumstances
// (during a test for example) can pass their own implementation.
type Permission interface {
	AllowLogging() bool
}

// permitted is a fixed answer to AllowLogging().
type permitted bool

func (p permitted) AllowLogging() bool {
	return bool(p)
}

// Allow is the permission used by code that always logs.
var Allow Permission = permitted(true)
