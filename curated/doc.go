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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies the error. Packages that emit errors that
// callers are expected to check for declare the pattern as an exported const.
// For example, the memory package declares:
//
//	const OutOfMemory = "memory: out of memory: %v"
//
// and a caller of memory.Initialise() can check for the condition with:
//
//	if curated.Is(err, memory.OutOfMemory) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	e := curated.Errorf(memory.OutOfMemory, "pool")
//	f := curated.Errorf("coupe: %v", e)
//
//	curated.Has(f, memory.OutOfMemory) // true
//	curated.Is(f, memory.OutOfMemory)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of curated errors as "expected" errors, in the
// sense that the emulation knows how to handle them, and uncurated errors as
// "unexpected".
//
// The Error() implementation normalises the error chain by removing adjacent
// duplicate parts. For example, if a function wraps an error with the prefix
// "memory: " and that error already begins with "memory: " then the final
// message will be:
//
//	memory: page out of range (300)
//
// and not:
//
//	memory: memory: page out of range (300)
//
// Parts of the chain are separated by the sub-string ": " as suggested on p239
// of "The Go Programming Language" (Donovan, Kernighan).
package curated
