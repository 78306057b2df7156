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

// Package mode1 contains the lookup tables for converting between offsets in
// the mode 1 display memory and screen lines.
//
// Mode 1 display memory is not stored in screen line order. Each line is a
// run of 32 bytes but the runs are arranged in a scrambled order. The screen
// line for an offset is made up of three bit fields of the offset:
//
//	offset bits 11-12 -> line bits 6-7
//	offset bits 5-7   -> line bits 3-5
//	offset bits 8-10  -> line bits 0-2
//
// The tables are a pure function of the offset and are the same for every
// machine configuration.
package mode1

// Dimensions of the mode 1 display.
const (
	ScreenLines  = 192
	ScreenBlocks = 32

	// DisplaySize is the number of bytes in the mode 1 display memory
	DisplaySize = ScreenLines * ScreenBlocks
)

// Tables for fast conversion between display offsets and screen lines.
type Tables struct {
	// the offset of the first byte of the run for each line
	LineToOffset [ScreenLines]uint16

	// the screen line for every offset in display memory
	OffsetToLine [DisplaySize]uint8
}

// Line returns the screen line of a display offset.
func Line(offset int) uint8 {
	return uint8(((offset >> 5) & 0xc0) | ((offset >> 2) & 0x38) | ((offset >> 8) & 0x07))
}

// NewTables is the preferred method of initialisation for the Tables type.
func NewTables() *Tables {
	t := &Tables{}
	for o := range DisplaySize {
		l := Line(o)
		t.OffsetToLine[o] = l

		// every offset in a 32 byte run has the same line so the inverse table
		// records the start of the run
		t.LineToOffset[l] = uint16(o &^ 0x1f)
	}
	return t
}

// Offset returns the display offset of the first byte of a screen line.
func (t *Tables) Offset(line int) uint16 {
	return t.LineToOffset[line]
}

// Line returns the screen line of a display offset.
func (t *Tables) Line(offset int) uint8 {
	return t.OffsetToLine[offset]
}
