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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/coupemu/coupe/hardware/memory"
	"github.com/coupemu/coupe/hardware/memory/memorymap"
	"github.com/coupemu/coupe/hardware/memory/mode1"
)

// styles for each page role. the renderer decides if the output supports
// colour
type styles struct {
	roles  map[memorymap.Role]lipgloss.Style
	header lipgloss.Style
}

func newStyles(output io.Writer) styles {
	r := lipgloss.NewRenderer(output)
	return styles{
		roles: map[memorymap.Role]lipgloss.Style{
			memorymap.RAM:      r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
			memorymap.External: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
			memorymap.ROM:      r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
			memorymap.Scratch:  r.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		},
		header: r.NewStyle().Bold(true),
	}
}

func access(r memory.Region) string {
	switch {
	case r.Readable && r.Writable:
		return "read/write"
	case r.Readable:
		return "read only"
	case r.Writable:
		return "write only"
	}
	return "unbacked"
}

func writeRegions(output io.Writer, mem *memory.Memory) {
	st := newStyles(output)

	fmt.Fprintln(output, st.header.Render(mem.String()))
	for _, r := range mem.Pages.Regions() {
		role := fmt.Sprintf("%-8s", r.Role)
		fmt.Fprintf(output, "%03d -> %03d\t%s\t%s (%d pages)\n", r.First, r.Last,
			st.roles[r.Role].Render(role), access(r), r.Pages())
	}
}

// writeBar draws the regions as a bar of width columns. every region is at
// least one column wide
func writeBar(output io.Writer, mem *memory.Memory, width int) {
	st := newStyles(output)

	var b strings.Builder
	for _, r := range mem.Pages.Regions() {
		n := max(1, r.Pages()*width/memorymap.TotalPages)
		c := "█"
		if !r.Writable {
			c = "▒"
		}
		if !r.Readable {
			c = "░"
		}
		b.WriteString(st.roles[r.Role].Render(strings.Repeat(c, n)))
	}
	fmt.Fprintln(output, b.String())
}

func writeSummary(output io.Writer) {
	io.WriteString(output, memorymap.Summary())
}

func writeMode1(output io.Writer, tables *mode1.Tables, line int) error {
	if line >= mode1.ScreenLines {
		return fmt.Errorf("line out of range (%d)", line)
	}

	if line >= 0 {
		fmt.Fprintf(output, "line %03d : %#04x\n", line, tables.Offset(line))
		return nil
	}

	for l := range mode1.ScreenLines {
		fmt.Fprintf(output, "line %03d : %#04x\n", l, tables.Offset(l))
	}
	return nil
}
