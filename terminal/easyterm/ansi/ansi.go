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

// Package ansi defines the small number of ANSI control codes needed to
// colour terminal output.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
var colors = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	for c := range colors {
		if c == "NORMAL" {
			continue
		}
		k := strings.ToLower(c)
		Pens[k], _ = ColorBuild(c, true)
		DimPens[k], _ = ColorBuild(c, false)
	}
}

// ColorBuild creates the ANSI sequence for a pen of the named colour.
func ColorBuild(pen string, bright bool) (string, error) {
	col, ok := colors[strings.ToUpper(pen)]
	if !ok {
		return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
	}

	target := targetPen
	if bright {
		target = targetBrightPen
	}

	return fmt.Sprintf("\033[%d%dm", target, col), nil
}
