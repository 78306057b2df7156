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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Arguments are given with NewArgs() and then processed with Parse(). Flags
// are added before the call to Parse() in the same way as with a
// flag.FlagSet:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	log := md.AddBool("log", false, "echo log to stdout")
//	md.AddSubModes("MAP", "MODE1", "DOT", "PEEK")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a command line argument that puts the program into a different
// mode of operation, in the way that the go command has build, test, doc
// modes. After Parse(), the Mode() function returns the selected sub-mode. If
// the argument following the flags is not one of the sub-modes then the first
// sub-mode added is selected.
//
// Each mode can have its own flags by calling NewMode() and then Parse()
// again:
//
//	switch md.Mode() {
//	case "PEEK":
//		md.NewMode()
//		page := md.AddInt("page", 0, "page to dump")
//		_, _ = md.Parse()
//		dump(*page, md.RemainingArgs())
//	}
//
// Sub-mode comparisons are case insensitive and Mode() always returns the
// sub-mode in upper case.
package modalflag
