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

// Package romloader is used to read ROM images into the ROM pages of the
// emulated machine.
//
// ROM images come in two forms. A raw image is simply the ROM data, one or
// two pages long. The other form is a ZX82 file as used by some distributed
// ROM images. These begin with the four byte signature "ZX82" and a header of
// fixed size. The header is skipped and no other part of it is interpreted.
//
// The simplest use of the package:
//
//	ld := romloader.NewLoader("samcoupe.rom")
//	n, err := ld.CopyTo(rom)
//
// CopyTo() returns the number of whole pages copied.
//
// The filename is resolved first relative to the location of the coupe
// executable and then as given. Filenames with an http or https scheme are
// fetched over the network.
package romloader
