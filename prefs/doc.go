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

// Package prefs facilitates the storage of preferences to disk.
//
// Preference values are declared as one of the types in the package (Bool,
// Int, String) and added to a Disk instance with a key. The key is the name
// the value is stored under in the preferences file:
//
//	var mainRAM prefs.Int
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("memory.mainRAM", &mainRAM)
//	err = dsk.Load()
//
// A preferences file can be shared by more than one Disk instance. Save()
// will preserve the entries in the file that do not belong to the Disk being
// saved.
//
// Values can be overridden for the duration of a session with the command
// line stack. See PushCommandLineStack() for the format of the prefs string.
package prefs
