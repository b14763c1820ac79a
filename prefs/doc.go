// This file is part of GopherBK.
//
// GopherBK is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherBK is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherBK.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the storing of preferential values in GopherBK.
// Preference values are live values that can be changed at any time by the
// user interface (the debugger, a script or the command line) and read at any
// time by the emulation.
//
// The typed values (Bool, String, Int and Float) are safe to use from more
// than one goroutine. Callbacks can be registered with SetHookPre() and
// SetHookPost() to validate or react to a change in value.
//
// A Disk instance associates a group of values with a key and a file. Values
// in the file that are not part of the Disk's group are preserved when the
// file is saved, so many Disk instances can share the same file:
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("cpu.illegal", &p.Illegal)
//	err = dsk.Load()
//
// Preference values can also be specified for a single session on the command
// line. See PushCommandLineStack() for the format.
package prefs
