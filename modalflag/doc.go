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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are supplied with NewArgs() and then parsed with Parse(). Flags
// are added in the same way as the flag package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "debug", "script")
//	verbose := md.AddBool("log", false, "echo log to stderr")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a special command line argument that puts the program into a
// different mode of operation. If the first argument after the flags is one of
// the sub-modes given to AddSubModes() then that becomes the Mode(). If it is
// not, the first sub-mode in the list is the default.
//
// Each mode can then define its own flags and sub-modes by calling NewMode()
// and Parse() again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		model := md.AddString("model", "BK0010", "machine model")
//		_, _ = md.Parse()
//		run(*model, md.GetArg(0))
//	}
//
// Sub-mode comparisons are case insensitive. The Path() function returns all
// the modes encountered so far, separated by a slash.
package modalflag
