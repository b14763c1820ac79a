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

// Package debugger implements a terminal monitor for the BK emulation.
// Features include:
//
//	- disassembly with labels
//	- memory peek and poke
//	- instruction stepping and single key stepping
//	- breakpoints on register values
//	- watches on memory
//	- snapshots of machine state
//	- monitor command files and Lua scripts
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(computer, term)
//
// The term argument must be an instance of a type that satisfies the
// terminal.Terminal interface. The colorterm and plainterm sub-packages of
// the terminal package provide suitable implementations.
//
// Once initialised, the debugger can be started with the Start() function.
//
//	dbg.Start(initScript)
//
// The initScript is a file of monitor commands, one per line, that is run
// before input is read from the terminal. It can be empty.
//
// Start() returns when the QUIT command is entered or the terminal input is
// exhausted. A running emulation can be halted from another goroutine with
// the Interrupt() function.
package debugger
