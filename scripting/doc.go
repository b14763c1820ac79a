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

// Package scripting runs Lua scripts against a hardware.Computer. Scripts
// drive the emulation and inspect the machine with a small set of global
// functions:
//
//	step([n])            execute n instructions (default 1)
//	run(ticks)           execute instructions for at least the number of ticks
//	ticks()              the current tick count
//	peek(addr)           read a word without side effects. nil if unmapped
//	poke(addr, value)    write a word without side effects. can change ROM
//	read(addr [, byte])  read through the bus, including device registers
//	write(addr, value [, byte])
//	                     write through the bus. false if nothing accepted it
//	reg(n [, value])     read or write register n (0 to 7)
//	pc([value])          read or write the program counter
//	psw([value])         read or write the processor status word
//	interrupt(vector)    request a vectored interrupt
//	reset()              soft reset
//	hardreset()          power on reset
//	disasm(addr)         disassembly of the instruction at addr and the
//	                     address of the next instruction
//	label(addr, name)    add a label used by the disassembly
//	load(origin, file)   load a raw image into memory
//	loadbin(file)        load a BK binary file. returns the origin
//	print(...)           write to the script's output
//
// Numbers are passed and returned as Lua numbers. Use Lua's own octal
// conversion (tonumber("1000", 8)) where octal constants are wanted.
package scripting
