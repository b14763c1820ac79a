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

// Package commandline divides monitor input into tokens and converts tokens
// into numbers.
//
// Numbers are octal by default, as is usual for the PDP-11. A trailing
// decimal point marks a decimal number and a leading dollar sign or 0x marks
// a hexadecimal number:
//
//	1000   octal
//	512.   decimal
//	$200   hexadecimal
//	0x200  hexadecimal
package commandline
