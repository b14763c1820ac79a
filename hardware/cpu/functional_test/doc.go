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

// Package functional_test runs a short self-checking PDP-11 program on the CPU
// with a real memory bus. The program loops on the same address when a check
// fails and on the success address when all checks have passed.
//
// The program exercises the SOB loop, subroutine calls, byte copying with
// autoincrement, the EMT trap and recovery from a bus error.
package functional_test
