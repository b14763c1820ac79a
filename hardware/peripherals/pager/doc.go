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

// Package pager implements the memory selection registers of the BK-0011M.
//
// The Pager shares its address with the system register. A word written to
// that address with bit 11 set selects the RAM page visible in each of the
// two RAM windows, or one of the ROM banks in the second window.
//
// The Extension register controls the optional extension memory in the top
// slot of the address space. It enables the memory, chooses which page of
// the extension is visible and which segment of that page, and can protect
// the window from writes.
package pager
