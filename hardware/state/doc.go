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

// Package state is the key-value container used to save and restore the
// state of the emulated machine.
//
// Components that implement the bus.Stateful interface add their values to a
// Store with the Set*() functions and retrieve them with the typed getter
// functions. A getter returns a curated error if the key is missing or if the
// value is of the wrong type. Components must check every value they need
// before changing any of their own state, so that a failed restore never
// leaves a component half updated.
//
// Keys are conventionally the component's label and a field name separated by
// a dot. For example, "cpu.r7" or "ram.data".
package state
