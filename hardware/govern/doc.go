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

// Package govern defines the state of the emulation and the Governor that
// controls moving between states.
//
// The emulation loop runs on a single goroutine. Other goroutines (the
// monitor, a signal handler, a script) ask for a state change through the
// Governor. The loop checks the state once per iteration and blocks in
// Wait() while the emulation is paused.
package govern
