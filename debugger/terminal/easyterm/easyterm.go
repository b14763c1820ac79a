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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios functions in functions with friendlier
// names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Sentinel errors returned by Initialise().
const (
	NotATerminal = "easyterm: %s is not a terminal"
)

// Geometry contains the dimensions of the output terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	crit     sync.Mutex
	geometry Geometry

	sigwinch chan os.Signal
	done     chan bool
}

// Initialise the Terminal. Both files must be terminals.
func (et *Terminal) Initialise(input, output *os.File) error {
	if !term.IsTerminal(int(input.Fd())) {
		return curated.Errorf(NotATerminal, input.Name())
	}
	if !term.IsTerminal(int(output.Fd())) {
		return curated.Errorf(NotATerminal, output.Name())
	}

	et.input = input
	et.output = output

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	_ = et.UpdateGeometry()

	et.sigwinch = make(chan os.Signal, 1)
	et.done = make(chan bool)
	signal.Notify(et.sigwinch, unix.SIGWINCH)

	go func() {
		for {
			select {
			case <-et.sigwinch:
				_ = et.UpdateGeometry()
			case <-et.done:
				return
			}
		}
	}()

	return nil
}

// CleanUp returns the terminal to canonical mode and stops the geometry
// watcher.
func (et *Terminal) CleanUp() {
	if et.done == nil {
		return
	}
	signal.Stop(et.sigwinch)
	close(et.done)
	et.done = nil
	et.CanonicalMode()
}

// TermPrint writes the string to the output file.
func (et *Terminal) TermPrint(s string) {
	_, _ = et.output.WriteString(s)
}

// UpdateGeometry reads the current dimensions of the output terminal.
func (et *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.crit.Lock()
	defer et.crit.Unlock()
	et.geometry = Geometry{Rows: int(ws.Row), Cols: int(ws.Col)}

	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (et *Terminal) Geometry() Geometry {
	et.crit.Lock()
	defer et.crit.Unlock()
	return et.geometry
}

// CanonicalMode puts the terminal into normal, line by line, mode.
func (et *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
}

// CBreakMode puts the terminal into cbreak mode. Input is available one
// character at a time and is not echoed.
func (et *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.cbreakAttr)
}

// ReadKey reads a single byte from the input file. The terminal should be in
// cbreak mode.
func (et *Terminal) ReadKey() (byte, error) {
	var b [1]byte
	if _, err := et.input.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Flush makes sure the terminal's input and output buffers are empty.
func (et *Terminal) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	return termios.Tcflush(et.output.Fd(), termios.TCOFLUSH)
}
