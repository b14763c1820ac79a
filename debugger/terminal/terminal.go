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

package terminal

// Style of the line being printed. Terminal implementations are free to
// ignore the style.
type Style int

// List of terminal styles.
const (
	// output from commands
	StyleFeedback Style = iota

	// help text
	StyleHelp

	// registers and other machine state
	StyleInstrument

	// disassembly of the instruction at the PC
	StyleCPUStep

	// log entries echoed to the terminal
	StyleLog

	// errors are always printed, even when the terminal is silenced
	StyleError
)

// Sentinel errors returned by TermRead() and TermReadKey().
const (
	UserInterrupt = "terminal: user interrupt"
	UserAbort     = "terminal: user abort"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// read a line of input. the line does not include the line ending
	TermRead(prompt string) (string, error)

	// read a single key press. terminals that can't do this should return
	// the first character of a line of input
	TermReadKey(prompt string) (byte, error)

	// returns true for implementations that require user interaction
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// initialise the terminal. not all implementations need to do anything
	Initialise() error

	// restore the terminal to its original state
	CleanUp()

	// silence all output except errors
	Silence(silenced bool)
}
