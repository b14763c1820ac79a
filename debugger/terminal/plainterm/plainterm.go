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

// Package plainterm implements the Terminal interface for the monitor. It's
// as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the most basic terminal interface. It keeps the terminal
// in whatever mode it started, probably cooked mode.
type PlainTerminal struct {
	input    *bufio.Reader
	output   io.Writer
	real     bool
	silenced bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. If input or output are nil then the standard input and
// output are used.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}

	pt := &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}

	if f, ok := input.(*os.File); ok {
		pt.real = term.IsTerminal(int(f.Fd()))
	}

	return pt
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}
	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	_, _ = fmt.Fprintln(pt.output, s)
}

// TermRead implements the terminal.Input interface. The end of the input is
// treated as a request to end the session.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if pt.real {
		_, _ = io.WriteString(pt.output, prompt)
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if s != "" {
				return strings.TrimRight(s, "\r\n"), nil
			}
			return "", curated.Errorf(terminal.UserAbort)
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// TermReadKey implements the terminal.Input interface. A line of input is
// read and the first character returned. An empty line is returned as a
// carriage return.
func (pt *PlainTerminal) TermReadKey(prompt string) (byte, error) {
	s, err := pt.TermRead(prompt)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return '\r', nil
	}
	return s[0], nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.real
}
