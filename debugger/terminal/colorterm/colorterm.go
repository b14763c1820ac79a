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

// Package colorterm implements the Terminal interface for the monitor. It
// supports colour output and single key input.
package colorterm

import (
	"bufio"
	"os"
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/debugger/terminal"
	"github.com/jetsetilly/gopherbk/debugger/terminal/easyterm"
	"github.com/jetsetilly/gopherbk/debugger/terminal/easyterm/ansi"
)

// ColorTerminal implements the terminal.Terminal interface. The terminal is
// kept in canonical mode except while waiting for a single key press.
type ColorTerminal struct {
	easyterm.Terminal

	reader   *bufio.Reader
	silenced bool
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.reader = bufio.NewReader(os.Stdin)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint(ansi.NormalPen)
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleInstrument:
		ct.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleCPUStep:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleLog:
		ct.TermPrint(ansi.DimPens["green"])
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint("\n")
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.TermPrint(ansi.PenStyles["bold"])
	ct.TermPrint(prompt)
	ct.TermPrint(ansi.NormalPen)

	s, err := ct.reader.ReadString('\n')
	if err != nil {
		return "", curated.Errorf(terminal.UserAbort)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// TermReadKey implements the terminal.Input interface. The terminal is put
// into cbreak mode for the duration of the read.
func (ct *ColorTerminal) TermReadKey(prompt string) (byte, error) {
	ct.TermPrint(ansi.PenStyles["bold"])
	ct.TermPrint(prompt)
	ct.TermPrint(ansi.NormalPen)

	ct.CBreakMode()
	defer ct.CanonicalMode()

	k, err := ct.ReadKey()
	ct.TermPrint("\r")
	ct.TermPrint(ansi.ClearLine)
	if err != nil {
		return 0, curated.Errorf(terminal.UserAbort)
	}

	switch k {
	case easyterm.KeyInterrupt:
		return 0, curated.Errorf(terminal.UserInterrupt)
	case easyterm.KeyEOF:
		return 0, curated.Errorf(terminal.UserAbort)
	case easyterm.KeySuspend:
		ct.CanonicalMode()
		_ = easyterm.SuspendProcess()
		return 0, nil
	case easyterm.KeyLineFeed:
		return easyterm.KeyCarriageReturn, nil
	}

	return k, nil
}
