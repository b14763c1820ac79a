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

package debugger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/debugger/commandline"
	"github.com/jetsetilly/gopherbk/debugger/terminal"
	"github.com/jetsetilly/gopherbk/debugger/terminal/easyterm"
	"github.com/jetsetilly/gopherbk/hardware"
	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbk/hardware/govern"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/logger"
	"github.com/jetsetilly/gopherbk/prefs"
	"github.com/jetsetilly/gopherbk/scripting"
)

// debugger keywords
const (
	cmdBreak     = "BREAK"
	cmdClear     = "CLEAR"
	cmdDisasm    = "DISASM"
	cmdDrop      = "DROP"
	cmdHardReset = "HARDRESET"
	cmdHelp      = "HELP"
	cmdKeys      = "KEYS"
	cmdLabel     = "LABEL"
	cmdList      = "LIST"
	cmdLoad      = "LOAD"
	cmdLog       = "LOG"
	cmdLua       = "LUA"
	cmdMap       = "MAP"
	cmdMem       = "MEM"
	cmdPeek      = "PEEK"
	cmdPoke      = "POKE"
	cmdPrefs     = "PREFS"
	cmdQuit      = "QUIT"
	cmdRegs      = "REGS"
	cmdReset     = "RESET"
	cmdRestore   = "RESTORE"
	cmdRun       = "RUN"
	cmdSnapshot  = "SNAPSHOT"
	cmdSource    = "SOURCE"
	cmdSpeed     = "SPEED"
	cmdStep      = "STEP"
	cmdSymbol    = "SYMBOL"
	cmdTrace     = "TRACE"
	cmdWatch     = "WATCH"
)

var commandList = []string{
	cmdBreak, cmdClear, cmdDisasm, cmdDrop, cmdHardReset, cmdHelp, cmdKeys,
	cmdLabel, cmdList, cmdLoad, cmdLog, cmdLua, cmdMap, cmdMem, cmdPeek,
	cmdPoke, cmdPrefs, cmdQuit, cmdRegs, cmdReset, cmdRestore, cmdRun,
	cmdSnapshot, cmdSource, cmdSpeed, cmdStep, cmdSymbol, cmdTrace, cmdWatch,
}

// Sentinel errors returned by parseCommand().
const (
	UnknownCommand   = "debugger: unknown command (%s)"
	AmbiguousCommand = "debugger: ambiguous command (%s could be %s)"
	MissingArgument  = "debugger: %s requires %s"
	UnexpectedArgs   = "debugger: unexpected arguments for %s (%s)"
)

// default number of lines/words for DISASM, MEM and LOG
const (
	disasmLines = 10
	memWords    = 64
	memPerLine  = 8
	logLines    = 10

	// maximum nesting of SOURCE commands
	maxSourceDepth = 8
)

// lookupCommand finds the keyword for the token. The token can be an
// abbreviation of the keyword if it is not ambiguous.
func lookupCommand(s string) (string, error) {
	s = strings.ToUpper(s)

	var matches []string
	for _, c := range commandList {
		if c == s {
			return c, nil
		}
		if strings.HasPrefix(c, s) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return "", curated.Errorf(UnknownCommand, s)
	case 1:
		return matches[0], nil
	}
	return "", curated.Errorf(AmbiguousCommand, s, strings.Join(matches, "/"))
}

// getAddress returns the next token as an address. Labels are accepted in
// place of a number.
func (dbg *Debugger) getAddress(tk *commandline.Tokens, def uint16) (uint16, error) {
	s, ok := tk.Get()
	if !ok {
		return def, nil
	}
	if a, ok := dbg.dsm.Symbols().Search(s); ok {
		return a, nil
	}
	v, err := commandline.ParseNumber(s, 16)
	return uint16(v), err
}

func (dbg *Debugger) parseCommand(tk *commandline.Tokens) error {
	keyword, _ := tk.Get()
	command, err := lookupCommand(keyword)
	if err != nil {
		return err
	}

	switch command {
	case cmdQuit:
		dbg.quit = true
		return nil

	case cmdHelp:
		return dbg.help(tk)

	case cmdStep:
		n, err := tk.GetNumber(32, 1)
		if err != nil {
			return err
		}
		return dbg.step(int(n))

	case cmdRun:
		limit, err := tk.GetNumber(64, 0)
		if err != nil {
			return err
		}
		return dbg.run(limit)

	case cmdKeys:
		return dbg.keys()

	case cmdTrace:
		s, ok := tk.Get()
		if ok {
			switch strings.ToUpper(s) {
			case "ON":
				dbg.trace = true
			case "OFF":
				dbg.trace = false
			default:
				return curated.Errorf(UnexpectedArgs, cmdTrace, s)
			}
		} else {
			dbg.trace = !dbg.trace
		}
		dbg.printLine(terminal.StyleFeedback, "trace: %v", dbg.trace)
		return nil

	case cmdReset:
		dbg.comp.Reset()
		dbg.printNext()
		return nil

	case cmdHardReset:
		dbg.comp.HardReset()
		dbg.printNext()
		return nil

	case cmdRegs:
		return dbg.regs(tk)

	case cmdMem:
		return dbg.mem(tk)

	case cmdPeek:
		if tk.IsEnd() {
			return curated.Errorf(MissingArgument, cmdPeek, "an address")
		}
		for !tk.IsEnd() {
			a, err := dbg.getAddress(tk, 0)
			if err != nil {
				return err
			}
			v := dbg.comp.Mem.Peek(a)
			if v == bus.Error {
				dbg.printLine(terminal.StyleFeedback, "%06o unmapped", a)
			} else {
				dbg.printLine(terminal.StyleFeedback, "%06o = %06o", a&^1, v)
			}
		}
		return nil

	case cmdPoke:
		if tk.Remaining() < 2 {
			return curated.Errorf(MissingArgument, cmdPoke, "an address and a value")
		}
		a, err := dbg.getAddress(tk, 0)
		if err != nil {
			return err
		}
		for !tk.IsEnd() {
			v, err := tk.GetNumber(16, 0)
			if err != nil {
				return err
			}
			if !dbg.comp.Mem.Poke(a, uint16(v)) {
				return curated.Errorf("debugger: cannot poke %06o", a)
			}
			a += 2
		}
		return nil

	case cmdDisasm:
		a, err := dbg.getAddress(tk, dbg.comp.CPU.Regs.PC())
		if err != nil {
			return err
		}
		n, err := tk.GetNumber(16, disasmLines)
		if err != nil {
			return err
		}
		_, err = dbg.dsm.Write(dbg.printStyle(terminal.StyleFeedback), a, int(n))
		return err

	case cmdBreak:
		if tk.IsEnd() {
			dbg.breakpoints.list()
			return nil
		}
		return dbg.breakpoints.parseCommand(tk)

	case cmdWatch:
		if tk.IsEnd() {
			dbg.watches.list()
			return nil
		}
		return dbg.watches.parseCommand(tk)

	case cmdList:
		s, _ := tk.Get()
		switch strings.ToUpper(s) {
		case "BREAKS":
			dbg.breakpoints.list()
		case "WATCHES":
			dbg.watches.list()
		default:
			return curated.Errorf(MissingArgument, cmdList, "BREAKS or WATCHES")
		}
		return nil

	case cmdDrop:
		s, _ := tk.Get()
		n, err := tk.GetNumber(16, 0)
		if err != nil {
			return err
		}
		switch strings.ToUpper(s) {
		case "BREAK":
			return dbg.breakpoints.drop(int(n))
		case "WATCH":
			return dbg.watches.drop(int(n))
		}
		return curated.Errorf(MissingArgument, cmdDrop, "BREAK or WATCH")

	case cmdClear:
		s, _ := tk.Get()
		switch strings.ToUpper(s) {
		case "BREAKS":
			dbg.breakpoints.clear()
		case "WATCHES":
			dbg.watches.clear()
		case "ALL":
			dbg.breakpoints.clear()
			dbg.watches.clear()
		default:
			return curated.Errorf(MissingArgument, cmdClear, "BREAKS, WATCHES or ALL")
		}
		return nil

	case cmdLabel:
		a, err := dbg.getAddress(tk, 0)
		if err != nil {
			return err
		}
		name, ok := tk.Get()
		if !ok {
			if !dbg.dsm.Symbols().RemoveLabel(a) {
				return curated.Errorf("debugger: no label at %06o", a)
			}
			return nil
		}
		dbg.dsm.Symbols().AddLabel(a, name, true)
		return nil

	case cmdSymbol:
		s, ok := tk.Get()
		if !ok {
			dbg.printLine(terminal.StyleFeedback, "%s", dbg.dsm.Symbols().String())
			return nil
		}
		a, ok := dbg.dsm.Symbols().Search(s)
		if !ok {
			return curated.Errorf("debugger: no symbol matching %s", s)
		}
		sym, _ := dbg.dsm.Symbols().GetSymbol(a)
		dbg.printLine(terminal.StyleFeedback, "%s = %06o", sym, a)
		return nil

	case cmdLog:
		s, _ := tk.Peek()
		if strings.ToUpper(s) == "CLEAR" {
			logger.Clear()
			return nil
		}
		n, err := tk.GetNumber(16, logLines)
		if err != nil {
			return err
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), int(n))
		return nil

	case cmdMap:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.comp.Mem.Summary())
		for _, n := range dbg.comp.MemoryMap() {
			dbg.printMapNode(n, 0)
		}
		return nil

	case cmdSpeed:
		dbg.printLine(terminal.StyleInstrument, "clock: %d kHz  measured: %.2f kHz  pacing: %v  ticks: %d",
			dbg.comp.Prefs.ClockFrequency(), dbg.comp.ActualSpeed(),
			dbg.comp.Prefs.Pacing.Get(), dbg.comp.Clock.Ticks())
		return nil

	case cmdPrefs:
		return dbg.preferences(tk)

	case cmdSnapshot:
		dbg.snapshot = dbg.comp.SaveState()
		dbg.printLine(terminal.StyleFeedback, "snapshot taken at tick %d", dbg.comp.Clock.Ticks())
		return nil

	case cmdRestore:
		if dbg.snapshot == nil {
			return curated.Errorf("debugger: no snapshot to restore")
		}
		if err := dbg.comp.RestoreState(dbg.snapshot); err != nil {
			return err
		}
		dbg.printNext()
		return nil

	case cmdLoad:
		return dbg.load(tk)

	case cmdSource:
		s, ok := tk.Get()
		if !ok {
			return curated.Errorf(MissingArgument, cmdSource, "a filename")
		}
		return dbg.source(s)

	case cmdLua:
		s, ok := tk.Get()
		if !ok {
			return curated.Errorf(MissingArgument, cmdLua, "a filename")
		}
		scr := scripting.NewScript(dbg.comp, dbg.dsm, dbg.printStyle(terminal.StyleFeedback))
		defer scr.Close()
		return scr.RunFile(s)
	}

	return curated.Errorf(UnknownCommand, command)
}

// step the emulation by count instructions. stepping ends early on a halt
// condition
func (dbg *Debugger) step(count int) error {
	dbg.primeHalt()
	for i := range count {
		err := dbg.comp.Step()
		if dbg.trace {
			dbg.printLine(terminal.StyleCPUStep, "%s", dbg.comp.CPU.LastResult.String())
		}
		if err != nil {
			return err
		}
		if i < count-1 {
			if reason, ok := dbg.checkHalt(); ok {
				dbg.printLine(terminal.StyleFeedback, "halted: %s", reason)
				break
			}
		}
	}
	dbg.printNext()
	return nil
}

// run the emulation until a halt condition is met. if limit is not zero then
// the emulation also halts after that many ticks
func (dbg *Debugger) run(limit uint64) error {
	dbg.interrupted.Store(false)
	dbg.primeHalt()

	start := dbg.comp.Clock.Ticks()
	var reason string

	err := dbg.comp.Run(func() (govern.State, error) {
		if dbg.trace {
			dbg.printLine(terminal.StyleCPUStep, "%s", dbg.comp.CPU.LastResult.String())
		}
		if dbg.interrupted.Load() {
			reason = "interrupted"
			return govern.Ending, nil
		}
		if limit > 0 && dbg.comp.Clock.Ticks()-start >= limit {
			reason = fmt.Sprintf("%d ticks", dbg.comp.Clock.Ticks()-start)
			return govern.Ending, nil
		}
		if r, ok := dbg.checkHalt(); ok {
			reason = r
			return govern.Ending, nil
		}
		return govern.Running, nil
	})

	if err != nil {
		dbg.printLine(terminal.StyleError, "%v", err)
		_, _ = dbg.dsm.Write(dbg.printStyle(terminal.StyleCPUStep), dbg.comp.CPU.LastResult.Address, 1)
		return nil
	}

	if reason != "" {
		dbg.printLine(terminal.StyleFeedback, "halted: %s", reason)
	}
	dbg.printNext()
	return nil
}

// primeHalt records the current state of all halt conditions
func (dbg *Debugger) primeHalt() {
	dbg.breakpoints.prime()
	dbg.watches.prime()
}

func (dbg *Debugger) checkHalt() (string, bool) {
	if r, ok := dbg.breakpoints.check(); ok {
		return r, true
	}
	return dbg.watches.check()
}

// keys steps the emulation with single key presses
func (dbg *Debugger) keys() error {
	dbg.printLine(terminal.StyleHelp, "SPACE/RETURN step, R registers, Q quit")
	for {
		k, err := dbg.term.TermReadKey("[KEYS] ")
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return err
		}

		switch k {
		case ' ', easyterm.KeyCarriageReturn, 's', 'S':
			if err := dbg.step(1); err != nil {
				return err
			}
		case 'r', 'R':
			dbg.printRegs()
		case 'q', 'Q', easyterm.KeyEsc:
			return nil
		}
	}
}

func (dbg *Debugger) printRegs() {
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.comp.CPU.String())
}

// register names accepted by REGS and BREAK. PSW is handled separately
func parseRegister(s string) (int, bool) {
	switch strings.ToUpper(s) {
	case "SP":
		return registers.SP, true
	case "PC":
		return registers.PC, true
	}
	for r := range registers.NumRegisters {
		if strings.EqualFold(s, fmt.Sprintf("R%d", r)) {
			return r, true
		}
	}
	return 0, false
}

func (dbg *Debugger) regs(tk *commandline.Tokens) error {
	if tk.IsEnd() {
		dbg.printRegs()
		return nil
	}

	s, _ := tk.Get()
	if tk.IsEnd() {
		return curated.Errorf(MissingArgument, cmdRegs, "a register and a value")
	}
	v, err := tk.GetNumber(16, 0)
	if err != nil {
		return err
	}

	if strings.EqualFold(s, "PSW") {
		dbg.comp.CPU.Status.Load(uint16(v))
	} else {
		r, ok := parseRegister(s)
		if !ok {
			return curated.Errorf("debugger: unknown register (%s)", s)
		}
		dbg.comp.CPU.Regs.Write(false, r, uint16(v))
	}

	dbg.printRegs()
	return nil
}

func (dbg *Debugger) mem(tk *commandline.Tokens) error {
	a, err := dbg.getAddress(tk, 0)
	if err != nil {
		return err
	}
	n, err := tk.GetNumber(16, memWords)
	if err != nil {
		return err
	}

	a &^= 1
	for n > 0 {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%06o:", a))
		for i := 0; i < memPerLine && n > 0; i++ {
			v := dbg.comp.Mem.Peek(a)
			if v == bus.Error {
				s.WriteString(" ------")
			} else {
				s.WriteString(fmt.Sprintf(" %06o", v))
			}
			n--
			a += 2
			if a == 0 {
				n = 0
			}
		}
		dbg.printLine(terminal.StyleFeedback, "%s", s.String())
	}

	return nil
}

func (dbg *Debugger) printMapNode(n *hardware.MapNode, depth int) {
	s := fmt.Sprintf("%s%06o %-10s %s (%d words)", strings.Repeat("  ", depth), n.Start, n.Kind, n.Label, n.Words)
	if len(n.Children) > 1 {
		s = fmt.Sprintf("%s selected=%d", s, n.Selected)
	}
	dbg.printLine(terminal.StyleInstrument, "%s", s)
	for _, c := range n.Children {
		dbg.printMapNode(c, depth+1)
	}
}

// preference values that can be changed with the PREFS command
type prefValue interface {
	Set(prefs.Value) error
	String() string
}

func (dbg *Debugger) preferences(tk *commandline.Tokens) error {
	values := map[string]prefValue{
		"CLOCK":    &dbg.comp.Prefs.Clock,
		"PACING":   &dbg.comp.Prefs.Pacing,
		"RAMTYPE":  &dbg.comp.Prefs.RAMType,
		"ILLEGAL":  &dbg.comp.Prefs.Illegal,
		"LOGTRAPS": &dbg.comp.Prefs.LogTraps,
	}

	s, ok := tk.Get()
	if !ok {
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dbg.printLine(terminal.StyleFeedback, "%-8s %s", k, values[k].String())
		}
		return nil
	}

	switch strings.ToUpper(s) {
	case "SAVE":
		return dbg.comp.Prefs.Save()
	case "LOAD":
		return dbg.comp.Prefs.Load()
	case "DEFAULTS":
		return dbg.comp.Prefs.SetDefaults()
	}

	p, ok := values[strings.ToUpper(s)]
	if !ok {
		return curated.Errorf("debugger: unknown preference (%s)", s)
	}
	if tk.IsEnd() {
		dbg.printLine(terminal.StyleFeedback, "%s", p.String())
		return nil
	}
	return p.Set(tk.Remainder())
}

// load a BIN file or, if an origin is given, a raw memory image
func (dbg *Debugger) load(tk *commandline.Tokens) error {
	filename, ok := tk.Get()
	if !ok {
		return curated.Errorf(MissingArgument, cmdLoad, "a filename")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	if tk.IsEnd() {
		origin, err := dbg.comp.LoadBin(data)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s loaded at %06o", filepath.Base(filename), origin)
		return nil
	}

	origin, err := dbg.getAddress(tk, 0)
	if err != nil {
		return err
	}
	if err := dbg.comp.LoadImage(origin, data); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%s loaded at %06o", filepath.Base(filename), origin)
	return nil
}

// source runs the monitor commands in the file. comment lines begin with #
func (dbg *Debugger) source(filename string) error {
	if dbg.sourceDepth >= maxSourceDepth {
		return curated.Errorf("debugger: SOURCE nested too deeply")
	}
	dbg.sourceDepth++
	defer func() { dbg.sourceDepth-- }()

	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	for l := range strings.Lines(string(data)) {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		if err := dbg.parseInput(l); err != nil {
			return err
		}
		if dbg.quit {
			break
		}
	}

	return nil
}
