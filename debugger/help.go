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
	"strings"

	"github.com/jetsetilly/gopherbk/debugger/commandline"
	"github.com/jetsetilly/gopherbk/debugger/terminal"
)

// numbers are octal unless written as 512. (decimal) or $200 (hexadecimal)
var helps = map[string]string{
	cmdBreak:     "BREAK [address | target value [& target value]...]\nHalt when the condition becomes true. Targets are R0-R7, SP, PC and PSW.\nA single address is a break on PC. With no arguments, list breakpoints.",
	cmdClear:     "CLEAR BREAKS | WATCHES | ALL\nRemove all breakpoints and/or watches.",
	cmdDisasm:    "DISASM [address] [count]\nDisassemble count instructions from address. Defaults to the PC.",
	cmdDrop:      "DROP BREAK | WATCH number\nRemove a single breakpoint or watch. Numbers are shown by LIST.",
	cmdHardReset: "HARDRESET\nPower on the machine. RAM is refilled with its power-on pattern.",
	cmdHelp:      "HELP [command]\nList commands or show help for one command.",
	cmdKeys:      "KEYS\nStep with single key presses. SPACE or RETURN steps, R shows registers, Q returns.",
	cmdLabel:     "LABEL address [name]\nAdd a label for the address. Without a name the label is removed.",
	cmdList:      "LIST BREAKS | WATCHES\nList breakpoints or watches.",
	cmdLoad:      "LOAD file [origin]\nLoad a BIN file, or a raw image if an origin is given.",
	cmdLog:       "LOG [count | CLEAR]\nShow the most recent log entries or clear the log.",
	cmdLua:       "LUA file\nRun a Lua script against the machine.",
	cmdMap:       "MAP\nShow the memory map.",
	cmdMem:       "MEM address [words]\nDump memory without side effects. Unmapped words are shown as ------.",
	cmdPeek:      "PEEK address...\nRead words without side effects.",
	cmdPoke:      "POKE address value...\nWrite consecutive words without side effects.",
	cmdPrefs:     "PREFS [name [value] | SAVE | LOAD | DEFAULTS]\nShow or change hardware preferences.",
	cmdQuit:      "QUIT\nEnd the monitor session.",
	cmdRegs:      "REGS [register value]\nShow or change registers. Registers are R0-R7, SP, PC and PSW.",
	cmdReset:     "RESET\nReset the CPU and devices. Memory is unchanged.",
	cmdRestore:   "RESTORE\nRestore the machine state saved by SNAPSHOT.",
	cmdRun:       "RUN [ticks]\nRun until a breakpoint or watch halts execution, or for the number of ticks.",
	cmdSnapshot:  "SNAPSHOT\nSave the machine state. Restore it with RESTORE.",
	cmdSource:    "SOURCE file\nRun the monitor commands in the file. Lines beginning with # are ignored.",
	cmdSpeed:     "SPEED\nShow the clock frequency and the measured speed of the emulation.",
	cmdStep:      "STEP [count]\nExecute count instructions.",
	cmdSymbol:    "SYMBOL [name]\nFind the address of a label or system symbol. With no name, list all symbols.",
	cmdTrace:     "TRACE [ON | OFF]\nPrint every instruction as it is executed.",
	cmdWatch:     "WATCH address [value]\nHalt when the word at the address changes (to the value).",
}

func (dbg *Debugger) help(tk *commandline.Tokens) error {
	s, ok := tk.Get()
	if !ok {
		dbg.printLine(terminal.StyleHelp, strings.Join(commandList, " "))
		return nil
	}

	command, err := lookupCommand(s)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleHelp, helps[command])
	return nil
}
