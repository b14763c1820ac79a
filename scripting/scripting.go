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

package scripting

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/disassembly"
	"github.com/jetsetilly/gopherbk/disassembly/symbols"
	"github.com/jetsetilly/gopherbk/hardware"
	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is returned by RunFile() and RunString() when the script
// fails. The Lua error, including any error raised by the emulation, is
// included in the message.
const ScriptError = "scripting: %v"

// Script is a Lua state bound to a Computer. It is not safe for concurrent
// use and the Computer must not be running while a script is executing.
type Script struct {
	comp *hardware.Computer
	dsm  *disassembly.Disassembly
	out  io.Writer

	L *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from print() is written to out. The disassembly argument can be nil,
// in which case a new Disassembly is created for the Computer's memory.
func NewScript(comp *hardware.Computer, dsm *disassembly.Disassembly, out io.Writer) *Script {
	if dsm == nil {
		dsm = disassembly.NewDisassembly(comp.Mem, symbols.NewSymbols())
	}
	if out == nil {
		out = os.Stdout
	}

	scr := &Script{
		comp: comp,
		dsm:  dsm,
		out:  out,
		L:    lua.NewState(),
	}

	functions := map[string]lua.LGFunction{
		"step":      scr.step,
		"run":       scr.run,
		"ticks":     scr.ticks,
		"peek":      scr.peek,
		"poke":      scr.poke,
		"read":      scr.read,
		"write":     scr.write,
		"reg":       scr.reg,
		"pc":        scr.pc,
		"psw":       scr.psw,
		"interrupt": scr.interrupt,
		"reset":     scr.reset,
		"hardreset": scr.hardreset,
		"disasm":    scr.disasm,
		"label":     scr.label,
		"load":      scr.load,
		"loadbin":   scr.loadbin,
		"print":     scr.print,
	}
	for name, fn := range functions {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// SetContext binds a context to the script. A running script stops with an
// error when the context is cancelled, including during a call to run().
func (scr *Script) SetContext(ctx context.Context) {
	scr.L.SetContext(ctx)
}

func (scr *Script) cancelled() bool {
	ctx := scr.L.Context()
	return ctx != nil && ctx.Err() != nil
}

// Close the Lua state. The Script can not be used after this.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile executes the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "scripting", "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString executes Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// address checks that the argument at position n is a 16 bit value
func address(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "not a 16 bit value")
	}
	return uint16(v)
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for range n {
		if err := scr.comp.Step(); err != nil {
			L.RaiseError("%v", err)
		}
	}
	return 0
}

func (scr *Script) run(L *lua.LState) int {
	ticks := L.CheckInt(1)
	if ticks < 0 {
		L.ArgError(1, "negative tick count")
	}
	err := scr.comp.StepFor(uint64(ticks), func() bool { return !scr.cancelled() })
	if err != nil {
		L.RaiseError("%v", err)
	}
	if scr.cancelled() {
		L.RaiseError("%v", scr.L.Context().Err())
	}
	return 0
}

func (scr *Script) ticks(L *lua.LState) int {
	L.Push(lua.LNumber(scr.comp.Clock.Ticks()))
	return 1
}

func (scr *Script) peek(L *lua.LState) int {
	v := scr.comp.Mem.Peek(address(L, 1))
	if v == bus.Error {
		L.Push(lua.LNil)
	} else {
		L.Push(lua.LNumber(v))
	}
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	addr := address(L, 1)
	value := address(L, 2)
	L.Push(lua.LBool(scr.comp.Mem.Poke(addr, value)))
	return 1
}

// read and write go through the bus. unlike peek and poke they reach the
// devices and a write to ROM is rejected
func (scr *Script) read(L *lua.LState) int {
	v := scr.comp.ReadMemory(L.OptBool(2, false), address(L, 1))
	if v == bus.Error {
		L.Push(lua.LNil)
	} else {
		L.Push(lua.LNumber(v))
	}
	return 1
}

func (scr *Script) write(L *lua.LState) int {
	addr := address(L, 1)
	value := address(L, 2)
	L.Push(lua.LBool(scr.comp.WriteMemory(L.OptBool(3, false), addr, value)))
	return 1
}

func (scr *Script) reg(L *lua.LState) int {
	r := L.CheckInt(1)
	if r < 0 || r >= registers.NumRegisters {
		L.ArgError(1, "no such register")
	}
	if L.GetTop() >= 2 {
		scr.comp.CPU.Regs.Write(false, r, address(L, 2))
	}
	L.Push(lua.LNumber(scr.comp.CPU.Regs.Read(false, r)))
	return 1
}

func (scr *Script) pc(L *lua.LState) int {
	if L.GetTop() >= 1 {
		scr.comp.CPU.Regs.SetPC(address(L, 1))
	}
	L.Push(lua.LNumber(scr.comp.CPU.Regs.PC()))
	return 1
}

func (scr *Script) psw(L *lua.LState) int {
	if L.GetTop() >= 1 {
		scr.comp.CPU.Status.Load(address(L, 1))
	}
	L.Push(lua.LNumber(scr.comp.CPU.Status.Value()))
	return 1
}

func (scr *Script) interrupt(L *lua.LState) int {
	scr.comp.CPU.RequestInterrupt(address(L, 1))
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.comp.Reset()
	return 0
}

func (scr *Script) hardreset(L *lua.LState) int {
	scr.comp.HardReset()
	return 0
}

func (scr *Script) disasm(L *lua.LState) int {
	e := scr.dsm.Decode(address(L, 1))
	L.Push(lua.LString(e.String()))
	L.Push(lua.LNumber(e.Next()))
	return 2
}

func (scr *Script) label(L *lua.LState) int {
	addr := address(L, 1)
	name := L.CheckString(2)
	sym := scr.dsm.Symbols()
	if sym == nil {
		L.RaiseError("no symbol table")
	}
	L.Push(lua.LBool(sym.AddLabel(addr, name, true)))
	return 1
}

func (scr *Script) load(L *lua.LState) int {
	origin := address(L, 1)
	data, err := os.ReadFile(L.CheckString(2))
	if err != nil {
		L.RaiseError("%v", err)
	}
	if err := scr.comp.LoadImage(origin, data); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) loadbin(L *lua.LState) int {
	data, err := os.ReadFile(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	origin, err := scr.comp.LoadBin(data)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(origin))
	return 1
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}
