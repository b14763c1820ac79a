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

package scripting_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware"
	"github.com/jetsetilly/gopherbk/scripting"
	"github.com/jetsetilly/gopherbk/test"
)

func newScript(t *testing.T) (*scripting.Script, *hardware.Computer, *test.CompareWriter) {
	t.Helper()
	cmp, err := hardware.NewComputer(hardware.BK0010, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cmp.Prefs.Pacing.Set(false))
	cmp.HardReset()

	out := &test.CompareWriter{}
	scr := scripting.NewScript(cmp, nil, out)
	t.Cleanup(scr.Close)
	return scr, cmp, out
}

const incLoop = `
local origin = tonumber("1000", 8)
poke(origin, tonumber("5201", 8))
poke(origin + 2, tonumber("776", 8))
pc(origin)
reg(1, 0)
`

func TestStep(t *testing.T) {
	scr, cmp, out := newScript(t)

	test.ExpectSuccess(t, scr.RunString(incLoop))
	test.ExpectSuccess(t, scr.RunString("step(10) print(reg(1), pc())"))
	test.ExpectEquality(t, out.String(), "5\t512\n")
	test.ExpectEquality(t, cmp.CPU.Regs.Read(false, 1), uint16(5))

	out.Clear()
	test.ExpectSuccess(t, scr.RunString("local t = ticks() run(100) print(ticks() >= t + 100)"))
	test.ExpectEquality(t, out.String(), "true\n")
}

func TestMemory(t *testing.T) {
	scr, cmp, out := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`print(poke(tonumber("2000", 8), 42), peek(tonumber("2000", 8)))`))
	test.ExpectEquality(t, out.String(), "true\t42\n")
	test.ExpectEquality(t, cmp.Mem.Peek(02000), 42)

	// a write through the bus is rejected by the monitor ROM
	out.Clear()
	test.ExpectSuccess(t, scr.RunString(`print(write(tonumber("100000", 8), 1), read(tonumber("100000", 8)))`))
	test.ExpectEquality(t, out.String(), "false\t0\n")
	test.ExpectEquality(t, cmp.Mem.Peek(0100000), 0)

	// poke changes ROM directly
	out.Clear()
	test.ExpectSuccess(t, scr.RunString(`print(poke(tonumber("100000", 8), 1), peek(tonumber("100000", 8)))`))
	test.ExpectEquality(t, out.String(), "true\t1\n")
	test.ExpectEquality(t, cmp.Mem.Peek(0100000), 1)

	// byte writes through the bus reach RAM
	out.Clear()
	test.ExpectSuccess(t, scr.RunString(`print(write(tonumber("2001", 8), 7, true), read(tonumber("2000", 8)))`))
	test.ExpectEquality(t, out.String(), "true\t1834\n")
}

func TestDisasm(t *testing.T) {
	scr, _, out := newScript(t)

	test.ExpectSuccess(t, scr.RunString(incLoop))
	test.ExpectSuccess(t, scr.RunString(`print(disasm(tonumber("1000", 8)))`))
	test.ExpectEquality(t, out.String(), "INC R1\t514\n")

	out.Clear()
	test.ExpectSuccess(t, scr.RunString(`label(tonumber("1000", 8), "LOOP") print(disasm(tonumber("1002", 8)))`))
	test.ExpectEquality(t, out.String(), "BR LOOP\t516\n")
}

func TestRegisters(t *testing.T) {
	scr, cmp, out := newScript(t)

	test.ExpectSuccess(t, scr.RunString("psw(0) reg(6, 512) print(psw(), reg(6))"))
	test.ExpectEquality(t, out.String(), "0\t512\n")
	test.ExpectEquality(t, cmp.CPU.Regs.SP(), uint16(512))

	err := scr.RunString("reg(8)")
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))

	err = scr.RunString("pc(65536)")
	test.ExpectFailure(t, err)
}

func TestRunFile(t *testing.T) {
	scr, cmp, _ := newScript(t)

	image := filepath.Join(t.TempDir(), "loop.bin")
	test.DemandSuccess(t, os.WriteFile(image, []byte{0000, 0002, 0004, 0000, 0201, 0012, 0376, 0001}, 0o644))

	script := filepath.Join(t.TempDir(), "loop.lua")
	test.DemandSuccess(t, os.WriteFile(script, []byte(`
local origin = loadbin("`+filepath.ToSlash(image)+`")
pc(origin)
reg(1, 0)
step(4)
`), 0o644))

	test.ExpectSuccess(t, scr.RunFile(script))
	test.ExpectEquality(t, cmp.CPU.Regs.Read(false, 1), uint16(2))
	test.ExpectEquality(t, cmp.CPU.Regs.PC(), uint16(01000))

	err := scr.RunFile(filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))
}

func TestCancel(t *testing.T) {
	scr, cmp, _ := newScript(t)

	ctx, cancel := context.WithCancel(context.Background())
	scr.SetContext(ctx)
	cancel()

	before := cmp.Clock.Ticks()
	err := scr.RunString("run(1000000)")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))
	test.ExpectSuccess(t, cmp.Clock.Ticks()-before < 1000000)
}
