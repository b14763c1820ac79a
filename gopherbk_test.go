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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherbk/hardware"
	"github.com/jetsetilly/gopherbk/test"
)

// INC R1 / BR .-2
var incLoop = []byte{0201, 0012, 0376, 0001}

func writeImage(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "loop.img")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLaunch(t *testing.T) {
	fn := writeImage(t, incLoop)

	test.ExpectEquality(t, launch([]string{"DISASM", "-origin", "1000", fn}), 0)
	test.ExpectEquality(t, launch([]string{"RUN", "-prefs", "hardware.pacing::false", "-origin", "1000", "-ticks", "1000", fn}), 0)

	// BIN header of origin 01000 and length 4
	bin := append([]byte{0, 2, 4, 0}, incLoop...)
	fn = writeImage(t, bin)
	test.ExpectEquality(t, launch([]string{"DISASM", fn}), 0)

	test.ExpectEquality(t, launch([]string{"-nosuchflag"}), 10)
	test.ExpectEquality(t, launch([]string{"RUN", "-nosuchflag"}), 20)
	test.ExpectEquality(t, launch([]string{"DISASM"}), 20)
	test.ExpectEquality(t, launch([]string{"RUN", "-origin", "1009", fn}), 20)
	test.ExpectEquality(t, launch([]string{"RUN", "-model", "PDP11"}), 20)
}

func TestLoadImage(t *testing.T) {
	cmp, err := hardware.NewComputer(hardware.BK0010, nil)
	test.DemandSuccess(t, err)
	cmp.HardReset()

	fn := writeImage(t, incLoop)
	test.ExpectSuccess(t, loadImage(cmp, fn, "2000"))
	test.ExpectEquality(t, cmp.CPU.Regs.PC(), uint16(0o2000))
	test.ExpectEquality(t, cmp.Mem.Peek(0o2000), 0o005201)

	test.ExpectFailure(t, loadImage(cmp, fn, "two thousand"))
	test.ExpectFailure(t, loadImage(cmp, filepath.Join(t.TempDir(), "missing"), ""))
}
