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

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
)

// target is a machine value that can be used in a break condition.
type target struct {
	label string
	value func() uint16
}

// parseTarget returns the target named by the token. Registers are named R0
// to R7, SP and PC. The status word is PSW.
func (dbg *Debugger) parseTarget(s string) (target, error) {
	if strings.EqualFold(s, "PSW") {
		return target{
			label: dbg.comp.CPU.Status.Label(),
			value: func() uint16 {
				return dbg.comp.CPU.Status.Value()
			},
		}, nil
	}

	r, ok := parseRegister(s)
	if !ok {
		return target{}, curated.Errorf("debugger: invalid target (%s)", s)
	}

	return target{
		label: registers.Label(r),
		value: func() uint16 {
			return dbg.comp.CPU.Regs.Read(false, r)
		},
	}, nil
}

// isTarget returns true if the token names a target.
func isTarget(s string) bool {
	if strings.EqualFold(s, "PSW") {
		return true
	}
	_, ok := parseRegister(s)
	return ok
}
