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

package cpu

import (
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
)

// IllegalPolicy decides what happens when the CPU reads an instruction word
// that is not a valid instruction.
type IllegalPolicy int

// List of valid IllegalPolicy values.
const (
	// enter the trap at vector 010, as the real hardware does
	IllegalTrap IllegalPolicy = iota

	// halt the CPU. ExecuteInstruction() returns an error
	IllegalHalt

	// log the instruction and continue with the next word
	IllegalLog
)

// UnknownIllegalPolicy is returned by ParseIllegalPolicy().
const UnknownIllegalPolicy = "cpu: unknown illegal instruction policy (%s)"

func (p IllegalPolicy) String() string {
	switch p {
	case IllegalTrap:
		return "trap"
	case IllegalHalt:
		return "halt"
	case IllegalLog:
		return "log"
	}
	return "unknown"
}

// ParseIllegalPolicy converts a string to an IllegalPolicy value. Comparison
// is case insensitive.
func ParseIllegalPolicy(s string) (IllegalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trap":
		return IllegalTrap, nil
	case "halt":
		return IllegalHalt, nil
	case "log":
		return IllegalLog, nil
	}
	return IllegalTrap, curated.Errorf(UnknownIllegalPolicy, s)
}
