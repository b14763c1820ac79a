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

package blocks

import (
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
)

// RAMType describes the physical memory technology. The type decides the
// content of RAM at power on.
type RAMType int

// List of valid RAMType values.
const (
	Generic RAMType = iota
	K565RU5
	K565RU6
)

// UnknownRAMType is returned by ParseRAMType().
const UnknownRAMType = "blocks: unknown RAM type (%s)"

func (t RAMType) String() string {
	switch t {
	case Generic:
		return "generic"
	case K565RU5:
		return "K565RU5"
	case K565RU6:
		return "K565RU6"
	}
	return "unknown"
}

// ParseRAMType converts the string to a RAMType. Comparison is case
// insensitive.
func ParseRAMType(s string) (RAMType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "GENERIC":
		return Generic, nil
	case "K565RU5":
		return K565RU5, nil
	case "K565RU6":
		return K565RU6, nil
	}
	return Generic, curated.Errorf(UnknownRAMType, s)
}

// period returns the number of words after which the power-on pattern flips.
// zero means the memory is zeroed.
func (t RAMType) period() int {
	switch t {
	case K565RU5:
		return 128
	case K565RU6:
		return 64
	}
	return 0
}

// Fill the data with the power-on pattern for the RAM type. Adjacent words
// alternate between all bits clear and all bits set and the order of the
// alternation flips every period words.
func (t RAMType) Fill(data []uint16) {
	n := t.period()
	if n == 0 {
		clear(data)
		return
	}
	for i := range data {
		if (i&1)^((i/n)&1) != 0 {
			data[i] = 0177777
		} else {
			data[i] = 0
		}
	}
}
