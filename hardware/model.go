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

package hardware

import (
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/clocks"
)

// Model identifies the machine being emulated.
type Model int

// List of supported models.
const (
	BK0010 Model = iota
	BK0011M
)

// UnknownModel is returned by ParseModel().
const UnknownModel = "hardware: unknown model (%s)"

func (m Model) String() string {
	switch m {
	case BK0010:
		return "BK0010"
	case BK0011M:
		return "BK0011M"
	}
	return "unknown"
}

// ParseModel converts a string to a Model. Comparison is case insensitive and
// the hyphen in the model name is optional.
func ParseModel(s string) (Model, error) {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "") {
	case "", "BK0010":
		return BK0010, nil
	case "BK0011M", "BK0011":
		return BK0011M, nil
	}
	return BK0010, curated.Errorf(UnknownModel, s)
}

// DefaultClock returns the clock frequency of the model in kHz.
func (m Model) DefaultClock() int {
	if m == BK0011M {
		return clocks.BK0011M
	}
	return clocks.BK0010
}

// BootAddress returns the address the CPU starts from after a reset.
func (m Model) BootAddress() uint16 {
	if m == BK0011M {
		return 0140000
	}
	return 0100000
}
