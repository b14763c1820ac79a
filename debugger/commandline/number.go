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

package commandline

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
)

// InvalidNumber is returned by ParseNumber() when the token can't be
// converted.
const InvalidNumber = "commandline: invalid number (%s)"

// ParseNumber converts a token to a number that fits in the number of bits.
func ParseNumber(s string, bits int) (uint64, error) {
	t := strings.ToLower(s)

	base := 8
	switch {
	case strings.HasPrefix(t, "0x"):
		base = 16
		t = t[2:]
	case strings.HasSuffix(t, "."):
		base = 10
		t = t[:len(t)-1]
	}

	v, err := strconv.ParseUint(t, base, bits)
	if err != nil {
		return 0, curated.Errorf(InvalidNumber, s)
	}
	return v, nil
}
