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

package clocks_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherbk/hardware/clocks"
	"github.com/jetsetilly/gopherbk/test"
)

func TestConversion(t *testing.T) {
	test.ExpectEquality(t, clocks.TicksToNanos(3000, clocks.BK0010), 1000000)
	test.ExpectEquality(t, clocks.TicksToNanos(1, clocks.BK0010), 333)
	test.ExpectEquality(t, clocks.TicksToNanos(4000000, clocks.BK0011M), uint64(time.Second))
	test.ExpectEquality(t, clocks.NanosToTicks(uint64(time.Second), clocks.BK0010), 3000000)
	test.ExpectEquality(t, clocks.NanosToTicks(500, clocks.BK0011M), 2)

	// large tick counts do not overflow
	big := uint64(clocks.BK0010) << 40
	test.ExpectEquality(t, clocks.TicksToNanos(big, clocks.BK0010), uint64(1000000)<<40)
}

func TestClock(t *testing.T) {
	clk := clocks.NewClock(clocks.BK0010)
	test.ExpectEquality(t, clk.Ticks(), 0)
	clk.Advance(12)
	clk.Advance(3000)
	test.ExpectEquality(t, clk.Ticks(), 3012)
	test.ExpectEquality(t, clk.Uptime(), time.Duration(1004000))

	clk.SetFrequency(0)
	test.ExpectEquality(t, clk.Frequency(), 1)
	clk.SetFrequency(clocks.BK0011M)
	test.ExpectEquality(t, clk.Frequency(), 4000)
}
