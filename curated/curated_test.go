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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/test"
)

const testPattern = "test: %v"
const otherPattern = "other: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("memory: %v", curated.Errorf("memory: overlapping block"))
	test.ExpectEquality(t, e.Error(), "memory: overlapping block")

	e = curated.Errorf("a: %v", curated.Errorf("b: %v", curated.Errorf("b: c")))
	test.ExpectEquality(t, e.Error(), "a: b: c")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, otherPattern))

	// plain errors are not curated
	f := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(f))
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf(otherPattern, e)
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, otherPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("reading image: %v", io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))
}
