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

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/prefs"
	"github.com/jetsetilly/gopherbk/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, v.Get().(int), 100)
	test.ExpectSuccess(t, v.Set("-5"))
	test.ExpectEquality(t, v.Get().(int), -5)
	test.ExpectFailure(t, v.Set("abc"))
	test.ExpectEquality(t, v.Get().(int), -5)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get().(float64), 1.5)
	test.ExpectEquality(t, v.String(), "1.500")
}

func TestHooks(t *testing.T) {
	var v prefs.String
	var post string

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(string) == "bad" {
			return errors.New("bad value")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(string)
		return nil
	})

	test.ExpectSuccess(t, v.Set("trap"))
	test.ExpectEquality(t, post, "trap")
	test.ExpectFailure(t, v.Set("bad"))
	test.ExpectEquality(t, v.String(), "trap")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar; baz::10; malformed")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")

	// value is consumed
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::10")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	var b prefs.Bool
	var i prefs.Int

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectSuccess(t, dsk.Add("test.int", &i))
	test.ExpectSuccess(t, curated.Is(dsk.Add("test.int", &i), prefs.DuplicateKey))

	// missing file is not an error
	test.ExpectSuccess(t, dsk.Load())

	b.Set(true)
	i.Set(42)
	test.ExpectSuccess(t, dsk.Save())

	// a second disk sharing the same file
	var s prefs.String
	dsk2, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk2.Add("other.string", &s))
	s.Set("hello")
	test.ExpectSuccess(t, dsk2.Save())

	b.Set(false)
	i.Set(0)
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, i.Get().(int), 42)

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "*** do not edit this file by hand ***\nother.string :: hello\ntest.bool :: true\ntest.int :: 42\n")
}

func TestDiskCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	var i prefs.Int
	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Add("test.int", &i))

	prefs.PushCommandLineStack("test.int::7")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 7)
}

func TestMalformed(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("not a prefs file\n"), 0o600))

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(dsk.Load(), prefs.MalformedFile))
}
