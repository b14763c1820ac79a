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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherbk/paths"
	"github.com/jetsetilly/gopherbk/test"
)

func TestPaths(t *testing.T) {
	// run the test in a temporary directory that contains the base resource
	// directory. this means ResourcePath() will not use the user's config
	// directory
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gopherbk", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherbk", "foo", "bar", "baz"))

	// directory part of the path has been created
	_, err = os.Stat(filepath.Join(".gopherbk", "foo", "bar"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherbk", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherbk")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("snapshot", "BK0010")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "snapshot_BK0010_"))

	fn = paths.UniqueFilename("audio", " ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "audio_2"))
}
