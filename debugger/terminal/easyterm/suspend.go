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

package easyterm

import (
	"os"

	"golang.org/x/sys/unix"
)

// SuspendProcess suspends the current process. The terminal does not deliver
// the suspend signal when it is in cbreak mode so the signal has to be sent
// by hand.
func SuspendProcess() error {
	return unix.Kill(os.Getpid(), unix.SIGTSTP)
}
