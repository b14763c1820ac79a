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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are the most useful.
// They compare values of the same comparable type and fail the test with a
// useful message if the expectation is not met:
//
//	test.ExpectEquality(t, cpu.PC.Value(), uint16(0100000))
//
// ExpectSuccess() and ExpectFailure() test values that have a natural
// success/failure value. Currently bool and error types are supported.
//
// The Demand*() functions are the same as the Expect*() functions except that
// a failure is fatal to the test.
//
// Any number of tags can be added to the end of an Expect*() or Demand*()
// call. These are printed as part of the failure message and help to
// identify which iteration of a table driven test failed.
package test
