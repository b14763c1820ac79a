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

// Package curated is used for the errors that GopherBK expects to happen.
// Configuration mistakes, malformed saved state and bad command line input
// are all "curated" errors. Anything else (an error from the os package for
// example) is uncurated and should be treated as unexpected.
//
// Errors are created with Errorf(), which takes a pattern and values in the
// same way as fmt.Errorf(). The pattern is remembered and can be tested for
// later with Is() and Has():
//
//	const MissingKey = "state: missing key %s"
//
//	err := curated.Errorf(MissingKey, "cpu.r7")
//	if curated.Is(err, MissingKey) {
//		...
//	}
//
// Has() searches the entire chain, where a chain is made by passing one
// curated error as a value to another:
//
//	err = curated.Errorf("computer: restore: %v", err)
//	curated.Has(err, MissingKey) // true
//	curated.Is(err, MissingKey)  // false
//
// The Error() string of a chain is normalised so that adjacent parts that
// are identical are only printed once. Parts are separated by ": ". This
// means that packages can prefix their name freely without worrying about
// the "memory: memory: ..." effect.
//
// Curated errors also implement Unwrap() so that the errors package in the
// standard library can see errors passed as values.
package curated
