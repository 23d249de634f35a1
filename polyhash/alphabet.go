// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package polyhash

import "fmt"

// Alphabet is a non-empty, ordered list of words, all of equal byte
// length. Distinctness of its entries is not required on input but is
// guaranteed by every solver on recursive (lifted) invocations.
type Alphabet []string

// Default returns the 26 single-letter words a..z, used whenever no
// explicit alphabet is supplied on the command line.
func Default() Alphabet {
	a := make(Alphabet, 26)
	for i := range a {
		a[i] = string(rune('a' + i))
	}
	return a
}

// Width returns the common byte length of every word in a. It panics if
// a is empty; callers must call Validate first.
func (a Alphabet) Width() int {
	return len(a[0])
}

// Validate checks that a is non-empty and that every word has the same
// byte length, returning a descriptive error otherwise. An empty or
// width-mismatched alphabet is an argument-validation error, not a
// search-exhaustion outcome.
func (a Alphabet) Validate() error {
	if len(a) == 0 {
		return fmt.Errorf("alphabet must contain at least one word")
	}
	w := len(a[0])
	for i, word := range a[1:] {
		if len(word) != w {
			return fmt.Errorf("alphabet words must have equal length: word %d (%q) has length %d, want %d", i+1, word, len(word), w)
		}
	}
	return nil
}
