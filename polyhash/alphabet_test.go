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

import "testing"

func TestDefaultAlphabet(t *testing.T) {
	a := Default()
	if len(a) != 26 {
		t.Fatalf("len(Default()) = %d, want 26", len(a))
	}
	if a[0] != "a" || a[25] != "z" {
		t.Fatalf("Default() = %v, want a..z", a)
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("Default() failed to validate: %v", err)
	}
	if a.Width() != 1 {
		t.Fatalf("Width() = %d, want 1", a.Width())
	}
}

func TestValidateRejectsEmpty(t *testing.T) {
	var a Alphabet
	if err := a.Validate(); err == nil {
		t.Fatal("Validate() on empty alphabet should fail")
	}
}

func TestValidateRejectsWidthMismatch(t *testing.T) {
	a := Alphabet{"ab", "cde"}
	if err := a.Validate(); err == nil {
		t.Fatal("Validate() should reject mismatched word lengths")
	}
}
