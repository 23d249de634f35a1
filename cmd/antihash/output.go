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

package main

import "strings"

// outputOptions holds the global --reverse/--uppercase/--verbose flags,
// shared by every subcommand's own flag.FlagSet.
type outputOptions struct {
	reverse   bool
	uppercase bool
	verbose   bool
}

// transform applies --reverse then --uppercase, in that order, matching
// the interface spec ("uppercased after reversal").
func transform(s string, out outputOptions) string {
	if out.reverse {
		s = reverseString(s)
	}
	if out.uppercase {
		s = strings.ToUpper(s)
	}
	return s
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
