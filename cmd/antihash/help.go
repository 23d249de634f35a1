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

import "fmt"

func printHelp() {
	fmt.Println(`antihash builds test cases that collide under polynomial rolling hashes.

Usage:

  antihash overflow [--length L] [--reverse] [--uppercase] [-v]
  antihash birthday [--reverse] [--uppercase] [-v] B1 M1 [B2 M2 ...] [-- w1 w2 ...]
  antihash tree [-c C] [--dump-tree path] [--reverse] [--uppercase] [-v] B1 M1 [B2 M2 ...] [-- w1 w2 ...]
  antihash batch -f jobs.yaml [--reverse] [--uppercase] [-v]

Flags are only recognised before the first B M pair: every token after
it is read as a base or module, and every token after "--" as an
alphabet word.

Exit code is 0 on success or on search exhaustion; non-zero only on
argument validation errors.`)
}
