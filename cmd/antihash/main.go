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

// Command antihash builds test cases that collide under one or more
// polynomial rolling hashes.
package main

import (
	"fmt"
	"os"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printHelp()
		os.Exit(1)
	}

	switch args[0] {
	case "overflow":
		runOverflow(args[1:])
	case "birthday":
		runBirthday(args[1:])
	case "tree":
		runTree(args[1:])
	case "batch":
		runBatch(args[1:])
	case "-h", "--help", "help":
		printHelp()
	default:
		exitf("unknown command %q", args[0])
	}
}

func exitf(f string, args ...any) {
	exit(fmt.Errorf(f, args...))
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// printCollision writes the result of a solver invocation to stdout,
// applying --reverse/--uppercase, or reports exhaustion. It never
// changes the process exit code: exhaustion is success per the
// interface's exit-code rule.
func printCollision(s1, s2 string, found bool, out outputOptions) {
	if !found {
		fmt.Println("Collision not found")
		return
	}
	fmt.Println(transform(s1, out))
	fmt.Println(transform(s2, out))
}
