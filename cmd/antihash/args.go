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

import (
	"fmt"
	"strconv"

	"github.com/bortoz/antihash/lift"
	"github.com/bortoz/antihash/polyhash"
)

// splitDoubleDash splits positional args on a literal "--" separator,
// since Go's flag package stops parsing at the first non-flag argument
// (a bare number) rather than at "--" itself.
func splitDoubleDash(args []string) (before, after []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// parsePairs reads an even-length list of decimal base/module tokens
// into ordered (base, module) pairs, bounding each to bits (32 for
// birthday, 64 for tree).
func parsePairs(tokens []string, bits int) ([]lift.Pair, error) {
	if len(tokens) == 0 || len(tokens)%2 != 0 {
		return nil, fmt.Errorf("expected one or more (base, module) pairs, got %d token(s)", len(tokens))
	}
	pairs := make([]lift.Pair, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		base, err := strconv.ParseUint(tokens[i], 10, bits)
		if err != nil {
			return nil, fmt.Errorf("invalid base %q: %w", tokens[i], err)
		}
		module, err := strconv.ParseUint(tokens[i+1], 10, bits)
		if err != nil {
			return nil, fmt.Errorf("invalid module %q: %w", tokens[i+1], err)
		}
		pairs = append(pairs, lift.Pair{Base: base, Module: module})
	}
	return pairs, nil
}

// alphabetFrom builds an Alphabet from explicit words, or the default
// a..z when words is empty.
func alphabetFrom(words []string) (polyhash.Alphabet, error) {
	if len(words) == 0 {
		return polyhash.Default(), nil
	}
	a := polyhash.Alphabet(words)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
