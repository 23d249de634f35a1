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

// Package birthday implements a randomised meet-in-the-middle search
// for a single (base, module) polynomial-hash collision, good for
// moduli up to roughly 2^62 where a O(sqrt(M)) sample fits in memory.
package birthday

import (
	"math"
	"strings"

	"github.com/bortoz/antihash/internal/rng"
	"github.com/bortoz/antihash/polyhash"
)

// minTrialLen and maxTrialLen bound the number of alphabet words
// concatenated per sample; the range matches the original reference's
// `for len in 6..64`.
const (
	minTrialLen = 6
	maxTrialLen = 63
)

// Find searches for two distinct strings, each a concatenation of
// words drawn from alphabet, that collide under H_{base,module}. It
// reports ok=false only once every trial length has been exhausted.
func Find(base, module uint64, alphabet polyhash.Alphabet) (s1, s2 string, ok bool) {
	bound := int(math.Sqrt(float64(module)))
	if bound < 1 {
		bound = 1
	}
	samples := make(map[uint64]string, bound)
	for trialLen := minTrialLen; trialLen <= maxTrialLen; trialLen++ {
		clear(samples)
		for i := 0; i < bound; i++ {
			word := randomWord(alphabet, trialLen)
			h := polyhash.Mod(base, module, word)
			if prev, exists := samples[h]; exists {
				if prev != word {
					return word, prev, true
				}
			} else {
				samples[h] = word
			}
		}
	}
	return "", "", false
}

// randomWord concatenates n words sampled uniformly, with replacement,
// from alphabet.
func randomWord(alphabet polyhash.Alphabet, n int) string {
	var b strings.Builder
	b.Grow(n * alphabet.Width())
	for i := 0; i < n; i++ {
		b.WriteString(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}
