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

package tree

// node is a tagged variant: a leaf carries the two alphabet words whose
// hash difference produced sum; an internal node instead carries
// positions into its two children's cluster lists plus the sign bits
// needed to reconstruct which side of each child to take. Both shapes
// share sum, which is all the merge step ever needs to compare nodes —
// so there is one struct, not a leaf/internal type hierarchy, per the
// arena+index representation the merge operates over.
type node struct {
	sum    uint128
	isLeaf bool

	// idx is fixed at creation and never touched by later reshuffling of
	// the cluster list this node lives in (see arena.mergeLevel): for a
	// leaf it is the string position the word pair belongs at; for an
	// internal node it is the arena index its own two children were
	// read from, i.e. the index to use as 2*idx/2*idx+1 to find them
	// again during reconstruction.
	idx int

	// leaf fields
	wordA, wordB string

	// internal fields: positions of the two children inside their own
	// cluster lists (not pointers — the lists themselves live in the
	// arena, see tree.go), and whether taking this node means swapping
	// that child's (wordA, wordB) assignment.
	posLeft, posRight int
	revLeft, revRight bool
}

func newLeaf(sum uint128, idx int, wordA, wordB string) node {
	return node{sum: sum, isLeaf: true, idx: idx, wordA: wordA, wordB: wordB}
}

func newInternal(sum uint128, idx, posLeft, posRight int, revLeft, revRight bool) node {
	return node{sum: sum, idx: idx, posLeft: posLeft, posRight: posRight, revLeft: revLeft, revRight: revRight}
}
