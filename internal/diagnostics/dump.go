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

package diagnostics

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

// TreePosition is one entry of a winning tree-solver reconstruction:
// the string position and the two words assigned to it.
type TreePosition struct {
	Index int    `json:"index"`
	WordA string `json:"wordA"`
	WordB string `json:"wordB"`
}

// DumpTree writes positions as zstd-compressed JSON lines to path. It is
// a pure diagnostic: nothing in this module reads the file back.
func DumpTree(path string, positions []TreePosition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("diagnostics: creating tree dump %q: %w", path, err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("diagnostics: opening zstd writer: %w", err)
	}
	defer zw.Close()

	enc := json.NewEncoder(zw)
	for _, p := range positions {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("diagnostics: encoding tree dump entry %d: %w", p.Index, err)
		}
	}
	return nil
}
