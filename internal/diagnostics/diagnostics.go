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

// Package diagnostics provides the CLI's optional structured progress
// log: one JSON line per solver phase transition, tagged with a
// correlation ID unique to the invocation.
package diagnostics

import (
	"encoding/json"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/cpu"
)

// Event is one JSON-tagged progress record. Phase is a short label such
// as "overflow.start", "lift.start", "lift.done", "batch.done".
type Event struct {
	RunID  string         `json:"runId"`
	Time   time.Time      `json:"time"`
	Phase  string         `json:"phase"`
	Detail map[string]any `json:"detail,omitempty"`
}

// Logger emits Events as JSON lines when enabled, and is a silent no-op
// otherwise, so call sites never have to branch on verbosity.
type Logger struct {
	enabled bool
	runID   string
	log     *log.Logger
}

// New returns a Logger. When verbose is false, Log is a no-op.
func New(w io.Writer, verbose bool) *Logger {
	l := &Logger{enabled: verbose, runID: uuid.New().String()}
	if verbose {
		l.log = log.New(w, "", log.LstdFlags)
	}
	return l
}

// RunID returns the correlation ID assigned to this invocation.
func (l *Logger) RunID() string { return l.runID }

// Log records one phase transition. detail may be nil.
func (l *Logger) Log(phase string, detail map[string]any) {
	if !l.enabled {
		return
	}
	e := Event{RunID: l.runID, Time: time.Now(), Phase: phase, Detail: detail}
	b, err := json.Marshal(e)
	if err != nil {
		l.log.Printf("diagnostics: failed to marshal event: %v", err)
		return
	}
	l.log.Println(string(b))
}

// LogCPUFeatures writes a one-line informational summary of the CPU
// features visible to the process. Nothing in this module branches on
// these features; they exist purely as context in the diagnostic log.
func (l *Logger) LogCPUFeatures() {
	if !l.enabled {
		return
	}
	l.Log("cpu.features", map[string]any{
		"x86.avx2":    cpu.X86.HasAVX2,
		"x86.avx512f": cpu.X86.HasAVX512F,
		"arm64.neon":  cpu.ARM64.HasASIMD,
	})
}
