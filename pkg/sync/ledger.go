/*
 * Copyright 2025 Fleetyard Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sync

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// serialColumnHeader is the literal header cell of the serial column in both
// output schemas.
const serialColumnHeader = "Serial"

// Ledger holds the serial numbers already recorded in one output file.
// Serials in the ledger are never re-fetched or re-written.
type Ledger struct {
	known map[string]struct{}
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{known: make(map[string]struct{})}
}

// LoadLedger rebuilds the known-serial set from an existing output file by
// reading column 1 of every row, skipping the header. A missing file yields
// an empty ledger; any other read problem is an error.
func LoadLedger(path string) (*Ledger, error) {
	ledger := NewLedger()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ledger, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open existing output '%s': %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read existing output '%s': %w", path, err)
		}

		if len(record) == 0 {
			continue
		}

		serial := strings.Trim(strings.TrimSpace(record[0]), `"`)
		if serial == "" || serial == serialColumnHeader {
			continue
		}

		ledger.known[serial] = struct{}{}
	}

	return ledger, nil
}

// Known reports whether a serial is already recorded.
func (l *Ledger) Known(serial string) bool {
	_, ok := l.known[serial]
	return ok
}

// Add marks a serial as recorded for the remainder of the run.
func (l *Ledger) Add(serial string) {
	l.known[serial] = struct{}{}
}

// Len is the number of known serials.
func (l *Ledger) Len() int {
	return len(l.known)
}
