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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fleetyard/warrantysync/pkg/models"
)

var errColumnCount = errors.New("row has wrong column count")

// The import tool dictates both schemas; column order must never change.
// Only Serial, PO Number, Vendor, PO Date, Warranty Expires, and AppleCare ID
// ever carry data, the rest stay empty to preserve alignment.
var (
	// ComputerColumns is the fixed header of the computer output.
	ComputerColumns = []string{
		"Serial", "Display Name", "Asset Tag", "Barcode 1", "Barcode 2",
		"Username", "Real Name", "Email Address", "Position", "Phone Number",
		"Department", "Building", "Room", "PO Number", "Vendor",
		"Purchase Price", "PO Date", "Warranty Expires", "Is Leased",
		"Lease Expires", "AppleCare ID", "Site",
	}

	// MobileColumns is the fixed header of the mobile device output.
	MobileColumns = []string{
		"Serial", "Display Name", "Enforce Name", "Asset Tag", "Username",
		"Real Name", "Email Address", "Position", "Phone Number", "Department",
		"Building", "Room", "PO Number", "Vendor", "Purchase Price", "PO Date",
		"Warranty Expires", "Is Leased", "Lease Expires", "AppleCare ID",
		"Airplay Password", "Site",
	}
)

// Writer appends rows to one fixed-column CSV output. Each row is written
// with a single unbuffered append so an interrupted run loses at most the
// in-flight device.
type Writer struct {
	path    string
	columns []string
	file    *os.File
}

// OpenWriter opens (creating if needed) an output file for appending. The
// header line is written only when the file did not previously exist.
func OpenWriter(path string, columns []string) (*Writer, error) {
	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output '%s': %w", path, err)
	}

	if isNew {
		if _, err := f.WriteString(strings.Join(columns, ",") + "\n"); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header to '%s': %w", path, err)
		}
	}

	return &Writer{path: path, columns: columns, file: f}, nil
}

// WriteRow appends one record. Populated cells are double-quoted (inner
// quotes doubled); empty cells stay bare so the template alignment holds.
func (w *Writer) WriteRow(cells []string) error {
	if len(cells) != len(w.columns) {
		return fmt.Errorf("%w: got %d, want %d", errColumnCount, len(cells), len(w.columns))
	}

	parts := make([]string, len(cells))

	for i, v := range cells {
		if v != "" {
			parts[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
	}

	if _, err := w.file.WriteString(strings.Join(parts, ",") + "\n"); err != nil {
		return fmt.Errorf("failed to append to '%s': %w", w.path, err)
	}

	return nil
}

// Path is the output file location.
func (w *Writer) Path() string {
	return w.path
}

// Close releases the underlying file handle.
func (w *Writer) Close() error {
	return w.file.Close()
}

// buildRow places the seven populated fields into their schema positions and
// leaves every other cell empty.
func buildRow(columns []string, device models.Device, cov models.CoverageSummary) []string {
	row := make([]string, len(columns))

	for i, name := range columns {
		switch name {
		case "Serial":
			row[i] = device.SerialNumber
		case "PO Number":
			row[i] = device.OrderNumber
		case "Vendor":
			row[i] = device.PurchaseSourceType
		case "PO Date":
			row[i] = models.DateOnly(device.OrderDateTime)
		case "Warranty Expires":
			row[i] = cov.WarrantyExpires
		case "AppleCare ID":
			row[i] = cov.AppleCareID
		}
	}

	return row
}
