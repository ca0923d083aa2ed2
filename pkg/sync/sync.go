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

// Package sync drives the warranty export pipeline: enumerate the device
// inventory, skip serials already on disk, resolve coverage for new devices,
// and append one row per device to the matching CSV output.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/fleetyard/warrantysync/pkg/abm"
	"github.com/fleetyard/warrantysync/pkg/models"
)

// Stats are the per-run counters reported when the pipeline finishes.
type Stats struct {
	PagesFetched   int
	DevicesSeen    int
	Skipped        int
	NewComputers   int
	NewMobile      int
	CoverageErrors int
}

// output pairs one CSV file with its ledger of known serials.
type output struct {
	name   string
	ledger *Ledger
	writer *Writer
}

// Service runs one warranty sync pass. Execution is strictly sequential: one
// token, one page at a time, one coverage fetch and one file append per
// device, paced by a fixed inter-request delay.
type Service struct {
	config   *models.Config
	tokens   abm.TokenProvider
	devices  abm.DeviceFetcher
	coverage abm.CoverageFetcher
	computer *output
	mobile   *output
	limiter  *rate.Limiter
	logger   zerolog.Logger
	stats    Stats
}

// NewService wires a Service from the run configuration: the API client
// (loading the private key, fatal if unusable), the two output writers, and
// the ledgers rebuilt from whatever rows those files already hold.
func NewService(cfg *models.Config, log zerolog.Logger) (*Service, error) {
	client, err := abm.NewClient(cfg, log)
	if err != nil {
		return nil, err
	}

	computer, err := openOutput("computer", cfg.ComputerPath(), ComputerColumns)
	if err != nil {
		return nil, err
	}

	mobile, err := openOutput("mobile", cfg.MobilePath(), MobileColumns)
	if err != nil {
		computer.writer.Close()
		return nil, err
	}

	s := &Service{
		config:   cfg,
		tokens:   client,
		devices:  client,
		coverage: client,
		computer: computer,
		mobile:   mobile,
		limiter:  rate.NewLimiter(rate.Every(time.Duration(cfg.RequestDelay)), 1),
		logger:   log,
	}

	log.Info().
		Int("known_computers", computer.ledger.Len()).
		Int("known_mobile", mobile.ledger.Len()).
		Msg("Loaded existing output ledgers")

	return s, nil
}

func openOutput(name, path string, columns []string) (*output, error) {
	ledger, err := LoadLedger(path)
	if err != nil {
		return nil, err
	}

	writer, err := OpenWriter(path, columns)
	if err != nil {
		return nil, err
	}

	return &output{name: name, ledger: ledger, writer: writer}, nil
}

// Run executes the pipeline. Token and device-listing failures abort the run;
// per-device coverage failures are counted and the run continues.
func (s *Service) Run(ctx context.Context) error {
	token, err := s.tokens.GetAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	cursor := ""

	for {
		page, err := s.devices.FetchDevicePage(ctx, token, cursor)
		if err != nil {
			return fmt.Errorf("failed to fetch device page: %w", err)
		}

		s.stats.PagesFetched++
		s.logger.Debug().
			Int("devices", len(page.Data)).
			Int("page", s.stats.PagesFetched).
			Msg("Fetched device page")

		for i := range page.Data {
			if err := s.processDevice(ctx, token, page.Data[i].Model()); err != nil {
				return err
			}
		}

		cursor = page.Meta.Paging.NextCursor
		if cursor == "" {
			break
		}
	}

	s.report()

	return nil
}

// processDevice classifies one device against its output's ledger and, when
// new, resolves coverage and appends its row. The serial joins the ledger as
// soon as the row is written, so a serial repeated across pages in one run
// still yields at most one row.
func (s *Service) processDevice(ctx context.Context, token string, device models.Device) error {
	s.stats.DevicesSeen++

	if device.SerialNumber == "" {
		s.logger.Warn().Msg("Skipping device without serial number")
		return nil
	}

	out := s.mobile
	if device.ProductFamily == models.ProductFamilyMac {
		out = s.computer
	}

	if out.ledger.Known(device.SerialNumber) {
		s.stats.Skipped++
		return nil
	}

	var cov models.CoverageSummary

	entries, err := s.coverage.FetchCoverage(ctx, token, device.SerialNumber)
	if err != nil {
		// Recoverable: the row still goes out with the fields we have.
		s.stats.CoverageErrors++
		s.logger.Warn().
			Err(err).
			Str("serial", device.SerialNumber).
			Msg("Coverage lookup failed, writing row without warranty fields")
	} else {
		cov = abm.ResolveCoverage(entries)
	}

	if err := out.writer.WriteRow(buildRow(out.writer.columns, device, cov)); err != nil {
		return err
	}

	out.ledger.Add(device.SerialNumber)

	if out == s.computer {
		s.stats.NewComputers++
	} else {
		s.stats.NewMobile++
	}

	s.logger.Debug().
		Str("serial", device.SerialNumber).
		Str("output", out.name).
		Str("warranty_expires", cov.WarrantyExpires).
		Msg("Recorded device")

	// Pacing only; there is no retry or backoff.
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	return nil
}

func (s *Service) report() {
	if s.stats.NewComputers == 0 && s.stats.NewMobile == 0 {
		s.logger.Info().
			Int("devices_seen", s.stats.DevicesSeen).
			Msg("Already up to date, no new devices recorded")
		return
	}

	s.logger.Info().
		Int("pages", s.stats.PagesFetched).
		Int("devices_seen", s.stats.DevicesSeen).
		Int("skipped_known", s.stats.Skipped).
		Int("new_computers", s.stats.NewComputers).
		Int("new_mobile", s.stats.NewMobile).
		Int("coverage_errors", s.stats.CoverageErrors).
		Msg("Warranty sync complete")
}

// Stats returns the counters accumulated so far.
func (s *Service) Stats() Stats {
	return s.stats
}

// Close releases both output file handles.
func (s *Service) Close() error {
	var firstErr error

	for _, out := range []*output{s.computer, s.mobile} {
		if out == nil || out.writer == nil {
			continue
		}

		if err := out.writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
