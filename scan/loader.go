// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package scan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

var ErrNoRecords = errors.New("no records found in csv input")

// Load reads screener rows from r. Columns that are not part of the schema
// are ignored and missing columns leave the corresponding fields empty. Rows
// without a ticker symbol are dropped.
func Load(r io.Reader) ([]*Record, error) {
	records := []*Record{}
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	kept := make([]*Record, 0, len(records))
	for _, record := range records {
		record.Ticker = strings.TrimSpace(record.Ticker)
		if record.Ticker == "" {
			log.Warn().Msg("dropping row without ticker symbol")
			continue
		}
		record.Normalize()
		kept = append(kept, record)
	}

	if len(kept) == 0 {
		return nil, ErrNoRecords
	}

	return kept, nil
}

// LoadFile reads screener rows from the CSV file at path.
func LoadFile(path string) ([]*Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer fh.Close()

	return Load(fh)
}
