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
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/penny-vault/momentum-scan/format"
)

// Record is a single row of a stock screener export. The `csv` tagged fields
// capture the raw cell text; Normalize derives the typed fields from them.
// Every field other than Ticker may be missing.
type Record struct {
	Ticker          string `csv:"Ticker"`
	Name            string `csv:"Name"`
	Industry        string `csv:"Industry"`
	PriceStr        string `csv:"Price"`
	LiquidityStr    string `csv:"Daily Liquidity"`
	CompositeRSStr  string `csv:"Composite RS"`
	BISStr          string `csv:"BIS"`
	ClosingRangeStr string `csv:"Daily Closing Range"`
	ADRStr          string `csv:"ADR %"`
	ContractionStr  string `csv:"Price Contraction"`
	RVolStr         string `csv:"RVol"`
	FromOpenStr     string `csv:"% From Open"`
	RSRankStr       string `csv:"RS Rank"`
	NextEarningsStr string `csv:"Next Earnings"`

	Price        *float64   `csv:"-"`
	Liquidity    *float64   `csv:"-"`
	CompositeRS  *float64   `csv:"-"`
	BIS          *float64   `csv:"-"`
	ClosingRange *float64   `csv:"-"`
	ADR          *float64   `csv:"-"`
	Contraction  *float64   `csv:"-"`
	RVol         *float64   `csv:"-"`
	FromOpen     *float64   `csv:"-"`
	RSRank       *float64   `csv:"-"`
	NextEarnings *time.Time `csv:"-"`
}

// earnings dates arrive in different shapes depending on which screener
// produced the export
var earningsDateLayouts = []string{"2006-01-02", "20060102", "1/2/2006", "Jan 2, 2006"}

// Normalize parses the raw cell text into the typed fields. Cells that fail
// to parse are logged and left nil so a single bad value never drops a row.
func (r *Record) Normalize() {
	r.Price = format.ParseNumber(r.PriceStr)
	r.Liquidity = format.ParseNumber(r.LiquidityStr)
	r.CompositeRS = format.ParsePercent(r.CompositeRSStr)
	r.BIS = format.ParseNumber(r.BISStr)
	r.ClosingRange = format.ParsePercent(r.ClosingRangeStr)
	r.ADR = format.ParsePercent(r.ADRStr)
	r.Contraction = format.ParsePercent(r.ContractionStr)
	r.RVol = format.ParseNumber(r.RVolStr)
	r.FromOpen = format.ParseNumber(r.FromOpenStr)
	r.RSRank = format.ParseNumber(r.RSRankStr)

	if r.NextEarningsStr != "" {
		parsed := false
		for _, layout := range earningsDateLayouts {
			if dt, err := time.Parse(layout, r.NextEarningsStr); err == nil {
				r.NextEarnings = &dt
				parsed = true
				break
			}
		}
		if !parsed {
			log.Warn().Str("Ticker", r.Ticker).Str("InputString", r.NextEarningsStr).Msg("could not parse next earnings date")
		}
	}
}

func (r *Record) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Ticker", r.Ticker)
	e.Str("Name", r.Name)
	if r.Price != nil {
		e.Float64("Price", *r.Price)
	}
	if r.BIS != nil {
		e.Float64("BIS", *r.BIS)
	}
	if r.CompositeRS != nil {
		e.Float64("CompositeRS", *r.CompositeRS)
	}
}
