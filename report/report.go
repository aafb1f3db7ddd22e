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

// Package report renders a list of screener records into one self-contained
// HTML document: palette, grouped table, and the client-side sort, column
// resize, and copy-to-clipboard script. Records must already be sorted.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/penny-vault/momentum-scan/format"
	"github.com/penny-vault/momentum-scan/scan"
)

//go:embed template.html
var documentTemplate string

// Options control the document chrome; they do not affect row data.
type Options struct {
	Title    string
	Subtitle string
	Emoji    string
	Dark     bool

	// Today anchors earnings day offsets; the zero value means time.Now.
	Today time.Time
}

// Column is one table column of the rendered document.
type Column struct {
	Label        string
	Type         scan.FieldType
	TooltipTitle string
	Tooltip      string
}

// ColumnGroup is an ordered set of columns sharing a visual category,
// rendered as a labelled band above the column headers.
type ColumnGroup struct {
	Title   string
	Columns []Column
}

// Groups is the document column layout.
var Groups = []ColumnGroup{
	{Title: "Identity", Columns: []Column{
		{Label: "Ticker", Type: scan.FieldString},
		{Label: "RS", Type: scan.FieldPercent,
			TooltipTitle: "Composite Relative Strength",
			Tooltip:      "Combines multiple timeframes (1M, 3M, 6M, 1Y) into an aggregate score. Percentile ranking vs all stocks. 90+ = top 10% performers across timeframes."},
		{Label: "Name", Type: scan.FieldString},
		{Label: "Industry", Type: scan.FieldString},
	}},
	{Title: "Price", Columns: []Column{
		{Label: "Price", Type: scan.FieldNumber},
		{Label: "Liq", Type: scan.FieldCurrency,
			TooltipTitle: "Daily Liquidity",
			Tooltip:      "20-day average dollar volume (price x volume). Indicates how easily you can enter/exit positions. Higher = more liquid, tighter spreads, less slippage."},
	}},
	{Title: "Momentum", Columns: []Column{
		{Label: "BIS", Type: scan.FieldNumber,
			TooltipTitle: "Breakout Intensity Score",
			Tooltip:      "Measures breakout strength by combining price move (% change / ADR), relative volume vs 20-day avg, and intraday efficiency (close position in day's range). Higher = stronger conviction breakout."},
		{Label: "DCR", Type: scan.FieldPercent,
			TooltipTitle: "Daily Closing Range",
			Tooltip:      "Where price closed within the day's high-low range. 100% = closed at the high, 0% = closed at the low. Higher values indicate bullish closing action."},
		{Label: "ADR%", Type: scan.FieldPercent,
			TooltipTitle: "Average Daily Range",
			Tooltip:      "Average of (High - Low) / Close over the last 20 trading days. Excludes overnight gaps. Useful for position sizing and setting stop losses."},
		{Label: "P.Contr", Type: scan.FieldPercent,
			TooltipTitle: "Price Contraction",
			Tooltip:      "Volatility contraction score over 15 sessions. Ranks current session's price range vs recent ranges. Higher = tighter consolidation."},
	}},
	{Title: "Volume", Columns: []Column{
		{Label: "RVol", Type: scan.FieldNumber,
			TooltipTitle: "Relative Volume",
			Tooltip:      "Today's volume divided by 20-day average volume. 1.0 = normal, 1.5+ = elevated interest, 2.0+ = unusual activity worth attention."},
		{Label: "% Open", Type: scan.FieldNumber},
	}},
	{Title: "Outlook", Columns: []Column{
		{Label: "Rank", Type: scan.FieldNumber,
			TooltipTitle: "RS Rank",
			Tooltip:      "Custom score combining performance across multiple timeframes (1M to 1Y) plus distance from 52-week high/low."},
		{Label: "Earnings", Type: scan.FieldDate,
			TooltipTitle: "Next Earnings",
			Tooltip:      "Next scheduled earnings report and the number of days until it. Reports inside 30 days are highlighted."},
	}},
}

type cell struct {
	Text  string
	Class string
	Badge bool
	Copy  bool
}

type headerColumn struct {
	Column
	Index int
}

type templateData struct {
	Title        string
	Subtitle     string
	Emoji        string
	Date         string
	Count        int
	Theme        Theme
	Groups       []ColumnGroup
	Headers      []headerColumn
	Rows         [][]cell
	ClientScript template.JS
}

//go:embed client.js
var clientScript string

// Render produces the complete HTML document for records.
func Render(records []*scan.Record, opts Options) (string, error) {
	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}

	rows := make([][]cell, 0, len(records))
	for _, record := range records {
		rows = append(rows, recordCells(record, today))
	}

	headers := make([]headerColumn, 0)
	for _, group := range Groups {
		for _, col := range group.Columns {
			headers = append(headers, headerColumn{Column: col, Index: len(headers)})
		}
	}

	data := templateData{
		Title:        opts.Title,
		Subtitle:     opts.Subtitle,
		Emoji:        opts.Emoji,
		Date:         today.Format("Jan 02, 2006"),
		Count:        len(records),
		Theme:        ThemeFor(opts.Dark),
		Groups:       Groups,
		Headers:      headers,
		Rows:         rows,
		ClientScript: template.JS(clientScript),
	}

	tmpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return "", fmt.Errorf("parse document template: %w", err)
	}

	builder := strings.Builder{}
	if err := tmpl.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}

	return builder.String(), nil
}

func recordCells(r *scan.Record, today time.Time) []cell {
	rsText, rsClass := format.RS(r.CompositeRS)
	bisText, bisClass := format.BIS(r.BIS)
	dcrText, dcrClass := format.ClosingRange(r.ClosingRange)
	contrText, contrClass := format.Contraction(r.Contraction)
	rvolText, rvolClass := format.RVol(r.RVol)
	fromOpenText, fromOpenClass := format.FromOpen(r.FromOpen)
	earningsText, earningsClass := format.EarningsDate(r.NextEarnings, today)

	industry := r.Industry
	if industry == "" {
		industry = format.Placeholder
	}

	return []cell{
		{Text: r.Ticker, Class: "ticker", Copy: true},
		{Text: rsText, Class: rsClass, Badge: true},
		{Text: format.ShortName(r.Name), Class: "name"},
		{Text: industry, Class: "industry"},
		{Text: format.Price(r.Price), Class: "price"},
		{Text: format.Liquidity(r.Liquidity), Class: "liq"},
		{Text: bisText, Class: bisClass},
		{Text: dcrText, Class: dcrClass},
		{Text: format.ADR(r.ADR), Class: "adr"},
		{Text: contrText, Class: contrClass},
		{Text: rvolText, Class: rvolClass},
		{Text: fromOpenText, Class: fromOpenClass},
		{Text: format.Rank(r.RSRank), Class: "rank"},
		{Text: earningsText, Class: earningsClass},
	}
}
