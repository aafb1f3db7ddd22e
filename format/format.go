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

// Package format converts raw screener values into display text plus a
// categorical style class. Every formatter accepts a nil value and renders
// the neutral placeholder for it; none of them can fail.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder renders in place of any missing value.
const Placeholder = "-"

// NearTermDays is the upcoming-event window: an earnings date at most this
// many days ahead gets the earnings-soon class.
const NearTermDays = 30

var printer = message.NewPrinter(language.English)

// ParseNumber converts screener cell text to a number. Currency symbols,
// sign prefixes, percent suffixes, and grouping commas are stripped and the
// magnitude suffixes K, M, and B are applied, so formatted table text parses
// back to its underlying value. Unparseable text yields nil.
func ParseNumber(value string) *float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return nil
	}

	scale := 1.0
	switch {
	case strings.HasSuffix(cleaned, "B"):
		scale = 1e9
	case strings.HasSuffix(cleaned, "M"):
		scale = 1e6
	case strings.HasSuffix(cleaned, "K"):
		scale = 1e3
	}

	cleaned = strings.NewReplacer("$", "", ",", "", "%", "", "+", "", "B", "", "M", "", "K", "").Replace(cleaned)
	num, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return nil
	}

	num *= scale

	return &num
}

// ParsePercent converts percentage cell text (with or without the % suffix)
// to a number. Unparseable text yields nil.
func ParsePercent(value string) *float64 {
	return ParseNumber(value)
}

// Price formats a dollar price with thousands grouping: $1,234.56.
func Price(v *float64) string {
	if v == nil {
		return Placeholder
	}

	return printer.Sprintf("$%.2f", *v)
}

// Liquidity formats a dollar volume in its magnitude unit: values of a
// billion or more render as $X.XB, everything else as $XXM.
func Liquidity(v *float64) string {
	if v == nil {
		return Placeholder
	}

	if *v >= 1e9 {
		return fmt.Sprintf("$%.1fB", *v/1e9)
	}

	return fmt.Sprintf("$%.0fM", *v/1e6)
}

// RS formats a composite relative strength percentile as badge text and its
// intensity class.
func RS(v *float64) (string, string) {
	if v == nil {
		return Placeholder, "rs-low"
	}

	var class string
	switch {
	case *v >= 90:
		class = "rs-elite"
	case *v >= 80:
		class = "rs-high"
	case *v >= 60:
		class = "rs-mid"
	default:
		class = "rs-low"
	}

	return fmt.Sprintf("%.0f", *v), class
}

// BIS formats a breakout intensity score.
func BIS(v *float64) (string, string) {
	if v == nil {
		return Placeholder, "bis-weak"
	}

	var class string
	switch {
	case *v >= 1.0:
		class = "bis-strong"
	case *v >= 0.5:
		class = "bis-moderate"
	default:
		class = "bis-weak"
	}

	return fmt.Sprintf("%.2f", *v), class
}

// RVol formats a relative volume multiple.
func RVol(v *float64) (string, string) {
	if v == nil {
		return Placeholder, "rvol-low"
	}

	var class string
	switch {
	case *v >= 1.5:
		class = "rvol-high"
	case *v >= 1.1:
		class = "rvol-mid"
	default:
		class = "rvol-low"
	}

	return fmt.Sprintf("%.2f", *v), class
}

// Contraction formats a price contraction percentage.
func Contraction(v *float64) (string, string) {
	if v == nil {
		return Placeholder, "contr-low"
	}

	var class string
	switch {
	case *v >= 70:
		class = "contr-high"
	case *v >= 50:
		class = "contr-mid"
	default:
		class = "contr-low"
	}

	return fmt.Sprintf("%.0f%%", *v), class
}

// ClosingRange formats a daily closing range percentage.
func ClosingRange(v *float64) (string, string) {
	if v == nil {
		return Placeholder, "dcr-low"
	}

	var class string
	switch {
	case *v >= 80:
		class = "dcr-high"
	case *v >= 50:
		class = "dcr-mid"
	default:
		class = "dcr-low"
	}

	return fmt.Sprintf("%.0f%%", *v), class
}

// FromOpen formats the signed percent move from the open.
func FromOpen(v *float64) (string, string) {
	if v == nil {
		return Placeholder, "from-open-mid"
	}

	var class string
	switch {
	case *v >= 3:
		class = "from-open-high"
	case *v >= 0:
		class = "from-open-mid"
	default:
		class = "from-open-neg"
	}

	return fmt.Sprintf("%+.1f%%", *v), class
}

// ADR formats an average daily range percentage.
func ADR(v *float64) string {
	if v == nil {
		return Placeholder
	}

	return fmt.Sprintf("%.1f%%", *v)
}

// Rank formats an RS rank score.
func Rank(v *float64) string {
	if v == nil {
		return Placeholder
	}

	return fmt.Sprintf("%.0f", *v)
}

// EarningsDate formats an upcoming earnings date with its day offset from
// today, e.g. "Mar 12 (+10d)". The earnings-soon class fires when the offset
// falls inside the near-term window; past dates and far-out dates get
// earnings-far.
func EarningsDate(v *time.Time, today time.Time) (string, string) {
	if v == nil {
		return Placeholder, "earnings-far"
	}

	days := dayOffset(*v, today)
	text := fmt.Sprintf("%s (%+dd)", v.Format("Jan 02"), days)

	if days >= 0 && days <= NearTermDays {
		return text, "earnings-soon"
	}

	return text, "earnings-far"
}

func dayOffset(date, today time.Time) int {
	truncate := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	return int(math.Round(truncate(date).Sub(truncate(today)).Hours() / 24))
}
