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
	"sort"
	"strings"
)

// sortKey is the comparable value a field resolves to for one record.
// Numeric, percent, currency, and date fields compare numerically; string
// fields compare case-folded. ok is false when the field value is missing.
type sortKey struct {
	num   float64
	str   string
	isStr bool
	ok    bool
}

func (a sortKey) less(b sortKey) bool {
	if a.isStr {
		return strings.Compare(a.str, b.str) < 0
	}

	return a.num < b.num
}

func keyFor(r *Record, field Field) sortKey {
	numKey := func(v *float64) sortKey {
		if v == nil {
			return sortKey{}
		}
		return sortKey{num: *v, ok: true}
	}

	switch field.Column {
	case "Ticker":
		return sortKey{str: strings.ToLower(r.Ticker), isStr: true, ok: r.Ticker != ""}
	case "Name":
		return sortKey{str: strings.ToLower(r.Name), isStr: true, ok: r.Name != ""}
	case "Industry":
		return sortKey{str: strings.ToLower(r.Industry), isStr: true, ok: r.Industry != ""}
	case "Price":
		return numKey(r.Price)
	case "Daily Liquidity":
		return numKey(r.Liquidity)
	case "Composite RS":
		return numKey(r.CompositeRS)
	case "BIS":
		return numKey(r.BIS)
	case "Daily Closing Range":
		return numKey(r.ClosingRange)
	case "ADR %":
		return numKey(r.ADR)
	case "Price Contraction":
		return numKey(r.Contraction)
	case "RVol":
		return numKey(r.RVol)
	case "% From Open":
		return numKey(r.FromOpen)
	case "RS Rank":
		return numKey(r.RSRank)
	case "Next Earnings":
		if r.NextEarnings == nil {
			return sortKey{}
		}
		return sortKey{num: float64(r.NextEarnings.Unix()), ok: true}
	}

	return sortKey{}
}

// Sort orders records in place by the named field. Ordering is stable and
// records missing the field always sort last, regardless of direction. An
// unknown field name returns an error listing the valid field names.
func Sort(records []*Record, fieldName string, descending bool) error {
	field, err := FieldByName(fieldName)
	if err != nil {
		return err
	}

	sort.SliceStable(records, func(i, j int) bool {
		a := keyFor(records[i], field)
		b := keyFor(records[j], field)

		switch {
		case !a.ok:
			return false
		case !b.ok:
			return true
		}

		if descending {
			return b.less(a)
		}

		return a.less(b)
	})

	return nil
}
