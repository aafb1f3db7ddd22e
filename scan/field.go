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
	"fmt"
	"strings"
)

type FieldType string

const (
	FieldString   FieldType = "string"
	FieldNumber   FieldType = "number"
	FieldPercent  FieldType = "percent"
	FieldCurrency FieldType = "currency"
	FieldDate     FieldType = "date"
)

// Field describes one column of the screener schema: the short display name
// used on the command line and in table headers, the CSV column it is read
// from, and the type governing how it formats and compares.
type Field struct {
	Name   string
	Column string
	Type   FieldType
}

// Fields is the fixed screener schema in display order.
var Fields = []Field{
	{Name: "Ticker", Column: "Ticker", Type: FieldString},
	{Name: "RS", Column: "Composite RS", Type: FieldPercent},
	{Name: "Name", Column: "Name", Type: FieldString},
	{Name: "Industry", Column: "Industry", Type: FieldString},
	{Name: "Price", Column: "Price", Type: FieldNumber},
	{Name: "Liq", Column: "Daily Liquidity", Type: FieldCurrency},
	{Name: "BIS", Column: "BIS", Type: FieldNumber},
	{Name: "DCR", Column: "Daily Closing Range", Type: FieldPercent},
	{Name: "ADR%", Column: "ADR %", Type: FieldPercent},
	{Name: "P.Contr", Column: "Price Contraction", Type: FieldPercent},
	{Name: "RVol", Column: "RVol", Type: FieldNumber},
	{Name: "% Open", Column: "% From Open", Type: FieldNumber},
	{Name: "Rank", Column: "RS Rank", Type: FieldNumber},
	{Name: "Earnings", Column: "Next Earnings", Type: FieldDate},
}

// FieldByName resolves a display name or CSV column name to its schema
// field. Matching is case-insensitive.
func FieldByName(name string) (Field, error) {
	for _, field := range Fields {
		if strings.EqualFold(field.Name, name) || strings.EqualFold(field.Column, name) {
			return field, nil
		}
	}

	return Field{}, fmt.Errorf("unknown field %q, valid fields are: %s", name, strings.Join(FieldNames(), ", "))
}

// FieldNames returns the display names of every schema field.
func FieldNames() []string {
	names := make([]string, 0, len(Fields))
	for _, field := range Fields {
		names = append(names, field.Name)
	}

	return names
}
