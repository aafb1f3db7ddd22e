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
package report

// Theme holds the flat-design palette injected into the document CSS.
type Theme struct {
	Bg              string
	ContainerBg     string
	ContainerBorder string
	Text            string
	TextSecondary   string
	TextMuted       string
	Border          string
	RowAlt          string
	Hover           string
	TheadBg         string
	TooltipBg       string
	TooltipText     string

	RSEliteBg   string
	RSEliteText string
	RSHighBg    string
	RSHighText  string
	RSMidBg     string
	RSMidText   string
	RSLowBg     string
	RSLowText   string

	BISStrong    string
	BISModerate  string
	BISWeak      string
	RVolHigh     string
	RVolMid      string
	RVolLow      string
	ContrHigh    string
	ContrMid     string
	ContrLow     string
	DCRHigh      string
	DCRMid       string
	DCRLow       string
	FromOpenHigh string
	FromOpenMid  string
	FromOpenNeg  string
	EarningsSoon string
	EarningsFar  string
}

var lightTheme = Theme{
	Bg:              "#ffffff",
	ContainerBg:     "#ffffff",
	ContainerBorder: "#e0e0e0",
	Text:            "#111111",
	TextSecondary:   "#333333",
	TextMuted:       "#666666",
	Border:          "#e8e8e8",
	RowAlt:          "#fafafa",
	Hover:           "#f5f5f5",
	TheadBg:         "#f8f8f8",
	TooltipBg:       "#1f2937",
	TooltipText:     "#ffffff",

	RSEliteBg:   "#16a34a",
	RSEliteText: "#ffffff",
	RSHighBg:    "#4ade80",
	RSHighText:  "#052e16",
	RSMidBg:     "#fbbf24",
	RSMidText:   "#422006",
	RSLowBg:     "#e5e5e5",
	RSLowText:   "#737373",

	BISStrong:    "#16a34a",
	BISModerate:  "#d97706",
	BISWeak:      "#9ca3af",
	RVolHigh:     "#16a34a",
	RVolMid:      "#d97706",
	RVolLow:      "#9ca3af",
	ContrHigh:    "#16a34a",
	ContrMid:     "#d97706",
	ContrLow:     "#9ca3af",
	DCRHigh:      "#16a34a",
	DCRMid:       "#d97706",
	DCRLow:       "#9ca3af",
	FromOpenHigh: "#16a34a",
	FromOpenMid:  "#6b7280",
	FromOpenNeg:  "#dc2626",
	EarningsSoon: "#d97706",
	EarningsFar:  "#9ca3af",
}

var darkTheme = Theme{
	Bg:              "#0f0f0f",
	ContainerBg:     "#1a1a1a",
	ContainerBorder: "#2a2a2a",
	Text:            "#ffffff",
	TextSecondary:   "#e0e0e0",
	TextMuted:       "#888888",
	Border:          "#2a2a2a",
	RowAlt:          "#151515",
	Hover:           "#222222",
	TheadBg:         "#252525",
	TooltipBg:       "#333333",
	TooltipText:     "#ffffff",

	RSEliteBg:   "#22c55e",
	RSEliteText: "#ffffff",
	RSHighBg:    "#4ade80",
	RSHighText:  "#052e16",
	RSMidBg:     "#fbbf24",
	RSMidText:   "#422006",
	RSLowBg:     "#404040",
	RSLowText:   "#a0a0a0",

	BISStrong:    "#22c55e",
	BISModerate:  "#fbbf24",
	BISWeak:      "#666666",
	RVolHigh:     "#22c55e",
	RVolMid:      "#fbbf24",
	RVolLow:      "#666666",
	ContrHigh:    "#22c55e",
	ContrMid:     "#fbbf24",
	ContrLow:     "#666666",
	DCRHigh:      "#22c55e",
	DCRMid:       "#fbbf24",
	DCRLow:       "#666666",
	FromOpenHigh: "#22c55e",
	FromOpenMid:  "#888888",
	FromOpenNeg:  "#ef4444",
	EarningsSoon: "#fbbf24",
	EarningsFar:  "#666666",
}

// ThemeFor selects one of the two built-in palettes.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}

	return lightTheme
}
