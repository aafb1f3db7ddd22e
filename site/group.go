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
package site

// DayGroup collects the scans published on one calendar day.
type DayGroup struct {
	Date    string
	Entries []Entry
}

// MonthGroup collects a month's day groups. Month is the YYYY-MM prefix of
// the member dates.
type MonthGroup struct {
	Month string
	Days  []DayGroup
}

// GroupEntries buckets manifest entries by month, then by day, preserving
// the order entries arrive in (newest first when fed from BuildManifest).
// The browse UI applies the same rule client-side.
func GroupEntries(entries []Entry) []MonthGroup {
	months := []MonthGroup{}

	for _, entry := range entries {
		if len(entry.Date) < 7 {
			continue
		}
		month := entry.Date[:7]

		if len(months) == 0 || months[len(months)-1].Month != month {
			months = append(months, MonthGroup{Month: month})
		}
		mg := &months[len(months)-1]

		if len(mg.Days) == 0 || mg.Days[len(mg.Days)-1].Date != entry.Date {
			mg.Days = append(mg.Days, DayGroup{Date: entry.Date})
		}
		day := &mg.Days[len(mg.Days)-1]
		day.Entries = append(day.Entries, entry)
	}

	return months
}
