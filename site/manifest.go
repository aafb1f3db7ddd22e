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

// Package site publishes rendered scan documents into a static browse site
// and maintains the manifest its client-side UI reads.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// Entry is one published scan in the manifest. ID doubles as the document
// filename stem; Name distinguishes multiple scans published the same day.
type Entry struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

var scanIDPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?:-(.+))?$`)

// ParseEntry extracts a manifest entry from a scan filename stem of the form
// YYYY-MM-DD or YYYY-MM-DD-name.
func ParseEntry(stem string) (Entry, bool) {
	match := scanIDPattern.FindStringSubmatch(stem)
	if match == nil {
		return Entry{}, false
	}

	return Entry{ID: stem, Date: match[1], Name: match[2]}, true
}

// BuildManifest lists the scan documents in scansDir as manifest entries,
// newest first, ties broken by name. Files that do not follow the scan
// naming convention are skipped.
func BuildManifest(scansDir string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(scansDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("list scan documents: %w", err)
	}

	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		stem := strings.TrimSuffix(filepath.Base(path), ".html")
		if entry, ok := ParseEntry(stem); ok {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].Name > entries[j].Name
	})

	return entries, nil
}

// WriteManifest serializes entries into scansDir/manifest.js, the file the
// browse UI loads with an ordinary script tag.
func WriteManifest(scansDir string, entries []Entry) error {
	encoded, err := json.MarshalIndent(entries, "  ", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest entries: %w", err)
	}

	content := fmt.Sprintf(`// Auto-generated manifest of available scans.
// Updated by momentum-scan publish; do not edit by hand.

const SCAN_MANIFEST = {
  "scans": %s
};
`, string(encoded))

	if err := os.WriteFile(filepath.Join(scansDir, "manifest.js"), []byte(content), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
