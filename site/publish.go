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

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
)

//go:embed index.html
var browsePage []byte

// ScanID builds the identifier (and filename stem) for a published scan:
// the ISO date, suffixed with a slug of the scan name when one is given.
func ScanID(date time.Time, name string) string {
	id := date.Format("2006-01-02")
	if name != "" {
		id = id + "-" + slug.Make(name)
	}

	return id
}

// Publish installs a rendered document under siteDir/scans/<scanID>.html,
// scaffolds the browse page if the site is new, and regenerates the
// manifest. It returns the path of the installed document and the total
// number of published scans.
func Publish(document string, siteDir, scanID string) (string, int, error) {
	scansDir := filepath.Join(siteDir, "scans")
	if err := os.MkdirAll(scansDir, 0755); err != nil {
		return "", 0, fmt.Errorf("create scans directory: %w", err)
	}

	docPath := filepath.Join(scansDir, scanID+".html")
	if err := os.WriteFile(docPath, []byte(document), 0644); err != nil {
		return "", 0, fmt.Errorf("write scan document: %w", err)
	}

	indexPath := filepath.Join(siteDir, "index.html")
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		if err := os.WriteFile(indexPath, browsePage, 0644); err != nil {
			return "", 0, fmt.Errorf("scaffold browse page: %w", err)
		}
		log.Info().Str("FileName", indexPath).Msg("scaffolded browse page")
	}

	entries, err := BuildManifest(scansDir)
	if err != nil {
		return "", 0, err
	}

	if err := WriteManifest(scansDir, entries); err != nil {
		return "", 0, err
	}

	return docPath, len(entries), nil
}
