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
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/penny-vault/momentum-scan/archive"
	"github.com/penny-vault/momentum-scan/backblaze"
	"github.com/penny-vault/momentum-scan/healthcheck"
	"github.com/penny-vault/momentum-scan/rasterize"
	"github.com/penny-vault/momentum-scan/site"
)

var (
	pubFlags   renderFlags
	pubSiteDir string
	pubDate    string
	pubName    string
)

var publishCmd = &cobra.Command{
	Use:   "publish <csv-file-or-url>",
	Short: "Render a screener export and publish it into the browse site",
	Long: `The publish sub-command renders a screener export like generate and then
installs the document into the static browse site under scans/<date>[-name].html,
scaffolding the site on first use and regenerating the scan manifest. When
Backblaze credentials are configured the document is also uploaded, and a
configured healthcheck is pinged so missed daily publishes raise an alert.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startTime := time.Now()
		logger := log.With().Str("RunID", uuid.New().String()).Logger()

		applyConfigDefaults(cmd, &pubFlags)

		siteDir := pubSiteDir
		if !cmd.Flags().Changed("site") && viper.IsSet("site_dir") {
			siteDir = viper.GetString("site_dir")
		}

		scanDate := time.Now()
		if pubDate != "" {
			var err error
			scanDate, err = time.Parse("2006-01-02", pubDate)
			if err != nil {
				logger.Fatal().Err(err).Str("Date", pubDate).Msg("publish date must be YYYY-MM-DD")
			}
		}

		scanID := site.ScanID(scanDate, pubName)
		records, document := buildScan(args[0], &pubFlags, logger)

		docPath, numScans, err := site.Publish(document, siteDir, scanID)
		if err != nil {
			if healthcheck.Configured() {
				if hcErr := healthcheck.Fail(); hcErr != nil {
					logger.Warn().Err(hcErr).Msg("could not signal healthcheck failure")
				}
			}
			logger.Fatal().Err(err).Str("SiteDir", siteDir).Msg("could not publish scan")
		}
		logger.Info().Str("ScanID", scanID).Int("NumScans", numScans).Msg("manifest updated")

		if pubFlags.png {
			pngPath := strings.TrimSuffix(docPath, ".html") + ".png"
			if err := rasterize.Screenshot(docPath, pngPath); err != nil {
				logger.Warn().Err(err).Msg("image export failed, scan document was still published")
			}
		}

		if pubFlags.parquet {
			parquetPath := strings.TrimSuffix(docPath, ".html") + ".parquet"
			if err := archive.Save(records, parquetPath); err != nil {
				logger.Warn().Err(err).Msg("parquet archive failed, continuing")
			}
		}

		if backblaze.Configured() {
			year := scanDate.Format("2006")
			if err := backblaze.Upload(docPath, "scans/"+year); err != nil {
				logger.Warn().Err(err).Msg("backblaze upload failed, continuing")
			}
		} else {
			logger.Info().Msg("skipping upload to backblaze because backblaze credentials are missing")
		}

		if healthcheck.Configured() {
			if err := healthcheck.Ping(); err != nil {
				logger.Warn().Err(err).Msg("could not ping healthcheck")
			}
		}

		runTime := time.Since(startTime)
		logger.Info().Str("Elapsed", durafmt.Parse(runTime).LimitFirstN(2).String()).Msg("publish finished")

		fmt.Println(successStyle.Render(fmt.Sprintf("Published! View at: %s/index.html?date=%s", siteDir, scanID)))
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	addRenderFlags(publishCmd, &pubFlags)
	publishCmd.Flags().StringVar(&pubSiteDir, "site", "site", "browse site directory")
	publishCmd.Flags().StringVar(&pubDate, "date", "", "publish date (YYYY-MM-DD), defaults to today")
	publishCmd.Flags().StringVar(&pubName, "name", "", "scan name for multiple scans per day (e.g. semis, growth)")
}
