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
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/penny-vault/momentum-scan/archive"
	"github.com/penny-vault/momentum-scan/fetch"
	"github.com/penny-vault/momentum-scan/rasterize"
	"github.com/penny-vault/momentum-scan/report"
	"github.com/penny-vault/momentum-scan/scan"
)

// renderFlags are the options shared by generate and publish.
type renderFlags struct {
	sortField string
	order     string
	title     string
	subtitle  string
	emoji     string
	dark      bool
	png       bool
	parquet   bool
}

var (
	genFlags   renderFlags
	genOutput  string
	genPngOnly bool
)

var successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

var generateCmd = &cobra.Command{
	Use:   "generate <csv-file-or-url>",
	Short: "Render a screener export as a shareable HTML table",
	Long: `The generate sub-command loads a stock screener CSV export (or downloads
one when given a URL), sorts it by the requested field, and renders a styled,
self-contained HTML document. Optionally the document is also rasterized to a
PNG image and the normalized records archived to parquet.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startTime := time.Now()
		logger := log.With().Str("RunID", uuid.New().String()).Logger()

		applyConfigDefaults(cmd, &genFlags)
		records, document := buildScan(args[0], &genFlags, logger)

		htmlPath := genOutput + ".html"
		if err := os.WriteFile(htmlPath, []byte(document), 0644); err != nil {
			logger.Fatal().Err(err).Str("FileName", htmlPath).Msg("could not write html artifact")
		}
		logger.Info().Str("FileName", htmlPath).Int("NumRecords", len(records)).Msg("wrote scan table")

		if genFlags.parquet {
			if err := archive.Save(records, genOutput+".parquet"); err != nil {
				logger.Warn().Err(err).Msg("parquet archive failed, continuing")
			}
		}

		if genFlags.png || genPngOnly {
			pngPath := genOutput + ".png"
			if err := rasterize.Screenshot(htmlPath, pngPath); err != nil {
				if genPngOnly {
					logger.Fatal().Err(err).Msg("image export failed and was the only requested output")
				}
				logger.Warn().Err(err).Msg("image export failed, html artifact was still written")
			}
		}

		if genPngOnly {
			// the html document only existed to feed the screenshot
			if err := os.Remove(htmlPath); err != nil {
				logger.Warn().Err(err).Str("FileName", htmlPath).Msg("could not remove intermediate html")
			}
		}

		runTime := time.Since(startTime)
		logger.Info().Str("Elapsed", durafmt.Parse(runTime).LimitFirstN(2).String()).Msg("generate finished")

		fmt.Println(successStyle.Render(fmt.Sprintf("Done! %d stocks rendered to %s", len(records), genOutput+".*")))
	},
}

// buildScan runs the shared load -> sort -> render pipeline; every failure
// in it is fatal to the command.
func buildScan(input string, flags *renderFlags, logger zerolog.Logger) ([]*scan.Record, string) {
	if fetch.IsURL(input) {
		path, err := fetch.Download(input)
		if err != nil {
			logger.Fatal().Err(err).Str("URL", input).Msg("could not download screener export")
		}
		defer os.Remove(path)
		input = path
	}

	records, err := scan.LoadFile(input)
	if err != nil {
		logger.Fatal().Err(err).Str("FileName", input).Msg("could not load screener export")
	}
	logger.Info().Int("NumRecords", len(records)).Msg("loaded screener export")

	if flags.order != "asc" && flags.order != "desc" {
		logger.Fatal().Str("Order", flags.order).Msg("sort order must be 'asc' or 'desc'")
	}

	if err := scan.Sort(records, flags.sortField, flags.order == "desc"); err != nil {
		logger.Fatal().Err(err).Msg("could not sort records")
	}
	logger.Info().Str("SortField", flags.sortField).Str("Order", flags.order).Msg("sorted records")

	document, err := report.Render(records, report.Options{
		Title:    flags.title,
		Subtitle: flags.subtitle,
		Emoji:    flags.emoji,
		Dark:     flags.dark,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("could not render document")
	}

	return records, document
}

func addRenderFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().StringVar(&flags.sortField, "sort", "BIS", "field to sort by")
	cmd.Flags().StringVar(&flags.order, "order", "desc", "sort order (asc or desc)")
	cmd.Flags().StringVar(&flags.title, "title", "Momentum Scan", "table title")
	cmd.Flags().StringVar(&flags.subtitle, "subtitle", "", "subtitle below title")
	cmd.Flags().StringVar(&flags.emoji, "emoji", "📡", "emoji before title")
	cmd.Flags().BoolVar(&flags.dark, "dark", false, "use dark mode theme")
	cmd.Flags().BoolVar(&flags.png, "png", false, "also generate a PNG image")
	cmd.Flags().BoolVar(&flags.parquet, "parquet", false, "also archive normalized records to parquet")
}

// applyConfigDefaults lets the config file override flag defaults the user
// did not set explicitly.
func applyConfigDefaults(cmd *cobra.Command, flags *renderFlags) {
	if !cmd.Flags().Changed("title") && viper.IsSet("title") {
		flags.title = viper.GetString("title")
	}
	if !cmd.Flags().Changed("emoji") && viper.IsSet("emoji") {
		flags.emoji = viper.GetString("emoji")
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addRenderFlags(generateCmd, &genFlags)
	generateCmd.Flags().StringVar(&genOutput, "output", "momentum_scan", "output filename (without extension)")
	generateCmd.Flags().BoolVar(&genPngOnly, "png-only", false, "only produce the PNG image")
}
