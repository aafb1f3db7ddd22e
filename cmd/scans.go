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
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xeonx/timeago"

	"github.com/penny-vault/momentum-scan/site"
)

var scansSiteDir string

var scansCmd = &cobra.Command{
	Use:   "scans",
	Short: "List published scans grouped by month and day",
	Run: func(cmd *cobra.Command, args []string) {
		siteDir := scansSiteDir
		if !cmd.Flags().Changed("site") && viper.IsSet("site_dir") {
			siteDir = viper.GetString("site_dir")
		}

		entries, err := site.BuildManifest(filepath.Join(siteDir, "scans"))
		if err != nil {
			log.Fatal().Err(err).Str("SiteDir", siteDir).Msg("could not list published scans")
		}

		builder := strings.Builder{}
		builder.WriteString("# Published Scans\n\n")

		if len(entries) == 0 {
			builder.WriteString("No scans published yet.\n")
		}

		for _, month := range site.GroupEntries(entries) {
			monthTime, err := time.Parse("2006-01", month.Month)
			if err != nil {
				continue
			}
			builder.WriteString(fmt.Sprintf("## %s\n\n", monthTime.Format("January 2006")))

			for _, day := range month.Days {
				for _, entry := range day.Entries {
					age := ""
					if dayTime, err := time.Parse("2006-01-02", entry.Date); err == nil {
						age = fmt.Sprintf(" (%s)", timeago.English.Format(dayTime))
					}
					if entry.Name != "" {
						builder.WriteString(fmt.Sprintf("  * %s: %s%s\n", entry.Date, entry.Name, age))
					} else {
						builder.WriteString(fmt.Sprintf("  * %s%s\n", entry.Date, age))
					}
				}
			}
			builder.WriteString("\n")
		}

		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(80),
		)

		out, err := r.Render(builder.String())
		if err != nil {
			log.Fatal().Err(err).Msg("could not render scan listing")
		}

		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(scansCmd)
	scansCmd.Flags().StringVar(&scansSiteDir, "site", "site", "browse site directory")
}
