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
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type configFile struct {
	Title   string `toml:"title,omitempty"`
	Emoji   string `toml:"emoji,omitempty"`
	SiteDir string `toml:"site_dir,omitempty"`

	Backblaze struct {
		ApplicationID  string `toml:"application_id,omitempty"`
		ApplicationKey string `toml:"application_key,omitempty"`
		Bucket         string `toml:"bucket,omitempty"`
	} `toml:"backblaze,omitempty"`

	Healthchecks struct {
		PingURL string `toml:"pingurl,omitempty"`
	} `toml:"healthchecks,omitempty"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather configuration and write ~/.momentum-scan.toml",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFile{
			Title:   "Momentum Scan",
			Emoji:   "📡",
			SiteDir: "site",
		}

		var confirmed bool

		form := huh.NewForm(
			// defaults applied to every generated table
			huh.NewGroup(
				huh.NewInput().
					Title("Default table title:").
					Value(&cfg.Title),

				huh.NewInput().
					Title("Emoji shown before the title (leave empty for none):").
					Value(&cfg.Emoji),

				huh.NewInput().
					Title("Directory of the static browse site:").
					Value(&cfg.SiteDir),
			),

			// optional publish integrations
			huh.NewGroup(
				huh.NewInput().
					Title("Backblaze application id (leave empty to skip uploads):").
					Value(&cfg.Backblaze.ApplicationID),

				huh.NewInput().
					Title("Backblaze application key:").
					Value(&cfg.Backblaze.ApplicationKey),

				huh.NewInput().
					Title("Backblaze bucket:").
					Value(&cfg.Backblaze.Bucket),

				huh.NewInput().
					Title("healthchecks.io ping URL (leave empty to skip pings):").
					Value(&cfg.Healthchecks.PingURL),
			),

			huh.NewGroup(
				huh.NewConfirm().
					Title("Save configuration?").
					Value(&confirmed),
			),
		)

		if err := form.Run(); err != nil {
			log.Fatal().Err(err).Msg("configuration wizard failed")
		}

		if !confirmed {
			log.Info().Msg("configuration not saved")
			return
		}

		encoded, err := toml.Marshal(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("could not encode configuration")
		}

		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configPath := filepath.Join(home, ".momentum-scan.toml")
		if err := os.WriteFile(configPath, encoded, 0600); err != nil {
			log.Fatal().Err(err).Str("FileName", configPath).Msg("could not write configuration")
		}

		log.Info().Str("FileName", configPath).Msg("configuration saved")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
