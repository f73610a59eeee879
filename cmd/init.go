// Copyright 2025
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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stock-agent/asdata/provider"
)

type eastmoneySettings struct {
	DatacenterURL  string  `toml:"datacenter_url"`
	PushURL        string  `toml:"push_url"`
	PushHisURL     string  `toml:"push_his_url"`
	SearchURL      string  `toml:"search_url"`
	RateLimit      float64 `toml:"rate_limit"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
}

type archiveSettings struct {
	Dir string `toml:"dir"`
}

type monitorSettings struct {
	PingID string `toml:"pingid"`
}

type bridgeSettings struct {
	Eastmoney    eastmoneySettings `toml:"eastmoney"`
	Archive      archiveSettings   `toml:"archive"`
	Healthchecks monitorSettings   `toml:"healthchecks"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather bridge configuration and write ~/.asdata.toml",
	Run: func(cmd *cobra.Command, args []string) {
		settings := bridgeSettings{
			Eastmoney: eastmoneySettings{
				DatacenterURL: provider.DefaultDatacenterURL,
				PushURL:       provider.DefaultPushURL,
				PushHisURL:    provider.DefaultPushHisURL,
				SearchURL:     provider.DefaultSearchURL,
			},
		}

		rateLimit := strconv.Itoa(provider.DefaultRateLimit)
		timeout := strconv.Itoa(provider.DefaultTimeoutSeconds)

		form := huh.NewForm(
			// request budget against the vendor
			huh.NewGroup(
				huh.NewInput().
					Title("How many requests per second may asdata send to eastmoney?").
					Value(&rateLimit).
					Validate(func(v string) error {
						parsed, err := strconv.ParseFloat(v, 64)
						if err != nil {
							return err
						}
						if parsed <= 0 {
							return errors.New("rate limit must be positive")
						}
						return nil
					}),

				huh.NewInput().
					Title("Request timeout in seconds:").
					Value(&timeout).
					Validate(func(v string) error {
						parsed, err := strconv.Atoi(v)
						if err != nil {
							return err
						}
						if parsed <= 0 {
							return errors.New("timeout must be positive")
						}
						return nil
					}),
			),

			// optional features
			huh.NewGroup(
				huh.NewInput().
					Title("Archive fetched price history to this directory (leave empty to disable):").
					Value(&settings.Archive.Dir),

				huh.NewInput().
					Title("healthchecks.io ping id for run monitoring (leave empty to disable):").
					Value(&settings.Healthchecks.PingID),
			),
		)

		err := form.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("error gathering bridge settings")
		}

		settings.Eastmoney.RateLimit, _ = strconv.ParseFloat(rateLimit, 64)
		settings.Eastmoney.TimeoutSeconds, _ = strconv.Atoi(timeout)

		// Print configuration summary
		{
			var sb strings.Builder
			keyword := func(s string) string {
				return lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render(s)
			}

			archiveState := "disabled"
			if settings.Archive.Dir != "" {
				archiveState = settings.Archive.Dir
			}

			monitorState := "disabled"
			if settings.Healthchecks.PingID != "" {
				monitorState = "enabled"
			}

			fmt.Fprintf(&sb,
				"%s\n\nRate limit: %s req/s\nTimeout: %ss\nArchive: %s\nMonitoring: %s\n",
				lipgloss.NewStyle().Bold(true).Render("ASDATA CONFIGURATION"),
				keyword(rateLimit),
				keyword(timeout),
				keyword(archiveState),
				keyword(monitorState),
			)

			fmt.Println(
				lipgloss.NewStyle().
					Width(60).
					BorderStyle(lipgloss.RoundedBorder()).
					BorderForeground(lipgloss.Color("63")).
					Padding(1, 2).
					Render(sb.String()),
			)
		}

		var confirmed bool
		confirmForm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Write configuration to ~/.asdata.toml?").
					Value(&confirmed),
			),
		)

		err = confirmForm.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create wizard")
		}

		if !confirmed {
			log.Info().Msg("Not saving configuration")
			return
		}

		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine user home directory")
		}

		configFN := filepath.Join(home, ".asdata.toml")
		configData, err := toml.Marshal(settings)
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration data")
		}

		err = os.WriteFile(configFN, configData, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		log.Info().Str("ConfigFile", configFN).Msg("Your asdata bridge has been configured")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
