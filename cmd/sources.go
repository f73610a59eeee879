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
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sourcesCmd represents the sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Show configured upstream endpoints, limits, and features",
	Run: func(cmd *cobra.Command, args []string) {
		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(80),
		)

		builder := strings.Builder{}

		builder.WriteString("# Upstream Sources\n")
		builder.WriteString("\n## eastmoney\n")
		builder.WriteString(fmt.Sprintf("- Financial statements: %s\n", viper.GetString("eastmoney.datacenter_url")))
		builder.WriteString(fmt.Sprintf("- Spot snapshot + quotes: %s\n", viper.GetString("eastmoney.push_url")))
		builder.WriteString(fmt.Sprintf("- Daily kline: %s\n", viper.GetString("eastmoney.push_his_url")))
		builder.WriteString(fmt.Sprintf("- News search: %s\n", viper.GetString("eastmoney.search_url")))
		builder.WriteString(fmt.Sprintf("- Rate limit: %g requests/second\n", viper.GetFloat64("eastmoney.rate_limit")))
		builder.WriteString(fmt.Sprintf("- Request timeout: %d seconds\n", viper.GetInt("eastmoney.timeout_seconds")))

		builder.WriteString("\n## Archive\n")
		if dir := viper.GetString("archive.dir"); dir != "" {
			builder.WriteString(fmt.Sprintf("- Price history snapshots (parquet + csv): %s\n", dir))
		} else {
			builder.WriteString("- Price history snapshots: disabled\n")
		}

		builder.WriteString("\n## Monitoring\n")
		if viper.GetString("healthchecks.pingid") != "" {
			builder.WriteString("- healthchecks.io pings: enabled\n")
		} else {
			builder.WriteString("- healthchecks.io pings: disabled\n")
		}

		out, err := r.Render(builder.String())
		if err != nil {
			log.Fatal().Err(err).Msg("could not render sources document")
		}

		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
