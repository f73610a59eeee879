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
	"context"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stock-agent/asdata/archive"
	"github.com/stock-agent/asdata/healthcheck"
	"github.com/stock-agent/asdata/marketdata"
	"github.com/stock-agent/asdata/provider"
)

var historyFormat string

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch forward-adjusted daily price history for one symbol",
	Long: `The history sub-command reads {"symbol", "start_date", "end_date"}
(dates in YYYYMMDD form) from stdin and writes {"items": [bar...]} to stdout,
oldest bar first, with pre_close/change/pct_chg derived from the prior bar.

Unlike fundamentals, history is strict: missing parameters, a failed fetch, or
an empty result log an error and exit nonzero. Price history feeds backtests
downstream, so a silently empty series is worse than a failed run.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.Logger.WithContext(context.Background())

		req := readRequest()
		code := strings.TrimSpace(req.Symbol)
		if code == "" || req.StartDate == "" || req.EndDate == "" {
			fail("symbol, start_date, and end_date are required")
		}

		table, err := provider.NewKline().DailyBars(ctx, code, req.StartDate, req.EndDate)
		if err != nil {
			fail(fmt.Sprintf("kline fetch failed: %v", err))
		}

		bars, err := marketdata.Bars(table)
		if err != nil {
			fail(fmt.Sprintf("no usable bars for %s between %s and %s: %v", code, req.StartDate, req.EndDate, err))
		}

		if archive.Enabled() {
			if err := archive.Snapshot(code, req.StartDate, req.EndDate, bars); err != nil {
				log.Error().Err(err).Str("Symbol", code).Msg("archive snapshot failed")
			}
		}

		switch historyFormat {
		case "csv":
			out, err := gocsv.MarshalString(&bars)
			if err != nil {
				fail(fmt.Sprintf("csv encoding failed: %v", err))
			}
			fmt.Print(out)
		default:
			emit(itemsEnvelope{Items: bars})
		}

		if err := healthcheck.Ping(); err != nil {
			log.Warn().Err(err).Msg("healthcheck ping failed")
		}
	},
}

// fail signals the monitoring check, logs the message to stderr, and exits
// nonzero.
func fail(message string) {
	if err := healthcheck.PingFailure(message); err != nil {
		log.Warn().Err(err).Msg("healthcheck ping failed")
	}
	log.Fatal().Msg(message)
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historyFormat, "format", "json", "output format: json or csv")
}
