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
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stock-agent/asdata/fundamentals"
	"github.com/stock-agent/asdata/provider"
)

var fundamentalsSymbol string

// fundamentalsCmd represents the fundamentals command
var fundamentalsCmd = &cobra.Command{
	Use:   "fundamentals",
	Short: "Resolve the normalized fundamentals record for one symbol",
	Long: `The fundamentals sub-command reads {"symbol": "600519"} from stdin
(or takes --symbol) and writes one flat JSON record to stdout.

The record is always emitted, even when every upstream source fails: metric
fields the cascade could not resolve serialize as 0 and the last failure is
carried in the record's error field. Exit status is always zero so pipeline
supervisors treat data quality, not process state, as the health signal.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.Logger.WithContext(context.Background())

		code := fundamentalsSymbol
		if code == "" {
			code = readRequest().Symbol
		}
		code = strings.TrimSpace(code)

		resolver := &fundamentals.Resolver{
			Statements: provider.NewStatements(),
			Snapshot:   provider.NewSpot(),
			Quotes:     provider.NewQuotes(),
		}

		emit(resolver.Resolve(ctx, code))
	},
}

func init() {
	rootCmd.AddCommand(fundamentalsCmd)
	fundamentalsCmd.Flags().StringVar(&fundamentalsSymbol, "symbol", "", "resolve this symbol instead of reading stdin")
}
