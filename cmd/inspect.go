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
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stock-agent/asdata/news"
	"github.com/stock-agent/asdata/provider"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect raw upstream responses for schema drift",
	Long: `Vendor endpoints rename and reorder columns between releases.
The inspect sub-commands fetch a raw response and print its actual shape so
column candidate lists can be updated when lookups start coming back empty.`,
}

// inspectNewsCmd represents the inspect news command
var inspectNewsCmd = &cobra.Command{
	Use:   "news <symbol> [limit]",
	Short: "Show news search columns, row count, and a preview",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.Logger.WithContext(context.Background())

		limit := 10
		if len(args) == 2 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil {
				log.Fatal().Err(err).Str("Limit", args[1]).Msg("limit must be an integer")
			}
			limit = parsed
		}

		table, err := provider.NewNews().Search(ctx, args[0], limit)
		if err != nil {
			log.Fatal().Err(err).Str("Symbol", args[0]).Msg("news search failed")
		}

		printer := message.NewPrinter(language.English)
		printer.Printf("Rows: %d\n", table.NumRows())
		fmt.Printf("Columns: %s\n", strings.Join(table.Columns, ", "))
		fmt.Println()

		for _, item := range news.Articles(table, limit) {
			age := ""
			for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
				if ts, err := time.ParseInLocation(layout, item.PublishTime, time.Local); err == nil {
					age = fmt.Sprintf(" (%s)", timeago.English.Format(ts))
					break
				}
			}
			fmt.Printf("- %s%s [%s]\n", item.Title, age, item.Source)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.AddCommand(inspectNewsCmd)
}
