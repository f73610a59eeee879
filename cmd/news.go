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

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/healthcheck"
	"github.com/stock-agent/asdata/news"
	"github.com/stock-agent/asdata/provider"
)

// newsCmd represents the news command
var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Fetch recent news items for one symbol",
	Long: `The news sub-command reads {"symbol", "max_news"} from stdin and
writes {"items": [article...]} to stdout, newest first, capped at max_news
(default 10).

News is advisory input for the analysis pipeline, so every failure degrades
to an empty item list with exit status zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.Logger.WithContext(context.Background())

		req := readRequest()
		code := strings.TrimSpace(req.Symbol)

		maxNews := req.MaxNews
		if maxNews <= 0 {
			maxNews = 10
		}

		items := make([]data.Article, 0)
		searchErr := ""

		switch {
		case code == "":
			log.Warn().Msg("no symbol provided, emitting an empty item list")
		default:
			table, err := provider.NewNews().Search(ctx, code, maxNews)
			if err != nil {
				searchErr = err.Error()
				log.Error().Err(err).Str("Symbol", code).Msg("news search failed")
			} else {
				items = news.Articles(table, maxNews)
			}
		}

		emit(itemsEnvelope{Items: items})

		if searchErr != "" {
			if err := healthcheck.PingFailure(searchErr); err != nil {
				log.Warn().Err(err).Msg("healthcheck ping failed")
			}
			return
		}
		if err := healthcheck.Ping(); err != nil {
			log.Warn().Err(err).Msg("healthcheck ping failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(newsCmd)
}
