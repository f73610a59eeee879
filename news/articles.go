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

// Package news reshapes vendor article tables into the item list the bridge
// emits. The reshaper is total: any table, however malformed, yields a valid
// (possibly empty) article list.
package news

import (
	"sort"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/stock-agent/asdata/data"
)

// Column candidates, in preference order. The vendor has renamed these
// between releases, so every known variant is listed.
var (
	timeColumns    = []string{"public_time", "publish_time", "datetime", "time"}
	titleColumns   = []string{"title", "art_title", "digest", "摘要"}
	sourceColumns  = []string{"source", "media_name", "来源"}
	summaryColumns = []string{"digest", "summary"}
)

// defaultSource labels articles whose table carries no source column.
const defaultSource = "eastmoney"

// publishTimeLayout is the canonical publish time form.
const publishTimeLayout = "2006-01-02 15:04"

// Articles reshapes a vendor article table into at most max items, newest
// first when a recognized time column exists. The cap applies before the
// empty-title skip, so a capped window containing blank rows yields fewer
// than max items. Unix timestamps (10 or 13 digits) format to a readable
// local time; anything else passes through.
func Articles(table *data.Table, max int) []data.Article {
	items := make([]data.Article, 0)
	if table.Empty() {
		return items
	}

	timeCol := ""
	for _, col := range timeColumns {
		if table.ColumnIndex(col) >= 0 {
			timeCol = col
			break
		}
	}

	rows := make([]data.Row, table.NumRows())
	for i := range rows {
		rows[i] = table.Row(i)
	}
	if timeCol != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			return cellString(rows[i], timeCol) > cellString(rows[j], timeCol)
		})
	}

	if max > 0 && len(rows) > max {
		rows = rows[:max]
	}

	for _, row := range rows {
		title := firstString(row, titleColumns)
		if title == "" {
			continue
		}

		source := firstString(row, sourceColumns)
		if source == "" {
			source = defaultSource
		}

		publishTime := ""
		if timeCol != "" {
			publishTime = formatTime(cellString(row, timeCol))
		}

		items = append(items, data.Article{
			Title:       title,
			Impact:      "neutral",
			Source:      source,
			PublishTime: publishTime,
			Summary:     firstString(row, summaryColumns),
			URL:         cellString(row, "url"),
			Content:     cellString(row, "content"),
			Author:      cellString(row, "author"),
		})
	}

	return items
}

// formatTime renders a 10- or 13-digit unix timestamp as a readable local
// time. Values already in a human form pass through unchanged.
func formatTime(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if (len(s) == 10 || len(s) == 13) && allDigits(s) {
		if secs, err := strconv.ParseInt(s[:10], 10, 64); err == nil {
			return time.Unix(secs, 0).Format(publishTimeLayout)
		}
	}
	return s
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// firstString returns the first candidate column whose cell renders to a
// non-empty string.
func firstString(row data.Row, candidates []string) string {
	for _, col := range candidates {
		if s := cellString(row, col); s != "" {
			return s
		}
	}
	return ""
}

// cellString renders the named cell as a trimmed string, or "" when the
// column is absent or the cell empty.
func cellString(row data.Row, col string) string {
	raw, ok := row.Value(col)
	if !ok || raw == nil {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}
