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

// Package marketdata reshapes vendor kline tables into the bar series the
// bridge emits: canonical YYYYMMDD dates, ascending order, and the
// prior-close deltas downstream consumers read.
package marketdata

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/fundamentals"
)

// ErrNoBars reports that the vendor table held no usable bar rows.
var ErrNoBars = errors.New("no bars in table")

// Exact column candidates per bar field, vendor display names first. The
// kline client emits the Chinese headers; the English names cover tables
// that were already renamed upstream.
var (
	dateColumns   = []string{"日期", "trade_date", "date"}
	openColumns   = []string{"开盘", "open"}
	closeColumns  = []string{"收盘", "close"}
	highColumns   = []string{"最高", "high"}
	lowColumns    = []string{"最低", "low"}
	volColumns    = []string{"成交量", "vol", "volume"}
	amountColumns = []string{"成交额", "amount"}
)

// Bars reshapes a kline table into a bar series: rows sort ascending by
// trade date, every date normalizes to YYYYMMDD, and pre_close/change/
// pct_chg derive from the prior bar. The first bar's deltas stay nil, as
// does pct_chg wherever the prior close is zero. Rows without a date or a
// full OHLC set are dropped; missing volume or turnover defaults to 0.
func Bars(table *data.Table) ([]data.Bar, error) {
	if table.Empty() {
		return nil, ErrNoBars
	}

	bars := make([]data.Bar, 0, table.NumRows())
	for i := 0; i < table.NumRows(); i++ {
		row := table.Row(i)

		tradeDate, ok := stringCell(row, dateColumns)
		if !ok {
			continue
		}

		open, okOpen := fundamentals.ExactLookup(row, openColumns)
		high, okHigh := fundamentals.ExactLookup(row, highColumns)
		low, okLow := fundamentals.ExactLookup(row, lowColumns)
		closePrice, okClose := fundamentals.ExactLookup(row, closeColumns)
		if !okOpen || !okHigh || !okLow || !okClose {
			continue
		}

		vol, _ := fundamentals.ExactLookup(row, volColumns)
		amount, _ := fundamentals.ExactLookup(row, amountColumns)

		bars = append(bars, data.Bar{
			TradeDate: normalizeTradeDate(tradeDate),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     closePrice,
			Vol:       vol,
			Amount:    amount,
		})
	}

	if len(bars) == 0 {
		return nil, ErrNoBars
	}

	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].TradeDate < bars[j].TradeDate
	})

	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		bars[i].PreClose = data.Float(prev)
		bars[i].Change = data.Float(bars[i].Close - prev)
		if prev != 0 {
			bars[i].PctChg = data.Float((bars[i].Close - prev) / prev * 100)
		}
	}

	return bars, nil
}

// normalizeTradeDate reduces a vendor date ("2023-06-30", "2023-06-30
// 00:00:00", or already "20230630") to YYYYMMDD.
func normalizeTradeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if idx := strings.IndexByte(s, ' '); idx > 0 {
		s = s[:idx]
	}
	return strings.ReplaceAll(s, "-", "")
}

// stringCell returns the first candidate column's cell rendered as a string.
// Numeric cells format without an exponent so dates stored as numbers stay
// intact.
func stringCell(row data.Row, candidates []string) (string, bool) {
	for _, col := range candidates {
		raw, ok := row.Value(col)
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s, true
			}
		case json.Number:
			return v.String(), true
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		case int:
			return strconv.Itoa(v), true
		case int64:
			return strconv.FormatInt(v, 10), true
		}
	}
	return "", false
}
