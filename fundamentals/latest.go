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
package fundamentals

import (
	"sort"

	json "github.com/goccy/go-json"

	"github.com/stock-agent/asdata/data"
)

// reportDateColumn is the canonical period column in statement tables.
const reportDateColumn = "REPORT_DATE"

// LatestRow returns the row for the most recent reporting period. Tables
// carrying a REPORT_DATE column sort by it; otherwise the first column is
// assumed to be period-like. A sort over mixed or missing key types is a
// no-op, not an error: the table is treated as already ordered and its last
// row returned. The input table is never mutated.
func LatestRow(table *data.Table) (data.Row, bool) {
	if table.Empty() {
		return data.Row{}, false
	}

	if idx := table.ColumnIndex(reportDateColumn); idx >= 0 {
		if rows := sortRowsByKey(table.Rows, idx); rows != nil {
			return data.Row{Columns: table.Columns, Values: rows[len(rows)-1]}, true
		}
	}

	if rows := sortRowsByKey(table.Rows, 0); rows != nil {
		return data.Row{Columns: table.Columns, Values: rows[len(rows)-1]}, true
	}

	return table.Last(), true
}

// sortRowsByKey stable-sorts a copy of rows ascending by the cell at keyIdx.
// Keys must be uniformly strings or uniformly numeric; anything else makes
// the rows unsortable and nil is returned.
func sortRowsByKey(rows [][]any, keyIdx int) [][]any {
	type keyed struct {
		row []any
		str string
		num float64
	}

	keyedRows := make([]keyed, len(rows))
	allStr, allNum := true, true
	for i, row := range rows {
		if keyIdx < 0 || keyIdx >= len(row) {
			return nil
		}
		keyedRows[i].row = row
		switch v := row[keyIdx].(type) {
		case string:
			keyedRows[i].str = v
			allNum = false
		case float64:
			keyedRows[i].num = v
			allStr = false
		case float32:
			keyedRows[i].num = float64(v)
			allStr = false
		case int:
			keyedRows[i].num = float64(v)
			allStr = false
		case int32:
			keyedRows[i].num = float64(v)
			allStr = false
		case int64:
			keyedRows[i].num = float64(v)
			allStr = false
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil
			}
			keyedRows[i].num = f
			allStr = false
		default:
			return nil
		}
	}

	switch {
	case allStr:
		sort.SliceStable(keyedRows, func(i, j int) bool {
			return keyedRows[i].str < keyedRows[j].str
		})
	case allNum:
		sort.SliceStable(keyedRows, func(i, j int) bool {
			return keyedRows[i].num < keyedRows[j].num
		})
	default:
		return nil
	}

	out := make([][]any, len(keyedRows))
	for i, k := range keyedRows {
		out[i] = k.row
	}

	return out
}
