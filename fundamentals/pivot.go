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
	"fmt"
	"sort"
	"strings"

	"github.com/stock-agent/asdata/data"
)

// Column labels in the pivoted financial abstract that never hold values:
// the metric name and its category grouping.
const (
	pivotMetricColumn   = "指标"
	pivotCategoryColumn = "选项"
)

// PivotValue resolves a metric from a table pivoted into metric-name rows ×
// report-date columns. The first row whose metric cell contains any keyword
// fragment (case-insensitive) wins, and its date columns are scanned newest
// first for a parseable value.
//
// Date labels must be fixed width and zero padded (e.g. 20230630): the
// newest-first scan sorts labels in descending lexical order and relies on
// that matching descending chronological order.
func PivotValue(table *data.Table, keywords []string) (float64, bool) {
	if table.Empty() {
		return 0, false
	}
	metricIdx := table.ColumnIndex(pivotMetricColumn)
	if metricIdx < 0 {
		return 0, false
	}

	var row data.Row
	for i, cells := range table.Rows {
		if metricIdx >= len(cells) {
			continue
		}
		if containsAny(strings.ToLower(stringify(cells[metricIdx])), keywords) {
			row = table.Row(i)
			break
		}
	}
	if row.Empty() {
		return 0, false
	}

	dateCols := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		if col != pivotMetricColumn && col != pivotCategoryColumn {
			dateCols = append(dateCols, col)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dateCols)))

	for _, col := range dateCols {
		raw, ok := row.Value(col)
		if !ok {
			continue
		}
		if v, ok := ToFloat(raw); ok {
			return v, true
		}
	}

	return 0, false
}

func stringify(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
