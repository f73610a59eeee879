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
	"strings"

	"github.com/stock-agent/asdata/data"
)

// MatchKeywords scans the row's columns in their natural order and returns
// the first value whose column name contains any of the given lowercase
// keyword fragments and whose cell parses to a number. A matching column
// holding an unparseable cell does not end the scan; later columns may still
// resolve. Substring matching is deliberate: exact names do not survive
// vendor schema drift.
func MatchKeywords(row data.Row, keywords []string) (float64, bool) {
	for idx, col := range row.Columns {
		if idx >= len(row.Values) {
			break
		}
		if !containsAny(strings.ToLower(col), keywords) {
			continue
		}
		if v, ok := ToFloat(row.Values[idx]); ok {
			return v, true
		}
	}
	return 0, false
}

// ExactLookup returns the first value, trying candidate column names in
// order, that exists in the row and parses to a number. Used where the
// vendor schema is stable enough to address columns by exact name.
func ExactLookup(row data.Row, candidates []string) (float64, bool) {
	for _, col := range candidates {
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

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
