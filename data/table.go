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
package data

// Table is a schema-less tabular dataset as returned by an upstream vendor
// endpoint. Vendors disagree on language, naming, and column sets, so no
// fixed schema is assumed. Column order is preserved from the source; field
// resolution breaks ties by natural column order.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Empty reports whether the table holds no rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Append adds one row to the table. Values align positionally with Columns.
func (t *Table) Append(values ...any) {
	t.Rows = append(t.Rows, values)
}

// Row returns the idx'th row paired with the table's column list.
func (t *Table) Row(idx int) Row {
	if t == nil || idx < 0 || idx >= len(t.Rows) {
		return Row{}
	}
	return Row{Columns: t.Columns, Values: t.Rows[idx]}
}

// Last returns the final row of the table, or an empty row.
func (t *Table) Last() Row {
	return t.Row(t.NumRows() - 1)
}

// ColumnIndex returns the position of name in the column list, or -1 when the
// table has no such column.
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for idx, col := range t.Columns {
		if col == name {
			return idx
		}
	}
	return -1
}

// Row is a single table row together with its ordered column names.
type Row struct {
	Columns []string
	Values  []any
}

// Empty reports whether the row holds no cells.
func (r Row) Empty() bool {
	return len(r.Values) == 0
}

// Value returns the raw cell stored under the named column.
func (r Row) Value(name string) (any, bool) {
	for idx, col := range r.Columns {
		if col == name && idx < len(r.Values) {
			return r.Values[idx], true
		}
	}
	return nil, false
}
