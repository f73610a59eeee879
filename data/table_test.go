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
package data_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stock-agent/asdata/data"
)

var _ = Describe("Table", func() {
	var table *data.Table

	BeforeEach(func() {
		table = &data.Table{Columns: []string{"代码", "市盈率"}}
		table.Append("600519", 28.5)
		table.Append("000001", 5.2)
	})

	It("pairs rows with the table's columns", func() {
		row := table.Row(0)
		code, found := row.Value("代码")
		Expect(found).To(BeTrue())
		Expect(code).To(Equal("600519"))

		pe, found := table.Last().Value("市盈率")
		Expect(found).To(BeTrue())
		Expect(pe).To(Equal(5.2))
	})

	It("returns empty rows for out of range indexes", func() {
		Expect(table.Row(-1).Empty()).To(BeTrue())
		Expect(table.Row(2).Empty()).To(BeTrue())
	})

	It("reports missing columns", func() {
		Expect(table.ColumnIndex("市盈率")).To(Equal(1))
		Expect(table.ColumnIndex("市净率")).To(Equal(-1))

		_, found := table.Row(0).Value("市净率")
		Expect(found).To(BeFalse())
	})

	It("treats a nil table as empty", func() {
		var missing *data.Table
		Expect(missing.Empty()).To(BeTrue())
		Expect(missing.NumRows()).To(BeZero())
		Expect(missing.ColumnIndex("代码")).To(Equal(-1))
		Expect(missing.Last().Empty()).To(BeTrue())
	})

	It("tolerates rows shorter than the column list", func() {
		table.Append("300750")
		row := table.Last()

		code, found := row.Value("代码")
		Expect(found).To(BeTrue())
		Expect(code).To(Equal("300750"))

		_, found = row.Value("市盈率")
		Expect(found).To(BeFalse())
	})
})
