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
package fundamentals_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/fundamentals"
)

var _ = Describe("PivotValue", func() {
	newAbstract := func() *data.Table {
		return &data.Table{
			Columns: []string{"选项", "指标", "20230331", "20230630", "20221231"},
			Rows: [][]any{
				{"盈利能力", "净资产收益率(ROE)", 8.1, 11.3, 24.5},
				{"盈利能力", "毛利率", 91.8, "91.60", 91.9},
				{"成长能力", "归母净利润同比增长率", 20.6, "-", 19.5},
				{"偿债能力", "资产负债率", 22.5, nil, 24.0},
			},
		}
	}

	It("returns the newest period value for the matched metric", func() {
		v, ok := fundamentals.PivotValue(newAbstract(), []string{"净资产收益率", "roe"})
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(11.3))
	})

	It("parses string cells in the newest period", func() {
		v, ok := fundamentals.PivotValue(newAbstract(), []string{"毛利率"})
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(91.60))
	})

	It("walks backward past unusable periods", func() {
		v, ok := fundamentals.PivotValue(newAbstract(), []string{"净利润同比增长"})
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(20.6))
	})

	It("never reads the metric or category columns as values", func() {
		table := &data.Table{
			Columns: []string{"选项", "指标", "20230630"},
			Rows: [][]any{
				{"9999", "资产负债率", "22.5"},
			},
		}

		v, ok := fundamentals.PivotValue(table, []string{"资产负债率"})
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(22.5))
	})

	It("reports absence when no metric row matches", func() {
		_, ok := fundamentals.PivotValue(newAbstract(), []string{"总市值"})
		Expect(ok).To(BeFalse())
	})

	It("reports absence when every period is unusable", func() {
		table := &data.Table{
			Columns: []string{"选项", "指标", "20230331", "20230630"},
			Rows: [][]any{
				{"偿债能力", "速动比率", nil, "--"},
			},
		}

		_, ok := fundamentals.PivotValue(table, []string{"速动比率"})
		Expect(ok).To(BeFalse())
	})

	It("reports absence for tables without a metric column", func() {
		table := &data.Table{
			Columns: []string{"REPORT_DATE", "ROEJQ"},
			Rows:    [][]any{{"2023-06-30", 11.3}},
		}

		_, ok := fundamentals.PivotValue(table, []string{"roe"})
		Expect(ok).To(BeFalse())
	})

	It("reports absence for an empty table", func() {
		_, ok := fundamentals.PivotValue(&data.Table{}, []string{"roe"})
		Expect(ok).To(BeFalse())
	})
})
