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
package marketdata_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/marketdata"
)

func klineTable(rows ...[]any) *data.Table {
	table := &data.Table{
		Columns: []string{"日期", "开盘", "收盘", "最高", "最低", "成交量", "成交额"},
	}
	for _, row := range rows {
		table.Append(row...)
	}
	return table
}

var _ = Describe("Bars", func() {
	It("reshapes vendor rows into an ascending bar series", func() {
		table := klineTable(
			[]any{"2023-06-30", "1690.00", "1701.50", "1705.00", "1688.00", "26000", "4.4e9"},
			[]any{"2023-06-29", "1688.00", "1690.00", "1695.50", "1680.00", "25000", "4.2e9"},
		)

		bars, err := marketdata.Bars(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(bars).To(HaveLen(2))

		Expect(bars[0].TradeDate).To(Equal("20230629"))
		Expect(bars[1].TradeDate).To(Equal("20230630"))
		Expect(bars[0].Open).To(Equal(1688.00))
		Expect(bars[1].Close).To(Equal(1701.50))
		Expect(bars[1].Vol).To(Equal(26000.0))
		Expect(bars[1].Amount).To(Equal(4.4e9))
	})

	It("derives prior-close deltas with a nil first row", func() {
		table := klineTable(
			[]any{"2023-06-29", "1688.00", "1690.00", "1695.50", "1680.00", "25000", "4.2e9"},
			[]any{"2023-06-30", "1690.00", "1701.50", "1705.00", "1688.00", "26000", "4.4e9"},
		)

		bars, err := marketdata.Bars(table)
		Expect(err).ToNot(HaveOccurred())

		Expect(bars[0].PreClose).To(BeNil())
		Expect(bars[0].Change).To(BeNil())
		Expect(bars[0].PctChg).To(BeNil())

		Expect(bars[1].PreClose).To(HaveValue(Equal(1690.0)))
		Expect(bars[1].Change).To(HaveValue(BeNumerically("~", 11.5, 1e-9)))
		Expect(bars[1].PctChg).To(HaveValue(BeNumerically("~", 11.5/1690.0*100, 1e-9)))
	})

	It("leaves pct_chg nil when the prior close is zero", func() {
		table := klineTable(
			[]any{"2023-06-29", "0", "0", "0", "0", "0", "0"},
			[]any{"2023-06-30", "1.0", "1.5", "1.6", "0.9", "100", "150"},
		)

		bars, err := marketdata.Bars(table)
		Expect(err).ToNot(HaveOccurred())

		Expect(bars[1].PreClose).To(HaveValue(Equal(0.0)))
		Expect(bars[1].Change).To(HaveValue(Equal(1.5)))
		Expect(bars[1].PctChg).To(BeNil())
	})

	It("accepts renamed English columns and timestamped dates", func() {
		table := &data.Table{
			Columns: []string{"trade_date", "open", "close", "high", "low"},
		}
		table.Append("2023-06-30 00:00:00", 1690.0, 1701.5, 1705.0, 1688.0)

		bars, err := marketdata.Bars(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(bars[0].TradeDate).To(Equal("20230630"))
		Expect(bars[0].Vol).To(Equal(0.0))
		Expect(bars[0].Amount).To(Equal(0.0))
	})

	It("drops rows missing the date or part of the OHLC set", func() {
		table := klineTable(
			[]any{nil, "1688.00", "1690.00", "1695.50", "1680.00", "25000", "4.2e9"},
			[]any{"2023-06-30", "1690.00", "--", "1705.00", "1688.00", "26000", "4.4e9"},
			[]any{"2023-07-03", "1701.00", "1710.00", "1712.00", "1698.00", "24000", "4.1e9"},
		)

		bars, err := marketdata.Bars(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(bars).To(HaveLen(1))
		Expect(bars[0].TradeDate).To(Equal("20230703"))
	})

	It("reports an empty table as no bars", func() {
		_, err := marketdata.Bars(&data.Table{})
		Expect(errors.Is(err, marketdata.ErrNoBars)).To(BeTrue())
	})

	It("reports a table with only unusable rows as no bars", func() {
		table := klineTable(
			[]any{"2023-06-30", nil, nil, nil, nil, nil, nil},
		)

		_, err := marketdata.Bars(table)
		Expect(errors.Is(err, marketdata.ErrNoBars)).To(BeTrue())
	})
})
