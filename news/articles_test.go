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
package news_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/news"
)

// articleTable builds the legacy layout the vendor client produces.
func articleTable(rows ...[]any) *data.Table {
	return &data.Table{
		Columns: []string{"code", "title", "content", "public_time", "source", "url"},
		Rows:    rows,
	}
}

var _ = Describe("Articles", func() {
	When("the table carries a recognized time column", func() {
		It("orders items newest first", func() {
			table := articleTable(
				[]any{"600519", "oldest", "a", "2023-06-28 09:00:00", "证券时报", "https://e.example/1"},
				[]any{"600519", "newest", "b", "2023-06-30 18:30:00", "证券时报", "https://e.example/2"},
				[]any{"600519", "middle", "c", "2023-06-29 12:00:00", "证券时报", "https://e.example/3"},
			)

			items := news.Articles(table, 10)
			Expect(items).To(HaveLen(3))
			Expect(items[0].Title).To(Equal("newest"))
			Expect(items[1].Title).To(Equal("middle"))
			Expect(items[2].Title).To(Equal("oldest"))
		})

		It("caps the window before skipping blank titles", func() {
			table := articleTable(
				[]any{"600519", "kept", "a", "2023-06-30 18:30:00", "s", "u"},
				[]any{"600519", "", "b", "2023-06-29 12:00:00", "s", "u"},
				[]any{"600519", "never reached", "c", "2023-06-28 09:00:00", "s", "u"},
			)

			items := news.Articles(table, 2)
			Expect(items).To(HaveLen(1))
			Expect(items[0].Title).To(Equal("kept"))
		})

		It("fills every item field", func() {
			table := articleTable(
				[]any{"600519", " 贵州茅台发布中报 ", "正文内容", "2023-06-30 18:30:00", "上海证券报", "https://e.example/a"},
			)

			items := news.Articles(table, 10)
			Expect(items).To(HaveLen(1))
			Expect(items[0]).To(Equal(data.Article{
				Title:       "贵州茅台发布中报",
				Impact:      "neutral",
				Source:      "上海证券报",
				PublishTime: "2023-06-30 18:30:00",
				Summary:     "",
				URL:         "https://e.example/a",
				Content:     "正文内容",
				Author:      "",
			}))
		})
	})

	When("publish times are unix timestamps", func() {
		It("formats second precision stamps", func() {
			table := articleTable(
				[]any{"600519", "t", "", "1688112000", "s", "u"},
			)

			items := news.Articles(table, 10)
			Expect(items).To(HaveLen(1))
			want := time.Unix(1688112000, 0).Format("2006-01-02 15:04")
			Expect(items[0].PublishTime).To(Equal(want))
		})

		It("truncates millisecond stamps to seconds", func() {
			table := articleTable(
				[]any{"600519", "t", "", "1688112000123", "s", "u"},
			)

			items := news.Articles(table, 10)
			Expect(items).To(HaveLen(1))
			want := time.Unix(1688112000, 0).Format("2006-01-02 15:04")
			Expect(items[0].PublishTime).To(Equal(want))
		})

		It("passes anything else through unchanged", func() {
			table := articleTable(
				[]any{"600519", "t", "", "06-30 18:30", "s", "u"},
			)

			items := news.Articles(table, 10)
			Expect(items).To(HaveLen(1))
			Expect(items[0].PublishTime).To(Equal("06-30 18:30"))
		})
	})

	When("columns use alternate vendor names", func() {
		It("falls back through the title and source candidates", func() {
			table := &data.Table{
				Columns: []string{"digest", "media_name", "publish_time"},
				Rows: [][]any{
					{"摘要即标题", "财联社", "2023-06-30 10:00:00"},
				},
			}

			items := news.Articles(table, 10)
			Expect(items).To(HaveLen(1))
			Expect(items[0].Title).To(Equal("摘要即标题"))
			Expect(items[0].Summary).To(Equal("摘要即标题"))
			Expect(items[0].Source).To(Equal("财联社"))
			Expect(items[0].PublishTime).To(Equal("2023-06-30 10:00:00"))
		})

		It("labels items with the default source when none is present", func() {
			table := &data.Table{
				Columns: []string{"title", "public_time"},
				Rows: [][]any{
					{"无来源", "2023-06-30 10:00:00"},
				},
			}

			items := news.Articles(table, 10)
			Expect(items).To(HaveLen(1))
			Expect(items[0].Source).To(Equal("eastmoney"))
		})
	})

	When("no time column is recognized", func() {
		It("keeps vendor order and leaves publish times empty", func() {
			table := &data.Table{
				Columns: []string{"title", "source"},
				Rows: [][]any{
					{"first", "a"},
					{"second", "b"},
				},
			}

			items := news.Articles(table, 10)
			Expect(items).To(HaveLen(2))
			Expect(items[0].Title).To(Equal("first"))
			Expect(items[1].Title).To(Equal("second"))
			Expect(items[0].PublishTime).To(BeEmpty())
		})
	})

	When("the table is empty", func() {
		It("returns an empty, non-nil list", func() {
			items := news.Articles(&data.Table{}, 10)
			Expect(items).NotTo(BeNil())
			Expect(items).To(BeEmpty())

			items = news.Articles(nil, 10)
			Expect(items).NotTo(BeNil())
			Expect(items).To(BeEmpty())
		})
	})
})
