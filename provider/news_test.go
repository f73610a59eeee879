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
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"

	json "github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
)

var _ = Describe("News", func() {
	var (
		server  *httptest.Server
		payload string
		query   url.Values
	)

	BeforeEach(func() {
		payload = `{"code":0,"msg":"success","result":{"cmsArticleWebOld":[
			{"code":"600519","title":"贵州茅台发布中期业绩","content":"上半年净利润同比增长19.5%","date":"2023-06-30 18:00:00","mediaName":"证券时报","url":"https://finance.eastmoney.com/a/1.html"},
			{"code":"600519","title":"白酒板块走强","content":"多家机构上调目标价","date":"2023-06-29 09:30:00","mediaName":"中国基金报","url":"https://finance.eastmoney.com/a/2.html"}
		]}}`

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			fmt.Fprintf(w, "%s(%s)", query.Get("cb"), payload)
		}))

		viper.Set("eastmoney.search_url", server.URL)
		viper.Set("eastmoney.rate_limit", 1000)
	})

	AfterEach(func() {
		server.Close()
		viper.Reset()
	})

	It("sends the search document with highlighting disabled", func() {
		_, err := NewNews().Search(context.Background(), "sh600519", 10)
		Expect(err).ToNot(HaveOccurred())

		var param searchParam
		Expect(json.Unmarshal([]byte(query.Get("param")), &param)).To(Succeed())
		Expect(param.Keyword).To(Equal("600519"))
		Expect(param.Type).To(Equal([]string{"cmsArticleWebOld"}))
		Expect(param.Param.CmsArticleWebOld.PageSize).To(Equal(10))
		Expect(param.Param.CmsArticleWebOld.PreTag).To(BeEmpty())
		Expect(param.Param.CmsArticleWebOld.PostTag).To(BeEmpty())
	})

	It("unwraps the jsonp envelope into the legacy article table", func() {
		table, err := NewNews().Search(context.Background(), "600519", 10)
		Expect(err).ToNot(HaveOccurred())

		Expect(table.Columns).To(Equal(newsColumns))
		Expect(table.NumRows()).To(Equal(2))
		Expect(table.Rows[0]).To(Equal([]any{
			"600519", "贵州茅台发布中期业绩", "上半年净利润同比增长19.5%",
			"2023-06-30 18:00:00", "证券时报", "https://finance.eastmoney.com/a/1.html",
		}))
	})

	It("surfaces vendor-flagged failures", func() {
		payload = `{"code":500,"msg":"keyword is invalid","result":null}`

		_, err := NewNews().Search(context.Background(), "600519", 10)
		Expect(errors.Is(err, ErrVendor)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("keyword is invalid"))
	})
})

var _ = Describe("stripJSONP", func() {
	It("returns the inner document", func() {
		inner, err := stripJSONP(`jQuery123({"code":0})`)
		Expect(err).ToNot(HaveOccurred())
		Expect(inner).To(Equal(`{"code":0}`))
	})

	It("tolerates parentheses inside the document", func() {
		inner, err := stripJSONP(`cb({"title":"盈利(预测)上调"})`)
		Expect(err).ToNot(HaveOccurred())
		Expect(inner).To(Equal(`{"title":"盈利(预测)上调"}`))
	})

	It("rejects bodies without a callback wrapper", func() {
		_, err := stripJSONP(`{"code":0}`)
		Expect(err).To(HaveOccurred())
	})
})
