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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/stock-agent/asdata/fundamentals"
)

var _ = Describe("Kline", func() {
	var (
		server  *httptest.Server
		payload string
		query   url.Values
	)

	BeforeEach(func() {
		payload = `{"rc":0,"data":{"code":"600519","klines":[
			"2023-06-29,1688.00,1690.00,1695.50,1680.00,25000,4.2e9",
			"2023-06-30,1690.00,1701.50,1705.00,1688.00,26000,4.4e9"
		]}}`

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			fmt.Fprint(w, payload)
		}))

		viper.Set("eastmoney.push_his_url", server.URL)
		viper.Set("eastmoney.rate_limit", 1000)
	})

	AfterEach(func() {
		server.Close()
		viper.Reset()
	})

	It("requests forward-adjusted daily bars for the window", func() {
		_, err := NewKline().DailyBars(context.Background(), "600519", "20230601", "20230630")
		Expect(err).ToNot(HaveOccurred())

		Expect(query.Get("secid")).To(Equal("1.600519"))
		Expect(query.Get("klt")).To(Equal("101"))
		Expect(query.Get("fqt")).To(Equal("1"))
		Expect(query.Get("beg")).To(Equal("20230601"))
		Expect(query.Get("end")).To(Equal("20230630"))
	})

	It("splits kline strings into table rows", func() {
		table, err := NewKline().DailyBars(context.Background(), "600519", "20230601", "20230630")
		Expect(err).ToNot(HaveOccurred())

		Expect(table.Columns).To(Equal(klineColumns))
		Expect(table.NumRows()).To(Equal(2))
		Expect(table.Rows[1]).To(Equal([]any{
			"2023-06-30", "1690.00", "1701.50", "1705.00", "1688.00", "26000", "4.4e9",
		}))
	})

	It("skips malformed kline rows", func() {
		payload = `{"rc":0,"data":{"code":"600519","klines":[
			"2023-06-29,1688.00",
			"2023-06-30,1690.00,1701.50,1705.00,1688.00,26000,4.4e9"
		]}}`

		table, err := NewKline().DailyBars(context.Background(), "600519", "20230601", "20230630")
		Expect(err).ToNot(HaveOccurred())
		Expect(table.NumRows()).To(Equal(1))
	})

	It("reports unknown secids as not found", func() {
		payload = `{"rc":0,"data":null}`

		_, err := NewKline().DailyBars(context.Background(), "999999", "20230601", "20230630")
		Expect(errors.Is(err, fundamentals.ErrNotFound)).To(BeTrue())
	})

	It("surfaces vendor-flagged failures", func() {
		payload = `{"rc":-1,"data":null}`

		_, err := NewKline().DailyBars(context.Background(), "600519", "20230601", "20230630")
		Expect(errors.Is(err, ErrVendor)).To(BeTrue())
	})
})
