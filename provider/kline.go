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
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/fundamentals"
	"github.com/stock-agent/asdata/symbol"
)

// klineColumns is the layout of one parsed kline row, matching the vendor's
// comma-joined field order: date, open, close, high, low, volume, turnover.
var klineColumns = []string{"日期", "开盘", "收盘", "最高", "最低", "成交量", "成交额"}

// Kline fetches daily candlesticks from the push2his endpoint.
type Kline struct {
	client  *resty.Client
	limiter *rate.Limiter
	baseURL string
}

func NewKline() *Kline {
	return &Kline{
		client:  newClient(),
		limiter: newLimiter(),
		baseURL: configURL("eastmoney.push_his_url", DefaultPushHisURL),
	}
}

// klineResponse is the push2his kline envelope. Klines are comma-joined
// strings, one per trading day.
type klineResponse struct {
	Rc   int `json:"rc"`
	Data *struct {
		Code   string   `json:"code"`
		Klines []string `json:"klines"`
	} `json:"data"`
}

// DailyBars fetches forward-adjusted (qfq) daily bars for the symbol between
// startDate and endDate, both YYYYMMDD inclusive. Rows arrive oldest first.
func (kline *Kline) DailyBars(ctx context.Context, code string, startDate string, endDate string) (*data.Table, error) {
	logger := zerolog.Ctx(ctx)

	if err := kline.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	secID := symbol.SecID(code)

	var envelope klineResponse
	resp, err := kline.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"secid":   secID,
			"klt":     "101",
			"fqt":     "1",
			"beg":     startDate,
			"end":     endDate,
			"fields1": "f1,f2,f3,f4,f5,f6",
			"fields2": "f51,f52,f53,f54,f55,f56,f57",
		}).
		SetResult(&envelope).
		Get(kline.baseURL + "/api/qt/stock/kline/get")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}
	if envelope.Rc != 0 {
		return nil, fmt.Errorf("%w: rc=%d", ErrVendor, envelope.Rc)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: %s", fundamentals.ErrNotFound, secID)
	}

	table := &data.Table{Columns: klineColumns}
	for _, line := range envelope.Data.Klines {
		cells := strings.Split(line, ",")
		if len(cells) < len(klineColumns) {
			logger.Warn().Str("Kline", line).Msg("skipping malformed kline row")
			continue
		}
		values := make([]any, len(klineColumns))
		for i := range klineColumns {
			values[i] = cells[i]
		}
		table.Append(values...)
	}

	logger.Debug().
		Str("SecID", secID).
		Int("Bars", table.NumRows()).
		Msg("fetched kline history")

	return table, nil
}
