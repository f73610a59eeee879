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
	"math"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/fundamentals"
	"github.com/stock-agent/asdata/symbol"
)

// quoteReferer satisfies the push2 stock endpoint's referer check.
const quoteReferer = "https://quote.eastmoney.com/"

// Quotes is the per-symbol quote client, the resolver's last fallback when
// neither statements nor the snapshot produced valuation fields.
type Quotes struct {
	client  *resty.Client
	limiter *rate.Limiter
	baseURL string
}

func NewQuotes() *Quotes {
	return &Quotes{
		client:  newClient(),
		limiter: newLimiter(),
		baseURL: configURL("eastmoney.push_url", DefaultPushURL),
	}
}

// quoteResponse is the push2 stock/get envelope. Data is null for unknown
// secids.
type quoteResponse struct {
	Rc   int            `json:"rc"`
	Data map[string]any `json:"data"`
}

// Quote fetches dynamic PE (f162), PB (f167), and total market cap (f116)
// for the symbol. The vendor scales the two ratios by 100; readings with
// magnitude above 10 are divided back. Market cap arrives in yuan and passes
// through. Fields the vendor omits stay nil.
func (quotes *Quotes) Quote(ctx context.Context, code string) (fundamentals.Quote, error) {
	logger := zerolog.Ctx(ctx)

	if err := quotes.limiter.Wait(ctx); err != nil {
		return fundamentals.Quote{}, err
	}

	secID := symbol.SecID(code)

	var envelope quoteResponse
	resp, err := quotes.client.R().
		SetContext(ctx).
		SetHeader("Referer", quoteReferer).
		SetQueryParams(map[string]string{
			"secid":  secID,
			"fields": "f162,f167,f116",
		}).
		SetResult(&envelope).
		Get(quotes.baseURL + "/api/qt/stock/get")
	if err != nil {
		return fundamentals.Quote{}, err
	}
	if resp.StatusCode() >= 400 {
		return fundamentals.Quote{}, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}
	if envelope.Rc != 0 {
		return fundamentals.Quote{}, fmt.Errorf("%w: rc=%d", ErrVendor, envelope.Rc)
	}
	if envelope.Data == nil {
		return fundamentals.Quote{}, fmt.Errorf("%w: %s", fundamentals.ErrNotFound, secID)
	}

	quote := fundamentals.Quote{}
	if v, ok := fundamentals.ToFloat(envelope.Data["f162"]); ok {
		quote.PE = data.Float(unscaleRatio(v))
	}
	if v, ok := fundamentals.ToFloat(envelope.Data["f167"]); ok {
		quote.PB = data.Float(unscaleRatio(v))
	}
	if v, ok := fundamentals.ToFloat(envelope.Data["f116"]); ok {
		quote.MarketCap = data.Float(v)
	}

	logger.Debug().Str("SecID", secID).Msg("fetched direct quote")

	return quote, nil
}

// unscaleRatio undoes the vendor's ×100 integer encoding of pe/pb. Readings
// at magnitude 10 or below are already decimal and pass through.
func unscaleRatio(v float64) float64 {
	if math.Abs(v) > 10 {
		return v / 100
	}
	return v
}
