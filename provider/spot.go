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
	"strconv"
	"sync"

	"github.com/alphadose/haxmap"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/fundamentals"
	"github.com/stock-agent/asdata/symbol"
)

// spotColumns is the snapshot row layout handed to the resolver. The names
// are the vendor's display headers; the resolver addresses them exactly.
var spotColumns = []string{"代码", "名称", "市盈率-动态", "市净率", "总市值"}

// spotFields are the push2 field codes behind spotColumns, in the same
// order: ticker, name, dynamic PE, PB, total market cap (yuan).
var spotFields = []string{"f12", "f14", "f9", "f23", "f20"}

// spotPageSize is the clist page size; the full A-share board spans roughly
// 28 pages at 200 rows.
const spotPageSize = 200

// spotMarkets selects every A-share board: Shanghai main, Shenzhen main,
// ChiNext, STAR, and the Beijing exchange.
const spotMarkets = "m:0+t:6,m:0+t:80,m:1+t:2,m:1+t:23,m:0+t:81+s:2048"

// Spot serves live snapshot rows for any listed A-share. The full market
// table is fetched once, on first use, and indexed by ticker code; the index
// is safe for concurrent lookups.
type Spot struct {
	client  *resty.Client
	limiter *rate.Limiter
	baseURL string

	mu     sync.Mutex
	loaded bool
	index  *haxmap.Map[string, data.Row]
}

func NewSpot() *Spot {
	return &Spot{
		client:  newClient(),
		limiter: newLimiter(),
		baseURL: configURL("eastmoney.push_url", DefaultPushURL),
		index:   haxmap.New[string, data.Row](),
	}
}

// clistResponse is the push2 clist envelope. With np=1 the rows arrive as an
// array of field-code objects.
type clistResponse struct {
	Rc   int `json:"rc"`
	Data *struct {
		Total int              `json:"total"`
		Diff  []map[string]any `json:"diff"`
	} `json:"data"`
}

// SpotQuote returns the snapshot row for code, loading and indexing the
// full-market table on first call. A ticker absent from the loaded snapshot
// reports fundamentals.ErrNotFound.
func (spot *Spot) SpotQuote(ctx context.Context, code string) (data.Row, error) {
	if err := spot.ensureIndex(ctx); err != nil {
		return data.Row{}, err
	}

	row, ok := spot.index.Get(symbol.Normalize(code))
	if !ok {
		return data.Row{}, fmt.Errorf("%w: %s", fundamentals.ErrNotFound, code)
	}
	return row, nil
}

// ensureIndex fetches and indexes the snapshot once. A failed load is not
// cached; the next call retries.
func (spot *Spot) ensureIndex(ctx context.Context) error {
	spot.mu.Lock()
	defer spot.mu.Unlock()

	if spot.loaded {
		return nil
	}

	logger := zerolog.Ctx(ctx)

	rows := 0
	for page := 1; ; page++ {
		if err := spot.limiter.Wait(ctx); err != nil {
			return err
		}

		var envelope clistResponse
		resp, err := spot.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"pn":     strconv.Itoa(page),
				"pz":     strconv.Itoa(spotPageSize),
				"po":     "1",
				"np":     "1",
				"fltt":   "2",
				"invt":   "2",
				"fid":    "f12",
				"fs":     spotMarkets,
				"fields": "f9,f12,f14,f20,f23",
			}).
			SetResult(&envelope).
			Get(spot.baseURL + "/api/qt/clist/get")
		if err != nil {
			return err
		}
		if resp.StatusCode() >= 400 {
			return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
		}
		if envelope.Rc != 0 {
			return fmt.Errorf("%w: rc=%d", ErrVendor, envelope.Rc)
		}
		if envelope.Data == nil || len(envelope.Data.Diff) == 0 {
			break
		}

		for _, fields := range envelope.Data.Diff {
			values := make([]any, len(spotFields))
			for i, field := range spotFields {
				values[i] = fields[field]
			}
			ticker, ok := fields["f12"].(string)
			if !ok || ticker == "" {
				continue
			}
			spot.index.Set(ticker, data.Row{Columns: spotColumns, Values: values})
			rows++
		}

		if rows >= envelope.Data.Total {
			break
		}
	}

	logger.Debug().Int("Rows", rows).Msg("indexed market snapshot")
	spot.loaded = true

	return nil
}
