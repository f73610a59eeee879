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

// Bar is one daily OHLCV record in forward-adjusted (qfq) form. PreClose,
// Change, and PctChg are derived from the prior bar and stay nil on the first
// bar of a series, which serializes as JSON null exactly as downstream
// consumers expect.
type Bar struct {
	// Trade date in YYYYMMDD form.
	TradeDate string `json:"trade_date" csv:"trade_date" parquet:"name=trade_date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`

	Open  float64 `json:"open" csv:"open" parquet:"name=open, type=DOUBLE"`
	High  float64 `json:"high" csv:"high" parquet:"name=high, type=DOUBLE"`
	Low   float64 `json:"low" csv:"low" parquet:"name=low, type=DOUBLE"`
	Close float64 `json:"close" csv:"close" parquet:"name=close, type=DOUBLE"`

	// Prior bar close.
	PreClose *float64 `json:"pre_close" csv:"pre_close" parquet:"name=pre_close, type=DOUBLE, repetitiontype=OPTIONAL"`

	// Close minus PreClose.
	Change *float64 `json:"change" csv:"change" parquet:"name=change, type=DOUBLE, repetitiontype=OPTIONAL"`

	// Change relative to PreClose, percentage form.
	PctChg *float64 `json:"pct_chg" csv:"pct_chg" parquet:"name=pct_chg, type=DOUBLE, repetitiontype=OPTIONAL"`

	// Volume in lots, as reported by the vendor.
	Vol float64 `json:"vol" csv:"vol" parquet:"name=vol, type=DOUBLE"`

	// Turnover in yuan.
	Amount float64 `json:"amount" csv:"amount" parquet:"name=amount, type=DOUBLE"`
}
