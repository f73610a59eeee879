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

import (
	json "github.com/goccy/go-json"
)

// RiskLevel is a coarse leverage classification derived from the debt ratio.
type RiskLevel string

const (
	RiskLow    RiskLevel = "低"
	RiskMedium RiskLevel = "中"
	RiskHigh   RiskLevel = "高"
)

// Report is the normalized fundamentals record for one symbol. Metric fields
// are pointers while the record is being resolved: nil means no source
// provided the value. The JSON form downstream consumers read substitutes 0
// for unresolved fields, so a serialized 0 means "unset", not a measured
// zero.
type Report struct {
	// [Valuation] Price to earnings ratio based on the most recent reported
	// earnings.
	PE *float64 // ratio

	// [Valuation] Price to earnings ratio over the trailing twelve months.
	// Declared for schema compatibility; no upstream source currently
	// reports it.
	PETTM *float64 // ratio

	// [Valuation] Price to book ratio.
	PB *float64 // ratio

	// [Profitability] Return on equity.
	ROE *float64 // percentage

	// [Profitability] Return on assets.
	ROA *float64 // percentage

	// [Growth] Year over year net profit growth, stored in fraction form
	// (0.152 means 15.2%).
	Growth *float64 // fraction

	// [Profitability] Net profit divided by revenue.
	NetMargin *float64 // percentage

	// [Profitability] Gross profit divided by revenue.
	GrossMargin *float64 // percentage

	// [Leverage] Total liabilities divided by total assets.
	DebtRatio *float64 // percentage

	// [Liquidity] Current assets divided by current liabilities.
	CurrentRatio *float64 // ratio

	// [Liquidity] Current assets net of inventory divided by current
	// liabilities.
	QuickRatio *float64 // ratio

	// [Valuation] Market capitalization divided by revenue.
	PS *float64 // ratio

	// [Valuation] Total market value in the vendor's native currency unit.
	MarketCap *float64 // currency

	// [Score] Composite scores on a 0-10 scale, each starting from a 6.0
	// baseline with threshold bonuses.
	FundamentalScore float64
	ValuationScore   float64
	GrowthScore      float64

	// [Score] Leverage risk tier derived from DebtRatio.
	RiskLevel RiskLevel

	// Last fetch or parse failure observed while resolving the record. Empty
	// when every upstream call succeeded. Earlier failures are only visible
	// in the logs.
	Error string
}

// reportJSON is the wire form of Report. Key order is fixed by the struct so
// identical inputs serialize byte-identically.
type reportJSON struct {
	PE               float64 `json:"pe"`
	PETTM            float64 `json:"pe_ttm"`
	PB               float64 `json:"pb"`
	ROE              float64 `json:"roe"`
	ROA              float64 `json:"roa"`
	Growth           float64 `json:"growth"`
	NetMargin        float64 `json:"net_margin"`
	GrossMargin      float64 `json:"gross_margin"`
	DebtRatio        float64 `json:"debt_ratio"`
	CurrentRatio     float64 `json:"current_ratio"`
	QuickRatio       float64 `json:"quick_ratio"`
	PS               float64 `json:"ps"`
	MarketCap        float64 `json:"market_cap"`
	FundamentalScore float64 `json:"fundamental_score"`
	ValuationScore   float64 `json:"valuation_score"`
	GrowthScore      float64 `json:"growth_score"`
	RiskLevel        string  `json:"risk_level"`
	Error            string  `json:"error,omitempty"`
}

// MarshalJSON serializes the report in its flat wire form, substituting the
// 0 sentinel for unresolved metric fields.
func (report *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		PE:               orZero(report.PE),
		PETTM:            orZero(report.PETTM),
		PB:               orZero(report.PB),
		ROE:              orZero(report.ROE),
		ROA:              orZero(report.ROA),
		Growth:           orZero(report.Growth),
		NetMargin:        orZero(report.NetMargin),
		GrossMargin:      orZero(report.GrossMargin),
		DebtRatio:        orZero(report.DebtRatio),
		CurrentRatio:     orZero(report.CurrentRatio),
		QuickRatio:       orZero(report.QuickRatio),
		PS:               orZero(report.PS),
		MarketCap:        orZero(report.MarketCap),
		FundamentalScore: report.FundamentalScore,
		ValuationScore:   report.ValuationScore,
		GrowthScore:      report.GrowthScore,
		RiskLevel:        string(report.RiskLevel),
		Error:            report.Error,
	})
}

// Float returns a pointer to v. Report metric fields use nil for unresolved
// values, so literals need a pointer helper when records are built by hand.
func Float(v float64) *float64 {
	f := v
	return &f
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
