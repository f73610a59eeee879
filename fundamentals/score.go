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
package fundamentals

import "github.com/stock-agent/asdata/data"

// Scoring thresholds and increments. These are heuristic rather than
// statistically calibrated; downstream consumers rely on the exact values, so
// changing any of them is a breaking change.
const (
	scoreBaseline = 6.0
	scoreCap      = 10.0

	lowPELimit    = 10.0
	lowPEBonus    = 1.0
	lowPBLimit    = 1.2
	lowPBBonus    = 0.5
	highROELimit  = 10.0 // percentage
	highROEBonus  = 1.0
	growthLimit   = 0.1 // fraction
	growthBonus   = 1.0
	highDebtRatio = 70.0 // percentage
	elevDebtRatio = 50.0
)

// Score finalizes the report: the three composite scores accrue threshold
// bonuses over a 6.0 baseline, and the risk tier is classified from the debt
// ratio. Runs on every report, including fully degraded ones, so the scores
// and risk level are always populated.
func Score(report *data.Report) {
	valuation := scoreBaseline
	fundamental := scoreBaseline
	growth := scoreBaseline

	if setBelow(report.PE, lowPELimit) {
		valuation += lowPEBonus
	}
	if setBelow(report.PB, lowPBLimit) {
		valuation += lowPBBonus
	}
	if setAbove(report.ROE, highROELimit) {
		fundamental += highROEBonus
	}
	if setAbove(report.Growth, growthLimit) {
		growth += growthBonus
	}

	report.ValuationScore = capped(valuation)
	report.FundamentalScore = capped(fundamental)
	report.GrowthScore = capped(growth)

	debtRatio := 0.0
	if report.DebtRatio != nil {
		debtRatio = *report.DebtRatio
	}
	switch {
	case debtRatio > highDebtRatio:
		report.RiskLevel = data.RiskHigh
	case debtRatio > elevDebtRatio:
		report.RiskLevel = data.RiskMedium
	default:
		report.RiskLevel = data.RiskLow
	}
}

// Bonuses require a resolved, nonzero metric: the wire format serializes
// unresolved fields as 0, so a measured 0 earns no bonus either.
func setBelow(v *float64, limit float64) bool {
	return v != nil && *v != 0 && *v < limit
}

func setAbove(v *float64, limit float64) bool {
	return v != nil && *v != 0 && *v > limit
}

func capped(score float64) float64 {
	if score > scoreCap {
		return scoreCap
	}
	return score
}
