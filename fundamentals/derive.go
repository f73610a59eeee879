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

import "math"

// Derived metrics computed from statement line items when no source reports
// the ratio directly. Operands are nil when unresolved; every derivation
// returns nil instead of dividing by zero or an absent denominator, so the
// output never carries Inf or NaN.

// DebtRatio returns total liabilities over total assets in percentage form.
func DebtRatio(totalLiab, totalAssets *float64) *float64 {
	return scale(ratio(totalLiab, totalAssets), 100)
}

// CurrentRatio returns current assets over current liabilities.
func CurrentRatio(currentAssets, currentLiab *float64) *float64 {
	return ratio(currentAssets, currentLiab)
}

// QuickRatio returns current assets net of inventory over current
// liabilities. A missing inventory counts as zero; missing current assets or
// liabilities make the ratio unresolvable.
func QuickRatio(currentAssets, inventory, currentLiab *float64) *float64 {
	if currentAssets == nil {
		return nil
	}
	inv := 0.0
	if inventory != nil {
		inv = *inventory
	}
	net := *currentAssets - inv
	return ratio(&net, currentLiab)
}

// ReturnOnEquity returns net profit over parent equity in percentage form.
func ReturnOnEquity(netProfit, parentEquity *float64) *float64 {
	return scale(ratio(netProfit, parentEquity), 100)
}

// ReturnOnAssets returns net profit over total assets in percentage form.
func ReturnOnAssets(netProfit, totalAssets *float64) *float64 {
	return scale(ratio(netProfit, totalAssets), 100)
}

// GrossMargin returns revenue net of operating cost over revenue in
// percentage form. Both operands must be resolved.
func GrossMargin(revenue, operatingCost *float64) *float64 {
	if revenue == nil || operatingCost == nil {
		return nil
	}
	gross := *revenue - *operatingCost
	return scale(ratio(&gross, revenue), 100)
}

// NetMargin returns net profit over revenue in percentage form.
func NetMargin(netProfit, revenue *float64) *float64 {
	return scale(ratio(netProfit, revenue), 100)
}

// PriceToSales returns market capitalization over revenue.
func PriceToSales(marketCap, revenue *float64) *float64 {
	return ratio(marketCap, revenue)
}

// NormalizeGrowth converts a raw year-over-year reading to fraction form.
// Vendors report growth as a percentage (15.2) or a fraction (0.152); any
// magnitude above 1 is treated as a percentage and divided by 100. The
// stored fraction form is what the scorer's 0.1 threshold assumes.
func NormalizeGrowth(v float64) float64 {
	if math.Abs(v) > 1 {
		return v / 100
	}
	return v
}

func ratio(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := *num / *den
	return &v
}

func scale(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	s := *v * factor
	return &s
}
