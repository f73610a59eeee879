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

// Keyword fragments for locating metrics in vendor tables. Matching is
// case-insensitive substring over column names (metric-name cells for the
// pivoted abstract). The vendors mix Chinese labels with abbreviated English
// field codes and rename columns between releases, so fragments stay short
// and both languages are listed.
var (
	roeKeywords         = []string{"净资产收益率", "roe"}
	roaKeywords         = []string{"总资产报酬率", "roa"}
	grossMarginKeywords = []string{"毛利率"}
	netMarginKeywords   = []string{"销售净利率", "净利率"}
	marketCapKeywords   = []string{"总市值", "市值", "market_cap"}

	// Year-over-year net profit growth as named in the financial abstract.
	growthKeywords = []string{"净利润同比增长", "净利润同比增长率", "归母净利润同比增长"}

	totalAssetsKeywords   = []string{"资产总计", "总资产", "total_assets"}
	totalLiabKeywords     = []string{"负债合计", "总负债", "total_liabilities"}
	currentAssetsKeywords = []string{"流动资产合计", "流动资产", "total_current_assets"}
	currentLiabKeywords   = []string{"流动负债合计", "流动负债", "total_current_liab"}
	inventoryKeywords     = []string{"存货", "库存", "inventory"}
	revenueKeywords       = []string{"营业总收入", "营业收入", "total_operate_income", "operate_income"}
	netProfitKeywords     = []string{"净利润", "归母净利润", "归属于母公司所有者的净利润", "parent_netprofit", "netprofit"}
	operateCostKeywords   = []string{"营业成本", "operate_cost"}
	parentEquityKeywords  = []string{"股东权益合计", "归属于母公司股东权益合计", "total_parent_equity"}

	// Growth fallbacks against the income statement: the explicit yoy field
	// codes first, then any column that looks like a year-over-year reading.
	incomeGrowthKeywords  = []string{"parent_netprofit_yoy", "netprofit_yoy", "total_operate_income_yoy", "operate_income_yoy"}
	genericGrowthKeywords = []string{"同比", "增长", "yoy"}
)

// Exact column candidates for the live market snapshot, in preference order.
// The snapshot schema is stable enough for exact names; the dynamic-PE column
// is preferred over the plain one.
var (
	spotPECandidates  = []string{"市盈率-动态", "市盈率(动态)", "市盈率"}
	spotPBCandidates  = []string{"市净率"}
	spotCapCandidates = []string{"总市值", "总市值(亿元)"}
)
