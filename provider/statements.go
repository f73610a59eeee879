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
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/symbol"
)

// Report names on the datacenter F10 API.
const (
	reportMainFinance  = "RPT_F10_FINANCE_MAINFINADATA"
	reportBalanceSheet = "RPT_F10_FINANCE_GBALANCE"
	reportIncome       = "RPT_F10_FINANCE_GINCOME"
	reportCashFlow     = "RPT_F10_FINANCE_GCASHFLOW"
)

// Statements fetches financial statement tables from the datacenter F10 API.
// Report-form tables pass through with vendor column order intact; the main
// finance abstract is additionally pivoted into the metric-rows × date-columns
// layout the fundamentals resolver reads.
type Statements struct {
	client  *resty.Client
	limiter *rate.Limiter
	baseURL string
}

func NewStatements() *Statements {
	return &Statements{
		client:  newClient(),
		limiter: newLimiter(),
		baseURL: configURL("eastmoney.datacenter_url", DefaultDatacenterURL),
	}
}

// dcResponse is the datacenter API envelope.
type dcResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Result  struct {
		Pages int             `json:"pages"`
		Count int             `json:"count"`
		Data  json.RawMessage `json:"data"`
	} `json:"result"`
}

// SummaryAbstract returns the pivoted financial abstract for the bare
// 6-digit code: one row per indicator, one column per report date.
func (statements *Statements) SummaryAbstract(ctx context.Context, code string) (*data.Table, error) {
	flat, err := statements.fetch(ctx, reportMainFinance, symbol.SecuCode(code))
	if err != nil {
		return nil, err
	}
	return pivotAbstract(flat), nil
}

// BalanceSheet returns the report-form balance sheet for the
// exchange-prefixed symbol, newest period first as the vendor delivers it.
func (statements *Statements) BalanceSheet(ctx context.Context, prefixed string) (*data.Table, error) {
	return statements.fetch(ctx, reportBalanceSheet, symbol.SecuCode(prefixed))
}

// IncomeStatement returns the report-form income statement.
func (statements *Statements) IncomeStatement(ctx context.Context, prefixed string) (*data.Table, error) {
	return statements.fetch(ctx, reportIncome, symbol.SecuCode(prefixed))
}

// CashFlow returns the report-form cash flow statement.
func (statements *Statements) CashFlow(ctx context.Context, prefixed string) (*data.Table, error) {
	return statements.fetch(ctx, reportCashFlow, symbol.SecuCode(prefixed))
}

func (statements *Statements) fetch(ctx context.Context, reportName string, secuCode string) (*data.Table, error) {
	logger := zerolog.Ctx(ctx)

	if err := statements.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var envelope dcResponse
	resp, err := statements.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"reportName": reportName,
			"columns":    "ALL",
			"filter":     fmt.Sprintf(`(SECUCODE="%s")`, secuCode),
			"pageNumber": "1",
			"pageSize":   "200",
			"source":     "HSF10",
			"client":     "PC",
		}).
		SetResult(&envelope).
		Get(statements.baseURL)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	if !envelope.Success {
		return nil, fmt.Errorf("%w: %s (code %d)", ErrVendor, envelope.Message, envelope.Code)
	}

	table, err := tableFromObjects(envelope.Result.Data)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("ReportName", reportName).
		Str("SecuCode", secuCode).
		Int("Rows", table.NumRows()).
		Msg("fetched statement table")

	return table, nil
}

// abstractMetrics maps main-finance field codes to the indicator rows of the
// pivoted abstract. Labels are the vendor's display names; the resolver finds
// them by keyword fragment.
var abstractMetrics = []struct {
	field    string
	category string
	label    string
}{
	{"EPSJB", "常用指标", "基本每股收益"},
	{"BPS", "常用指标", "每股净资产"},
	{"MGJYXJJE", "常用指标", "每股经营现金流"},
	{"ROEJQ", "盈利能力", "净资产收益率(ROE)"},
	{"ZZCJLL", "盈利能力", "总资产报酬率(ROA)"},
	{"XSMLL", "盈利能力", "毛利率"},
	{"XSJLL", "盈利能力", "销售净利率"},
	{"TOTALOPERATEREVETZ", "成长能力", "营业总收入同比增长率"},
	{"PARENTNETPROFITTZ", "成长能力", "归母净利润同比增长率"},
	{"ZCFZL", "偿债能力", "资产负债率"},
	{"LD", "偿债能力", "流动比率"},
	{"SD", "偿债能力", "速动比率"},
}

// pivotAbstract turns the flat main-finance table (one row per report date)
// into the 指标-rows × date-columns layout: columns [选项, 指标, date...],
// one row per mapped indicator. Date labels normalize to YYYYMMDD so their
// lexical order matches chronological order.
func pivotAbstract(flat *data.Table) *data.Table {
	pivot := &data.Table{Columns: []string{"选项", "指标"}}

	dateIdx := flat.ColumnIndex("REPORT_DATE")
	if flat.Empty() || dateIdx < 0 {
		return pivot
	}

	rowByDate := make(map[string][]any, flat.NumRows())
	for _, cells := range flat.Rows {
		if dateIdx >= len(cells) {
			continue
		}
		label := dateLabel(cells[dateIdx])
		if label == "" {
			continue
		}
		if _, seen := rowByDate[label]; !seen {
			pivot.Columns = append(pivot.Columns, label)
			rowByDate[label] = cells
		}
	}

	for _, metric := range abstractMetrics {
		fieldIdx := flat.ColumnIndex(metric.field)
		if fieldIdx < 0 {
			continue
		}
		row := []any{metric.category, metric.label}
		for _, label := range pivot.Columns[2:] {
			cells := rowByDate[label]
			if fieldIdx < len(cells) {
				row = append(row, cells[fieldIdx])
			} else {
				row = append(row, nil)
			}
		}
		pivot.Rows = append(pivot.Rows, row)
	}

	return pivot
}

// dateLabel reduces a REPORT_DATE cell ("2023-06-30 00:00:00") to its
// zero-padded YYYYMMDD form.
func dateLabel(raw any) string {
	s, ok := raw.(string)
	if !ok {
		if raw == nil {
			return ""
		}
		s = fmt.Sprint(raw)
	}
	if len(s) >= 10 {
		s = s[:10]
	}
	return strings.ReplaceAll(strings.TrimSpace(s), "-", "")
}
