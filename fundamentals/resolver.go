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

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/symbol"
)

// ErrNotFound reports that a source responded but carried no row for the
// requested symbol.
var ErrNotFound = errors.New("symbol not found")

// StatementSource returns the financial statement tables for one symbol.
// SummaryAbstract takes the bare 6-digit code; the report-form statements
// take the exchange-prefixed form.
type StatementSource interface {
	SummaryAbstract(ctx context.Context, code string) (*data.Table, error)
	BalanceSheet(ctx context.Context, prefixed string) (*data.Table, error)
	IncomeStatement(ctx context.Context, prefixed string) (*data.Table, error)
	CashFlow(ctx context.Context, prefixed string) (*data.Table, error)
}

// SnapshotSource returns the live market snapshot row for one ticker code.
type SnapshotSource interface {
	SpotQuote(ctx context.Context, code string) (data.Row, error)
}

// QuoteSource is the last-resort per-symbol quote lookup.
type QuoteSource interface {
	Quote(ctx context.Context, code string) (Quote, error)
}

// Quote carries the metrics the direct quote endpoint reports, already in
// canonical units. nil fields were not returned by the vendor.
type Quote struct {
	PE        *float64
	PB        *float64
	MarketCap *float64
}

// Resolver builds normalized fundamentals one symbol at a time by cascading
// across the statement tables, the live market snapshot, and the direct
// quote endpoint. Each source only fills fields the previous sources left
// unresolved.
type Resolver struct {
	Statements StatementSource
	Snapshot   SnapshotSource
	Quotes     QuoteSource
}

// statements bundles one fetch round. The cash flow table is retrieved to
// keep the vendor contract exercised but nothing consumes it yet.
type statements struct {
	abstract *data.Table
	balance  *data.Table
	income   *data.Table
	cashFlow *data.Table
}

// Resolve builds the fundamentals report for rawSymbol. A report is always
// returned: upstream failures degrade to unresolved fields plus an advisory
// Error string. The last recorded failure wins the Error field; earlier
// failures are only visible in the logs.
func (resolver *Resolver) Resolve(ctx context.Context, rawSymbol string) *data.Report {
	logger := zerolog.Ctx(ctx)
	report := &data.Report{}

	code := symbol.Normalize(rawSymbol)
	if code == "" {
		report.Error = "symbol is required"
		Score(report)
		return report
	}

	logger.Debug().Str("Symbol", code).Msg("resolving fundamentals")

	stmts := resolver.fetchStatements(ctx, report, code)

	balanceRow, _ := LatestRow(stmts.balance)
	incomeRow, _ := LatestRow(stmts.income)

	// Direct reads from the pivoted abstract.
	fill(&report.ROE, pivoted(stmts.abstract, roeKeywords))
	fill(&report.ROA, pivoted(stmts.abstract, roaKeywords))
	fill(&report.GrossMargin, pivoted(stmts.abstract, grossMarginKeywords))
	fill(&report.NetMargin, pivoted(stmts.abstract, netMarginKeywords))
	fill(&report.MarketCap, pivoted(stmts.abstract, marketCapKeywords))
	if g := pivoted(stmts.abstract, growthKeywords); g != nil {
		fill(&report.Growth, data.Float(NormalizeGrowth(*g)))
	}

	// Leverage and liquidity from the balance sheet.
	totalAssets := matched(balanceRow, totalAssetsKeywords)
	totalLiab := matched(balanceRow, totalLiabKeywords)
	currentAssets := matched(balanceRow, currentAssetsKeywords)
	currentLiab := matched(balanceRow, currentLiabKeywords)
	inventory := matched(balanceRow, inventoryKeywords)

	fill(&report.DebtRatio, DebtRatio(totalLiab, totalAssets))
	fill(&report.CurrentRatio, CurrentRatio(currentAssets, currentLiab))
	fill(&report.QuickRatio, QuickRatio(currentAssets, inventory, currentLiab))

	// Revenue and price to sales from the income statement. Market cap is
	// usually still unresolved here; the late pass below recomputes once the
	// quote sources have had their chance.
	revenue := matched(incomeRow, revenueKeywords)
	fill(&report.PS, PriceToSales(report.MarketCap, revenue))

	// Derive whatever the abstract did not provide.
	netProfit := matched(incomeRow, netProfitKeywords)
	fill(&report.ROE, ReturnOnEquity(netProfit, matched(balanceRow, parentEquityKeywords)))
	fill(&report.ROA, ReturnOnAssets(netProfit, totalAssets))
	fill(&report.GrossMargin, GrossMargin(revenue, matched(incomeRow, operateCostKeywords)))
	fill(&report.NetMargin, NetMargin(netProfit, revenue))

	// Growth falls back to the income statement: explicit yoy field codes
	// first, then anything that reads like a year-over-year column.
	if report.Growth == nil {
		if g, ok := MatchKeywords(incomeRow, incomeGrowthKeywords); ok {
			report.Growth = data.Float(NormalizeGrowth(g))
		} else if g, ok := MatchKeywords(incomeRow, genericGrowthKeywords); ok {
			report.Growth = data.Float(NormalizeGrowth(g))
		}
	}

	// Live quote fallback only when valuation fields are still unresolved.
	if report.PE == nil || report.PB == nil || report.MarketCap == nil {
		resolver.fillFromQuotes(ctx, report, code)
	}

	// Market cap may have arrived late.
	if report.PS == nil {
		fill(&report.PS, PriceToSales(report.MarketCap, revenue))
	}

	Score(report)

	return report
}

// fetchStatements retrieves the four statement tables. Retrieval is all or
// nothing: the first failed call leaves every table empty so the later
// phases fall through to the quote sources.
func (resolver *Resolver) fetchStatements(ctx context.Context, report *data.Report, code string) statements {
	logger := zerolog.Ctx(ctx)

	if resolver.Statements == nil {
		report.Error = "statement fetch failed: no source configured"
		return statements{}
	}

	prefixed := symbol.Prefixed(code)

	var stmts statements
	err := func() error {
		var err error
		if stmts.abstract, err = resolver.Statements.SummaryAbstract(ctx, code); err != nil {
			return fmt.Errorf("summary abstract: %w", err)
		}
		if stmts.balance, err = resolver.Statements.BalanceSheet(ctx, prefixed); err != nil {
			return fmt.Errorf("balance sheet: %w", err)
		}
		if stmts.income, err = resolver.Statements.IncomeStatement(ctx, prefixed); err != nil {
			return fmt.Errorf("income statement: %w", err)
		}
		if stmts.cashFlow, err = resolver.Statements.CashFlow(ctx, prefixed); err != nil {
			return fmt.Errorf("cash flow: %w", err)
		}
		return nil
	}()
	if err != nil {
		logger.Warn().Err(err).Str("Symbol", code).Msg("statement fetch failed")
		report.Error = fmt.Sprintf("statement fetch failed: %v", err)
		return statements{}
	}

	return stmts
}

// fillFromQuotes patches pe, pb, and market cap from the live snapshot, then
// hits the direct quote endpoint for anything still unresolved. Snapshot
// values are addressed by exact column candidates; both sources deliver
// values pre-normalized by the provider layer.
func (resolver *Resolver) fillFromQuotes(ctx context.Context, report *data.Report, code string) {
	logger := zerolog.Ctx(ctx)

	if resolver.Snapshot != nil {
		row, err := resolver.Snapshot.SpotQuote(ctx, code)
		switch {
		case errors.Is(err, ErrNotFound):
			logger.Debug().Str("Symbol", code).Msg("symbol not in market snapshot")
		case err != nil:
			logger.Warn().Err(err).Str("Symbol", code).Msg("spot snapshot lookup failed")
			report.Error = fmt.Sprintf("spot snapshot lookup failed: %v", err)
		default:
			fill(&report.PE, exact(row, spotPECandidates))
			fill(&report.PB, exact(row, spotPBCandidates))
			fill(&report.MarketCap, exact(row, spotCapCandidates))
		}
	}

	if report.PE != nil && report.PB != nil && report.MarketCap != nil {
		return
	}
	if resolver.Quotes == nil {
		return
	}

	quote, err := resolver.Quotes.Quote(ctx, code)
	switch {
	case errors.Is(err, ErrNotFound):
		logger.Debug().Str("Symbol", code).Msg("symbol not known to quote endpoint")
		return
	case err != nil:
		logger.Warn().Err(err).Str("Symbol", code).Msg("direct quote lookup failed")
		report.Error = fmt.Sprintf("direct quote lookup failed: %v", err)
		return
	}

	fill(&report.PE, quote.PE)
	fill(&report.PB, quote.PB)
	fill(&report.MarketCap, quote.MarketCap)
}

// fill assigns v to dst only while dst is unresolved. Resolution phases run
// highest priority first, so a resolved field is never displaced.
func fill(dst **float64, v *float64) {
	if *dst == nil && v != nil {
		*dst = v
	}
}

func matched(row data.Row, keywords []string) *float64 {
	if v, ok := MatchKeywords(row, keywords); ok {
		return data.Float(v)
	}
	return nil
}

func exact(row data.Row, candidates []string) *float64 {
	if v, ok := ExactLookup(row, candidates); ok {
		return data.Float(v)
	}
	return nil
}

func pivoted(table *data.Table, keywords []string) *float64 {
	if v, ok := PivotValue(table, keywords); ok {
		return data.Float(v)
	}
	return nil
}
