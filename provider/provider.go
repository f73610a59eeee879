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

// Package provider implements the eastmoney HTTP clients the bridge reads
// from: F10 financial statements, the full-market spot snapshot, the direct
// quote endpoint, daily kline history, and the news search API. Every client
// shares the same construction: a resty client with a configured timeout and
// desktop user agent, plus a per-client rate limiter. Vendor unit quirks are
// normalized here at the boundary; callers receive canonical values.
package provider

import (
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

var (
	// ErrStatus reports a non-success HTTP status from an upstream endpoint.
	ErrStatus = errors.New("status code is invalid")

	// ErrVendor reports a well-formed response whose vendor envelope flags a
	// failure (nonzero rc/code or success=false).
	ErrVendor = errors.New("vendor reported failure")
)

// Default endpoint locations and limits. Each can be overridden through
// configuration; cmd/root.go registers these as the viper defaults so the
// sources command can display effective values.
const (
	DefaultDatacenterURL = "https://datacenter.eastmoney.com/securities/api/data/v1/get"
	DefaultPushURL       = "https://push2.eastmoney.com"
	DefaultPushHisURL    = "https://push2his.eastmoney.com"
	DefaultSearchURL     = "https://search-api-web.eastmoney.com/search/jsonp"

	// DefaultRateLimit is the request budget per second against any one
	// eastmoney host.
	DefaultRateLimit = 10

	// DefaultTimeoutSeconds bounds a single HTTP exchange.
	DefaultTimeoutSeconds = 10
)

// userAgent mirrors what the quote endpoints expect from a browser; requests
// without it are throttled aggressively.
const userAgent = "Mozilla/5.0"

// newClient builds the shared resty client: desktop user agent, configured
// timeout, and goccy wired in for payload decoding.
func newClient() *resty.Client {
	timeout := viper.GetInt("eastmoney.timeout_seconds")
	if timeout <= 0 {
		timeout = DefaultTimeoutSeconds
	}

	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetTimeout(time.Duration(timeout) * time.Second)
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	return client
}

// newLimiter builds a per-client rate limiter from the configured
// requests-per-second budget.
func newLimiter() *rate.Limiter {
	rps := viper.GetFloat64("eastmoney.rate_limit")
	if rps <= 0 {
		rps = DefaultRateLimit
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// configURL returns the configured base URL under key, or fallback when the
// key is unset.
func configURL(key string, fallback string) string {
	if u := viper.GetString(key); u != "" {
		return u
	}
	return fallback
}
