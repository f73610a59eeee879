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
package symbol

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize reduces symbol to its bare 6-character ticker code. Whitespace is
// trimmed, full-width digits are narrowed, and any exchange prefix is dropped
// by keeping only the trailing 6 characters.
func Normalize(symbol string) string {
	code := width.Narrow.String(strings.TrimSpace(symbol))
	runes := []rune(code)
	if len(runes) > 6 {
		runes = runes[len(runes)-6:]
	}
	return string(runes)
}

// Prefixed returns the code with its lowercase exchange prefix, determined by
// the leading digit: 6/9 list on Shanghai, 0/2/3 on Shenzhen, 4/8 on the
// Beijing exchange. Unrecognized codes default to Shanghai.
func Prefixed(symbol string) string {
	code := Normalize(symbol)
	switch {
	case strings.HasPrefix(code, "6"), strings.HasPrefix(code, "9"):
		return "sh" + code
	case strings.HasPrefix(code, "0"), strings.HasPrefix(code, "2"), strings.HasPrefix(code, "3"):
		return "sz" + code
	case strings.HasPrefix(code, "4"), strings.HasPrefix(code, "8"):
		return "bj" + code
	}
	return "sh" + code
}

// SecID returns the push2 quote API identifier for the code, e.g. "1.600519"
// for Shanghai listings and "0.000001" for everything else.
func SecID(symbol string) string {
	code := Normalize(symbol)
	market := "0"
	if strings.HasPrefix(code, "6") || strings.HasPrefix(code, "9") {
		market = "1"
	}
	return market + "." + code
}

// SecuCode returns the SECUCODE filter form used by the datacenter F10 API,
// e.g. "600519.SH".
func SecuCode(symbol string) string {
	prefixed := Prefixed(symbol)
	return prefixed[2:] + "." + strings.ToUpper(prefixed[:2])
}
