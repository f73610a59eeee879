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
package fundamentals_test

import (
	"math"

	json "github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stock-agent/asdata/fundamentals"
)

var _ = Describe("ToFloat", func() {
	DescribeTable("resolves raw cells to finite values",
		func(raw any, expected float64) {
			v, ok := fundamentals.ToFloat(raw)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(expected))
		},
		Entry("float64", 15.2, 15.2),
		Entry("negative float64", -3.75, -3.75),
		Entry("float32", float32(2.5), 2.5),
		Entry("int", 42, 42.0),
		Entry("int64", int64(-7), -7.0),
		Entry("uint64", uint64(900948), 900948.0),
		Entry("numeric string", "15.2", 15.2),
		Entry("numeric string with whitespace", "  60.5 ", 60.5),
		Entry("scientific notation string", "3.5e6", 3.5e6),
		Entry("json.Number", json.Number("28.5"), 28.5),
		Entry("zero", 0.0, 0.0),
	)

	DescribeTable("treats unusable cells as absent",
		func(raw any) {
			_, ok := fundamentals.ToFloat(raw)
			Expect(ok).To(BeFalse())
		},
		Entry("nil", nil),
		Entry("NaN", math.NaN()),
		Entry("positive infinity", math.Inf(1)),
		Entry("negative infinity", math.Inf(-1)),
		Entry("empty string", ""),
		Entry("whitespace string", "   "),
		Entry("non-numeric string", "暂无数据"),
		Entry("dash placeholder", "-"),
		Entry("malformed json.Number", json.Number("n/a")),
		Entry("bool", true),
		Entry("slice", []any{1.0}),
	)

	It("preserves sign and magnitude exactly", func() {
		v, ok := fundamentals.ToFloat("-0.000001")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(-0.000001))
	})
})
