// Copyright 2024
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

package format_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/momentum-scan/format"
)

func ptr(v float64) *float64 {
	return &v
}

var _ = Describe("ParseNumber", func() {
	DescribeTable("parses screener cell text",
		func(input string, expected float64) {
			got := format.ParseNumber(input)
			Expect(got).NotTo(BeNil())
			Expect(*got).To(BeNumerically("~", expected, 1e-6))
		},
		Entry("plain number", "98.5", 98.5),
		Entry("currency", "$123.45", 123.45),
		Entry("grouped currency", "$1,234.56", 1234.56),
		Entry("percent", "4.2%", 4.2),
		Entry("signed percent", "+3.1%", 3.1),
		Entry("negative percent", "-1.8%", -1.8),
		Entry("billions", "$1.2B", 1.2e9),
		Entry("millions", "$45M", 45e6),
		Entry("thousands", "850K", 850e3),
	)

	It("returns nil for empty text", func() {
		Expect(format.ParseNumber("")).To(BeNil())
		Expect(format.ParseNumber("   ")).To(BeNil())
	})

	It("returns nil for non-numeric text", func() {
		Expect(format.ParseNumber("N/A")).To(BeNil())
	})

	It("round-trips formatted liquidity text", func() {
		for _, v := range []float64{1.25e9, 4.5e7, 9.9e8} {
			text := format.Liquidity(ptr(v))
			parsed := format.ParseNumber(text)
			Expect(parsed).NotTo(BeNil())
			Expect(*parsed).To(BeNumerically("~", v, v*0.05))
		}
	})
})

var _ = Describe("Liquidity", func() {
	It("renders a billion or more in billions with one decimal", func() {
		Expect(format.Liquidity(ptr(1.25e9))).To(HaveSuffix("B"))
		Expect(format.Liquidity(ptr(1.25e9))).To(Equal("$1.2B"))
	})

	It("renders below a billion in whole millions", func() {
		Expect(format.Liquidity(ptr(45e6))).To(Equal("$45M"))
	})

	It("renders the placeholder for nil", func() {
		Expect(format.Liquidity(nil)).To(Equal(format.Placeholder))
	})
})

var _ = Describe("Price", func() {
	It("groups thousands", func() {
		Expect(format.Price(ptr(1234.5))).To(Equal("$1,234.50"))
	})

	It("renders the placeholder for nil", func() {
		Expect(format.Price(nil)).To(Equal(format.Placeholder))
	})
})

var _ = Describe("RS", func() {
	DescribeTable("maps percentiles to intensity classes",
		func(v float64, text, class string) {
			gotText, gotClass := format.RS(ptr(v))
			Expect(gotText).To(Equal(text))
			Expect(gotClass).To(Equal(class))
		},
		Entry("elite", 95.0, "95", "rs-elite"),
		Entry("elite boundary", 90.0, "90", "rs-elite"),
		Entry("high", 85.0, "85", "rs-high"),
		Entry("mid", 60.0, "60", "rs-mid"),
		Entry("low", 59.0, "59", "rs-low"),
	)

	It("renders the placeholder with the weakest class for nil", func() {
		text, class := format.RS(nil)
		Expect(text).To(Equal(format.Placeholder))
		Expect(class).To(Equal("rs-low"))
	})
})

var _ = Describe("BIS", func() {
	DescribeTable("maps scores to classes",
		func(v float64, class string) {
			_, gotClass := format.BIS(ptr(v))
			Expect(gotClass).To(Equal(class))
		},
		Entry("strong", 1.4, "bis-strong"),
		Entry("strong boundary", 1.0, "bis-strong"),
		Entry("moderate", 0.75, "bis-moderate"),
		Entry("weak", 0.49, "bis-weak"),
	)

	It("formats with two decimals", func() {
		text, _ := format.BIS(ptr(1.5))
		Expect(text).To(Equal("1.50"))
	})
})

var _ = Describe("RVol", func() {
	DescribeTable("maps multiples to classes",
		func(v float64, class string) {
			_, gotClass := format.RVol(ptr(v))
			Expect(gotClass).To(Equal(class))
		},
		Entry("high", 1.5, "rvol-high"),
		Entry("mid", 1.1, "rvol-mid"),
		Entry("low", 1.0, "rvol-low"),
	)
})

var _ = Describe("Contraction", func() {
	DescribeTable("maps percentages to classes",
		func(v float64, text, class string) {
			gotText, gotClass := format.Contraction(ptr(v))
			Expect(gotText).To(Equal(text))
			Expect(gotClass).To(Equal(class))
		},
		Entry("high", 75.0, "75%", "contr-high"),
		Entry("mid", 50.0, "50%", "contr-mid"),
		Entry("low", 30.0, "30%", "contr-low"),
	)
})

var _ = Describe("ClosingRange", func() {
	DescribeTable("maps percentages to classes",
		func(v float64, class string) {
			_, gotClass := format.ClosingRange(ptr(v))
			Expect(gotClass).To(Equal(class))
		},
		Entry("high", 92.0, "dcr-high"),
		Entry("mid", 65.0, "dcr-mid"),
		Entry("low", 20.0, "dcr-low"),
	)
})

var _ = Describe("FromOpen", func() {
	DescribeTable("signs the text and maps to classes",
		func(v float64, text, class string) {
			gotText, gotClass := format.FromOpen(ptr(v))
			Expect(gotText).To(Equal(text))
			Expect(gotClass).To(Equal(class))
		},
		Entry("strong gain", 4.2, "+4.2%", "from-open-high"),
		Entry("small gain", 1.3, "+1.3%", "from-open-mid"),
		Entry("flat", 0.0, "+0.0%", "from-open-mid"),
		Entry("loss", -2.5, "-2.5%", "from-open-neg"),
	)
})

var _ = Describe("EarningsDate", func() {
	today := time.Date(2024, time.March, 2, 15, 30, 0, 0, time.UTC)

	It("flags a near-term date", func() {
		date := today.AddDate(0, 0, 10)
		text, class := format.EarningsDate(&date, today)
		Expect(text).To(Equal("Mar 12 (+10d)"))
		Expect(class).To(Equal("earnings-soon"))
	})

	It("treats today as near-term", func() {
		date := today
		text, class := format.EarningsDate(&date, today)
		Expect(text).To(Equal("Mar 02 (+0d)"))
		Expect(class).To(Equal("earnings-soon"))
	})

	It("does not flag a date past the window", func() {
		date := today.AddDate(0, 0, 45)
		text, class := format.EarningsDate(&date, today)
		Expect(text).To(Equal("Apr 16 (+45d)"))
		Expect(class).To(Equal("earnings-far"))
	})

	It("does not flag a past date", func() {
		date := today.AddDate(0, 0, -5)
		text, class := format.EarningsDate(&date, today)
		Expect(text).To(Equal("Feb 26 (-5d)"))
		Expect(class).To(Equal("earnings-far"))
	})

	It("renders the placeholder for nil", func() {
		text, class := format.EarningsDate(nil, today)
		Expect(text).To(Equal(format.Placeholder))
		Expect(class).To(Equal("earnings-far"))
	})
})

var _ = Describe("ShortName", func() {
	DescribeTable("drops corporate suffixes",
		func(input, expected string) {
			Expect(format.ShortName(input)).To(Equal(expected))
		},
		Entry("Inc.", "Apple Inc.", "Apple"),
		Entry("Corp", "Micron Technology Corp", "Micron Tech"),
		Entry("no suffix", "NVIDIA", "NVIDIA"),
	)
})
