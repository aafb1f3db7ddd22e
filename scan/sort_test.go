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

package scan_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/momentum-scan/scan"
)

func numRecord(ticker string, bis *float64) *scan.Record {
	return &scan.Record{Ticker: ticker, BIS: bis}
}

func fptr(v float64) *float64 {
	return &v
}

var _ = Describe("Sort", func() {
	var records []*scan.Record

	BeforeEach(func() {
		records = []*scan.Record{
			numRecord("AAA", fptr(0.5)),
			numRecord("BBB", nil),
			numRecord("CCC", fptr(1.4)),
			numRecord("DDD", fptr(0.9)),
		}
	})

	It("orders descending with missing values last", func() {
		Expect(scan.Sort(records, "BIS", true)).To(Succeed())

		tickers := make([]string, 0, len(records))
		for _, r := range records {
			tickers = append(tickers, r.Ticker)
		}
		Expect(tickers).To(Equal([]string{"CCC", "DDD", "AAA", "BBB"}))
	})

	It("orders ascending with missing values still last", func() {
		Expect(scan.Sort(records, "BIS", false)).To(Succeed())

		tickers := make([]string, 0, len(records))
		for _, r := range records {
			tickers = append(tickers, r.Ticker)
		}
		Expect(tickers).To(Equal([]string{"AAA", "DDD", "CCC", "BBB"}))
	})

	It("sorts string fields case-insensitively", func() {
		records := []*scan.Record{
			{Ticker: "b"},
			{Ticker: "A"},
			{Ticker: "C"},
		}
		Expect(scan.Sort(records, "Ticker", false)).To(Succeed())
		Expect(records[0].Ticker).To(Equal("A"))
		Expect(records[1].Ticker).To(Equal("b"))
		Expect(records[2].Ticker).To(Equal("C"))
	})

	It("accepts display names case-insensitively", func() {
		Expect(scan.Sort(records, "bis", true)).To(Succeed())
		Expect(scan.Sort(records, "Composite RS", true)).To(Succeed())
	})

	It("is stable for equal keys", func() {
		records := []*scan.Record{
			numRecord("FIRST", fptr(1.0)),
			numRecord("SECOND", fptr(1.0)),
			numRecord("THIRD", fptr(1.0)),
		}
		Expect(scan.Sort(records, "BIS", true)).To(Succeed())
		Expect(records[0].Ticker).To(Equal("FIRST"))
		Expect(records[1].Ticker).To(Equal("SECOND"))
		Expect(records[2].Ticker).To(Equal("THIRD"))
	})

	It("rejects unknown field names with the valid choices", func() {
		err := scan.Sort(records, "Momentum Factor", true)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Ticker"))
		Expect(err.Error()).To(ContainSubstring("BIS"))
	})
})

var _ = Describe("FieldByName", func() {
	It("matches display names", func() {
		field, err := scan.FieldByName("Liq")
		Expect(err).NotTo(HaveOccurred())
		Expect(field.Column).To(Equal("Daily Liquidity"))
	})

	It("matches source column names", func() {
		field, err := scan.FieldByName("Daily Closing Range")
		Expect(err).NotTo(HaveOccurred())
		Expect(field.Name).To(Equal("DCR"))
	})
})
