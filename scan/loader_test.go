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
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/momentum-scan/scan"
)

var _ = Describe("Load", func() {
	Context("with a full screener export", func() {
		csvInput := `Ticker,Name,Industry,Price,Daily Liquidity,Composite RS,BIS,Daily Closing Range,ADR %,Price Contraction,RVol,% From Open,RS Rank,Next Earnings
NVDA,NVIDIA Corp,Semiconductors,$845.23,$48.2B,98,1.42,91%,4.1%,72%,1.85,+3.4%,99,2024-05-22
CELH,Celsius Holdings Inc,Beverages,$82.10,$450M,95,0.88,67%,5.2%,55%,1.20,+1.1%,96,2024-05-07
`

		It("loads every row with parsed values", func() {
			records, err := scan.Load(strings.NewReader(csvInput))
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))

			nvda := records[0]
			Expect(nvda.Ticker).To(Equal("NVDA"))
			Expect(nvda.Industry).To(Equal("Semiconductors"))
			Expect(nvda.Price).To(HaveValue(BeNumerically("~", 845.23, 1e-6)))
			Expect(nvda.Liquidity).To(HaveValue(BeNumerically("~", 48.2e9, 1e3)))
			Expect(nvda.CompositeRS).To(HaveValue(BeNumerically("==", 98)))
			Expect(nvda.BIS).To(HaveValue(BeNumerically("~", 1.42, 1e-6)))
			Expect(nvda.FromOpen).To(HaveValue(BeNumerically("~", 3.4, 1e-6)))
			Expect(nvda.NextEarnings).NotTo(BeNil())
			Expect(*nvda.NextEarnings).To(Equal(time.Date(2024, time.May, 22, 0, 0, 0, 0, time.UTC)))
		})
	})

	Context("with extra and missing columns", func() {
		csvInput := `Ticker,Price,Sector,Float Turnover
AAPL,$182.52,Technology,0.4
`

		It("ignores unknown columns and leaves missing fields nil", func() {
			records, err := scan.Load(strings.NewReader(csvInput))
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Price).To(HaveValue(BeNumerically("~", 182.52, 1e-6)))
			Expect(records[0].BIS).To(BeNil())
			Expect(records[0].CompositeRS).To(BeNil())
			Expect(records[0].NextEarnings).To(BeNil())
		})
	})

	Context("with malformed cells", func() {
		csvInput := `Ticker,Price,BIS,Next Earnings
TSLA,N/A,not-a-number,someday
`

		It("keeps the row and leaves the bad fields nil", func() {
			records, err := scan.Load(strings.NewReader(csvInput))
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Price).To(BeNil())
			Expect(records[0].BIS).To(BeNil())
			Expect(records[0].NextEarnings).To(BeNil())
		})
	})

	Context("with rows missing a ticker", func() {
		csvInput := `Ticker,Price
AMD,$165.40
,$12.00
`

		It("drops the ticker-less row", func() {
			records, err := scan.Load(strings.NewReader(csvInput))
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Ticker).To(Equal("AMD"))
		})
	})

	Context("with no usable rows", func() {
		It("returns ErrNoRecords for a header-only file", func() {
			_, err := scan.Load(strings.NewReader("Ticker,Price\n"))
			Expect(err).To(MatchError(scan.ErrNoRecords))
		})

		It("returns ErrNoRecords when every row lacks a ticker", func() {
			_, err := scan.Load(strings.NewReader("Ticker,Price\n,$1.00\n"))
			Expect(err).To(MatchError(scan.ErrNoRecords))
		})
	})

	Context("with alternate earnings date layouts", func() {
		DescribeTable("parses each layout",
			func(raw string) {
				csvInput := "Ticker,Next Earnings\nMSFT," + raw + "\n"
				records, err := scan.Load(strings.NewReader(csvInput))
				Expect(err).NotTo(HaveOccurred())
				Expect(records[0].NextEarnings).NotTo(BeNil())
				Expect(records[0].NextEarnings.Month()).To(Equal(time.April))
			},
			Entry("iso", "2024-04-25"),
			Entry("compact", "20240425"),
			Entry("us slash", "4/25/2024"),
		)
	})
})
