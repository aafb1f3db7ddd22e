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

// Package archive writes normalized scan records to parquet so downstream
// research tooling can consume them without re-parsing screener exports.
package archive

import (
	"github.com/rs/zerolog/log"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/penny-vault/momentum-scan/scan"
)

type parquetRecord struct {
	Ticker       string   `parquet:"name=ticker, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Name         string   `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Industry     string   `parquet:"name=industry, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Price        *float64 `parquet:"name=price, type=DOUBLE, repetitiontype=OPTIONAL"`
	Liquidity    *float64 `parquet:"name=daily_liquidity, type=DOUBLE, repetitiontype=OPTIONAL"`
	CompositeRS  *float64 `parquet:"name=composite_rs, type=DOUBLE, repetitiontype=OPTIONAL"`
	BIS          *float64 `parquet:"name=bis, type=DOUBLE, repetitiontype=OPTIONAL"`
	ClosingRange *float64 `parquet:"name=daily_closing_range, type=DOUBLE, repetitiontype=OPTIONAL"`
	ADR          *float64 `parquet:"name=adr_percent, type=DOUBLE, repetitiontype=OPTIONAL"`
	Contraction  *float64 `parquet:"name=price_contraction, type=DOUBLE, repetitiontype=OPTIONAL"`
	RVol         *float64 `parquet:"name=rvol, type=DOUBLE, repetitiontype=OPTIONAL"`
	FromOpen     *float64 `parquet:"name=percent_from_open, type=DOUBLE, repetitiontype=OPTIONAL"`
	RSRank       *float64 `parquet:"name=rs_rank, type=DOUBLE, repetitiontype=OPTIONAL"`
	NextEarnings string   `parquet:"name=next_earnings, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
}

// Save writes records to the parquet file at fn.
func Save(records []*scan.Record, fn string) error {
	fh, err := local.NewLocalFileWriter(fn)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create local file")
		return err
	}
	defer fh.Close()

	pw, err := writer.NewParquetWriter(fh, new(parquetRecord), 4)
	if err != nil {
		log.Error().Err(err).Msg("parquet writer creation failed")
		return err
	}

	pw.RowGroupSize = 128 * 1024 * 1024 // 128M
	pw.PageSize = 8 * 1024              // 8k
	pw.CompressionType = parquet.CompressionCodec_ZSTD

	for _, r := range records {
		row := &parquetRecord{
			Ticker:       r.Ticker,
			Name:         r.Name,
			Industry:     r.Industry,
			Price:        r.Price,
			Liquidity:    r.Liquidity,
			CompositeRS:  r.CompositeRS,
			BIS:          r.BIS,
			ClosingRange: r.ClosingRange,
			ADR:          r.ADR,
			Contraction:  r.Contraction,
			RVol:         r.RVol,
			FromOpen:     r.FromOpen,
			RSRank:       r.RSRank,
		}
		if r.NextEarnings != nil {
			row.NextEarnings = r.NextEarnings.Format("2006-01-02")
		}

		if err := pw.Write(row); err != nil {
			log.Error().Err(err).Str("Ticker", r.Ticker).Msg("parquet write failed")
		}
	}

	if err := pw.WriteStop(); err != nil {
		log.Error().Err(err).Msg("error stopping parquet writer")
		return err
	}

	log.Info().Str("FileName", fn).Int("NumRecords", len(records)).Msg("wrote records to parquet")

	return nil
}
