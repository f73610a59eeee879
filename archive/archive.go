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

// Package archive writes local snapshots of fetched price history. Snapshots
// are written only when `archive.dir` is configured; the bridge itself stays
// stateless.
package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/stock-agent/asdata/data"
)

// Enabled reports whether an archive directory is configured.
func Enabled() bool {
	return viper.GetString("archive.dir") != ""
}

// Snapshot writes bars to the archive directory as a parquet file and a CSV
// file sharing a slug derived from the symbol and date range. It is a no-op
// when no archive directory is configured.
func Snapshot(code string, startDate string, endDate string, bars []data.Bar) error {
	dir := viper.GetString("archive.dir")
	if dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Str("Dir", dir).Msg("cannot create archive directory")
		return err
	}

	base := slug.Make(fmt.Sprintf("%s-%s-%s", code, startDate, endDate))

	parquetFn := filepath.Join(dir, base+".parquet")
	if err := saveToParquet(bars, parquetFn); err != nil {
		return err
	}

	csvFn := filepath.Join(dir, base+".csv")
	if err := saveToCsv(bars, csvFn); err != nil {
		return err
	}

	log.Info().Int("NumRecords", len(bars)).Str("Parquet", parquetFn).Str("Csv", csvFn).Msg("archive snapshot written")
	return nil
}

func saveToParquet(bars []data.Bar, fn string) error {
	fh, err := local.NewLocalFileWriter(fn)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create local file")
		return err
	}
	defer fh.Close()

	pw, err := writer.NewParquetWriter(fh, new(data.Bar), 4)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create parquet writer")
		return err
	}

	pw.RowGroupSize = 128 * 1024 * 1024 // 128M
	pw.PageSize = 8 * 1024              // 8k
	pw.CompressionType = parquet.CompressionCodec_ZSTD

	for idx := range bars {
		if err = pw.Write(bars[idx]); err != nil {
			log.Error().Err(err).Str("TradeDate", bars[idx].TradeDate).Msg("parquet write failed for bar")
		}
	}

	if err = pw.WriteStop(); err != nil {
		log.Error().Err(err).Msg("parquet write failed")
		return err
	}

	return nil
}

func saveToCsv(bars []data.Bar, fn string) error {
	fh, err := os.Create(fn)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create local file")
		return err
	}
	defer fh.Close()

	if err := gocsv.MarshalFile(&bars, fh); err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("csv write failed")
		return err
	}

	return nil
}
