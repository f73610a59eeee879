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
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/stock-agent/asdata/data"
)

var errNotTabular = errors.New("payload is not an array of objects")

// tableFromObjects decodes a JSON array of flat objects into a Table whose
// column order follows the key order of the payload. Field resolution breaks
// ties by natural column order, so decoding into a Go map would lose
// information; the token stream is walked instead. The first object defines
// the initial column order, objects seen later append any new keys, and rows
// missing a column carry nil there. Numbers decode as json.Number so no
// precision is lost before sanitization.
func tableFromObjects(raw []byte) (*data.Table, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	table := &data.Table{}
	colIdx := make(map[string]int)

	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}

		row := make([]any, len(table.Columns))
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", errNotTabular, err)
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: object key is %T", errNotTabular, tok)
			}

			var value any
			if err := dec.Decode(&value); err != nil {
				return nil, fmt.Errorf("%w: %v", errNotTabular, err)
			}

			idx, known := colIdx[key]
			if !known {
				idx = len(table.Columns)
				colIdx[key] = idx
				table.Columns = append(table.Columns, key)
			}
			for len(row) <= idx {
				row = append(row, nil)
			}
			row[idx] = value
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, fmt.Errorf("%w: %v", errNotTabular, err)
		}

		table.Rows = append(table.Rows, row)
	}

	// Rows decoded before a late-appearing column are short; pad them so
	// every row spans the full column list.
	for i, row := range table.Rows {
		for len(row) < len(table.Columns) {
			row = append(row, nil)
		}
		table.Rows[i] = row
	}

	return table, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", errNotTabular, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("%w: expected %q, got %v", errNotTabular, want, tok)
	}
	return nil
}
