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
package cmd

import (
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// request is the JSON document the pipeline writes to stdin. Fields the
// invoked subcommand does not use are ignored.
type request struct {
	Symbol    string `json:"symbol"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	MaxNews   int    `json:"max_news"`
}

// itemsEnvelope wraps list payloads in the {"items": [...]} document shape
// the pipeline expects.
type itemsEnvelope struct {
	Items any `json:"items"`
}

// readRequest decodes one request document from stdin. Decoding is lenient: a
// missing or malformed document yields a zero request and the caller decides
// how severe that is.
func readRequest() request {
	req := request{}
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("could not parse request document from stdin")
	}
	return req
}

// emit writes payload to stdout as one JSON document with UTF-8 left
// unescaped.
func emit(payload any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(payload); err != nil {
		log.Error().Err(err).Msg("could not encode payload")
	}
}
