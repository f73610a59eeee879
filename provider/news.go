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
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/stock-agent/asdata/data"
	"github.com/stock-agent/asdata/symbol"
)

// newsColumns is the legacy article table layout the news reshaper reads.
var newsColumns = []string{"code", "title", "content", "public_time", "source", "url"}

// News queries the eastmoney article search API for per-symbol news.
type News struct {
	client  *resty.Client
	limiter *rate.Limiter
	baseURL string
}

func NewNews() *News {
	return &News{
		client:  newClient(),
		limiter: newLimiter(),
		baseURL: configURL("eastmoney.search_url", DefaultSearchURL),
	}
}

// searchParam is the request document the search API takes URL-encoded in
// the param query parameter. Empty pre/post tags disable keyword
// highlighting so titles come back clean.
type searchParam struct {
	UID           string   `json:"uid"`
	Keyword       string   `json:"keyword"`
	Type          []string `json:"type"`
	Client        string   `json:"client"`
	ClientType    string   `json:"clientType"`
	ClientVersion string   `json:"clientVersion"`
	Param         struct {
		CmsArticleWebOld searchPage `json:"cmsArticleWebOld"`
	} `json:"param"`
}

type searchPage struct {
	SearchScope string `json:"searchScope"`
	Sort        string `json:"sort"`
	PageIndex   int    `json:"pageIndex"`
	PageSize    int    `json:"pageSize"`
	PreTag      string `json:"preTag"`
	PostTag     string `json:"postTag"`
}

// searchResponse is the payload inside the jsonp wrapper.
type searchResponse struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Result struct {
		Articles []searchArticle `json:"cmsArticleWebOld"`
	} `json:"result"`
}

type searchArticle struct {
	Code      string `json:"code"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	MediaName string `json:"mediaName"`
	URL       string `json:"url"`
}

// Search returns up to limit recent articles mentioning the symbol, as a
// table in the legacy code/title/content/public_time/source/url layout.
func (news *News) Search(ctx context.Context, code string, limit int) (*data.Table, error) {
	logger := zerolog.Ctx(ctx)

	if err := news.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ticker := symbol.Normalize(code)

	param := searchParam{
		Keyword:       ticker,
		Type:          []string{"cmsArticleWebOld"},
		Client:        "web",
		ClientType:    "web",
		ClientVersion: "curr",
	}
	param.Param.CmsArticleWebOld = searchPage{
		SearchScope: "default",
		Sort:        "default",
		PageIndex:   1,
		PageSize:    limit,
	}

	encoded, err := json.Marshal(param)
	if err != nil {
		return nil, err
	}

	callback := fmt.Sprintf("jQuery%d", time.Now().UnixMilli())

	resp, err := news.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"cb":    callback,
			"param": string(encoded),
		}).
		Get(news.baseURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	body, err := stripJSONP(resp.String())
	if err != nil {
		return nil, err
	}

	var payload searchResponse
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, err
	}
	if payload.Code != 0 {
		return nil, fmt.Errorf("%w: %s (code %d)", ErrVendor, payload.Msg, payload.Code)
	}

	table := &data.Table{Columns: newsColumns}
	for _, article := range payload.Result.Articles {
		table.Append(article.Code, article.Title, article.Content,
			article.Date, article.MediaName, article.URL)
	}

	logger.Debug().
		Str("Symbol", ticker).
		Int("Articles", table.NumRows()).
		Msg("fetched news search results")

	return table, nil
}

// stripJSONP unwraps a callback(...) envelope and returns the inner JSON.
func stripJSONP(body string) (string, error) {
	start := strings.Index(body, "(")
	end := strings.LastIndex(body, ")")
	if start < 0 || end <= start {
		return "", fmt.Errorf("%w: response is not jsonp", ErrVendor)
	}
	return body[start+1 : end], nil
}
