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

// Package healthcheck signals run outcomes to healthchecks.io. All pings are
// optional: when no ping id is configured every call is a no-op, so scheduled
// and ad-hoc invocations share one code path.
package healthcheck

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"
)

// DefaultPingURL is the healthchecks.io ping endpoint.
const DefaultPingURL = "https://hc-ping.com"

var (
	ErrStatus = errors.New("status code is invalid")
)

// Ping signals a successful run for the check configured under
// healthchecks.pingid.
func Ping() error {
	return ping("", "")
}

// PingFailure signals a failed run. The message is attached as the ping body
// and shows up in the check's event log.
func PingFailure(message string) error {
	return ping("/fail", message)
}

func ping(suffix string, body string) error {
	pingID := viper.GetString("healthchecks.pingid")
	if pingID == "" {
		return nil
	}

	baseURL := viper.GetString("healthchecks.url")
	if baseURL == "" {
		baseURL = DefaultPingURL
	}

	client := resty.New()
	req := client.R().SetHeader("Content-Type", "text/plain")
	if body != "" {
		req = req.SetBody(body)
	}

	resp, err := req.Post(fmt.Sprintf("%s/%s%s", baseURL, pingID, suffix))

	if err != nil {
		return err
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	return nil
}
