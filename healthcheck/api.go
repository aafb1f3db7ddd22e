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

// Package healthcheck notifies a healthchecks.io style monitor after each
// successful publish so a missed daily scan raises an alert.
package healthcheck

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"
)

var ErrStatus = errors.New("status code is invalid")

// Configured reports whether a ping URL has been set.
func Configured() bool {
	return viper.GetString("healthchecks.pingurl") != ""
}

// Ping signals the configured check that a publish completed.
func Ping() error {
	return ping(viper.GetString("healthchecks.pingurl"))
}

// Fail signals the configured check that a publish errored, which alerts
// immediately instead of waiting for the grace period.
func Fail() error {
	return ping(viper.GetString("healthchecks.pingurl") + "/fail")
}

func ping(url string) error {
	client := resty.New()
	resp, err := client.R().Get(url)
	if err != nil {
		return err
	}

	if resp.StatusCode() >= 400 {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	return nil
}
