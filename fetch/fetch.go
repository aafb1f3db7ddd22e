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
package fetch

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// IsURL reports whether the input argument names a remote export rather
// than a local file.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// Download retrieves a screener export from url into a temporary file and
// returns its path. The caller removes the file when done.
func Download(url string) (string, error) {
	timeout := viper.GetDuration("fetch.timeout")
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(3)

	resp, err := client.R().Get(url)
	if err != nil {
		return "", fmt.Errorf("download screener export: %w", err)
	}

	if resp.StatusCode() >= 400 {
		return "", fmt.Errorf("download screener export: server returned %s", resp.Status())
	}

	tmpfile, err := os.CreateTemp(os.TempDir(), "momentum-scan-*.csv")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer tmpfile.Close()

	if _, err := tmpfile.Write(resp.Body()); err != nil {
		return "", fmt.Errorf("write downloaded export: %w", err)
	}

	log.Info().Str("URL", url).Int("NumBytes", len(resp.Body())).Str("FileName", tmpfile.Name()).Msg("downloaded screener export")

	return tmpfile.Name(), nil
}
