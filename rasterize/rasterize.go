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

// Package rasterize turns a rendered scan document into a PNG by driving a
// headless Chromium through playwright. It is an optional collaborator: the
// caller decides whether its errors are fatal.
package rasterize

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	// ErrUnavailable means the playwright driver or browser could not be
	// started (usually `playwright install chromium` has not been run).
	ErrUnavailable = errors.New("screenshot capability unavailable")

	// ErrRender means the browser started but the document could not be
	// rendered or captured within the configured timeout.
	ErrRender = errors.New("could not render document")
)

const containerPadding = 16

// Screenshot loads the HTML document at htmlPath in headless Chromium and
// writes a PNG of the table container, padded on all sides, to pngPath.
func Screenshot(htmlPath, pngPath string) error {
	timeout := viper.GetDuration("rasterize.timeout")
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	timeoutMs := float64(timeout.Milliseconds())

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer func() {
		if err := pw.Stop(); err != nil {
			log.Error().Err(err).Msg("error encountered when stopping playwright")
		}
	}()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			log.Error().Err(err).Msg("error encountered when closing browser")
		}
	}()

	log.Info().Str("BrowserVersion", browser.Version()).Dur("Timeout", timeout).Msg("starting screenshot browser")

	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{Width: 1300, Height: 1000},
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	if _, err := page.Goto("file://"+absPath, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(timeoutMs),
	}); err != nil {
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	container := page.Locator(".container")
	if err := container.WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(timeoutMs),
	}); err != nil {
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	box, err := container.BoundingBox()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(pngPath),
		Clip: &playwright.Rect{
			X:      math.Max(0, box.X-containerPadding),
			Y:      math.Max(0, box.Y-containerPadding),
			Width:  box.Width + 2*containerPadding,
			Height: box.Height + 2*containerPadding,
		},
	}); err != nil {
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	log.Info().Str("FileName", pngPath).Msg("wrote PNG image")

	return nil
}
