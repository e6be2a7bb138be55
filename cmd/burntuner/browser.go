// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"io"

	"github.com/pkg/browser"
)

// openBrowser opens url in the default browser. Output of the launcher
// (xdg-open and friends) is thrown away.
func openBrowser(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}
