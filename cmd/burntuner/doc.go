// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Burntuner installs the burn sweep tuner page into a Vite public folder, serves
that folder on localhost and opens the page in a browser.

# Usage

	$ burntuner [flags...]

Run it from the project root. It copies _burn_tuner.html, which must sit next
to the burntuner binary, into the public folder (overwriting an older copy),
serves the folder on http://127.0.0.1:<port>/ and opens
http://127.0.0.1:<port>/_burn_tuner.html.

The sliders on the page drive the CSS variables of the logo effect. Copy the
generated CSS snippet back into App.jsx when you like what you see.

Stop the server with Ctrl+C. The tuner page is left in the public folder so
you can pick up where you left off; delete it when you are done.

To build a binary with the page next to it:

	$ go build -o . ./cmd/burntuner && cp cmd/burntuner/_burn_tuner.html .

# Environment

BURNTUNER_PUBLIC and BURNTUNER_PORT set the defaults of -public and -port.
LOG_LEVEL (debug, info, warn or error) controls diagnostic logging to stderr;
it defaults to warn.
*/
package main

import (
	_ "embed"

	"go.printburn.dev/burntuner/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
