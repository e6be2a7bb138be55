// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.printburn.dev/burntuner/internal/atomicio"
)

// pageName is the name of the tuner page, both next to the program and in the
// public folder.
const pageName = "_burn_tuner.html"

var (
	errNoPublicDir = errors.New("public folder not found")
	errNoTemplate  = errors.New("bundled HTML not found next to program")
)

// installPage copies srcDir/_burn_tuner.html into publicDir, replacing an
// older copy, and returns the path it wrote.
func installPage(publicDir, srcDir string) (string, error) {
	if fi, err := os.Stat(publicDir); err != nil || !fi.IsDir() {
		return "", fmt.Errorf("%w: %s", errNoPublicDir, publicDir)
	}

	src := filepath.Join(srcDir, pageName)
	b, err := os.ReadFile(src)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", errNoTemplate, src)
	}
	if err != nil {
		return "", fmt.Errorf("reading bundled page: %w", err)
	}

	dst := filepath.Join(publicDir, pageName)
	if err := atomicio.WriteFile(dst, b, 0o644); err != nil {
		return "", fmt.Errorf("writing tuner page: %w", err)
	}
	return dst, nil
}
