// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"go.printburn.dev/burntuner/internal/web"
)

// fileServer serves static files from fsys like [http.FileServerFS], but
// replies to missing files with the error page of [web.RespondError].
type fileServer struct {
	fsys  fs.FS
	files http.Handler
}

func newFileServer(fsys fs.FS) *fileServer {
	return &fileServer{fsys: fsys, files: http.FileServerFS(fsys)}
}

func (s *fileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		web.RespondError(w, r, web.ErrMethodNotAllowed)
		return
	}

	p := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if p == "" {
		p = "."
	}
	if _, err := fs.Stat(s.fsys, p); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			web.RespondError(w, r, fmt.Errorf("%s: %w", p, web.ErrNotFound))
			return
		}
		web.RespondError(w, r, fmt.Errorf("stat %s: %w", p, err))
		return
	}

	// The page is rewritten on every run; never let the browser keep an old one.
	w.Header().Set("Cache-Control", "no-store")
	s.files.ServeHTTP(w, r)
}
