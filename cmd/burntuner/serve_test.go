// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"go.printburn.dev/burntuner/internal/testutil"
)

func TestServe(t *testing.T) {
	files := fstest.MapFS{
		pageName:              {Data: []byte("<h1>tuner</h1>")},
		"assets/app.css":      {Data: []byte("body { margin: 0; }")},
		"docs/index.html":     {Data: []byte("<p>docs</p>")},
		"logo_print_burn.png": {Data: []byte("PNG")},
	}

	cases := map[string]struct {
		method          string
		path            string
		wantStatus      int
		wantBody        string
		wantInBody      string
		wantContentType string
		wantHeader      map[string]string
	}{
		"tuner page": {
			path:            "/" + pageName,
			wantStatus:      http.StatusOK,
			wantBody:        "<h1>tuner</h1>",
			wantContentType: "text/html; charset=utf-8",
			wantHeader:      map[string]string{"Cache-Control": "no-store"},
		},
		"content type from extension": {
			path:            "/assets/app.css",
			wantStatus:      http.StatusOK,
			wantBody:        "body { margin: 0; }",
			wantContentType: "text/css; charset=utf-8",
		},
		"directory index": {
			path:       "/docs/",
			wantStatus: http.StatusOK,
			wantBody:   "<p>docs</p>",
		},
		"directory listing": {
			path:       "/",
			wantStatus: http.StatusOK,
			wantInBody: pageName,
		},
		"not found": {
			path:       "/nope.html",
			wantStatus: http.StatusNotFound,
			wantInBody: "404 Not Found",
		},
		"traversal stays inside": {
			path:       "/../../etc/passwd",
			wantStatus: http.StatusNotFound,
			wantInBody: "404 Not Found",
		},
		"HEAD": {
			method:     http.MethodHead,
			path:       "/" + pageName,
			wantStatus: http.StatusOK,
		},
		"POST is not allowed": {
			method:     http.MethodPost,
			path:       "/" + pageName,
			wantStatus: http.StatusMethodNotAllowed,
			wantHeader: map[string]string{"Allow": "GET, HEAD"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			method := tc.method
			if method == "" {
				method = http.MethodGet
			}
			r := httptest.NewRequest(method, "http://127.0.0.1:8000/", nil)
			r.URL.Path = tc.path
			w := httptest.NewRecorder()

			newFileServer(files).ServeHTTP(w, r)

			testutil.AssertEqual(t, w.Code, tc.wantStatus)
			if tc.wantBody != "" {
				testutil.AssertEqual(t, w.Body.String(), tc.wantBody)
			}
			if tc.wantInBody != "" && !strings.Contains(w.Body.String(), tc.wantInBody) {
				t.Errorf("body must contain %q, got %q", tc.wantInBody, w.Body.String())
			}
			if tc.wantContentType != "" {
				testutil.AssertEqual(t, w.Header().Get("Content-Type"), tc.wantContentType)
			}
			for k, v := range tc.wantHeader {
				testutil.AssertEqual(t, w.Header().Get(k), v)
			}
			if method == http.MethodHead && w.Body.Len() != 0 {
				t.Errorf("HEAD response must have no body, got %q", w.Body.String())
			}
		})
	}
}

func TestServeStatFailure(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/"+pageName, nil)
	w := httptest.NewRecorder()

	newFileServer(failFS{}).ServeHTTP(w, r)

	testutil.AssertEqual(t, w.Code, http.StatusInternalServerError)
	if !strings.Contains(w.Body.String(), "500 Internal Server Error") {
		t.Errorf("body must contain the error page, got %q", w.Body.String())
	}
}

type failFS struct{}

func (failFS) Open(name string) (fs.File, error) { return nil, errors.New("failed") }
