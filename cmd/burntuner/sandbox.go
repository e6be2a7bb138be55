// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/landlock-lsm/go-landlock/landlock"
)

// readRules returns the Landlock rules that keep every file served from dir
// readable, including files reached through symlinks pointing outside of it.
func readRules(dir string) []landlock.Rule {
	dirs, files := linkTargets(dir)
	rules := []landlock.Rule{landlock.RODirs(append([]string{dir}, dirs...)...)}
	if len(files) > 0 {
		rules = append(rules, landlock.ROFiles(files...))
	}
	return rules
}

// linkTargets walks root and returns the resolved targets of symlinks that
// lead outside of it. Symlinked directories are walked too. Dangling and
// unreadable links are skipped.
func linkTargets(root string) (dirs, files []string) {
	if r, err := filepath.EvalSymlinks(root); err == nil {
		root = r
	}
	seen := map[string]bool{root: true}

	var walk func(dir string)
	walk = func(dir string) {
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.Type()&fs.ModeSymlink == 0 {
				return nil
			}
			target, err := filepath.EvalSymlinks(path)
			if err != nil || seen[target] || within(root, target) {
				return nil
			}
			seen[target] = true
			fi, err := os.Stat(target)
			if err != nil {
				return nil
			}
			if fi.IsDir() {
				dirs = append(dirs, target)
				walk(target)
			} else {
				files = append(files, target)
			}
			return nil
		})
	}
	walk(root)
	return dirs, files
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
