// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🗂️ Filter selects which files a directory walk keeps
type Filter struct {
	Extensions []string // lower case, with leading dot
	Include    []string // doublestar globs, relative to the root
	Exclude    []string // doublestar globs, relative to the root
}

// 📂 Collect lists the documents under root in lexical order.
//
// A file root is returned as is, whatever its extension. A directory root is
// walked recursively and filtered.
func Collect(ctx context.Context, root string, filter Filter) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%s: %w", root, ErrPathNotFound)
		}
		return nil, errors.Errorf("checking target: %w", err)
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("resolving %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && matchAny(filter.Exclude, rel) {
				logger.Debug().Str("dir", rel).Msg("directory excluded by pattern")
				return filepath.SkipDir
			}
			return nil
		}

		if !filter.keep(rel) {
			return nil
		}

		logger.Debug().Str("file", rel).Msg("collected document")
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

// keep reports whether a file, given relative to the root, passes the filter
func (f Filter) keep(rel string) bool {
	ext := strings.ToLower(filepath.Ext(rel))
	if !slices.Contains(f.Extensions, ext) {
		return false
	}
	if len(f.Include) > 0 && !matchAny(f.Include, rel) {
		return false
	}
	return !matchAny(f.Exclude, rel)
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		// patterns are validated when the config loads
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
