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
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// backupSuffix is appended to the original document when backups are on.
const backupSuffix = ".bak"

// 💾 writeFileAtomic replaces path with content, keeping its permissions
func writeFileAtomic(path string, content []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tempPath := path + ".tmp"

	// Write to temp file
	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 📦 backupFile copies path next to itself and returns the copy's path
func backupFile(path string) (string, error) {
	backupPath := path + backupSuffix

	source, err := os.Open(path)
	if err != nil {
		return "", errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return "", errors.Errorf("checking source file: %w", err)
	}

	destination, err := os.OpenFile(backupPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", errors.Errorf("creating backup file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return "", errors.Errorf("copying file: %w", err)
	}

	if err := destination.Close(); err != nil {
		return "", errors.Errorf("closing backup file: %w", err)
	}

	return backupPath, nil
}
