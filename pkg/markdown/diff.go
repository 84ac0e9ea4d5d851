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

package markdown

import (
	"strings"
)

// 📝 ChangeRecord describes one line the corrector rewrote
type ChangeRecord struct {
	Line   int    `json:"line"` // 1-based
	Before string `json:"before"`
	After  string `json:"after"`
}

// ComputeDiff compares two documents line by line with the default display width
func ComputeDiff(before, after string) []ChangeRecord {
	return ComputeDiffWidth(before, after, DefaultDisplayWidth)
}

// 🔍 ComputeDiffWidth compares two documents line by line.
//
// Lines are paired by position and the comparison stops at the shorter
// document, so a rewrite that adds or drops lines is only partly reported.
// Both sides are trimmed and cut to width runes; width <= 0 disables the cut.
func ComputeDiffWidth(before, after string, width int) []ChangeRecord {
	a := strings.Split(before, "\n")
	b := strings.Split(after, "\n")

	var records []ChangeRecord
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] == b[i] {
			continue
		}
		records = append(records, ChangeRecord{
			Line:   i + 1,
			Before: truncate(strings.TrimSpace(a[i]), width),
			After:  truncate(strings.TrimSpace(b[i]), width),
		})
	}
	return records
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	n := 0
	for i := range s {
		if n == width {
			return s[:i]
		}
		n++
	}
	return s
}
