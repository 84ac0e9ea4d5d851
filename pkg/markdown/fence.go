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

import "strings"

// FenceDelimiter opens and closes a fenced code region.
const FenceDelimiter = "```"

// 🔍 IsFence reports whether a line toggles a fenced code region
func IsFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), FenceDelimiter)
}

// 🧱 ClassifyLines marks every line that line-oriented rules must leave alone.
//
// The scan runs forward with no lookahead. A fence line flips the region state
// and is always marked, so both the opening and the closing fence are skipped.
// An unbalanced fence leaves the rest of the document marked.
func ClassifyLines(lines []string) []bool {
	skip := make([]bool, len(lines))
	inCode := false
	for i, line := range lines {
		if IsFence(line) {
			inCode = !inCode
			skip[i] = true
			continue
		}
		skip[i] = inCode
	}
	return skip
}
