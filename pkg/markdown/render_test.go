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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type blockCounts struct {
	headings  int
	listItems int
	fences    int
}

func countBlocks(t *testing.T, src string) blockCounts {
	t.Helper()

	var counts blockCounts
	doc := goldmark.New().Parser().Parse(text.NewReader([]byte(src)))
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			counts.headings++
		case ast.KindListItem:
			counts.listItems++
		case ast.KindFencedCodeBlock:
			counts.fences++
		}
		return ast.WalkContinue, nil
	})
	assert.NoError(t, err)
	return counts
}

func TestCorrectText_RendersAsIntended(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		before blockCounts
		after  blockCounts
	}{
		{
			name:   "mixed_document",
			input:  mixedDocument,
			before: blockCounts{headings: 0, listItems: 0, fences: 1},
			after:  blockCounts{headings: 1, listItems: 2, fences: 1},
		},
		{
			name:   "clean_document",
			input:  cleanDocument,
			before: blockCounts{headings: 1, listItems: 2, fences: 1},
			after:  blockCounts{headings: 1, listItems: 2, fences: 1},
		},
		{
			name:   "fenced_lines_stay_code",
			input:  "```\n#one\n-two\n```\n",
			before: blockCounts{fences: 1},
			after:  blockCounts{fences: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.before, countBlocks(t, tt.input), "input")
			assert.Equal(t, tt.after, countBlocks(t, CorrectText(tt.input)), "corrected")
		})
	}
}
