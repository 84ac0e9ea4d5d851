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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Apply(t *testing.T) {
	opts := Options{BoldLineLimit: DefaultBoldLineLimit}

	tests := []struct {
		name      string
		rule      string
		input     string
		want      string
		wantCount int
	}{
		{name: "bracket_double_close", rule: "bracket-double-close", input: "**[Done]]", want: "**[Done]**", wantCount: 1},
		{name: "bracket_double_close_twice", rule: "bracket-double-close", input: "**[a]] and **[b]]", want: "**[a]** and **[b]**", wantCount: 2},
		{name: "bracket_double_close_clean", rule: "bracket-double-close", input: "**[Done]**", want: "**[Done]**"},
		{name: "bracket_in_bold", rule: "bracket-in-bold-double-close", input: "**Status [done]]", want: "**Status [done]**", wantCount: 1},
		{name: "bracket_in_bold_clean", rule: "bracket-in-bold-double-close", input: "**Status [done]**", want: "**Status [done]**"},
		{name: "bracket_star_close", rule: "bracket-star-close", input: "**[x]* tail", want: "**[x]** tail", wantCount: 1},
		{name: "bracket_star_close_already_doubled", rule: "bracket-star-close", input: "**[x]**", want: "**[x]**"},
		{name: "paren_double_close", rule: "paren-double-close", input: "**(note))", want: "**(note)**", wantCount: 1},
		{name: "paren_star_close", rule: "paren-star-close", input: "**(note)*", want: "**(note)**", wantCount: 1},
		{name: "paren_star_close_already_doubled", rule: "paren-star-close", input: "**(note)**", want: "**(note)**"},
		{name: "paren_in_bold", rule: "paren-in-bold-double-close", input: "**Price (USD))", want: "**Price (USD)**", wantCount: 1},
		{name: "code_span_open", rule: "code-span-open-overcount", input: "``inline`", want: "`inline`", wantCount: 1},
		{name: "code_span_open_balanced_double", rule: "code-span-open-overcount", input: "``x``", want: "``x``"},
		{name: "code_span_open_fence", rule: "code-span-open-overcount", input: "```go", want: "```go"},
		{name: "code_span_close", rule: "code-span-close-overcount", input: "`inline``", want: "`inline`", wantCount: 1},
		{name: "code_span_close_single", rule: "code-span-close-overcount", input: "`a` and `b`", want: "`a` and `b`"},
		{name: "unclosed_bold", rule: "unclosed-bold", input: "**Bold text", want: "**Bold text**", wantCount: 1},
		{name: "unclosed_bold_trailing_space", rule: "unclosed-bold", input: "  **Bold text  ", want: "  **Bold text**", wantCount: 1},
		{name: "unclosed_bold_triple", rule: "unclosed-bold", input: "***triple", want: "***triple"},
		{name: "unclosed_bold_closed", rule: "unclosed-bold", input: "**done**", want: "**done**"},
		{name: "unclosed_bold_three_markers", rule: "unclosed-bold", input: "**a** and **b", want: "**a** and **b"},
		{name: "unclosed_bold_marker_only", rule: "unclosed-bold", input: "**", want: "**"},
		{name: "unclosed_bold_mid_line", rule: "unclosed-bold", input: "text **bold", want: "text **bold"},
		{name: "unclosed_bold_in_fence", rule: "unclosed-bold", input: "```\n**x\n```", want: "```\n**x\n```"},
		{name: "heading", rule: "heading-space", input: "##Title", want: "## Title", wantCount: 1},
		{name: "heading_single", rule: "heading-space", input: "#Title", want: "# Title", wantCount: 1},
		{name: "heading_spaced", rule: "heading-space", input: "## Title", want: "## Title"},
		{name: "heading_seven_hashes", rule: "heading-space", input: "#######Title", want: "#######Title"},
		{name: "heading_indented", rule: "heading-space", input: " ##Title", want: " ##Title"},
		{name: "heading_hash_only", rule: "heading-space", input: "###", want: "###"},
		{name: "list_item", rule: "list-item-space", input: "-item", want: "- item", wantCount: 1},
		{name: "list_item_indented", rule: "list-item-space", input: "  -item", want: "  - item", wantCount: 1},
		{name: "list_item_digit", rule: "list-item-space", input: "-1", want: "-1"},
		{name: "list_item_double_dash", rule: "list-item-space", input: "--flag", want: "--flag"},
		{name: "list_item_rule", rule: "list-item-space", input: "---", want: "---"},
		{name: "list_item_spaced", rule: "list-item-space", input: "- item", want: "- item"},
		{name: "list_item_multiline", rule: "list-item-space", input: "-a\ntext\n-b", want: "- a\ntext\n- b", wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := LookupRule(tt.rule)
			require.True(t, ok, "rule %s should exist", tt.rule)

			got, count := rule.apply(tt.input, opts)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestUnclosedBold_Limit(t *testing.T) {
	rule, ok := LookupRule("unclosed-bold")
	require.True(t, ok)

	opts := Options{BoldLineLimit: DefaultBoldLineLimit}

	under := "**" + strings.Repeat("a", 197)
	got, count := rule.apply(under, opts)
	assert.Equal(t, under+"**", got, "199 runes is under the limit")
	assert.Equal(t, 1, count)

	at := "**" + strings.Repeat("a", 198)
	got, count = rule.apply(at, opts)
	assert.Equal(t, at, got, "200 runes is at the limit")
	assert.Zero(t, count)

	wide := "**" + strings.Repeat("가", 100)
	got, _ = rule.apply(wide, opts)
	assert.Equal(t, wide+"**", got, "limit counts runes, not bytes")
}

func TestRules_Catalog(t *testing.T) {
	names := RuleNames()
	assert.Equal(t, []string{
		"bracket-double-close",
		"bracket-in-bold-double-close",
		"bracket-star-close",
		"paren-double-close",
		"paren-star-close",
		"paren-in-bold-double-close",
		"code-span-open-overcount",
		"code-span-close-overcount",
		"unclosed-bold",
		"heading-space",
		"list-item-space",
	}, names)

	for i, r := range Rules() {
		assert.NotEmpty(t, r.Summary, "rule %s needs a summary", r.Name)
		if i < 8 {
			assert.Equal(t, ScopeDocument, r.Scope, r.Name)
		} else {
			assert.Equal(t, ScopeLine, r.Scope, r.Name)
		}
	}

	_, ok := LookupRule("no-such-rule")
	assert.False(t, ok)
}

func TestScope_String(t *testing.T) {
	assert.Equal(t, "document", ScopeDocument.String())
	assert.Equal(t, "line", ScopeLine.String())
	assert.Equal(t, "unknown", Scope(42).String())
}
