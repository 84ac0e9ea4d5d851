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
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// 📐 Scope says what a rule rewrites in one call
type Scope int

const (
	ScopeDocument Scope = iota // whole text at once
	ScopeLine                  // one line at a time, fenced lines excluded
)

// String returns a string representation of Scope
func (s Scope) String() string {
	switch s {
	case ScopeDocument:
		return "document"
	case ScopeLine:
		return "line"
	default:
		return "unknown"
	}
}

const boldMarker = "**"

// 📏 Rule is one named rewrite in the correction catalog.
//
// Rules carry no state. Running a rule over text that already satisfies it
// changes nothing.
type Rule struct {
	Name    string
	Summary string
	Scope   Scope

	pattern *regexp2.Regexp // document rules
	marker  string          // wraps capture group 1 of pattern
	line    lineFunc        // line rules
}

// lineFunc rewrites a single line and reports whether it changed it.
type lineFunc func(line string, opts Options) (string, bool)

func documentRule(name, summary, expr, marker string) Rule {
	return Rule{
		Name:    name,
		Summary: summary,
		Scope:   ScopeDocument,
		pattern: regexp2.MustCompile(expr, regexp2.None),
		marker:  marker,
	}
}

func lineRule(name, summary string, fn lineFunc) Rule {
	return Rule{
		Name:    name,
		Summary: summary,
		Scope:   ScopeLine,
		line:    fn,
	}
}

// catalog is applied top to bottom; each rule sees the output of the one before.
// The bracket and parenthesis repairs must run before anything that could match
// their output, and the single-star closers carry a lookahead so an already
// doubled closing marker is never tripled.
var catalog = []Rule{
	documentRule("bracket-double-close",
		"**[text]] -> **[text]**",
		`\*\*(\[[^\]]+\])\]`, boldMarker),
	documentRule("bracket-in-bold-double-close",
		"**text [note]] -> **text [note]**",
		`\*\*([^*\n]+\[[^\]]+\])\]`, boldMarker),
	documentRule("bracket-star-close",
		"**[text]* -> **[text]**",
		`\*\*(\[[^\]]+\])\*(?!\*)`, boldMarker),
	documentRule("paren-double-close",
		"**(text)) -> **(text)**",
		`\*\*(\([^)]+\))\)`, boldMarker),
	documentRule("paren-star-close",
		"**(text)* -> **(text)**",
		`\*\*(\([^)]+\))\*(?!\*)`, boldMarker),
	documentRule("paren-in-bold-double-close",
		"**text (note)) -> **text (note)**",
		`\*\*([^*\n]+\([^)]+\))\)`, boldMarker),
	documentRule("code-span-open-overcount",
		"``code` -> `code`",
		"(?<!`)``(?!`)(.*?)(?<!`)`(?!`)", "`"),
	documentRule("code-span-close-overcount",
		"`code`` -> `code`",
		"(?<!`)`(?!`)(.*?)(?<!`)``(?!`)", "`"),
	lineRule("unclosed-bold",
		"**text at line start -> **text**",
		closeBoldLine),
	lineRule("heading-space",
		"##Title -> ## Title",
		spaceHeading),
	lineRule("list-item-space",
		"-item -> - item",
		spaceListItem),
}

// 📚 Rules returns the catalog in application order
func Rules() []Rule {
	return slices.Clone(catalog)
}

// RuleNames returns the rule names in application order
func RuleNames() []string {
	names := make([]string, len(catalog))
	for i, r := range catalog {
		names[i] = r.Name
	}
	return names
}

// 🔎 LookupRule finds a rule by name
func LookupRule(name string) (Rule, bool) {
	for _, r := range catalog {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// apply runs the rule over a whole document and returns the rewrite count.
func (r Rule) apply(text string, opts Options) (string, int) {
	if r.Scope == ScopeLine {
		return applyLines(text, r.line, opts)
	}

	count := 0
	out, err := r.pattern.ReplaceFunc(text, func(m regexp2.Match) string {
		count++
		return r.marker + m.GroupByNumber(1).String() + r.marker
	}, -1, -1)
	if err != nil {
		// only a match timeout fails, and none is set
		return text, 0
	}
	return out, count
}

// applyLines runs fn over every line outside fenced regions.
func applyLines(text string, fn lineFunc, opts Options) (string, int) {
	lines := strings.Split(text, "\n")
	skip := ClassifyLines(lines)

	count := 0
	for i, line := range lines {
		if skip[i] {
			continue
		}
		if fixed, ok := fn(line, opts); ok {
			lines[i] = fixed
			count++
		}
	}
	if count == 0 {
		return text, 0
	}
	return strings.Join(lines, "\n"), count
}

// closeBoldLine appends the missing closing marker to a line that opens bold
// and never closes it.
func closeBoldLine(line string, opts Options) (string, bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case !strings.HasPrefix(trimmed, boldMarker),
		strings.HasPrefix(trimmed, "***"),
		strings.Count(trimmed, boldMarker) != 1,
		strings.HasSuffix(trimmed, boldMarker),
		utf8.RuneCountInString(trimmed) >= opts.BoldLineLimit:
		return line, false
	}
	return strings.TrimRightFunc(line, unicode.IsSpace) + boldMarker, true
}

var (
	headingPrefix  = regexp2.MustCompile(`^(#{1,6})[^\s#]`, regexp2.None)
	listItemPrefix = regexp2.MustCompile(`^(\s*)-[^\s\-\d]`, regexp2.None)
)

func spaceHeading(line string, _ Options) (string, bool) {
	hashes, ok := leadingGroup(headingPrefix, line)
	if !ok {
		return line, false
	}
	return hashes + " " + line[len(hashes):], true
}

// spaceListItem leaves "-1" style text alone; it is not a list marker.
func spaceListItem(line string, _ Options) (string, bool) {
	indent, ok := leadingGroup(listItemPrefix, line)
	if !ok {
		return line, false
	}
	return indent + "- " + line[len(indent)+1:], true
}

// leadingGroup returns capture group 1 of an anchored pattern.
func leadingGroup(re *regexp2.Regexp, line string) (string, bool) {
	m, err := re.FindStringMatch(line)
	if err != nil || m == nil {
		return "", false
	}
	return m.GroupByNumber(1).String(), true
}
