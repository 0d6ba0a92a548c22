// Package highlight wraps search-term occurrences in card markup for
// visual emphasis without corrupting tag structure or math syntax.
package highlight

import (
	"regexp"
	"sort"
	"strings"
)

// markOpen/markClose wrap matches in plain text runs.
const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// mathWrapOpen wraps matches inside math spans with a class the external
// typesetter can style.
const (
	mathWrapOpen  = `\class{search-highlight}{`
	mathWrapClose = `}`
)

// Terms extracts search terms from a query: whitespace-split, lowercased,
// empties discarded, sorted by descending length. Longest-first matters
// when terms overlap: with "cell" and "cellular" both queried, "cellular"
// must match as one unit before "cell" can fragment it.
func Terms(query string) []string {
	terms := strings.Fields(strings.ToLower(query))
	sort.SliceStable(terms, func(i, j int) bool {
		return len(terms[i]) > len(terms[j])
	})
	return terms
}

// Pattern builds a single case-insensitive alternation over the terms.
// Returns nil when there is nothing to match.
func Pattern(terms []string) *regexp.Regexp {
	if len(terms) == 0 {
		return nil
	}

	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = regexp.QuoteMeta(term)
	}

	re, err := regexp.Compile(`(?i)` + strings.Join(quoted, "|"))
	if err != nil {
		return nil
	}
	return re
}

// Highlight returns content with every case-insensitive occurrence of the
// query's terms wrapped for emphasis. Tag spans pass through untouched,
// plain text gets markOpen/markClose, math spans get the \class wrapper.
// Tag structure and math delimiter pairs are preserved exactly.
func Highlight(content, query string) string {
	re := Pattern(Terms(query))
	if re == nil || content == "" {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))

	for _, seg := range Tokenize(content) {
		switch seg.Kind {
		case SegmentTag:
			b.WriteString(seg.Content)
		case SegmentMathInline, SegmentMathBlock:
			b.WriteString(wrapMath(seg.Content, re))
		default:
			b.WriteString(re.ReplaceAllString(seg.Content, markOpen+"${0}"+markClose))
		}
	}

	return b.String()
}

// wrapMath wraps term matches inside a math span. A match immediately
// preceded by a backslash is part of a control sequence name and is left
// alone, so \alpha survives a search for "alpha". If wrapping fails on
// malformed input the span is returned unmodified: a formatting feature
// must never block card viewing.
func wrapMath(span string, re *regexp.Regexp) (wrapped string) {
	defer func() {
		if recover() != nil {
			wrapped = span
		}
	}()

	matches := re.FindAllStringIndex(span, -1)
	if len(matches) == 0 {
		return span
	}

	var b strings.Builder
	b.Grow(len(span))

	last := 0
	for _, m := range matches {
		if m[0] > 0 && span[m[0]-1] == '\\' {
			continue
		}
		b.WriteString(span[last:m[0]])
		b.WriteString(mathWrapOpen)
		b.WriteString(span[m[0]:m[1]])
		b.WriteString(mathWrapClose)
		last = m[1]
	}
	b.WriteString(span[last:])

	return b.String()
}
