package highlight

import "strings"

// SegmentKind classifies a tokenized run of card markup
type SegmentKind int

const (
	SegmentText       SegmentKind = iota // plain text
	SegmentTag                           // an angle-bracket tag span, delimiters included
	SegmentMathInline                    // a \( ... \) span, delimiters included
	SegmentMathBlock                     // a \[ ... \] span, delimiters included
)

// Segment is one run of content. Concatenating the segments of a tokenized
// string reproduces the input exactly.
type Segment struct {
	Kind    SegmentKind
	Content string
}

// Tokenize splits markup into alternating tag, math, and text segments.
// It is total over arbitrary input and never fails: an opener with no
// matching closer degrades to plain text, which keeps delimiter counts
// intact downstream.
func Tokenize(content string) []Segment {
	segments := make([]Segment, 0)
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			segments = append(segments, Segment{Kind: SegmentText, Content: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(content) {
		rest := content[i:]

		switch {
		case content[i] == '<':
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				text.WriteByte('<')
				i++
				continue
			}
			flush()
			segments = append(segments, Segment{Kind: SegmentTag, Content: rest[:end+1]})
			i += end + 1

		case strings.HasPrefix(rest, `\(`):
			end := strings.Index(rest[2:], `\)`)
			if end < 0 {
				text.WriteString(`\(`)
				i += 2
				continue
			}
			flush()
			segments = append(segments, Segment{Kind: SegmentMathInline, Content: rest[:2+end+2]})
			i += 2 + end + 2

		case strings.HasPrefix(rest, `\[`):
			end := strings.Index(rest[2:], `\]`)
			if end < 0 {
				text.WriteString(`\[`)
				i += 2
				continue
			}
			flush()
			segments = append(segments, Segment{Kind: SegmentMathBlock, Content: rest[:2+end+2]})
			i += 2 + end + 2

		default:
			text.WriteByte(content[i])
			i++
		}
	}

	flush()
	return segments
}
