package highlight

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestTerms_LongestFirst(t *testing.T) {
	got := Terms("cell Cellular ATP")
	want := []string{"cellular", "cell", "atp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms() = %v, want %v", got, want)
	}
}

func TestPattern_Nil(t *testing.T) {
	if Pattern(nil) != nil {
		t.Error("expected nil pattern for no terms")
	}
	if Pattern([]string{}) != nil {
		t.Error("expected nil pattern for empty terms")
	}
}

func TestPattern_QuotesMetaCharacters(t *testing.T) {
	re := Pattern([]string{"a+b"})
	if re == nil {
		t.Fatal("expected pattern")
	}
	if !re.MatchString("a+b") {
		t.Error("literal a+b should match")
	}
	if re.MatchString("aab") {
		t.Error("+ must not act as a quantifier")
	}
}

func TestHighlight_PlainText(t *testing.T) {
	got := Highlight("The mitochondria produce ATP", "mito")
	want := "The <mark>mito</mark>chondria produce ATP"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlight_CaseInsensitivePreservesOriginal(t *testing.T) {
	got := Highlight("Mitochondria", "MITO")
	want := "<mark>Mito</mark>chondria"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlight_EmptyQueryReturnsInput(t *testing.T) {
	input := "<b>hello</b>"
	if got := Highlight(input, ""); got != input {
		t.Errorf("got %q, want input unchanged", got)
	}
	if got := Highlight(input, "   "); got != input {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func TestHighlight_TagsPassThrough(t *testing.T) {
	// "b" occurs inside the tags but they must not be touched
	got := Highlight("<b>b is a letter</b>", "b")
	want := "<b><mark>b</mark> is a letter</b>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlight_TagAttributesUntouched(t *testing.T) {
	got := Highlight(`<img src="cell.png"> cell`, "cell")
	want := `<img src="cell.png"> <mark>cell</mark>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlight_OverlappingTermsWrapLongestWhole(t *testing.T) {
	got := Highlight("cellular biology", "cell cellular")
	want := "<mark>cellular</mark> biology"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlight_MathUsesClassWrapper(t *testing.T) {
	got := Highlight(`solve \(x = 2\) for x`, "x")
	want := `solve \(\class{search-highlight}{x} = 2\) for <mark>x</mark>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlight_ControlSequenceNotCorrupted(t *testing.T) {
	// "alpha" also names the control sequence; the match right after a
	// backslash must be skipped
	got := Highlight(`\(\alpha + alpha\)`, "alpha")
	want := `\(\alpha + \class{search-highlight}{alpha}\)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlight_BlockMath(t *testing.T) {
	got := Highlight(`\[energy = mc^2\]`, "energy")
	want := `\[\class{search-highlight}{energy} = mc^2\]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlight_NoMatchReturnsInput(t *testing.T) {
	input := `plain <b>tag</b> \(math\)`
	if got := Highlight(input, "zzz"); got != input {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func mathDelimCounts(s string) [4]int {
	return [4]int{
		strings.Count(s, `\(`),
		strings.Count(s, `\)`),
		strings.Count(s, `\[`),
		strings.Count(s, `\]`),
	}
}

func TestHighlight_PreservesMathDelimiterCounts(t *testing.T) {
	inputs := []string{
		`\(a\) text \(b\)`,
		`broken \( open`,
		`\[block\] and \(inline\)`,
		`nested-ish \(a \( b\)`,
		`text only, no math at all`,
	}

	for _, input := range inputs {
		got := Highlight(input, "a b text open")
		if mathDelimCounts(got) != mathDelimCounts(input) {
			t.Errorf("delimiter counts changed for %q: got %q", input, got)
		}
	}
}

func TestHighlight_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runes := rapid.SliceOfN(rapid.RuneFrom([]rune(`<>\()[]abc `)), 0, 40).Draw(t, "runes")
		input := string(runes)
		query := rapid.SampledFrom([]string{"a", "ab", "b c", "abc a"}).Draw(t, "query")

		got := Highlight(input, query)

		// Wrapping adds markup but never removes or reorders math
		// delimiters
		if mathDelimCounts(got) != mathDelimCounts(input) {
			t.Fatalf("delimiter counts changed: %q -> %q", input, got)
		}

		// Stripping the added markup recovers the input exactly. The
		// alphabet has no braces of its own, so removing the wrapper's
		// closing brace is safe.
		stripped := strings.ReplaceAll(got, markOpen, "")
		stripped = strings.ReplaceAll(stripped, markClose, "")
		stripped = strings.ReplaceAll(stripped, mathWrapOpen, "")
		stripped = strings.ReplaceAll(stripped, mathWrapClose, "")
		if input != stripped {
			t.Fatalf("content lost: %q -> %q (stripped %q)", input, got, stripped)
		}
	})
}
