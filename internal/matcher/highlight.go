package matcher

import "unicode/utf8"

// Span is one contiguous run of a result line: either plain text or a
// fuzzy-matched run that the view should render bold/colored.
type Span struct {
	Text    string
	Matched bool
}

// Highlight walks text left-to-right and marks each position whose
// character case-insensitively equals the next unmatched pattern character,
// mirroring the smart-case subsequence semantics `sahilm/fuzzy` itself uses
// to score a match. An empty pattern yields the whole text as one plain
// span.
func Highlight(text, pattern string) []Span {
	if pattern == "" {
		return []Span{{Text: text, Matched: false}}
	}

	patRunes := []rune(pattern)
	textRunes := []rune(text)

	var spans []Span
	var cur []rune
	curMatched := false
	pi := 0

	flush := func() {
		if len(cur) > 0 {
			spans = append(spans, Span{Text: string(cur), Matched: curMatched})
			cur = nil
		}
	}

	for _, r := range textRunes {
		matched := pi < len(patRunes) && foldEqual(r, patRunes[pi])
		if matched {
			pi++
		}
		if len(cur) > 0 && matched != curMatched {
			flush()
		}
		curMatched = matched
		cur = append(cur, r)
	}
	flush()

	return spans
}

func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	return toLower(a) == toLower(b)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// HighlightRange marks every rune of text whose byte offset falls in
// [start, end) as matched, producing the same Span shape as Highlight and
// GetResults. Used by the headless CLI path, which has a regexp match's
// byte range rather than a fuzzy pattern string or MatchedIndexes set --
// sharing Span here keeps the TUI and headless output on one highlighting
// representation instead of two that could drift apart.
func HighlightRange(text string, start, end int) []Span {
	if start >= end {
		return []Span{{Text: text, Matched: false}}
	}

	var spans []Span
	var cur []rune
	curMatched := false
	offset := 0

	flush := func() {
		if len(cur) > 0 {
			spans = append(spans, Span{Text: string(cur), Matched: curMatched})
			cur = nil
		}
	}

	for _, r := range text {
		matched := offset >= start && offset < end
		if len(cur) > 0 && matched != curMatched {
			flush()
		}
		curMatched = matched
		cur = append(cur, r)
		offset += utf8.RuneLen(r)
	}
	flush()

	return spans
}

// indexesToSpans turns sahilm/fuzzy's MatchedIndexes (byte offsets into
// text that the fuzzy matcher actually consumed, in order) directly into
// highlight spans -- used by Matcher.GetResults so the displayed
// highlighting matches exactly what scored the result, rather than being
// recomputed independently.
func indexesToSpans(text string, indexes []int) []Span {
	if len(indexes) == 0 {
		return []Span{{Text: text, Matched: false}}
	}

	marked := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		marked[idx] = true
	}

	var spans []Span
	var cur []rune
	curMatched := false

	flush := func() {
		if len(cur) > 0 {
			spans = append(spans, Span{Text: string(cur), Matched: curMatched})
			cur = nil
		}
	}

	for i, r := range text {
		matched := marked[i]
		if len(cur) > 0 && matched != curMatched {
			flush()
		}
		curMatched = matched
		cur = append(cur, r)
	}
	flush()

	return spans
}
