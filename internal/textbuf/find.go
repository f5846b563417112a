package textbuf

import "unicode"

// Find searches for query starting at the selection and selects the match.
// Forward searches begin at the end of the selection, backward searches look
// for a match starting before the selection start. It reports whether a match
// was found; the selection is untouched otherwise.
func (b *Buffer) Find(query string, backward, caseSensitive bool) bool {
	q := []rune(query)
	if len(q) == 0 {
		return false
	}

	var at int
	if backward {
		at = lastIndexBefore(b.text, q, b.sel.Start(), caseSensitive)
	} else {
		at = indexFrom(b.text, q, b.sel.End(), caseSensitive)
	}
	if at < 0 {
		return false
	}
	b.SetSelection(at, at+len(q))
	return true
}

// Contains reports whether query occurs anywhere in the document
func (b *Buffer) Contains(query string, caseSensitive bool) bool {
	q := []rune(query)
	if len(q) == 0 {
		return false
	}
	return indexFrom(b.text, q, 0, caseSensitive) >= 0
}

// SelectionMatches reports whether the selected text equals query
func (b *Buffer) SelectionMatches(query string, caseSensitive bool) bool {
	q := []rune(query)
	if len(q) == 0 || b.sel.End()-b.sel.Start() != len(q) {
		return false
	}
	return matchAt(b.text, q, b.sel.Start(), caseSensitive)
}

func indexFrom(text, q []rune, from int, caseSensitive bool) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(q) <= len(text); i++ {
		if matchAt(text, q, i, caseSensitive) {
			return i
		}
	}
	return -1
}

func lastIndexBefore(text, q []rune, before int, caseSensitive bool) int {
	start := before - 1
	if start+len(q) > len(text) {
		start = len(text) - len(q)
	}
	for i := start; i >= 0; i-- {
		if matchAt(text, q, i, caseSensitive) {
			return i
		}
	}
	return -1
}

func matchAt(text, q []rune, at int, caseSensitive bool) bool {
	if at < 0 || at+len(q) > len(text) {
		return false
	}
	for j, r := range q {
		t := text[at+j]
		if t == r {
			continue
		}
		if caseSensitive || !equalFold(t, r) {
			return false
		}
	}
	return true
}

// equalFold reports whether a and b are the same letter ignoring case
func equalFold(a, b rune) bool {
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
