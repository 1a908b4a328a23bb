package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

var pageNumberLine = regexp.MustCompile(`^\d{1,4}$`)

// CleanPages strips per-page furniture before joining: standalone page-number
// lines at the page edges and running headers/footers (a line recurring at
// the same edge across many pages is furniture, not content).
func CleanPages(pages []string) []string {
	if len(pages) < 2 {
		return pages
	}

	top := map[string]int{}
	bottom := map[string]int{}
	for _, page := range pages {
		first, last := edgeLines(page)
		if first != "" {
			top[furnitureKey(first)]++
		}
		if last != "" {
			bottom[furnitureKey(last)]++
		}
	}

	threshold := len(pages) / 3
	if threshold < 3 {
		threshold = 3
	}

	out := make([]string, len(pages))
	for i, page := range pages {
		lines := strings.Split(page, "\n")
		start, end := 0, len(lines)
		for start < end {
			s := strings.TrimSpace(lines[start])
			if s == "" || pageNumberLine.MatchString(s) || top[furnitureKey(s)] >= threshold {
				start++
				continue
			}
			break
		}
		for end > start {
			s := strings.TrimSpace(lines[end-1])
			if s == "" || pageNumberLine.MatchString(s) || bottom[furnitureKey(s)] >= threshold {
				end--
				continue
			}
			break
		}
		out[i] = strings.Join(lines[start:end], "\n")
	}
	return out
}

// edgeLines returns the first and last non-blank lines of a page, trimmed.
func edgeLines(page string) (first, last string) {
	lines := strings.Split(page, "\n")
	for _, l := range lines {
		if s := strings.TrimSpace(l); s != "" {
			first = s
			break
		}
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(lines[i]); s != "" {
			last = s
			break
		}
	}
	return first, last
}

// furnitureKey normalizes a line for header/footer comparison: case-folded
// with digits removed, so "Bestiary 14" and "Bestiary 15" compare equal.
func furnitureKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// JoinPages joins per-page text into one document, handling continuations
// across page breaks.
//
// Continuation detection:
// - Line ends with hyphen after a lowercase letter: join without space
//   (de-hyphenate)
// - Line ends mid-sentence (no terminal punctuation): join with space
// - Line ends with sentence: join with double newline
func JoinPages(pages []string) string {
	if len(pages) == 0 {
		return ""
	}

	var parts []string
	for _, text := range pages {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if len(parts) == 0 {
			parts = append(parts, text)
			continue
		}

		joinStr := determineJoin(parts[len(parts)-1], text)
		if joinStr == "" {
			// Hyphenation: drop the trailing hyphen before joining.
			parts[len(parts)-1] = strings.TrimSuffix(parts[len(parts)-1], "-")
		}
		parts = append(parts, joinStr+text)
	}

	return strings.Join(parts, "")
}

// determineJoin determines the join string between two page texts.
func determineJoin(prevText, nextText string) string {
	prevStripped := strings.TrimRightFunc(prevText, unicode.IsSpace)
	if prevStripped == "" {
		return ""
	}

	// Hyphenation: word split across pages. Only a lowercase letter before
	// the hyphen counts; "multi-" page breaks in proper nouns stay hyphens.
	if strings.HasSuffix(prevStripped, "-") {
		runes := []rune(prevStripped)
		if len(runes) >= 2 && unicode.IsLower(runes[len(runes)-2]) {
			return ""
		}
	}

	// Sentence ending: paragraph break.
	lastChar := prevStripped[len(prevStripped)-1]
	if strings.ContainsRune(`.!?"'`, rune(lastChar)) {
		return "\n\n"
	}

	// Mid-sentence continuation.
	return " "
}
