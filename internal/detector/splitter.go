// Package detector splits raw document text into candidate content blocks
// and classifies each block by content kind. Splitting runs two passes:
// explicit separators first, then a line-level rescan for entry titles the
// separators missed.
package detector

import (
	"regexp"
	"strings"
)

// Options tunes the splitter heuristics. The zero value gets defaults.
type Options struct {
	// MinBlockChars drops blocks shorter than this as noise (running
	// headers, stray page numbers).
	MinBlockChars int

	// TitleLookahead is how many lines past a candidate title to scan for a
	// genre signature before committing to a split.
	TitleLookahead int
}

const (
	defaultMinBlockChars  = 40
	defaultTitleLookahead = 4
)

func (o Options) withDefaults() Options {
	if o.MinBlockChars <= 0 {
		o.MinBlockChars = defaultMinBlockChars
	}
	if o.TitleLookahead <= 0 {
		o.TitleLookahead = defaultTitleLookahead
	}
	return o
}

// blockSeparator is the canonical token all separator patterns normalize to.
// ASCII group separator; never appears in extracted text.
const blockSeparator = "\x1d"

var (
	// 3+ consecutive newlines (allowing whitespace-only lines between).
	sepBlankRun = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)

	// Horizontal rules: a line of 3+ dashes or underscores.
	sepRule = regexp.MustCompile(`(?m)^[ \t]*[-_]{3,}[ \t]*$`)

	// Standalone page-number lines.
	sepPageNum = regexp.MustCompile(`(?m)^[ \t]*\d{1,4}[ \t]*$`)

	// Standalone bullet lines left behind by list extraction.
	sepBullet = regexp.MustCompile("(?m)^[ \\t]*[-•*·][ \\t]*$")

	// Title shapes: 1-5 capitalized words (small connectives allowed), or an
	// all-caps phrase. Both must cover the whole line.
	titleCaseLine = regexp.MustCompile(`^[A-Z][a-zA-Z'\-]*(?:[ ](?:of|the|and|a|an|[A-Z][a-zA-Z'\-]*)){0,4}$`)
	allCapsLine   = regexp.MustCompile(`^[A-Z][A-Z0-9'\- ]{2,}$`)
)

// Split divides a document's text into candidate block strings. Known
// separator patterns are normalized to one token and split on; each chunk is
// then rescanned for secondary entry starts (a title-shaped line followed
// within a few lines by a genre signature). Blocks below the minimum length
// are discarded.
func Split(text string, opts Options) []string {
	opts = opts.withDefaults()

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = sepRule.ReplaceAllString(text, blockSeparator)
	text = sepPageNum.ReplaceAllString(text, blockSeparator)
	text = sepBullet.ReplaceAllString(text, blockSeparator)
	text = sepBlankRun.ReplaceAllString(text, blockSeparator)

	var blocks []string
	for _, chunk := range strings.Split(text, blockSeparator) {
		for _, block := range splitOnTitles(chunk, opts) {
			block = strings.TrimSpace(block)
			if len(block) < opts.MinBlockChars {
				continue
			}
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// splitOnTitles rescans a chunk line-by-line for entry starts the separator
// pass missed. A title-shaped line only starts a new block when a genre
// signature follows within the lookahead window; a bare title mid-paragraph
// must not fragment the entry.
func splitOnTitles(chunk string, opts Options) []string {
	lines := strings.Split(chunk, "\n")
	if len(lines) < 3 {
		return []string{chunk}
	}

	var blocks []string
	start := 0
	for i := 1; i < len(lines); i++ {
		if !isTitleLine(lines[i]) {
			continue
		}
		if !signatureFollows(lines, i, opts.TitleLookahead) {
			continue
		}
		// Don't split if everything so far is blank (title is the real start).
		if strings.TrimSpace(strings.Join(lines[start:i], "\n")) == "" {
			continue
		}
		blocks = append(blocks, strings.Join(lines[start:i], "\n"))
		start = i
	}
	blocks = append(blocks, strings.Join(lines[start:], "\n"))
	return blocks
}

// isTitleLine reports whether a line looks like a new entry title.
func isTitleLine(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" || len(s) > 60 {
		return false
	}
	return titleCaseLine.MatchString(s) || allCapsLine.MatchString(s)
}

// signatureFollows scans the window after a candidate title for a genre
// signature line.
func signatureFollows(lines []string, titleIdx, lookahead int) bool {
	end := titleIdx + 1 + lookahead
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[titleIdx+1 : end] {
		if matchesSignature(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}
