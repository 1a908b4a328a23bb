package statblock

import (
	"regexp"
	"strings"
)

// Line is one source line with its original position in the block.
type Line struct {
	Num  int
	Text string
}

// taggedLines maps each section to the lines assigned to it.
type taggedLines map[SectionID][]Line

// taggerState names the three phases of a statblock parse. A statblock is
// typeset as a fixed preamble of one-line attributes, then an unlabeled
// features list, then explicitly labeled action sections; the state tracks
// which phase the walk is in so unlabeled lines route correctly.
type taggerState int

const (
	// statePreamble: consuming the contiguous run of top-level one-line
	// sections before the first non-top-level section begins.
	statePreamble taggerState = iota

	// stateAbilityRun: consuming the ability-score rows, which individually
	// match the same header pattern but group into one section.
	stateAbilityRun

	// stateBody: inside the named-entry sections (features, actions, ...).
	stateBody
)

var (
	// noteLine marks footnote lines that carry no section content.
	noteLine = regexp.MustCompile(`^\s*\*`)

	// featureTitle is the strict "Title Case Word(s)." shape that starts the
	// first unlabeled feature entry once the preamble ends.
	featureTitle = regexp.MustCompile(`^(?:[A-Z][\w'\-]*)(?:[ -](?:[A-Z][\w'\-]*|of|the|and|a|an|\d+|\([^)]*\)))*\.(?:\s|$)`)

	// looseSentence is the looser "Capitalized." shape that routes narrative
	// text to the biography bucket rather than features.
	looseSentence = regexp.MustCompile(`^[A-Z].*[.!?]\s*$`)
)

// tagLines walks a block's lines and assigns each to a section. The walk
// tolerates preamble attributes appearing in any order or missing entirely;
// each top-level section closes once matched and never reopens.
func tagLines(lines []string) taggedLines {
	out := taggedLines{}
	closed := map[SectionID]bool{}
	state := statePreamble
	current := SectionName
	nameSeen := false

	appendLine := func(sec SectionID, num int, text string) {
		out[sec] = append(out[sec], Line{Num: num, Text: text})
	}

	for num, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || noteLine.MatchString(line) {
			continue
		}

		// First non-empty line is always the creature name.
		if !nameSeen {
			nameSeen = true
			closed[SectionName] = true
			appendLine(SectionName, num, line)
			continue
		}

		if sec, ok := matchHeader(line, closed); ok {
			if sec == SectionAbilityScores {
				state = stateAbilityRun
			} else {
				// A different section ends the ability run for good.
				if state == stateAbilityRun {
					closed[SectionAbilityScores] = true
				}
				closed[sec] = true
				if sec.IsTopLevel() {
					state = statePreamble
				} else {
					state = stateBody
				}
			}
			current = sec
			appendLine(current, num, line)
			continue
		}

		// Mid-ability-run lines with no header stay with the scores
		// (wrapped modifier text).
		if state == stateAbilityRun {
			appendLine(SectionAbilityScores, num, line)
			continue
		}

		// Inside a named-entry section every line accumulates verbatim; the
		// extractor decides entry boundaries.
		if !current.IsTopLevel() {
			appendLine(current, num, line)
			continue
		}

		// The preamble's fixed attributes are done: a title-shaped line is
		// the first unlabeled feature entry.
		if state == statePreamble && featureTitle.MatchString(line) {
			state = stateBody
			current = SectionFeatures
			appendLine(current, num, line)
			continue
		}

		// Narrative/lore text that is not a mechanical feature.
		if looseSentence.MatchString(line) {
			appendLine(SectionOther, num, line)
			continue
		}

		// Wrapped continuation of the current top-level attribute.
		appendLine(current, num, line)
	}

	return out
}
