package detector

import (
	"regexp"
	"strings"

	"github.com/grimoire-tools/grimoire/internal/content"
)

// Structural signatures: the genre-defining line that follows an entry title
// in well-formatted source text. Checked most specific first.
var (
	spellSignature = regexp.MustCompile(`(?i)^(?:(\d)(?:st|nd|rd|th)[- ]level (abjuration|conjuration|divination|enchantment|evocation|illusion|necromancy|transmutation)|(abjuration|conjuration|divination|enchantment|evocation|illusion|necromancy|transmutation) cantrip)\b`)

	itemSignature = regexp.MustCompile(`(?i)^(?:wondrous item|weapon|armor|shield|potion|ring|rod|scroll|staff|wand|ammunition)\b.*\b(common|uncommon|rare|very rare|legendary|artifact)\b`)

	creatureSignature = regexp.MustCompile(`(?i)^(tiny|small|medium|large|huge|gargantuan)\b.*\b(aberration|beast|celestial|construct|dragon|elemental|fey|fiend|giant|humanoid|monstrosity|ooze|plant|undead)\b`)

	featureSignature = regexp.MustCompile(`(?i)^\d+(?:st|nd|rd|th)-level\b.*\bfeature\b`)

	featSignature = regexp.MustCompile(`(?i)^(?:feat\b|prerequisites?:)`)

	backgroundSignature = regexp.MustCompile(`(?i)^(?:background\b|skill proficiencies:)`)
)

// Keyword heuristics for blocks whose header line was mangled or reordered.
var (
	kwArmorOrHP   = regexp.MustCompile(`(?i)\b(?:armor class|hit points)\b`)
	kwAbilityPair = regexp.MustCompile(`\b(?:STR|DEX|CON|INT|WIS|CHA)\b\s+\d+`)
	kwCastingTime = regexp.MustCompile(`(?i)\bcasting time\b`)
	kwRange       = regexp.MustCompile(`(?i)\brange\b`)
	kwDuration    = regexp.MustCompile(`(?i)\bduration\b`)
	kwSchool      = regexp.MustCompile(`(?i)\b(?:abjuration|conjuration|divination|enchantment|evocation|illusion|necromancy|transmutation)\b`)
	kwItemNoun    = regexp.MustCompile(`(?i)\b(?:weapon|armor|shield|wondrous|potion|wand|staff|tool)\b`)
	kwItemTrait   = regexp.MustCompile(`(?i)\b(?:attunement|rarity|charges)\b`)
	kwFeature     = regexp.MustCompile(`(?i)\b\d+(?:st|nd|rd|th)[- ]level\b[\s\S]*\bfeature\b`)
	kwBackground  = regexp.MustCompile(`(?i)\bskill proficiencies\b[\s\S]*\bequipment\b`)
)

// matchesSignature reports whether a single line carries any structural
// genre signature. Used by the splitter's title lookahead.
func matchesSignature(line string) bool {
	return spellSignature.MatchString(line) ||
		itemSignature.MatchString(line) ||
		creatureSignature.MatchString(line) ||
		featureSignature.MatchString(line) ||
		featSignature.MatchString(line) ||
		backgroundSignature.MatchString(line)
}

// Classify assigns a content kind to one candidate block. Tier 1 matches
// structural signatures on the lines just below the title; tier 2 falls back
// to keyword co-occurrence across the whole block. Anything else is Unknown.
func Classify(block string) content.Kind {
	if kind, ok := classifyBySignature(block); ok {
		return kind
	}
	return classifyByKeywords(block)
}

// classifyBySignature checks the first few non-blank lines after the title
// for a genre-defining signature.
func classifyBySignature(block string) (content.Kind, bool) {
	lines := headLines(block, 5)
	if len(lines) < 2 {
		return content.KindUnknown, false
	}

	// Skip the title itself; a signature may be pushed down a line or two by
	// flavor text or extraction artifacts.
	for _, line := range lines[1:] {
		switch {
		case spellSignature.MatchString(line):
			return content.KindSpell, true
		case itemSignature.MatchString(line):
			return content.KindItem, true
		case creatureSignature.MatchString(line):
			return content.KindMonster, true
		case featureSignature.MatchString(line):
			return content.KindClassFeature, true
		case featSignature.MatchString(line):
			return content.KindFeat, true
		case backgroundSignature.MatchString(line):
			return content.KindBackground, true
		}
	}
	return content.KindUnknown, false
}

// classifyByKeywords recovers blocks whose signature line was lost to OCR.
// Order mirrors the signature tier: most specific evidence first.
func classifyByKeywords(block string) content.Kind {
	switch {
	case kwCastingTime.MatchString(block) && kwRange.MatchString(block) &&
		kwDuration.MatchString(block) && kwSchool.MatchString(block):
		return content.KindSpell
	case kwArmorOrHP.MatchString(block) && kwAbilityPair.MatchString(block):
		return content.KindMonster
	case kwItemNoun.MatchString(block) && kwItemTrait.MatchString(block):
		return content.KindItem
	case kwFeature.MatchString(block):
		return content.KindClassFeature
	case featSignature.MatchString(block):
		return content.KindFeat
	case kwBackground.MatchString(block):
		return content.KindBackground
	}
	return content.KindUnknown
}

// headLines returns up to n leading non-blank lines of a block, trimmed.
func headLines(block string, n int) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return out
}
