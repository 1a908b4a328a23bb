package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/grimoire-tools/grimoire/internal/content"
)

// Spell blocks are far more regular than statblocks: a name, a level/school
// line, four labeled attributes, then description prose. A single pass over
// the lines is enough.

var (
	spellLevelRe   = regexp.MustCompile(`(?i)^(\d)(?:st|nd|rd|th)[- ]level\s+(abjuration|conjuration|divination|enchantment|evocation|illusion|necromancy|transmutation)`)
	spellCantripRe = regexp.MustCompile(`(?i)^(abjuration|conjuration|divination|enchantment|evocation|illusion|necromancy|transmutation)\s+cantrip`)

	spellAttrRe = regexp.MustCompile(`(?i)^(casting time|range|components|duration)\s*:?\s*(.+)$`)
)

// ParseSpell decodes one spell block. Unrecognized lines accumulate into the
// description.
func ParseSpell(text string) *content.SpellRecord {
	spell := &content.SpellRecord{}
	var desc []string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if spell.Name == "" {
			spell.Name = line
			continue
		}

		if m := spellLevelRe.FindStringSubmatch(line); m != nil {
			spell.Level, _ = strconv.Atoi(m[1])
			spell.School = strings.ToLower(m[2])
			continue
		}
		if m := spellCantripRe.FindStringSubmatch(line); m != nil {
			spell.Level = 0
			spell.School = strings.ToLower(m[1])
			continue
		}

		if m := spellAttrRe.FindStringSubmatch(line); m != nil {
			value := strings.TrimSpace(m[2])
			switch strings.ToLower(m[1]) {
			case "casting time":
				spell.CastingTime = value
			case "range":
				spell.Range = value
			case "components":
				spell.Components = value
			case "duration":
				spell.Duration = value
			}
			continue
		}

		desc = append(desc, line)
	}

	spell.Description = strings.Join(desc, " ")
	return spell
}
