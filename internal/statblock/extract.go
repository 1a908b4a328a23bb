package statblock

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/grimoire-tools/grimoire/internal/content"
)

// Extractors are pure functions from a section's tagged lines to a typed
// field. A missing or malformed section never fails: it yields the section's
// typed default, optionally with a diagnostic for the caller to display.

var (
	racialDetailsRe = regexp.MustCompile(`(?i)^(tiny|small|medium|large|huge|gargantuan)\s+(swarm of\s+\w+\s+)?([a-z]+)(?:\s*\(([^)]+)\))?`)
	alignmentRe     = regexp.MustCompile(`(?i)\b(?:(?:lawful|chaotic|neutral)\s+(?:good|evil|neutral)|typically\s+[a-z ]+|any(?:\s+non-[a-z]+)?\s+alignment|any alignment|neutral|unaligned)\b`)

	armorRe  = regexp.MustCompile(`(?i)armor class\s+(\d+)\s*(?:\(([^)]*)\))?`)
	healthRe = regexp.MustCompile(`(?i)hit points\s+(\d+)\s*(?:\(([^)]*)\))?`)

	speedTokenRe = regexp.MustCompile(`(?i)^([a-z]+)?\s*(\d+)\s*ft`)

	abilityRe = regexp.MustCompile(`(?i)\b(str|dex|con|int|wis|cha)\b[\s.]*(\d+)`)

	saveTokenRe  = regexp.MustCompile(`(?i)\b(str|dex|con|int|wis|cha)\w*\s*([+-]\s*\d+)`)
	skillTokenRe = regexp.MustCompile(`^([A-Za-z' ]+?)\s*([+-]\s*\d+)`)

	senseRangeRe   = regexp.MustCompile(`(?i)^([a-z ]+?)\s+(\d+)\s*ft`)
	passivePercRe  = regexp.MustCompile(`(?i)^passive\s+perception\s+(\d+)`)
	challengeRe    = regexp.MustCompile(`(?i)challenge\s+(\d+\s*/\s*\d+|\d+)\s*(?:\(([\d,]+)\s*XP\))?`)
	profBonusRe    = regexp.MustCompile(`([+-]?\d+)`)
	entryTitleRe   = regexp.MustCompile(`^((?:[A-Z][\w'\-]*)(?:[ -](?:[A-Z][\w'\-]*|of|the|and|a|an|\d+|\([^)]*\)))*)\.(?:\s+(.*))?$`)
	listHeaderRe   = regexp.MustCompile(`(?i)^(?:damage vulnerabilit(?:y|ies)|damage resistances?|damage immunit(?:y|ies)|condition immunit(?:y|ies)|senses|languages?|skills|saving throws|speed|gear)\b\s*`)
	emptyListValue = regexp.MustCompile(`^[-—–\s]*$`)
)

// joinSection flattens a section's lines into one space-joined string.
func joinSection(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, strings.TrimSpace(l.Text))
	}
	return strings.Join(parts, " ")
}

// extractRacialDetails parses the size/type/alignment line, e.g.
// "Small humanoid (goblinoid), neutral evil".
func extractRacialDetails(lines []Line) (size, ctype, subtype, alignment string) {
	if len(lines) == 0 {
		return "", "", "", ""
	}
	first := strings.TrimSpace(lines[0].Text)

	if m := racialDetailsRe.FindStringSubmatch(first); m != nil {
		size = strings.ToLower(m[1])
		ctype = strings.ToLower(m[3])
		if m[2] != "" {
			ctype = strings.ToLower(strings.TrimSpace(m[2])) + " " + ctype
		}
		subtype = strings.ToLower(m[4])
	}
	if m := alignmentRe.FindString(first); m != "" {
		alignment = strings.ToLower(strings.TrimSpace(m))
	}
	return size, ctype, subtype, alignment
}

// extractArmor parses "Armor Class 15 (leather armor, shield)".
func extractArmor(lines []Line) content.ArmorClass {
	m := armorRe.FindStringSubmatch(joinSection(lines))
	if m == nil {
		return content.ArmorClass{}
	}
	value, _ := strconv.Atoi(m[1])
	return content.ArmorClass{Value: value, Formula: strings.TrimSpace(m[2])}
}

// extractHealth parses "Hit Points 7 (2d6)".
func extractHealth(lines []Line) content.HitPoints {
	m := healthRe.FindStringSubmatch(joinSection(lines))
	if m == nil {
		return content.HitPoints{}
	}
	value, _ := strconv.Atoi(m[1])
	return content.HitPoints{Value: value, Formula: strings.TrimSpace(m[2])}
}

// extractSpeeds parses "Speed 30 ft., fly 60 ft. (hover)". An unlabeled
// leading distance is the walking speed.
func extractSpeeds(lines []Line) []content.Speed {
	text := listHeaderRe.ReplaceAllString(joinSection(lines), "")
	var speeds []content.Speed
	for _, token := range splitList(text) {
		m := speedTokenRe.FindStringSubmatch(strings.TrimSpace(token))
		if m == nil {
			continue
		}
		mvType := strings.ToLower(strings.TrimSpace(m[1]))
		if mvType == "" {
			mvType = "walk"
		}
		dist, _ := strconv.Atoi(m[2])
		speeds = append(speeds, content.Speed{Type: mvType, Distance: dist})
	}
	return speeds
}

// extractAbilities finds every ABBR/score pair across the section buffer,
// whether the six scores arrive one per line or packed on a single row.
// Unmatched abilities keep the default of 10.
func extractAbilities(lines []Line) content.Abilities {
	abilities := content.DefaultAbilities()
	for _, m := range abilityRe.FindAllStringSubmatch(joinSection(lines), -1) {
		score, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		switch strings.ToLower(m[1]) {
		case "str":
			abilities.Str = score
		case "dex":
			abilities.Dex = score
		case "con":
			abilities.Con = score
		case "int":
			abilities.Int = score
		case "wis":
			abilities.Wis = score
		case "cha":
			abilities.Cha = score
		}
	}
	return abilities
}

// extractSaves parses "Saving Throws Dex +4, Wis +2".
func extractSaves(lines []Line) []content.Save {
	text := listHeaderRe.ReplaceAllString(joinSection(lines), "")
	var saves []content.Save
	for _, m := range saveTokenRe.FindAllStringSubmatch(text, -1) {
		bonus, err := strconv.Atoi(strings.ReplaceAll(m[2], " ", ""))
		if err != nil {
			continue
		}
		saves = append(saves, content.Save{Ability: strings.ToLower(m[1]), Bonus: bonus})
	}
	return saves
}

// extractSkills parses "Skills Stealth +6, Perception +2".
func extractSkills(lines []Line) []content.Skill {
	text := listHeaderRe.ReplaceAllString(joinSection(lines), "")
	var skills []content.Skill
	for _, token := range splitList(text) {
		m := skillTokenRe.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		bonus, err := strconv.Atoi(strings.ReplaceAll(m[2], " ", ""))
		if err != nil {
			continue
		}
		skills = append(skills, content.Skill{
			Name:  strings.TrimSpace(m[1]),
			Bonus: bonus,
		})
	}
	return skills
}

// extractList handles the shared comma-split, lower-cased token lists
// (damage vulnerabilities/resistances/immunities, condition immunities,
// gear). The section's header phrase is stripped before splitting.
func extractList(lines []Line) []string {
	text := listHeaderRe.ReplaceAllString(joinSection(lines), "")
	var out []string
	for _, token := range splitList(text) {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" || emptyListValue.MatchString(token) {
			continue
		}
		out = append(out, token)
	}
	return out
}

// extractSenses parses "Senses darkvision 60 ft., passive Perception 9".
// Tokens with no numeric range are kept as special qualitative flags.
func extractSenses(lines []Line) []content.Sense {
	text := listHeaderRe.ReplaceAllString(joinSection(lines), "")
	var senses []content.Sense
	for _, token := range splitList(text) {
		token = strings.TrimSpace(token)
		if token == "" || emptyListValue.MatchString(token) {
			continue
		}
		if m := passivePercRe.FindStringSubmatch(token); m != nil {
			value, _ := strconv.Atoi(m[1])
			senses = append(senses, content.Sense{Type: "passive perception", Range: value})
			continue
		}
		if m := senseRangeRe.FindStringSubmatch(token); m != nil {
			dist, _ := strconv.Atoi(m[2])
			senses = append(senses, content.Sense{
				Type:  strings.ToLower(strings.TrimSpace(m[1])),
				Range: dist,
			})
			continue
		}
		senses = append(senses, content.Sense{Type: strings.ToLower(token), Special: true})
	}
	return senses
}

// extractLanguages parses "Languages Common, Goblin". An em-dash value means
// the creature speaks nothing.
func extractLanguages(lines []Line) []string {
	text := listHeaderRe.ReplaceAllString(joinSection(lines), "")
	var langs []string
	for _, token := range splitList(text) {
		token = strings.TrimSpace(token)
		if token == "" || emptyListValue.MatchString(token) {
			continue
		}
		langs = append(langs, token)
	}
	return langs
}

// extractChallenge parses "Challenge 1/4 (50 XP)". Fractional ratings are
// supported; XP digits may be comma-grouped.
func extractChallenge(lines []Line) content.Challenge {
	m := challengeRe.FindStringSubmatch(joinSection(lines))
	if m == nil {
		return content.Challenge{}
	}

	var ch content.Challenge
	rating := strings.ReplaceAll(m[1], " ", "")
	if num, den, ok := strings.Cut(rating, "/"); ok {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN == nil && errD == nil && d != 0 {
			ch.Rating = n / d
		}
	} else if v, err := strconv.ParseFloat(rating, 64); err == nil {
		ch.Rating = v
	}

	if m[2] != "" {
		xp, err := strconv.Atoi(strings.ReplaceAll(m[2], ",", ""))
		if err == nil {
			ch.XP = xp
		}
	}
	return ch
}

// extractProficiencyBonus parses "Proficiency Bonus +2".
func extractProficiencyBonus(lines []Line) int {
	if len(lines) == 0 {
		return 0
	}
	text := strings.TrimSpace(strings.TrimPrefix(joinSection(lines), "Proficiency Bonus"))
	m := profBonusRe.FindString(text)
	if m == "" {
		return 0
	}
	value, _ := strconv.Atoi(strings.TrimPrefix(m, "+"))
	return value
}

// extractInitiative keeps the raw remainder ("+2 (12)") for the caller.
func extractInitiative(lines []Line) string {
	if len(lines) == 0 {
		return ""
	}
	text := joinSection(lines)
	re := regexp.MustCompile(`(?i)^initiative\s*`)
	return strings.TrimSpace(re.ReplaceAllString(text, ""))
}

// extractNamedEntries decodes a named-entry section: the header line is
// skipped, a "Title Text." line starts a new entry, and every following
// non-title line joins the current entry's description with a single space.
// The continuation rule keeps multi-sentence feature text together and stops
// a new entry from swallowing the previous one's trailing sentence.
func extractNamedEntries(lines []Line) []content.NamedEntry {
	var entries []content.NamedEntry
	var current *content.NamedEntry

	for i, l := range lines {
		text := strings.TrimSpace(l.Text)
		if text == "" {
			continue
		}
		if i == 0 && namedEntrySectionHeader.MatchString(text) {
			continue
		}

		if m := entryTitleRe.FindStringSubmatch(text); m != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &content.NamedEntry{
				Name:        strings.TrimSpace(m[1]),
				Description: strings.TrimSpace(m[2]),
			}
			continue
		}

		if current == nil {
			// Section preamble prose before the first titled entry (common
			// for legendary action descriptions); keep it as an unnamed
			// entry so nothing is lost.
			current = &content.NamedEntry{Description: text}
			continue
		}
		if current.Description == "" {
			current.Description = text
		} else {
			current.Description += " " + text
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// splitList splits a comma/semicolon-separated attribute list, respecting
// parentheses so "truesight 60 ft. (blind beyond, this radius)" stays one
// token.
func splitList(text string) []string {
	var tokens []string
	depth := 0
	start := 0
	for i, r := range text {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',', ';':
			if depth == 0 {
				tokens = append(tokens, text[start:i])
				start = i + 1
			}
		}
	}
	tokens = append(tokens, text[start:])
	return tokens
}
