package statblock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grimoire-tools/grimoire/internal/content"
)

// ErrEmptyInput is returned when a block contains no non-blank lines. It is
// the only fatal parse outcome; everything else degrades to typed defaults.
var ErrEmptyInput = errors.New("no content to parse")

// Parse decodes one monster statblock into a fully populated creature
// record. Missing sections resolve to their typed defaults so partially
// garbled source still yields a reviewable record.
func Parse(text string) (*content.MonsterRecord, error) {
	rec, _, err := ParseWithDiagnostics(text)
	return rec, err
}

// ParseWithDiagnostics is Parse plus non-fatal notes about sections that
// were present but did not match their expected pattern.
func ParseWithDiagnostics(text string) (*content.MonsterRecord, []string, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if !hasContent(lines) {
		return nil, nil, ErrEmptyInput
	}

	tagged := tagLines(lines)
	rec := assemble(tagged)
	return rec, diagnose(tagged, rec), nil
}

// assemble invokes every field extractor against the tagged-line map. Pure
// aggregation: cross-field validation belongs to downstream consumers.
func assemble(tagged taggedLines) *content.MonsterRecord {
	rec := &content.MonsterRecord{
		Abilities: content.DefaultAbilities(),
	}

	if names := tagged[SectionName]; len(names) > 0 {
		rec.Name = strings.TrimSpace(names[0].Text)
	}

	rec.Size, rec.Type, rec.Subtype, rec.Alignment = extractRacialDetails(tagged[SectionRacialDetails])
	rec.ArmorClass = extractArmor(tagged[SectionArmor])
	rec.HitPoints = extractHealth(tagged[SectionHealth])
	rec.Speeds = extractSpeeds(tagged[SectionSpeed])
	rec.Abilities = extractAbilities(tagged[SectionAbilityScores])
	rec.Saves = extractSaves(tagged[SectionSavingThrows])
	rec.Skills = extractSkills(tagged[SectionSkills])
	rec.DamageVulnerabilities = extractList(tagged[SectionDamageVulnerabilities])
	rec.DamageResistances = extractList(tagged[SectionDamageResistances])
	rec.DamageImmunities = extractList(tagged[SectionDamageImmunities])
	rec.ConditionImmunities = extractList(tagged[SectionConditionImmunities])
	rec.Senses = extractSenses(tagged[SectionSenses])
	rec.Languages = extractLanguages(tagged[SectionLanguages])
	rec.Challenge = extractChallenge(tagged[SectionChallenge])
	rec.ProficiencyBonus = extractProficiencyBonus(tagged[SectionProficiencyBonus])
	rec.Initiative = extractInitiative(tagged[SectionInitiative])
	rec.Gear = extractList(tagged[SectionGear])

	// Traits and unlabeled features land in the same list: they are the same
	// thing under two typesetting conventions.
	rec.Features = extractNamedEntries(tagged[SectionFeatures])
	rec.Features = append(rec.Features, extractNamedEntries(tagged[SectionTraits])...)
	rec.Actions = extractNamedEntries(tagged[SectionActions])
	rec.BonusActions = extractNamedEntries(tagged[SectionBonusActions])
	rec.Reactions = extractNamedEntries(tagged[SectionReactions])
	rec.LegendaryActions = extractNamedEntries(tagged[SectionLegendaryActions])
	rec.LairActions = extractNamedEntries(tagged[SectionLairActions])
	rec.MythicActions = extractNamedEntries(tagged[SectionMythicActions])
	rec.VillainActions = extractNamedEntries(tagged[SectionVillainActions])

	for _, l := range tagged[SectionOther] {
		rec.OtherInfo = append(rec.OtherInfo, strings.TrimSpace(l.Text))
	}

	return rec
}

// diagnose reports sections whose lines were present but produced only the
// typed default, so a reviewer knows what to double-check.
func diagnose(tagged taggedLines, rec *content.MonsterRecord) []string {
	var notes []string
	check := func(sec SectionID, empty bool) {
		if len(tagged[sec]) > 0 && empty {
			notes = append(notes, fmt.Sprintf("%s: section present but no values extracted", sec))
		}
	}

	check(SectionArmor, rec.ArmorClass.Value == 0)
	check(SectionHealth, rec.HitPoints.Value == 0)
	check(SectionSpeed, len(rec.Speeds) == 0)
	check(SectionSavingThrows, len(rec.Saves) == 0)
	check(SectionSkills, len(rec.Skills) == 0)
	check(SectionSenses, len(rec.Senses) == 0)
	check(SectionChallenge, rec.Challenge.Rating == 0 && rec.Challenge.XP == 0)
	return notes
}

func hasContent(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
