// Package statblock decodes the semi-free-form line sequence of a monster
// statblock into a structured creature record. A tagger walks the block's
// lines assigning each to a section, then per-section extractors turn the
// tagged lines into typed fields.
package statblock

import "regexp"

// SectionID labels one statblock attribute/ability/action grouping.
type SectionID int

const (
	SectionName SectionID = iota
	SectionRacialDetails
	SectionArmor
	SectionHealth
	SectionSpeed
	SectionInitiative
	SectionAbilityScores
	SectionSavingThrows
	SectionSkills
	SectionDamageVulnerabilities
	SectionDamageResistances
	SectionDamageImmunities
	SectionConditionImmunities
	SectionSenses
	SectionLanguages
	SectionChallenge
	SectionProficiencyBonus
	SectionGear
	SectionFeatures
	SectionTraits
	SectionActions
	SectionBonusActions
	SectionReactions
	SectionLegendaryActions
	SectionLairActions
	SectionMythicActions
	SectionVillainActions
	SectionOther
)

var sectionNames = map[SectionID]string{
	SectionName:                  "name",
	SectionRacialDetails:         "racial_details",
	SectionArmor:                 "armor",
	SectionHealth:                "health",
	SectionSpeed:                 "speed",
	SectionInitiative:            "initiative",
	SectionAbilityScores:         "ability_scores",
	SectionSavingThrows:          "saving_throws",
	SectionSkills:                "skills",
	SectionDamageVulnerabilities: "damage_vulnerabilities",
	SectionDamageResistances:     "damage_resistances",
	SectionDamageImmunities:      "damage_immunities",
	SectionConditionImmunities:   "condition_immunities",
	SectionSenses:                "senses",
	SectionLanguages:             "languages",
	SectionChallenge:             "challenge",
	SectionProficiencyBonus:      "proficiency_bonus",
	SectionGear:                  "gear",
	SectionFeatures:              "features",
	SectionTraits:                "traits",
	SectionActions:               "actions",
	SectionBonusActions:          "bonus_actions",
	SectionReactions:             "reactions",
	SectionLegendaryActions:      "legendary_actions",
	SectionLairActions:           "lair_actions",
	SectionMythicActions:         "mythic_actions",
	SectionVillainActions:        "villain_actions",
	SectionOther:                 "other",
}

func (s SectionID) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTopLevel reports whether the section is a one-shot preamble attribute.
// Top-level sections appear at most once and do not accumulate freeform
// bodies; non-top-level sections collect a header line plus named entries.
func (s SectionID) IsTopLevel() bool {
	switch s {
	case SectionFeatures, SectionTraits, SectionActions, SectionBonusActions,
		SectionReactions, SectionLegendaryActions, SectionLairActions,
		SectionMythicActions, SectionVillainActions, SectionOther:
		return false
	}
	return true
}

// headerPattern pairs a section with the regex that recognizes its header
// line. The table is ordered: first match wins, most specific first, so
// "Legendary Actions" is consulted before "Actions" and the damage/condition
// lists before anything that could shadow them.
type headerPattern struct {
	section SectionID
	re      *regexp.Regexp
}

var headerPatterns = []headerPattern{
	{SectionRacialDetails, regexp.MustCompile(`(?i)^(?:tiny|small|medium|large|huge|gargantuan)\s+(?:swarm of\s+\w+\s+)?(?:aberration|beast|celestial|construct|dragon|elemental|fey|fiend|giant|humanoid|monstrosity|ooze|plant|undead)`)},
	{SectionArmor, regexp.MustCompile(`(?i)^armor class\b`)},
	{SectionHealth, regexp.MustCompile(`(?i)^hit points\b`)},
	{SectionSpeed, regexp.MustCompile(`(?i)^speed\b`)},
	{SectionInitiative, regexp.MustCompile(`(?i)^initiative\b`)},
	{SectionAbilityScores, regexp.MustCompile(`(?i)^(?:str|dex|con|int|wis|cha)\b[\s.]*\d+`)},
	{SectionSavingThrows, regexp.MustCompile(`(?i)^saving throws\b`)},
	{SectionSkills, regexp.MustCompile(`(?i)^skills\b`)},
	{SectionDamageVulnerabilities, regexp.MustCompile(`(?i)^damage vulnerabilit(?:y|ies)\b`)},
	{SectionDamageResistances, regexp.MustCompile(`(?i)^damage resistances?\b`)},
	{SectionDamageImmunities, regexp.MustCompile(`(?i)^damage immunit(?:y|ies)\b`)},
	{SectionConditionImmunities, regexp.MustCompile(`(?i)^condition immunit(?:y|ies)\b`)},
	{SectionSenses, regexp.MustCompile(`(?i)^senses\b`)},
	{SectionLanguages, regexp.MustCompile(`(?i)^languages?\b`)},
	{SectionChallenge, regexp.MustCompile(`(?i)^challenge\b|^CR\b`)},
	{SectionProficiencyBonus, regexp.MustCompile(`(?i)^proficiency bonus\b`)},
	{SectionGear, regexp.MustCompile(`(?i)^gear\b`)},
	{SectionTraits, regexp.MustCompile(`(?i)^traits\s*$`)},
	{SectionLegendaryActions, regexp.MustCompile(`(?i)^legendary actions\b`)},
	{SectionLairActions, regexp.MustCompile(`(?i)^lair actions\b`)},
	{SectionMythicActions, regexp.MustCompile(`(?i)^mythic actions\b`)},
	{SectionVillainActions, regexp.MustCompile(`(?i)^villain actions\b`)},
	{SectionBonusActions, regexp.MustCompile(`(?i)^bonus actions\s*$`)},
	{SectionReactions, regexp.MustCompile(`(?i)^reactions\s*$`)},
	{SectionActions, regexp.MustCompile(`(?i)^actions\s*$`)},
}

// matchHeader returns the first unclosed section whose header pattern
// matches the line.
func matchHeader(line string, closed map[SectionID]bool) (SectionID, bool) {
	for _, hp := range headerPatterns {
		if closed[hp.section] {
			continue
		}
		if hp.re.MatchString(line) {
			return hp.section, true
		}
	}
	return SectionOther, false
}

// namedEntrySectionHeader matches the bare header line of a named-entry
// section so extractors can skip it.
var namedEntrySectionHeader = regexp.MustCompile(`(?i)^(?:traits|actions|bonus actions|reactions|legendary actions|lair actions|mythic actions|villain actions)\s*$`)
