// Package content defines the typed game-content records produced by the
// detection and parsing pipeline. Records are assembled once and never
// mutated afterwards; downstream consumers (schema mappers, exporters) own
// any further transformation.
package content

// Kind identifies what sort of game content a block contains.
type Kind string

const (
	KindSpell        Kind = "spell"
	KindItem         Kind = "item"
	KindMonster      Kind = "monster"
	KindClassFeature Kind = "class_feature"
	KindFeat         Kind = "feat"
	KindBackground   Kind = "background"
	KindUnknown      Kind = "unknown"
)

// Block is one candidate content entry isolated from a larger document.
type Block struct {
	ID      string `json:"id" yaml:"id"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	RawText string `json:"raw_text" yaml:"raw_text"`
}

// NamedEntry is one titled action/feature/trait. Descriptions spanning
// multiple source lines are joined with single spaces.
type NamedEntry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ArmorClass is a numeric AC plus the parenthetical derivation text, e.g.
// "natural armor" or "leather armor, shield". Value 0 means the statblock
// carried no armor class line.
type ArmorClass struct {
	Value   int    `json:"value" yaml:"value"`
	Formula string `json:"formula,omitempty" yaml:"formula,omitempty"`
}

// HitPoints is a numeric HP total plus the dice formula, e.g. "2d6".
// Value 0 means the statblock carried no hit points line.
type HitPoints struct {
	Value   int    `json:"value" yaml:"value"`
	Formula string `json:"formula,omitempty" yaml:"formula,omitempty"`
}

// Speed is one movement mode. An unlabeled distance defaults to "walk".
type Speed struct {
	Type     string `json:"type" yaml:"type"`
	Distance int    `json:"distance" yaml:"distance"`
}

// Abilities holds the six ability scores. Scores missing from the input
// keep the default of 10.
type Abilities struct {
	Str int `json:"str" yaml:"str"`
	Dex int `json:"dex" yaml:"dex"`
	Con int `json:"con" yaml:"con"`
	Int int `json:"int" yaml:"int"`
	Wis int `json:"wis" yaml:"wis"`
	Cha int `json:"cha" yaml:"cha"`
}

// DefaultAbilities returns all six scores at 10.
func DefaultAbilities() Abilities {
	return Abilities{Str: 10, Dex: 10, Con: 10, Int: 10, Wis: 10, Cha: 10}
}

// Save is one saving-throw proficiency, e.g. {Ability: "dex", Bonus: 4}.
type Save struct {
	Ability string `json:"ability" yaml:"ability"`
	Bonus   int    `json:"bonus" yaml:"bonus"`
}

// Skill is one skill proficiency, e.g. {Name: "Stealth", Bonus: 6}.
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Bonus int    `json:"bonus" yaml:"bonus"`
}

// Sense is one sense entry. Senses with no numeric range (e.g. a bare
// "truesight (blinded beyond this radius)") are kept with Special set so the
// qualitative flag survives.
type Sense struct {
	Type    string `json:"type" yaml:"type"`
	Range   int    `json:"range,omitempty" yaml:"range,omitempty"`
	Special bool   `json:"special,omitempty" yaml:"special,omitempty"`
}

// Challenge is a challenge rating plus XP award. Rating supports fractional
// values like 1/4 and 1/2.
type Challenge struct {
	Rating float64 `json:"rating" yaml:"rating"`
	XP     int     `json:"xp" yaml:"xp"`
}

// MonsterRecord is the fully assembled structured creature data produced by
// the statblock parser. Every field is populated: absent sections resolve to
// typed defaults rather than leaving the record partially undefined.
type MonsterRecord struct {
	Name      string `json:"name" yaml:"name"`
	Size      string `json:"size,omitempty" yaml:"size,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Subtype   string `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Alignment string `json:"alignment,omitempty" yaml:"alignment,omitempty"`

	ArmorClass ArmorClass `json:"armor_class" yaml:"armor_class"`
	HitPoints  HitPoints  `json:"hit_points" yaml:"hit_points"`
	Speeds     []Speed    `json:"speeds,omitempty" yaml:"speeds,omitempty"`
	Abilities  Abilities  `json:"abilities" yaml:"abilities"`

	Saves  []Save  `json:"saves,omitempty" yaml:"saves,omitempty"`
	Skills []Skill `json:"skills,omitempty" yaml:"skills,omitempty"`

	DamageVulnerabilities []string `json:"damage_vulnerabilities,omitempty" yaml:"damage_vulnerabilities,omitempty"`
	DamageResistances     []string `json:"damage_resistances,omitempty" yaml:"damage_resistances,omitempty"`
	DamageImmunities      []string `json:"damage_immunities,omitempty" yaml:"damage_immunities,omitempty"`
	ConditionImmunities   []string `json:"condition_immunities,omitempty" yaml:"condition_immunities,omitempty"`

	Senses    []Sense  `json:"senses,omitempty" yaml:"senses,omitempty"`
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`

	Challenge        Challenge `json:"challenge" yaml:"challenge"`
	ProficiencyBonus int       `json:"proficiency_bonus,omitempty" yaml:"proficiency_bonus,omitempty"`
	Initiative       string    `json:"initiative,omitempty" yaml:"initiative,omitempty"`
	Gear             []string  `json:"gear,omitempty" yaml:"gear,omitempty"`

	Features         []NamedEntry `json:"features,omitempty" yaml:"features,omitempty"`
	Actions          []NamedEntry `json:"actions,omitempty" yaml:"actions,omitempty"`
	BonusActions     []NamedEntry `json:"bonus_actions,omitempty" yaml:"bonus_actions,omitempty"`
	Reactions        []NamedEntry `json:"reactions,omitempty" yaml:"reactions,omitempty"`
	LegendaryActions []NamedEntry `json:"legendary_actions,omitempty" yaml:"legendary_actions,omitempty"`
	LairActions      []NamedEntry `json:"lair_actions,omitempty" yaml:"lair_actions,omitempty"`
	MythicActions    []NamedEntry `json:"mythic_actions,omitempty" yaml:"mythic_actions,omitempty"`
	VillainActions   []NamedEntry `json:"villain_actions,omitempty" yaml:"villain_actions,omitempty"`

	// OtherInfo collects biography-like lines that matched no section.
	OtherInfo []string `json:"other_info,omitempty" yaml:"other_info,omitempty"`
}

// SpellRecord is the simpler record produced for spell blocks.
type SpellRecord struct {
	Name        string `json:"name" yaml:"name"`
	Level       int    `json:"level" yaml:"level"`
	School      string `json:"school,omitempty" yaml:"school,omitempty"`
	CastingTime string `json:"casting_time,omitempty" yaml:"casting_time,omitempty"`
	Range       string `json:"range,omitempty" yaml:"range,omitempty"`
	Components  string `json:"components,omitempty" yaml:"components,omitempty"`
	Duration    string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ItemRecord is the simpler record produced for item blocks.
type ItemRecord struct {
	Name        string `json:"name" yaml:"name"`
	ItemType    string `json:"item_type,omitempty" yaml:"item_type,omitempty"`
	Rarity      string `json:"rarity,omitempty" yaml:"rarity,omitempty"`
	Attunement  bool   `json:"attunement,omitempty" yaml:"attunement,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
