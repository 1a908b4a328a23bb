package detector

import (
	"testing"

	"github.com/grimoire-tools/grimoire/internal/content"
)

func TestClassifyBySignature(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  content.Kind
	}{
		{
			"leveled spell",
			"Fireball\n3rd-level evocation\nCasting Time: 1 action",
			content.KindSpell,
		},
		{
			"cantrip",
			"Fire Bolt\nEvocation cantrip\nCasting Time: 1 action",
			content.KindSpell,
		},
		{
			"magic item",
			"Bag of Holding\nWondrous item, uncommon\nThis bag has an interior space larger than its outside.",
			content.KindItem,
		},
		{
			"creature",
			"Goblin\nSmall humanoid (goblinoid), neutral evil\nArmor Class 15",
			content.KindMonster,
		},
		{
			"class feature",
			"Sneak Attack\n1st-level rogue feature\nYou know how to strike subtly.",
			content.KindClassFeature,
		},
		{
			"feat",
			"Alert\nFeat\nAlways on the lookout for danger.",
			content.KindFeat,
		},
		{
			"feat by prerequisite",
			"Grappler\nPrerequisite: Strength 13 or higher\nYou have developed grappling skills.",
			content.KindFeat,
		},
		{
			"background",
			"Acolyte\nSkill Proficiencies: Insight, Religion\nYou have spent your life in a temple.",
			content.KindBackground,
		},
		{
			"signature pushed down by flavor text",
			"Worg\nA vicious predator that hunts in packs.\nLarge monstrosity, neutral evil\nArmor Class 13",
			content.KindMonster,
		},
		{
			"plain prose",
			"Chapter Three\nThe road to the keep winds through miles of rolling hills and old farms.",
			content.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.block); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyByKeywordFallback(t *testing.T) {
	// Signature lines mangled by extraction; classification falls through to
	// keyword co-occurrence.
	tests := []struct {
		name  string
		block string
		want  content.Kind
	}{
		{
			"monster without racial line",
			"Goblin\nArmor Class 15 (leather armor)\nHit Points 7 (2d6)\nSTR 8 DEX 14 CON 10",
			content.KindMonster,
		},
		{
			"spell with reordered header",
			"Fire Bolt\nA cantrip of the evocation school.\nCasting Time: 1 action\nRange: 120 feet\nDuration: Instantaneous",
			content.KindSpell,
		},
		{
			"item with trait keywords",
			"Moon Blade\nAn heirloom weapon of the elven houses (requires attunement).\nThe blade holds three charges.",
			content.KindItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.block); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifySpellBeforeMonster(t *testing.T) {
	// A spell that summons a creature carries armor/ability keywords in its
	// description; the full spell keyword set must win over the monster pair.
	block := "Summon Beast\nThe creature appears with Armor Class 13 and STR 18 for the duration.\n" +
		"Casting Time: 1 action\nRange: 90 feet\nDuration: Concentration, up to 1 hour\nA conjuration effect calls a bestial spirit."

	if got := Classify(block); got != content.KindSpell {
		t.Errorf("Classify() = %q, want %q", got, content.KindSpell)
	}
}
