package statblock

import (
	"strings"
	"testing"
)

func tag(text string) taggedLines {
	return tagLines(strings.Split(text, "\n"))
}

func TestTagLinesOutOfOrderPreamble(t *testing.T) {
	// Attributes in a nonstandard order still land in their sections.
	tagged := tag("Zombie\nSpeed 20 ft.\nHit Points 22 (3d8 + 9)\nArmor Class 8\nMedium undead, neutral evil")

	for sec, want := range map[SectionID]string{
		SectionName:          "Zombie",
		SectionSpeed:         "Speed 20 ft.",
		SectionHealth:        "Hit Points 22 (3d8 + 9)",
		SectionArmor:         "Armor Class 8",
		SectionRacialDetails: "Medium undead, neutral evil",
	} {
		lines := tagged[sec]
		if len(lines) != 1 || lines[0].Text != want {
			t.Errorf("%s = %+v, want one line %q", sec, lines, want)
		}
	}
}

func TestTagLinesSectionClosesOnce(t *testing.T) {
	// "Speed" reappearing inside an action description must not reopen the
	// speed section; the line stays with the current named-entry section.
	tagged := tag("Ghost\nMedium undead, any alignment\nSpeed 0 ft., fly 40 ft. (hover)\nActions\n" +
		"Etherealness. The ghost enters the Ethereal Plane.\n" +
		"Speed is unchanged while ethereal.")

	if n := len(tagged[SectionSpeed]); n != 1 {
		t.Fatalf("speed lines = %d, want 1", n)
	}
	actions := tagged[SectionActions]
	if len(actions) != 3 {
		t.Fatalf("action lines = %+v, want header plus two lines", actions)
	}
	if actions[2].Text != "Speed is unchanged while ethereal." {
		t.Errorf("actions[2] = %q", actions[2].Text)
	}
}

func TestTagLinesSkipsNotesAndBlanks(t *testing.T) {
	tagged := tag("Goblin\n\n* excludes lair bonuses\nArmor Class 15")

	if len(tagged[SectionArmor]) != 1 {
		t.Errorf("armor lines = %+v", tagged[SectionArmor])
	}
	for sec, lines := range tagged {
		for _, l := range lines {
			if strings.HasPrefix(l.Text, "*") {
				t.Errorf("footnote leaked into %s: %q", sec, l.Text)
			}
		}
	}
}

func TestTagLinesLoreGoesToOther(t *testing.T) {
	// Narrative sentences between preamble attributes are biography, not
	// features.
	tagged := tag("Worg\nLarge monstrosity, neutral evil\nArmor Class 13\n" +
		"Worgs are evil predators that delight in hunting!\nHit Points 26 (4d10 + 4)")

	other := tagged[SectionOther]
	if len(other) != 1 || !strings.HasPrefix(other[0].Text, "Worgs are") {
		t.Errorf("other = %+v", other)
	}
	if len(tagged[SectionHealth]) != 1 {
		t.Errorf("health = %+v", tagged[SectionHealth])
	}
}
