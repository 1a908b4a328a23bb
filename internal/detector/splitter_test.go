package detector

import (
	"strings"
	"testing"
)

func TestSplitSeparators(t *testing.T) {
	entryA := "Alpha Wolf\nLarge beast, unaligned\nArmor Class 13\nHit Points 37 (5d10 + 10)"
	entryB := "Fire Bolt\nEvocation cantrip\nCasting Time: 1 action\nRange: 120 feet"

	tests := []struct {
		name string
		text string
	}{
		{"blank run", entryA + "\n\n\n\n" + entryB},
		{"horizontal rule", entryA + "\n-----\n" + entryB},
		{"underscore rule", entryA + "\n_____\n" + entryB},
		{"page number line", entryA + "\n42\n" + entryB},
		{"stray bullet line", entryA + "\n•\n" + entryB},
		{"crlf blank run", strings.ReplaceAll(entryA+"\n\n\n\n"+entryB, "\n", "\r\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Split(tt.text, Options{})
			if len(blocks) != 2 {
				t.Fatalf("expected 2 blocks, got %d: %q", len(blocks), blocks)
			}
			if !strings.HasPrefix(blocks[0], "Alpha Wolf") {
				t.Errorf("first block should start with title, got %q", blocks[0])
			}
			if !strings.HasPrefix(blocks[1], "Fire Bolt") {
				t.Errorf("second block should start with title, got %q", blocks[1])
			}
		})
	}
}

func TestSplitOnTitleWithSignature(t *testing.T) {
	// Two entries with only a single blank line between them: the separator
	// pass keeps them together, the title rescan must split them because a
	// creature signature follows the second title.
	text := "Goblin\nSmall humanoid (goblinoid), neutral evil\nArmor Class 15\nHit Points 7 (2d6)\n" +
		"Hobgoblin\nMedium humanoid (goblinoid), lawful evil\nArmor Class 18\nHit Points 11 (2d8 + 2)"

	blocks := Split(text, Options{})
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %q", len(blocks), blocks)
	}
	if !strings.HasPrefix(blocks[1], "Hobgoblin") {
		t.Errorf("second block should start at the new title, got %q", blocks[1])
	}
}

func TestSplitTitleWithoutSignatureStaysTogether(t *testing.T) {
	// A title-shaped line mid-paragraph with no signature nearby must not
	// fragment the entry.
	text := "Goblin\nSmall humanoid (goblinoid), neutral evil\nArmor Class 15\n" +
		"Nimble Escape\nThe goblin hides behind cover and waits for prey to pass by the den."

	blocks := Split(text, Options{})
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %q", len(blocks), blocks)
	}
}

func TestSplitLookaheadWindow(t *testing.T) {
	// Signature sits 3 lines below the candidate title: found with the
	// default lookahead of 4, missed with a lookahead of 1.
	text := "Goblin\nSmall humanoid (goblinoid), neutral evil\nArmor Class 15\nHit Points 7 (2d6)\n" +
		"Worg\nA vicious predator of the borderlands.\nFeared by travelers everywhere.\nLarge monstrosity, neutral evil"

	if blocks := Split(text, Options{}); len(blocks) != 2 {
		t.Errorf("default lookahead: expected 2 blocks, got %d", len(blocks))
	}
	if blocks := Split(text, Options{TitleLookahead: 1}); len(blocks) != 1 {
		t.Errorf("lookahead 1: expected 1 block, got %d", len(blocks))
	}
}

func TestSplitDropsShortBlocks(t *testing.T) {
	text := "Page 12 of 300\n\n\n\nGoblin\nSmall humanoid (goblinoid), neutral evil\nArmor Class 15 (leather armor, shield)"

	blocks := Split(text, Options{})
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block after noise filtering, got %d: %q", len(blocks), blocks)
	}
	if !strings.HasPrefix(blocks[0], "Goblin") {
		t.Errorf("surviving block should be the goblin, got %q", blocks[0])
	}
}

func TestSplitEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n  \n"} {
		if blocks := Split(text, Options{}); len(blocks) != 0 {
			t.Errorf("Split(%q) = %d blocks, want 0", text, len(blocks))
		}
	}
}
