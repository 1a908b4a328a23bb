package detector

import (
	"testing"

	"github.com/grimoire-tools/grimoire/internal/content"
)

func TestDetect(t *testing.T) {
	text := "Goblin\nSmall humanoid (goblinoid), neutral evil\nArmor Class 15 (leather armor, shield)\nHit Points 7 (2d6)\n" +
		"\n\n\n" +
		"Fire Bolt\nEvocation cantrip\nCasting Time: 1 action\nRange: 120 feet\nDuration: Instantaneous\n" +
		"\n\n\n" +
		"The innkeeper remembers little about that night except the sound of wings over the stables."

	res := Detect(text, Options{})

	if len(res.Blocks) != 2 {
		t.Fatalf("expected 2 classified blocks, got %d", len(res.Blocks))
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}

	if res.Blocks[0].Kind != content.KindMonster {
		t.Errorf("first block kind = %q, want %q", res.Blocks[0].Kind, content.KindMonster)
	}
	if res.Blocks[1].Kind != content.KindSpell {
		t.Errorf("second block kind = %q, want %q", res.Blocks[1].Kind, content.KindSpell)
	}

	seen := map[string]bool{}
	for _, b := range res.Blocks {
		if b.ID == "" {
			t.Error("block missing ID")
		}
		if seen[b.ID] {
			t.Errorf("duplicate block ID %s", b.ID)
		}
		seen[b.ID] = true
		if b.RawText == "" {
			t.Error("block missing raw text")
		}
	}
}

func TestDetectEmpty(t *testing.T) {
	res := Detect("", Options{})
	if len(res.Blocks) != 0 || res.Skipped != 0 {
		t.Errorf("Detect(\"\") = %d blocks, %d skipped; want 0, 0", len(res.Blocks), res.Skipped)
	}
}
