package pipeline

import (
	"strings"
	"testing"
)

func TestCleanPages(t *testing.T) {
	pages := []string{
		"MONSTERS OF THE MARCH\n\nGoblin\nSmall humanoid, neutral evil\n\n12",
		"MONSTERS OF THE MARCH\n\nHobgoblin\nMedium humanoid, lawful evil\n\n13",
		"MONSTERS OF THE MARCH\n\nWorg\nLarge monstrosity, neutral evil\n\n14",
		"MONSTERS OF THE MARCH\n\nOgre\nLarge giant, chaotic evil\n\n15",
	}

	cleaned := CleanPages(pages)
	if len(cleaned) != len(pages) {
		t.Fatalf("page count changed: %d", len(cleaned))
	}
	for i, p := range cleaned {
		if strings.Contains(p, "MONSTERS OF THE MARCH") {
			t.Errorf("page %d kept running header: %q", i, p)
		}
		if pageNumberLine.MatchString(strings.TrimSpace(p[strings.LastIndex(p, "\n")+1:])) {
			t.Errorf("page %d kept page number: %q", i, p)
		}
	}
	if !strings.HasPrefix(cleaned[0], "Goblin") {
		t.Errorf("page 0 content damaged: %q", cleaned[0])
	}
	if !strings.HasSuffix(cleaned[3], "chaotic evil") {
		t.Errorf("page 3 content damaged: %q", cleaned[3])
	}
}

func TestCleanPagesKeepsUniqueLines(t *testing.T) {
	// Too few pages to establish recurrence: content survives untouched.
	pages := []string{
		"Goblin\nSmall humanoid, neutral evil",
		"Worg\nLarge monstrosity, neutral evil",
	}
	cleaned := CleanPages(pages)
	if cleaned[0] != pages[0] || cleaned[1] != pages[1] {
		t.Errorf("cleaned = %q", cleaned)
	}
}

func TestJoinPages(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{
			"empty",
			nil,
			"",
		},
		{
			"single page",
			[]string{"The goblin waits."},
			"The goblin waits.",
		},
		{
			"hyphenated word across pages",
			[]string{"The gob-", "lin waits."},
			"The goblin waits.",
		},
		{
			"uppercase hyphen kept",
			[]string{"The rune reads THAR-", "KUN in the old tongue."},
			"The rune reads THAR- KUN in the old tongue.",
		},
		{
			"mid-sentence continuation",
			[]string{"The goblin", "waits in ambush."},
			"The goblin waits in ambush.",
		},
		{
			"sentence boundary becomes paragraph break",
			[]string{"The goblin waits.", "Dawn comes slowly."},
			"The goblin waits.\n\nDawn comes slowly.",
		},
		{
			"blank pages skipped",
			[]string{"The goblin waits.", "   \n  ", "Dawn comes slowly."},
			"The goblin waits.\n\nDawn comes slowly.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinPages(tt.pages); got != tt.want {
				t.Errorf("JoinPages() = %q, want %q", got, tt.want)
			}
		})
	}
}
