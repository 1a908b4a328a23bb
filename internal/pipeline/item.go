package pipeline

import (
	"regexp"
	"strings"

	"github.com/grimoire-tools/grimoire/internal/content"
)

var (
	itemTypeRarityRe = regexp.MustCompile(`(?i)^(wondrous item|weapon|armor|shield|potion|ring|rod|scroll|staff|wand|ammunition)[^,]*,\s*(common|uncommon|rare|very rare|legendary|artifact)`)
	attunementRe     = regexp.MustCompile(`(?i)requires attunement`)
)

// ParseItem decodes one magic-item block: name, a type/rarity line with an
// optional attunement clause, then description prose.
func ParseItem(text string) *content.ItemRecord {
	item := &content.ItemRecord{}
	var desc []string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if item.Name == "" {
			item.Name = line
			continue
		}

		if item.ItemType == "" {
			if m := itemTypeRarityRe.FindStringSubmatch(line); m != nil {
				item.ItemType = strings.ToLower(m[1])
				item.Rarity = strings.ToLower(m[2])
				item.Attunement = attunementRe.MatchString(line)
				continue
			}
		}

		desc = append(desc, line)
	}

	item.Description = strings.Join(desc, " ")
	return item
}
