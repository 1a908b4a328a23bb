package metrics

import (
	"testing"

	"github.com/grimoire-tools/grimoire/internal/content"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.Record(content.KindMonster, &content.MonsterRecord{
		ArmorClass: content.ArmorClass{Value: 15},
		HitPoints:  content.HitPoints{Value: 7},
		Abilities:  content.Abilities{Str: 8, Dex: 14, Con: 10, Int: 10, Wis: 8, Cha: 8},
		Challenge:  content.Challenge{Rating: 0.25, XP: 50},
		Actions:    []content.NamedEntry{{Name: "Scimitar"}},
	})
	c.Record(content.KindMonster, &content.MonsterRecord{
		Abilities: content.DefaultAbilities(),
	})
	c.Record(content.KindSpell, nil)
	c.Skip(2)
	c.Note(1)

	s := c.Summary()
	if s.Records != 3 {
		t.Errorf("Records = %d, want 3", s.Records)
	}
	if s.ByKind["monster"] != 2 || s.ByKind["spell"] != 1 {
		t.Errorf("ByKind = %v", s.ByKind)
	}
	if s.Skipped != 2 || s.Diagnostics != 1 {
		t.Errorf("Skipped/Diagnostics = %d/%d", s.Skipped, s.Diagnostics)
	}

	cov := s.Monsters
	if cov.Total != 2 {
		t.Errorf("Coverage.Total = %d, want 2", cov.Total)
	}
	if cov.WithArmor != 1 || cov.WithHitPoints != 1 || cov.WithAbilities != 1 ||
		cov.WithChallenge != 1 || cov.WithActions != 1 {
		t.Errorf("Coverage = %+v, want one fully covered record", cov)
	}
}

func TestCollectorEmpty(t *testing.T) {
	s := NewCollector().Summary()
	if s.Records != 0 || s.Skipped != 0 || s.Monsters.Total != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}
