package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grimoire-tools/grimoire/internal/content"
	"github.com/grimoire-tools/grimoire/internal/pipeline"
)

func goblinRecord() *content.MonsterRecord {
	return &content.MonsterRecord{
		Name:       "Goblin",
		Size:       "small",
		Type:       "humanoid",
		Subtype:    "goblinoid",
		Alignment:  "neutral evil",
		ArmorClass: content.ArmorClass{Value: 15, Formula: "leather armor, shield"},
		HitPoints:  content.HitPoints{Value: 7, Formula: "2d6"},
		Speeds:     []content.Speed{{Type: "walk", Distance: 30}},
		Abilities:  content.Abilities{Str: 8, Dex: 14, Con: 10, Int: 10, Wis: 8, Cha: 8},
		Senses: []content.Sense{
			{Type: "darkvision", Range: 60},
			{Type: "passive perception", Range: 9},
		},
		Languages: []string{"Common", "Goblin"},
		Challenge: content.Challenge{Rating: 0.25, XP: 50},
		Actions: []content.NamedEntry{
			{Name: "Scimitar", Description: "Melee Weapon Attack: +4 to hit."},
		},
	}
}

func TestValidateMonster(t *testing.T) {
	if err := ValidateMonster(goblinRecord()); err != nil {
		t.Errorf("ValidateMonster() error: %v", err)
	}
}

func TestValidateMonsterRejectsEmptyName(t *testing.T) {
	rec := goblinRecord()
	rec.Name = ""
	if err := ValidateMonster(rec); err == nil {
		t.Error("ValidateMonster() accepted a record with no name")
	}
}

func TestValidateMonsterRejectsNegativeValues(t *testing.T) {
	rec := goblinRecord()
	rec.HitPoints.Value = -3
	if err := ValidateMonster(rec); err == nil {
		t.Error("ValidateMonster() accepted negative hit points")
	}
}

func TestWriteResult(t *testing.T) {
	res := &pipeline.Result{
		DocumentID: "doc-1",
		Records: []pipeline.Record{
			{BlockID: "b1", Kind: content.KindMonster, Name: "Goblin", Monster: goblinRecord()},
		},
	}

	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		path, err := NewWriter(dir).WriteResult(res, "yaml")
		if err != nil {
			t.Fatalf("WriteResult() error: %v", err)
		}
		if path != filepath.Join(dir, "doc-1.yaml") {
			t.Errorf("path = %q", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "name: Goblin") {
			t.Errorf("yaml output missing record name:\n%s", data)
		}
	})

	t.Run("json", func(t *testing.T) {
		dir := t.TempDir()
		path, err := NewWriter(dir).WriteResult(res, "json")
		if err != nil {
			t.Fatalf("WriteResult() error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var round pipeline.Result
		if err := json.Unmarshal(data, &round); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if round.DocumentID != "doc-1" || len(round.Records) != 1 {
			t.Errorf("round-tripped result = %+v", round)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := NewWriter(t.TempDir()).WriteResult(res, "toml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestWriteResultRejectsInvalidRecord(t *testing.T) {
	bad := goblinRecord()
	bad.Name = ""
	res := &pipeline.Result{
		DocumentID: "doc-2",
		Records: []pipeline.Record{
			{BlockID: "b1", Kind: content.KindMonster, Monster: bad},
		},
	}
	if _, err := NewWriter(t.TempDir()).WriteResult(res, "yaml"); err == nil {
		t.Error("WriteResult() accepted a schema-invalid record")
	}
}
