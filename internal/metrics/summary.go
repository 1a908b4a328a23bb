// Package metrics computes extraction-quality summaries for parsed
// documents: record counts by kind and field coverage for monster records.
// The summary travels with the pipeline result so a reviewer can judge how
// much of a document survived extraction before opening the records.
package metrics

import (
	"github.com/grimoire-tools/grimoire/internal/content"
)

// Coverage counts how many monster records carry each core field. Low
// coverage on a large document usually means a source-specific layout the
// detector tuning should be adjusted for.
type Coverage struct {
	Total         int `json:"total" yaml:"total"`
	WithArmor     int `json:"with_armor" yaml:"with_armor"`
	WithHitPoints int `json:"with_hit_points" yaml:"with_hit_points"`
	WithAbilities int `json:"with_abilities" yaml:"with_abilities"`
	WithChallenge int `json:"with_challenge" yaml:"with_challenge"`
	WithActions   int `json:"with_actions" yaml:"with_actions"`
}

// Summary aggregates one document's extraction outcome.
type Summary struct {
	Records     int            `json:"records" yaml:"records"`
	ByKind      map[string]int `json:"by_kind,omitempty" yaml:"by_kind,omitempty"`
	Skipped     int            `json:"skipped" yaml:"skipped"`
	Diagnostics int            `json:"diagnostics" yaml:"diagnostics"`
	Monsters    Coverage       `json:"monsters" yaml:"monsters"`
}

// Collector accumulates per-record observations into a Summary.
type Collector struct {
	summary Summary
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{summary: Summary{ByKind: map[string]int{}}}
}

// Record counts one parsed record. monster may be nil for non-monster kinds.
func (c *Collector) Record(kind content.Kind, monster *content.MonsterRecord) {
	c.summary.Records++
	c.summary.ByKind[string(kind)]++

	if monster == nil {
		return
	}
	cov := &c.summary.Monsters
	cov.Total++
	if monster.ArmorClass.Value > 0 {
		cov.WithArmor++
	}
	if monster.HitPoints.Value > 0 {
		cov.WithHitPoints++
	}
	if monster.Abilities != content.DefaultAbilities() {
		cov.WithAbilities++
	}
	if monster.Challenge.Rating > 0 || monster.Challenge.XP > 0 {
		cov.WithChallenge++
	}
	if len(monster.Actions) > 0 {
		cov.WithActions++
	}
}

// Skip counts blocks the detector classified as unknown and dropped.
func (c *Collector) Skip(n int) {
	c.summary.Skipped += n
}

// Note counts non-fatal parse diagnostics.
func (c *Collector) Note(n int) {
	c.summary.Diagnostics += n
}

// Summary returns the accumulated summary.
func (c *Collector) Summary() Summary {
	return c.summary
}
