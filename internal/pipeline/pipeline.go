// Package pipeline runs the full detection and parsing pipeline over one
// document: split into blocks, classify, then decode each block with the
// extractor for its kind. Blocks are independent; a failure on one never
// aborts its siblings.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/grimoire-tools/grimoire/internal/content"
	"github.com/grimoire-tools/grimoire/internal/detector"
	"github.com/grimoire-tools/grimoire/internal/metrics"
	"github.com/grimoire-tools/grimoire/internal/statblock"
	"github.com/grimoire-tools/grimoire/internal/svcctx"
)

// ErrNoContent is returned when the document has no non-blank text at all.
var ErrNoContent = errors.New("no content to parse")

// Options tunes the pipeline.
type Options struct {
	// Detector passes tuning through to the block splitter.
	Detector detector.Options

	// ForceKind skips classification and parses the whole input as one
	// block of the given kind. Used by `grimoire parse --kind`.
	ForceKind content.Kind
}

// Record is one parsed content entry. Exactly one of the typed payloads is
// set, matching Kind; kinds without a structural parser carry only the name
// and raw text for manual review.
type Record struct {
	BlockID string                 `json:"block_id" yaml:"block_id"`
	Kind    content.Kind           `json:"kind" yaml:"kind"`
	Name    string                 `json:"name" yaml:"name"`
	Monster *content.MonsterRecord `json:"monster,omitempty" yaml:"monster,omitempty"`
	Spell   *content.SpellRecord   `json:"spell,omitempty" yaml:"spell,omitempty"`
	Item    *content.ItemRecord    `json:"item,omitempty" yaml:"item,omitempty"`
	RawText string                 `json:"raw_text,omitempty" yaml:"raw_text,omitempty"`
}

// Result is the outcome of processing one document.
type Result struct {
	DocumentID  string          `json:"document_id" yaml:"document_id"`
	Records     []Record        `json:"records" yaml:"records"`
	Skipped     int             `json:"skipped" yaml:"skipped"`
	Diagnostics []string        `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Summary     metrics.Summary `json:"summary" yaml:"summary"`
}

// Process runs detection and per-kind parsing over a document's text.
func Process(ctx context.Context, text string, opts Options) (*Result, error) {
	logger := svcctx.LoggerFrom(ctx)

	if strings.TrimSpace(text) == "" {
		return nil, ErrNoContent
	}

	res := &Result{DocumentID: uuid.New().String()}

	if opts.ForceKind != "" && opts.ForceKind != content.KindUnknown {
		block := content.Block{
			ID:      uuid.New().String(),
			Kind:    opts.ForceKind,
			RawText: text,
		}
		res.Records = append(res.Records, parseBlock(block, res))
		res.Summary = summarize(res)
		return res, nil
	}

	det := detector.Detect(text, opts.Detector)
	res.Skipped = det.Skipped

	for _, block := range det.Blocks {
		res.Records = append(res.Records, parseBlock(block, res))
	}
	res.Summary = summarize(res)

	logger.Info("document processed",
		"document_id", res.DocumentID,
		"records", len(res.Records),
		"skipped", res.Skipped)

	return res, nil
}

// summarize builds the extraction-quality summary for a finished result.
func summarize(res *Result) metrics.Summary {
	c := metrics.NewCollector()
	for _, rec := range res.Records {
		c.Record(rec.Kind, rec.Monster)
	}
	c.Skip(res.Skipped)
	c.Note(len(res.Diagnostics))
	return c.Summary()
}

// parseBlock dispatches one classified block to its structural parser.
func parseBlock(block content.Block, res *Result) Record {
	rec := Record{BlockID: block.ID, Kind: block.Kind}

	switch block.Kind {
	case content.KindMonster:
		monster, notes, err := statblock.ParseWithDiagnostics(block.RawText)
		if err != nil {
			// Empty block: keep the record as a raw placeholder, note it,
			// and keep going. Sibling blocks are unaffected.
			res.Diagnostics = append(res.Diagnostics,
				fmt.Sprintf("block %s: %v", block.ID, err))
			rec.RawText = block.RawText
			return rec
		}
		for _, n := range notes {
			res.Diagnostics = append(res.Diagnostics,
				fmt.Sprintf("block %s: %s", block.ID, n))
		}
		rec.Name = monster.Name
		rec.Monster = monster
	case content.KindSpell:
		spell := ParseSpell(block.RawText)
		rec.Name = spell.Name
		rec.Spell = spell
	case content.KindItem:
		item := ParseItem(block.RawText)
		rec.Name = item.Name
		rec.Item = item
	default:
		rec.Name = firstLine(block.RawText)
		rec.RawText = block.RawText
	}
	return rec
}

// firstLine returns the first non-blank line of a block, trimmed.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}
