package detector

import (
	"github.com/google/uuid"

	"github.com/grimoire-tools/grimoire/internal/content"
)

// Result holds the outcome of running detection over one document.
type Result struct {
	// Blocks are the classified content blocks, in document order.
	Blocks []content.Block

	// Skipped counts candidate blocks the classifier could not assign a
	// kind. Dropping a block is a classification outcome, not an error.
	Skipped int
}

// Detect splits a document's text into candidate blocks and classifies each.
// Unknown blocks are dropped from the result and counted in Skipped.
func Detect(text string, opts Options) Result {
	var res Result
	for _, raw := range Split(text, opts) {
		kind := Classify(raw)
		if kind == content.KindUnknown {
			res.Skipped++
			continue
		}
		res.Blocks = append(res.Blocks, content.Block{
			ID:      uuid.New().String(),
			Kind:    kind,
			RawText: raw,
		})
	}
	return res
}
