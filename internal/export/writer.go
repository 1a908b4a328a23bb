// Package export writes parsed records to disk. Monster records pass
// through JSON Schema validation on the way out: the parser promises a fully
// populated record, and the schema check catches any regression in that
// promise before bad files reach consumers.
package export

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/grimoire-tools/grimoire/internal/content"
	"github.com/grimoire-tools/grimoire/internal/pipeline"
)

//go:embed monster_record.schema.json
var monsterSchemaJSON string

var monsterSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("monster_record.schema.json", strings.NewReader(monsterSchemaJSON)); err != nil {
		panic(fmt.Sprintf("export: invalid embedded schema: %v", err))
	}
	schema, err := c.Compile("monster_record.schema.json")
	if err != nil {
		panic(fmt.Sprintf("export: failed to compile embedded schema: %v", err))
	}
	return schema
}

// ValidateMonster checks one monster record against the embedded schema.
func ValidateMonster(rec *content.MonsterRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to round-trip record: %w", err)
	}
	if err := monsterSchema.Validate(v); err != nil {
		return fmt.Errorf("record %q failed schema validation: %w", rec.Name, err)
	}
	return nil
}

// Writer exports pipeline results to a directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting the given directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteResult writes one document's records as a single file named by the
// document ID. Returns the written path.
func (w *Writer) WriteResult(res *pipeline.Result, format string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	for _, rec := range res.Records {
		if rec.Monster == nil {
			continue
		}
		if err := ValidateMonster(rec.Monster); err != nil {
			return "", err
		}
	}

	var data []byte
	var ext string
	var err error
	switch format {
	case "json":
		ext = "json"
		data, err = json.MarshalIndent(res, "", "  ")
	case "yaml", "":
		ext = "yaml"
		data, err = yaml.Marshal(res)
	default:
		return "", fmt.Errorf("unknown export format: %s", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%s.%s", res.DocumentID, ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
