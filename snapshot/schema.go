package snapshot

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Validate checks raw JSON against the snapshot schema. Every violation is
// reported in a single ErrSchema.
func Validate(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("snapshot: compile schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		msgs = append(msgs, re.String())
	}

	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}
