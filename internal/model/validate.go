package model

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/snapshot.schema.json
var snapshotSchema []byte

// ValidateSnapshot validates a decoded backup payload against the snapshot
// schema. The payload must carry at least one of the two top-level keys;
// unknown template/font/color values pass here and fall back at render time.
func ValidateSnapshot(m map[string]interface{}) error {
	schemaLoader := gojsonschema.NewBytesLoader(snapshotSchema)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
