package model

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// ValidatePortfolio validates a portfolio document against the JSON schema at
// schemaPath. An absolute canonical file:// path is used for the schema so
// loaders on all platforms resolve file references correctly.
func ValidatePortfolio(schemaPath string, doc map[string]interface{}) error {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewGoLoader(doc)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
