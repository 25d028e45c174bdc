package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemaFiles embed.FS

const schemaURL = "https://starjack.dev/schemas/export.json"

// Validator checks export documents against the embedded JSON schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded export schema.
func NewValidator() (*Validator, error) {
	data, err := schemaFiles.ReadFile("schemas/export.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read export schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add export schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile export schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks raw JSON.
func (v *Validator) Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

var (
	validatorOnce sync.Once
	validator     *Validator
	validatorErr  error
)

func defaultValidator() (*Validator, error) {
	validatorOnce.Do(func() {
		validator, validatorErr = NewValidator()
	})
	return validator, validatorErr
}
