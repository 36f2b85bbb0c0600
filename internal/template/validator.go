package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const composeSchemaURL = "mem://dockergen/compose.schema.json"

var (
	composeSchemaOnce sync.Once
	composeSchemaErr  error
	composeSchema     *jsonschema.Schema
)

// Validator checks rendered artifacts before they are written.
type Validator interface {
	// ValidateCompose checks a compose document against the embedded schema.
	ValidateCompose(content []byte) error
}

type validator struct{}

// NewValidator creates a Validator backed by the embedded compose schema.
func NewValidator() Validator {
	return &validator{}
}

// ValidateCompose converts the YAML to JSON and validates the result.
// Every failure wraps ErrInvalidArtifact.
func (v *validator) ValidateCompose(content []byte) error {
	sch, err := loadComposeSchema()
	if err != nil {
		return fmt.Errorf("load compose schema: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("%w: convert yaml to json: %v", ErrInvalidArtifact, err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("%w: decode json: %v", ErrInvalidArtifact, err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return nil
}

func loadComposeSchema() (*jsonschema.Schema, error) {
	composeSchemaOnce.Do(func() {
		data, err := embedded.ReadFile("schema/compose.schema.json")
		if err != nil {
			composeSchemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(composeSchemaURL, bytes.NewReader(data)); err != nil {
			composeSchemaErr = err
			return
		}
		composeSchema, composeSchemaErr = compiler.Compile(composeSchemaURL)
	})
	return composeSchema, composeSchemaErr
}
