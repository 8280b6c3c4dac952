package cli

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/ghagen/ghagen/pkg/logger"
)

var schemaLog = logger.New("cli:schema")

//go:embed config_schema.json
var configSchemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// configSchema compiles the embedded JSON schema once per process.
func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("failed to parse embedded schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config_schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("failed to register embedded schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("config_schema.json")
	})
	return compiledSchema, schemaErr
}

// validateConfigDocument checks a raw configuration document against the
// embedded schema before struct decoding, so shape errors surface with
// instance paths instead of zero values. Scalar values must already be
// strings where the schema says so; YAML numbers in env blocks are rejected
// rather than coerced.
func validateConfigDocument(data []byte) error {
	schema, err := configSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so the instance carries the value types the
	// validator is specified against.
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		schemaLog.Printf("Schema validation failed: %v", err)
		return err
	}
	return nil
}
