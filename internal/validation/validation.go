// Package validation checks configuration documents against embedded JSON
// schemas.
package validation

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed *.json
var schemaFS embed.FS

// ValidationError represents a schema validation error
type ValidationError struct {
	Errors []string
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidateJSON validates a data structure against an embedded JSON schema.
// schemaName is the filename of the schema (e.g. "datanomy-config.json"),
// data the parsed YAML/JSON document.
func ValidateJSON(schemaName string, data interface{}) error {
	schemaData, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	schema, err := jsonschema.CompileString(schemaName, string(schemaData))
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", schemaName, err)
	}

	if err := schema.Validate(data); err != nil {
		var validationErrors []string
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			for _, cause := range validationErr.Causes {
				validationErrors = append(validationErrors, cause.Message)
			}
			if len(validationErrors) == 0 {
				validationErrors = append(validationErrors, validationErr.Message)
			}
		} else {
			validationErrors = append(validationErrors, err.Error())
		}
		return ValidationError{Errors: validationErrors}
	}

	return nil
}

// ValidateYAML validates raw YAML content against an embedded JSON schema.
func ValidateYAML(schemaName string, yamlContent []byte) error {
	var data interface{}
	if err := yaml.Unmarshal(yamlContent, &data); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return ValidateJSON(schemaName, data)
}

// ValidateYAMLFile validates a YAML file on disk against an embedded JSON
// schema.
func ValidateYAMLFile(schemaName string, filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return ValidateYAML(schemaName, content)
}

// ListAvailableSchemas returns the embedded schema filenames.
func ListAvailableSchemas() ([]string, error) {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	var schemas []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			schemas = append(schemas, entry.Name())
		}
	}
	return schemas, nil
}
