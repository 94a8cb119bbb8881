package validation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateYAML_ValidConfig(t *testing.T) {
	validYAML := `
default_profile: minio-local

profiles:
  minio-local:
    endpoint_url: "http://localhost:9000"
    region: "us-east-1"
    access_key_id: "minio"
    secret_access_key: "minio123"
    path_style: true
  prod:
    region: "eu-central-1"
`

	if err := ValidateYAML("datanomy-config.json", []byte(validYAML)); err != nil {
		t.Fatalf("Expected valid YAML to pass validation, got error: %v", err)
	}
}

func TestValidateYAML_EmptyConfig(t *testing.T) {
	if err := ValidateYAML("datanomy-config.json", []byte("")); err != nil {
		t.Fatalf("Expected empty config to pass validation, got error: %v", err)
	}
}

func TestValidateYAML_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown top-level key",
			yaml: `
buckets:
  - one
`,
		},
		{
			name: "unknown profile key",
			yaml: `
profiles:
  dev:
    bucket: "nope"
`,
		},
		{
			name: "endpoint without scheme",
			yaml: `
profiles:
  dev:
    endpoint_url: "localhost:9000"
`,
		},
		{
			name: "path_style not boolean",
			yaml: `
profiles:
  dev:
    path_style: "yes please"
`,
		},
		{
			name: "bad profile name",
			yaml: `
profiles:
  "-leading-dash":
    region: "us-east-1"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateYAML("datanomy-config.json", []byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if _, ok := err.(ValidationError); !ok {
				t.Fatalf("Expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestValidateYAML_MalformedYAML(t *testing.T) {
	err := ValidateYAML("datanomy-config.json", []byte("profiles: [unclosed"))
	if err == nil {
		t.Fatal("Expected parse error, got nil")
	}
}

func TestValidateYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("default_profile: dev\nprofiles:\n  dev:\n    region: us-east-1\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateYAMLFile("datanomy-config.json", path); err != nil {
		t.Fatalf("Expected file to validate, got error: %v", err)
	}

	if err := ValidateYAMLFile("datanomy-config.json", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}

func TestValidateJSON_UnknownSchema(t *testing.T) {
	err := ValidateJSON("no-such-schema.json", map[string]interface{}{})
	if err == nil {
		t.Fatal("Expected error for unknown schema, got nil")
	}
}

func TestListAvailableSchemas(t *testing.T) {
	schemas, err := ListAvailableSchemas()
	if err != nil {
		t.Fatalf("ListAvailableSchemas returned error: %v", err)
	}

	found := false
	for _, s := range schemas {
		if s == "datanomy-config.json" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected datanomy-config.json in schema list, got %v", schemas)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{"no detail", ValidationError{}, "validation failed"},
		{"single", ValidationError{Errors: []string{"bad field"}}, "validation failed: bad field"},
		{"multiple", ValidationError{Errors: []string{"a", "b"}}, "validation failed: a; b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}
