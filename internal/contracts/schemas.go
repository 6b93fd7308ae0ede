package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	SearchPerformedEventType    = "SearchPerformedEvent"
	SearchPerformedEventVersion = "1.0.0"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// Registry - скомпилированные схемы событий по ключу "тип/версия"
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

var knownSchemas = map[string]string{
	SearchPerformedEventType + "/" + SearchPerformedEventVersion: "schemas/search-performed.v1.json",
}

// NewRegistry компилирует все встроенные схемы
func NewRegistry() (*Registry, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	r := &Registry{schemas: make(map[string]*jsonschema.Schema, len(knownSchemas))}
	for key, file := range knownSchemas {
		raw, err := schemaFiles.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", file, err)
		}
		url := "mem://" + path.Base(file)
		if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", file, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", file, err)
		}
		r.schemas[key] = schema
	}
	return r, nil
}

// ValidateEvent проверяет тело сообщения по схеме его типа и версии
func (r *Registry) ValidateEvent(eventType, eventVersion string, body []byte) error {
	key := fmt.Sprintf("%s/%s", eventType, eventVersion)
	schema, ok := r.schemas[key]
	if !ok {
		return fmt.Errorf("schema for event '%s' version '%s' not found", eventType, eventVersion)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
