package api

import (
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema a response body must satisfy.
type Schema struct {
	Name       string
	Definition map[string]any
}

var (
	idType       = map[string]any{"type": []any{"integer", "string"}}
	nullableText = map[string]any{"type": []any{"string", "null"}}
)

// QuestionsSchema matches the get_questions response.
var QuestionsSchema = &Schema{
	Name: "questions",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"questions"},
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "question", "options"},
					"properties": map[string]any{
						"id":            idType,
						"question":      map[string]any{"type": "string"},
						"correctAnswer": map[string]any{"type": "string"},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"id", "text"},
								"properties": map[string]any{
									"id":   map[string]any{"type": "string"},
									"text": map[string]any{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	},
}

// EvaluationSchema matches the submit_answers response.
var EvaluationSchema = &Schema{
	Name: "evaluation",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"score", "areas"},
		"properties": map[string]any{
			"score": map[string]any{"type": "number"},
			"areas": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":     "object",
					"required": []any{"score", "recommended"},
					"properties": map[string]any{
						"score":       map[string]any{"type": "number"},
						"recommended": map[string]any{"type": "number"},
						"feedback":    map[string]any{"type": "string"},
					},
				},
			},
			"review": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"question_id", "correct"},
					"properties": map[string]any{
						"question_id": idType,
						"user_answer": nullableText,
						"correct":     map[string]any{"type": "boolean"},
						"explanation": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

// RoadmapSchema matches the generate_roadmap response.
var RoadmapSchema = &Schema{
	Name: "roadmap",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"title", "weeks"},
		"properties": map[string]any{
			"title":         map[string]any{"type": "string"},
			"level":         map[string]any{"type": "string"},
			"overall_score": map[string]any{"type": "number"},
			"weeks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"week", "focus"},
					"properties": map[string]any{
						"week":    map[string]any{"type": "integer"},
						"focus":   map[string]any{"type": "string"},
						"hours":   map[string]any{"type": "number"},
						"modules": map[string]any{"type": "number"},
						"lessons": map[string]any{"type": "number"},
						"topics": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"resources": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"type", "title"},
								"properties": map[string]any{
									"type":  map[string]any{"type": "string"},
									"title": map[string]any{"type": "string"},
									"url":   nullableText,
								},
							},
						},
					},
				},
			},
		},
	},
}

// ChatSchema matches the chat response.
var ChatSchema = &Schema{
	Name: "chat",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"response"},
		"properties": map[string]any{
			"response": map[string]any{"type": "string"},
		},
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateBody checks raw against schema. A nil schema accepts anything.
func validateBody(endpoint Endpoint, schema *Schema, raw []byte) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := sonic.Unmarshal(raw, &parsed); err != nil {
		return &InvalidResponseError{Endpoint: endpoint, Body: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &InvalidResponseError{Endpoint: endpoint, Body: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &InvalidResponseError{Endpoint: endpoint, Body: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// Round-trip through the codec so the compiler sees plain JSON values.
	defBytes, err := sonic.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := sonic.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
