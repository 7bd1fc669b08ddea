package tools

import "github.com/google/generative-ai-go/genai"

// schemaFromParameters converts a JSON-schema style parameter map into the
// genai schema the Gemini API expects. Unknown or malformed entries degrade
// to an empty object schema rather than failing registration.
func schemaFromParameters(params map[string]any) *genai.Schema {
	if params == nil {
		return &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
	}
	return schemaFromMap(params)
}

func schemaFromMap(m map[string]any) *genai.Schema {
	schema := &genai.Schema{Type: schemaType(m["type"])}

	if desc, ok := m["description"].(string); ok {
		schema.Description = desc
	}

	if props, ok := m["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, prop := range props {
			if propMap, ok := prop.(map[string]any); ok {
				schema.Properties[name] = schemaFromMap(propMap)
			}
		}
	} else if schema.Type == genai.TypeObject {
		schema.Properties = map[string]*genai.Schema{}
	}

	if items, ok := m["items"].(map[string]any); ok {
		schema.Items = schemaFromMap(items)
	}

	switch required := m["required"].(type) {
	case []string:
		schema.Required = required
	case []any:
		for _, r := range required {
			if name, ok := r.(string); ok {
				schema.Required = append(schema.Required, name)
			}
		}
	}

	return schema
}

func schemaType(v any) genai.Type {
	t, _ := v.(string)
	switch t {
	case "string":
		return genai.TypeString
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	default:
		return genai.TypeObject
	}
}
