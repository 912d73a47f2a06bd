package gemini

import "github.com/heartmarshall/marketing-studio/internal/generation"

type contentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	ResponseMIMEType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   *schemaNode `json:"responseSchema,omitempty"`
}

type schemaNode struct {
	Type             string                 `json:"type"`
	Description      string                 `json:"description,omitempty"`
	Items            *schemaNode            `json:"items,omitempty"`
	Properties       map[string]*schemaNode `json:"properties,omitempty"`
	Required         []string               `json:"required,omitempty"`
	PropertyOrdering []string               `json:"propertyOrdering,omitempty"`
}

type contentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount   int            `json:"sampleCount"`
	OutputOptions *outputOptions `json:"outputOptions,omitempty"`
}

type outputOptions struct {
	MIMEType string `json:"mimeType,omitempty"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MIMEType           string `json:"mimeType"`
	} `json:"predictions"`
}

// renderSchema converts a generation.Schema into Gemini's OpenAPI subset.
func renderSchema(s *generation.Schema) *schemaNode {
	if s.Kind == generation.KindArrayOfStrings {
		return &schemaNode{Type: "ARRAY", Items: &schemaNode{Type: "STRING"}}
	}

	node := &schemaNode{
		Type:       "OBJECT",
		Properties: make(map[string]*schemaNode, len(s.Fields)),
		Required:   s.Required,
	}
	for _, f := range s.Fields {
		node.Properties[f.Name] = &schemaNode{Type: "STRING", Description: f.Description}
		node.PropertyOrdering = append(node.PropertyOrdering, f.Name)
	}
	return node
}
