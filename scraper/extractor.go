package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const extractFunctionName = "extract_prices"

const extractSystemPrompt = `You are a price extraction assistant. Extract food commodity prices from supermarket page content.
Focus on staple foods and common groceries. Extract the complete product URL for each item. If no prices are found, return an empty items array.`

// Extractor turns raw market page text into a structured item list via a
// Gemini function call.
type Extractor struct {
	client *genai.Client
	model  string
}

func NewExtractor(apiKey, model string) (*Extractor, error) {
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Extractor{client: client, model: model}, nil
}

// Extract asks the model for commodity prices found in the page text. No
// usable function call in the response means zero items, not an error.
func (e *Extractor) Extract(ctx context.Context, marketName, pageText string) ([]Item, error) {
	prompt := fmt.Sprintf("Extract prices from this %s page. Page text: %s", marketName, pageText)

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(extractSystemPrompt, genai.RoleUser),
		Tools: []*genai.Tool{{
			FunctionDeclarations: []*genai.FunctionDeclaration{extractDeclaration()},
		}},
		ToolConfig: &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode:                 genai.FunctionCallingConfigModeAny,
				AllowedFunctionNames: []string{extractFunctionName},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}

	for _, call := range resp.FunctionCalls() {
		if call.Name != extractFunctionName {
			continue
		}
		return ItemsFromArgs(call.Args)
	}

	return nil, nil
}

// ItemsFromArgs decodes the items array out of a function-call argument map.
func ItemsFromArgs(args map[string]any) ([]Item, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items []Item `json:"items"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("malformed extraction arguments: %w", err)
	}
	return payload.Items, nil
}

func extractDeclaration() *genai.FunctionDeclaration {
	itemSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"price":       {Type: genai.TypeNumber},
			"unit":        {Type: genai.TypeString, Description: "kg/liter/piece"},
			"category":    {Type: genai.TypeString, Description: "cereals/vegetables/fruits/dairy/meat/other"},
			"product_url": {Type: genai.TypeString},
		},
		Required: []string{"name", "price", "unit", "category", "product_url"},
	}

	return &genai.FunctionDeclaration{
		Name:        extractFunctionName,
		Description: "Extract commodity prices from supermarket page content",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"items": {Type: genai.TypeArray, Items: itemSchema},
			},
			Required: []string{"items"},
		},
	}
}
