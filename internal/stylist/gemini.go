package stylist

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiClient implements Generator and ModelLister on top of the Google
// generative AI SDK. The model is chosen per call so one client can serve
// whatever identifier the user selected.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func (g *GeminiClient) Close() {
	g.client.Close()
}

func (g *GeminiClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	return g.generate(ctx, model, genai.Text(prompt))
}

func (g *GeminiClient) GenerateVision(ctx context.Context, model, prompt string, img Image) (string, error) {
	return g.generate(ctx, model, genai.Text(prompt), genai.ImageData(img.Format, img.Data))
}

func (g *GeminiClient) generate(ctx context.Context, model string, parts ...genai.Part) (string, error) {
	m := g.client.GenerativeModel(model)
	m.SetTemperature(0.7)
	m.SetTopP(0.95)
	m.SetMaxOutputTokens(2048)

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// ListModelNames returns the identifiers of every model that supports content
// generation, unranked.
func (g *GeminiClient) ListModelNames(ctx context.Context) ([]string, error) {
	var names []string
	it := g.client.ListModels(ctx)
	for {
		info, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		if supportsGeneration(info) {
			names = append(names, info.Name)
		}
	}
	return names, nil
}

func supportsGeneration(info *genai.ModelInfo) bool {
	for _, m := range info.SupportedGenerationMethods {
		if m == "generateContent" {
			return true
		}
	}
	return false
}
