package stylist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"outfitai/internal/models"
)

const classifyAttempts = 3

const classifyPrompt = `Analyze this image of a clothing item.
Return ONLY a JSON object (no markdown, no extra text) with the following keys:
- "category": (e.g., Top, Bottom, Dress, Shoe)
- "color": (e.g., Navy Blue, Beige)
- "style": (e.g., Casual, Formal, Bohemian, Streetwear)
- "description": (a short visual description of the texture and fit)`

// Classify sends the image to the vision model and parses the strict JSON
// reply into a ClothingItem. Quota errors are retried twice with exponential
// backoff (1s, 2s); any other failure surfaces immediately as a StageError.
func (s *Stylist) Classify(ctx context.Context, model string, img Image) (*models.ClothingItem, error) {
	var lastErr error
	for attempt := 0; attempt < classifyAttempts; attempt++ {
		text, err := s.gen.GenerateVision(ctx, model, classifyPrompt, img)
		if err != nil {
			if !isRateLimited(err) {
				return nil, &StageError{Kind: ModelCallFailed, Model: model, Err: err}
			}
			lastErr = err
			if attempt < classifyAttempts-1 {
				backoff := time.Duration(1<<attempt) * time.Second
				s.log.Warn().Str("model", model).Dur("backoff", backoff).Msg("rate limited, retrying classification")
				s.sleep(backoff)
			}
			continue
		}

		item, err := parseClothingItem(text)
		if err != nil {
			return nil, &StageError{Kind: ParseFailure, Model: model, Err: err}
		}
		return item, nil
	}
	return nil, &StageError{Kind: RateLimited, Model: model, Err: lastErr}
}

// parseClothingItem strips code fences the model sometimes wraps around its
// reply and decodes the four required keys. A missing or empty key is a parse
// failure, not a default.
func parseClothingItem(text string) (*models.ClothingItem, error) {
	clean := strings.TrimSpace(text)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var item models.ClothingItem
	if err := json.Unmarshal([]byte(clean), &item); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	for field, value := range map[string]string{
		"category":    item.Category,
		"color":       item.Color,
		"style":       item.Style,
		"description": item.Description,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("response is missing %q", field)
		}
	}
	return &item, nil
}
