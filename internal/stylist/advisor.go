package stylist

import (
	"context"
	"fmt"

	"outfitai/internal/models"
)

// Advise turns a classified item plus the user's profile and scene into prose
// styling advice. Model failures degrade to an inline apology so the caller
// never loses the classification result over a flaky second call.
func (s *Stylist) Advise(ctx context.Context, model string, item models.ClothingItem, scene models.SceneContext, profile models.UserProfile) string {
	text, err := s.gen.GenerateText(ctx, model, advicePrompt(item, scene, profile))
	if err != nil {
		s.log.Error().Err(err).Str("model", model).Msg("advice generation failed")
		return fmt.Sprintf("Sorry, I couldn't generate advice right now. Error: %v", err)
	}
	return text
}

func advicePrompt(item models.ClothingItem, scene models.SceneContext, profile models.UserProfile) string {
	return fmt.Sprintf(`You are an expert fashion stylist.

**USER PROFILE:**
- Gender: %s
- Skin Tone: %s (Consider color theory)
- Body Type: %s (Consider silhouette)

**THE ITEM:**
- Category: %s
- Color: %s
- Style: %s
- Description: %s

**THE SCENARIO:**
- Occasion: %s
- Weather: %s

**YOUR TASK:**
1. Recommend 2 specific items to pair with this (e.g., "Pair with white linen trousers...").
2. Explain WHY this works (Color Theory & Silhouette).
3. Give a specific styling tip (e.g., "Tuck it in", "Roll sleeves").

Keep the tone encouraging, stylish, and concise.`,
		profile.Gender, profile.SkinTone, profile.BodyType,
		item.Category, item.Color, item.Style, item.Description,
		scene.Occasion, scene.Weather)
}
