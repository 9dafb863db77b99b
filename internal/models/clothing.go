package models

// ClothingItem is the structured description the vision model produces for an
// uploaded photo. All fields are free text; the prompt constrains the shape,
// not the vocabulary.
type ClothingItem struct {
	Category    string `json:"category"`
	Color       string `json:"color"`
	Style       string `json:"style"`
	Description string `json:"description"`
}

// Summary renders the short "Navy Blue Casual Top" line shown to the user
// after classification.
func (c ClothingItem) Summary() string {
	return c.Color + " " + c.Style + " " + c.Category
}
