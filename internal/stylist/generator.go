package stylist

import "context"

// Image is a decoded upload handed to the vision model.
// Format is the bare subtype the API expects ("jpeg" or "png").
type Image struct {
	Format string
	Data   []byte
}

// Generator is the single boundary to the hosted generative model. Any
// backend that can generate content for a named model with a text prompt and
// an optional image can stand in here.
type Generator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	GenerateVision(ctx context.Context, model, prompt string, img Image) (string, error)
}

// ModelLister enumerates the model identifiers usable through a Generator.
type ModelLister interface {
	ListModelNames(ctx context.Context) ([]string, error)
}
