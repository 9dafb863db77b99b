// Package stylist holds the two-stage pipeline at the heart of the agent:
// a vision call that classifies an uploaded photo into a ClothingItem, then a
// text call that turns the item plus user context into styling advice.
package stylist

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"outfitai/internal/models"
)

// Session is the per-request configuration threaded through one pipeline run.
// There is no state shared between runs.
type Session struct {
	Model   string
	Profile models.UserProfile
	Scene   models.SceneContext
}

// Result is what one successful run produces.
type Result struct {
	Item   models.ClothingItem `json:"item"`
	Advice string              `json:"advice"`
}

type Stylist struct {
	gen   Generator
	log   zerolog.Logger
	sleep func(time.Duration)
}

func New(gen Generator, log zerolog.Logger) *Stylist {
	return &Stylist{
		gen:   gen,
		log:   log,
		sleep: time.Sleep,
	}
}

// Style runs the full pipeline. A classification failure short-circuits: no
// advice call is made and the StageError is returned. Advice failures never
// surface as errors; they arrive as apology text in the Result.
func (s *Stylist) Style(ctx context.Context, sess Session, img Image) (*Result, error) {
	item, err := s.Classify(ctx, sess.Model, img)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("model", sess.Model).Str("item", item.Summary()).Msg("item classified")

	advice := s.Advise(ctx, sess.Model, *item, sess.Scene, sess.Profile)
	return &Result{Item: *item, Advice: advice}, nil
}
