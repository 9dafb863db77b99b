package stylist

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultModels is served when enumeration fails or no API key is configured.
var DefaultModels = []string{
	"models/gemini-1.5-flash",
	"models/gemini-1.5-pro",
	"models/gemini-pro-vision",
}

// RankModels orders model identifiers by expected quota generosity: 'flash'
// names first, then 'pro', then everything else. The sort is stable, so the
// API's own ordering is preserved within each tier.
func RankModels(names []string) []string {
	ranked := make([]string, len(names))
	copy(ranked, names)
	sort.SliceStable(ranked, func(i, j int) bool {
		return modelPriority(ranked[i]) < modelPriority(ranked[j])
	})
	return ranked
}

func modelPriority(name string) int {
	switch {
	case strings.Contains(name, "flash"):
		return 0
	case strings.Contains(name, "pro"):
		return 1
	default:
		return 2
	}
}

// ModelCatalog answers "which models can the user pick" with the ranked live
// list, falling back to DefaultModels when the listing call fails.
type ModelCatalog struct {
	lister ModelLister
	log    zerolog.Logger
}

func NewModelCatalog(lister ModelLister, log zerolog.Logger) *ModelCatalog {
	return &ModelCatalog{lister: lister, log: log}
}

func (c *ModelCatalog) Available(ctx context.Context) []string {
	names, err := c.lister.ListModelNames(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("model enumeration failed, using defaults")
		return DefaultModels
	}
	if len(names) == 0 {
		return DefaultModels
	}
	return RankModels(names)
}
