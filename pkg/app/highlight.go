package app

import (
	"fmt"
	"regexp"

	"github.com/osmnav/wayplanner/pkg/geo"
	"github.com/osmnav/wayplanner/pkg/graph"
)

// Highlight maps ways whose tags match Pattern to a display color.
// Patterns match against the raw "key/value" tag strings.
type Highlight struct {
	Pattern string    `json:"pattern"`
	Color   geo.Color `json:"color"`
}

type compiledHighlight struct {
	re    *regexp.Regexp
	color geo.Color
}

var neutralColor = geo.ColorFromRGB(1.0, 1.0, 1.0)

// SetHighlightList replaces the highlight list. A pattern that fails to
// compile is returned as an error and leaves the previous list untouched.
func (a *App) SetHighlightList(highlights []Highlight) error {
	compiled := make([]compiledHighlight, 0, len(highlights))
	for _, h := range highlights {
		re, err := regexp.Compile(h.Pattern)
		if err != nil {
			return fmt.Errorf("invalid highlight pattern %q: %w", h.Pattern, err)
		}
		compiled = append(compiled, compiledHighlight{re: re, color: h.Color})
	}

	a.highlights = compiled
	return nil
}

// WayColor resolves a way's display color: the color of the first pattern
// in list order matching any of the way's tags, or a neutral default.
// Pure over the current highlight list; renderers may memoize it.
func (a *App) WayColor(wayID int32) geo.Color {
	return wayColor(&a.data.Ways[wayID], a.highlights)
}

func wayColor(way *graph.Way, highlights []compiledHighlight) geo.Color {
	for _, h := range highlights {
		for _, tag := range way.Tags {
			if h.re.MatchString(tag) {
				return h.color
			}
		}
	}
	return neutralColor
}
