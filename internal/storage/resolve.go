package storage

import (
	"strings"

	"makeupstudio/internal/domain"
)

// Resolver turns an ImageRef into a displayable URL. The stored path wins
// over any direct URL; direct URLs are trimmed of wrapping quote characters
// left behind by historical bad data. An empty result means the record has no
// displayable image and the caller substitutes its placeholder.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) DisplayURL(ref domain.ImageRef) string {
	if ref.Path != "" {
		return r.store.PublicURL(ref.Path)
	}
	return TrimWrappingQuotes(ref.URL)
}

func TrimWrappingQuotes(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			s = s[1 : len(s)-1]
			continue
		}
		break
	}
	return s
}
