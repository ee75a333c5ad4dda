package graph

import (
	"fmt"
	"log/slog"

	"github.com/sysml-go/modelcore/internal/model"
)

// FromElements builds a fresh ModelGraph directly from a flat element
// list, in the same two-pass order Merge uses: every element is
// installed first, then relationship/ownership indexes are rebuilt
// once every id is present, so indexRelationshipLocked never races an
// element that has not been inserted yet. This is the reconstruction
// half of the canonical JSON persistence format (§6 Persistence
// format): a document's elements, in any order, round-trip back into
// an equivalent graph.
func FromElements(logger *slog.Logger, elements []*model.Element) (*ModelGraph, error) {
	if logger == nil {
		logger = slog.Default()
	}
	g := New(logger)

	for _, e := range elements {
		if _, exists := g.elements[e.Id]; exists {
			return nil, fmt.Errorf("%w: %s", model.ErrIDCollision, e.Id)
		}
		g.insertLocked(e)
	}
	for _, e := range elements {
		if isRelationshipElement(e) {
			g.indexRelationshipLocked(e)
		}
	}
	return g, nil
}
