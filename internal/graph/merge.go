package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/trace"
)

// Merge unions elements, relationships, and indexes from other into g,
// tagging other's roots as library roots if asLibrary is set (§4.3
// merge). Identities must not collide; any collision aborts the merge
// with none of other's elements installed (all-or-nothing), consistent
// with the resolved Open Question that a merge id collision is a fatal
// structural error rather than a silently-renamed copy.
func (g *ModelGraph) Merge(ctx context.Context, other *ModelGraph, asLibrary bool) error {
	if other == nil {
		return model.ErrNilGraph
	}
	op := trace.Begin(ctx, g.logger, "graph.merge", slog.Bool("as_library", asLibrary))
	var retErr error
	defer func() { op.End(retErr) }()

	other.mu.RLock()
	otherOrder := cloneIDs(other.order)
	otherElements := make(map[model.ElementId]*model.Element, len(other.elements))
	for id, e := range other.elements {
		otherElements[id] = e
	}
	otherRoots := make(map[model.ElementId]bool, len(other.libraryRoots))
	for id := range other.libraryRoots {
		otherRoots[id] = true
	}
	other.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range otherOrder {
		if _, exists := g.elements[id]; exists {
			retErr = fmt.Errorf("%w: %s", model.ErrMergeIDCollision, id)
			return retErr
		}
	}

	for _, id := range otherOrder {
		g.insertLocked(otherElements[id])
	}
	// Second pass rebuilds relationship/ownership indexes once every
	// element is present, so lookups inside indexRelationshipLocked
	// never race an element that hasn't been inserted yet.
	for _, id := range otherOrder {
		e := otherElements[id]
		if isRelationshipElement(e) {
			g.indexRelationshipLocked(e)
		}
	}

	for id := range otherRoots {
		g.libraryRoots[id] = true
	}
	if asLibrary {
		for _, id := range otherOrder {
			e := otherElements[id]
			if e.OwningMembership.IsNil() && !isRelationshipElement(e) {
				g.libraryRoots[id] = true
			}
		}
	}

	return nil
}
