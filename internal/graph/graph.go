// Package graph holds ModelGraph (§3 ModelGraph, §4.3 Graph Model): the
// in-memory typed graph of elements, relationship-elements, and the
// secondary indexes structural queries run against. Grounded on the
// mutex-guarded map-of-maps plus forward-reference bookkeeping pattern
// used by graph-shaped stores elsewhere in the pack; adapted here to a
// single flat element table keyed by opaque id rather than per-schema
// typed maps, since every SysML element kind shares one record shape.
package graph

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/trace"
)

// PropSource and PropTarget are the conventional property names a
// relationship-element stores its endpoints under (§3 Relationship-element).
const (
	PropSource = "source"
	PropTarget = "target"
)

// ModelGraph is the typed graph container (§3 ModelGraph). Structural
// mutation (insert, merge) is single-threaded by design (§4.3
// Concurrency/mutation rules); the mutex exists to make read-only
// queries safe to run concurrently with each other and to serialize
// any structural mutations that do overlap, so indexes are not
// corrupted.
type ModelGraph struct {
	mu sync.RWMutex

	logger *slog.Logger

	elements map[model.ElementId]*model.Element
	order    []model.ElementId // insertion order, preserved for deterministic iteration (§5)

	childrenOf  map[model.ElementId][]model.ElementId // namespace id -> member ids, via OwningMembership
	outgoingRel map[model.ElementId][]model.ElementId  // element id -> relationship element ids where it is source
	incomingRel map[model.ElementId][]model.ElementId  // element id -> relationship element ids where it is target

	byKind map[genmodel.ElementKind][]model.ElementId

	qnameIndex map[string]model.ElementId // "::"-joined path -> id, for named root paths

	libraryRoots map[model.ElementId]bool

	diagnostics model.Diagnostics
}

// New constructs an empty graph. A nil logger defaults to slog.Default().
func New(logger *slog.Logger) *ModelGraph {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModelGraph{
		logger:       logger,
		elements:     make(map[model.ElementId]*model.Element),
		childrenOf:   make(map[model.ElementId][]model.ElementId),
		outgoingRel:  make(map[model.ElementId][]model.ElementId),
		incomingRel:  make(map[model.ElementId][]model.ElementId),
		byKind:       make(map[genmodel.ElementKind][]model.ElementId),
		qnameIndex:   make(map[string]model.ElementId),
		libraryRoots: make(map[model.ElementId]bool),
	}
}

// AddElement inserts a free (root) element (§4.3 add_element). Fails on
// id collision.
func (g *ModelGraph) AddElement(ctx context.Context, e *model.Element) (model.ElementId, error) {
	if e == nil {
		return model.NilElementId, model.ErrNilElement
	}
	op := trace.Begin(ctx, g.logger, "graph.add_element", slog.String("kind", string(e.Kind)))
	var retErr error
	defer func() { op.End(retErr) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.elements[e.Id]; exists {
		retErr = fmt.Errorf("%w: %s", model.ErrIDCollision, e.Id)
		return model.NilElementId, retErr
	}

	g.insertLocked(e)
	return e.Id, nil
}

// insertLocked records e in the element table and kind index. Callers
// must hold g.mu for writing.
func (g *ModelGraph) insertLocked(e *model.Element) {
	g.elements[e.Id] = e
	g.order = append(g.order, e.Id)
	g.byKind[e.Kind] = append(g.byKind[e.Kind], e.Id)
}

// AddOwnedElement inserts e and creates an OwningMembership from
// parentID to e with the given visibility (§4.3 add_owned_element).
// Fails if parentID is absent or is not a namespace kind.
func (g *ModelGraph) AddOwnedElement(ctx context.Context, e *model.Element, parentID model.ElementId, visibility string) (model.ElementId, error) {
	if e == nil {
		return model.NilElementId, model.ErrNilElement
	}
	op := trace.Begin(ctx, g.logger, "graph.add_owned_element",
		slog.String("kind", string(e.Kind)), slog.String("parent", parentID.String()))
	var retErr error
	defer func() { op.End(retErr) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.elements[e.Id]; exists {
		retErr = fmt.Errorf("%w: %s", model.ErrIDCollision, e.Id)
		return model.NilElementId, retErr
	}
	parent, ok := g.elements[parentID]
	if !ok {
		retErr = fmt.Errorf("add_owned_element: parent %s not found", parentID)
		return model.NilElementId, retErr
	}
	if !genmodel.IsNamespaceKind(parent.Kind) {
		retErr = fmt.Errorf("add_owned_element: parent %s (kind %s) is not a namespace", parentID, parent.Kind)
		return model.NilElementId, retErr
	}

	g.insertLocked(e)

	membership := model.NewElement(genmodel.KindOwningMembership)
	membership.Set(PropSource, refValue(parentID))
	membership.Set(PropTarget, refValue(e.Id))
	membership.Set("visibility", enumValue(visibility))
	membership.Set("memberName", stringValue(e.Name))
	g.insertLocked(membership)

	// indexRelationshipLocked both wires the outgoing/incoming edges and
	// (since OwningMembership) records the childrenOf entry and sets
	// e.OwningMembership; do not also set those by hand here or every
	// owned element ends up double-listed in childrenOf.
	g.indexRelationshipLocked(membership)

	return e.Id, nil
}

// AddRelationship appends a relationship element and updates the
// incoming/outgoing indexes (§4.3 add_relationship). Fails if the
// relationship's source or target element is absent from the graph.
func (g *ModelGraph) AddRelationship(ctx context.Context, rel *model.Element) error {
	if rel == nil {
		return model.ErrNilElement
	}
	op := trace.Begin(ctx, g.logger, "graph.add_relationship", slog.String("kind", string(rel.Kind)))
	var retErr error
	defer func() { op.End(retErr) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.elements[rel.Id]; exists {
		retErr = fmt.Errorf("%w: %s", model.ErrIDCollision, rel.Id)
		return retErr
	}

	src, srcOK := rel.ResolvedRef(PropSource)
	tgt, tgtOK := rel.ResolvedRef(PropTarget)
	if !srcOK {
		retErr = fmt.Errorf("add_relationship: missing source")
		return retErr
	}
	if !tgtOK {
		retErr = fmt.Errorf("add_relationship: missing target")
		return retErr
	}
	if _, ok := g.elements[src]; !ok {
		retErr = fmt.Errorf("add_relationship: source %s not found", src)
		return retErr
	}
	if _, ok := g.elements[tgt]; !ok {
		retErr = fmt.Errorf("add_relationship: target %s not found", tgt)
		return retErr
	}

	if wantSource, wantTarget, ok := genmodel.RelationshipConstraint(rel.Kind); ok {
		srcKind := g.elements[src].Kind
		tgtKind := g.elements[tgt].Kind
		if !genmodel.IsSubtypeOf(srcKind, wantSource) {
			retErr = fmt.Errorf("add_relationship: %s source kind %s is not a subtype of %s", rel.Kind, srcKind, wantSource)
			return retErr
		}
		if !genmodel.IsSubtypeOf(tgtKind, wantTarget) {
			retErr = fmt.Errorf("add_relationship: %s target kind %s is not a subtype of %s", rel.Kind, tgtKind, wantTarget)
			return retErr
		}
	}

	g.insertLocked(rel)
	g.indexRelationshipLocked(rel)
	return nil
}

func (g *ModelGraph) indexRelationshipLocked(rel *model.Element) {
	src, _ := rel.ResolvedRef(PropSource)
	tgt, _ := rel.ResolvedRef(PropTarget)
	g.outgoingRel[src] = append(g.outgoingRel[src], rel.Id)
	g.incomingRel[tgt] = append(g.incomingRel[tgt], rel.Id)

	// Every OwningMembership (and its subkinds: FeatureMembership,
	// EndFeatureMembership, ...) additionally expresses a parent/child
	// ownership edge (§3 OwningMembership): ascending the ownership tree
	// always goes through the membership element rather than a direct
	// parent pointer, but ChildrenOf is indexed directly for O(1) lookup.
	if genmodel.IsSubtypeOf(rel.Kind, genmodel.KindOwningMembership) {
		g.childrenOf[src] = append(g.childrenOf[src], tgt)
		if child, ok := g.elements[tgt]; ok {
			child.OwningMembership = rel.Id
		}
	}
}

// GetElement returns the element with id, ok is false if absent.
func (g *ModelGraph) GetElement(id model.ElementId) (*model.Element, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.elements[id]
	return e, ok
}

// ChildrenOf returns the ids of namespace id's owned members, through
// OwningMembership, in insertion order.
func (g *ModelGraph) ChildrenOf(id model.ElementId) []model.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cloneIDs(g.childrenOf[id])
}

// Outgoing returns the relationship-element ids where id is the source.
func (g *ModelGraph) Outgoing(id model.ElementId) []model.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cloneIDs(g.outgoingRel[id])
}

// Incoming returns the relationship-element ids where id is the target.
func (g *ModelGraph) Incoming(id model.ElementId) []model.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cloneIDs(g.incomingRel[id])
}

// ElementsByKind returns every element id of kind k, in insertion order.
func (g *ModelGraph) ElementsByKind(k genmodel.ElementKind) []model.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cloneIDs(g.byKind[k])
}

// RelationshipsByKind returns every relationship element id of kind k.
// Equivalent to ElementsByKind restricted to a relationship kind, kept
// as a separate named operation to match the read-side vocabulary of
// §4.3.
func (g *ModelGraph) RelationshipsByKind(k genmodel.ElementKind) []model.ElementId {
	if !genmodel.IsRelationship(k) {
		return nil
	}
	return g.ElementsByKind(k)
}

// Roots returns every non-relationship element with no owning
// membership, in insertion order.
func (g *ModelGraph) Roots() []model.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var roots []model.ElementId
	for _, id := range g.order {
		e := g.elements[id]
		if genmodel.IsRelationship(e.Kind) {
			continue
		}
		if e.OwningMembership.IsNil() {
			roots = append(roots, id)
		}
	}
	return roots
}

// RegisterLibraryPackage marks root as a library root; library roots
// participate in global resolution fallback (§4.3 register_library_package).
func (g *ModelGraph) RegisterLibraryPackage(id model.ElementId) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.elements[id]; !ok {
		return fmt.Errorf("register_library_package: %s not found", id)
	}
	g.libraryRoots[id] = true
	return nil
}

// IsLibraryElement reports whether id's nearest root ancestor is a
// registered library package.
func (g *ModelGraph) IsLibraryElement(id model.ElementId) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.isLibraryElementLocked(id)
}

func (g *ModelGraph) isLibraryElementLocked(id model.ElementId) bool {
	seen := make(map[model.ElementId]bool)
	cur := id
	for {
		if seen[cur] {
			return false // cycle guard; ownership cycles are reported separately
		}
		seen[cur] = true
		e, ok := g.elements[cur]
		if !ok {
			return false
		}
		if e.OwningMembership.IsNil() {
			return g.libraryRoots[cur]
		}
		membership, ok := g.elements[e.OwningMembership]
		if !ok {
			return false
		}
		parent, ok := membership.ResolvedRef(PropSource)
		if !ok {
			return false
		}
		cur = parent
	}
}

// LibraryRoots returns every registered library root id.
func (g *ModelGraph) LibraryRoots() []model.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]model.ElementId, 0, len(g.libraryRoots))
	for id := range g.libraryRoots {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// AddDiagnostic appends d to the graph's diagnostic set.
func (g *ModelGraph) AddDiagnostic(d model.Diagnostic) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.diagnostics = append(g.diagnostics, d)
}

// Diagnostics returns a copy of the graph's accumulated diagnostics.
func (g *ModelGraph) Diagnostics() model.Diagnostics {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(model.Diagnostics, len(g.diagnostics))
	copy(out, g.diagnostics)
	return out
}

// Len returns the total number of elements (including relationships and
// memberships) in the graph.
func (g *ModelGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.elements)
}

// Order returns every element id in insertion order.
func (g *ModelGraph) Order() []model.ElementId {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cloneIDs(g.order)
}

func cloneIDs(in []model.ElementId) []model.ElementId {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.ElementId, len(in))
	copy(out, in)
	return out
}
