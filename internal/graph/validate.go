package graph

import (
	"sort"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
)

// StructureReport is the structured result of ValidateStructure (§4.3
// validate_structure, §7 Structural error).
type StructureReport struct {
	OrphanOwnership    []model.ElementId // membership-kind elements whose resolved source element is absent
	OwnershipCycles    [][]model.ElementId // each entry is one cycle, as a sequence of element ids
	DanglingMemberships []model.ElementId // membership-kind elements with an unresolved source or target, or whose target element is absent
}

// OK reports whether the graph is structurally sound: no orphans,
// cycles, or dangling memberships.
func (r *StructureReport) OK() bool {
	return len(r.OrphanOwnership) == 0 && len(r.OwnershipCycles) == 0 && len(r.DanglingMemberships) == 0
}

// ValidateStructure checks orphan ownership, ownership cycles, and
// dangling memberships (§3 ModelGraph invariant ii: the ownership graph
// is a forest).
func (g *ModelGraph) ValidateStructure() *StructureReport {
	g.mu.RLock()
	defer g.mu.RUnlock()

	report := &StructureReport{}

	for _, id := range g.order {
		e := g.elements[id]
		if !genmodel.IsSubtypeOf(e.Kind, genmodel.KindMembership) {
			continue
		}
		src, srcOK := e.ResolvedRef(PropSource)
		tgt, tgtOK := e.ResolvedRef(PropTarget)
		if !srcOK || !tgtOK {
			report.DanglingMemberships = append(report.DanglingMemberships, id)
			continue
		}
		if _, ok := g.elements[src]; !ok {
			report.OrphanOwnership = append(report.OrphanOwnership, id)
			continue
		}
		if _, ok := g.elements[tgt]; !ok {
			report.DanglingMemberships = append(report.DanglingMemberships, id)
		}
	}

	report.OwnershipCycles = g.findOwnershipCyclesLocked()

	sortIDs(report.OrphanOwnership)
	sortIDs(report.DanglingMemberships)
	return report
}

// findOwnershipCyclesLocked walks the OwningMembership edges (namespace
// -> member) looking for cycles, reported once per cycle with the
// lexically-smallest member id as the cycle's starting point so output
// is deterministic across runs.
func (g *ModelGraph) findOwnershipCyclesLocked() [][]model.ElementId {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[model.ElementId]int, len(g.elements))
	var cycles [][]model.ElementId

	var visit func(id model.ElementId, stack []model.ElementId)
	visit = func(id model.ElementId, stack []model.ElementId) {
		switch color[id] {
		case black:
			return
		case gray:
			// Found a cycle: slice the stack back to the first occurrence of id.
			start := 0
			for i, s := range stack {
				if s == id {
					start = i
					break
				}
			}
			cycle := append([]model.ElementId{}, stack[start:]...)
			min := 0
			for i := range cycle {
				if cycle[i].String() < cycle[min].String() {
					min = i
				}
			}
			cycle = append(append([]model.ElementId{}, cycle[min:]...), cycle[:min]...)
			cycles = append(cycles, cycle)
			return
		}
		color[id] = gray
		stack = append(stack, id)
		for _, child := range g.childrenOf[id] {
			visit(child, stack)
		}
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			visit(id, nil)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i][0].String() < cycles[j][0].String()
	})
	return cycles
}

func sortIDs(ids []model.ElementId) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
}
