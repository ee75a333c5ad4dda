package resolver

import (
	"fmt"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
)

// checkInheritanceCycles walks, starting from every Classifier, the resolved Specialization
// edges looking for a cycle, emitting one ECInheritanceCycle
// diagnostic per cycle found (§7 "an inheritance cycle is detected
// during resolution, after specialization targets resolve, since an
// unresolved specialization cannot yet be walked").
func (rs *Resolver) checkInheritanceCycles() model.Diagnostics {
	var diags model.Diagnostics
	state := make(map[model.ElementId]int) // 0 unvisited, 1 in-progress, 2 done
	reported := make(map[model.ElementId]bool)

	var walk func(id model.ElementId, path []model.ElementId)
	walk = func(id model.ElementId, path []model.ElementId) {
		switch state[id] {
		case 2:
			return
		case 1:
			cycleStart := 0
			for i, p := range path {
				if p == id {
					cycleStart = i
					break
				}
			}
			cycle := append([]model.ElementId(nil), path[cycleStart:]...)
			if len(cycle) == 0 || reported[cycle[0]] {
				return
			}
			reported[cycle[0]] = true
			diags = append(diags, cycleDiagnostic(rs, cycle))
			return
		}
		state[id] = 1
		path = append(path, id)

		for _, super := range supertypesOf(rs.g, id) {
			walk(super, path)
		}
		state[id] = 2
	}

	for _, id := range rs.g.Order() {
		e, ok := rs.g.GetElement(id)
		if !ok || !genmodel.IsClassifier(e.Kind) {
			continue
		}
		if state[id] == 0 {
			walk(id, nil)
		}
	}
	return diags
}

func cycleDiagnostic(rs *Resolver, cycle []model.ElementId) model.Diagnostic {
	names := make([]string, len(cycle))
	for i, id := range cycle {
		if e, ok := rs.g.GetElement(id); ok {
			names[i] = e.Name
		}
	}
	d := model.Diagnostic{
		Severity: model.SeverityError,
		Code:     model.ECInheritanceCycle,
		Message:  fmt.Sprintf("inheritance cycle: %v", names),
	}
	if e, ok := rs.g.GetElement(cycle[0]); ok && len(e.Spans) > 0 {
		d.Primary = e.Spans[0]
	}
	return d
}
