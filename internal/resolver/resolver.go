package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/trace"
)

// Config tunes the fixed-point driver (§4.5 Resolver configuration).
type Config struct {
	// MaxIterations bounds the number of fixed-point passes. A pass
	// that resolves nothing new terminates the loop early regardless
	// of this cap; the cap exists only to stop a pathological input
	// (one requiring deeper mutual recursion than expected) from
	// looping forever.
	MaxIterations int
}

// DefaultConfig returns the resolver's default tuning.
func DefaultConfig() Config {
	return Config{MaxIterations: 10}
}

// RoleStrategy associates a reference role name with the scoping
// strategy that resolves it. The map is supplied to New (nil selects
// DefaultRoleStrategies); a role missing from it uses StrategyOwning.
type RoleStrategy map[string]Strategy

// DefaultRoleStrategies is the strategy assignment used when a caller
// does not override it: most roles use the default Owning precedence
// chain, with the roles that have a structurally distinct scoping
// rule named explicitly.
func DefaultRoleStrategies() RoleStrategy {
	return RoleStrategy{
		"type":              StrategyOwning,
		"subsettedFeature":  StrategyOwning,
		"redefinedFeature":  StrategyOwning,
		"generalType":       StrategyOwning,
		"importedNamespace": StrategyGlobal,
		"chainTarget":       StrategyChaining,
		"transitionTarget":  StrategyTransition,
		"triggerTarget":     StrategyTransition,
		"valueExpression":   StrategyNonExpression,
	}
}

// Result summarizes one Run (§4.5 Resolver output).
type Result struct {
	Resolved    int
	Unresolved  int
	Iterations  int
	Diagnostics model.Diagnostics
}

// Resolver drives the iterative fixed-point name resolution pass over
// a ModelGraph (§4.3 resolve_name/resolve_qname/resolve_path delegate
// here; §4.5 Resolver).
type Resolver struct {
	g        *graph.ModelGraph
	logger   *slog.Logger
	cfg      Config
	roles    RoleStrategy
	registry *Registry

	tables map[model.ElementId]*ScopeTable
}

// New constructs a Resolver bound to g. A nil logger defaults to
// slog.Default(); a nil roles map uses DefaultRoleStrategies.
func New(g *graph.ModelGraph, logger *slog.Logger, cfg Config, roles RoleStrategy) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if roles == nil {
		roles = DefaultRoleStrategies()
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}
	return &Resolver{
		g:        g,
		logger:   logger,
		cfg:      cfg,
		roles:    roles,
		registry: NewRegistry(),
	}
}

// Run resolves every unresolved_<role> property reachable in g,
// iterating until a pass makes no progress or MaxIterations is reached
// (§4.5 "Iterative fixed point": a reference may depend on another
// reference resolving first, e.g. a redefinition target that is itself
// an imported name).
func (rs *Resolver) Run(ctx context.Context) (Result, error) {
	op := trace.Begin(ctx, rs.logger, "resolver.run")
	var retErr error
	defer func() { op.End(retErr) }()

	var result Result
	for iter := 0; iter < rs.cfg.MaxIterations; iter++ {
		rs.tables = make(map[model.ElementId]*ScopeTable)
		result.Iterations = iter + 1

		progressed, err := rs.pass(ctx)
		if err != nil {
			retErr = err
			return result, err
		}
		if !progressed {
			break
		}
	}

	resolved, unresolved, diags := rs.finalize()
	diags = append(diags, rs.checkInheritanceCycles()...)
	result.Resolved = resolved
	result.Unresolved = unresolved
	result.Diagnostics = diags
	return result, nil
}

// pass attempts to resolve every still-unresolved role on every
// element once, returning whether any reference newly resolved.
func (rs *Resolver) pass(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	progressed := false
	ids := rs.g.Order()
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	for _, id := range ids {
		e, ok := rs.g.GetElement(id)
		if !ok {
			continue
		}
		for _, role := range e.UnresolvedRoles() {
			if rs.resolveRole(e, role) {
				progressed = true
			}
		}
	}
	return progressed, nil
}

// resolveRole attempts to bind e's role against the graph, reporting
// whether it newly resolved this call.
func (rs *Resolver) resolveRole(e *model.Element, role string) bool {
	text, ok := e.UnresolvedText(role)
	if !ok || text == "" {
		return false
	}

	strategyName := rs.roles[role]
	if strategyName == "" {
		strategyName = StrategyOwning
	}
	fn, ok := rs.registry.lookup(strategyName)
	if !ok {
		fn, _ = rs.registry.lookup(StrategyOwning)
	}

	site := candidateSite{ns: rs.lookupSite(e, role)}
	if site.ns.IsNil() {
		return false
	}

	target, ambiguous, found := rs.resolveQualifiedText(fn, site, text)
	if !found {
		return false
	}
	if ambiguous {
		rs.reportAmbiguous(e, role, text)
		return false
	}

	e.Resolve(role, target)
	return true
}

// lookupSite chooses the namespace (or, for Chaining, the type) a
// role's reference should be resolved against. Chaining resolves
// against e itself; Transition resolves against e's owner, the state
// whose features are searched first; every other strategy uses e when
// e is a namespace and e's enclosing namespace otherwise.
func (rs *Resolver) lookupSite(e *model.Element, role string) model.ElementId {
	switch rs.roles[role] {
	case StrategyChaining:
		return e.Id
	case StrategyTransition:
		return rs.enclosingNamespace(e.Id)
	default:
		if genmodel.IsNamespaceKind(e.Kind) {
			return e.Id
		}
		return rs.enclosingNamespace(e.Id)
	}
}

// resolveQualifiedText resolves a possibly "::"-qualified reference:
// the first segment uses the role's assigned strategy, every
// subsequent segment resolves via StrategyRelative against the
// namespace the previous segment bound to (§4.5 "Qualified-name
// resolution": first segment via the chosen strategy, subsequent
// segments via LOCAL).
func (rs *Resolver) resolveQualifiedText(first resolveFunc, site candidateSite, text string) (target model.ElementId, ambiguous bool, found bool) {
	segments := splitQualified(text)
	if len(segments) == 0 {
		return model.NilElementId, false, false
	}

	res := first(rs, site, segments[0])
	if !res.found {
		return model.NilElementId, false, false
	}
	if len(res.ids) > 1 {
		return model.NilElementId, true, true
	}
	cur := res.ids[0]

	relative, _ := rs.registry.lookup(StrategyRelative)
	for _, seg := range segments[1:] {
		res = relative(rs, candidateSite{ns: cur}, seg)
		if !res.found {
			return model.NilElementId, false, false
		}
		if len(res.ids) > 1 {
			return model.NilElementId, true, true
		}
		cur = res.ids[0]
	}
	return cur, false, true
}

// reportAmbiguous records an ECAmbiguousReference diagnostic anchored
// at e's first recorded span, if any.
func (rs *Resolver) reportAmbiguous(e *model.Element, role, text string) {
	d := model.Diagnostic{
		Severity: model.SeverityError,
		Code:     model.ECAmbiguousReference,
		Message:  fmt.Sprintf("reference %q for role %q is ambiguous", text, role),
	}
	if len(e.Spans) > 0 {
		d.Primary = e.Spans[0]
	}
	rs.g.AddDiagnostic(d)
}

// finalize walks the graph once more counting resolved/unresolved
// roles and emitting an ECUnresolvedReference diagnostic for each
// role still pending after the fixed point settles, excluding roles on
// elements owned by a registered library package: a library's own
// internal unresolved references are the library's problem, not the
// consuming model's (§4.5 "Library-package handling").
func (rs *Resolver) finalize() (resolved, unresolved int, diags model.Diagnostics) {
	const prefix = "unresolved_"
	ids := rs.g.Order()
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	for _, id := range ids {
		e, ok := rs.g.GetElement(id)
		if !ok {
			continue
		}
		libElement := rs.g.IsLibraryElement(id)

		names := make([]string, 0, len(e.Properties))
		for name := range e.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
				continue
			}
			role := name[len(prefix):]
			if _, bound := e.ResolvedRef(role); bound {
				resolved++
				continue
			}
			if libElement {
				continue
			}
			unresolved++
			text, _ := e.UnresolvedText(role)
			d := model.Diagnostic{
				Severity: model.SeverityError,
				Code:     model.ECUnresolvedReference,
				Message:  fmt.Sprintf("could not resolve reference %q for role %q", text, role),
			}
			if len(e.Spans) > 0 {
				d.Primary = e.Spans[0]
			}
			diags = append(diags, d)
		}
	}
	diags = append(diags, rs.g.Diagnostics()...)
	return resolved, unresolved, diags
}

// splitQualified splits a "::"-separated qualified-name reference into
// its path segments.
func splitQualified(text string) []string {
	var segments []string
	start := 0
	for i := 0; i+1 < len(text); i++ {
		if text[i] == ':' && text[i+1] == ':' {
			segments = append(segments, text[start:i])
			start = i + 2
			i++
		}
	}
	segments = append(segments, text[start:])
	return segments
}
