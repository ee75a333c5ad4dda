package resolver

import (
	"fmt"
	"sync"
)

// Strategy names one of the six scoping variants a reference role can
// be bound to (§4.5 Scoping variants). A role's strategy is looked up
// by role name in the Resolver's RoleStrategy map
// (DefaultRoleStrategies unless the caller supplies one).
type Strategy string

const (
	// StrategyOwning is the default: LOCAL -> INHERITED -> IMPORTED ->
	// PARENT -> GLOBAL, first match wins.
	StrategyOwning Strategy = "Owning"
	// StrategyNonExpression behaves like Owning but does not ascend
	// through expression-kind namespaces when climbing PARENT, so a
	// name inside a nested expression body cannot accidentally bind to
	// a sibling of the expression itself.
	StrategyNonExpression Strategy = "NonExpression"
	// StrategyRelative resolves only LOCAL/INHERITED/IMPORTED of the
	// given namespace; it never ascends to PARENT or falls back to
	// GLOBAL. Used for the segment after the first in a qualified name.
	StrategyRelative Strategy = "Relative"
	// StrategyChaining resolves a feature-chain step (a.b.c) against
	// the type of the preceding step rather than against an enclosing
	// namespace.
	StrategyChaining Strategy = "Chaining"
	// StrategyTransition resolves a state-transition trigger/effect
	// reference against the owning state's features before falling
	// back to Owning precedence.
	StrategyTransition Strategy = "Transition"
	// StrategyGlobal skips LOCAL/INHERITED/IMPORTED/PARENT entirely and
	// looks the name up only among root packages and registered
	// library packages.
	StrategyGlobal Strategy = "Global"
)

// Registry holds the named scoping strategies available to the fixed-
// point driver, keyed by name so a RoleStrategy entry can name its
// resolution function as a plain string. Modeled on
// the pack's thread-safe alias-checked provider registry, adapted here
// to register resolution functions instead of language providers.
type Registry struct {
	mu         sync.RWMutex
	strategies map[Strategy]resolveFunc
}

// resolveFunc resolves name within namespace ns, returning the
// candidate ids found and which tier produced them (for diagnostics).
type resolveFunc func(rs *Resolver, ns candidateSite, name string) lookupResult

// NewRegistry constructs a registry preloaded with the six built-in
// strategies (§4.5 Scoping variants).
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[Strategy]resolveFunc)}
	r.mustRegister(StrategyOwning, resolveOwning)
	r.mustRegister(StrategyNonExpression, resolveNonExpression)
	r.mustRegister(StrategyRelative, resolveRelative)
	r.mustRegister(StrategyChaining, resolveChaining)
	r.mustRegister(StrategyTransition, resolveTransition)
	r.mustRegister(StrategyGlobal, resolveGlobal)
	return r
}

func (r *Registry) mustRegister(name Strategy, fn resolveFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Register installs a named strategy, failing if the name is already
// taken (§4.5 treats the strategy set as closed, but the registry
// keeps the same conflict-checked shape as the pack's other named
// registries for consistency and testability).
func (r *Registry) Register(name Strategy, fn resolveFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fn == nil {
		return fmt.Errorf("resolver: nil strategy function for %s", name)
	}
	if _, exists := r.strategies[name]; exists {
		return fmt.Errorf("resolver: strategy %s already registered", name)
	}
	r.strategies[name] = fn
	return nil
}

func (r *Registry) lookup(name Strategy) (resolveFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.strategies[name]
	return fn, ok
}
