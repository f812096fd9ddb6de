package container

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/xerrors"

	"github.com/km-arc/go-inject/framework/generic"
)

var (
	// ErrUnsatisfied is returned when no binding satisfies a declared type.
	ErrUnsatisfied = xerrors.New("container: unsatisfied dependency")

	// ErrAmbiguous is returned when more than one binding satisfies a declared type.
	ErrAmbiguous = xerrors.New("container: ambiguous dependency")
)

// InjectionPoint is a field or constructor parameter waiting for a value.
type InjectionPoint struct {
	// Owner is the abstract being built. Empty means the abstract the
	// injecting container view is building, if any.
	Owner string

	// Name is the field or parameter name; it keys contextual overrides.
	Name string

	// Type is the declared type of the point.
	Type generic.Type

	// Optional points resolve to nil instead of failing when unsatisfied.
	Optional bool
}

// ── Resolution by type ────────────────────────────────────────────────────────

// satisfies asks the engine whether b can be used where declared is expected.
// A concrete class is checked for assignability; an advertised type is
// matched structurally.
func (b *binding) satisfies(declared generic.Type) (bool, error) {
	if b.class != nil {
		ok, err := generic.IsAssignable(declared, b.class)
		if err != nil || ok {
			return ok, err
		}
	}
	if b.provides != nil {
		return generic.TypesMatch(declared, b.provides), nil
	}
	return false, nil
}

// Candidates returns, in registration order, the abstracts of every typed
// binding that satisfies declared.
func (c *Container) Candidates(declared generic.Type) ([]string, error) {
	if err := generic.Validate(declared); err != nil {
		return nil, xerrors.Errorf("container: invalid declared type %v: %w", declared, err)
	}

	c.mu.RLock()
	log := c.log
	typed := make([]*binding, 0, len(c.order))
	for _, key := range c.order {
		if b := c.bindings[key]; b != nil && b.typed() {
			typed = append(typed, b)
		}
	}
	c.mu.RUnlock()

	var names []string
	for _, b := range typed {
		ok, err := b.satisfies(declared)
		if err != nil {
			return nil, xerrors.Errorf("container: checking [%s] against %v: %w", b.abstract, declared, err)
		}
		log.Debug().
			Str("abstract", b.abstract).
			Stringer("declared", declared).
			Bool("satisfies", ok).
			Msg("candidate checked")
		if ok {
			names = append(names, b.abstract)
		}
	}
	return names, nil
}

// MakeType resolves the single binding that satisfies declared.
//
//	repo, err := c.MakeType(generic.Parameterize(Repository, User))
func (c *Container) MakeType(declared generic.Type) (any, error) {
	names, err := c.Candidates(declared)
	if err != nil {
		return nil, err
	}

	log := c.logger()
	switch len(names) {
	case 0:
		log.Warn().Stringer("declared", declared).Msg("no binding satisfies type")
		return nil, xerrors.Errorf("no binding satisfies %v: %w", declared, ErrUnsatisfied)
	case 1:
		return c.make(names[0]), nil
	default:
		log.Warn().
			Stringer("declared", declared).
			Strs("candidates", names).
			Msg("type is satisfied by several bindings")
		return nil, xerrors.Errorf("%v is satisfied by [%s]: %w",
			declared, strings.Join(names, ", "), ErrAmbiguous)
	}
}

// Inject resolves an injection point. A contextual override registered with
// When(owner).Needs(name) takes precedence over resolution by type.
func (c *Container) Inject(point InjectionPoint) (any, error) {
	owner := point.Owner
	if owner == "" {
		owner = c.owner()
	}
	if owner != "" && point.Name != "" {
		if f := c.getContextual(owner, point.Name); f != nil {
			return c.build(owner+"."+point.Name, f, false), nil
		}
	}

	instance, err := c.MakeType(point.Type)
	if err != nil {
		if point.Optional && errors.Is(err, ErrUnsatisfied) {
			return nil, nil
		}
		return nil, xerrors.Errorf("container: injecting %s: %w", point, err)
	}
	return instance, nil
}

func (p InjectionPoint) String() string {
	name := p.Name
	if p.Owner != "" {
		name = p.Owner + "." + name
	}
	if name == "" {
		return fmt.Sprint(p.Type)
	}
	return fmt.Sprintf("%s %v", name, p.Type)
}

// ResolveType is MakeType with a type assertion.
//
//	repo, err := container.ResolveType[*UserRepository](c, generic.Parameterize(Repository, User))
func ResolveType[T any](c *Container, declared generic.Type) (T, error) {
	var zero T
	instance, err := c.MakeType(declared)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, xerrors.Errorf("container: ResolveType[%T]: %v resolved to %T", zero, declared, instance)
	}
	return typed, nil
}

// ── Introspection ─────────────────────────────────────────────────────────────

// BindingInfo describes a registered binding.
type BindingInfo struct {
	Name      string   `json:"name"`
	Class     string   `json:"class,omitempty"`
	Provides  string   `json:"provides,omitempty"`
	Singleton bool     `json:"singleton"`
	Resolved  bool     `json:"resolved"`
	Aliases   []string `json:"aliases,omitempty"`
}

// Describe returns every binding in registration order.
func (c *Container) Describe() []BindingInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]BindingInfo, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.describe(key))
	}
	return out
}

// DescribeBinding returns the binding registered under abstract or an alias of it.
func (c *Container) DescribeBinding(abstract string) (BindingInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	if _, ok := c.bindings[key]; !ok {
		return BindingInfo{}, false
	}
	return c.describe(key), true
}

// describe builds the info for key. Callers hold mu.
func (c *Container) describe(key string) BindingInfo {
	b := c.bindings[key]
	info := BindingInfo{Name: key, Singleton: b.singleton}
	if b.class != nil {
		info.Class = b.class.String()
	}
	if b.provides != nil {
		info.Provides = b.provides.String()
	}
	_, info.Resolved = c.instances[key]
	for alias, target := range c.aliases {
		if target == key {
			info.Aliases = append(info.Aliases, alias)
		}
	}
	slices.Sort(info.Aliases)
	return info
}
