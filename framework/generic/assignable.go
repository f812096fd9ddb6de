package generic

import "github.com/hashicorp/go-set/v3"

// ── Assignability ─────────────────────────────────────────────────────────────

// IsAssignable reports whether a value of the concrete type candidate may be
// used where declared is expected.
//
//	list := generic.Parameterize(List, String)        // List<String>
//	ok, err := generic.IsAssignable(list, StringList) // StringList implements List<String>
//
// A false verdict is the normal "not compatible" outcome. The only error is
// ErrUnsupportedTypeKind, returned when declared (or a bound reached from it)
// is not one of the five known type variants.
func IsAssignable(declared Type, candidate *Class) (bool, error) {
	return newResolver().assignable(declared, candidate)
}

// assumption is a (variable, candidate) pair currently being checked.
type assumption struct {
	v *Variable
	c *Class
}

// resolver carries the per-call state of one top-level check.
type resolver struct {
	// assumed holds the variable checks in progress. Re-entering one of them
	// (T extends Comparable<T>) is taken to hold.
	assumed *set.Set[assumption]
}

func newResolver() *resolver {
	return &resolver{assumed: set.New[assumption](0)}
}

func (r *resolver) assignable(declared Type, candidate *Class) (bool, error) {
	if !supported(declared) {
		return false, &UnsupportedTypeKindError{Type: declared}
	}
	if candidate == nil {
		return false, nil
	}

	switch d := declared.(type) {
	case *Class:
		return isSubclass(d, candidate), nil
	case *Parameterized:
		return r.parameterized(d, candidate), nil
	case *Variable:
		return r.variable(d, candidate)
	case *Wildcard:
		return r.wildcard(d, candidate)
	case *Array:
		if !candidate.IsArray() {
			return false, nil
		}
		return r.assignable(d.Elem, candidate.Elem)
	}
	return false, &UnsupportedTypeKindError{Type: declared}
}

// parameterized checks R<A1..An> against the first R<B1..Bn> found among the
// ancestors of candidate.
func (r *resolver) parameterized(d *Parameterized, candidate *Class) bool {
	ancestor, ok := FindAncestor(candidate, d.Raw)
	if !ok {
		return false
	}
	p, ok := ancestor.(*Parameterized)
	if !ok || len(p.Args) == 0 || len(p.Args) != len(d.Args) {
		return false
	}
	for i := range d.Args {
		if !r.argsMatch(d.Args[i], p.Args[i]) {
			return false
		}
	}
	return true
}

// variable requires every bound of v to accept candidate.
func (r *resolver) variable(v *Variable, candidate *Class) (bool, error) {
	key := assumption{v: v, c: candidate}
	if r.assumed.Contains(key) {
		return true, nil
	}
	r.assumed.Insert(key)
	defer r.assumed.Remove(key)

	for _, bound := range v.upperBounds() {
		ok, err := r.assignable(bound, candidate)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// wildcard checks ? extends U as U, and ? super L by flipping the direction:
// the candidate must be a supertype of L.
func (r *resolver) wildcard(w *Wildcard, candidate *Class) (bool, error) {
	switch {
	case w.Upper != nil:
		return r.assignable(w.Upper, candidate)
	case w.Lower != nil:
		lower, ok := asCandidate(w.Lower)
		if !ok {
			return false, nil
		}
		return r.assignable(candidate, lower)
	}
	return true, nil
}

// ── Nominal subtyping ─────────────────────────────────────────────────────────

// isSubclass reports whether sub is super or inherits from it through any
// path of interfaces and superclasses. Type arguments are ignored.
func isSubclass(super, sub *Class) bool {
	if super == nil || sub == nil {
		return false
	}
	if super == Top || super == sub {
		return true
	}
	if super.IsArray() || sub.IsArray() {
		return super.IsArray() && sub.IsArray() && isSubclass(super.Elem, sub.Elem)
	}

	seen := set.New[*Class](0)
	stack := []*Class{sub}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c == super {
			return true
		}
		if !seen.Insert(c) {
			continue
		}
		if r, ok := rawOf(c.Super); ok {
			stack = append(stack, r)
		}
		for i := len(c.Interfaces) - 1; i >= 0; i-- {
			if r, ok := rawOf(c.Interfaces[i]); ok {
				stack = append(stack, r)
			}
		}
	}
	return false
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// supported reports whether t is a non-nil value of a known variant.
func supported(t Type) bool {
	if isNil(t) {
		return false
	}
	switch t.(type) {
	case *Class, *Parameterized, *Variable, *Wildcard, *Array:
		return true
	}
	return false
}

// asCandidate views a type argument as a concrete class: classes as
// themselves, parameterized types by their raw class, arrays of either as
// array classes.
func asCandidate(t Type) (*Class, bool) {
	switch t := t.(type) {
	case *Class, *Parameterized:
		return rawOf(t)
	case *Array:
		if t == nil {
			return nil, false
		}
		if elem, ok := asCandidate(t.Elem); ok {
			return ArrayClass(elem), true
		}
	}
	return nil, false
}
