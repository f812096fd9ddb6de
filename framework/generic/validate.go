package generic

import (
	"errors"

	"github.com/hashicorp/go-set/v3"
)

// Validate checks the structural invariants of t and returns every violation
// joined into one error, or nil.
//
//   - a parameterized type has exactly as many arguments as its raw class declares
//   - a wildcard has at most one bound
//   - no component is nil
//   - every node is one of the five known variants
//   - every class reached, directly or through its hierarchy, declares its
//     superclass and interfaces as well-formed classes or parameterized types
func Validate(t Type) error {
	v := &validator{
		seen:    set.New[*Variable](0),
		classes: set.New[*Class](0),
	}
	v.walk(t)
	return errors.Join(v.errs...)
}

type validator struct {
	// seen stops the walk on F-bounds such as T extends Comparable<T>.
	seen *set.Set[*Variable]

	// classes stops the walk on hierarchies such as Integer implements Comparable<Integer>.
	classes *set.Set[*Class]

	errs []error
}

func (v *validator) fail(t Type, reason string) {
	v.errs = append(v.errs, &MalformedTypeError{Type: t, Reason: reason})
}

func (v *validator) walk(t Type) {
	if isNil(t) {
		v.fail(nil, "nil type")
		return
	}
	switch t := t.(type) {
	case *Class:
		v.class(t)
	case *Parameterized:
		if t.Raw == nil {
			v.fail(t, "missing raw class")
			return
		}
		v.class(t.Raw)
		if len(t.Args) != len(t.Raw.Params) {
			v.fail(t, "argument count does not match arity")
		}
		for _, arg := range t.Args {
			v.walk(arg)
		}
	case *Variable:
		if !v.seen.Insert(t) {
			return
		}
		for _, bound := range t.Bounds {
			v.walk(bound)
		}
	case *Wildcard:
		if t.Upper != nil && t.Lower != nil {
			v.fail(t, "both upper and lower bound")
		}
		if t.Upper != nil {
			v.walk(t.Upper)
		}
		if t.Lower != nil {
			v.walk(t.Lower)
		}
	case *Array:
		v.walk(t.Elem)
	default:
		v.errs = append(v.errs, &UnsupportedTypeKindError{Type: t})
	}
}

// class checks the declared parameters and hierarchy links of c once.
func (v *validator) class(c *Class) {
	if !v.classes.Insert(c) {
		return
	}
	for _, param := range c.Params {
		v.walk(param)
	}
	if c.Elem != nil {
		v.class(c.Elem)
	}
	if c.Super != nil {
		v.link(c, c.Super)
	}
	for _, iface := range c.Interfaces {
		v.link(c, iface)
	}
}

func (v *validator) link(c *Class, t Type) {
	if isNil(t) {
		v.fail(c, "nil hierarchy link")
		return
	}
	switch t.(type) {
	case *Variable, *Wildcard, *Array:
		v.fail(c, "hierarchy link "+t.String()+" is not a class or parameterized type")
		return
	}
	v.walk(t)
}
