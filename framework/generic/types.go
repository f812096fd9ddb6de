package generic

import (
	"fmt"
	"strings"
)

// ── Type expressions ──────────────────────────────────────────────────────────

// Type is a type expression as seen at an injection point or on a binding.
//
// The set of variants is closed: *Class, *Parameterized, *Variable, *Wildcard
// and *Array. Anything else reaching IsAssignable is reported as
// ErrUnsupportedTypeKind.
type Type interface {
	fmt.Stringer
	typeExpr()
}

// Class is a nominal type with its declared hierarchy links.
//
//	// Java: class ArrayList<E> extends AbstractList<E> implements List<E>
//	arrayList := &generic.Class{Name: "ArrayList", Params: []*generic.Variable{e}}
//	arrayList.Super = generic.Parameterize(abstractList, e)
//	arrayList.Interfaces = []generic.Type{generic.Parameterize(list, e)}
type Class struct {
	Name string

	// Params are the declared type parameters; len(Params) is the arity.
	Params []*Variable

	// Interfaces are the directly implemented interfaces, in declaration order.
	// Each is a *Class or a *Parameterized.
	Interfaces []Type

	// Super is the direct superclass (*Class or *Parameterized), nil if none.
	Super Type

	IsInterface bool

	// Elem is the component class of an array class, nil otherwise.
	Elem *Class
}

// Parameterized is an instantiation R<A1..An> of a generic raw class.
type Parameterized struct {
	Raw  *Class
	Args []Type
}

// Variable is a type variable. Two variables are the same only if they are the
// same pointer; the name is for diagnostics.
type Variable struct {
	Name   string
	Bounds []Type
}

// Wildcard is ?, ? extends Upper or ? super Lower. At most one bound is set.
type Wildcard struct {
	Upper Type
	Lower Type
}

// Array is a generic array type expression such as T[] or List<String>[].
type Array struct {
	Elem Type
}

func (*Class) typeExpr()         {}
func (*Parameterized) typeExpr() {}
func (*Variable) typeExpr()      {}
func (*Wildcard) typeExpr()      {}
func (*Array) typeExpr()         {}

// Top is the root of every hierarchy. Every class is assignable to it.
var Top = &Class{Name: "Object"}

// ── Constructors ──────────────────────────────────────────────────────────────

// NewClass creates a class with the given type parameters.
func NewClass(name string, params ...*Variable) *Class {
	return &Class{Name: name, Params: params}
}

// NewInterface creates an interface with the given type parameters.
func NewInterface(name string, params ...*Variable) *Class {
	return &Class{Name: name, Params: params, IsInterface: true}
}

// Extends sets the superclass and returns c for chaining.
func (c *Class) Extends(super Type) *Class {
	c.Super = super
	return c
}

// Implements appends interfaces and returns c for chaining.
func (c *Class) Implements(interfaces ...Type) *Class {
	c.Interfaces = append(c.Interfaces, interfaces...)
	return c
}

// ArrayClass returns the concrete array class whose component is elem.
func ArrayClass(elem *Class) *Class {
	return &Class{Name: elem.Name + "[]", Elem: elem}
}

// Parameterize instantiates raw with args. It panics when the number of
// arguments does not match the declared arity of raw.
func Parameterize(raw *Class, args ...Type) *Parameterized {
	if len(args) != len(raw.Params) {
		panic(fmt.Sprintf("generic: %s expects %d type arguments, got %d",
			raw.Name, len(raw.Params), len(args)))
	}
	return &Parameterized{Raw: raw, Args: args}
}

// TypeVar creates a type variable with an intersection of upper bounds.
func TypeVar(name string, bounds ...Type) *Variable {
	return &Variable{Name: name, Bounds: bounds}
}

// Unbounded returns the wildcard ?.
func Unbounded() *Wildcard { return &Wildcard{} }

// Extends returns the wildcard ? extends upper.
func Extends(upper Type) *Wildcard { return &Wildcard{Upper: upper} }

// Super returns the wildcard ? super lower.
func Super(lower Type) *Wildcard { return &Wildcard{Lower: lower} }

// ArrayOf returns the array type expression elem[].
func ArrayOf(elem Type) *Array { return &Array{Elem: elem} }

// ── Accessors ─────────────────────────────────────────────────────────────────

// IsArray reports whether c is an array class.
func (c *Class) IsArray() bool { return c.Elem != nil }

// upperBounds returns the bounds of v; an unbounded variable is bounded by Top.
func (v *Variable) upperBounds() []Type {
	if len(v.Bounds) == 0 {
		return []Type{Top}
	}
	return v.Bounds
}

// rawOf returns the raw class of a class or parameterized type.
func rawOf(t Type) (*Class, bool) {
	switch t := t.(type) {
	case *Class:
		return t, t != nil
	case *Parameterized:
		if t != nil && t.Raw != nil {
			return t.Raw, true
		}
	}
	return nil, false
}

// isNil reports whether t is nil or a typed nil pointer.
func isNil(t Type) bool {
	switch t := t.(type) {
	case nil:
		return true
	case *Class:
		return t == nil
	case *Parameterized:
		return t == nil
	case *Variable:
		return t == nil
	case *Wildcard:
		return t == nil
	case *Array:
		return t == nil
	}
	return false
}

// ── Printing ──────────────────────────────────────────────────────────────────

func (c *Class) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

func (p *Parameterized) String() string {
	var b strings.Builder
	b.WriteString(p.Raw.String())
	b.WriteByte('<')
	for i, arg := range p.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(typeString(arg))
	}
	b.WriteByte('>')
	return b.String()
}

func (v *Variable) String() string { return v.Name }

func (w *Wildcard) String() string {
	switch {
	case w.Upper != nil:
		return "? extends " + typeString(w.Upper)
	case w.Lower != nil:
		return "? super " + typeString(w.Lower)
	}
	return "?"
}

func (a *Array) String() string { return typeString(a.Elem) + "[]" }

func typeString(t Type) string {
	if isNil(t) {
		return "<nil>"
	}
	return t.String()
}
