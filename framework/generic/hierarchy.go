package generic

// ── Supertype walk ────────────────────────────────────────────────────────────

// FindAncestor searches the supertypes of candidate for an instantiation of
// raw. At each level the directly declared interfaces are inspected first, in
// declaration order, then the superclass; the walk then continues from the
// superclass. The first match wins.
//
// When the walk passes through a parameterized superclass, that class's type
// parameters are replaced by the supplied arguments, so
//
//	class Names extends ArrayList<String>   // ArrayList<E> implements List<E>
//
// yields List<String> for raw List. A raw superclass leaves them unbound.
//
// The result is a *Parameterized, or the *Class itself when the ancestor is
// declared raw. The candidate is never its own ancestor.
func FindAncestor(candidate *Class, raw *Class) (Type, bool) {
	if candidate == nil || raw == nil {
		return nil, false
	}

	var subst map[*Variable]Type
	for c := candidate; c != nil; {
		for _, iface := range c.Interfaces {
			if r, ok := rawOf(iface); ok && r == raw {
				return substitute(iface, subst), true
			}
		}

		if c.Super == nil {
			return nil, false
		}
		super := substitute(c.Super, subst)
		next, ok := rawOf(super)
		if !ok {
			return nil, false
		}
		if next == raw {
			return super, true
		}

		subst = bindParams(next, super)
		c = next
	}
	return nil, false
}

// bindParams maps the type parameters of class to the arguments of its
// instantiation t. A raw or malformed instantiation binds nothing.
func bindParams(class *Class, t Type) map[*Variable]Type {
	p, ok := t.(*Parameterized)
	if !ok || len(p.Args) == 0 || len(p.Args) != len(class.Params) {
		return nil
	}
	subst := make(map[*Variable]Type, len(p.Args))
	for i, param := range class.Params {
		subst[param] = p.Args[i]
	}
	return subst
}

// substitute replaces bound variables in t. Unchanged subtrees are shared.
func substitute(t Type, subst map[*Variable]Type) Type {
	if len(subst) == 0 || isNil(t) {
		return t
	}
	switch t := t.(type) {
	case *Variable:
		if replacement, ok := subst[t]; ok {
			return replacement
		}
	case *Parameterized:
		var args []Type
		for i, arg := range t.Args {
			replaced := substitute(arg, subst)
			if replaced != arg && args == nil {
				args = make([]Type, len(t.Args))
				copy(args, t.Args[:i])
			}
			if args != nil {
				args[i] = replaced
			}
		}
		if args != nil {
			return &Parameterized{Raw: t.Raw, Args: args}
		}
	case *Wildcard:
		upper, lower := substitute(t.Upper, subst), substitute(t.Lower, subst)
		if upper != t.Upper || lower != t.Lower {
			return &Wildcard{Upper: upper, Lower: lower}
		}
	case *Array:
		if elem := substitute(t.Elem, subst); elem != t.Elem {
			return &Array{Elem: elem}
		}
	}
	return t
}
