package generic

// ── Structural matching ───────────────────────────────────────────────────────

// TypesMatch reports whether the provided type satisfies the required type.
// Both are declared type expressions (a binding's advertised type against an
// injection point), not a concrete class.
//
//   - identical expressions match
//   - a required type variable matches anything
//   - two parameterized types match when the raw classes are the same and the
//     arguments match pairwise under TypeArgsMatch
//
// Everything else does not match. The check is order-sensitive.
func TypesMatch(required, provided Type) bool {
	return newResolver().typesMatch(required, provided)
}

func (r *resolver) typesMatch(a, b Type) bool {
	if Equal(a, b) {
		return true
	}
	if isNil(a) || isNil(b) {
		return false
	}
	if _, ok := a.(*Variable); ok {
		return true
	}

	pa, ok := a.(*Parameterized)
	if !ok {
		return false
	}
	pb, ok := b.(*Parameterized)
	if !ok || pa.Raw != pb.Raw || len(pa.Args) != len(pb.Args) {
		return false
	}
	for i := range pa.Args {
		if !r.argsMatch(pa.Args[i], pb.Args[i]) {
			return false
		}
	}
	return true
}

// TypeArgsMatch reports whether the type argument b is acceptable where the
// type argument a is declared. Rules, first match wins:
//
//  1. structurally equal arguments match
//  2. two distinct type variables never match
//  3. a single type variable must accept the other side through its bounds
//  4. two distinct wildcards never match
//  5. a single wildcard must accept the other side through its bound
//  6. two parameterized types match when their raw classes are assignable;
//     their own arguments are not compared
//  7. two classes match when b is assignable to a
//
// Anything else does not match.
func TypeArgsMatch(a, b Type) bool {
	return newResolver().argsMatch(a, b)
}

func (r *resolver) argsMatch(a, b Type) bool {
	if Equal(a, b) {
		return true
	}
	if isNil(a) || isNil(b) {
		return false
	}

	va, aVar := a.(*Variable)
	vb, bVar := b.(*Variable)
	switch {
	case aVar && bVar:
		return false
	case aVar:
		return r.accepts(va, b)
	case bVar:
		return r.accepts(vb, a)
	}

	wa, aWild := a.(*Wildcard)
	wb, bWild := b.(*Wildcard)
	switch {
	case aWild && bWild:
		return false
	case aWild:
		return r.accepts(wa, b)
	case bWild:
		return r.accepts(wb, a)
	}

	if pa, ok := a.(*Parameterized); ok {
		if pb, ok := b.(*Parameterized); ok {
			return isSubclass(pa.Raw, pb.Raw)
		}
		return false
	}
	if ca, ok := a.(*Class); ok {
		if cb, ok := b.(*Class); ok {
			return isSubclass(ca, cb)
		}
	}
	return false
}

// accepts runs the assignability check of declared against other viewed as a
// concrete candidate. Failures of any kind count as no match.
func (r *resolver) accepts(declared, other Type) bool {
	candidate, ok := asCandidate(other)
	if !ok {
		return false
	}
	ok, err := r.assignable(declared, candidate)
	return err == nil && ok
}
