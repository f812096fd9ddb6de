package generic

// Equal reports whether a and b are structurally identical type expressions.
// Classes and variables compare by identity, except array classes, which are
// equal when their components are.
func Equal(a, b Type) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	switch a := a.(type) {
	case *Class:
		b, ok := b.(*Class)
		if !ok {
			return false
		}
		return a == b || (a.IsArray() && b.IsArray() && Equal(a.Elem, b.Elem))
	case *Variable:
		b, ok := b.(*Variable)
		return ok && a == b
	case *Parameterized:
		b, ok := b.(*Parameterized)
		if !ok || a.Raw != b.Raw || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *Wildcard:
		b, ok := b.(*Wildcard)
		return ok && Equal(a.Upper, b.Upper) && Equal(a.Lower, b.Lower)
	case *Array:
		b, ok := b.(*Array)
		return ok && Equal(a.Elem, b.Elem)
	}
	return false
}
