// Package generic decides whether types carrying generics are compatible.
//
// It is the engine the container uses to match an injection point's declared
// type against the types of registered bindings. Types are described with a
// small closed model, built by the caller:
//
//	e      := generic.TypeVar("E")
//	List   := generic.NewInterface("List", e)
//	String := generic.NewClass("String").Extends(generic.Top)
//
//	// class Names implements List<String>
//	Names := generic.NewClass("Names").Implements(generic.Parameterize(List, String))
//
// # Assignability
//
// IsAssignable(declared, candidate) answers "can a Names be injected into a
// List<String>?". It dispatches on the declared variant:
//
//	generic.IsAssignable(String, Names)                                      // class: nominal is-a
//	generic.IsAssignable(generic.Parameterize(List, String), Names)          // ancestor search + argument match
//	generic.IsAssignable(generic.TypeVar("T", Number, comparableOfT), Int)   // every bound must hold
//	generic.IsAssignable(generic.Extends(Number), Int)                       // ? extends / ? super
//	generic.IsAssignable(generic.ArrayOf(t), generic.ArrayClass(Int))        // generic arrays
//
// # Matching declared types
//
// TypesMatch(required, provided) compares two declared types, e.g. an injection
// point against a producer's advertised return type. TypeArgsMatch compares a
// single pair of type arguments.
//
// # Concurrency
//
// Every function is pure. Type values are never mutated by the package and may
// be shared between goroutines once built.
package generic
