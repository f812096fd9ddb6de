package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_String(t *testing.T) {
	t.Parallel()

	u := newUniverse()

	tests := []struct {
		typ  Type
		want string
	}{
		{u.Integer, "Integer"},
		{Top, "Object"},
		{ArrayClass(u.Integer), "Integer[]"},
		{u.listOf(u.String), "List<String>"},
		{Parameterize(u.Map, u.String, Extends(u.Number)), "Map<String, ? extends Number>"},
		{u.listOf(Super(u.Integer)), "List<? super Integer>"},
		{u.listOf(Unbounded()), "List<?>"},
		{ArrayOf(TypeVar("T")), "T[]"},
		{ArrayOf(u.listOf(u.String)), "List<String>[]"},
		{&Parameterized{Raw: u.List, Args: []Type{nil}}, "List<<nil>>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestParameterize_ArityMismatchPanics(t *testing.T) {
	t.Parallel()

	u := newUniverse()

	assert.PanicsWithValue(t,
		"generic: Map expects 2 type arguments, got 1",
		func() { Parameterize(u.Map, u.String) },
	)
	assert.NotPanics(t, func() { Parameterize(u.Map, u.String, u.Integer) })
}

func TestClass_Builders(t *testing.T) {
	t.Parallel()

	u := newUniverse()

	c := NewClass("Box", TypeVar("T")).Extends(u.Number).Implements(u.Serializable)
	assert.Same(t, u.Number, c.Super)
	assert.Equal(t, []Type{u.Serializable}, c.Interfaces)
	assert.Len(t, c.Params, 1)
	assert.False(t, c.IsInterface)
	assert.False(t, c.IsArray())

	assert.True(t, NewInterface("Marker").IsInterface)
	assert.True(t, ArrayClass(c).IsArray())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	u := newUniverse()
	tv := TypeVar("T")

	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same class", u.Integer, u.Integer, true},
		{"different classes", u.Integer, u.Number, false},
		{"same-named classes are distinct", NewClass("X"), NewClass("X"), false},
		{"same variable", tv, tv, true},
		{"same-named variables are distinct", TypeVar("T"), TypeVar("T"), false},
		{"parameterized", u.listOf(u.String), u.listOf(u.String), true},
		{"parameterized args differ", u.listOf(u.String), u.listOf(u.Integer), false},
		{"parameterized arity differs", u.listOf(u.String), &Parameterized{Raw: u.List}, false},
		{"wildcards", Extends(u.Number), Extends(u.Number), true},
		{"wildcard kinds differ", Extends(u.Number), Super(u.Number), false},
		{"arrays", ArrayOf(tv), ArrayOf(tv), true},
		{"array against class", ArrayOf(u.Integer), ArrayClass(u.Integer), false},
		{"array classes built separately", ArrayClass(u.Integer), ArrayClass(u.Integer), true},
		{"nested array classes", ArrayClass(ArrayClass(u.String)), ArrayClass(ArrayClass(u.String)), true},
		{"array classes of different components", ArrayClass(u.Integer), ArrayClass(u.Number), false},
		{"array class against its component", ArrayClass(u.Integer), u.Integer, false},
		{"nil and nil", nil, nil, true},
		{"nil and typed nil", nil, (*Class)(nil), true},
		{"nil and class", nil, u.Integer, false},
		{"unsupported", alien{}, alien{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "symmetric")
		})
	}
}
