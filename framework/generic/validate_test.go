package generic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_WellFormed(t *testing.T) {
	t.Parallel()

	u := newUniverse()

	selfList := TypeVar("T")
	selfList.Bounds = []Type{u.listOf(u.listOf(selfList))}

	for _, typ := range []Type{
		u.Integer,
		u.listOf(u.String),
		Parameterize(u.Map, u.String, Extends(u.Number)),
		u.numberComparable(),
		selfList,
		ArrayOf(TypeVar("T")),
		Unbounded(),
		Super(u.Integer),
		u.Names,
		u.Registry,
		ArrayClass(u.Integer),
	} {
		assert.NoError(t, Validate(typ), "%s", typ)
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	u := newUniverse()

	tests := []struct {
		name string
		typ  Type
	}{
		{"nil", nil},
		{"typed nil", (*Wildcard)(nil)},
		{"arity", &Parameterized{Raw: u.List, Args: []Type{u.String, u.String}}},
		{"missing raw", &Parameterized{Args: []Type{u.String}}},
		{"both bounds", &Wildcard{Upper: u.Number, Lower: u.Integer}},
		{"nil array component", &Array{}},
		{"nested", u.listOf(&Wildcard{Upper: u.Number, Lower: u.Integer})},
		{"in bound", TypeVar("T", &Parameterized{Raw: u.Map})},
		{"interface arity", NewClass("Pairs").Implements(&Parameterized{Raw: u.Map, Args: []Type{u.String}})},
		{"superclass arity", NewClass("Strings").Extends(&Parameterized{Raw: u.ArrayList})},
		{"nil interface", &Class{Name: "Holey", Interfaces: []Type{nil}}},
		{"wildcard superclass", NewClass("Loose").Extends(Unbounded())},
		{"variable interface", NewClass("Open").Implements(TypeVar("T"))},
		{"inherited", NewClass("Grandchild").Extends(NewClass("Child").Extends(&Parameterized{Raw: u.List}))},
		{"raw hierarchy", Parameterize(NewInterface("Box", TypeVar("T")).Implements(&Parameterized{Raw: u.List}), u.String)},
		{"array component hierarchy", ArrayClass(NewClass("Bad").Implements(&Parameterized{Raw: u.Map}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.typ)
			require.Error(t, err)

			var malformed *MalformedTypeError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestValidate_UnsupportedKind(t *testing.T) {
	t.Parallel()

	u := newUniverse()

	err := Validate(u.listOf(alien{}))
	assert.ErrorIs(t, err, ErrUnsupportedTypeKind)
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	u := newUniverse()

	typ := &Parameterized{
		Raw:  u.Map,
		Args: []Type{&Wildcard{Upper: u.Number, Lower: u.Integer}},
	}
	err := Validate(typ)
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Len(t, joined.Unwrap(), 2)
	assert.Contains(t, err.Error(), "argument count does not match arity")
	assert.Contains(t, err.Error(), "both upper and lower bound")
}

func TestValidate_HierarchyReportedOnce(t *testing.T) {
	t.Parallel()

	u := newUniverse()

	broken := NewClass("Pairs").Implements(&Parameterized{Raw: u.Map, Args: []Type{u.String}})
	err := Validate(Parameterize(u.Map, broken, broken))
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	require.Len(t, joined.Unwrap(), 1)

	var malformed *MalformedTypeError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "Map<String>", malformed.Type.String())
}
