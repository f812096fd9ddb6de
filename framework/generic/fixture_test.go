package generic

// universe is a small Java-like class library shared by the tests.
//
//	interface Serializable
//	interface Comparable<T>
//	interface Collection<E>
//	interface List<E> extends Collection<E>
//	interface Map<K, V>
//	class Number implements Serializable
//	class Integer extends Number implements Comparable<Integer>
//	class String implements Serializable, Comparable<String>
//	class AtomicInteger extends Number
//	class AbstractList<E> implements List<E>
//	class ArrayList<E> extends AbstractList<E>
//	class StringList implements List<String>
//	class IntegerList implements List<Integer>
//	class RawList implements List
//	class Names extends ArrayList<String>
//	class Counts extends ArrayList<Integer>
//	class RawArrayList extends ArrayList
//	class NumberList implements List<Number>
//	class NestedList implements List<List<String>>
//	class Registry implements Map<String, Integer>
type universe struct {
	Serializable *Class
	Comparable   *Class
	Collection   *Class
	List         *Class
	Map          *Class

	Number        *Class
	Integer       *Class
	String        *Class
	AtomicInteger *Class

	AbstractList *Class
	ArrayList    *Class
	StringList   *Class
	IntegerList  *Class
	RawList      *Class
	Names        *Class
	Counts       *Class
	RawArrayList *Class
	NumberList   *Class
	NestedList   *Class
	Registry     *Class
}

func newUniverse() *universe {
	u := &universe{}

	u.Serializable = NewInterface("Serializable")
	u.Comparable = NewInterface("Comparable", TypeVar("T"))

	collectionE := TypeVar("E")
	u.Collection = NewInterface("Collection", collectionE)

	listE := TypeVar("E")
	u.List = NewInterface("List", listE).
		Implements(Parameterize(u.Collection, listE))

	u.Map = NewInterface("Map", TypeVar("K"), TypeVar("V"))

	u.Number = NewClass("Number").Extends(Top).Implements(u.Serializable)

	u.Integer = NewClass("Integer").Extends(u.Number)
	u.Integer.Implements(Parameterize(u.Comparable, u.Integer))

	u.String = NewClass("String").Extends(Top).Implements(u.Serializable)
	u.String.Implements(Parameterize(u.Comparable, u.String))

	u.AtomicInteger = NewClass("AtomicInteger").Extends(u.Number)

	abstractE := TypeVar("E")
	u.AbstractList = NewClass("AbstractList", abstractE).
		Extends(Top).
		Implements(Parameterize(u.List, abstractE))

	arrayE := TypeVar("E")
	u.ArrayList = NewClass("ArrayList", arrayE).
		Extends(Parameterize(u.AbstractList, arrayE))

	u.StringList = NewClass("StringList").Implements(Parameterize(u.List, u.String))
	u.IntegerList = NewClass("IntegerList").Implements(Parameterize(u.List, u.Integer))
	u.RawList = NewClass("RawList").Implements(u.List)
	u.Names = NewClass("Names").Extends(Parameterize(u.ArrayList, u.String))
	u.Counts = NewClass("Counts").Extends(Parameterize(u.ArrayList, u.Integer))
	u.RawArrayList = NewClass("RawArrayList").Extends(u.ArrayList)
	u.NumberList = NewClass("NumberList").Implements(Parameterize(u.List, u.Number))
	u.NestedList = NewClass("NestedList").
		Implements(Parameterize(u.List, Parameterize(u.List, u.String)))
	u.Registry = NewClass("Registry").
		Implements(Parameterize(u.Map, u.String, u.Integer))

	return u
}

// listOf is List<arg>.
func (u *universe) listOf(arg Type) *Parameterized {
	return Parameterize(u.List, arg)
}

// numberComparable is T extends Number & Comparable<T>.
func (u *universe) numberComparable() *Variable {
	t := TypeVar("T")
	t.Bounds = []Type{u.Number, Parameterize(u.Comparable, t)}
	return t
}

// alien is a type expression outside the five known variants.
type alien struct{}

func (alien) typeExpr()      {}
func (alien) String() string { return "alien" }
