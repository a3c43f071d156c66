package ajson

import (
	"strconv"

	"github.com/ib-77/outcome/pkg/result"
)

// Kind identifies the variant of a JSON Value.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindNull
	KindArray
	KindObject
)

// String returns the display name of the kind, as used in failure
// descriptions.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindNull:
		return "Null"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "JSON"
	}
}

// Value is a node of a JSON tree: one of String, Number, Boolean, Null,
// Array or Object. The set of variants is closed.
type Value interface {
	Kind() Kind
	sealed()
}

// String is a JSON string.
type String string

// Number is a JSON number, backed by a float64.
type Number float64

// Boolean is a JSON boolean.
type Boolean bool

// Null is the JSON null.
type Null struct{}

// Array is an ordered list of JSON values.
type Array []Value

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered list of members. Keeping members in a slice rather
// than a map preserves key order across a parse/serialize round trip; lookups
// scan linearly, which is fine at the sizes this tree is meant for.
type Object []Member

func (String) Kind() Kind { return KindString }

func (Number) Kind() Kind { return KindNumber }

func (Boolean) Kind() Kind { return KindBoolean }

func (Null) Kind() Kind { return KindNull }

func (Array) Kind() Kind { return KindArray }

func (Object) Kind() Kind { return KindObject }

func (String) sealed() {}

func (Number) sealed() {}

func (Boolean) sealed() {}

func (Null) sealed() {}

func (Array) sealed() {}

func (Object) sealed() {}

// Get returns the element at the given index, or nil when the index is out
// of bounds.
func (a Array) Get(index int) Value {
	if index >= 0 && index < len(a) {
		return a[index]
	}
	return nil
}

// MaybeGet returns the element at the given index and true, or nil and false
// when the index is out of bounds.
func (a Array) MaybeGet(index int) (Value, bool) {
	v := a.Get(index)
	return v, v != nil
}

// TryGet returns the element at the given index, or a no-such-element
// failure referencing this array.
func (a Array) TryGet(index int) result.Result[Value] {
	if v, ok := a.MaybeGet(index); ok {
		return result.Ok(v)
	}
	return result.Err[Value](NoElement(index, a))
}

// Get returns the value of the given key, or nil when the object has no such
// member.
func (o Object) Get(key string) Value {
	for _, m := range o {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// MaybeGet returns the value of the given key and true, or nil and false when
// the object has no such member.
func (o Object) MaybeGet(key string) (Value, bool) {
	v := o.Get(key)
	return v, v != nil
}

// TryGet returns the value of the given key, or a no-such-property failure
// referencing this object.
func (o Object) TryGet(key string) result.Result[Value] {
	if v, ok := o.MaybeGet(key); ok {
		return result.Ok(v)
	}
	return result.Err[Value](NoProperty(key, o))
}

// set replaces the value of an existing key, or appends a new member.
func (o Object) set(key string, v Value) Object {
	for i, m := range o {
		if m.Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}

// As checks that a value is of the expected variant, failing with a
// wrong-type failure naming both kinds when it is not.
func As[T Value](v Value) result.Result[T] {
	return as[T]("JSON", v)
}

// GetProperty looks a key up on an object and checks the variant of its
// value. A missing key yields a no-such-property failure, a present key of
// the wrong variant a wrong-type failure naming the key.
func GetProperty[T Value](o Object, key string) result.Result[T] {
	return result.Then(o.TryGet(key), func(v Value) result.Result[T] {
		return as[T](key, v)
	})
}

// GetElement indexes into an array and checks the variant of the element.
func GetElement[T Value](a Array, index int) result.Result[T] {
	return result.Then(a.TryGet(index), func(v Value) result.Result[T] {
		return as[T](strconv.Itoa(index), v)
	})
}

func as[T Value](path string, v Value) result.Result[T] {
	if t, ok := v.(T); ok {
		return result.Ok(t)
	}
	var want T
	return result.Err[T](WrongType(path, want.Kind(), v.Kind(), v))
}

// Equal reports structural equality of two JSON trees. Arrays compare
// positionally; objects compare by key regardless of member order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case String:
		return av == b.(String)
	case Number:
		return av == b.(Number)
	case Boolean:
		return av == b.(Boolean)
	case Null:
		return true
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv := b.(Object)
		if len(av) != len(bv) {
			return false
		}
		for _, m := range av {
			ov, ok := bv.MaybeGet(m.Key)
			if !ok || !Equal(m.Value, ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
