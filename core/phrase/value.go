package phrase

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/dmitrymomot/phrase/core/plural"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindBool
	KindLazy
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindLazy:
		return "lazy"
	default:
		return "missing"
	}
}

// Value is a parameter value: a string, a number, a boolean, or a lazy
// function evaluated only when its placeholder is reached. The zero Value is
// missing.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
	fn   func() string
}

// Params maps placeholder names to values.
type Params map[string]Value

// M is a convenience type for building Params from dynamic values.
type M map[string]any

// Params converts every entry with ValueOf.
func (m M) Params() Params {
	if len(m) == 0 {
		return nil
	}
	params := make(Params, len(m))
	for k, v := range m {
		params[k] = ValueOf(v)
	}
	return params
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value. Numbers select value-template phrases by
// plural category.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Int returns a numeric value for an integer.
func Int(n int) Value { return Number(float64(n)) }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Lazy returns a value computed by fn the first time its placeholder is
// reached during a render. A nil fn is a missing value.
func Lazy(fn func() string) Value {
	if fn == nil {
		return Value{}
	}
	return Value{kind: KindLazy, fn: fn}
}

// ValueOf converts a dynamic value: nil becomes missing, Go numeric kinds
// become numbers, functions without arguments returning a string become lazy,
// fmt.Stringer and everything else become strings.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case func() string:
		return Lazy(x)
	case fmt.Stringer:
		return String(x.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Func:
		if rv.IsNil() {
			return Value{}
		}
		if fn, ok := lazyFunc(rv); ok {
			return Lazy(fn)
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}
		return ValueOf(rv.Elem().Interface())
	}
	return String(fmt.Sprint(v))
}

// lazyFunc adapts named function types such as `type F func() string`.
func lazyFunc(rv reflect.Value) (func() string, bool) {
	t := rv.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 || t.Out(0).Kind() != reflect.String {
		return nil, false
	}
	return func() string {
		return rv.Call(nil)[0].String()
	}, true
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v carries no value.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric payload and whether v is a number.
func (v Value) Float() (float64, bool) { return v.num, v.kind == KindNumber }

// String returns the textual form of v: numbers use plural.FormatNumber,
// booleans "true"/"false", missing values "". Lazy values are evaluated on
// every call; the resolver memoizes them per render.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return plural.FormatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindLazy:
		return v.fn()
	default:
		return ""
	}
}

// resolve evaluates a lazy value into a string value.
func (v Value) resolve() Value {
	if v.kind == KindLazy {
		return String(v.fn())
	}
	return v
}
