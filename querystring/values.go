package querystring

import (
	"fmt"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type ValueKind int

const (
	ValueKindNone ValueKind = iota
	ValueKindScalar
	ValueKindFlag
	ValueKindList
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindNone:
		return "none"
	case ValueKindScalar:
		return "scalar"
	case ValueKindFlag:
		return "flag"
	case ValueKindList:
		return "list"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is a single query parameter value. Scalar is set for
// ValueKindScalar and List for ValueKindList; a Flag carries no data.
type Value struct {
	Kind   ValueKind
	Scalar string
	List   []string
}

func Null() Value {
	return Value{}
}

func Scalar(s string) Value {
	return Value{Kind: ValueKindScalar, Scalar: s}
}

func Flag() Value {
	return Value{Kind: ValueKindFlag}
}

func List(items ...string) Value {
	return Value{Kind: ValueKindList, List: append([]string(nil), items...)}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueKindScalar:
		return v.Scalar
	case ValueKindFlag:
		return flagText
	case ValueKindList:
		return "[" + strings.Join(v.List, ",") + "]"
	}
	return ""
}

// Values is a query mapping that remembers insertion order. Setting a key
// that is already present replaces its value in place.
//
// The zero value is an empty mapping ready to use. A nil *Values reads as
// empty.
type Values struct {
	m *orderedmap.OrderedMap[string, Value]
}

func NewValues() *Values {
	return &Values{m: orderedmap.New[string, Value]()}
}

// FromMap builds Values out of a map of dynamic values. Keys are sorted since
// a Go map has no order of its own.
func FromMap(m map[string]interface{}) *Values {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	v := NewValues()
	for _, k := range keys {
		v.Set(k, valueOf(m[k]))
	}
	return v
}

func valueOf(x interface{}) Value {
	switch x := x.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return Scalar(x)
	case bool:
		if x {
			return Flag()
		}
		return Scalar("false")
	case []string:
		return List(x...)
	case []interface{}:
		items := make([]string, len(x))
		for i, item := range x {
			items[i] = fmt.Sprint(item)
		}
		return List(items...)
	default:
		return Scalar(fmt.Sprint(x))
	}
}

func (v *Values) init() {
	if v.m == nil {
		v.m = orderedmap.New[string, Value]()
	}
}

func (v *Values) Set(key string, value Value) {
	v.init()
	v.m.Set(key, value)
}

func (v *Values) Get(key string) (Value, bool) {
	if v == nil || v.m == nil {
		return Value{}, false
	}
	return v.m.Get(key)
}

func (v *Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Add appends item to the list stored under key. A missing key, or one that
// holds anything other than a list, starts a new list.
func (v *Values) Add(key, item string) {
	v.init()
	cur, ok := v.m.Get(key)
	if !ok || cur.Kind != ValueKindList {
		v.m.Set(key, List(item))
		return
	}

	cur.List = append(cur.List, item)
	v.m.Set(key, cur)
}

func (v *Values) Del(key string) {
	if v == nil || v.m == nil {
		return
	}
	v.m.Delete(key)
}

func (v *Values) Len() int {
	if v == nil || v.m == nil {
		return 0
	}
	return v.m.Len()
}

func (v *Values) Keys() []string {
	keys := make([]string, 0, v.Len())
	v.Each(func(key string, _ Value) {
		keys = append(keys, key)
	})
	return keys
}

func (v *Values) Each(fn func(key string, value Value)) {
	if v == nil || v.m == nil {
		return
	}

	for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

func (v *Values) Encode() string {
	return Build(v)
}
