// Package document exposes a loosely-typed, read-only view over a parsed JSON
// document. Every accessor answers "field X as type T, else default D" and
// never fails, so report builders can tolerate evolving upstream schemas.
package document

import (
	"math"
	"strconv"

	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/tidwall/gjson"
)

// maxExactInt bounds the floats Int converts without losing precision.
const maxExactInt = 1 << 53

// Value is a node of a JSON document. The zero Value is an absent node.
type Value struct {
	res gjson.Result
}

// Parse validates data and returns its root node.
func Parse(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, errs.ErrInvalidDocument
	}
	return Value{res: gjson.ParseBytes(data)}, nil
}

// MustParse is Parse for literals known to be valid, it panics otherwise.
func MustParse(raw string) Value {
	v, err := Parse([]byte(raw))
	if err != nil {
		panic(err)
	}
	return v
}

// Exists reports whether the node is present in the document.
func (v Value) Exists() bool {
	return v.res.Exists()
}

// IsObject reports whether the node is a JSON object.
func (v Value) IsObject() bool {
	return v.res.IsObject()
}

// IsArray reports whether the node is a JSON array.
func (v Value) IsArray() bool {
	return v.res.IsArray()
}

// Raw returns the node's raw JSON text.
func (v Value) Raw() string {
	return v.res.Raw
}

// Get returns the member named key of an object node. Keys are matched
// literally, and the last duplicate wins. Non objects have no members.
func (v Value) Get(key string) Value {
	var found Value
	if !v.IsObject() {
		return found
	}
	v.res.ForEach(func(k, val gjson.Result) bool {
		if k.String() == key {
			found = Value{res: val}
		}
		return true
	})
	return found
}

// String returns the node as a string if it is a JSON string, def otherwise.
func (v Value) String(def string) string {
	if v.res.Type != gjson.String {
		return def
	}
	return v.res.Str
}

// Int returns the node as an int if it is an integral JSON number in range,
// def otherwise.
func (v Value) Int(def int) int {
	if v.res.Type != gjson.Number {
		return def
	}
	if n, err := strconv.ParseInt(v.res.Raw, 10, strconv.IntSize); err == nil {
		return int(n)
	}
	f := v.res.Num
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return def
	}
	if f > maxExactInt || f < -maxExactInt {
		return def
	}
	return int(f)
}

// Bool returns the node as a bool if it is a JSON boolean, def otherwise.
func (v Value) Bool(def bool) bool {
	switch v.res.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return def
	}
}

// Len returns the number of members of an object or items of an array, 0 for
// every other node.
func (v Value) Len() int {
	if !v.IsObject() && !v.IsArray() {
		return 0
	}
	n := 0
	v.res.ForEach(func(_, _ gjson.Result) bool {
		n++
		return true
	})
	return n
}

// Objects returns the object items of an array node in order. Items that are
// not objects are skipped; a node that is not an array yields nothing.
func (v Value) Objects() []Value {
	if !v.IsArray() {
		return nil
	}
	var items []Value
	v.res.ForEach(func(_, item gjson.Result) bool {
		if item.IsObject() {
			items = append(items, Value{res: item})
		}
		return true
	})
	return items
}

// Each calls fn for every member of an object node in document order until
// fn returns false. Non objects have no members.
func (v Value) Each(fn func(key string, val Value) bool) {
	if !v.IsObject() {
		return
	}
	v.res.ForEach(func(k, val gjson.Result) bool {
		return fn(k.String(), Value{res: val})
	})
}
