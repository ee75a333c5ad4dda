// Package value defines the leaf value representation stored in
// element properties (§3 Value) and the qualified-name type used to
// address elements by path (§3 QualifiedName).
package value

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind tags which variant of the Value union is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindEnum
	KindRef
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindEnum:
		return "Enum"
	case KindRef:
		return "Ref"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Value is the tagged union stored as property leaves (§3). Exactly one
// of the typed fields is meaningful, selected by Kind; callers should go
// through the accessor methods rather than reading fields directly so
// that the zero Value behaves as Null.
type Value struct {
	kind      Kind
	boolVal   bool
	intVal    int64
	floatVal  float64
	strVal    string // String and Enum share this field
	refVal    uuid.UUID
	listVal   []Value
	mapVal    map[string]Value
}

// Null is the zero Value.
var Null = Value{kind: KindNull}

func Bool(b bool) Value            { return Value{kind: KindBool, boolVal: b} }
func Int(i int64) Value            { return Value{kind: KindInt, intVal: i} }
func Float(f float64) Value        { return Value{kind: KindFloat, floatVal: f} }
func String(s string) Value        { return Value{kind: KindString, strVal: s} }
func Enum(name string) Value       { return Value{kind: KindEnum, strVal: name} }
func Ref(id uuid.UUID) Value       { return Value{kind: KindRef, refVal: id} }
func List(vs ...Value) Value       { return Value{kind: KindList, listVal: vs} }
func Map(m map[string]Value) Value { return Value{kind: KindMap, mapVal: m} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsNull() bool  { return v.kind == KindNull }

func (v Value) Bool() (bool, bool)  { return v.boolVal, v.kind == KindBool }
func (v Value) Int() (int64, bool)  { return v.intVal, v.kind == KindInt }
func (v Value) Float() (float64, bool) { return v.floatVal, v.kind == KindFloat }

// String returns the string payload for both KindString and KindEnum
// (an enum's payload is its member name).
func (v Value) String() (string, bool) {
	return v.strVal, v.kind == KindString || v.kind == KindEnum
}

func (v Value) Ref() (uuid.UUID, bool) { return v.refVal, v.kind == KindRef }
func (v Value) List() ([]Value, bool)  { return v.listVal, v.kind == KindList }
func (v Value) Map() (map[string]Value, bool) { return v.mapVal, v.kind == KindMap }

// GoString renders a debug form, used by test failure messages.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "Null"
	case KindBool:
		return fmt.Sprintf("Bool(%v)", v.boolVal)
	case KindInt:
		return fmt.Sprintf("Int(%d)", v.intVal)
	case KindFloat:
		return fmt.Sprintf("Float(%v)", v.floatVal)
	case KindString:
		return fmt.Sprintf("String(%q)", v.strVal)
	case KindEnum:
		return fmt.Sprintf("Enum(%s)", v.strVal)
	case KindRef:
		return fmt.Sprintf("Ref(%s)", v.refVal)
	case KindList:
		parts := make([]string, len(v.listVal))
		for i, e := range v.listVal {
			parts[i] = e.GoString()
		}
		return "List(" + strings.Join(parts, ", ") + ")"
	case KindMap:
		return fmt.Sprintf("Map(%d entries)", len(v.mapVal))
	default:
		return "?"
	}
}

// Equal reports deep equality between two Values.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInt:
		return a.intVal == b.intVal
	case KindFloat:
		return a.floatVal == b.floatVal
	case KindString, KindEnum:
		return a.strVal == b.strVal
	case KindRef:
		return a.refVal == b.refVal
	case KindList:
		if len(a.listVal) != len(b.listVal) {
			return false
		}
		for i := range a.listVal {
			if !Equal(a.listVal[i], b.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.mapVal) != len(b.mapVal) {
			return false
		}
		for k, av := range a.mapVal {
			bv, ok := b.mapVal[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
