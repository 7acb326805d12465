package format

import (
	"fmt"
	"strings"
)

// Default labels for Boolean
const (
	DefaultTrueLabel  = "Yes"
	DefaultFalseLabel = "No"
)

// BoolValue is a loosely typed truth value, such as a database column that
// stores 'True', 'Y', 1 or -1. It is one of Bool, Text or Number.
type BoolValue interface {
	boolValue()
}

// Bool is a native boolean
type Bool bool

// Text is a textual truth value such as "yes" or "T"
type Text string

// Number is a numeric truth value
type Number float64

func (Bool) boolValue()   {}
func (Text) boolValue()   {}
func (Number) boolValue() {}

var trueTokens = map[string]struct{}{
	"true": {},
	"t":    {},
	"yes":  {},
	"y":    {},
	"-1":   {},
	"1":    {},
}

// Truthy reports whether v represents true.
func Truthy(v BoolValue) bool {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Text:
		_, ok := trueTokens[strings.ToLower(string(v))]
		return ok
	case Number:
		return v == 1 || v == -1
	default:
		return false
	}
}

// Boolean returns trueLabel when v is truthy and falseLabel otherwise
func Boolean(v BoolValue, trueLabel, falseLabel string) string {
	if Truthy(v) {
		return trueLabel
	}
	return falseLabel
}

// BoolValueOf wraps an arbitrary template value in the matching BoolValue
func BoolValueOf(v any) BoolValue {
	switch v := v.(type) {
	case nil:
		return Text("")
	case BoolValue:
		return v
	case bool:
		return Bool(v)
	case *bool:
		if v == nil {
			return Bool(false)
		}
		return Bool(*v)
	case string:
		return Text(v)
	case []byte:
		return Text(v)
	case fmt.Stringer:
		return Text(v.String())
	case int:
		return Number(v)
	case int8:
		return Number(v)
	case int16:
		return Number(v)
	case int32:
		return Number(v)
	case int64:
		return Number(v)
	case uint:
		return Number(v)
	case uint8:
		return Number(v)
	case uint16:
		return Number(v)
	case uint32:
		return Number(v)
	case uint64:
		return Number(v)
	case float32:
		return Number(v)
	case float64:
		return Number(v)
	default:
		return Text(fmt.Sprint(v))
	}
}
