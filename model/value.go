package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedValue is wrapped whenever a configuration entry is not one
// of the supported scalar kinds.
var ErrUnsupportedValue = errors.New("model: unsupported value")

// Kind discriminates the scalar kinds an environment value can hold.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
)

// Value is a closed scalar union over {string, int, float, bool}.  Values
// of different kinds never compare equal: Int(5) and Float(5) are distinct
// so that diffs stay well defined across numeric kinds.
type Value struct {
	kind Kind
	text string
	num  int64
	real float64
	flag bool
}

// String creates a string value.
func String(value string) Value {
	return Value{kind: KindString, text: value}
}

// Int creates an integer value.
func Int(value int64) Value {
	return Value{kind: KindInt, num: value}
}

// Float creates a floating point value.
func Float(value float64) Value {
	return Value{kind: KindFloat, real: value}
}

// Bool creates a boolean value.
func Bool(value bool) Value {
	return Value{kind: KindBool, flag: value}
}

// FromInterface coerces a native Go scalar into a Value.  Signed and
// unsigned integers map to KindInt, float32/64 to KindFloat; any
// non-scalar type is rejected with ErrUnsupportedValue.
func FromInterface(value interface{}) (Value, error) {
	switch typed := value.(type) {
	case Value:
		return typed, nil
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Int(int64(toolbox.AsInt(typed))), nil
	case float32, float64:
		return Float(toolbox.AsFloat(typed)), nil
	case json.Number:
		if num, err := typed.Int64(); err == nil {
			return Int(num), nil
		}
		real, err := typed.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: malformed number %q", ErrUnsupportedValue, typed.String())
		}
		return Float(real), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}

// Kind returns the discriminator of this value.
func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the native Go representation of this value.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.num
	case KindFloat:
		return v.real
	case KindBool:
		return v.flag
	}
	return v.text
}

// Equal reports whether both values share the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.num == o.num
	case KindFloat:
		return v.real == o.real
	case KindBool:
		return v.flag == o.flag
	}
	return v.text == o.text
}

// String renders the value as a plain literal regardless of kind.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	}
	return v.text
}

// MarshalJSON renders the value as a bare JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a bare JSON scalar preserving the int/float
// distinction for numeric literals.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	decoded, err := FromInterface(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalYAML renders the value as a bare YAML scalar.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

// UnmarshalYAML decodes a YAML scalar node using its resolved tag so that
// numeric kinds survive a round trip.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected scalar node, got %v", ErrUnsupportedValue, node.Kind)
	}
	switch node.Tag {
	case "!!int":
		num, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
		}
		*v = Int(num)
	case "!!float":
		real, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
		}
		*v = Float(real)
	case "!!bool":
		flag, err := strconv.ParseBool(node.Value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
		}
		*v = Bool(flag)
	default:
		*v = String(node.Value)
	}
	return nil
}
