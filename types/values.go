package types

import (
	"fmt"
	"time"
)

// Kind identifies which member of the wire value union a Value is.
// A value's kind fully determines which payload fields are present.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindList
	KindMap
	KindNode
	KindRelationship
	KindUnboundRelationship
	KindPath
	KindPoint2D
	KindPoint3D
	KindDuration
	KindDate
	KindTime
	KindLocalTime
	KindDateTime
	KindLocalDateTime
	KindDateTimeZoneId
)

var kindNames = [...]string{
	KindNull:                "Null",
	KindBool:                "Boolean",
	KindInt:                 "Integer",
	KindFloat:               "Float",
	KindString:              "String",
	KindBytes:               "Bytes",
	KindList:                "List",
	KindMap:                 "Map",
	KindNode:                "Node",
	KindRelationship:        "Relationship",
	KindUnboundRelationship: "UnboundRelationship",
	KindPath:                "Path",
	KindPoint2D:             "Point2D",
	KindPoint3D:             "Point3D",
	KindDuration:            "Duration",
	KindDate:                "Date",
	KindTime:                "Time",
	KindLocalTime:           "LocalTime",
	KindDateTime:            "DateTime",
	KindLocalDateTime:       "LocalDateTime",
	KindDateTimeZoneId:      "DateTimeZoneId",
}

// String gets the kind name used in decode diagnostics
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value represents any value the protocol can carry. The set of
// implementations is closed: every Value is exactly one of the kinds
// enumerated above.
type Value interface {
	Kind() Kind
}

// Null Represents the absence of a value
type Null struct{}

// Bool Represents a boolean value
type Bool bool

// Int Represents a 64-bit signed integer value
type Int int64

// Float Represents a 64-bit float value
type Float float64

// String Represents a UTF-8 string value
type String string

// Bytes Represents an opaque byte sequence
type Bytes []byte

// List Represents an ordered, possibly heterogeneous list of values
type List []Value

// Map Represents a map from string keys to values
type Map map[string]Value

// Kind gets the classification tag for the value
func (Null) Kind() Kind { return KindNull }

// Kind gets the classification tag for the value
func (Bool) Kind() Kind { return KindBool }

// Kind gets the classification tag for the value
func (Int) Kind() Kind { return KindInt }

// Kind gets the classification tag for the value
func (Float) Kind() Kind { return KindFloat }

// Kind gets the classification tag for the value
func (String) Kind() Kind { return KindString }

// Kind gets the classification tag for the value
func (Bytes) Kind() Kind { return KindBytes }

// Kind gets the classification tag for the value
func (List) Kind() Kind { return KindList }

// Kind gets the classification tag for the value
func (Map) Kind() Kind { return KindMap }

// ValueOf converts a native Go value into its wire value representation.
// It is a convenience for building query parameters; values that are
// already a Value pass through unchanged.
func ValueOf(v interface{}) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	case string:
		return String(val), nil
	case []byte:
		return Bytes(val), nil
	case time.Time:
		return NewDateTime(val), nil
	case []interface{}:
		list := make(List, len(val))
		for i, item := range val {
			conv, err := ValueOf(item)
			if err != nil {
				return nil, err
			}
			list[i] = conv
		}
		return list, nil
	case []string:
		list := make(List, len(val))
		for i, item := range val {
			list[i] = String(item)
		}
		return list, nil
	case map[string]interface{}:
		m := make(Map, len(val))
		for k, item := range val {
			conv, err := ValueOf(item)
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported parameter type: %T", v)
	}
}
