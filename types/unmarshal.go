package types

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/graphwire/golang-bolt-client/errors"
)

// Decoder converts wire values into arbitrary Go destinations. The zero
// value ignores wire properties the destination does not declare; with
// Strict set, such properties fail the decode instead.
type Decoder struct {
	Strict bool
}

// Unmarshal decodes a wire value into dest using the default, non-strict
// decoder. dest must be a non-nil pointer.
func Unmarshal(v Value, dest interface{}) error {
	return Decoder{}.Unmarshal(v, dest)
}

// Unmarshal decodes a wire value into dest. dest must be a non-nil pointer.
func (d Decoder) Unmarshal(v Value, dest interface{}) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("decode destination must be a non-nil pointer, got %T", dest)
	}
	if v == nil {
		v = Null{}
	}
	return d.decode(v, rv.Elem())
}

var (
	valueType   = reflect.TypeOf((*Value)(nil)).Elem()
	timeType    = reflect.TypeOf(time.Time{})
	idType      = reflect.TypeOf(Id(0))
	startIdType = reflect.TypeOf(StartNodeId(0))
	endIdType   = reflect.TypeOf(EndNodeId(0))
	labelsType  = reflect.TypeOf(Labels(nil))
	relTypeType = reflect.TypeOf(Type(""))
	keysType    = reflect.TypeOf(Keys(nil))
	secondsType = reflect.TypeOf(Seconds(0))
	millisType  = reflect.TypeOf(Millis(0))
	microsType  = reflect.TypeOf(Micros(0))
)

func (d Decoder) decode(v Value, rv reflect.Value) error {
	switch rv.Type() {
	case valueType:
		out, err := d.roundTrip(v)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(out))
		return nil
	case timeType:
		return d.decodeTime(v, rv)
	}
	if reflect.TypeOf(v) == rv.Type() {
		rv.Set(reflect.ValueOf(copyValue(v)))
		return nil
	}

	switch rv.Kind() {
	case reflect.Ptr:
		if v.Kind() == KindNull {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return d.decode(v, rv.Elem())

	case reflect.Bool:
		b, ok := v.(Bool)
		if !ok {
			return mismatch(v, rv.Type().String())
		}
		rv.SetBool(bool(b))
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := d.integer(v, rv.Type())
		if err != nil {
			return err
		}
		if rv.OverflowInt(i) {
			return &BoundsError{Value: i, Target: rv.Type().String()}
		}
		rv.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := d.integer(v, rv.Type())
		if err != nil {
			return err
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return &BoundsError{Value: i, Target: rv.Type().String()}
		}
		rv.SetUint(uint64(i))
		return nil

	case reflect.Float32, reflect.Float64:
		f, ok := v.(Float)
		if !ok {
			return mismatch(v, rv.Type().String())
		}
		rv.SetFloat(float64(f))
		return nil

	case reflect.String:
		switch val := v.(type) {
		case String:
			rv.SetString(string(val))
		case DateTime:
			rv.SetString(val.Time().Format(time.RFC3339Nano))
		default:
			return mismatch(v, rv.Type().String())
		}
		return nil

	case reflect.Slice:
		return d.decodeSlice(v, rv)

	case reflect.Array:
		return d.decodeTuple(v, rv)

	case reflect.Map:
		return d.decodeMap(v, rv)

	case reflect.Struct:
		return d.decodeStruct(v, rv)

	case reflect.Interface:
		if rv.Type().NumMethod() == 0 {
			if v.Kind() == KindNull {
				rv.Set(reflect.Zero(rv.Type()))
			} else {
				rv.Set(reflect.ValueOf(v))
			}
			return nil
		}
		return mismatch(v, rv.Type().String())

	default:
		return mismatch(v, rv.Type().String())
	}
}

// integer reads the 64-bit integer representation of a value. DateTime
// values read as a timestamp whose unit is selected by the destination
// type; any other integer destination gets nanoseconds.
func (d Decoder) integer(v Value, dest reflect.Type) (int64, error) {
	switch val := v.(type) {
	case Int:
		return int64(val), nil
	case DateTime:
		t := val.Time()
		switch dest {
		case secondsType:
			return t.Unix(), nil
		case millisType:
			return t.UnixMilli(), nil
		case microsType:
			return t.UnixMicro(), nil
		default:
			return t.UnixNano(), nil
		}
	default:
		return 0, mismatch(v, dest.String())
	}
}

func (d Decoder) decodeTime(v Value, rv reflect.Value) error {
	switch val := v.(type) {
	case DateTime:
		rv.Set(reflect.ValueOf(val.Time()))
	case LocalDateTime:
		rv.Set(reflect.ValueOf(val.Time()))
	case DateTimeZoneId:
		t, err := val.Time()
		if err != nil {
			return errors.Wrap(err, "cannot resolve zone id %q", val.ZoneId)
		}
		rv.Set(reflect.ValueOf(t))
	case Date:
		rv.Set(reflect.ValueOf(val.Time()))
	case Time:
		rv.Set(reflect.ValueOf(val.Time()))
	case LocalTime:
		rv.Set(reflect.ValueOf(val.Time()))
	default:
		return mismatch(v, "time.Time")
	}
	return nil
}

// decodeSlice handles sequence destinations: lists element by element,
// byte values as individual bytes, points as positional coordinates.
func (d Decoder) decodeSlice(v Value, rv reflect.Value) error {
	switch val := v.(type) {
	case List:
		out := reflect.MakeSlice(rv.Type(), len(val), len(val))
		for i, item := range val {
			if err := d.decode(item, out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil
	case Bytes:
		out := reflect.MakeSlice(rv.Type(), len(val), len(val))
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			for i, b := range val {
				out.Index(i).SetUint(uint64(b))
			}
		} else {
			for i, b := range val {
				if err := d.decode(Int(b), out.Index(i)); err != nil {
					return err
				}
			}
		}
		rv.Set(out)
		return nil
	case Point2D:
		return d.decodeCoordinates(val.coordinates(), rv)
	case Point3D:
		return d.decodeCoordinates(val.coordinates(), rv)
	default:
		return mismatch(v, rv.Type().String())
	}
}

func (d Decoder) decodeCoordinates(coords []float64, rv reflect.Value) error {
	out := reflect.MakeSlice(rv.Type(), len(coords), len(coords))
	for i, c := range coords {
		if err := d.decode(Float(c), out.Index(i)); err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}

// decodeTuple handles fixed-arity destinations. Lists must match the
// destination length exactly. Graph entities and points decode their
// fixed payloads positionally. Maps are rejected outright: their
// iteration order is not guaranteed, so a positional mapping from an
// unordered structure would be a silent correctness bug.
func (d Decoder) decodeTuple(v Value, rv reflect.Value) error {
	var items List
	switch val := v.(type) {
	case List:
		items = val
	case Map:
		return &UnsupportedShapeError{Found: KindMap, Shape: "a positional tuple"}
	case Point2D:
		items = List{Float(val.X), Float(val.Y)}
	case Point3D:
		items = List{Float(val.X), Float(val.Y), Float(val.Z)}
	case Node:
		labels := make(List, len(val.Labels))
		for i, l := range val.Labels {
			labels[i] = String(l)
		}
		items = List{Int(val.NodeIdentity), labels, val.Properties}
	case Relationship:
		items = List{
			Int(val.RelIdentity), Int(val.StartNodeIdentity), Int(val.EndNodeIdentity),
			String(val.Type), val.Properties,
		}
	case UnboundRelationship:
		items = List{Int(val.RelIdentity), String(val.Type), val.Properties}
	case Path:
		items = List{val.nodeList(), val.relationshipList()}
	default:
		return mismatch(v, rv.Type().String())
	}
	if len(items) != rv.Len() {
		return &KindMismatchError{
			Found:    v.Kind(),
			Expected: fmt.Sprintf("%s (%d elements for %d positions)", rv.Type(), len(items), rv.Len()),
		}
	}
	for i, item := range items {
		if err := d.decode(item, rv.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func (d Decoder) decodeMap(v Value, rv reflect.Value) error {
	t := rv.Type()
	if t.Key().Kind() != reflect.String {
		return mismatch(v, t.String())
	}
	entries, err := mapView(v)
	if err != nil {
		return mismatch(v, t.String())
	}
	out := reflect.MakeMapWithSize(t, len(entries))
	for k, item := range entries {
		ev := reflect.New(t.Elem()).Elem()
		if err := d.decode(item, ev); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), ev)
	}
	rv.Set(out)
	return nil
}

// mapView exposes the key/value view of a value: maps directly, graph
// entities through their property map, paths and points through their
// fixed payload fields.
func mapView(v Value) (Map, error) {
	switch val := v.(type) {
	case Map:
		return val, nil
	case Node:
		return val.Properties, nil
	case Relationship:
		return val.Properties, nil
	case UnboundRelationship:
		return val.Properties, nil
	case Path:
		return Map{"nodes": val.nodeList(), "relationships": val.relationshipList()}, nil
	case Point2D:
		return Map{"srid": Int(val.SpatialRefID), "x": Float(val.X), "y": Float(val.Y)}, nil
	case Point3D:
		return Map{
			"srid": Int(val.SpatialRefID),
			"x":    Float(val.X), "y": Float(val.Y), "z": Float(val.Z),
		}, nil
	default:
		return nil, mismatch(v, "a map")
	}
}

// entityMeta is the structural metadata of a graph entity, used to fill
// marker-typed struct fields.
type entityMeta struct {
	id        int64
	start     int64
	end       int64
	typ       string
	labels    []string
	hasId     bool
	hasEnds   bool
	hasType   bool
	hasLabels bool
}

// decodeStruct handles struct destinations. Ordinary fields resolve
// against the value's property (or payload) keys; fields whose type is
// one of the metadata markers resolve against structural metadata
// instead. The markers are matched by type identity, not field name.
func (d Decoder) decodeStruct(v Value, rv reflect.Value) error {
	t := rv.Type()
	var meta entityMeta
	switch val := v.(type) {
	case Node:
		meta = entityMeta{id: val.NodeIdentity, labels: val.Labels, hasId: true, hasLabels: true}
	case Relationship:
		meta = entityMeta{
			id: val.RelIdentity, start: val.StartNodeIdentity, end: val.EndNodeIdentity,
			typ: val.Type, hasId: true, hasEnds: true, hasType: true,
		}
	case UnboundRelationship:
		meta = entityMeta{id: val.RelIdentity, typ: val.Type, hasId: true, hasType: true}
	}
	props, err := mapView(v)
	if err != nil {
		return mismatch(v, t.String())
	}

	consumed := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		fv := rv.Field(i)
		switch f.Type {
		case idType:
			if !meta.hasId {
				return mismatch(v, "types.Id")
			}
			fv.SetInt(meta.id)
			continue
		case startIdType:
			if !meta.hasEnds {
				return mismatch(v, "types.StartNodeId")
			}
			fv.SetInt(meta.start)
			continue
		case endIdType:
			if !meta.hasEnds {
				return mismatch(v, "types.EndNodeId")
			}
			fv.SetInt(meta.end)
			continue
		case relTypeType:
			if !meta.hasType {
				return mismatch(v, "types.Type")
			}
			fv.SetString(meta.typ)
			continue
		case labelsType:
			if !meta.hasLabels {
				return mismatch(v, "types.Labels")
			}
			fv.Set(reflect.ValueOf(Labels(append([]string(nil), meta.labels...))))
			continue
		case keysType:
			if !meta.hasId {
				return mismatch(v, "types.Keys")
			}
			keys := make(Keys, len(props))
			for k := range props {
				keys[k] = struct{}{}
			}
			fv.Set(reflect.ValueOf(keys))
			continue
		}

		name, explicit := fieldName(f)
		if name == "" {
			continue
		}
		prop, key, ok := lookupProp(props, name, explicit)
		if !ok {
			continue
		}
		consumed[key] = true
		if err := d.decode(prop, fv); err != nil {
			return err
		}
	}

	if d.Strict {
		for k := range props {
			if !consumed[k] {
				return &UnknownFieldError{Field: k, Target: t.String()}
			}
		}
	}
	return nil
}

// fieldName resolves the wire name of a struct field from its bolt tag,
// falling back to the field name. The second return reports whether the
// name was given explicitly by a tag.
func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("bolt")
	if !ok {
		return f.Name, false
	}
	if tag == "-" {
		return "", true
	}
	return tag, true
}

func lookupProp(props Map, name string, explicit bool) (Value, string, bool) {
	if v, ok := props[name]; ok {
		return v, name, true
	}
	if !explicit {
		lower := strings.ToLower(name)
		if v, ok := props[lower]; ok {
			return v, lower, true
		}
	}
	return nil, "", false
}

// roundTrip re-produces a value from its own tag, as used when the decode
// destination is the Value union itself. The month-granular and
// zone-less temporal kinds have no struct decode path; rather than guess
// a layout they fail loudly.
func (d Decoder) roundTrip(v Value) (Value, error) {
	switch val := v.(type) {
	case Null, Bool, Int, Float, String, Point2D, Point3D, DateTime:
		return val, nil
	case Bytes:
		return Bytes(append([]byte(nil), val...)), nil
	case List:
		out := make(List, len(val))
		for i, item := range val {
			rt, err := d.roundTrip(item)
			if err != nil {
				return nil, err
			}
			out[i] = rt
		}
		return out, nil
	case Map:
		return d.roundTripMap(val)
	case Node:
		props, err := d.roundTripMap(val.Properties)
		if err != nil {
			return nil, err
		}
		return Node{
			NodeIdentity: val.NodeIdentity,
			Labels:       append([]string(nil), val.Labels...),
			Properties:   props,
		}, nil
	case Relationship:
		props, err := d.roundTripMap(val.Properties)
		if err != nil {
			return nil, err
		}
		val.Properties = props
		return val, nil
	case UnboundRelationship:
		props, err := d.roundTripMap(val.Properties)
		if err != nil {
			return nil, err
		}
		val.Properties = props
		return val, nil
	case Path:
		out := Path{
			Nodes:         make([]Node, len(val.Nodes)),
			Relationships: make([]UnboundRelationship, len(val.Relationships)),
		}
		for i, n := range val.Nodes {
			rt, err := d.roundTrip(n)
			if err != nil {
				return nil, err
			}
			out.Nodes[i] = rt.(Node)
		}
		for i, r := range val.Relationships {
			rt, err := d.roundTrip(r)
			if err != nil {
				return nil, err
			}
			out.Relationships[i] = rt.(UnboundRelationship)
		}
		return out, nil
	case Duration, Date, Time, LocalTime, LocalDateTime, DateTimeZoneId:
		return nil, &UnsupportedShapeError{Found: v.Kind(), Shape: "a dynamic value"}
	default:
		return nil, mismatch(v, "a dynamic value")
	}
}

func (d Decoder) roundTripMap(m Map) (Map, error) {
	out := make(Map, len(m))
	for k, item := range m {
		rt, err := d.roundTrip(item)
		if err != nil {
			return nil, err
		}
		out[k] = rt
	}
	return out, nil
}

// copyValue deep-copies the mutable parts of a value so a decoded
// result never aliases the wire value it came from. Scalar and temporal
// kinds pass through unchanged.
func copyValue(v Value) Value {
	switch val := v.(type) {
	case Bytes:
		return Bytes(append([]byte(nil), val...))
	case List:
		out := make(List, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	case Map:
		out := make(Map, len(val))
		for k, item := range val {
			out[k] = copyValue(item)
		}
		return out
	case Node:
		val.Labels = append([]string(nil), val.Labels...)
		val.Properties = copyValue(val.Properties).(Map)
		return val
	case Relationship:
		val.Properties = copyValue(val.Properties).(Map)
		return val
	case UnboundRelationship:
		val.Properties = copyValue(val.Properties).(Map)
		return val
	case Path:
		out := Path{
			Nodes:         make([]Node, len(val.Nodes)),
			Relationships: make([]UnboundRelationship, len(val.Relationships)),
		}
		for i, n := range val.Nodes {
			out.Nodes[i] = copyValue(n).(Node)
		}
		for i, r := range val.Relationships {
			out.Relationships[i] = copyValue(r).(UnboundRelationship)
		}
		return out
	default:
		return v
	}
}

func mismatch(v Value, expected string) error {
	return &KindMismatchError{Found: v.Kind(), Expected: expected}
}
