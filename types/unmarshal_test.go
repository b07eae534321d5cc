package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNode() Node {
	return Node{
		NodeIdentity: 1337,
		Labels:       []string{"Person"},
		Properties: Map{
			"name": String("Alice"),
			"age":  Int(42),
		},
	}
}

func TestUnmarshal_Scalars(t *testing.T) {
	var b bool
	require.NoError(t, Unmarshal(Bool(true), &b))
	assert.True(t, b)

	var i int64
	require.NoError(t, Unmarshal(Int(1337), &i))
	assert.Equal(t, int64(1337), i)

	var f float64
	require.NoError(t, Unmarshal(Float(13.37), &f))
	assert.Equal(t, 13.37, f)

	var f32 float32
	require.NoError(t, Unmarshal(Float(13.37), &f32))
	assert.Equal(t, float32(13.37), f32)

	var s string
	require.NoError(t, Unmarshal(String("Alice"), &s))
	assert.Equal(t, "Alice", s)

	var raw []byte
	require.NoError(t, Unmarshal(Bytes{1, 2, 3}, &raw))
	assert.Equal(t, []byte{1, 2, 3}, raw)
}

func TestUnmarshal_NullIntoPointer(t *testing.T) {
	name := "Alice"
	ptr := &name
	require.NoError(t, Unmarshal(Null{}, &ptr))
	assert.Nil(t, ptr)

	require.NoError(t, Unmarshal(String("Bob"), &ptr))
	require.NotNil(t, ptr)
	assert.Equal(t, "Bob", *ptr)
}

func TestUnmarshal_IntegerNarrowing(t *testing.T) {
	var small int8
	require.NoError(t, Unmarshal(Int(42), &small))
	assert.Equal(t, int8(42), small)

	err := Unmarshal(Int(1337), &small)
	require.Error(t, err)
	boundsErr, ok := err.(*BoundsError)
	require.True(t, ok, "expected a bounds error, got %#v", err)
	assert.Equal(t, int64(1337), boundsErr.Value)
	assert.Equal(t, "int8", boundsErr.Target)

	var unsigned uint32
	err = Unmarshal(Int(-1), &unsigned)
	require.Error(t, err)
	require.IsType(t, &BoundsError{}, err)

	var wide uint64
	require.NoError(t, Unmarshal(Int(1337), &wide))
	assert.Equal(t, uint64(1337), wide)
}

func TestUnmarshal_KindMismatch(t *testing.T) {
	var i int
	err := Unmarshal(String("Alice"), &i)
	require.Error(t, err)
	mismatchErr, ok := err.(*KindMismatchError)
	require.True(t, ok, "expected a kind mismatch, got %#v", err)
	assert.Equal(t, KindString, mismatchErr.Found)

	var b bool
	require.IsType(t, &KindMismatchError{}, Unmarshal(Int(1), &b))

	var f float64
	require.IsType(t, &KindMismatchError{}, Unmarshal(Int(1), &f))
}

func TestUnmarshal_BadDestination(t *testing.T) {
	var i int
	require.Error(t, Unmarshal(Int(1), i))
	require.Error(t, Unmarshal(Int(1), nil))
	var nilPtr *int
	require.Error(t, Unmarshal(Int(1), nilPtr))
}

func TestUnmarshal_NodeIntoStruct(t *testing.T) {
	var person struct {
		Id     Id
		Labels Labels
		Keys   Keys
		Name   string `bolt:"name"`
		Age    int    `bolt:"age"`
	}
	require.NoError(t, Unmarshal(testNode(), &person))
	assert.Equal(t, Id(1337), person.Id)
	assert.Equal(t, Labels{"Person"}, person.Labels)
	assert.Equal(t, Keys{"name": {}, "age": {}}, person.Keys)
	assert.Equal(t, "Alice", person.Name)
	assert.Equal(t, 42, person.Age)
}

func TestUnmarshal_FieldNameFallback(t *testing.T) {
	// Untagged fields match their exact name first, then lowercase.
	var person struct {
		Name string
		Age  int
	}
	require.NoError(t, Unmarshal(testNode(), &person))
	assert.Equal(t, "Alice", person.Name)
	assert.Equal(t, 42, person.Age)

	var skipped struct {
		Name string `bolt:"-"`
	}
	require.NoError(t, Unmarshal(testNode(), &skipped))
	assert.Equal(t, "", skipped.Name)
}

func TestUnmarshal_MissingPropertyLeavesZero(t *testing.T) {
	var person struct {
		Name   string `bolt:"name"`
		Height float64
	}
	require.NoError(t, Unmarshal(testNode(), &person))
	assert.Equal(t, "Alice", person.Name)
	assert.Equal(t, 0.0, person.Height)
}

func TestUnmarshal_RelationshipIntoStruct(t *testing.T) {
	rel := Relationship{
		RelIdentity:       7,
		StartNodeIdentity: 1337,
		EndNodeIdentity:   1338,
		Type:              "KNOWS",
		Properties:        Map{"since": Int(2017)},
	}

	var knows struct {
		Id    Id
		Start StartNodeId
		End   EndNodeId
		Kind  Type
		Since int `bolt:"since"`
	}
	require.NoError(t, Unmarshal(rel, &knows))
	assert.Equal(t, Id(7), knows.Id)
	assert.Equal(t, StartNodeId(1337), knows.Start)
	assert.Equal(t, EndNodeId(1338), knows.End)
	assert.Equal(t, Type("KNOWS"), knows.Kind)
	assert.Equal(t, 2017, knows.Since)

	// A node has no endpoints to offer.
	var bad struct {
		Start StartNodeId
	}
	require.IsType(t, &KindMismatchError{}, Unmarshal(testNode(), &bad))
}

func TestUnmarshal_MarkerAgainstPlainMap(t *testing.T) {
	var dest struct {
		Id   Id
		Name string `bolt:"name"`
	}
	err := Unmarshal(Map{"name": String("Alice")}, &dest)
	require.IsType(t, &KindMismatchError{}, err)
}

func TestUnmarshal_StrictMode(t *testing.T) {
	var partial struct {
		Name string `bolt:"name"`
	}
	require.NoError(t, Unmarshal(testNode(), &partial))

	err := Decoder{Strict: true}.Unmarshal(testNode(), &partial)
	require.Error(t, err)
	unknownErr, ok := err.(*UnknownFieldError)
	require.True(t, ok, "expected an unknown field error, got %#v", err)
	assert.Equal(t, "age", unknownErr.Field)

	var full struct {
		Name string `bolt:"name"`
		Age  int    `bolt:"age"`
	}
	require.NoError(t, Decoder{Strict: true}.Unmarshal(testNode(), &full))
}

func TestUnmarshal_List(t *testing.T) {
	var ints []int64
	require.NoError(t, Unmarshal(List{Int(1), Int(2), Int(3)}, &ints))
	assert.Equal(t, []int64{1, 2, 3}, ints)

	var nested [][]string
	require.NoError(t, Unmarshal(List{
		List{String("a")},
		List{String("b"), String("c")},
	}, &nested))
	assert.Equal(t, [][]string{{"a"}, {"b", "c"}}, nested)

	var dynamic []interface{}
	require.NoError(t, Unmarshal(List{Int(1), String("two")}, &dynamic))
	require.Len(t, dynamic, 2)
	assert.Equal(t, Int(1), dynamic[0])
}

func TestUnmarshal_TupleFromList(t *testing.T) {
	var pair [2]int64
	require.NoError(t, Unmarshal(List{Int(1), Int(2)}, &pair))
	assert.Equal(t, [2]int64{1, 2}, pair)

	var triple [3]int64
	require.IsType(t, &KindMismatchError{}, Unmarshal(List{Int(1), Int(2)}, &triple))
}

func TestUnmarshal_TupleFromMapRejected(t *testing.T) {
	var pair [2]string
	err := Unmarshal(Map{"a": String("x"), "b": String("y")}, &pair)
	require.Error(t, err)
	shapeErr, ok := err.(*UnsupportedShapeError)
	require.True(t, ok, "expected an unsupported shape error, got %#v", err)
	assert.Equal(t, KindMap, shapeErr.Found)
}

func TestUnmarshal_MapDestinations(t *testing.T) {
	var props map[string]interface{}
	require.NoError(t, Unmarshal(testNode(), &props))
	assert.Equal(t, String("Alice"), props["name"])

	var typed map[string]string
	require.NoError(t, Unmarshal(Map{"a": String("x")}, &typed))
	assert.Equal(t, map[string]string{"a": "x"}, typed)

	var badKeys map[int]string
	require.Error(t, Unmarshal(Map{"a": String("x")}, &badKeys))
}

func TestUnmarshal_Path(t *testing.T) {
	path := Path{
		Nodes: []Node{testNode(), {NodeIdentity: 1338, Labels: []string{"Person"}, Properties: Map{"name": String("Bob")}}},
		Relationships: []UnboundRelationship{
			{RelIdentity: 7, Type: "KNOWS", Properties: Map{}},
		},
	}
	require.True(t, path.Valid())

	var dest struct {
		Nodes         []Node                `bolt:"nodes"`
		Relationships []UnboundRelationship `bolt:"relationships"`
	}
	require.NoError(t, Unmarshal(path, &dest))
	require.Len(t, dest.Nodes, 2)
	assert.Equal(t, int64(1337), dest.Nodes[0].NodeIdentity)
	require.Len(t, dest.Relationships, 1)
	assert.Equal(t, "KNOWS", dest.Relationships[0].Type)
}

func TestUnmarshal_Points(t *testing.T) {
	p2 := Point2D{SpatialRefID: 4326, X: 12.5, Y: 56.3}

	var coords [2]float64
	require.NoError(t, Unmarshal(p2, &coords))
	assert.Equal(t, [2]float64{12.5, 56.3}, coords)

	var slice []float64
	require.NoError(t, Unmarshal(p2, &slice))
	assert.Equal(t, []float64{12.5, 56.3}, slice)

	var shaped struct {
		Srid int64   `bolt:"srid"`
		X    float64 `bolt:"x"`
		Y    float64 `bolt:"y"`
	}
	require.NoError(t, Unmarshal(p2, &shaped))
	assert.Equal(t, int64(4326), shaped.Srid)
	assert.Equal(t, 12.5, shaped.X)

	p3 := Point3D{SpatialRefID: 4979, X: 1, Y: 2, Z: 3}
	var triple [3]float64
	require.NoError(t, Unmarshal(p3, &triple))
	assert.Equal(t, [3]float64{1, 2, 3}, triple)
}

func TestUnmarshal_DateTimeConversions(t *testing.T) {
	stamp := time.Date(2024, time.March, 1, 12, 30, 15, 500_000_000, time.UTC)
	dt := NewDateTime(stamp)

	var asTime time.Time
	require.NoError(t, Unmarshal(dt, &asTime))
	assert.True(t, stamp.Equal(asTime))

	var asString string
	require.NoError(t, Unmarshal(dt, &asString))
	assert.Equal(t, stamp.Format(time.RFC3339Nano), asString)

	var seconds Seconds
	require.NoError(t, Unmarshal(dt, &seconds))
	assert.Equal(t, Seconds(stamp.Unix()), seconds)

	var millis Millis
	require.NoError(t, Unmarshal(dt, &millis))
	assert.Equal(t, Millis(stamp.UnixMilli()), millis)

	var micros Micros
	require.NoError(t, Unmarshal(dt, &micros))
	assert.Equal(t, Micros(stamp.UnixMicro()), micros)

	var nanos Nanos
	require.NoError(t, Unmarshal(dt, &nanos))
	assert.Equal(t, Nanos(stamp.UnixNano()), nanos)

	var plain int64
	require.NoError(t, Unmarshal(dt, &plain))
	assert.Equal(t, stamp.UnixNano(), plain)
}

func TestUnmarshal_TemporalIntoTime(t *testing.T) {
	var ts time.Time

	date := Date{Days: 19783} // 2024-03-01
	require.NoError(t, Unmarshal(date, &ts))
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.March, ts.Month())

	local := LocalDateTime{Seconds: 1709295015, Nanos: 0}
	require.NoError(t, Unmarshal(local, &ts))
	assert.Equal(t, int64(1709295015), ts.Unix())

	zoned := DateTimeZoneId{Seconds: 1709295015, Nanos: 0, ZoneId: "UTC"}
	require.NoError(t, Unmarshal(zoned, &ts))
	assert.Equal(t, int64(1709295015), ts.Unix())

	broken := DateTimeZoneId{Seconds: 0, Nanos: 0, ZoneId: "Not/AZone"}
	require.Error(t, Unmarshal(broken, &ts))
}

func TestUnmarshal_DynamicValue(t *testing.T) {
	var out Value
	require.NoError(t, Unmarshal(testNode(), &out))
	node, ok := out.(Node)
	require.True(t, ok, "expected a node, got %#v", out)
	assert.Equal(t, int64(1337), node.NodeIdentity)

	// The copy must not alias the source properties.
	node.Properties["name"] = String("Eve")
	assert.Equal(t, String("Alice"), testNode().Properties["name"])

	require.NoError(t, Unmarshal(Int(1), &out))
	assert.Equal(t, Int(1), out)

	var iface interface{}
	require.NoError(t, Unmarshal(Null{}, &iface))
	assert.Nil(t, iface)
}

func TestUnmarshal_DynamicValueRoundTrip(t *testing.T) {
	supported := []Value{
		Null{},
		Bool(true),
		Int(1337),
		Float(13.37),
		String("Alice"),
		Bytes{1, 2, 3},
		List{Int(1), String("two"), List{Bool(false)}},
		Map{"name": String("Alice"), "nested": Map{"age": Int(42)}},
		testNode(),
		Relationship{
			RelIdentity: 7, StartNodeIdentity: 1337, EndNodeIdentity: 1338,
			Type: "KNOWS", Properties: Map{"since": Int(2017)},
		},
		UnboundRelationship{RelIdentity: 7, Type: "KNOWS", Properties: Map{"since": Int(2017)}},
		Path{
			Nodes:         []Node{testNode(), {NodeIdentity: 1338, Properties: Map{}}},
			Relationships: []UnboundRelationship{{RelIdentity: 7, Type: "KNOWS", Properties: Map{}}},
		},
		Point2D{SpatialRefID: 4326, X: 12.5, Y: 56.3},
		Point3D{SpatialRefID: 4979, X: 1, Y: 2, Z: 3},
		DateTime{Seconds: 1709295015, Nanos: 42, TZOffsetSecs: 3600},
	}
	for _, v := range supported {
		var out Value
		require.NoError(t, Unmarshal(v, &out), "kind %s should round-trip", v.Kind())
		assert.Equal(t, v, out, "kind %s changed across the round trip", v.Kind())
	}
}

func TestUnmarshal_DynamicValueUnsupportedKinds(t *testing.T) {
	unsupported := []Value{
		Duration{Months: 1},
		Date{Days: 1},
		Time{Nanos: 1},
		LocalTime{Nanos: 1},
		LocalDateTime{Seconds: 1},
		DateTimeZoneId{Seconds: 1, ZoneId: "UTC"},
	}
	for _, v := range unsupported {
		var out Value
		err := Unmarshal(v, &out)
		require.Error(t, err, "kind %s should not decode dynamically", v.Kind())
		shapeErr, ok := err.(*UnsupportedShapeError)
		require.True(t, ok, "expected an unsupported shape error for %s, got %#v", v.Kind(), err)
		assert.Equal(t, v.Kind(), shapeErr.Found)
	}

	// The failure also surfaces through containers.
	var out Value
	require.Error(t, Unmarshal(List{Duration{}}, &out))
	require.Error(t, Unmarshal(Map{"d": Date{}}, &out))
}

func TestUnmarshal_IdentityAssignment(t *testing.T) {
	var node Node
	require.NoError(t, Unmarshal(testNode(), &node))
	assert.Equal(t, int64(1337), node.NodeIdentity)

	var dur Duration
	require.NoError(t, Unmarshal(Duration{Months: 2, Days: 3}, &dur))
	assert.Equal(t, int64(2), dur.Months)
}

func TestUnmarshal_IdentityDoesNotAlias(t *testing.T) {
	source := testNode()
	var node Node
	require.NoError(t, Unmarshal(source, &node))
	node.Properties["name"] = String("Eve")
	node.Labels[0] = "Robot"
	assert.Equal(t, String("Alice"), source.Properties["name"])
	assert.Equal(t, "Person", source.Labels[0])

	wire := Map{"tags": List{String("admin")}}
	var m Map
	require.NoError(t, Unmarshal(wire, &m))
	m["tags"].(List)[0] = String("root")
	assert.Equal(t, String("admin"), wire["tags"].(List)[0])

	raw := Bytes{1, 2, 3}
	var b Bytes
	require.NoError(t, Unmarshal(raw, &b))
	b[0] = 9
	assert.Equal(t, byte(1), raw[0])
}
