package types

// Metadata markers are newtypes used as struct field types during
// decoding. A field declared with one of these types is filled from the
// structural metadata of a graph entity instead of its property map.
// The decoder matches them by type identity, never by field name, so
// they can be mixed with ordinary property fields in any order.

// Id extracts the identity of a node or relationship.
type Id int64

// StartNodeId extracts the start node identity of a relationship.
type StartNodeId int64

// EndNodeId extracts the end node identity of a relationship.
type EndNodeId int64

// Labels extracts the label set of a node, in the order received.
type Labels []string

// Type extracts the type of a relationship.
type Type string

// Keys extracts the set of property keys of a node or relationship.
type Keys map[string]struct{}

// Timestamp markers select the unit when an integer field is decoded
// from a DateTime value. A plain int64 field decodes to nanoseconds.

// Seconds holds a DateTime decoded as whole seconds since the Unix epoch.
type Seconds int64

// Millis holds a DateTime decoded as milliseconds since the Unix epoch.
type Millis int64

// Micros holds a DateTime decoded as microseconds since the Unix epoch.
type Micros int64

// Nanos holds a DateTime decoded as nanoseconds since the Unix epoch.
type Nanos int64
