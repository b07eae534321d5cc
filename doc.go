/*Package bolt implements a transactional client engine for the Bolt
graph database protocol.

The engine sits above the byte-level transport: it is handed
already-authenticated connections through the Conn interface and a
DialFunc, and it owns everything from there up. That covers leasing
connections from a pool, explicit transactions (BEGIN through COMMIT or
ROLLBACK), running queries, and streaming their results back in
server-paginated batches.

Every transaction holds one connection exclusively for its whole
lifetime. Starting a transaction leases a connection and sends BEGIN on
it; committing or rolling back spends the handle and returns the
connection to the pool. Connections that hit a protocol failure or a
transport error are destroyed on release rather than reused, since the
server-side session state can no longer be trusted.

Result streams are cursors, not materialized sets. Tx.Query returns a
Rows whose Next pulls another batch from the server whenever its
buffered window drains, and several Rows from the same transaction can
be advanced in any interleaving. Closing a stream early sends a DISCARD
for whatever the server still holds, which keeps the connection's
message sequence consistent for the next query.

Wire values are represented by the tagged types in the types package.
There are distinct kinds for null, booleans, integers, floats, strings,
byte arrays, lists, maps, graph entities (nodes, relationships,
unbound relationships, paths), spatial points, and the temporal types.
The types.Unmarshal adapter decodes any of these into ordinary Go
values: scalars with checked integer narrowing, slices, arrays as
positional tuples, maps, and structs whose fields are matched by name
or by a `bolt` tag. Struct fields with marker types such as types.Id or
types.Labels capture entity metadata that lives outside the property
map. Temporal values additionally decode into time.Time, RFC 3339
strings, or integer timestamps selected by the marker types
types.Seconds, types.Millis, and types.Nanos.

The package does not dial sockets, encode PackStream, or route across
cluster members. Those belong to the transport underneath the Conn
interface.
*/
package bolt
