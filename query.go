package bolt

import (
	"github.com/graphwire/golang-bolt-client/structures/messages"
	"github.com/graphwire/golang-bolt-client/types"
)

// Query is a request descriptor: statement text, named parameters and
// the routing extras the owning transaction stamps before dispatch.
//
// Queries are built fluently:
//
//	q := bolt.NewQuery("MATCH (p:Person {name: $name}) RETURN p").Param("name", "Alice")
type Query struct {
	text       string
	parameters map[string]types.Value
	extras     map[string]string
	err        error
}

// NewQuery makes a query from statement text.
func NewQuery(text string) *Query {
	return &Query{
		text:       text,
		parameters: map[string]types.Value{},
		extras:     map[string]string{},
	}
}

// Param binds a named parameter. Native Go values are converted to
// their wire representation; a value with no wire representation fails
// the query when it runs.
func (q *Query) Param(name string, value interface{}) *Query {
	converted, err := types.ValueOf(value)
	if err != nil {
		if q.err == nil {
			q.err = err
		}
		return q
	}
	q.parameters[name] = converted
	return q
}

// Text gets the statement text of the query
func (q *Query) Text() string {
	return q.text
}

// extra stamps a routing entry onto the query. Only the owning
// transaction calls this.
func (q *Query) extra(key, value string) {
	q.extras[key] = value
}

func (q *Query) runMessage() (messages.RunMessage, error) {
	if q.err != nil {
		return messages.RunMessage{}, q.err
	}
	extra := make(map[string]interface{}, len(q.extras))
	for k, v := range q.extras {
		extra[k] = v
	}
	return messages.NewRunMessage(q.text, q.parameters, extra), nil
}
