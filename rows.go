package bolt

import (
	"context"
	"io"

	"github.com/graphwire/golang-bolt-client/errors"
	"github.com/graphwire/golang-bolt-client/structures/messages"
	"github.com/graphwire/golang-bolt-client/types"
)

// Rows is a paginated cursor over the result of one query. It buffers a
// window of rows at a time and fetches the next batch from the server
// when the window drains, so several cursors can interleave on the same
// transaction without loading whole result sets into memory.
//
// Rows objects ARE NOT THREAD SAFE.
type Rows struct {
	conn      *managedConn
	qid       int64
	fetchSize int
	fields    []string
	buffer    []*Row
	hasMore   bool
	closed    bool
}

// Fields gets the column names announced when the query started
func (r *Rows) Fields() []string {
	return r.fields
}

// Next gets the next row, fetching another batch from the server when
// the buffered window is drained. It returns io.EOF once the stream is
// exhausted; after that no further exchanges are issued.
func (r *Rows) Next(ctx context.Context) (*Row, error) {
	for {
		if len(r.buffer) > 0 {
			row := r.buffer[0]
			r.buffer = r.buffer[1:]
			return row, nil
		}
		if r.closed || !r.hasMore {
			r.closed = true
			return nil, io.EOF
		}
		pull := messages.NewPullMessage(int64(r.fetchSize), r.qid)
		summary, err := r.conn.exchange(ctx, pull, "PULL", func(values []types.Value) {
			r.buffer = append(r.buffer, &Row{fields: r.fields, values: values})
		})
		if err != nil {
			r.closed = true
			return nil, err
		}
		r.hasMore = summary.HasMore()
	}
}

// Close drops the stream. If the server still holds rows for it, a
// DISCARD is sent so the connection's message sequence stays consistent
// for whatever runs on it next. Already-exhausted streams close without
// any exchange.
func (r *Rows) Close(ctx context.Context) error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.buffer = nil
	if !r.hasMore {
		return nil
	}
	r.hasMore = false
	discard := messages.NewDiscardMessage(messages.PullAll, r.qid)
	_, err := r.conn.sendRecv(ctx, discard, "DISCARD")
	return err
}

// Row is a single result row.
type Row struct {
	fields []string
	values []types.Value
}

// Fields gets the column names of the row
func (r *Row) Fields() []string {
	return r.fields
}

// Values gets the raw wire values of the row
func (r *Row) Values() []types.Value {
	return r.values
}

// Get decodes the value in the named column into dest.
func (r *Row) Get(column string, dest interface{}) error {
	for i, f := range r.fields {
		if f == column {
			return types.Unmarshal(r.values[i], dest)
		}
	}
	return errors.New("no such column: %s", column)
}

// Unmarshal decodes the whole row, viewed as a map of column name to
// value, into dest.
func (r *Row) Unmarshal(dest interface{}) error {
	m := make(types.Map, len(r.fields))
	for i, f := range r.fields {
		m[f] = r.values[i]
	}
	return types.Unmarshal(m, dest)
}
