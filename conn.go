package bolt

import (
	"context"
	"fmt"
	"sync"

	"github.com/graphwire/golang-bolt-client/errors"
	"github.com/graphwire/golang-bolt-client/log"
	"github.com/graphwire/golang-bolt-client/structures/messages"
	"github.com/graphwire/golang-bolt-client/types"
)

// Conn is the transport contract the client consumes. Implementations
// own the raw byte framing, chunked message assembly and authentication
// handshake; the client only requires an ordered, already-authenticated
// message channel.
//
// Conn objects ARE NOT THREAD SAFE. The client serializes access through
// the managed connection that owns them.
type Conn interface {
	// SendRecv performs a single request/response round trip.
	SendRecv(ctx context.Context, req messages.Message) (messages.Message, error)
	// Send dispatches a request whose response is a record stream.
	Send(ctx context.Context, req messages.Message) error
	// Recv reads the next response message off the channel.
	Recv(ctx context.Context) (messages.Message, error)
	Close() error
}

// ProtocolError is a FAILURE or unrecognized response to a request,
// tagged with the operation that triggered it. It is fatal to the
// transaction that hit it; the underlying connection is not reused
// without recovery.
type ProtocolError struct {
	Op      string
	Code    string
	Message string
}

func (e *ProtocolError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s failed: %s: %s", e.Op, e.Code, e.Message)
}

// managedConn is a leased, exclusively owned connection. Every message
// exchange goes through its lock so that at most one exchange is
// outstanding at a time, no matter how many row streams share the
// connection. The lease id only exists to correlate log lines.
type managedConn struct {
	id       string
	conn     Conn
	pool     *Pool
	mu       sync.Mutex
	poisoned bool
	released bool
}

// sendRecv performs one control round trip and requires a SUCCESS response.
func (c *managedConn) sendRecv(ctx context.Context, req messages.Message, op string) (messages.SuccessMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return messages.SuccessMessage{}, errors.New("%s attempted after the transaction released its connection", op)
	}
	resp, err := c.conn.SendRecv(ctx, req)
	if err != nil {
		c.poisoned = true
		return messages.SuccessMessage{}, errors.Wrap(err, "an error occurred sending %s", op)
	}
	return c.expectSuccess(resp, op)
}

// exchange dispatches a request whose response is zero or more RECORD
// messages followed by a summary, invoking onRecord for each row in the
// batch.
func (c *managedConn) exchange(ctx context.Context, req messages.Message, op string, onRecord func([]types.Value)) (messages.SuccessMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return messages.SuccessMessage{}, errors.New("%s attempted after the transaction released its connection", op)
	}
	if err := c.conn.Send(ctx, req); err != nil {
		c.poisoned = true
		return messages.SuccessMessage{}, errors.Wrap(err, "an error occurred sending %s", op)
	}
	for {
		resp, err := c.conn.Recv(ctx)
		if err != nil {
			c.poisoned = true
			return messages.SuccessMessage{}, errors.Wrap(err, "an error occurred receiving %s response", op)
		}
		record, ok := resp.(messages.RecordMessage)
		if !ok {
			return c.expectSuccess(resp, op)
		}
		onRecord(record.Fields)
	}
}

// expectSuccess classifies a response. Anything but SUCCESS poisons the
// connection: the server side of the session is in a state we no longer
// track, so the lease must not be reused.
func (c *managedConn) expectSuccess(resp messages.Message, op string) (messages.SuccessMessage, error) {
	switch m := resp.(type) {
	case messages.SuccessMessage:
		log.Tracef("Got success message for %s on lease %s: %#v", op, c.id, m)
		return m, nil
	case messages.FailureMessage:
		log.Infof("Got failure message for %s on lease %s: %#v", op, c.id, m)
		c.poisoned = true
		return messages.SuccessMessage{}, &ProtocolError{Op: op, Code: m.Code(), Message: m.Message()}
	case messages.IgnoredMessage:
		c.poisoned = true
		return messages.SuccessMessage{}, &ProtocolError{Op: op, Message: "request ignored by the server"}
	default:
		c.poisoned = true
		return messages.SuccessMessage{}, errors.New("unrecognized response type for %s: %T Value: %#v", op, resp, resp)
	}
}

// release hands the connection back to its pool. Safe to call more than
// once; only the first call has an effect. Once released, every further
// exchange through this lease fails: the underlying connection may
// already be owned by another transaction.
func (c *managedConn) release(ctx context.Context) error {
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		return nil
	}
	c.released = true
	c.mu.Unlock()
	return c.pool.release(ctx, c)
}
