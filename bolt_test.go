package bolt

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/graphwire/golang-bolt-client/structures/messages"
	"github.com/graphwire/golang-bolt-client/types"
)

// scriptStep is one expected request and the responses the server
// answers it with. A non-nil err fails the exchange at the transport
// level instead.
type scriptStep struct {
	expect int
	check  func(t *testing.T, req messages.Message)
	resp   []messages.Message
	err    error
}

// scriptedConn replays a canned server conversation. Any request out of
// order or beyond the script fails the test, which also pins down that
// exchanges never overlap.
type scriptedConn struct {
	t       *testing.T
	steps   []scriptStep
	pos     int
	pending []messages.Message
	closed  bool
}

func newScriptedConn(t *testing.T, steps ...scriptStep) *scriptedConn {
	return &scriptedConn{t: t, steps: steps}
}

func (c *scriptedConn) Send(ctx context.Context, req messages.Message) error {
	if len(c.pending) > 0 {
		c.t.Fatalf("Request sent while %d responses still pending: %#v", len(c.pending), req)
	}
	if c.pos >= len(c.steps) {
		c.t.Fatalf("Request beyond end of script: %#v", req)
	}
	step := c.steps[c.pos]
	c.pos++
	if req.Signature() != step.expect {
		c.t.Fatalf("Expected request signature %#x at step %d, got %#x", step.expect, c.pos-1, req.Signature())
	}
	if step.check != nil {
		step.check(c.t, req)
	}
	if step.err != nil {
		return step.err
	}
	c.pending = append(c.pending, step.resp...)
	return nil
}

func (c *scriptedConn) Recv(ctx context.Context) (messages.Message, error) {
	if len(c.pending) == 0 {
		c.t.Fatalf("Receive with no scripted responses pending")
	}
	msg := c.pending[0]
	c.pending = c.pending[1:]
	return msg, nil
}

func (c *scriptedConn) SendRecv(ctx context.Context, req messages.Message) (messages.Message, error) {
	if err := c.Send(ctx, req); err != nil {
		return nil, err
	}
	return c.Recv(ctx)
}

func (c *scriptedConn) Close() error {
	c.closed = true
	return nil
}

// done asserts the whole script was consumed.
func (c *scriptedConn) done() {
	if c.pos != len(c.steps) {
		c.t.Fatalf("Script not fully consumed: %d of %d steps", c.pos, len(c.steps))
	}
	if len(c.pending) > 0 {
		c.t.Fatalf("Script finished with %d responses never received", len(c.pending))
	}
}

func success(metadata map[string]interface{}) messages.Message {
	return messages.NewSuccessMessage(metadata)
}

func record(values ...types.Value) messages.Message {
	return messages.NewRecordMessage(values)
}

func failure(code, msg string) messages.Message {
	return messages.NewFailureMessage(map[string]interface{}{
		"code":    code,
		"message": msg,
	})
}

// testDriver builds a single-connection driver backed by the scripted
// conversation.
func testDriver(t *testing.T, conn *scriptedConn, opts ...Option) *Driver {
	p := NewPool(context.Background(), func(ctx context.Context) (Conn, error) {
		return conn, nil
	}, 1)
	t.Cleanup(func() {
		p.Close(context.Background())
	})
	return NewDriver(p, opts...)
}

func asProtocolError(err error) (*ProtocolError, bool) {
	var protoErr *ProtocolError
	if stderrors.As(err, &protoErr) {
		return protoErr, true
	}
	return nil, false
}

// beginOK is the script step every healthy transaction starts with.
func beginOK() scriptStep {
	return scriptStep{expect: messages.BeginMessageSignature, resp: []messages.Message{success(nil)}}
}
