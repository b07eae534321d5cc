package bolt

import (
	"context"

	"github.com/google/uuid"
	pool "github.com/jolestar/go-commons-pool"

	"github.com/graphwire/golang-bolt-client/errors"
	"github.com/graphwire/golang-bolt-client/log"
)

// DialFunc opens a new transport connection. Implementations perform
// the version handshake and authentication; the client never dials on
// its own.
type DialFunc func(ctx context.Context) (Conn, error)

// Pool hands out exclusively owned connections, one per transaction.
// Poisoned connections are destroyed on release instead of going back
// into circulation.
type Pool struct {
	inner *pool.ObjectPool
}

// NewPool creates a connection pool holding at most maxConns
// connections created by dial. Leasing from an exhausted pool fails
// rather than blocking.
func NewPool(ctx context.Context, dial DialFunc, maxConns int) *Pool {
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = maxConns
	config.MaxIdle = maxConns
	config.BlockWhenExhausted = false
	return &Pool{inner: pool.NewObjectPool(ctx, &connFactory{dial: dial}, config)}
}

// Close shuts the pool down and destroys its idle connections.
func (p *Pool) Close(ctx context.Context) {
	p.inner.Close(ctx)
}

// acquire leases a connection for exclusive use by one transaction.
func (p *Pool) acquire(ctx context.Context) (*managedConn, error) {
	obj, err := p.inner.BorrowObject(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "an error occurred leasing a connection from the pool")
	}
	conn, ok := obj.(Conn)
	if !ok {
		if invErr := p.inner.InvalidateObject(ctx, obj); invErr != nil {
			log.Errorf("An error occurred invalidating a foreign pooled object: %s", invErr)
		}
		return nil, errors.New("unexpected pooled object type: %T Value: %#v", obj, obj)
	}
	lease := &managedConn{id: uuid.NewString(), conn: conn, pool: p}
	log.Tracef("Leased connection %s from the pool", lease.id)
	return lease, nil
}

func (p *Pool) release(ctx context.Context, c *managedConn) error {
	if c.poisoned {
		log.Infof("Destroying poisoned connection %s instead of returning it to the pool", c.id)
		return p.inner.InvalidateObject(ctx, c.conn)
	}
	log.Tracef("Returned connection %s to the pool", c.id)
	return p.inner.ReturnObject(ctx, c.conn)
}

// connFactory adapts a DialFunc to the object pool factory contract.
type connFactory struct {
	dial DialFunc
}

func (f *connFactory) MakeObject(ctx context.Context) (*pool.PooledObject, error) {
	conn, err := f.dial(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "an error occurred dialing a new connection")
	}
	return pool.NewPooledObject(conn), nil
}

func (f *connFactory) DestroyObject(ctx context.Context, object *pool.PooledObject) error {
	return object.Object.(Conn).Close()
}

func (f *connFactory) ValidateObject(ctx context.Context, object *pool.PooledObject) bool {
	return true
}

func (f *connFactory) ActivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (f *connFactory) PassivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}
