package bolt

import (
	"context"
)

// DefaultFetchSize is how many rows each PULL batch requests when the
// driver is not configured otherwise.
const DefaultFetchSize = 200

// Driver hands out transactions over pooled connections.
//
// Driver objects are safe for concurrent use; each transaction it
// begins owns its own connection.
type Driver struct {
	pool      *Pool
	db        string
	fetchSize int
}

// Option configures a Driver.
type Option func(*Driver)

// WithDatabase routes every transaction the driver begins to the named
// database instead of the server default.
func WithDatabase(db string) Option {
	return func(d *Driver) {
		d.db = db
	}
}

// WithFetchSize sets how many rows each PULL batch requests. Values
// less than one are ignored.
func WithFetchSize(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.fetchSize = n
		}
	}
}

// NewDriver creates a driver on top of a connection pool.
func NewDriver(p *Pool, opts ...Option) *Driver {
	d := &Driver{pool: p, fetchSize: DefaultFetchSize}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Begin leases a connection and starts a transaction on it. The
// connection stays exclusively owned by the returned handle until the
// handle is committed, rolled back or closed.
func (d *Driver) Begin(ctx context.Context, mode Mode) (*Tx, error) {
	conn, err := d.pool.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return newTx(ctx, conn, d.db, mode, d.fetchSize)
}
