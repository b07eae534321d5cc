package bolt

import (
	"context"

	"github.com/graphwire/golang-bolt-client/errors"
	"github.com/graphwire/golang-bolt-client/log"
	"github.com/graphwire/golang-bolt-client/structures/messages"
)

// Mode selects how a transaction's queries are routed.
type Mode int

const (
	// ModeWrite routes queries to a writer.
	ModeWrite Mode = iota
	// ModeRead routes queries to a reader.
	ModeRead
)

func (m Mode) extra() string {
	if m == ModeRead {
		return "r"
	}
	return "w"
}

// Tx represents a transaction. It exclusively owns its leased
// connection from BEGIN until the terminal COMMIT or ROLLBACK, after
// which the connection goes back to the pool and the handle is spent.
//
// Tx objects, and the row streams created from them, ARE NOT THREAD
// SAFE. Use one goroutine per transaction.
type Tx struct {
	conn      *managedConn
	db        string
	mode      Mode
	fetchSize int
	closed    bool
}

func newTx(ctx context.Context, conn *managedConn, db string, mode Mode, fetchSize int) (*Tx, error) {
	extra := map[string]interface{}{"mode": mode.extra()}
	if db != "" {
		extra["db"] = db
	}
	if _, err := conn.sendRecv(ctx, messages.NewBeginMessage(extra), "BEGIN"); err != nil {
		if relErr := conn.release(ctx); relErr != nil {
			log.Errorf("An error occurred releasing connection after failed BEGIN: %s", relErr)
		}
		return nil, err
	}
	return &Tx{conn: conn, db: db, mode: mode, fetchSize: fetchSize}, nil
}

// stamp applies the transaction's routing extras to a query before
// dispatch. Callers never set these themselves.
func (t *Tx) stamp(q *Query) {
	if t.db != "" {
		q.extra("db", t.db)
	}
	q.extra("mode", t.mode.extra())
}

// Run executes a query and discards its rows, returning only its
// summary.
func (t *Tx) Run(ctx context.Context, q *Query) (*Result, error) {
	if t.closed {
		return nil, errors.New("transaction already closed")
	}
	t.stamp(q)
	run, err := q.runMessage()
	if err != nil {
		return nil, err
	}
	started, err := t.conn.sendRecv(ctx, run, "RUN")
	if err != nil {
		return nil, err
	}
	discard := messages.NewDiscardMessage(messages.PullAll, started.Qid())
	summary, err := t.conn.sendRecv(ctx, discard, "DISCARD")
	if err != nil {
		return nil, err
	}
	return &Result{
		Counters: countersFromStats(summary.Stats()),
		Bookmark: summary.Bookmark(),
	}, nil
}

// RunQueries runs the queries back to back on the transaction's
// connection and merges their effect counters into one summary.
func (t *Tx) RunQueries(ctx context.Context, queries ...*Query) (Counters, error) {
	var counters Counters
	for _, q := range queries {
		result, err := t.Run(ctx, q)
		if err != nil {
			return counters, err
		}
		counters.Add(result.Counters)
	}
	return counters, nil
}

// Query executes a query and returns a row stream bound to the
// transaction's connection. The stream stays valid and independently
// advanceable for the rest of the transaction, even while further
// queries run on the same handle.
func (t *Tx) Query(ctx context.Context, q *Query) (*Rows, error) {
	if t.closed {
		return nil, errors.New("transaction already closed")
	}
	t.stamp(q)
	run, err := q.runMessage()
	if err != nil {
		return nil, err
	}
	started, err := t.conn.sendRecv(ctx, run, "RUN")
	if err != nil {
		return nil, err
	}
	return &Rows{
		conn:      t.conn,
		qid:       started.Qid(),
		fetchSize: t.fetchSize,
		fields:    started.Fields(),
		hasMore:   true,
	}, nil
}

// Commit commits the transaction and spends the handle.
func (t *Tx) Commit(ctx context.Context) (TxSummary, error) {
	return t.finish(ctx, messages.NewCommitMessage(), "COMMIT")
}

// Rollback aborts the transaction and spends the handle.
func (t *Tx) Rollback(ctx context.Context) (TxSummary, error) {
	return t.finish(ctx, messages.NewRollbackMessage(), "ROLLBACK")
}

// Close rolls the transaction back when the handle was never committed
// or rolled back. It is safe to defer alongside the explicit terminal
// calls; on an already-spent handle it does nothing.
func (t *Tx) Close(ctx context.Context) error {
	if t.closed {
		return nil
	}
	_, err := t.Rollback(ctx)
	return err
}

// finish sends the terminal message, spends the handle and releases the
// lease. The connection goes back to the pool even when the terminal
// exchange failed; a poisoned one is destroyed there instead of reused.
func (t *Tx) finish(ctx context.Context, msg messages.Message, op string) (TxSummary, error) {
	if t.closed {
		return TxSummary{}, errors.New("transaction already closed")
	}
	t.closed = true
	summary, err := t.conn.sendRecv(ctx, msg, op)
	if relErr := t.conn.release(ctx); relErr != nil && err == nil {
		err = relErr
	}
	if err != nil {
		return TxSummary{}, err
	}
	return TxSummary{Bookmark: summary.Bookmark()}, nil
}
