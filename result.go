package bolt

// Counters is the set of effect counters a query reports in its
// summary metadata.
type Counters struct {
	NodesCreated         int64
	NodesDeleted         int64
	RelationshipsCreated int64
	RelationshipsDeleted int64
	PropertiesSet        int64
	LabelsAdded          int64
	LabelsRemoved        int64
	IndexesAdded         int64
	IndexesRemoved       int64
	ConstraintsAdded     int64
	ConstraintsRemoved   int64
	SystemUpdates        int64
}

// Add accumulates another set of counters into this one.
func (c *Counters) Add(other Counters) {
	c.NodesCreated += other.NodesCreated
	c.NodesDeleted += other.NodesDeleted
	c.RelationshipsCreated += other.RelationshipsCreated
	c.RelationshipsDeleted += other.RelationshipsDeleted
	c.PropertiesSet += other.PropertiesSet
	c.LabelsAdded += other.LabelsAdded
	c.LabelsRemoved += other.LabelsRemoved
	c.IndexesAdded += other.IndexesAdded
	c.IndexesRemoved += other.IndexesRemoved
	c.ConstraintsAdded += other.ConstraintsAdded
	c.ConstraintsRemoved += other.ConstraintsRemoved
	c.SystemUpdates += other.SystemUpdates
}

// ContainsUpdates reports whether the query changed anything.
func (c Counters) ContainsUpdates() bool {
	return c != (Counters{})
}

func countersFromStats(stats map[string]interface{}) Counters {
	return Counters{
		NodesCreated:         statInt(stats, "nodes-created"),
		NodesDeleted:         statInt(stats, "nodes-deleted"),
		RelationshipsCreated: statInt(stats, "relationships-created"),
		RelationshipsDeleted: statInt(stats, "relationships-deleted"),
		PropertiesSet:        statInt(stats, "properties-set"),
		LabelsAdded:          statInt(stats, "labels-added"),
		LabelsRemoved:        statInt(stats, "labels-removed"),
		IndexesAdded:         statInt(stats, "indexes-added"),
		IndexesRemoved:       statInt(stats, "indexes-removed"),
		ConstraintsAdded:     statInt(stats, "constraints-added"),
		ConstraintsRemoved:   statInt(stats, "constraints-removed"),
		SystemUpdates:        statInt(stats, "system-updates"),
	}
}

func statInt(stats map[string]interface{}, key string) int64 {
	switch v := stats[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// Result is the summary of running a query without streaming its rows.
type Result struct {
	Counters Counters
	Bookmark string
}

// TxSummary is the structured result of a terminal COMMIT or ROLLBACK.
// Bookmark is empty when the server reported none, as it does after a
// rollback.
type TxSummary struct {
	Bookmark string
}
