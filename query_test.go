package bolt

import (
	"testing"
	"time"

	"github.com/graphwire/golang-bolt-client/types"
)

func TestQuery_Params(t *testing.T) {
	q := NewQuery(`CREATE (p:Person {name: $name, age: $age, tags: $tags, since: $since})`).
		Param("name", "Alice").
		Param("age", 42).
		Param("tags", []string{"admin", "user"}).
		Param("since", time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))

	msg, err := q.runMessage()
	if err != nil {
		t.Fatalf("An error occurred building run message: %s", err)
	}
	if msg.Statement != q.Text() {
		t.Fatalf("Unexpected statement: %s", msg.Statement)
	}
	if msg.Parameters["name"] != types.String("Alice") {
		t.Fatalf("Unexpected name parameter: %#v", msg.Parameters["name"])
	}
	if msg.Parameters["age"] != types.Int(42) {
		t.Fatalf("Unexpected age parameter: %#v", msg.Parameters["age"])
	}
	tags, ok := msg.Parameters["tags"].(types.List)
	if !ok || len(tags) != 2 || tags[0] != types.String("admin") {
		t.Fatalf("Unexpected tags parameter: %#v", msg.Parameters["tags"])
	}
	if _, ok := msg.Parameters["since"].(types.DateTime); !ok {
		t.Fatalf("Unexpected since parameter: %#v", msg.Parameters["since"])
	}
}

func TestQuery_BadParamFailsAtRun(t *testing.T) {
	q := NewQuery(`RETURN $bad`).Param("bad", struct{ X int }{X: 1})
	if _, err := q.runMessage(); err == nil {
		t.Fatalf("Expected a conversion error for an unsupported parameter value")
	}
}
