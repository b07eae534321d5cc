package structures

// Structure represents a tagged protocol structure. Graph entities and
// protocol messages both carry a signature byte and an ordered field list.
type Structure interface {
	Signature() int
	AllFields() []interface{}
}
