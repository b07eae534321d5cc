package types

const (
	// NodeSignature is the signature byte for a Node structure
	NodeSignature = 0x4E
	// RelationshipSignature is the signature byte for a Relationship structure
	RelationshipSignature = 0x52
	// UnboundRelationshipSignature is the signature byte for an UnboundRelationship structure
	UnboundRelationshipSignature = 0x72
	// PathSignature is the signature byte for a Path structure
	PathSignature = 0x50
)

// Node Represents a Node structure
type Node struct {
	NodeIdentity int64
	Labels       []string
	Properties   Map
}

// Kind gets the classification tag for the value
func (Node) Kind() Kind { return KindNode }

// Signature gets the signature byte for the struct
func (n Node) Signature() int { return NodeSignature }

// AllFields gets the fields of the struct in wire order
func (n Node) AllFields() []interface{} {
	labels := make([]interface{}, len(n.Labels))
	for i, label := range n.Labels {
		labels[i] = label
	}
	return []interface{}{n.NodeIdentity, labels, n.Properties}
}

// Relationship Represents a Relationship structure
type Relationship struct {
	RelIdentity       int64
	StartNodeIdentity int64
	EndNodeIdentity   int64
	Type              string
	Properties        Map
}

// Kind gets the classification tag for the value
func (Relationship) Kind() Kind { return KindRelationship }

// Signature gets the signature byte for the struct
func (r Relationship) Signature() int { return RelationshipSignature }

// AllFields gets the fields of the struct in wire order
func (r Relationship) AllFields() []interface{} {
	return []interface{}{r.RelIdentity, r.StartNodeIdentity, r.EndNodeIdentity, r.Type, r.Properties}
}

// UnboundRelationship Represents a relationship without endpoint identities,
// used inside a Path where the endpoints are implied by position.
type UnboundRelationship struct {
	RelIdentity int64
	Type        string
	Properties  Map
}

// Kind gets the classification tag for the value
func (UnboundRelationship) Kind() Kind { return KindUnboundRelationship }

// Signature gets the signature byte for the struct
func (r UnboundRelationship) Signature() int { return UnboundRelationshipSignature }

// AllFields gets the fields of the struct in wire order
func (r UnboundRelationship) AllFields() []interface{} {
	return []interface{}{r.RelIdentity, r.Type, r.Properties}
}

// Path Represents a Path structure, an alternating walk of nodes and
// relationships. A well-formed path has len(Nodes) == len(Relationships)+1.
type Path struct {
	Nodes         []Node
	Relationships []UnboundRelationship
}

// Kind gets the classification tag for the value
func (Path) Kind() Kind { return KindPath }

// Signature gets the signature byte for the struct
func (p Path) Signature() int { return PathSignature }

// AllFields gets the fields of the struct in wire order
func (p Path) AllFields() []interface{} {
	nodes := make([]interface{}, len(p.Nodes))
	for i, node := range p.Nodes {
		nodes[i] = node
	}
	relationships := make([]interface{}, len(p.Relationships))
	for i, relationship := range p.Relationships {
		relationships[i] = relationship
	}
	return []interface{}{nodes, relationships}
}

// Valid reports whether the path forms a connected walk.
func (p Path) Valid() bool {
	return len(p.Nodes) == len(p.Relationships)+1
}

func (p Path) nodeList() List {
	nodes := make(List, len(p.Nodes))
	for i, node := range p.Nodes {
		nodes[i] = node
	}
	return nodes
}

func (p Path) relationshipList() List {
	relationships := make(List, len(p.Relationships))
	for i, relationship := range p.Relationships {
		relationships[i] = relationship
	}
	return relationships
}
