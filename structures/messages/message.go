package messages

import "github.com/graphwire/golang-bolt-client/structures"

// Message represents a single protocol message exchanged with the server.
type Message interface {
	structures.Structure
}
