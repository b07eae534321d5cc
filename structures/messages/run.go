package messages

import "github.com/graphwire/golang-bolt-client/types"

const (
	// RunMessageSignature is the signature byte for the RUN message
	RunMessageSignature = 0x10
)

// RunMessage Represents a RUN message
type RunMessage struct {
	Statement  string
	Parameters map[string]types.Value
	Extra      map[string]interface{}
}

// NewRunMessage Gets a new RunMessage struct
func NewRunMessage(statement string, parameters map[string]types.Value, extra map[string]interface{}) RunMessage {
	if parameters == nil {
		parameters = map[string]types.Value{}
	}
	if extra == nil {
		extra = map[string]interface{}{}
	}
	return RunMessage{
		Statement:  statement,
		Parameters: parameters,
		Extra:      extra,
	}
}

// Signature gets the signature byte for the struct
func (i RunMessage) Signature() int {
	return RunMessageSignature
}

// AllFields gets the fields to encode for the struct
func (i RunMessage) AllFields() []interface{} {
	return []interface{}{i.Statement, i.Parameters, i.Extra}
}
