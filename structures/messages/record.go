package messages

import "github.com/graphwire/golang-bolt-client/types"

const (
	// RecordMessageSignature is the signature byte for the RECORD message
	RecordMessageSignature = 0x71
)

// RecordMessage Represents a RECORD message
type RecordMessage struct {
	Fields []types.Value
}

// NewRecordMessage Gets a new RecordMessage struct
func NewRecordMessage(fields []types.Value) RecordMessage {
	return RecordMessage{
		Fields: fields,
	}
}

// Signature gets the signature byte for the struct
func (i RecordMessage) Signature() int {
	return RecordMessageSignature
}

// AllFields gets the fields to encode for the struct
func (i RecordMessage) AllFields() []interface{} {
	fields := make([]interface{}, len(i.Fields))
	for idx, field := range i.Fields {
		fields[idx] = field
	}
	return []interface{}{fields}
}
