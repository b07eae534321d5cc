package messages

const (
	// BeginMessageSignature is the signature byte for the BEGIN message
	BeginMessageSignature = 0x11
)

// BeginMessage Represents a BEGIN message
type BeginMessage struct {
	Extra map[string]interface{}
}

// NewBeginMessage Gets a new BeginMessage struct
func NewBeginMessage(extra map[string]interface{}) BeginMessage {
	if extra == nil {
		extra = map[string]interface{}{}
	}
	return BeginMessage{
		Extra: extra,
	}
}

// Signature gets the signature byte for the struct
func (i BeginMessage) Signature() int {
	return BeginMessageSignature
}

// AllFields gets the fields to encode for the struct
func (i BeginMessage) AllFields() []interface{} {
	return []interface{}{i.Extra}
}
