package messages

const (
	// DiscardMessageSignature is the signature byte for the DISCARD message
	DiscardMessageSignature = 0x2F
)

// DiscardMessage Represents a DISCARD message dropping the remainder of
// the result stream identified by Qid.
type DiscardMessage struct {
	N   int64
	Qid int64
}

// NewDiscardMessage Gets a new DiscardMessage struct
func NewDiscardMessage(n, qid int64) DiscardMessage {
	return DiscardMessage{
		N:   n,
		Qid: qid,
	}
}

// Signature gets the signature byte for the struct
func (i DiscardMessage) Signature() int {
	return DiscardMessageSignature
}

// AllFields gets the fields to encode for the struct
func (i DiscardMessage) AllFields() []interface{} {
	extra := map[string]interface{}{"n": i.N}
	if i.Qid >= 0 {
		extra["qid"] = i.Qid
	}
	return []interface{}{extra}
}
