package messages

const (
	// PullMessageSignature is the signature byte for the PULL message
	PullMessageSignature = 0x3F

	// PullAll requests the entire remainder of a result stream.
	PullAll = -1
)

// PullMessage Represents a PULL message requesting up to N records from
// the result stream identified by Qid.
type PullMessage struct {
	N   int64
	Qid int64
}

// NewPullMessage Gets a new PullMessage struct
func NewPullMessage(n, qid int64) PullMessage {
	return PullMessage{
		N:   n,
		Qid: qid,
	}
}

// Signature gets the signature byte for the struct
func (i PullMessage) Signature() int {
	return PullMessageSignature
}

// AllFields gets the fields to encode for the struct
func (i PullMessage) AllFields() []interface{} {
	extra := map[string]interface{}{"n": i.N}
	if i.Qid >= 0 {
		extra["qid"] = i.Qid
	}
	return []interface{}{extra}
}
