package messages

const (
	// SuccessMessageSignature is the signature byte for the SUCCESS message
	SuccessMessageSignature = 0x70
)

// SuccessMessage Represents a SUCCESS message
type SuccessMessage struct {
	Metadata map[string]interface{}
}

// NewSuccessMessage Gets a new SuccessMessage struct
func NewSuccessMessage(metadata map[string]interface{}) SuccessMessage {
	return SuccessMessage{
		Metadata: metadata,
	}
}

// Signature gets the signature byte for the struct
func (i SuccessMessage) Signature() int {
	return SuccessMessageSignature
}

// AllFields gets the fields to encode for the struct
func (i SuccessMessage) AllFields() []interface{} {
	return []interface{}{i.Metadata}
}

// Fields gets the result column names announced by a RUN response
func (i SuccessMessage) Fields() []string {
	raw, ok := i.Metadata["fields"]
	if !ok {
		return nil
	}
	switch fields := raw.(type) {
	case []string:
		return fields
	case []interface{}:
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			if s, ok := f.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Qid gets the server-assigned result identifier, or -1 when absent
func (i SuccessMessage) Qid() int64 {
	if qid, ok := metadataInt(i.Metadata, "qid"); ok {
		return qid
	}
	return -1
}

// HasMore reports whether the result stream has records left on the server
func (i SuccessMessage) HasMore() bool {
	more, ok := i.Metadata["has_more"].(bool)
	return ok && more
}

// Bookmark gets the bookmark attached to a COMMIT response
func (i SuccessMessage) Bookmark() string {
	bookmark, _ := i.Metadata["bookmark"].(string)
	return bookmark
}

// Stats gets the effect counter sub-map of the metadata
func (i SuccessMessage) Stats() map[string]interface{} {
	stats, _ := i.Metadata["stats"].(map[string]interface{})
	return stats
}

func metadataInt(metadata map[string]interface{}, key string) (int64, bool) {
	switch n := metadata[key].(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
