package schema

// String is a plain text schema. It is replayed verbatim instead of being
// JSON encoded.
type String string

func NewString(s string) String {
	return String(s)
}

func (s String) Attachement() *Attachement {
	return nil
}

func (s String) String() string {
	return string(s)
}
