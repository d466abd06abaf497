package schema

import "encoding/json"

// Schema is the contract for typed agent and tool inputs/outputs.
type Schema interface {
	// Attachement returns the schema attachement if any
	Attachement() *Attachement
}

// Stringify renders a schema for inclusion in a prompt. A String schema is
// passed through as-is, everything else is JSON encoded.
func Stringify(s Schema) string {
	switch v := s.(type) {
	case String:
		return string(v)
	case *String:
		return string(*v)
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}
