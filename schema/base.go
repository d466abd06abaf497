package schema

// Base is the zero schema. Embed it in concrete input/output structs to
// satisfy the Schema interface.
type Base struct {
	attachement *Attachement `json:"-"`
}

// Attachement returns schema attachement
func (b Base) Attachement() *Attachement {
	return b.attachement
}

// SetAttachement sets the schema attachement
func (b *Base) SetAttachement(v *Attachement) {
	b.attachement = v
}

func (b Base) String() string {
	return ""
}
