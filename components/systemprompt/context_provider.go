package systemprompt

// ContextProvider supplies a titled block of extra information appended to a
// generated system prompt.
type ContextProvider interface {
	Title() string
	Info() string
}
