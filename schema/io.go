package schema

// Input is the default chat input schema containing a single user message.
type Input struct {
	Base
	// ChatMessage is the message sent by the user to the assistant.
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The message sent by the user to the assistant." validate:"required"`
}

func NewInput(msg string) *Input {
	return &Input{
		ChatMessage: msg,
	}
}

func (i Input) String() string {
	return i.ChatMessage
}

// Output is the default chat output schema containing a single assistant reply.
type Output struct {
	Base
	// ChatMessage is the response generated by the assistant.
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The response generated by the assistant." validate:"required"`
}

func NewOutput(msg string) *Output {
	return &Output{
		ChatMessage: msg,
	}
}

func (o Output) String() string {
	return o.ChatMessage
}
