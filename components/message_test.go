package components

import (
	"bytes"
	"encoding/json"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/react-agents/schema"
)

func TestMessageMarshaler(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	dec := json.NewDecoder(&buf)
	msg := NewMessage(UserRole, schema.NewString("test string schema")).SetTurnID(NewTurnID())
	if err := enc.Encode(msg); err != nil {
		t.Fatal(err)
	}
	var decodeMsg Message
	if err := dec.Decode(&decodeMsg); err != nil {
		t.Fatal(err)
	}
	if decodeMsg.StringifiedContent() != msg.StringifiedContent() {
		t.Errorf("content mismatch, expect:%s, got:%s", msg.StringifiedContent(), decodeMsg.StringifiedContent())
	}
	if decodeMsg.Role() != msg.Role() {
		t.Errorf("role mismatch, expect:%s, got:%s", msg.Role(), decodeMsg.Role())
	}
	if decodeMsg.TurnID() != msg.TurnID() {
		t.Errorf("turn_id mismatch, expect:%s, got:%s", msg.TurnID(), decodeMsg.TurnID())
	}
}

func TestMessageToOpenAI(t *testing.T) {
	msg := NewMessage(ToolRole, schema.NewString("lookup result"))
	var dist openai.ChatCompletionMessage
	msg.ToOpenAI(&dist)
	if dist.Role != ToolRole {
		t.Errorf("expect tool role, got: %s", dist.Role)
	}
	if dist.Content != "lookup result" {
		t.Errorf("expect plain content, got: %s", dist.Content)
	}
}
